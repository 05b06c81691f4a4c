package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/utils/ginx"
	"github.com/kheobs/labsite/pkg/wizard"
)

// 会话中保存访问向导状态的键
const sessionWizardKey = "accessWizard"

// 向导结束后待打开的工具链接（一次性 flash）
const sessionLaunchKey = "toolLaunch"

// 向导各步骤错误提示
var wizardErrMessages = map[error]string{
	wizard.ErrWrongStep:        "This step is not available yet. Please complete the previous steps first.",
	wizard.ErrTermsNotAccepted: "You must agree to the terms of use to continue.",
	wizard.ErrInvalidUserType:  "Please select a valid user type.",
	wizard.ErrMissingField:     "Please fill in all required fields.",
	wizard.ErrToolMismatch:     "The access wizard was opened for another tool.",
}

func loadWizard(c *gin.Context) (*wizard.Wizard, bool) {
	raw, ok := sessions.Default(c).Get(sessionWizardKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	wz, err := wizard.Decode(raw)
	if err != nil {
		return nil, false
	}
	return wz, true
}

func saveWizard(c *gin.Context, wz *wizard.Wizard) error {
	raw, err := wz.Encode()
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(sessionWizardKey, raw)
	return session.Save()
}

func clearWizard(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionWizardKey)
	return session.Save()
}

// 获取路径参数中的工具，不存在时渲染 404
func (h *Handler) toolFromParam(c *gin.Context) (*model.Tool, bool) {
	id, ok := ginx.GetIntParam(c, "id")
	if !ok {
		h.Get404(c)
		return nil, false
	}
	tool := h.Content.Snapshot().Tools.GetByID(id)
	if tool == nil {
		h.Get404(c)
		return nil, false
	}
	return tool, true
}

// OpenToolAccess 点击工具按钮：按工具状态跳转，需要授权的工具总是打开一个全新的向导
func (h *Handler) OpenToolAccess(c *gin.Context) {
	tool, ok := h.toolFromParam(c)
	if !ok {
		return
	}

	switch tool.Action() {
	case model.ToolActionDisabled:
		c.Redirect(http.StatusSeeOther, "/tools")
	case model.ToolActionComingSoon:
		c.Redirect(http.StatusSeeOther, "/tools?notice="+c.Param("id"))
	case model.ToolActionDashboard:
		c.Redirect(http.StatusSeeOther, "/tools/dashboard")
	case model.ToolActionDirect:
		c.Redirect(http.StatusSeeOther, tool.URL)
	default:
		if err := saveWizard(c, wizard.New(tool.ID)); err != nil {
			logError(c, err, "save access wizard failed")
			h.renderTools(c, http.StatusInternalServerError, "Unable to start the access wizard.")
			return
		}
		c.Redirect(http.StatusSeeOther, "/tools#access-wizard")
	}
}

// CloseToolAccess 关闭向导，丢弃全部状态
func (h *Handler) CloseToolAccess(c *gin.Context) {
	if err := clearWizard(c); err != nil {
		logError(c, err, "clear access wizard failed")
	}
	c.Redirect(http.StatusSeeOther, "/tools")
}

// 对当前向导执行一步操作，成功后保存状态并回到工具页
func (h *Handler) wizardStep(c *gin.Context, action func(wz *wizard.Wizard) error) {
	tool, ok := h.toolFromParam(c)
	if !ok {
		return
	}
	wz, ok := loadWizard(c)
	if !ok || wz.ToolID != tool.ID {
		h.renderTools(c, http.StatusConflict, wizardErrMessages[wizard.ErrToolMismatch])
		return
	}

	if err := action(wz); err != nil {
		h.renderWizardErr(c, err)
		return
	}
	if err := saveWizard(c, wz); err != nil {
		logError(c, err, "save access wizard failed")
		h.renderTools(c, http.StatusInternalServerError, "Unable to save the access wizard.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/tools#access-wizard")
}

func (h *Handler) renderWizardErr(c *gin.Context, err error) {
	for target, msg := range wizardErrMessages {
		if errors.Is(err, target) {
			h.renderTools(c, http.StatusBadRequest, msg)
			return
		}
	}
	logError(c, err, "access wizard failed")
	h.renderTools(c, http.StatusBadGateway, "Authentication service is unavailable, please try again.")
}

// ToolAccessLogin 向导第 1 步：登录
func (h *Handler) ToolAccessLogin(c *gin.Context) {
	var creds wizard.Credentials
	_ = c.ShouldBind(&creds)

	h.wizardStep(c, func(wz *wizard.Wizard) error {
		return wz.Login(c.Request.Context(), h.Identity, creds)
	})
}

// ToolAccessRegister 向导第 1 步：注册
func (h *Handler) ToolAccessRegister(c *gin.Context) {
	var reg wizard.Registration
	_ = c.ShouldBind(&reg)

	h.wizardStep(c, func(wz *wizard.Wizard) error {
		return wz.Register(c.Request.Context(), h.Identity, reg)
	})
}

// ToolAccessUserType 向导第 2 步：选择访问级别
func (h *Handler) ToolAccessUserType(c *gin.Context) {
	userType := c.PostForm("userType")

	h.wizardStep(c, func(wz *wizard.Wizard) error {
		return wz.SelectUserType(userType)
	})
}

// ToolAccessAgree 向导第 3 步：同意使用条款
func (h *Handler) ToolAccessAgree(c *gin.Context) {
	agree := c.PostForm("agreeToTerms") == "on" || c.PostForm("agreeToTerms") == "true"

	h.wizardStep(c, func(wz *wizard.Wizard) error {
		return wz.Agree(agree)
	})
}

// ToolAccessLaunch 向导第 4 步：记录授权、关闭向导，工具页随后在新窗口中打开工具
func (h *Handler) ToolAccessLaunch(c *gin.Context) {
	tool, ok := h.toolFromParam(c)
	if !ok {
		return
	}
	wz, ok := loadWizard(c)
	if !ok || wz.ToolID != tool.ID {
		h.renderTools(c, http.StatusConflict, wizardErrMessages[wizard.ErrToolMismatch])
		return
	}

	launchURL, err := wz.Launch(c.Request.Context(), *tool, h.Grants)
	if err != nil {
		h.renderWizardErr(c, err)
		return
	}
	session := sessions.Default(c)
	session.Delete(sessionWizardKey)
	session.AddFlash(launchURL, sessionLaunchKey)
	if err = session.Save(); err != nil {
		logError(c, err, "save tool launch failed")
	}
	c.Redirect(http.StatusSeeOther, "/tools")
}

// 取出待打开的工具链接，取出后即失效
func popLaunch(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	flashes := session.Flashes(sessionLaunchKey)
	if len(flashes) == 0 {
		return "", false
	}
	if err := session.Save(); err != nil {
		logError(c, err, "consume tool launch failed")
	}
	launchURL, ok := flashes[len(flashes)-1].(string)
	return launchURL, ok && launchURL != ""
}
