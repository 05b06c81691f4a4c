package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/auth"
	"github.com/kheobs/labsite/pkg/model"
)

// 管理后台标签页
const (
	AdminTabDashboard = "dashboard"
	AdminTabTeam      = "team"
	AdminTabContent   = "content"
	AdminTabSettings  = "settings"
)

// AdminTabs 标签页顺序
var AdminTabs = []string{AdminTabDashboard, AdminTabTeam, AdminTabContent, AdminTabSettings}

// AdminStat 仪表盘统计卡片
type AdminStat struct {
	Label string
	Value int
}

// AdminActivity 最近动态
type AdminActivity struct {
	Action string
	Target string
	Time   string
}

// 最近动态（演示数据）
var recentActivities = []AdminActivity{
	{Action: "Published news", Target: "New Air Quality Monitoring Station Launched in Siem Reap", Time: "2 hours ago"},
	{Action: "Updated project", Target: "Climate Change Adaptation in Rural Cambodia", Time: "1 day ago"},
	{Action: "Added team member", Target: "Research Scientists", Time: "3 days ago"},
	{Action: "Uploaded publication", Target: "Water Quality Assessment in the Mekong River Basin", Time: "1 week ago"},
}

// GetAdmin 管理后台：未登录时展示登录表单
func (h *Handler) GetAdmin(c *gin.Context) {
	username, ok := auth.CurrentUser(c)
	if !ok {
		h.renderAdminLogin(c, http.StatusOK, "")
		return
	}

	tab := c.DefaultQuery("tab", AdminTabDashboard)
	if !lo.Contains(AdminTabs, tab) {
		tab = AdminTabDashboard
	}
	h.render(c, http.StatusOK, "admin.html", "admin", gin.H{
		"username":   username,
		"tab":        tab,
		"tabs":       AdminTabs,
		"stats":      adminStats(h.Content.Snapshot()),
		"activities": recentActivities,
		"team":       h.Content.Snapshot().Team.Members(),
	})
}

func (h *Handler) renderAdminLogin(c *gin.Context, status int, loginErr string) {
	h.render(c, status, "admin_login.html", "admin", gin.H{
		"enabled":  h.Auth.Enabled(),
		"loginErr": loginErr,
	})
}

// AdminLogin 校验管理员凭据，失败时在页面内提示并返回 401
func (h *Handler) AdminLogin(c *gin.Context) {
	if !h.Auth.Enabled() {
		h.renderAdminLogin(c, http.StatusForbidden, "Admin login is disabled.")
		return
	}

	username, password := c.PostForm("username"), c.PostForm("password")
	if !h.Auth.Check(username, password) {
		h.renderAdminLogin(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}
	if err := auth.Login(c, username); err != nil {
		logError(c, err, "save admin session failed")
		h.renderAdminLogin(c, http.StatusInternalServerError, "Unable to sign in, please try again.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminLogout ...
func (h *Handler) AdminLogout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		logError(c, err, "clear admin session failed")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// 根据已加载的内容统计数量
func adminStats(data *model.SiteData) []AdminStat {
	return []AdminStat{
		{Label: "Research Projects", Value: len(data.Projects)},
		{Label: "Ongoing Projects", Value: data.Projects.CountByStatus(model.ProjectStatusOngoing)},
		{Label: "Publications", Value: len(data.Publications)},
		{Label: "News Articles", Value: len(data.News)},
		{Label: "Team Members", Value: data.Team.MemberCount()},
		{Label: "Research Tools", Value: len(data.Tools)},
	}
}
