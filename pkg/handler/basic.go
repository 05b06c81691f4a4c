package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/i18n"
)

// 语言偏好 Cookie 有效期：1 年
const localeCookieMaxAge = 365 * 24 * 3600

// Get404 未知路由与不存在的内容
func (h *Handler) Get404(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", "notFound", nil)
}

// GetRobotsTxt ...
func (h *Handler) GetRobotsTxt(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /admin\nDisallow: /apis/\nDisallow: /lang/\n")
}

// SetLocale 切换访客语言后回到来源页面
func (h *Handler) SetLocale(c *gin.Context) {
	locale := c.Param("locale")
	if !i18n.Supported(locale) {
		h.Get404(c)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.CookieName, locale, localeCookieMaxAge, "/", "", envs.SessionSecureCookie, true)
	c.Redirect(http.StatusSeeOther, backPath(c.Request.Referer()))
}

// 仅允许跳回站内路径
func backPath(referer string) string {
	u, err := url.Parse(referer)
	// 浏览器把反斜杠当作 /，"/\host" 与 "//host" 一样会跳到站外
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, "\\") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
