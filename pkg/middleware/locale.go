package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/i18n"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

// Locale 确定当前请求的语言：Cookie -> Accept-Language -> 默认语言
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		preferred, _ := c.Cookie(i18n.CookieName)
		ginx.SetLocale(c, i18n.Resolve(preferred, c.GetHeader("Accept-Language")))

		c.Next()
	}
}
