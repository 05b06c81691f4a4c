package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/utils/ginx"
	"github.com/kheobs/labsite/pkg/utils/uuid"
)

// ClientIDCookieName 访客标识 Cookie
const ClientIDCookieName = "labsite_client"

// 访客标识有效期：1 年
const clientIDMaxAge = 365 * 24 * 3600

// ClientID 为访客分配长期有效的匿名标识，点赞 / 阅读记录中用作 Creator
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := c.Cookie(ClientIDCookieName)
		if err != nil || !uuid.IsHexUUID(clientID) {
			clientID = uuid.GenUUID4()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ClientIDCookieName, clientID, clientIDMaxAge, "/", "", envs.SessionSecureCookie, true)
		}
		ginx.SetClientID(c, clientID)

		c.Next()
	}
}
