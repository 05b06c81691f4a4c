package middleware

import (
	"crypto/rand"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/logging"
)

const (
	// SessionName 会话 Cookie 名称
	SessionName = "labsite_session"
	// 会话有效期：7 天
	sessionMaxAge = 7 * 24 * 3600
)

// Sessions 基于签名 Cookie 的会话（管理员登录、工具访问向导）
func Sessions(secret string, secure bool) gin.HandlerFunc {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
		logging.GetSystemLogger().Warn("SESSION_SECRET not set, using a random key, sessions expire on restart")
	}

	store := cookie.NewStore(key)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SessionName, store)
}
