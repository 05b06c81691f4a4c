package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticAuthenticatorPlain(t *testing.T) {
	a := NewStaticAuthenticator("admin", "password", "")

	assert.True(t, a.Enabled())
	assert.True(t, a.Check("admin", "password"))
	assert.False(t, a.Check("admin", "Password"))
	assert.False(t, a.Check("Admin", "password"))
	assert.False(t, a.Check("admin", ""))
	assert.False(t, a.Check("", ""))
}

func TestStaticAuthenticatorBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	// 哈希优先于明文
	a := NewStaticAuthenticator("admin", "ignored", string(hash))
	assert.True(t, a.Check("admin", "s3cret"))
	assert.False(t, a.Check("admin", "ignored"))
}

func TestStaticAuthenticatorDisabled(t *testing.T) {
	a := NewStaticAuthenticator("admin", "", "")
	assert.False(t, a.Enabled())
	assert.False(t, a.Check("admin", ""))
}

func TestSessionLoginLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	r.POST("/login", func(c *gin.Context) {
		_ = Login(c, "admin")
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		_ = Logout(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/me", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.String(http.StatusOK, user)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(w.Result().Cookies()[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
