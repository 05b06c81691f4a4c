package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kheobs/labsite/pkg/i18n"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, ginx.GetLocale(c)+"|"+ginx.GetRequestID(c))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(ginx.RequestIDHeaderKey)
	assert.Len(t, generated, 32)

	// 合法的 Request ID 透传
	reqID := "0123456789abcdef0123456789abcdef"
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(ginx.RequestIDHeaderKey, reqID)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, reqID, w.Header().Get(ginx.RequestIDHeaderKey))
	assert.Equal(t, "|"+reqID, w.Body.String())
}

func TestClientID(t *testing.T) {
	r := gin.New()
	r.Use(ClientID())
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, ginx.GetClientID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, ClientIDCookieName, cookies[0].Name)
		assert.Equal(t, cookies[0].Value, w.Body.String())
	}

	// 已有合法标识时沿用，不重新下发
	clientID := "fedcba9876543210fedcba9876543210"
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: ClientIDCookieName, Value: clientID})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, clientID, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestLocale(t *testing.T) {
	r := newEngine(Locale())

	cases := []struct {
		cookie, acceptLanguage, expected string
	}{
		{"", "", "en"},
		{"", "km-KH,km;q=0.9", "km"},
		{"km", "en-US", "km"},
		{"fr", "en-US", "en"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: tc.cookie})
		}
		if tc.acceptLanguage != "" {
			req.Header.Set("Accept-Language", tc.acceptLanguage)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.expected+"|", w.Body.String())
	}
}

func TestCors(t *testing.T) {
	r := newEngine(Cors("https://a.example.org, https://b.example.org"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://b.example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://b.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.org")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
