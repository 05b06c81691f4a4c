// Package auth 管理后台认证：凭据仅保存在服务端配置中，客户端只持有签名的会话 Cookie
package auth

import (
	"crypto/subtle"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 会话中保存管理员用户名的键
const sessionUserKey = "adminUser"

// Authenticator 管理员凭据校验
type Authenticator interface {
	// Enabled 是否配置了管理员密码，未配置时后台登录被禁用
	Enabled() bool
	// Check 用户名与密码均完全匹配时返回 true
	Check(username, password string) bool
}

// StaticAuthenticator 校验配置中的单个管理员账号
type StaticAuthenticator struct {
	username     []byte
	password     []byte
	passwordHash []byte
}

var _ Authenticator = (*StaticAuthenticator)(nil)

// NewStaticAuthenticator passwordBcrypt 非空时优先使用哈希校验
func NewStaticAuthenticator(username, password, passwordBcrypt string) *StaticAuthenticator {
	a := &StaticAuthenticator{username: []byte(username)}
	if passwordBcrypt != "" {
		a.passwordHash = []byte(passwordBcrypt)
	} else if password != "" {
		a.password = []byte(password)
	}
	return a
}

// Enabled ...
func (a *StaticAuthenticator) Enabled() bool {
	return len(a.passwordHash) != 0 || len(a.password) != 0
}

// Check ...
func (a *StaticAuthenticator) Check(username, password string) bool {
	if !a.Enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), a.username) == 1

	var passOK bool
	if len(a.passwordHash) != 0 {
		passOK = bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), a.password) == 1
	}
	return userOK && passOK
}

// Login 将管理员写入会话
func Login(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, username)
	return session.Save()
}

// Logout 从会话中移除管理员
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}

// CurrentUser 当前会话中的管理员
func CurrentUser(c *gin.Context) (string, bool) {
	username, ok := sessions.Default(c).Get(sessionUserKey).(string)
	return username, ok && username != ""
}
