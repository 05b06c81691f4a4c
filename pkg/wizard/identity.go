package wizard

import (
	"context"
	"strings"
	"time"
)

// Credentials 登录信息
type Credentials struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Registration 注册信息
type Registration struct {
	FirstName    string `form:"firstName" json:"firstName"`
	LastName     string `form:"lastName" json:"lastName"`
	Email        string `form:"email" json:"email"`
	Organization string `form:"organization" json:"organization"`
}

// Identity 认证通过后的身份
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityProvider 向导使用的身份提供方
type IdentityProvider interface {
	Login(ctx context.Context, creds Credentials) (Identity, error)
	Register(ctx context.Context, reg Registration) (Identity, error)
}

// DelayedProvider 演示用身份提供方：等待固定时长后接受任意非空输入
type DelayedProvider struct {
	Delay time.Duration
}

var _ IdentityProvider = DelayedProvider{}

// Login ...
func (p DelayedProvider) Login(ctx context.Context, creds Credentials) (Identity, error) {
	if err := p.wait(ctx); err != nil {
		return Identity{}, err
	}
	if blank(creds.Email, creds.Password) {
		return Identity{}, ErrMissingField
	}
	email := strings.TrimSpace(creds.Email)
	return Identity{Email: email, Name: email}, nil
}

// Register ...
func (p DelayedProvider) Register(ctx context.Context, reg Registration) (Identity, error) {
	if err := p.wait(ctx); err != nil {
		return Identity{}, err
	}
	if blank(reg.FirstName, reg.LastName, reg.Email) {
		return Identity{}, ErrMissingField
	}
	return Identity{
		Email: strings.TrimSpace(reg.Email),
		Name:  strings.TrimSpace(reg.FirstName + " " + reg.LastName),
	}, nil
}

func (p DelayedProvider) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
