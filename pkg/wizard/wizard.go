// Package wizard 实现工具访问向导（认证 → 访问级别 → 协议 → 访问）与使用指引步骤
package wizard

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/model"
)

// Step 向导步骤
type Step int

const (
	StepAuthentication Step = iota + 1
	StepAccessLevel
	StepAgreement
	StepAccess
)

var stepNames = map[Step]string{
	StepAuthentication: "authentication",
	StepAccessLevel:    "access-level",
	StepAgreement:      "agreement",
	StepAccess:         "access",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// 用户类型
const (
	UserTypeResearcher = "researcher"
	UserTypeStudent    = "student"
	UserTypePublic     = "public"
)

// UserTypes 可选用户类型
var UserTypes = []string{UserTypeResearcher, UserTypeStudent, UserTypePublic}

var (
	// ErrWrongStep 当前步骤不允许该操作
	ErrWrongStep = errors.New("action not allowed in current step")
	// ErrTermsNotAccepted 未勾选同意使用条款
	ErrTermsNotAccepted = errors.New("terms of use not accepted")
	// ErrInvalidUserType 未知的用户类型
	ErrInvalidUserType = errors.New("invalid user type")
	// ErrMissingField 必填字段为空
	ErrMissingField = errors.New("required field is empty")
	// ErrToolMismatch 启动的工具与向导打开的工具不一致
	ErrToolMismatch = errors.New("wizard was opened for another tool")
)

// Wizard 工具访问向导状态，严格线性推进，不存在跳步路径
type Wizard struct {
	ToolID       int    `json:"toolID"`
	Step         Step   `json:"step"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	UserType     string `json:"userType,omitempty"`
	AgreeToTerms bool   `json:"agreeToTerms,omitempty"`
}

// New 为指定工具打开一个全新的向导
func New(toolID int) *Wizard {
	return &Wizard{ToolID: toolID, Step: StepAuthentication}
}

// Decode 从会话中保存的 JSON 恢复向导
func Decode(raw string) (*Wizard, error) {
	var w Wizard
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, errors.Wrap(err, "decode wizard state")
	}
	if _, ok := stepNames[w.Step]; !ok {
		return nil, errors.Errorf("invalid wizard step %d", w.Step)
	}
	return &w, nil
}

// Encode 序列化为 JSON，保存到会话
func (w *Wizard) Encode() (string, error) {
	raw, err := json.Marshal(w)
	if err != nil {
		return "", errors.Wrap(err, "encode wizard state")
	}
	return string(raw), nil
}

// Login 使用已有账号认证，成功后进入访问级别选择
func (w *Wizard) Login(ctx context.Context, provider IdentityProvider, creds Credentials) error {
	if w.Step != StepAuthentication {
		return ErrWrongStep
	}
	if blank(creds.Email, creds.Password) {
		return ErrMissingField
	}
	identity, err := provider.Login(ctx, creds)
	if err != nil {
		return err
	}
	w.authenticated(identity)
	return nil
}

// Register 注册新账号（机构可选），成功后进入访问级别选择
func (w *Wizard) Register(ctx context.Context, provider IdentityProvider, reg Registration) error {
	if w.Step != StepAuthentication {
		return ErrWrongStep
	}
	if blank(reg.FirstName, reg.LastName, reg.Email) {
		return ErrMissingField
	}
	identity, err := provider.Register(ctx, reg)
	if err != nil {
		return err
	}
	w.authenticated(identity)
	return nil
}

// SelectUserType 选择用户类型，进入协议步骤
func (w *Wizard) SelectUserType(userType string) error {
	if w.Step != StepAccessLevel {
		return ErrWrongStep
	}
	if !lo.Contains(UserTypes, userType) {
		return ErrInvalidUserType
	}
	w.UserType = userType
	w.Step = StepAgreement
	return nil
}

// Agree 同意使用条款后进入访问步骤；未同意时保持原步骤
func (w *Wizard) Agree(agreeToTerms bool) error {
	if w.Step != StepAgreement {
		return ErrWrongStep
	}
	if !agreeToTerms {
		return ErrTermsNotAccepted
	}
	w.AgreeToTerms = true
	w.Step = StepAccess
	return nil
}

// Launch 记录访问授权并返回工具链接，调用方随后应丢弃向导状态
func (w *Wizard) Launch(ctx context.Context, tool model.Tool, recorder GrantRecorder) (string, error) {
	if w.Step != StepAccess {
		return "", ErrWrongStep
	}
	if tool.ID != w.ToolID {
		return "", ErrToolMismatch
	}
	grant := model.AccessGrant{
		ToolID:   tool.ID,
		Email:    w.Email,
		UserType: w.UserType,
		GrantAt:  time.Now(),
	}
	if err := recorder.RecordGrant(ctx, grant); err != nil {
		return "", errors.Wrap(err, "record access grant")
	}
	return tool.LaunchURL(w.UserType), nil
}

func (w *Wizard) authenticated(identity Identity) {
	w.Email = identity.Email
	w.Name = identity.Name
	w.Step = StepAccessLevel
}

func blank(values ...string) bool {
	return lo.ContainsBy(values, func(v string) bool { return strings.TrimSpace(v) == "" })
}
