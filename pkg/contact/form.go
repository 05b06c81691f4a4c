// Package contact 处理联系表单的校验与提交
package contact

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/model"
)

// Form 联系表单
type Form struct {
	FirstName    string `form:"firstName" json:"firstName" binding:"required"`
	LastName     string `form:"lastName" json:"lastName" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required,email"`
	Organization string `form:"organization" json:"organization"`
	Reason       string `form:"reason" json:"reason" binding:"required"`
	Message      string `form:"message" json:"message" binding:"required"`
}

// FieldErrors 字段名（表单字段）-> 错误提示
type FieldErrors map[string]string

// 结构体字段 -> 表单字段名，提示文案
var fieldMeta = map[string]struct {
	key   string
	label string
}{
	"FirstName": {"firstName", "First name"},
	"LastName":  {"lastName", "Last name"},
	"Email":     {"email", "Email"},
	"Reason":    {"reason", "Reason"},
	"Message":   {"message", "Message"},
}

// Bind 绑定并校验表单；reasons 为可选的咨询原因
func Bind(c *gin.Context, reasons []string) (Form, FieldErrors) {
	var form Form
	err := c.ShouldBind(&form)
	form.trim()

	errs := FieldErrors{}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			meta, ok := fieldMeta[fe.Field()]
			if !ok {
				continue
			}
			errs[meta.key] = message(fe.Tag(), meta.label)
		}
	} else if err != nil {
		errs["form"] = "Invalid form submission"
	}

	// 仅包含空白字符同样视为未填写
	for field, meta := range fieldMeta {
		if _, exists := errs[meta.key]; !exists && form.value(field) == "" {
			errs[meta.key] = message("required", meta.label)
		}
	}
	if _, exists := errs["reason"]; !exists && !lo.Contains(reasons, form.Reason) {
		errs["reason"] = "Please select a valid reason"
	}

	if len(errs) == 0 {
		return form, nil
	}
	return form, errs
}

// ToMessage 转换为待提交的留言记录
func (f Form) ToMessage(clientIP string) model.ContactMessage {
	return model.ContactMessage{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Email:        f.Email,
		Organization: f.Organization,
		Reason:       f.Reason,
		Message:      f.Message,
		ClientIP:     clientIP,
	}
}

func (f *Form) trim() {
	for _, p := range []*string{&f.FirstName, &f.LastName, &f.Email, &f.Organization, &f.Reason, &f.Message} {
		*p = strings.TrimSpace(*p)
	}
}

func (f Form) value(field string) string {
	switch field {
	case "FirstName":
		return f.FirstName
	case "LastName":
		return f.LastName
	case "Email":
		return f.Email
	case "Reason":
		return f.Reason
	case "Message":
		return f.Message
	}
	return ""
}

func message(tag, label string) string {
	switch tag {
	case "required":
		return label + " is required"
	case "email":
		return "Please enter a valid email address"
	default:
		return label + " is invalid"
	}
}
