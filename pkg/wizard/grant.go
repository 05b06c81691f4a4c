package wizard

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kheobs/labsite/pkg/model"
)

// GrantRecorder 记录工具访问授权
type GrantRecorder interface {
	RecordGrant(ctx context.Context, grant model.AccessGrant) error
}

// LogGrantRecorder 仅写日志（未启用数据库时使用）
type LogGrantRecorder struct {
	Logger *logrus.Logger
}

// RecordGrant ...
func (r LogGrantRecorder) RecordGrant(_ context.Context, grant model.AccessGrant) error {
	r.Logger.WithFields(logrus.Fields{
		"toolID":   grant.ToolID,
		"email":    grant.Email,
		"userType": grant.UserType,
	}).Info("tool access granted")
	return nil
}

// DBGrantRecorder 写入数据库
type DBGrantRecorder struct {
	DB *gorm.DB
}

// RecordGrant ...
func (r DBGrantRecorder) RecordGrant(ctx context.Context, grant model.AccessGrant) error {
	return r.DB.WithContext(ctx).Create(&grant).Error
}
