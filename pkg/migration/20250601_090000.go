package migration

import (
	"github.com/kheobs/labsite/pkg/infras/database"
	"github.com/kheobs/labsite/pkg/model"
)

// 访客行为记录（阅读、点赞）、联系表单留言与工具访问授权
func init() {
	// Do Not Edit Migration ID!
	database.RegisterMigration(createTables(
		"20250601_090000",
		&model.ViewRecord{},
		&model.LikeRecord{},
		&model.ContactMessage{},
		&model.AccessGrant{},
	))
}
