// Package migration stores all database migrations
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/kheobs/labsite/pkg/logging"
)

// 建表迁移：Migrate 时 AutoMigrate，Rollback 时删除这些表
func createTables(migrationID string, tables ...any) *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logging.GetSystemLogger().Infof("Applying migration %s (%d tables)", migrationID, len(tables))
			return tx.AutoMigrate(tables...)
		},
		Rollback: func(tx *gorm.DB) error {
			logging.GetSystemLogger().Infof("Rolling back migration %s", migrationID)
			return tx.Migrator().DropTable(tables...)
		},
	}
}
