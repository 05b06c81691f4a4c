package database

import (
	"context"
	"sort"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// 迁移 ID 格式，如 20250322_123456
const migrationIDLayout = "20060102_150405"

// ErrNoMigrations ...
var ErrNoMigrations = errors.New("no migrations registered")

type migrationSet struct {
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	if m == nil || m.ID == "" {
		return errors.New("migration id is required")
	}
	if _, ok := s.mapping[m.ID]; ok {
		return errors.Errorf("migration %s already registered", m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 按 ID（即时间）升序排列
func (s *migrationSet) list() []*gormigrate.Migration {
	ids := lo.Keys(s.mapping)
	sort.Strings(ids)
	return lo.Map(ids, func(id string, _ int) *gormigrate.Migration {
		return s.mapping[id]
	})
}

// RunMigrate 执行迁移，migrationID 为空表示迁移到最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	migrations := getMigrationSet().list()
	if len(migrations) == 0 {
		return ErrNoMigrations
	}

	m := gormigrate.New(Client(ctx), gormigrate.DefaultOptions, migrations)
	if migrationID == "" {
		return m.Migrate()
	}
	return m.MigrateTo(migrationID)
}

// Version 数据库当前版本（最后一次执行的迁移 ID）
func Version(ctx context.Context) (string, error) {
	opts := gormigrate.DefaultOptions

	var version string
	err := Client(ctx).
		Table(opts.TableName).
		Select(opts.IDColumnName).
		Order(opts.IDColumnName + " DESC").
		Limit(1).
		Scan(&version).Error
	if err != nil {
		return "", errors.Wrap(err, "query migration version")
	}
	return version, nil
}

// GenMigrationID 根据当前时间生成迁移 ID
func GenMigrationID() string {
	return time.Now().Format(migrationIDLayout)
}
