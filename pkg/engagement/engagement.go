// Package engagement 记录新闻的阅读与点赞
package engagement

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/kheobs/labsite/pkg/model"
)

// LikeWindow 同一 IP 对同一篇新闻的点赞在该时间窗口内只统计一次
const LikeWindow = 30 * time.Minute

// Store 阅读 / 点赞记录存储
type Store interface {
	// Like 点赞，返回本次是否被统计
	Like(ctx context.Context, articleID int, ip, creator string) (bool, error)
	Likes(ctx context.Context, articleID int) (int64, error)
	RecordView(ctx context.Context, articleID int, ip, creator string) error
	Views(ctx context.Context, articleID int) (int64, error)
}

// MemoryStore 内存存储（未启用数据库时使用，重启后清空）
type MemoryStore struct {
	mu    sync.Mutex
	likes map[int]int64
	// 仍处于点赞窗口内的 (新闻, IP) 最近一次点赞时间
	recent map[likeKey]time.Time
	views  map[int]int64
	now    func() time.Time
}

type likeKey struct {
	articleID int
	ip        string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		likes:  map[int]int64{},
		recent: map[likeKey]time.Time{},
		views:  map[int]int64{},
		now:    time.Now,
	}
}

// Like ...
func (s *MemoryStore) Like(_ context.Context, articleID int, ip, _ string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	key := likeKey{articleID: articleID, ip: ip}
	if _, ok := s.recent[key]; ok {
		return false, nil
	}
	s.recent[key] = now
	s.likes[articleID]++
	return true, nil
}

// 清理已超出点赞窗口的记录，recent 的大小只与窗口内的点赞数有关
func (s *MemoryStore) prune(now time.Time) {
	since := now.Add(-LikeWindow)
	for key, likedAt := range s.recent {
		if likedAt.Before(since) {
			delete(s.recent, key)
		}
	}
}

// Likes ...
func (s *MemoryStore) Likes(_ context.Context, articleID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.likes[articleID], nil
}

// RecordView ...
func (s *MemoryStore) RecordView(_ context.Context, articleID int, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[articleID]++
	return nil
}

// Views ...
func (s *MemoryStore) Views(_ context.Context, articleID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.views[articleID], nil
}

// DBStore 数据库存储
type DBStore struct {
	DB *gorm.DB
}

var _ Store = DBStore{}

// Like ...
func (s DBStore) Like(ctx context.Context, articleID int, ip, creator string) (bool, error) {
	db := s.DB.WithContext(ctx)

	var count int64
	err := db.Model(&model.LikeRecord{}).Where(
		"ip = ? AND article_id = ? AND created_at >= ?",
		ip, articleID, time.Now().Add(-LikeWindow),
	).Count(&count).Error
	if err != nil || count != 0 {
		return false, err
	}

	record := model.LikeRecord{
		IP:        ip,
		ArticleID: articleID,
		BaseModel: model.BaseModel{Creator: creator},
	}
	if err = db.Create(&record).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Likes ...
func (s DBStore) Likes(ctx context.Context, articleID int) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&model.LikeRecord{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}

// RecordView ...
func (s DBStore) RecordView(ctx context.Context, articleID int, ip, creator string) error {
	record := model.ViewRecord{
		IP:        ip,
		ArticleID: articleID,
		BaseModel: model.BaseModel{Creator: creator},
	}
	return s.DB.WithContext(ctx).Create(&record).Error
}

// Views ...
func (s DBStore) Views(ctx context.Context, articleID int) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&model.ViewRecord{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
