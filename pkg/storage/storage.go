package storage

import (
	"sync"
	"sync/atomic"

	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/loader"
	"github.com/kheobs/labsite/pkg/model"
)

// ContentStore 站点内容只读查询
type ContentStore interface {
	// Snapshot 当前内容快照，调用方不得修改
	Snapshot() *model.SiteData
	ListProjects(q model.ProjectQuery) model.Projects
	ListPublications(q model.PublicationQuery) model.Publications
	ListNews(q model.NewsQuery) model.NewsArticles
	ListTools(q model.ToolQuery) model.Tools
}

// Store 基于内存快照的 ContentStore，重新加载时整体原子替换
type Store struct {
	baseDir string
	data    atomic.Pointer[model.SiteData]
}

var _ ContentStore = (*Store)(nil)

// New 使用给定内容创建 Store（不关联内容目录，无法 Reload）
func New(data *model.SiteData) *Store {
	s := &Store{}
	s.data.Store(data)
	return s
}

// Load 从内容目录加载并创建 Store
func Load(baseDir string) (*Store, error) {
	s := &Store{baseDir: baseDir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload 重新加载内容目录，失败时保留旧快照
func (s *Store) Reload() error {
	data, err := loader.New(s.baseDir).Exec()
	if err != nil {
		return err
	}
	s.data.Store(data)
	return nil
}

// Snapshot ...
func (s *Store) Snapshot() *model.SiteData {
	return s.data.Load()
}

// ListProjects ...
func (s *Store) ListProjects(q model.ProjectQuery) model.Projects {
	return s.Snapshot().Projects.Query(q)
}

// ListPublications ...
func (s *Store) ListPublications(q model.PublicationQuery) model.Publications {
	return s.Snapshot().Publications.Query(q)
}

// ListNews ...
func (s *Store) ListNews(q model.NewsQuery) model.NewsArticles {
	return s.Snapshot().News.Query(q)
}

// ListTools ...
func (s *Store) ListTools(q model.ToolQuery) model.Tools {
	return s.Snapshot().Tools.Query(q)
}

var content *Store

var initOnce sync.Once

// InitContent 加载并初始化站点内容
func InitContent() {
	if content != nil {
		return
	}
	initOnce.Do(func() {
		var err error
		if content, err = Load(envs.ContentBaseDir); err != nil {
			panic(err)
		}
	})
}

// Content 获取全局内容 Store，需先调用 InitContent
func Content() *Store {
	return content
}
