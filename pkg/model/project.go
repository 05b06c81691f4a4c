package model

import (
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/filter"
)

// 项目状态
const (
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusPublished = "Published"
	ProjectStatusCompleted = "Completed"
)

// Project 研究项目
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	Year        string   `json:"year"`
	Location    string   `json:"location"`
	Team        []string `json:"team"`
	Funding     string   `json:"funding"`
	Tags        []string `json:"tags"`
}

// Projects 项目列表
type Projects []Project

// ProjectQuery 项目查询条件，Status 大小写不敏感
type ProjectQuery struct {
	Search string `form:"search" json:"search"`
	Status string `form:"status" json:"status"`
}

// GetByID 根据 ID 获取项目
func (ps Projects) GetByID(id int) *Project {
	for _, p := range ps {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Query 按搜索词（标题、描述、标签）与状态过滤，保持原有顺序
func (ps Projects) Query(q ProjectQuery) Projects {
	return filter.Apply(ps,
		filter.Search(q.Search, func(p Project) []string {
			return append([]string{p.Title, p.Description}, p.Tags...)
		}),
		filter.EqualFold(q.Status, func(p Project) string { return p.Status }),
	)
}

// CountByStatus 统计指定状态的项目数量
func (ps Projects) CountByStatus(status string) int {
	return lo.CountBy(ps, func(p Project) bool { return p.Status == status })
}
