package model

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/filter"
)

// 工具状态
const (
	ToolStatusActive      = "active"
	ToolStatusMaintenance = "maintenance"
	ToolStatusComingSoon  = "coming-soon"
)

// DashboardToolID 气候仪表盘工具 ID，点击后直接打开仪表盘
const DashboardToolID = 1

// ToolAction 工具卡片上按钮的行为
type ToolAction string

const (
	// ToolActionDisabled 维护中，按钮禁用
	ToolActionDisabled ToolAction = "disabled"
	// ToolActionComingSoon 即将上线，仅提示
	ToolActionComingSoon ToolAction = "coming-soon"
	// ToolActionDashboard 打开气候仪表盘
	ToolActionDashboard ToolAction = "dashboard"
	// ToolActionWizard 需要走访问向导
	ToolActionWizard ToolAction = "wizard"
	// ToolActionDirect 直接打开工具链接
	ToolActionDirect ToolAction = "direct"
)

// Tool 研究工具
type Tool struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Category       string   `json:"category"`
	URL            string   `json:"url"`
	Features       []string `json:"features"`
	Icon           string   `json:"icon"`
	RequiresAccess bool     `json:"requiresAccess"`
	Status         string   `json:"status"`
}

// Action 根据状态与访问要求决定按钮行为
func (t Tool) Action() ToolAction {
	switch {
	case t.Status == ToolStatusMaintenance:
		return ToolActionDisabled
	case t.Status == ToolStatusComingSoon:
		return ToolActionComingSoon
	case t.ID == DashboardToolID:
		return ToolActionDashboard
	case t.RequiresAccess:
		return ToolActionWizard
	default:
		return ToolActionDirect
	}
}

// LaunchURL 构造带访问级别的工具链接：<url>?tool=<id>&access=<userType>
func (t Tool) LaunchURL(userType string) string {
	sep := "?"
	if strings.Contains(t.URL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%stool=%d&access=%s", t.URL, sep, t.ID, url.QueryEscape(userType))
}

// Tools 工具列表
type Tools []Tool

// ToolQuery 工具查询条件
type ToolQuery struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
}

// ToolCategory 工具分类（标签页）
type ToolCategory struct {
	ID    string `json:"id" mapstructure:"id"`
	Label string `json:"label" mapstructure:"label"`
}

// ToolTab 带计数的工具标签页
type ToolTab struct {
	ToolCategory
	Count int `json:"count"`
}

// GetByID 根据 ID 获取工具
func (ts Tools) GetByID(id int) *Tool {
	for _, t := range ts {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// Query 按分类、搜索词（标题、描述）过滤
func (ts Tools) Query(q ToolQuery) Tools {
	return filter.Apply(ts,
		filter.Equal(q.Category, func(t Tool) string { return t.Category }),
		filter.Search(q.Search, func(t Tool) []string { return []string{t.Title, t.Description} }),
	)
}

// Tabs 计算各分类标签页的工具数量，all 为全部数量
func (ts Tools) Tabs(categories []ToolCategory) []ToolTab {
	return lo.Map(categories, func(c ToolCategory, _ int) ToolTab {
		if c.ID == filter.All {
			return ToolTab{ToolCategory: c, Count: len(ts)}
		}
		return ToolTab{ToolCategory: c, Count: lo.CountBy(ts, func(t Tool) bool { return t.Category == c.ID })}
	})
}
