package model

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kheobs/labsite/pkg/filter"
)

// NewsArticle 新闻
type NewsArticle struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	Author   string   `json:"author" yaml:"author"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Image    string   `json:"image" yaml:"image"`
	Featured bool     `json:"featured" yaml:"featured"`
	Tags     []string `json:"tags" yaml:"tags"`
	// Content 正文（由 Markdown 渲染得到的 HTML，可为空）
	Content string `json:"content,omitempty" yaml:"-"`
}

// Meta 卡片副标题：分类 · 日期 · 阅读时长
func (a NewsArticle) Meta() string {
	return fmt.Sprintf("%s · %s · %s", a.Category, a.Date, a.ReadTime)
}

// NewsArticles 新闻列表
type NewsArticles []NewsArticle

// NewsQuery 新闻查询条件
type NewsQuery struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
}

// CategoryChip 新闻分类筛选项
type CategoryChip struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetByID 根据 ID 获取新闻
func (as NewsArticles) GetByID(id int) *NewsArticle {
	for _, a := range as {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// Query 先按分类过滤，再按搜索词（标题、摘要）过滤
func (as NewsArticles) Query(q NewsQuery) NewsArticles {
	return filter.Apply(as,
		filter.Equal(q.Category, func(a NewsArticle) string { return a.Category }),
		filter.Search(q.Search, func(a NewsArticle) []string { return []string{a.Title, a.Excerpt} }),
	)
}

// Featured 头条新闻，没有标记时取第一篇
func (as NewsArticles) Featured() *NewsArticle {
	if a, ok := lo.Find(as, func(a NewsArticle) bool { return a.Featured }); ok {
		return &a
	}
	if len(as) != 0 {
		return &as[0]
	}
	return nil
}

// LatestSlides 将新闻按三篇一组生成轮播页：首篇为主图，其余为侧栏
func (as NewsArticles) LatestSlides() []Slide {
	return lo.Map(lo.Chunk(as, 3), func(group []NewsArticle, _ int) Slide {
		slide := group[0].toSlide()
		slide.Extras = lo.Map(group[1:], func(a NewsArticle, _ int) Slide { return a.toSlide() })
		return slide
	})
}

func (a NewsArticle) toSlide() Slide {
	return Slide{
		Title:       a.Title,
		Description: a.Excerpt,
		Image:       a.Image,
		Meta:        a.Meta(),
		Link:        fmt.Sprintf("/news/%d", a.ID),
	}
}

// CategoryChips 生成分类筛选项，首项固定为 all
func CategoryChips(categories []string) []CategoryChip {
	// Caser 有状态，不能跨 goroutine 共享
	categoryCaser := cases.Title(language.English)
	chips := []CategoryChip{{Value: filter.All, Label: categoryCaser.String(filter.All)}}
	for _, c := range categories {
		chips = append(chips, CategoryChip{Value: c, Label: categoryCaser.String(c)})
	}
	return chips
}
