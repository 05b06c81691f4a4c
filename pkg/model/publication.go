package model

import (
	"sort"
	"strconv"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/filter"
)

// Publication 论文 / 出版物
type Publication struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Journal   string   `json:"journal"`
	Year      int      `json:"year"`
	Type      string   `json:"type"`
	Abstract  string   `json:"abstract"`
	DOI       string   `json:"doi"`
	Citations int      `json:"citations"`
	PdfURL    string   `json:"pdfUrl"`
}

// Publications 出版物列表
type Publications []Publication

// PublicationQuery 出版物查询条件，Year 按字符串比较
type PublicationQuery struct {
	Search string `form:"search" json:"search"`
	Year   string `form:"year" json:"year"`
	Type   string `form:"type" json:"type"`
}

// PublicationStats 出版物统计
type PublicationStats struct {
	Total       int `json:"total"`
	CurrentYear int `json:"currentYear"`
	Citations   int `json:"citations"`
	Journals    int `json:"journals"`
}

// GetByID 根据 ID 获取出版物
func (ps Publications) GetByID(id int) *Publication {
	for _, p := range ps {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Query 按搜索词（标题、作者、期刊）、年份、类型过滤，保持原有顺序
func (ps Publications) Query(q PublicationQuery) Publications {
	return filter.Apply(ps,
		filter.Search(q.Search, func(p Publication) []string {
			return append([]string{p.Title, p.Journal}, p.Authors...)
		}),
		filter.Equal(q.Year, func(p Publication) string { return strconv.Itoa(p.Year) }),
		filter.Equal(q.Type, func(p Publication) string { return p.Type }),
	)
}

// Years 去重后的年份，新的在前
func (ps Publications) Years() []int {
	years := lo.Uniq(lo.Map(ps, func(p Publication, _ int) int { return p.Year }))
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Types 去重后的类型，保持首次出现的顺序
func (ps Publications) Types() []string {
	return lo.Uniq(lo.Map(ps, func(p Publication, _ int) string { return p.Type }))
}

// Stats 统计信息，currentYear 为当前年份
func (ps Publications) Stats(currentYear int) PublicationStats {
	journals := set.NewStringSet()
	for _, p := range ps {
		journals.Append(p.Journal)
	}
	return PublicationStats{
		Total:       len(ps),
		CurrentYear: lo.CountBy(ps, func(p Publication) bool { return p.Year == currentYear }),
		Citations:   lo.SumBy(ps, func(p Publication) int { return p.Citations }),
		Journals:    journals.Size(),
	}
}
