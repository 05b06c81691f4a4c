package model

import "time"

// 特殊轮播名称
const (
	CarouselHome       = "home"
	CarouselNewsHero   = "news-hero"
	CarouselNewsLatest = "news-latest"
	CarouselStoryMaps  = "story-maps"
)

// SocialLink 社交媒体链接
type SocialLink struct {
	Name string `json:"name" mapstructure:"name"`
	URL  string `json:"url" mapstructure:"url"`
}

// ImpactStat 首页影响力数据
type ImpactStat struct {
	Number string `json:"number" mapstructure:"number"`
	Label  string `json:"label" mapstructure:"label"`
}

// 支持资源类型
const (
	SupportTypePDF   = "pdf"
	SupportTypeLink  = "link"
	SupportTypeEmail = "email"
)

// SupportTypes 可用的支持资源类型
var SupportTypes = []string{SupportTypePDF, SupportTypeLink, SupportTypeEmail}

// SupportResource 工具页"支持"弹窗中的资源：pdf 下载、外部链接新窗口打开、email 为 mailto
type SupportResource struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
	Type        string `json:"type" mapstructure:"type"`
	URL         string `json:"url" mapstructure:"url"`
}

// SiteProfile 站点基础信息（site.yaml）
type SiteProfile struct {
	Name           string         `json:"name" mapstructure:"name"`
	Tagline        string         `json:"tagline" mapstructure:"tagline"`
	Description    string         `json:"description" mapstructure:"description"`
	Emails         []string       `json:"emails" mapstructure:"emails"`
	Phones         []string       `json:"phones" mapstructure:"phones"`
	Address        string         `json:"address" mapstructure:"address"`
	City           string         `json:"city" mapstructure:"city"`
	OfficeHours    []string       `json:"officeHours" mapstructure:"office_hours"`
	MapEmbedURL    string         `json:"mapEmbedUrl" mapstructure:"map_embed_url"`
	Socials        []SocialLink   `json:"socials" mapstructure:"socials"`
	ImpactStats    []ImpactStat   `json:"impactStats" mapstructure:"impact_stats"`
	ContactReasons []string       `json:"contactReasons" mapstructure:"contact_reasons"`
	NewsCategories []string       `json:"newsCategories" mapstructure:"news_categories"`
	ToolCategories []ToolCategory `json:"toolCategories" mapstructure:"tool_categories"`

	SupportResources []SupportResource `json:"supportResources" mapstructure:"support_resources"`
}

// SiteData 站点全部内容，加载后只读
type SiteData struct {
	Profile      SiteProfile  `json:"profile"`
	Team         Team         `json:"team"`
	Milestones   []Milestone  `json:"milestones"`
	Projects     Projects     `json:"projects"`
	Publications Publications `json:"publications"`
	News         NewsArticles `json:"news"`
	Events       []Event      `json:"events"`
	Tools        Tools        `json:"tools"`
	Stations     []Station    `json:"stations"`
	GuideSteps   []GuideStep  `json:"guideSteps"`
	Carousels    Carousels    `json:"carousels"`
	LoadedAt     time.Time    `json:"loadedAt"`
}
