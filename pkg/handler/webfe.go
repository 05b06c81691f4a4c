package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/contact"
	"github.com/kheobs/labsite/pkg/dashboard"
	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/filter"
	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/utils/ginx"
	"github.com/kheobs/labsite/pkg/wizard"
)

// 新闻日期格式，如 January 18, 2025
const newsDateLayout = "January 2, 2006"

// 首页展示的项目 / 新闻数量
const homeHighlightCount = 3

// 项目状态筛选项
var projectStatuses = []string{
	filter.All,
	model.ProjectStatusOngoing,
	model.ProjectStatusPublished,
	model.ProjectStatusCompleted,
}

// GetHomePage 首页
func (h *Handler) GetHomePage(c *gin.Context) {
	data := h.Content.Snapshot()
	h.render(c, http.StatusOK, "index.html", "home", gin.H{
		"hero":     newCarouselView(data.Carousels.GetByName(model.CarouselHome), ginx.GetIntQuery(c, "slide", 0)),
		"projects": lo.Subset(data.Projects, 0, homeHighlightCount),
		"news":     lo.Subset(data.News, 0, homeHighlightCount),
		"tools":    data.Tools,
	})
}

// GetAboutPage 关于我们（团队、大事记、联系表单）
func (h *Handler) GetAboutPage(c *gin.Context) {
	h.renderAbout(c, http.StatusOK, gin.H{"sent": c.Query("sent") == "1"})
}

func (h *Handler) renderAbout(c *gin.Context, status int, extra gin.H) {
	data := h.Content.Snapshot()
	payload := gin.H{
		"team":       data.Team,
		"milestones": data.Milestones,
		"reasons":    data.Profile.ContactReasons,
		"form":       contact.Form{},
		"errors":     contact.FieldErrors{},
	}
	for k, v := range extra {
		payload[k] = v
	}
	h.render(c, status, "about.html", "about", payload)
}

// ListProjects 研究项目（搜索 + 状态筛选 + 详情弹窗）
func (h *Handler) ListProjects(c *gin.Context) {
	var query model.ProjectQuery
	_ = c.ShouldBindQuery(&query)

	data := h.Content.Snapshot()
	payload := gin.H{
		"query":    query,
		"projects": h.Content.ListProjects(query),
		"statuses": projectStatuses,
		"ongoing":  data.Projects.CountByStatus(model.ProjectStatusOngoing),
		"total":    len(data.Projects),
	}
	if id, err := strconv.Atoi(c.Query("project")); err == nil {
		payload["selected"] = data.Projects.GetByID(id)
	}
	h.render(c, http.StatusOK, "research.html", "research", payload)
}

// ListPublications 出版物（搜索 + 年份 / 类型筛选 + 统计）
func (h *Handler) ListPublications(c *gin.Context) {
	var query model.PublicationQuery
	_ = c.ShouldBindQuery(&query)

	all := h.Content.Snapshot().Publications
	payload := gin.H{
		"query":        query,
		"publications": h.Content.ListPublications(query),
		"years":        all.Years(),
		"types":        all.Types(),
		"stats":        all.Stats(h.Now().Year()),
		"expanded":     ginx.GetIntQuery(c, "abstract", 0),
	}
	h.render(c, http.StatusOK, "publications.html", "publications", payload)
}

// ListNews 新闻（分类 + 搜索，头条轮播、最新新闻轮播、活动侧栏）
func (h *Handler) ListNews(c *gin.Context) {
	var query model.NewsQuery
	_ = c.ShouldBindQuery(&query)

	data := h.Content.Snapshot()
	filtered := query.Search != "" || (query.Category != "" && query.Category != filter.All)
	h.render(c, http.StatusOK, "news.html", "news", gin.H{
		"query":    query,
		"news":     h.Content.ListNews(query),
		"chips":    model.CategoryChips(data.Profile.NewsCategories),
		"filtered": filtered,
		"featured": data.News.Featured(),
		"hero":     newCarouselView(data.Carousels.GetByName(model.CarouselNewsHero), ginx.GetIntQuery(c, "hero", 0)),
		"latest":   newCarouselView(data.Carousels.GetByName(model.CarouselNewsLatest), ginx.GetIntQuery(c, "latest", 0)),
		"events":   data.Events,
	})
}

// RetrieveNews 新闻详情
func (h *Handler) RetrieveNews(c *gin.Context) {
	id, ok := ginx.GetIntParam(c, "id")
	if !ok {
		h.Get404(c)
		return
	}
	article := h.Content.Snapshot().News.GetByID(id)
	if article == nil {
		h.Get404(c)
		return
	}

	// 阅读记录失败不影响页面展示
	err := bestEffort(c.Request.Context(), time.Second, func(ctx context.Context) error {
		return h.Engagement.RecordView(ctx, id, ginx.GetClientIP(c), ginx.GetClientID(c))
	})
	if err != nil {
		logError(c, err, "record news view failed")
	}
	views, _ := h.Engagement.Views(c.Request.Context(), id)
	likes, _ := h.Engagement.Likes(c.Request.Context(), id)

	h.render(c, http.StatusOK, "news_detail.html", "news", gin.H{
		"title":   article.Title,
		"article": article,
		"views":   views,
		"likes":   likes,
	})
}

// ListTools 研究工具（分类标签页 + 搜索 + 故事地图轮播 + 访问向导 + 支持资源）
func (h *Handler) ListTools(c *gin.Context) {
	h.renderTools(c, http.StatusOK, "")
}

func (h *Handler) renderTools(c *gin.Context, status int, wizardErr string) {
	var query model.ToolQuery
	_ = c.ShouldBindQuery(&query)

	data := h.Content.Snapshot()
	payload := gin.H{
		"query":     query,
		"tools":     h.Content.ListTools(query),
		"tabs":      data.Tools.Tabs(data.Profile.ToolCategories),
		"storyMaps": newCarouselView(data.Carousels.GetByName(model.CarouselStoryMaps), ginx.GetIntQuery(c, "story", 0)),
		"userTypes": wizard.UserTypes,
		"wizardErr": wizardErr,
		"support":   c.Query("support") == "1",
	}
	if id, err := strconv.Atoi(c.Query("notice")); err == nil {
		payload["notice"] = data.Tools.GetByID(id)
	}
	if launchURL, ok := popLaunch(c); ok {
		payload["launch"] = gin.H{"url": launchURL, "delayMs": h.LaunchDelay.Milliseconds()}
	}
	if wz, ok := loadWizard(c); ok {
		payload["wizard"] = wz
		payload["wizardTool"] = data.Tools.GetByID(wz.ToolID)
	}
	h.render(c, status, "tools.html", "tools", payload)
}

// GetGuidelines 工具使用指引（上一步 / 下一步，不循环）
func (h *Handler) GetGuidelines(c *gin.Context) {
	steps := h.Content.Snapshot().GuideSteps
	guide := wizard.NewGuide(len(steps), ginx.GetIntQuery(c, "step", 1)-1)

	payload := gin.H{"steps": steps, "guide": guide}
	if len(steps) != 0 {
		payload["current"] = steps[guide.Index()]
	}
	h.render(c, http.StatusOK, "guidelines.html", "guidelines", payload)
}

// GetDashboard 气候仪表盘（气象站 + 时间范围）
func (h *Handler) GetDashboard(c *gin.Context) {
	stations := h.Content.Snapshot().Stations
	station, _ := dashboard.FindStation(stations, c.Query("station"))

	timeRange := c.DefaultQuery("range", dashboard.Range24Hours)
	if !lo.Contains(dashboard.Ranges, timeRange) {
		timeRange = dashboard.Range24Hours
	}
	points := h.Generator.Readings(h.Now(), dashboard.RangeHours(timeRange))

	h.render(c, http.StatusOK, "dashboard.html", "dashboard", gin.H{
		"stations":  stations,
		"station":   station,
		"ranges":    dashboard.Ranges,
		"range":     timeRange,
		"points":    points,
		"recent":    lo.Subset(points, -min(len(points), 12), 12),
		"summary":   dashboard.Summarize(points),
		"refreshMs": h.DashboardRefresh.Milliseconds(),
		"serverNow": h.Now(),
	})
}

// GetRSS 新闻 Atom 订阅
func (h *Handler) GetRSS(c *gin.Context) {
	data := h.Content.Snapshot()
	baseURL := fmt.Sprintf("%s://%s", envs.DomainScheme, envs.Domain)
	author := &feeds.Author{Name: data.Profile.Name, Email: envs.ContactEmail}

	feed := &feeds.Feed{
		Title:       data.Profile.Name + " News",
		Link:        &feeds.Link{Href: baseURL + "/news"},
		Description: data.Profile.Tagline,
		Author:      author,
		Updated:     data.LoadedAt,
	}
	for _, article := range data.News {
		publishedAt, err := time.ParseInLocation(newsDateLayout, article.Date, time.Local)
		if err != nil {
			publishedAt = data.LoadedAt
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.Itoa(article.ID),
			Title:       article.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/news/%d", baseURL, article.ID)},
			Description: article.Excerpt,
			Author:      &feeds.Author{Name: article.Author, Email: envs.ContactEmail},
			Created:     publishedAt,
			Updated:     publishedAt,
		})
	}
	atom, err := feed.ToAtom()
	if err != nil {
		logError(c, err, "generate atom feed failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(atom))
}
