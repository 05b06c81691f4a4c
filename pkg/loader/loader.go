package loader

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/utils/markdownx"
)

// 各类内容在目录下的文件名
const (
	SiteProfileFile  = "site.yaml"
	TeamFile         = "team.json"
	MilestonesFile   = "milestones.json"
	ProjectsFile     = "projects.json"
	PublicationsFile = "publications.json"
	EventsFile       = "events.json"
	ToolsFile        = "tools.json"
	StationsFile     = "stations.json"
	GuideStepsFile   = "guide.json"
	CarouselsFile    = "carousels.json"
	NewsDir          = "news"
)

// 最新新闻轮播的切换间隔（秒）
const newsLatestIntervalSeconds = 4

// ContentLoader 站点内容加载器
type ContentLoader struct {
	baseDir  string
	siteData model.SiteData
}

// New ...
func New(baseDir string) *ContentLoader {
	return &ContentLoader{baseDir: baseDir, siteData: model.SiteData{}}
}

// Exec 加载全部内容，任一步骤失败即返回
func (l *ContentLoader) Exec() (*model.SiteData, error) {
	for _, f := range []func() error{
		l.loadSiteProfile,
		l.loadJSONFiles,
		l.loadNews,
		l.checkDuplicateIDs,
		l.buildNewsCarousel,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	l.siteData.LoadedAt = time.Now()
	return &l.siteData, nil
}

// 加载站点基础信息，支持 LABSITE_ 前缀的环境变量覆盖
func (l *ContentLoader) loadSiteProfile() error {
	v := viper.New()
	v.SetConfigFile(filepath.Join(l.baseDir, SiteProfileFile))
	v.SetEnvPrefix("LABSITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read %s", SiteProfileFile)
	}
	if err := v.Unmarshal(&l.siteData.Profile); err != nil {
		return errors.Wrapf(err, "decode %s", SiteProfileFile)
	}
	for _, r := range l.siteData.Profile.SupportResources {
		if !lo.Contains(model.SupportTypes, r.Type) {
			return errors.Errorf("support resource %q has unknown type %q", r.Name, r.Type)
		}
	}
	return nil
}

// 加载 JSON 格式的内容文件
func (l *ContentLoader) loadJSONFiles() error {
	files := []struct {
		name string
		dest any
	}{
		{TeamFile, &l.siteData.Team},
		{MilestonesFile, &l.siteData.Milestones},
		{ProjectsFile, &l.siteData.Projects},
		{PublicationsFile, &l.siteData.Publications},
		{EventsFile, &l.siteData.Events},
		{ToolsFile, &l.siteData.Tools},
		{StationsFile, &l.siteData.Stations},
		{GuideStepsFile, &l.siteData.GuideSteps},
		{CarouselsFile, &l.siteData.Carousels},
	}
	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(l.baseDir, f.name))
		if err != nil {
			return errors.Wrapf(err, "read %s", f.name)
		}
		if err = json.Unmarshal(content, f.dest); err != nil {
			return errors.Wrapf(err, "decode %s", f.name)
		}
	}
	return nil
}

// 加载新闻：每篇为带 front matter 的 Markdown 文件，正文可为空
func (l *ContentLoader) loadNews() error {
	paths, err := filepath.Glob(filepath.Join(l.baseDir, NewsDir, "*.md"))
	if err != nil {
		return errors.Wrap(err, "list news")
	}

	articles := model.NewsArticles{}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read news %s", filepath.Base(path))
		}

		var article model.NewsArticle
		body, err := frontmatter.Parse(bytes.NewReader(content), &article)
		if err != nil {
			return errors.Wrapf(err, "parse front matter of news %s", filepath.Base(path))
		}
		if article.ID == 0 {
			return errors.Errorf("news %s missing id", filepath.Base(path))
		}
		if len(bytes.TrimSpace(body)) != 0 {
			article.Content = markdownx.ToHTML(body)
		}
		articles = append(articles, article)
	}
	// 按 ID 保持声明顺序
	sort.SliceStable(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	l.siteData.News = articles
	return nil
}

// 检查同一集合内的 ID 是否重复（ID 会出现在 URL 中）
func (l *ContentLoader) checkDuplicateIDs() error {
	collections := []struct {
		name string
		ids  []string
	}{
		{ProjectsFile, idsOf(l.siteData.Projects, func(p model.Project) int { return p.ID })},
		{PublicationsFile, idsOf(l.siteData.Publications, func(p model.Publication) int { return p.ID })},
		{NewsDir, idsOf(l.siteData.News, func(a model.NewsArticle) int { return a.ID })},
		{ToolsFile, idsOf(l.siteData.Tools, func(t model.Tool) int { return t.ID })},
		{GuideStepsFile, idsOf(l.siteData.GuideSteps, func(s model.GuideStep) int { return s.ID })},
		{StationsFile, stationIDs(l.siteData.Stations)},
		{CarouselsFile, carouselNames(l.siteData.Carousels)},
	}
	for _, c := range collections {
		seen := set.NewStringSet()
		for _, id := range c.ids {
			if seen.Has(id) {
				return errors.Errorf("duplicate id %s in %s", id, c.name)
			}
			seen.Append(id)
		}
	}
	return nil
}

// 根据新闻生成最新新闻轮播（三篇一组）
func (l *ContentLoader) buildNewsCarousel() error {
	if l.siteData.Carousels.GetByName(model.CarouselNewsLatest) != nil {
		return errors.Errorf("carousel %s is generated from news, remove it from %s", model.CarouselNewsLatest, CarouselsFile)
	}
	l.siteData.Carousels = append(l.siteData.Carousels, model.Carousel{
		Name:            model.CarouselNewsLatest,
		IntervalSeconds: newsLatestIntervalSeconds,
		Slides:          l.siteData.News.LatestSlides(),
	})
	return nil
}

func idsOf[T any](items []T, id func(T) int) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, strconv.Itoa(id(item)))
	}
	return ids
}

func stationIDs(stations []model.Station) []string {
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.ID)
	}
	return ids
}

func carouselNames(carousels model.Carousels) []string {
	names := make([]string, 0, len(carousels))
	for _, c := range carousels {
		names = append(names, c.Name)
	}
	return names
}
