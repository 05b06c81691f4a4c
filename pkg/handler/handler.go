package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/auth"
	"github.com/kheobs/labsite/pkg/carousel"
	"github.com/kheobs/labsite/pkg/contact"
	"github.com/kheobs/labsite/pkg/dashboard"
	"github.com/kheobs/labsite/pkg/engagement"
	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/i18n"
	"github.com/kheobs/labsite/pkg/logging"
	"github.com/kheobs/labsite/pkg/model"
	"github.com/kheobs/labsite/pkg/storage"
	"github.com/kheobs/labsite/pkg/utils/ginx"
	"github.com/kheobs/labsite/pkg/wizard"
)

// Handler 页面、接口处理器及其依赖
type Handler struct {
	Content    storage.ContentStore
	Auth       auth.Authenticator
	Identity   wizard.IdentityProvider
	Grants     wizard.GrantRecorder
	Contact    contact.Submitter
	Engagement engagement.Store
	Generator  *dashboard.Generator
	// LaunchDelay 向导结束后延迟多久在新窗口打开工具
	LaunchDelay time.Duration
	// DashboardRefresh 仪表盘实时读数推送间隔
	DashboardRefresh time.Duration
	// Now 当前时间（测试中可替换）
	Now func() time.Time
}

// New ...
func New(content storage.ContentStore, authenticator auth.Authenticator) *Handler {
	return &Handler{
		Content:          content,
		Auth:             authenticator,
		Identity:         wizard.DelayedProvider{Delay: envs.WizardAuthDelay},
		Grants:           wizard.LogGrantRecorder{Logger: logging.GetWebLogger()},
		Contact:          contact.LogSubmitter{Logger: logging.GetWebLogger()},
		Engagement:       engagement.NewMemoryStore(),
		Generator:        dashboard.NewGenerator(time.Now().UnixNano()),
		LaunchDelay:      envs.WizardAuthDelay,
		DashboardRefresh: envs.DashboardRefresh,
		Now:              time.Now,
	}
}

// 渲染页面，附带所有页面共用的数据（语言、导航、站点信息）
func (h *Handler) render(c *gin.Context, status int, name, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	locale := ginx.GetLocale(c)
	if locale == "" {
		locale = i18n.Default()
	}
	data["locale"] = locale
	data["otherLocale"] = i18n.Other(locale)
	data["page"] = page
	data["profile"] = h.Content.Snapshot().Profile
	data["requestURI"] = c.Request.URL.RequestURI()
	data["googleSiteVerificationCode"] = envs.GoogleSiteVerificationCode
	if _, ok := data["title"]; !ok {
		data["title"] = i18n.T(locale, "title."+page)
	}
	_, data["isAdmin"] = auth.CurrentUser(c)

	c.HTML(status, name, data)
}

// 记录处理请求时的错误（访问日志中也会带上）
func logError(c *gin.Context, err error, msg string) {
	ginx.SetError(c, err)
	logging.GetWebLogger().WithField("requestID", ginx.GetRequestID(c)).WithError(err).Error(msg)
}

// carouselView 页面上某个轮播的当前状态
type carouselView struct {
	Name     string
	Interval int
	Slides   []model.Slide
	Current  model.Slide
	Index    int
	Prev     int
	Next     int
}

// 根据查询参数中的页码构造轮播视图，页码越界时取模
func newCarouselView(cs *model.Carousel, index int) carouselView {
	if cs == nil || len(cs.Slides) == 0 {
		return carouselView{}
	}
	state := carousel.New(len(cs.Slides)).GoTo(index)
	prev, next := carousel.Neighbors(state.Index, state.Count)
	return carouselView{
		Name:     cs.Name,
		Interval: cs.IntervalSeconds,
		Slides:   cs.Slides,
		Current:  cs.Slides[state.Index],
		Index:    state.Index,
		Prev:     prev,
		Next:     next,
	}
}

// 请求结束前尽力完成的记录（不阻塞页面渲染结果）
func bestEffort(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	return fn(ctx)
}

// GetHealthz 健康检查
func (h *Handler) GetHealthz(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, gin.H{
		"status":   "ok",
		"loadedAt": h.Content.Snapshot().LoadedAt,
	})
}
