package router

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kheobs/labsite/pkg/auth"
	"github.com/kheobs/labsite/pkg/contact"
	"github.com/kheobs/labsite/pkg/engagement"
	"github.com/kheobs/labsite/pkg/envs"
	"github.com/kheobs/labsite/pkg/handler"
	"github.com/kheobs/labsite/pkg/infras/database"
	"github.com/kheobs/labsite/pkg/logging"
	"github.com/kheobs/labsite/pkg/middleware"
	"github.com/kheobs/labsite/pkg/storage"
	"github.com/kheobs/labsite/pkg/utils/funcs"
	"github.com/kheobs/labsite/pkg/wizard"
)

// New 组装 gin 路由
func New(h *handler.Handler) *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.ClientID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors(envs.CorsAllowOrigins))
	router.Use(gin.Recovery())
	router.Use(middleware.Sessions(envs.SessionSecret, envs.SessionSecureCookie))
	router.Use(middleware.Locale())

	// 设置静态文件
	router.Static("/static", envs.StaticFileBaseDir)
	// 设置模板方法
	router.SetFuncMap(funcs.NewFuncMap())
	// 加载 HTML 模板文件
	router.LoadHTMLGlob(envs.TmplFileBaseDir + "/webfe/*")
	// 404
	router.NoRoute(h.Get404)
	// robots.txt
	router.GET("robots.txt", h.GetRobotsTxt)
	// 健康检查
	router.GET("healthz", h.GetHealthz)

	// webfe 路由
	{
		webfeRg := router.Group("")
		// 主页
		webfeRg.GET("", h.GetHomePage)
		webfeRg.GET("home", h.GetHomePage)
		// 关于我们 & 联系表单
		webfeRg.GET("about", h.GetAboutPage)
		webfeRg.POST("about/contact", h.PostContact)
		// 研究项目
		webfeRg.GET("research", h.ListProjects)
		// 出版物
		webfeRg.GET("publications", h.ListPublications)
		// 新闻
		webfeRg.GET("news", h.ListNews)
		webfeRg.GET("news/:id", h.RetrieveNews)
		// 研究工具
		webfeRg.GET("tools", h.ListTools)
		webfeRg.GET("tools/dashboard", h.GetDashboard)
		webfeRg.GET("tools/guidelines", h.GetGuidelines)
		// 工具访问向导
		webfeRg.GET("tools/:id/access/open", h.OpenToolAccess)
		webfeRg.GET("tools/:id/access/close", h.CloseToolAccess)
		webfeRg.POST("tools/:id/access/login", h.ToolAccessLogin)
		webfeRg.POST("tools/:id/access/register", h.ToolAccessRegister)
		webfeRg.POST("tools/:id/access/usertype", h.ToolAccessUserType)
		webfeRg.POST("tools/:id/access/agree", h.ToolAccessAgree)
		webfeRg.POST("tools/:id/access/launch", h.ToolAccessLaunch)
		// 管理后台
		webfeRg.GET("admin", h.GetAdmin)
		webfeRg.POST("admin/login", h.AdminLogin)
		webfeRg.POST("admin/logout", h.AdminLogout)
		// 语言切换
		webfeRg.GET("lang/:locale", h.SetLocale)
		// RSS
		webfeRg.GET("rss", h.GetRSS)
	}

	// api 路由
	{
		apiRg := router.Group("apis")
		apiRg.GET("projects", h.ListProjectsAPI)
		apiRg.GET("publications", h.ListPublicationsAPI)
		apiRg.GET("news", h.ListNewsAPI)
		apiRg.GET("tools", h.ListToolsAPI)
		// 点赞新闻
		apiRg.POST("news/:id/like", h.LikeNews)
		// 轮播 / 仪表盘实时推送
		apiRg.GET("carousels/:name/stream", h.StreamCarousel)
		apiRg.GET("dashboard/stream", h.StreamDashboard)
	}

	return router
}

// NewHandler 根据配置选择各记录的存储后端
func NewHandler(ctx context.Context, content storage.ContentStore) (*handler.Handler, error) {
	h := handler.New(content, auth.NewStaticAuthenticator(envs.AdminUsername, envs.AdminPassword, envs.AdminPasswordBcrypt))

	if database.Enabled() {
		database.InitDBClient(ctx)
		db := database.Client(ctx)
		h.Engagement = engagement.DBStore{DB: db}
		h.Grants = wizard.DBGrantRecorder{DB: db}
	}

	switch envs.ContactBackend {
	case contact.BackendLog:
	case contact.BackendMySQL:
		if !database.Enabled() {
			return nil, errors.New("contact backend mysql requires MYSQL_HOST")
		}
		h.Contact = contact.DBSubmitter{DB: database.Client(ctx)}
	case contact.BackendSQS:
		submitter, err := contact.NewSQSSubmitter(
			envs.AWSRegion, envs.AWSAccessKeyID, envs.AWSSecretAccessKey, envs.ContactSQSQueueURL,
		)
		if err != nil {
			return nil, err
		}
		h.Contact = submitter
	default:
		return nil, errors.Errorf("unknown contact backend %q", envs.ContactBackend)
	}
	return h, nil
}

// Run 启动 web 服务（以及内容目录监听），收到 SIGINT / SIGTERM 后优雅退出
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage.InitContent()
	content := storage.Content()

	h, err := NewHandler(ctx, content)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: ":" + envs.ServerPort, Handler: New(h)}
	logger := logging.GetSystemLogger()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), envs.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if envs.ContentWatch {
		g.Go(func() error {
			return content.Watch(gCtx, storage.DefaultDebounce)
		})
	}
	return g.Wait()
}
