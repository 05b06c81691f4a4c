package envs

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/kheobs/labsite/pkg/common/runmode"
	"github.com/kheobs/labsite/pkg/common/runtime"
	"github.com/kheobs/labsite/pkg/utils/envx"
	"github.com/kheobs/labsite/pkg/utils/pathx"
)

// 必须最先初始化：.env 中的值需要在下面的变量读取前生效（不覆盖已存在的环境变量）
var _ = loadDotEnv()

func loadDotEnv() error {
	return godotenv.Load(envx.Get("DOTENV_PATH", ".env"))
}

// 以下变量值可通过环境变量指定
var (
	// Domain 服务域名
	Domain = envx.Get("DOMAIN", "www.kheobs.org")

	// DomainScheme 服务域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "https")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// ShutdownTimeout 优雅退出等待时间
	ShutdownTimeout = envx.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// TmplFileBaseDir 模板文件目录
	TmplFileBaseDir = envx.Get("TMPL_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../templates"))

	// StaticFileBaseDir 静态文件目录
	StaticFileBaseDir = envx.Get("STATIC_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../static"))

	// ContentBaseDir 站点内容（团队、项目、论文、新闻、工具等）存放目录
	ContentBaseDir = envx.Get("CONTENT_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../data"))

	// ContentWatch 是否监听内容目录变更并热加载，默认仅调试模式开启
	ContentWatch = envx.GetBool("CONTENT_WATCH", runtime.IsDebug())

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogToFile 是否同时写入日志文件（容器部署时可关闭，仅输出到 stdout）
	LogToFile = envx.GetBool("LOG_TO_FILE", true)

	// LogMaxSizeMB 单个日志文件大小上限
	LogMaxSizeMB = envx.GetInt("LOG_MAX_SIZE_MB", 128)

	// LogMaxBackups 保留的历史日志文件数
	LogMaxBackups = envx.GetInt("LOG_MAX_BACKUPS", 10)

	// LogMaxAgeDays 历史日志保留天数
	LogMaxAgeDays = envx.GetInt("LOG_MAX_AGE_DAYS", 14)

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// ContactEmail 联系邮箱
	ContactEmail = envx.Get("CONTACT_EMAIL", "info@kheobs.org")

	// RealClientIPHeaderKey 反向代理传递真实客户端 IP 的 Header
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// CorsAllowOrigins 允许跨域的来源，逗号分隔，为空表示不限制
	CorsAllowOrigins = envx.Get("CORS_ALLOW_ORIGINS", "")

	// GoogleSiteVerificationCode 谷歌站点验证码
	GoogleSiteVerificationCode = envx.Get("GOOGLE_SITE_VERIFICATION_CODE", "")

	// DefaultLocale 站点默认语言（en/km）
	DefaultLocale = envx.Get("DEFAULT_LOCALE", "en")
)

// 会话 & 管理后台
var (
	// SessionSecret 会话 Cookie 签名密钥，为空时启动时随机生成（重启后会话失效）
	SessionSecret = envx.Get("SESSION_SECRET", "")

	// SessionSecureCookie 会话 Cookie 是否仅允许 https
	SessionSecureCookie = envx.GetBool("SESSION_SECURE_COOKIE", false)

	// AdminUsername 管理员用户名
	AdminUsername = envx.Get("ADMIN_USERNAME", "admin")

	// AdminPassword 管理员密码（明文），与 AdminPasswordBcrypt 二选一，均为空则禁用后台登录
	AdminPassword = envx.Get("ADMIN_PASSWORD", "")

	// AdminPasswordBcrypt 管理员密码（bcrypt 哈希）
	AdminPasswordBcrypt = envx.Get("ADMIN_PASSWORD_BCRYPT", "")
)

// 工具 & 仪表盘
var (
	// WizardAuthDelay 工具访问向导中模拟认证的耗时
	WizardAuthDelay = envx.GetDuration("WIZARD_AUTH_DELAY", time.Second)

	// DashboardRefresh 气候仪表盘推送间隔
	DashboardRefresh = envx.GetDuration("DASHBOARD_REFRESH", 5*time.Second)
)

// 联系表单
var (
	// ContactBackend 联系表单提交后端（log/mysql/sqs）
	ContactBackend = envx.Get("CONTACT_BACKEND", "log")

	// ContactSQSQueueURL 联系表单 SQS 队列地址
	ContactSQSQueueURL = envx.Get("CONTACT_SQS_QUEUE_URL", "")

	// AWSRegion AWS 区域
	AWSRegion = envx.Get("AWS_REGION", "ap-southeast-1")

	// AWSAccessKeyID AWS AccessKey
	AWSAccessKeyID = envx.Get("AWS_ACCESS_KEY_ID", "")

	// AWSSecretAccessKey AWS SecretKey
	AWSSecretAccessKey = envx.Get("AWS_SECRET_ACCESS_KEY", "")
)

// 数据库（MysqlHost 为空时不启用，点赞/联系表单等记录仅保存在内存或日志中）
var (
	MysqlHost     = envx.Get("MYSQL_HOST", "")
	MysqlPort     = envx.Get("MYSQL_PORT", "3306")
	MysqlUser     = envx.Get("MYSQL_USER", "root")
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "labsite")
	MysqlCharSet  = envx.Get("MYSQL_CHARSET", "utf8mb4")
)

// BaseDir 项目根目录
var BaseDir = filepath.Join(pathx.GetCurPKGPath(), "../..")
