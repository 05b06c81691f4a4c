package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kheobs/labsite/pkg/envs"
)

var initOnce sync.Once

// 访问日志
var accessLogger *logrus.Logger

// web 页面日志（Handler...)
var webLogger *logrus.Logger

// sql 日志（仅在启用 MySQL 时使用）
var sqlLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeWeb    = "web"
	LogTypeSql    = "sql"
)

func InitLogger() {
	initOnce.Do(func() {
		initSystemLogger()

		accessLogger = newJsonLogger(LogTypeAccess)
		webLogger = newJsonLogger(LogTypeWeb)
		sqlLogger = newJsonLogger(LogTypeSql)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetWebLogger() *logrus.Logger {
	if webLogger == nil {
		return GetSystemLogger()
	}
	return webLogger
}

func GetSqlLogger() *logrus.Logger {
	if sqlLogger == nil {
		return GetSystemLogger()
	}
	return sqlLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	logger.SetLevel(parseLevel(envs.LogLevel))

	return logger
}

// 解析日志级别，非法值降级为 info
func parseLevel(lv string) logrus.Level {
	level, err := logrus.ParseLevel(lv)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
