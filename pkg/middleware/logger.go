package middleware

import (
	"bytes"
	"strings"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kheobs/labsite/pkg/logging"
	"github.com/kheobs/labsite/pkg/utils/ginx"
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write ...
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// 不记录请求 / 响应体的路径前缀（SSE 长连接、静态文件）
var bodylessPathPrefixes = []string{"/static/", "/apis/carousels/", "/apis/dashboard/"}

func skipBody(path string) bool {
	for _, prefix := range bodylessPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Logger 访问日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqBody, respBody := "", ""
		withBody := !skipBody(c.Request.URL.Path)
		if withBody {
			if requestBody, err := ginx.ReadRequestBody(c.Request); err == nil {
				reqBody = stringx.Truncate(string(requestBody), 1024)
			}
		}

		writer := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		if withBody {
			c.Writer = writer
		}

		c.Next()

		// 检查错误信息，以手动设置的为主，否则检查 c.Errors
		errStr, hasErr := ginx.GetError(c)
		if !hasErr && len(c.Errors) > 0 {
			errStr = c.Errors.String()
			hasErr = true
		}

		// 统计请求耗时，单位为 ms，限制最小 1ms
		duration := time.Since(start)
		latency := float64(duration/time.Millisecond) + 1

		// 请求参数
		params := stringx.Truncate(c.Request.URL.RawQuery, 1024)

		// 如果没有错误信息，则不关注 respBody
		if hasErr {
			respBody = stringx.Truncate(writer.body.String(), 1024)
		}

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"params":    params,
			"reqBody":   reqBody,
			"respBody":  respBody,
			"status":    c.Writer.Status(),
			"latency":   latency,
			"requestID": ginx.GetRequestID(c),
			"clientID":  ginx.GetClientID(c),
			"clientIP":  ginx.GetClientIP(c),
			"error":     errStr,
		}

		logger := logging.GetAccessLogger()
		if hasErr {
			logger.WithFields(fields).Error("-")
		} else {
			logger.WithFields(fields).Info("-")
		}
	}
}
