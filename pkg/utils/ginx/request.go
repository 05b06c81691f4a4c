package ginx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/kheobs/labsite/pkg/envs"
)

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// ErrNilRequestBody ...
var ErrNilRequestBody = errors.New("request Body is nil")

// ReadRequestBody will return the body in []byte, without change the origin body
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrNilRequestBody
	}

	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// GetClientIP 获取客户端 IP（优先使用反向代理传递的 Header）
func GetClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		if ip := c.GetHeader(envs.RealClientIPHeaderKey); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}

// GetIntParam 获取路径参数中的整数
func GetIntParam(c *gin.Context, key string) (int, bool) {
	v, err := strconv.Atoi(c.Param(key))
	return v, err == nil
}

// GetIntQuery 获取查询参数中的整数，不合法时返回默认值
func GetIntQuery(c *gin.Context, key string, defaultValue int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return defaultValue
	}
	return v
}
