package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/kheobs/labsite/pkg/utils/ginx"
)

// Cors 跨域配置，allowOrigins 为逗号分隔的来源列表，为空表示不限制
func Cors(allowOrigins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	origins := lo.Filter(
		lo.Map(strings.Split(allowOrigins, ","), func(o string, _ int) string { return strings.TrimSpace(o) }),
		func(o string, _ int) bool { return o != "" },
	)
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowHeaders(ginx.RequestIDHeaderKey)
	cfg.AddExposeHeaders(ginx.RequestIDHeaderKey)

	return cors.New(cfg)
}
