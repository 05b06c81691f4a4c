package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kheobs/labsite/pkg/utils/ginx"
	"github.com/kheobs/labsite/pkg/utils/uuid"
)

// RequestID 为每个请求生成（或透传）Request ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)

		if !uuid.IsHexUUID(requestID) {
			requestID = uuid.GenUUID4()
		}
		ginx.SetRequestID(c, requestID)
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}
