package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const REQUEST_ID_KEY = "request_id"

// RequestId tags every request with an id, honouring one supplied by an
// upstream proxy.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(REQUEST_ID_KEY, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}
