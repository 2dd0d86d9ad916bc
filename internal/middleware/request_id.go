package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kuma-assistant/pkg/log"
)

// RequestID reuses the caller's X-Request-ID or mints one, echoes it back
// and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
