package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"healthcall/logger"
)

// RequestIDHeader carries the correlation id of a webhook request.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id (reusing the caller's when present) and writes an access log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		logger.Info("%s %s | status=%d duration=%v request_id=%s client_ip=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond), id, c.ClientIP())
	}
}
