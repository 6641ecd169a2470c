package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a uuid, honoring one supplied by
// an upstream proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set("request_id", rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

// RequestLog writes one line per request with method, path, caller,
// status and duration.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ip := utils.GetClientIP(c)
		log.Info("→ %s %s from %s", c.Request.Method, c.Request.URL.Path, ip)

		c.Next()

		log.Info("← %s %s - %d (%.3fs)",
			c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Seconds())
	}
}
