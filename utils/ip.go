package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetClientIP resolves the caller address behind proxies.
func GetClientIP(c *gin.Context) string {
	realIp := c.GetHeader("X-Real-IP")
	if realIp != "" {
		return realIp
	}
	ip := c.GetHeader("X-Forwarded-For")
	if ip != "" {
		return strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	return c.ClientIP()
}
