package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/models"
	"github.com/cakirmemati3-ui/video-backend/utils"
)

const rateLimitWindow = time.Minute

// RateLimit caps requests per client IP per minute. With a redis
// client the window is a shared INCR/EXPIRE counter so every node
// enforces the same budget; without one the process-local limiter map
// is used.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.GetClientIP(c)
		limited := false
		if rdb != nil {
			limited = redisLimited(c.Request.Context(), rdb, ip, int64(perMinute))
		} else {
			limited, _ = utils.Limiter.IsLimited("ratelimit:"+ip, rateLimitWindow, int64(perMinute))
		}
		if limited {
			log.Warn("rate limit exceeded from IP: %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.NewErrorResponse(
				"Too many requests.",
				fmt.Sprintf("At most %d requests per minute are allowed. Slow down and retry shortly.", perMinute),
			))
			return
		}
		c.Next()
	}
}

func redisLimited(ctx context.Context, rdb *redis.Client, ip string, max int64) bool {
	key := "ratelimit:" + ip
	n, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		// redis hiccup must not take the API down
		log.Error("rate limit incr: %v", err)
		return false
	}
	if n == 1 {
		rdb.Expire(ctx, key, rateLimitWindow)
	}
	return n > max
}
