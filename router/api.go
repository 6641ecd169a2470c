package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/cakirmemati3-ui/video-backend/config"
	"github.com/cakirmemati3-ui/video-backend/controller"
	"github.com/cakirmemati3-ui/video-backend/middleware"
)

// API assembles the gin engine with the full middleware chain.
func API(h *controller.Handler, cfg config.Config, rdb *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLog())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.Origins()))

	// public
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/platforms", h.Platforms)

		limited := api.Group("/", middleware.RateLimit(rdb, cfg.RateLimitPerMinute))
		{
			limited.POST("/fetch", h.FetchVideo)
			limited.GET("/fetch", h.FetchVideo)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return router
}
