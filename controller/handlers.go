package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cakirmemati3-ui/video-backend/consts"
	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/mdb"
	"github.com/cakirmemati3-ui/video-backend/models"
	"github.com/cakirmemati3-ui/video-backend/service"
)

type Handler struct {
	fetcher *service.Fetcher
}

func NewHandler(fetcher *service.Fetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// FetchVideo resolves a share link into direct-URL video info.
// Accepts POST with a JSON body or GET with ?url=.
func (h *Handler) FetchVideo(c *gin.Context) {
	var videoURL string
	if c.Request.Method == http.MethodPost {
		var req models.FetchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.NewErrorResponse(
				"Invalid request format.", err.Error()))
			return
		}
		videoURL = req.URL
	} else {
		videoURL = c.Query("url")
	}
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			"URL required.", "Send 'url' in the POST body or as '?url=' query parameter."))
		return
	}

	log.Info("processing request for URL: %s", videoURL)

	info, err := h.fetcher.FetchVideoInfo(c.Request.Context(), videoURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Health reports service liveness for /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   consts.AppName,
		"version":   consts.AppVersion,
		"timestamp": time.Now().UTC(),
		"redis":     mdb.Redis != nil,
	})
}

// Platforms lists supported source sites and their capabilities.
func (h *Handler) Platforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": consts.SupportedPlatforms})
}

// Root is the API welcome document.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": consts.AppName + " API",
		"version": consts.AppVersion,
		"status":  "running",
		"endpoints": gin.H{
			"fetch":     "/api/fetch",
			"health":    "/api/health",
			"platforms": "/api/platforms",
		},
		"supported_platforms": []string{"Instagram", "TikTok", "YouTube"},
	})
}

// writeError maps a service error onto the uniform envelope. Unknown
// errors become an opaque 500 so internals never leak.
func writeError(c *gin.Context, err error) {
	if se, ok := service.AsError(err); ok {
		log.Warn("fetch failed (%s): %s", se.Kind, se.Error())
		c.JSON(se.Status, models.NewErrorResponse(se.Message, se.Detail))
		return
	}
	log.Error("unhandled fetch error: %v", err)
	c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
		"Server error.", "An unexpected error occurred."))
}
