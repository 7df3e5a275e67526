package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muandane/special-stack/icond/internal/icon"
	"github.com/muandane/special-stack/icond/internal/middleware"
	"github.com/muandane/special-stack/icond/internal/probe"
)

// IconHandler serves cache-fronted icon lookups.
type IconHandler struct {
	service     *icon.Service
	metrics     *middleware.MetricsMiddleware
	logger      *slog.Logger
	defaultSize string
}

func NewIconHandler(service *icon.Service, m *middleware.MetricsMiddleware, logger *slog.Logger, defaultSize string) *IconHandler {
	return &IconHandler{
		service:     service,
		metrics:     m,
		logger:      logger,
		defaultSize: defaultSize,
	}
}

// GetIcon handles GET /icons?path=...&size=small|large
func (h *IconHandler) GetIcon(c *gin.Context) {
	path := c.Query("path")
	if err := probe.ValidatePath(path); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sizeParam := c.Query("size")
	if sizeParam == "" {
		sizeParam = h.defaultSize
	}
	size := icon.ParseSize(sizeParam)

	result, err := h.service.Lookup(path, size)
	if err != nil {
		h.metrics.RecordCacheMiss()
		if errors.Is(err, probe.ErrNotAccessible) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.FromCache {
		h.metrics.RecordCacheHit()
	} else {
		h.metrics.RecordCacheMiss()
		h.metrics.RecordExtraction()
	}

	c.JSON(http.StatusOK, result)
}

type batchRequest struct {
	Paths []string `json:"paths" binding:"required"`
	Size  string   `json:"size"`
}

// BatchIcons handles POST /icons/batch with a JSON list of paths. Each
// path gets its own result or error; one bad path never aborts the rest.
func (h *IconHandler) BatchIcons(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.service.Batch(req.Paths, icon.ParseSize(req.Size))
	c.JSON(http.StatusOK, gin.H{"icons": items})
}

type preloadRequest struct {
	Paths []string `json:"paths" binding:"required"`
}

// Preload handles POST /cache/preload. Population is best-effort and
// runs before the response returns.
func (h *IconHandler) Preload(c *gin.Context) {
	var req preloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("cache preload requested", "paths", len(req.Paths))
	h.service.Preload(c.Request.Context(), req.Paths)
	c.JSON(http.StatusAccepted, gin.H{"preloaded": len(req.Paths)})
}
