package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muandane/special-stack/icond/internal/cache"
)

// CacheHandler exposes cache introspection and invalidation.
type CacheHandler struct {
	cache *cache.IconCache
}

func NewCacheHandler(c *cache.IconCache) *CacheHandler {
	return &CacheHandler{cache: c}
}

// GetStats handles GET /cache/stats
func (h *CacheHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.GetStats())
}

// Clear handles DELETE /cache
func (h *CacheHandler) Clear(c *gin.Context) {
	h.cache.Clear()
	c.Status(http.StatusNoContent)
}
