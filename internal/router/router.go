package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/muandane/special-stack/icond/internal/cache"
	"github.com/muandane/special-stack/icond/internal/config"
	"github.com/muandane/special-stack/icond/internal/handlers"
	"github.com/muandane/special-stack/icond/internal/icon"
	"github.com/muandane/special-stack/icond/internal/middleware"
)

// Setup wires the middleware chain and routes onto a gin engine.
func Setup(cfg *config.ServerConfig, iconCfg *config.IconConfig, service *icon.Service, iconCache *cache.IconCache, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	metricsMiddleware := middleware.NewMetricsMiddleware()
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	r.Use(middleware.WithLogging(logger))
	r.Use(metricsMiddleware.WithMetrics())

	iconHandler := handlers.NewIconHandler(service, metricsMiddleware, logger, iconCfg.DefaultSize)
	cacheHandler := handlers.NewCacheHandler(iconCache)

	limited := r.Group("/", middleware.WithRateLimit(limiter))
	limited.GET("/icons", iconHandler.GetIcon)
	limited.POST("/icons/batch", iconHandler.BatchIcons)
	limited.POST("/cache/preload", iconHandler.Preload)
	limited.GET("/files/info", handlers.GetFileInfo)

	r.GET("/cache/stats", cacheHandler.GetStats)
	r.DELETE("/cache", cacheHandler.Clear)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", metricsMiddleware.Handler())

	return r
}
