package main

import (
	"log/slog"
	"os"

	"github.com/muandane/special-stack/icond/internal/cache"
	"github.com/muandane/special-stack/icond/internal/config"
	"github.com/muandane/special-stack/icond/internal/icon"
	"github.com/muandane/special-stack/icond/internal/router"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	serverCfg := config.GetServerConfig()
	cacheCfg := config.GetCacheConfig()
	iconCfg := config.GetIconConfig()

	// One shared cache instance for the process, injected everywhere.
	iconCache := cache.New(cacheCfg.MaxEntries, cacheCfg.TTL)
	service := icon.NewService(icon.NewAcquirer(), iconCache, logger)

	r := router.Setup(serverCfg, iconCfg, service, iconCache, logger)

	logger.Info("starting icon service",
		"addr", serverCfg.ListenAddr,
		"cache_max_entries", cacheCfg.MaxEntries,
		"cache_ttl", cacheCfg.TTL.String(),
	)
	if err := r.Run(serverCfg.ListenAddr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
