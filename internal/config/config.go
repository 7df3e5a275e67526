package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	ListenAddr     string
	RateLimitRPS   float64
	RateLimitBurst int
}

type CacheConfig struct {
	MaxEntries int
	TTL        time.Duration
}

type IconConfig struct {
	// DefaultSize is used when a request carries no size hint.
	DefaultSize string
}

func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func GetCacheConfig() *CacheConfig {
	return &CacheConfig{
		MaxEntries: getEnvInt("ICON_CACHE_MAX_ENTRIES", 1000),
		TTL:        time.Duration(getEnvInt("ICON_CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
}

func GetIconConfig() *IconConfig {
	return &IconConfig{
		DefaultSize: getEnv("ICON_DEFAULT_SIZE", "large"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
