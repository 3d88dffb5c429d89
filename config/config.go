package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort           string
	MongoURI             string
	MongoDatabase        string
	AdminToken           string
	CacheTTLMinutes      string
	LogLevel             string
	Timezone             string
	RateLimitPerMinute   string
	ForceShowGraceMinute string
}

// DrawConfig holds the fixed draw schedule parameters. Draws happen on
// Wednesday and Saturday at 20:00 in the configured civil timezone.
type DrawConfig struct {
	Timezone     string        `json:"timezone"`
	DrawHour     int           `json:"draw_hour"`
	NumberCount  int           `json:"number_count"`
	NumberMax    int           `json:"number_max"`
	StaleDays    int           `json:"stale_days"`
	ResyncPeriod time.Duration `json:"resync_period"`
}

// DefaultDrawConfig returns the draw schedule configuration for the Irish
// Wednesday/Saturday lotto.
func DefaultDrawConfig() *DrawConfig {
	return &DrawConfig{
		Timezone:     "Europe/Dublin",
		DrawHour:     20,
		NumberCount:  6,
		NumberMax:    47,
		StaleDays:    2,                // archive considered stale after 2 days without ingestion
		ResyncPeriod: 10 * time.Second, // clients re-fetch the authoritative instant this often
	}
}

// CacheConfig holds the in-memory result cache configuration.
type CacheConfig struct {
	DefaultTTL time.Duration `json:"default_ttl"`
	MaxSize    int           `json:"max_size"`
}

// DefaultCacheConfig returns the default result cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		DefaultTTL: 5 * time.Minute, // Default 5 minute TTL
		MaxSize:    1000,            // Maximum 1000 items in memory
	}
}

// RateLimitConfig holds the fixed-window rate limiter configuration.
type RateLimitConfig struct {
	RequestsPerWindow int           `json:"requests_per_window"`
	Window            time.Duration `json:"window"`
}

// DefaultRateLimitConfig returns default advisory rate limiting configuration.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerWindow: 120, // generous; the limiter is advisory, not safety-critical
		Window:            time.Minute,
	}
}

// GetCacheTTL returns the cache TTL from environment or default.
func (c *Config) GetCacheTTL() time.Duration {
	if c.CacheTTLMinutes == "" {
		return 5 * time.Minute
	}

	minutes, err := strconv.Atoi(c.CacheTTLMinutes)
	if err != nil || minutes <= 0 {
		logrus.Warnf("Invalid CACHE_TTL_MINUTES value: %s, using default 5 minutes", c.CacheTTLMinutes)
		return 5 * time.Minute
	}

	return time.Duration(minutes) * time.Minute
}

// GetRateLimitPerMinute returns the per-client request budget from
// environment or default.
func (c *Config) GetRateLimitPerMinute() int {
	if c.RateLimitPerMinute == "" {
		return DefaultRateLimitConfig().RequestsPerWindow
	}

	n, err := strconv.Atoi(c.RateLimitPerMinute)
	if err != nil || n <= 0 {
		logrus.Warnf("Invalid RATE_LIMIT_PER_MINUTE value: %s, using default", c.RateLimitPerMinute)
		return DefaultRateLimitConfig().RequestsPerWindow
	}

	return n
}

// GetForceShowGrace returns the grace window applied to force-shown
// countdowns. Zero means a force-shown countdown never auto-expires.
func (c *Config) GetForceShowGrace() time.Duration {
	if c.ForceShowGraceMinute == "" {
		return 0
	}

	minutes, err := strconv.Atoi(c.ForceShowGraceMinute)
	if err != nil || minutes < 0 {
		logrus.Warnf("Invalid FORCE_SHOW_GRACE_MINUTES value: %s, using no grace window", c.ForceShowGraceMinute)
		return 0
	}

	return time.Duration(minutes) * time.Minute
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:        getEnv("MONGO_DB", "lotto"),
		AdminToken:           getEnv("ADMIN_TOKEN", ""),
		CacheTTLMinutes:      getEnv("CACHE_TTL_MINUTES", "5"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		Timezone:             getEnv("TIMEZONE", "Europe/Dublin"),
		RateLimitPerMinute:   getEnv("RATE_LIMIT_PER_MINUTE", "120"),
		ForceShowGraceMinute: getEnv("FORCE_SHOW_GRACE_MINUTES", "0"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
