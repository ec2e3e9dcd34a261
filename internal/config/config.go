package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
)

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	StoreDriver       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisTimeout      time.Duration
	ReconcileOnStart  bool
	DefaultPageLimit  int
	ShutdownTimeout   time.Duration
}

// Load loads configuration from environment variables and an optional .env
// file, then applies overrides from an optional catalog.yaml.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:          getenv("APP_SERVICE", "catalog"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      getenv("ENVIRONMENT", "development"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getenv("LOG_FORMAT", "json")),
		StoreDriver:      normalizeDriver(getenv("STORE_DRIVER", DriverRedis)),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		RedisDB:          int(getenvInt64("REDIS_DB", 0)),
		RedisTimeout:     getenvDuration("REDIS_COMMAND_TIMEOUT", 5*time.Second),
		ReconcileOnStart: getenvBool("STORE_RECONCILE_ON_START", false),
		DefaultPageLimit: int(getenvInt64("PAGE_LIMIT_DEFAULT", 10)),
		ShutdownTimeout:  getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	applyFileOverrides(&cfg)

	if cfg.DefaultPageLimit < 1 || cfg.DefaultPageLimit > 100 {
		cfg.DefaultPageLimit = 10
	}
	return cfg
}

func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DriverMemory:
		return DriverMemory
	default:
		return DriverRedis
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
