package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, 10, cfg.DefaultPageLimit)
	assert.Equal(t, 5*time.Second, cfg.RedisTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("PAGE_LIMIT_DEFAULT", "25")
	t.Setenv("STORE_RECONCILE_ON_START", "true")
	t.Setenv("REDIS_COMMAND_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 25, cfg.DefaultPageLimit)
	assert.True(t, cfg.ReconcileOnStart)
	assert.Equal(t, 2*time.Second, cfg.RedisTimeout)
}

func TestLoad_PageLimitOutOfRangeFallsBack(t *testing.T) {
	t.Setenv("PAGE_LIMIT_DEFAULT", "500")

	cfg := Load()

	assert.Equal(t, 10, cfg.DefaultPageLimit)
}

func TestNormalizeDriver(t *testing.T) {
	assert.Equal(t, DriverMemory, normalizeDriver(" Memory "))
	assert.Equal(t, DriverRedis, normalizeDriver("redis"))
	assert.Equal(t, DriverRedis, normalizeDriver("unknown"))
}
