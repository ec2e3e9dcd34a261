package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// applyFileOverrides merges values from an optional catalog.yaml on top of
// the environment-derived configuration. A missing file is not an error.
func applyFileOverrides(cfg *Config) {
	v := viper.New()

	v.SetConfigName("catalog")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/catalog")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("[config] catalog.yaml ignored: %v", err)
		}
		return
	}

	if v.IsSet("server.addr") {
		cfg.HTTPAddr = v.GetString("server.addr")
	}
	if v.IsSet("server.default_page_limit") {
		cfg.DefaultPageLimit = v.GetInt("server.default_page_limit")
	}
	if v.IsSet("store.driver") {
		cfg.StoreDriver = normalizeDriver(v.GetString("store.driver"))
	}
	if v.IsSet("store.redis_addr") {
		cfg.RedisAddr = v.GetString("store.redis_addr")
	}
	if v.IsSet("store.command_timeout") {
		if d := v.GetDuration("store.command_timeout"); d > 0 {
			cfg.RedisTimeout = d
		}
	}
	if v.IsSet("store.reconcile_on_start") {
		cfg.ReconcileOnStart = v.GetBool("store.reconcile_on_start")
	}
	if v.IsSet("log.level") {
		cfg.LogLevel = strings.ToLower(v.GetString("log.level"))
	}
}
