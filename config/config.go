// Package config loads service settings from config.yaml and the
// environment. Nothing here opens connections; main constructs the
// store and cache from the loaded values and passes them down.
package config

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/viper"
)

// Config keys. Environment overrides use the SHOPLIST_ prefix, e.g.
// SHOPLIST_PORT=8080.
const (
	keyPort          = "port"
	keyDatabasePath  = "database_path"
	keyRedisAddr     = "redis_addr"
	keyRedisPassword = "redis_password"
	keyCacheTTL      = "cache_ttl"
	keyAPIBaseURL    = "api_base_url"
)

// Config holds everything the server and client binaries need to run.
type Config struct {
	Port          int
	DatabasePath  string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	APIBaseURL    string
}

// Load reads config.yaml from the working directory (optional) and the
// environment. Missing file falls back to defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, 5000)
	v.SetDefault(keyDatabasePath, "shopping.db")
	v.SetDefault(keyRedisAddr, "")
	v.SetDefault(keyRedisPassword, "")
	v.SetDefault(keyCacheTTL, "5m")
	v.SetDefault(keyAPIBaseURL, "http://localhost:5000/api")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("shoplist")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return Config{
		Port:          v.GetInt(keyPort),
		DatabasePath:  v.GetString(keyDatabasePath),
		RedisAddr:     v.GetString(keyRedisAddr),
		RedisPassword: v.GetString(keyRedisPassword),
		CacheTTL:      v.GetDuration(keyCacheTTL),
		APIBaseURL:    v.GetString(keyAPIBaseURL),
	}, nil
}

// CacheEnabled reports whether a Redis cache should be wired in.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// NewRedisClient builds a Redis client from the configured address.
// Callers own the client lifecycle.
func (c Config) NewRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
	})
}
