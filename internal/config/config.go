// Package config reads process settings from the environment and an optional
// .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr          = ":8080"
	defaultDriver        = "postgres"
	defaultConnRetries   = 10
	defaultRetryInterval = 5 * time.Second
)

// Config holds settings shared by every command.
type Config struct {
	DatabaseURL   string
	DBDriver      string
	Addr          string
	Debug         bool
	ConnRetries   int
	RetryInterval time.Duration
}

// Load reads .env if present and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		DatabaseURL:   getenv("DATABASE_URL"),
		DBDriver:      getenv("DB_DRIVER"),
		Addr:          getenv("ADDR"),
		Debug:         strings.EqualFold(getenv("LOG_LEVEL"), "debug"),
		ConnRetries:   defaultConnRetries,
		RetryInterval: defaultRetryInterval,
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = defaultDriver
	}
	if cfg.Addr == "" {
		if port := getenv("PORT"); port != "" {
			cfg.Addr = ":" + strings.TrimPrefix(port, ":")
		} else {
			cfg.Addr = defaultAddr
		}
	}
	if v, err := strconv.Atoi(getenv("DB_CONNECT_RETRIES")); err == nil && v > 0 {
		cfg.ConnRetries = v
	}
	if v, err := time.ParseDuration(getenv("DB_RETRY_INTERVAL")); err == nil && v > 0 {
		cfg.RetryInterval = v
	}
	return cfg
}
