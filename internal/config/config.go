// Package config loads settings for the leakradar command-line tool.
// The SDK itself takes all configuration through leakradar.New options;
// nothing here is consumed by the library.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds CLI configuration loaded from the environment.
type Config struct {
	Token          string        `mapstructure:"token"`
	BaseURL        string        `mapstructure:"base_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file in the working directory. Variables are prefixed with
// LEAKRADAR_ (e.g. LEAKRADAR_TOKEN).
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvPrefix("leakradar")

	v.SetDefault("token", "")
	v.SetDefault("base_url", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must be positive)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
