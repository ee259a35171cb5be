package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, seeding it from the
// given .env files if any exist. Missing files are not an error; the
// process environment always wins.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using process environment")
		}
	} else {
		for _, path := range envFiles {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("environment file not loaded", "path", path, "error", err)
			}
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("configuration loaded",
		"env", cfg.Env,
		"fx_url", cfg.FX.URL,
		"fx_cache_ttl", cfg.FX.CacheTTL,
		"crypto_url", cfg.Crypto.URL,
		"crypto_cache_ttl", cfg.Crypto.CacheTTL,
	)
	return &cfg, nil
}
