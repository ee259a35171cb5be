// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"time"
)

// Server configures the HTTP host surface.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Log configures the logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[querycalc]"`
}

// FX configures the fiat exchange-rate feed and its cache.
type FX struct {
	URL      string        `envconfig:"URL" default:"https://open.er-api.com/v6/latest" validate:"required,url"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30m"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Crypto configures the crypto price feed and its cache. The cache TTL
// is much shorter than the fiat one because prices move faster.
type Crypto struct {
	URL      string        `envconfig:"URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"60s"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// RateLimit configures the per-client request limiter on the web API.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// App is the root configuration.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	FX        *FX        `envconfig:"FX"`
	Crypto    *Crypto    `envconfig:"CRYPTO"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
