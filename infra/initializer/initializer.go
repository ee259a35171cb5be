// Package initializer builds the process-wide dependency graph: the
// logger, the HTTP providers, the cached rate source, and the
// conversion service constructed over them.
package initializer

import (
	"log/slog"

	infraprovider "github.com/querycalc/querycalc/infra/provider"
	"github.com/querycalc/querycalc/infra/rates"
	"github.com/querycalc/querycalc/pkg/config"
	"github.com/querycalc/querycalc/pkg/service/calc"
)

// Deps holds everything the host surfaces need.
type Deps struct {
	Logger *slog.Logger
	Calc   *calc.Service
	Rates  *rates.Service
}

// Initialize wires the dependencies from configuration. The rate
// service is a single instance: its caches and in-flight maps are what
// guarantee one outstanding request per key process-wide.
func Initialize(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	fx := infraprovider.NewFXRatesClient(cfg.FX.URL, cfg.FX.Timeout, logger)
	crypto := infraprovider.NewCryptoPriceClient(cfg.Crypto.URL, cfg.Crypto.Timeout, logger)

	rateSvc := rates.New(fx, crypto, logger,
		rates.WithFiatTTL(cfg.FX.CacheTTL),
		rates.WithCryptoTTL(cfg.Crypto.CacheTTL),
	)

	return &Deps{
		Logger: logger,
		Calc:   calc.New(rateSvc, logger),
		Rates:  rateSvc,
	}, nil
}
