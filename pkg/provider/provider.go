// Package provider defines the contracts between the conversion
// engine and its external data feeds. Implementations live under
// infra/provider; the cached, deduplicating source lives under
// infra/rates.
package provider

import "context"

// FXRateProvider fetches a full exchange-rate table for one base
// currency: target code -> rate relative to 1 unit of base.
type FXRateProvider interface {
	FXRates(ctx context.Context, base string) (map[string]float64, error)
	Name() string
}

// CryptoPriceProvider fetches the USD price of one crypto asset,
// identified by its external price-feed ID.
type CryptoPriceProvider interface {
	PriceUSD(ctx context.Context, feedID string) (float64, error)
	Name() string
}

// RateSource is what the conversion service consumes: the cached,
// request-coalescing view over the two providers.
type RateSource interface {
	// FiatRates returns the rate table for base, with base -> 1
	// injected, so same-currency lookups never need a live rate.
	FiatRates(ctx context.Context, base string) (map[string]float64, error)
	// CryptoPriceUSD returns the USD unit price for a feed ID.
	CryptoPriceUSD(ctx context.Context, feedID string) (float64, error)
}
