// Package rates provides the cached, request-coalescing view over the
// fiat exchange-rate and crypto price providers. Fiat tables live for
// 30 minutes; crypto prices for 60 seconds, reflecting their higher
// volatility. At most one network request per cache key is outstanding
// at any time: concurrent callers for the same key share one fetch and
// observe the same outcome. Failures are never cached, so the next
// call after a failure retries.
package rates

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/querycalc/querycalc/pkg/domain"
	"github.com/querycalc/querycalc/pkg/provider"
)

const (
	// DefaultFiatTTL is how long a fetched fiat rate table stays fresh.
	DefaultFiatTTL = 30 * time.Minute
	// DefaultCryptoTTL is how long a fetched crypto USD price stays fresh.
	DefaultCryptoTTL = 60 * time.Second
	// DefaultFetchTimeout bounds every network call.
	DefaultFetchTimeout = 5 * time.Second
)

type fiatEntry struct {
	rates     map[string]float64
	expiresAt time.Time
}

type priceEntry struct {
	usd       float64
	expiresAt time.Time
}

// Service implements provider.RateSource. Construct it once and share
// it; its caches and in-flight registrations are what make the
// one-request-per-key guarantee hold process-wide.
type Service struct {
	fx     provider.FXRateProvider
	crypto provider.CryptoPriceProvider
	logger *slog.Logger

	fiatTTL      time.Duration
	cryptoTTL    time.Duration
	fetchTimeout time.Duration

	mu     sync.RWMutex
	fiat   map[string]*fiatEntry
	prices map[string]*priceEntry

	flight singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithFiatTTL overrides the fiat table TTL.
func WithFiatTTL(ttl time.Duration) Option {
	return func(s *Service) { s.fiatTTL = ttl }
}

// WithCryptoTTL overrides the crypto price TTL.
func WithCryptoTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cryptoTTL = ttl }
}

// WithFetchTimeout overrides the per-fetch timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) { s.fetchTimeout = d }
}

// New creates a rate service over the two providers.
func New(fx provider.FXRateProvider, crypto provider.CryptoPriceProvider, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		fx:           fx,
		crypto:       crypto,
		logger:       logger,
		fiatTTL:      DefaultFiatTTL,
		cryptoTTL:    DefaultCryptoTTL,
		fetchTimeout: DefaultFetchTimeout,
		fiat:         make(map[string]*fiatEntry),
		prices:       make(map[string]*priceEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FiatRates returns the rate table for a base currency, fetching at
// most once per TTL window. The base itself maps to 1 in the returned
// table, so same-currency lookups never need a live rate.
func (s *Service) FiatRates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(base)
	if rates := s.cachedFiat(base); rates != nil {
		return rates, nil
	}

	v, err, _ := s.flight.Do("fiat:"+base, func() (any, error) {
		// A waiter that queued behind a successful fetch finds the
		// fresh entry here without a second network call.
		if rates := s.cachedFiat(base); rates != nil {
			return rates, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		fetched, fetchErr := s.fx.FXRates(fetchCtx, base)
		if fetchErr != nil {
			s.logger.Warn("fx rate fetch failed", "base", base, "error", fetchErr)
			return nil, domain.ErrRateUnavailable
		}

		rates := make(map[string]float64, len(fetched)+1)
		for code, rate := range fetched {
			rates[strings.ToUpper(code)] = rate
		}
		rates[base] = 1

		s.mu.Lock()
		s.fiat[base] = &fiatEntry{rates: rates, expiresAt: time.Now().Add(s.fiatTTL)}
		s.mu.Unlock()

		s.logger.Debug("fx rates cached", "base", base, "count", len(rates))
		return rates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]float64), nil
}

// CryptoPriceUSD returns the USD unit price for a feed ID, fetching at
// most once per TTL window.
func (s *Service) CryptoPriceUSD(ctx context.Context, feedID string) (float64, error) {
	if usd, ok := s.cachedPrice(feedID); ok {
		return usd, nil
	}

	v, err, _ := s.flight.Do("crypto:"+feedID, func() (any, error) {
		if usd, ok := s.cachedPrice(feedID); ok {
			return usd, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		usd, fetchErr := s.crypto.PriceUSD(fetchCtx, feedID)
		if fetchErr != nil {
			s.logger.Warn("crypto price fetch failed", "feed_id", feedID, "error", fetchErr)
			return nil, domain.ErrRateUnavailable
		}

		s.mu.Lock()
		s.prices[feedID] = &priceEntry{usd: usd, expiresAt: time.Now().Add(s.cryptoTTL)}
		s.mu.Unlock()

		s.logger.Debug("crypto price cached", "feed_id", feedID, "usd", usd)
		return usd, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// cachedFiat returns a live table or nil. Expired entries read as a
// miss; they are replaced on the next successful fetch, not mutated.
func (s *Service) cachedFiat(base string) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.fiat[base]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.rates
}

func (s *Service) cachedPrice(feedID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.prices[feedID]
	if !ok || time.Now().After(entry.expiresAt) {
		return 0, false
	}
	return entry.usd, true
}

var _ provider.RateSource = (*Service)(nil)
