package rates_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querycalc/querycalc/infra/rates"
	"github.com/querycalc/querycalc/pkg/domain"
)

type fakeFX struct {
	calls atomic.Int64
	delay time.Duration
	rates map[string]float64
	err   error
}

func (f *fakeFX) FXRates(ctx context.Context, base string) (map[string]float64, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func (f *fakeFX) Name() string { return "fake-fx" }

type fakeCrypto struct {
	calls atomic.Int64
	usd   float64
	err   error
}

func (f *fakeCrypto) PriceUSD(ctx context.Context, feedID string) (float64, error) {
	f.calls.Add(1)
	if f.err != nil {
		return 0, f.err
	}
	return f.usd, nil
}

func (f *fakeCrypto) Name() string { return "fake-crypto" }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFiatRates_CachesWithinTTL(t *testing.T) {
	fx := &fakeFX{rates: map[string]float64{"EUR": 0.92}}
	svc := rates.New(fx, &fakeCrypto{}, testLogger())

	first, err := svc.FiatRates(context.Background(), "usd")
	require.NoError(t, err)
	second, err := svc.FiatRates(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(1), fx.calls.Load(), "second call must hit the cache")
	assert.InDelta(t, 0.92, first["EUR"], 1e-12)
	assert.InDelta(t, 1.0, second["USD"], 1e-12, "base currency maps to 1")
}

func TestFiatRates_ExpiryRefetches(t *testing.T) {
	fx := &fakeFX{rates: map[string]float64{"EUR": 0.92}}
	svc := rates.New(fx, &fakeCrypto{}, testLogger(), rates.WithFiatTTL(10*time.Millisecond))

	_, err := svc.FiatRates(context.Background(), "USD")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = svc.FiatRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(2), fx.calls.Load())
}

func TestFiatRates_ConcurrentCallsShareOneFetch(t *testing.T) {
	fx := &fakeFX{rates: map[string]float64{"EUR": 0.92}, delay: 50 * time.Millisecond}
	svc := rates.New(fx, &fakeCrypto{}, testLogger())

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.FiatRates(context.Background(), "USD")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, int64(1), fx.calls.Load(), "concurrent callers must coalesce into one fetch")
}

func TestFiatRates_FailureNotCached(t *testing.T) {
	fx := &fakeFX{err: errors.New("connection refused")}
	svc := rates.New(fx, &fakeCrypto{}, testLogger())

	_, err := svc.FiatRates(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)

	// A later call retries instead of serving the failure.
	fx.err = nil
	fx.rates = map[string]float64{"EUR": 0.92}
	table, err := svc.FiatRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.InDelta(t, 0.92, table["EUR"], 1e-12)
	assert.Equal(t, int64(2), fx.calls.Load())
}

func TestFiatRates_FetchTimeout(t *testing.T) {
	fx := &fakeFX{rates: map[string]float64{"EUR": 0.92}, delay: time.Second}
	svc := rates.New(fx, &fakeCrypto{}, testLogger(), rates.WithFetchTimeout(10*time.Millisecond))

	start := time.Now()
	_, err := svc.FiatRates(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCryptoPriceUSD_CachesWithinTTL(t *testing.T) {
	crypto := &fakeCrypto{usd: 64000}
	svc := rates.New(&fakeFX{}, crypto, testLogger())

	first, err := svc.CryptoPriceUSD(context.Background(), "bitcoin")
	require.NoError(t, err)
	second, err := svc.CryptoPriceUSD(context.Background(), "bitcoin")
	require.NoError(t, err)

	assert.Equal(t, int64(1), crypto.calls.Load())
	assert.InDelta(t, 64000, first, 1e-9)
	assert.InDelta(t, 64000, second, 1e-9)
}

func TestCryptoPriceUSD_DistinctKeysFetchSeparately(t *testing.T) {
	crypto := &fakeCrypto{usd: 100}
	svc := rates.New(&fakeFX{}, crypto, testLogger())

	_, err := svc.CryptoPriceUSD(context.Background(), "bitcoin")
	require.NoError(t, err)
	_, err = svc.CryptoPriceUSD(context.Background(), "ethereum")
	require.NoError(t, err)

	assert.Equal(t, int64(2), crypto.calls.Load())
}

func TestCryptoPriceUSD_FailureNotCached(t *testing.T) {
	crypto := &fakeCrypto{err: errors.New("timeout")}
	svc := rates.New(&fakeFX{}, crypto, testLogger())

	_, err := svc.CryptoPriceUSD(context.Background(), "bitcoin")
	require.ErrorIs(t, err, domain.ErrRateUnavailable)

	crypto.err = nil
	crypto.usd = 64000
	usd, err := svc.CryptoPriceUSD(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.InDelta(t, 64000, usd, 1e-9)
}
