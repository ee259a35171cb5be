package calc_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querycalc/querycalc/pkg/domain"
	"github.com/querycalc/querycalc/pkg/service/calc"
)

// fakeRates serves canned data and counts network-shaped calls, so
// tests can assert which paths stay offline.
type fakeRates struct {
	fiatCalls   atomic.Int64
	cryptoCalls atomic.Int64
	fiat        map[string]float64
	prices      map[string]float64
	fiatErr     error
	cryptoErr   error
}

func (f *fakeRates) FiatRates(ctx context.Context, base string) (map[string]float64, error) {
	f.fiatCalls.Add(1)
	if f.fiatErr != nil {
		return nil, f.fiatErr
	}
	return f.fiat, nil
}

func (f *fakeRates) CryptoPriceUSD(ctx context.Context, feedID string) (float64, error) {
	f.cryptoCalls.Add(1)
	if f.cryptoErr != nil {
		return 0, f.cryptoErr
	}
	usd, ok := f.prices[feedID]
	if !ok {
		return 0, domain.ErrRateUnavailable
	}
	return usd, nil
}

func newService(rates *fakeRates) *calc.Service {
	return calc.New(rates, slog.New(slog.DiscardHandler))
}

func defaultRates() *fakeRates {
	return &fakeRates{
		fiat: map[string]float64{
			"USD": 1,
			"EUR": 0.92,
			"GBP": 0.79,
			"JPY": 148.5,
		},
		prices: map[string]float64{
			"bitcoin":  64000,
			"ethereum": 3200,
		},
	}
}

func TestQuery_UnitConversions(t *testing.T) {
	svc := newService(defaultRates())

	tests := []struct {
		name        string
		query       string
		input       string
		inputLabel  string
		result      string
		resultLabel string
	}{
		{"km to miles", "5 km to miles", "5 km", "Kilometers", "3.106864 mi", "Miles"},
		{"exponent area form", "1 ha to m^2", "1 ha", "Hectares", "10,000 m²", "Square Meters"},
		{"data units", "2 gb to mb", "2 GB", "Gigabytes", "2,000 MB", "Megabytes"},
		{"word aliases", "3 hours to minutes", "3 h", "Hours", "180 min", "Minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.input, res.Input)
			assert.Equal(t, tt.inputLabel, res.InputLabel)
			assert.Equal(t, tt.result, res.Result)
			assert.Equal(t, tt.resultLabel, res.ResultLabel)
		})
	}
}

func TestQuery_TemperatureConversions(t *testing.T) {
	svc := newService(defaultRates())

	tests := []struct {
		name   string
		query  string
		result string
	}{
		{"boiling point", "100 c to f", "212 °F"},
		{"scales cross", "-40 c to f", "-40 °F"},
		{"to kelvin", "0 celsius to kelvin", "273.150000 K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.result, res.Result)
		})
	}
}

func TestQuery_TemperatureIsNotMixable(t *testing.T) {
	svc := newService(defaultRates())

	// One temperature side and one linear side is never a conversion.
	_, err := svc.Query(context.Background(), "100 c to km")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestQuery_CategoryMismatch(t *testing.T) {
	svc := newService(defaultRates())

	_, err := svc.Query(context.Background(), "5 km to kg")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestQuery_Arithmetic(t *testing.T) {
	svc := newService(defaultRates())

	tests := []struct {
		name        string
		query       string
		result      string
		resultLabel string
	}{
		{"precedence", "2+2*2", "6", "Six"},
		{"parens", "(2+2)*2", "8", "Eight"},
		{"power", "2^10", "1,024", "One Thousand Twenty Four"},
		{"fractional has no words", "10/4", "2.500000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.result, res.Result)
			assert.Equal(t, tt.resultLabel, res.ResultLabel)
		})
	}
}

func TestQuery_MonetaryFiat(t *testing.T) {
	rates := defaultRates()
	svc := newService(rates)

	res, err := svc.Query(context.Background(), "$50 to EUR")
	require.NoError(t, err)
	assert.Equal(t, "50 USD", res.Input)
	assert.Equal(t, "US Dollar", res.InputLabel)
	assert.Equal(t, "46 EUR", res.Result)
	assert.Equal(t, "Euro", res.ResultLabel)
}

func TestQuery_MonetaryFiatToJPY(t *testing.T) {
	svc := newService(defaultRates())

	res, err := svc.Query(context.Background(), "100 usd to jpy")
	require.NoError(t, err)
	assert.Equal(t, "14,850 JPY", res.Result)
}

func TestQuery_MonetaryCodeFallback(t *testing.T) {
	// "btc!" is not an alias, but stripping non-letters leaves a known
	// code, so the fallback still resolves it.
	svc := newService(defaultRates())

	res, err := svc.Query(context.Background(), "1 btc! to usd")
	require.NoError(t, err)
	assert.Equal(t, "64,000 USD", res.Result)
}

func TestQuery_MonetaryCrypto(t *testing.T) {
	svc := newService(defaultRates())

	res, err := svc.Query(context.Background(), "2 btc to usd")
	require.NoError(t, err)
	assert.Equal(t, "2 BTC", res.Input)
	assert.Equal(t, "Bitcoin (Crypto)", res.InputLabel)
	assert.Equal(t, "128,000 USD", res.Result)

	res, err = svc.Query(context.Background(), "1 btc to eth")
	require.NoError(t, err)
	assert.Equal(t, "20 ETH", res.Result)
}

func TestQuery_SameAssetSkipsNetwork(t *testing.T) {
	rates := defaultRates()
	svc := newService(rates)

	res, err := svc.Query(context.Background(), "100 usd to usd")
	require.NoError(t, err)
	assert.Equal(t, "100 USD", res.Result)
	assert.Zero(t, rates.fiatCalls.Load())
	assert.Zero(t, rates.cryptoCalls.Load())
}

func TestQuery_StablecoinFallsBackToOneUSD(t *testing.T) {
	rates := defaultRates()
	rates.cryptoErr = domain.ErrRateUnavailable
	svc := newService(rates)

	res, err := svc.Query(context.Background(), "100 usdt to usd")
	require.NoError(t, err)
	assert.Equal(t, "100 USD", res.Result)
}

func TestQuery_RateUnavailable(t *testing.T) {
	rates := defaultRates()
	rates.fiatErr = domain.ErrRateUnavailable
	svc := newService(rates)

	_, err := svc.Query(context.Background(), "$50 to EUR")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestQuery_NonStablecoinFeedFailure(t *testing.T) {
	rates := defaultRates()
	rates.cryptoErr = domain.ErrRateUnavailable
	svc := newService(rates)

	_, err := svc.Query(context.Background(), "1 btc to usd")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestQuery_NoMatch(t *testing.T) {
	svc := newService(defaultRates())

	queries := []string{
		"what is the meaning of life",
		"42",
		"5 km to xyzzy",
		"",
	}

	for _, q := range queries {
		_, err := svc.Query(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrNoMatch, "query %q", q)
	}
}

func TestQuery_UnitsWinOverMonetary(t *testing.T) {
	// "t" is both metric tonnes and a plausible currency typo; the unit
	// chain runs first and claims it.
	rates := defaultRates()
	svc := newService(rates)

	res, err := svc.Query(context.Background(), "2 t to kg")
	require.NoError(t, err)
	assert.Equal(t, "2,000 kg", res.Result)
	assert.Zero(t, rates.fiatCalls.Load())
}
