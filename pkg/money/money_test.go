package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querycalc/querycalc/pkg/money"
)

func TestFindByCode(t *testing.T) {
	tests := []struct {
		code  string
		kind  money.Kind
		label string
	}{
		{"USD", money.Fiat, "US Dollar"},
		{"EUR", money.Fiat, "Euro"},
		{"BTC", money.Crypto, "Bitcoin"},
		{"DOGE", money.Crypto, "Dogecoin"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			a := money.FindByCode(tt.code)
			require.NotNil(t, a)
			assert.Equal(t, tt.kind, a.Kind)
			assert.Equal(t, tt.label, a.Label)
		})
	}

	assert.Nil(t, money.FindByCode("XYZ"))
	assert.Nil(t, money.FindByCode("usd"), "lookup is case sensitive by contract")
}

func TestIsStablecoin(t *testing.T) {
	assert.True(t, money.IsStablecoin(money.FindByCode("USDT")))
	assert.True(t, money.IsStablecoin(money.FindByCode("DAI")))
	assert.False(t, money.IsStablecoin(money.FindByCode("BTC")))
	// USD tracks itself but is fiat, not a stablecoin.
	assert.False(t, money.IsStablecoin(money.FindByCode("USD")))
}

func TestTables_Shape(t *testing.T) {
	for _, a := range money.FiatAssets() {
		assert.Equal(t, money.Fiat, a.Kind)
		assert.Empty(t, a.PriceFeedID, "fiat %s must not carry a feed ID", a.Code)
		assert.NotEmpty(t, a.Aliases, a.Code)
	}
	for _, a := range money.CryptoAssets() {
		assert.Equal(t, money.Crypto, a.Kind)
		assert.NotEmpty(t, a.PriceFeedID, "crypto %s must carry a feed ID", a.Code)
		assert.NotEmpty(t, a.Aliases, a.Code)
	}
}
