package alias_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querycalc/querycalc/pkg/alias"
	"github.com/querycalc/querycalc/pkg/unit"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"lowercase and trim", "  KM  ", "km"},
		{"micro sign", "µm", "um"},
		{"greek mu", "μs", "us"},
		{"superscript two", "m²", "m2"},
		{"superscript three", "m³", "m3"},
		{"caret exponent", "m^2", "m2"},
		{"trailing exponent joins", "m 2", "m2"},
		{"degree symbol stripped", "°C", "c"},
		{"degree word stripped", "degrees celsius", "celsius"},
		{"square word", "square meters", "sq meters"},
		{"cubic word", "cubic centimeters", "cu centimeters"},
		{"per becomes slash", "meters per second", "meters/second"},
		{"slash runs collapse", "km // h", "km/h"},
		{"hyphen to space", "light-years", "light years"},
		{"space runs collapse", "sq   feet", "sq feet"},
		{"parens dropped", "gallons (US)", "gallons us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, alias.Normalize(tt.in))
		})
	}
}

func TestNormalizeMonetary(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"lowercase", "USD", "usd"},
		{"dots stripped", "u.s.d", "usd"},
		{"symbol kept", "$", "$"},
		{"spaces collapse", "us   dollars", "us dollars"},
		{"hyphen stripped", "usd-coin", "usdcoin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, alias.NormalizeMonetary(tt.in))
		})
	}
}

func TestIndex_Resolve(t *testing.T) {
	ix := alias.NewIndex()

	tests := []struct {
		name     string
		phrase   string
		kind     alias.EntryKind
		category unit.Category
		symbol   string
	}{
		{"plain unit", "km", alias.EntryUnit, unit.Length, "km"},
		{"word alias", "kilometers", alias.EntryUnit, unit.Length, "km"},
		{"area exponent forms", "m^2", alias.EntryUnit, unit.Area, "m²"},
		{"square word form", "square meters", alias.EntryUnit, unit.Area, "m²"},
		{"speed slash", "km/h", alias.EntryUnit, unit.Speed, "km/h"},
		{"speed per-word", "kilometers per hour", alias.EntryUnit, unit.Speed, "km/h"},
		{"micro prefix", "µm", alias.EntryUnit, unit.Length, "µm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := ix.Resolve(tt.phrase)
			require.True(t, ok, "phrase %q did not resolve", tt.phrase)
			require.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.category, e.Category)
			assert.Equal(t, tt.symbol, e.Unit.Symbol)
		})
	}
}

func TestIndex_ResolveTemperature(t *testing.T) {
	ix := alias.NewIndex()

	for _, phrase := range []string{"c", "°C", "celsius", "degrees celsius"} {
		e, ok := ix.Resolve(phrase)
		require.True(t, ok, "phrase %q did not resolve", phrase)
		require.Equal(t, alias.EntryTemperature, e.Kind)
		assert.Equal(t, unit.Celsius, e.Scale.Scale)
	}
}

func TestIndex_ResolveMonetary(t *testing.T) {
	ix := alias.NewIndex()

	tests := []struct {
		phrase string
		code   string
	}{
		{"usd", "USD"},
		{"$", "USD"},
		{"Dollars", "USD"},
		{"€", "EUR"},
		{"btc", "BTC"},
		{"Bitcoin", "BTC"},
		{"₿", "BTC"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			a, ok := ix.ResolveMonetary(tt.phrase)
			require.True(t, ok)
			assert.Equal(t, tt.code, a.Code)
		})
	}

	_, ok := ix.ResolveMonetary("gibberish")
	assert.False(t, ok)
}

func TestIndex_FirstRegisteredAliasWins(t *testing.T) {
	ix := alias.NewIndex()

	// "t" is registered by metric tonnes before anything later could
	// claim it; resolution must stay stable.
	e, ok := ix.Resolve("t")
	require.True(t, ok)
	assert.Equal(t, unit.Mass, e.Category)
	assert.Equal(t, "t", e.Unit.Symbol)

	// "kn" belongs to knots, not kilonewtons.
	e, ok = ix.Resolve("kn")
	require.True(t, ok)
	assert.Equal(t, unit.Speed, e.Category)
}

func TestIndex_UnknownPhrase(t *testing.T) {
	ix := alias.NewIndex()
	_, ok := ix.Resolve("flux capacitors")
	assert.False(t, ok)
}
