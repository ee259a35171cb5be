// Package parser extracts (value, fromPhrase, toPhrase) from a
// free-text conversion query. It recognizes two surface forms:
//
//	5 km to miles
//	$50 to EUR
//
// The captured phrases are passed through untouched; every downstream
// resolver applies its own normalization. A query that fits neither
// form parses to nil, never an error.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/querycalc/querycalc/pkg/domain"
)

// Numeric literals accept an optional sign, thousands separators in
// groups of three, a decimal point, and a scientific exponent.
const numberPattern = `[+-]?\d+(?:,\d{3})*(?:\.\d+)?(?:[eE][+-]?\d+)?`

var (
	// 5 km to miles / 1,500.5m2 in sq ft / 3e2 usd = eur
	reValueFirst = regexp.MustCompile(
		`^(?i)(` + numberPattern + `)\s*(.+?)(?:\s+(?:to|in|as)\s+|\s*=\s*)(.+)$`)

	// $50 to EUR / €20 in usd
	reSymbolFirst = regexp.MustCompile(
		`^(?i)([$€£¥₿Ξ₹₩₺₽₱฿Ð])\s*(` + numberPattern + `)(?:\s+(?:to|in|as)\s+|\s*=\s*)(.+)$`)
)

// Parse extracts a structured query from free text, or returns nil
// when neither surface form matches or the literal is not finite.
func Parse(query string) *domain.ParsedQuery {
	q := strings.TrimSpace(query)
	q = strings.TrimRight(q, "?")
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	if m := reValueFirst.FindStringSubmatch(q); m != nil {
		return build(m[1], m[2], m[3])
	}
	if m := reSymbolFirst.FindStringSubmatch(q); m != nil {
		return build(m[2], m[1], m[3])
	}
	return nil
}

func build(rawValue, fromPhrase, toPhrase string) *domain.ParsedQuery {
	value, err := strconv.ParseFloat(strings.ReplaceAll(rawValue, ",", ""), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	return &domain.ParsedQuery{
		RawValue:   rawValue,
		Value:      value,
		FromPhrase: strings.TrimSpace(fromPhrase),
		ToPhrase:   strings.TrimSpace(toPhrase),
	}
}
