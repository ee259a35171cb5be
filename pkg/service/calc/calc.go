// Package calc wires the resolvers into one conversion service. A
// query is tried against three independent interpretations in priority
// order: unit/temperature conversion, arithmetic evaluation, and
// monetary conversion. The first success wins; a query matching none
// of them yields domain.ErrNoMatch rather than a failure.
package calc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/querycalc/querycalc/pkg/alias"
	"github.com/querycalc/querycalc/pkg/domain"
	"github.com/querycalc/querycalc/pkg/eval"
	"github.com/querycalc/querycalc/pkg/format"
	"github.com/querycalc/querycalc/pkg/money"
	"github.com/querycalc/querycalc/pkg/parser"
	"github.com/querycalc/querycalc/pkg/provider"
	"github.com/querycalc/querycalc/pkg/unit"
)

// Service owns the alias index and the rate source. Construct it once
// and pass it to every caller; there is no package-level state.
type Service struct {
	index  *alias.Index
	rates  provider.RateSource
	logger *slog.Logger
}

// New creates a conversion service. The alias index is built here,
// once, from the static tables.
func New(rates provider.RateSource, logger *slog.Logger) *Service {
	return &Service{
		index:  alias.NewIndex(),
		rates:  rates,
		logger: logger,
	}
}

// Query runs the full priority chain: units, then arithmetic, then
// monetary. Only the monetary path can touch the network.
func (s *Service) Query(ctx context.Context, raw string) (*domain.CalcResult, error) {
	parsed := parser.Parse(raw)

	if parsed != nil {
		res, err := s.ConvertUnits(parsed)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, domain.ErrNoMatch) {
			return nil, err
		}
	}

	res, err := s.Evaluate(raw)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, domain.ErrNoMatch) {
		return nil, err
	}

	if parsed != nil {
		return s.ConvertMonetary(ctx, parsed)
	}
	return nil, domain.ErrNoMatch
}

// ConvertUnits attempts a unit or temperature conversion. Temperature
// and linear unit conversion are mutually exclusive: one temperature
// alias paired with anything else is rejected.
func (s *Service) ConvertUnits(parsed *domain.ParsedQuery) (*domain.CalcResult, error) {
	from, okFrom := s.index.Resolve(parsed.FromPhrase)
	to, okTo := s.index.Resolve(parsed.ToPhrase)
	if !okFrom || !okTo {
		return nil, domain.ErrNoMatch
	}

	if from.Kind == alias.EntryTemperature || to.Kind == alias.EntryTemperature {
		if from.Kind != to.Kind {
			return nil, domain.ErrNoMatch
		}
		result := unit.ConvertTemperature(parsed.Value, from.Scale.Scale, to.Scale.Scale)
		return &domain.CalcResult{
			Input:       fmt.Sprintf("%s %s", format.Number(parsed.Value), from.Scale.Symbol),
			InputLabel:  from.Scale.Label,
			Result:      fmt.Sprintf("%s %s", format.Number(result), to.Scale.Symbol),
			ResultLabel: to.Scale.Label,
		}, nil
	}

	if from.Category != to.Category {
		return nil, domain.ErrNoMatch
	}

	result := unit.Convert(parsed.Value, from.Unit, to.Unit)
	return &domain.CalcResult{
		Input:       fmt.Sprintf("%s %s", format.Number(parsed.Value), from.Unit.Symbol),
		InputLabel:  from.Unit.Label,
		Result:      fmt.Sprintf("%s %s", format.Number(result), to.Unit.Symbol),
		ResultLabel: to.Unit.Label,
	}, nil
}

// Evaluate attempts to read the query as a pure arithmetic expression.
func (s *Service) Evaluate(query string) (*domain.CalcResult, error) {
	value, err := eval.Evaluate(query)
	if err != nil {
		return nil, err
	}
	return &domain.CalcResult{
		Input:       strings.TrimSpace(query),
		Result:      format.Number(value),
		ResultLabel: format.NumberToWords(value),
	}, nil
}

// ConvertMonetary attempts a fiat/crypto conversion. Resolution is
// synchronous; only resolved pairs with distinct assets reach the
// network, and the two USD resolutions run concurrently.
func (s *Service) ConvertMonetary(ctx context.Context, parsed *domain.ParsedQuery) (*domain.CalcResult, error) {
	from := s.resolveAsset(parsed.FromPhrase)
	to := s.resolveAsset(parsed.ToPhrase)
	if from == nil || to == nil {
		return nil, domain.ErrNoMatch
	}

	if from.Kind == to.Kind && from.Code == to.Code {
		// Conversion factor is exactly 1; no network access.
		return s.monetaryResult(parsed.Value, from, parsed.Value, to), nil
	}

	var fromUSD, toUSD float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromUSD, err = s.usdPrice(gctx, from)
		return err
	})
	g.Go(func() error {
		var err error
		toUSD, err = s.usdPrice(gctx, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if toUSD == 0 {
		return nil, domain.ErrRateUnavailable
	}

	result := parsed.Value * (fromUSD / toUSD)
	return s.monetaryResult(parsed.Value, from, result, to), nil
}

// resolveAsset resolves a phrase through the monetary alias map, then
// falls back to trying a stripped 3-5 letter form directly as a code.
func (s *Service) resolveAsset(phrase string) *money.Asset {
	if asset, ok := s.index.ResolveMonetary(phrase); ok {
		return asset
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(phrase) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len(code) < 3 || len(code) > 5 {
		return nil
	}
	return money.FindByCode(code)
}

// usdPrice resolves one asset to its USD unit price. Fiat goes through
// the USD-based rate table; crypto through the price feed, with the
// stablecoin fallback of exactly 1 when the feed fails.
func (s *Service) usdPrice(ctx context.Context, asset *money.Asset) (float64, error) {
	if asset.Kind == money.Fiat {
		table, err := s.rates.FiatRates(ctx, "USD")
		if err != nil {
			return 0, err
		}
		rate, ok := table[asset.Code]
		if !ok || rate == 0 {
			return 0, domain.ErrRateUnavailable
		}
		// rate is units of asset per 1 USD, so one unit of the asset
		// is worth 1/rate USD.
		return 1 / rate, nil
	}

	if asset.PriceFeedID == "" {
		if money.IsStablecoin(asset) {
			return 1, nil
		}
		return 0, domain.ErrRateUnavailable
	}

	usd, err := s.rates.CryptoPriceUSD(ctx, asset.PriceFeedID)
	if err != nil {
		if money.IsStablecoin(asset) {
			s.logger.Warn("stablecoin feed failed, defaulting to 1 USD", "code", asset.Code)
			return 1, nil
		}
		return 0, err
	}
	return usd, nil
}

func (s *Service) monetaryResult(inValue float64, from *money.Asset, outValue float64, to *money.Asset) *domain.CalcResult {
	return &domain.CalcResult{
		Input:       fmt.Sprintf("%s %s", monetaryAmount(inValue, from.Kind), from.Code),
		InputLabel:  assetLabel(from),
		Result:      fmt.Sprintf("%s %s", monetaryAmount(outValue, to.Kind), to.Code),
		ResultLabel: assetLabel(to),
	}
}

// monetaryAmount picks the precision tier: fiat gets 2 decimals above
// one unit, 4 down to a cent, 8 below; crypto gets 8 above one unit
// and 10 below.
func monetaryAmount(v float64, kind money.Kind) string {
	abs := math.Abs(v)
	if kind == money.Crypto {
		if abs >= 1 {
			return format.WithDecimals(v, 8)
		}
		return format.WithDecimals(v, 10)
	}
	switch {
	case abs >= 1:
		return format.WithDecimals(v, 2)
	case abs >= 0.01:
		return format.WithDecimals(v, 4)
	default:
		return format.WithDecimals(v, 8)
	}
}

func assetLabel(a *money.Asset) string {
	if a.Kind == money.Crypto {
		return a.Label + " (Crypto)"
	}
	return a.Label
}
