package alias

import (
	"github.com/querycalc/querycalc/pkg/money"
	"github.com/querycalc/querycalc/pkg/unit"
)

// EntryKind tags what a normalized alias resolved to.
type EntryKind int

const (
	EntryUnit EntryKind = iota
	EntryTemperature
)

// Entry is the closed result of a unit-side lookup: either a unit
// within a category or a temperature scale. Monetary assets resolve
// through their own map because their normalization differs.
type Entry struct {
	Kind     EntryKind
	Category unit.Category
	Unit     *unit.Def
	Scale    *unit.ScaleDef
}

// Index resolves normalized aliases to units, temperature scales, and
// monetary assets. Build it once at startup with NewIndex.
type Index struct {
	units    map[string]Entry
	monetary map[string]*money.Asset
}

// NewIndex walks the unit, temperature, and monetary tables and builds
// the lookup maps. Insertion never overwrites an existing key: the
// first-registered alias wins.
func NewIndex() *Index {
	ix := &Index{
		units:    make(map[string]Entry),
		monetary: make(map[string]*money.Asset),
	}

	for _, table := range unit.Tables() {
		units := table.Units
		for i := range units {
			for _, a := range units[i].Aliases {
				ix.putUnit(Normalize(a), Entry{
					Kind:     EntryUnit,
					Category: table.Category,
					Unit:     &units[i],
				})
			}
		}
	}

	scales := unit.Scales()
	for i := range scales {
		for _, a := range scales[i].Aliases {
			ix.putUnit(Normalize(a), Entry{
				Kind:  EntryTemperature,
				Scale: &scales[i],
			})
		}
	}

	fiat := money.FiatAssets()
	for i := range fiat {
		for _, a := range fiat[i].Aliases {
			ix.putMonetary(NormalizeMonetary(a), &fiat[i])
		}
	}
	crypto := money.CryptoAssets()
	for i := range crypto {
		for _, a := range crypto[i].Aliases {
			ix.putMonetary(NormalizeMonetary(a), &crypto[i])
		}
	}

	return ix
}

func (ix *Index) putUnit(key string, e Entry) {
	if key == "" {
		return
	}
	if _, exists := ix.units[key]; exists {
		return
	}
	ix.units[key] = e
}

func (ix *Index) putMonetary(key string, a *money.Asset) {
	if key == "" {
		return
	}
	if _, exists := ix.monetary[key]; exists {
		return
	}
	ix.monetary[key] = a
}

// Resolve normalizes a phrase and looks it up as a unit or temperature
// scale.
func (ix *Index) Resolve(phrase string) (Entry, bool) {
	e, ok := ix.units[Normalize(phrase)]
	return e, ok
}

// ResolveMonetary normalizes a phrase and looks it up as a fiat or
// crypto asset.
func (ix *Index) ResolveMonetary(phrase string) (*money.Asset, bool) {
	a, ok := ix.monetary[NormalizeMonetary(phrase)]
	if !ok {
		return nil, false
	}
	return a, true
}
