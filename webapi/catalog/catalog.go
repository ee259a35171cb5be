// Package catalog exposes the static unit and asset tables, so hosts
// can render pickers or autocomplete without duplicating the registry.
package catalog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/querycalc/querycalc/pkg/money"
	"github.com/querycalc/querycalc/pkg/unit"
	"github.com/querycalc/querycalc/webapi/common"
)

// Routes registers the catalog endpoints.
func Routes(app *fiber.App) {
	app.Get("/api/units", ListUnits())
	app.Get("/api/assets", ListAssets())
}

// UnitDTO is one unit in a category listing.
type UnitDTO struct {
	Label   string   `json:"label"`
	Symbol  string   `json:"symbol"`
	Aliases []string `json:"aliases"`
}

// CategoryDTO is one unit category.
type CategoryDTO struct {
	Name  string    `json:"name"`
	Units []UnitDTO `json:"units"`
}

// AssetDTO is one monetary asset.
type AssetDTO struct {
	Kind    string   `json:"kind"`
	Code    string   `json:"code"`
	Label   string   `json:"label"`
	Symbol  string   `json:"symbol"`
	Aliases []string `json:"aliases"`
}

// ListUnits returns every unit category with its units, plus the
// temperature scales as their own pseudo-category.
func ListUnits() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []CategoryDTO
		for _, table := range unit.Tables() {
			cat := CategoryDTO{Name: table.Category.String()}
			for _, u := range table.Units {
				cat.Units = append(cat.Units, UnitDTO{Label: u.Label, Symbol: u.Symbol, Aliases: u.Aliases})
			}
			categories = append(categories, cat)
		}

		temp := CategoryDTO{Name: "Temperature"}
		for _, sc := range unit.Scales() {
			temp.Units = append(temp.Units, UnitDTO{Label: sc.Label, Symbol: sc.Symbol, Aliases: sc.Aliases})
		}
		categories = append(categories, temp)

		return common.SuccessResponseJSON(c, fiber.StatusOK, "Units fetched successfully", categories)
	}
}

// ListAssets returns the fiat and crypto tables.
func ListAssets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var assets []AssetDTO
		for _, a := range money.FiatAssets() {
			assets = append(assets, assetDTO(a))
		}
		for _, a := range money.CryptoAssets() {
			assets = append(assets, assetDTO(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assets fetched successfully", assets)
	}
}

func assetDTO(a money.Asset) AssetDTO {
	return AssetDTO{
		Kind:    a.Kind.String(),
		Code:    a.Code,
		Label:   a.Label,
		Symbol:  a.Symbol,
		Aliases: a.Aliases,
	}
}
