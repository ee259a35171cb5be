// Package calcapi exposes the conversion engine over HTTP.
package calcapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/querycalc/querycalc/pkg/domain"
	"github.com/querycalc/querycalc/pkg/service/calc"
	"github.com/querycalc/querycalc/webapi/common"
)

// Routes registers the calculator endpoints.
func Routes(app *fiber.App, svc *calc.Service) {
	group := app.Group("/api/calc")
	group.Get("/", Calculate(svc))
}

// Calculate runs the full interpretation chain for the q query
// parameter. A query matching no interpretation is a 404, not an
// error: the host falls back to its unfiltered result list.
func Calculate(svc *calc.Service) fiber.Handler {
	validate := validator.New()
	return func(c *fiber.Ctx) error {
		req := CalculateRequest{Query: c.Query("q")}
		if err := validate.Struct(req); err != nil {
			return common.ProblemDetailsJSON(c, "Missing query", err, fiber.StatusBadRequest)
		}

		result, err := svc.Query(c.Context(), req.Query)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoMatch):
				return common.ProblemDetailsJSON(c, "No result", err, fiber.StatusNotFound)
			case errors.Is(err, domain.ErrRateUnavailable):
				return common.ProblemDetailsJSON(c, "Rates unavailable", err, fiber.StatusServiceUnavailable)
			default:
				return common.ProblemDetailsJSON(c, "Calculation failed", err)
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Query calculated successfully", result)
	}
}
