// Package webapi assembles the HTTP surface of the calculator. It is
// organized into sub-packages:
// - calcapi: the query evaluation endpoint
// - catalog: unit and asset listings
// - common: shared response envelopes and middleware
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/querycalc/querycalc/infra/initializer"
	"github.com/querycalc/querycalc/pkg/config"
	"github.com/querycalc/querycalc/webapi/calcapi"
	"github.com/querycalc/querycalc/webapi/catalog"
	"github.com/querycalc/querycalc/webapi/common"
)

// SetupApp initializes Fiber with custom configuration.
func SetupApp(deps *initializer.Deps, cfg *config.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keyed on the client address. Uses X-Forwarded-For
	// when behind a proxy, falling back to X-Real-IP and the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(common.RequestID())

	// Health check endpoint
	fiberApp.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	calcapi.Routes(fiberApp, deps.Calc)
	catalog.Routes(fiberApp)
	return fiberApp
}
