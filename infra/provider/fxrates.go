// Package provider implements the HTTP clients for the two external
// data feeds: the fiat exchange-rate service and the crypto price
// service. Responses are decoded into explicit schemas; any shape
// mismatch is a fetch failure, never a crash.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/querycalc/querycalc/pkg/provider"
)

// FXRatesClient fetches exchange-rate tables from an open.er-api.com
// style endpoint: GET {base-url}/{CODE} returns all rates relative to
// one unit of CODE.
type FXRatesClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// fxRatesResponse is the expected response shape.
type fxRatesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// NewFXRatesClient creates a fiat exchange-rate client.
func NewFXRatesClient(baseURL string, timeout time.Duration, logger *slog.Logger) *FXRatesClient {
	return &FXRatesClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FXRates fetches the full rate table for a base currency.
func (c *FXRatesClient) FXRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)
	c.logger.Debug("fetching fx rates", "provider", c.Name(), "base", base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fx API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp fxRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Result != "success" {
		return nil, fmt.Errorf("fx API returned result=%s", apiResp.Result)
	}
	if len(apiResp.Rates) == 0 {
		return nil, fmt.Errorf("fx API returned no rates for %s", base)
	}

	return apiResp.Rates, nil
}

// Name returns the provider's name.
func (c *FXRatesClient) Name() string {
	return "open-er-api"
}

var _ provider.FXRateProvider = (*FXRatesClient)(nil)
