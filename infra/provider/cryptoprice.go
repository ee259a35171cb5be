package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/querycalc/querycalc/pkg/provider"
)

// CryptoPriceClient fetches USD prices from a CoinGecko-style simple
// price endpoint: GET {base-url}/simple/price?ids={id}&vs_currencies=usd
// returns {"<id>": {"usd": <price>}}. One feed ID is requested per
// call; batching would be an optimization, not a contract change.
type CryptoPriceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// cryptoPriceEntry is the per-asset payload in the response.
type cryptoPriceEntry struct {
	USD *float64 `json:"usd"`
}

// NewCryptoPriceClient creates a crypto price client.
func NewCryptoPriceClient(baseURL string, timeout time.Duration, logger *slog.Logger) *CryptoPriceClient {
	return &CryptoPriceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// PriceUSD fetches the USD unit price for a feed ID.
func (c *CryptoPriceClient) PriceUSD(ctx context.Context, feedID string) (float64, error) {
	q := url.Values{}
	q.Set("ids", feedID)
	q.Set("vs_currencies", "usd")
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())
	c.logger.Debug("fetching crypto price", "provider", c.Name(), "feed_id", feedID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("price API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp map[string]cryptoPriceEntry
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	entry, ok := apiResp[feedID]
	if !ok || entry.USD == nil {
		return 0, fmt.Errorf("price API returned no usd price for %s", feedID)
	}

	return *entry.USD, nil
}

// Name returns the provider's name.
func (c *CryptoPriceClient) Name() string {
	return "coingecko"
}

var _ provider.CryptoPriceProvider = (*CryptoPriceClient)(nil)
