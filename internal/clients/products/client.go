// Package products provides the client for the external investment-product
// listing API. Fetch failures are retried a fixed number of times with a
// fixed delay; callers fall back to the static catalog when all attempts fail.
package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/domain"
)

// ErrSourceDisabled is returned when no product API URL is configured.
var ErrSourceDisabled = errors.New("product source disabled")

// RetryPolicy controls retry behavior for product fetches.
// Retries is the number of attempts after the initial one.
type RetryPolicy struct {
	Retries int
	Delay   time.Duration
}

// Client fetches product candidates from the listing API.
type Client struct {
	baseURL string
	client  *http.Client
	retry   RetryPolicy
	log     zerolog.Logger
}

// NewClient creates a new product listing client.
// An empty baseURL disables the source; every fetch returns ErrSourceDisabled.
func NewClient(baseURL string, timeout time.Duration, retry RetryPolicy, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retry:   retry,
		log:     log.With().Str("client", "products").Logger(),
	}
}

// rawProduct is the wire shape of a listing record.
type rawProduct struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	ExpectedReturn float64 `json:"expected_return"`
	Risk           string  `json:"risk"`
	LockIn         string  `json:"lock_in"`
	MinInvestment  float64 `json:"min_investment"`
	AUMCrore       float64 `json:"aum_crore"`
}

// FetchCandidates returns candidate products for a vehicle type, looking back
// over the given number of months of performance data.
func (c *Client) FetchCandidates(ctx context.Context, vehicleType string, lookbackMonths int) ([]domain.ProductCandidate, error) {
	if c.baseURL == "" {
		return nil, ErrSourceDisabled
	}

	endpoint := fmt.Sprintf("%s/products?type=%s&lookback_months=%d",
		c.baseURL, url.QueryEscape(slugify(vehicleType)), lookbackMonths)

	var lastErr error
	attempts := c.retry.Retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		candidates, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			c.log.Debug().
				Str("vehicle_type", vehicleType).
				Int("count", len(candidates)).
				Int("attempt", attempt).
				Msg("Fetched product candidates")
			return candidates, nil
		}

		lastErr = err
		c.log.Warn().
			Err(err).
			Str("vehicle_type", vehicleType).
			Int("attempt", attempt).
			Msg("Product fetch failed")

		if attempt < attempts {
			select {
			case <-time.After(c.retry.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("fetch candidates for %s: %w", vehicleType, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]domain.ProductCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result struct {
		Products []rawProduct `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	candidates := make([]domain.ProductCandidate, 0, len(result.Products))
	for _, raw := range result.Products {
		if raw.Name == "" {
			continue
		}
		candidates = append(candidates, domain.ProductCandidate{
			Name:              raw.Name,
			Description:       raw.Description,
			Category:          raw.Category,
			ExpectedReturnPct: raw.ExpectedReturn,
			Risk:              raw.Risk,
			LockInPeriod:      raw.LockIn,
			MinimumInvestment: raw.MinInvestment,
			AUMCrore:          raw.AUMCrore,
		})
	}

	return candidates, nil
}

// slugify converts a vehicle label to the API's type parameter
// (e.g. "Equity Mutual Funds" -> "equity_mutual_funds").
func slugify(vehicleType string) string {
	s := strings.ToLower(vehicleType)
	s = strings.ReplaceAll(s, "&", "and")
	fields := strings.Fields(s)
	return strings.Join(fields, "_")
}
