// Package exchangerate implements the historical-rate provider client.
// The provider answers GET <base-url>/<FROM>/<YYYY-MM-DD> with a JSON body
// carrying a "rates" map of target currency code to decimal rate.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mjaros/beertracker/internal/apperrors"
	"github.com/mjaros/beertracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DefaultTimeout bounds a single rate lookup; there are no retries.
const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ratesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewClient creates a rate provider client. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetRate fetches the historical rate from one currency to another for the
// given date. Same-currency lookups return exactly 1 without a network call.
// Any transport error, non-2xx status, malformed body, or missing target
// pair yields an error wrapping apperrors.ErrRateUnavailable.
func (c *Client) GetRate(ctx context.Context, from, to domain.CurrencyCode, date time.Time) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, from, date.Format(dateLayout))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: building request: %v", apperrors.ErrRateUnavailable, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		slog.Warn("Rate provider returned non-success status",
			slog.String("url", url),
			slog.Int("status", res.StatusCode),
		)
		return decimal.Decimal{}, fmt.Errorf("%w: provider returned status %d", apperrors.ErrRateUnavailable, res.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: decoding response: %v", apperrors.ErrRateUnavailable, err)
	}

	rate, ok := body.Rates[to.String()]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s in response", apperrors.ErrRateUnavailable, to)
	}

	return rate, nil
}
