package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Quote is the subset of a provider quote the price checker consumes.
// Current is nil when the provider returned no usable price.
type Quote struct {
	Current *decimal.Decimal
}

// finnhubQuote mirrors the finnhub /quote response
type finnhubQuote struct {
	Current       *decimal.Decimal `json:"c"`
	Change        decimal.Decimal  `json:"d"`
	ChangePercent decimal.Decimal  `json:"dp"`
	High          decimal.Decimal  `json:"h"`
	Low           decimal.Decimal  `json:"l"`
	Open          decimal.Decimal  `json:"o"`
	PrevClose     decimal.Decimal  `json:"pc"`
	Timestamp     int64            `json:"t"`
}

// FinnhubClient fetches stock quotes from the Finnhub API
type FinnhubClient struct {
	client *resty.Client
	apiKey string
}

// NewFinnhubClient creates a new Finnhub quote client
func NewFinnhubClient(baseURL, apiKey string, timeout time.Duration) *FinnhubClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &FinnhubClient{
		client: client,
		apiKey: apiKey,
	}
}

// FetchQuote fetches the current quote for a symbol. A response without a
// usable price field is an error; the caller decides whether that is fatal.
func (fc *FinnhubClient) FetchQuote(ctx context.Context, symbol string) (Quote, error) {
	if fc.apiKey == "" {
		return Quote{}, fmt.Errorf("finnhub API key not configured")
	}

	resp, err := fc.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"token":  fc.apiKey,
		}).
		Get("/quote")

	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	if resp.StatusCode() != 200 {
		return Quote{}, fmt.Errorf("finnhub API error %d: %s", resp.StatusCode(), resp.String())
	}

	var full finnhubQuote
	if err := json.Unmarshal(resp.Body(), &full); err != nil {
		return Quote{}, fmt.Errorf("failed to parse quote response for %s: %w", symbol, err)
	}

	if full.Current == nil {
		return Quote{}, fmt.Errorf("no price data found for symbol %s", symbol)
	}
	if full.Current.IsNegative() {
		return Quote{}, fmt.Errorf("negative price %s in quote for symbol %s", full.Current.String(), symbol)
	}

	return Quote{Current: full.Current}, nil
}
