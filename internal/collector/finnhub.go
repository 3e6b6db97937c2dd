package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"VortexEdge/internal/model"
)

// FinnhubFetcher fetches current-price quotes from the Finnhub quote API.
// Finnhub serves quotes only; candle history comes from the chart provider.
type FinnhubFetcher struct {
	Client *http.Client
	APIKey string
}

// NewFinnhubFetcher creates a Finnhub quote fetcher.
func NewFinnhubFetcher(apiKey string) *FinnhubFetcher {
	return &FinnhubFetcher{
		Client: &http.Client{Timeout: 15 * time.Second},
		APIKey: apiKey,
	}
}

func (f *FinnhubFetcher) Name() string { return "finnhub" }

// finnhubQuote mirrors Finnhub's terse field naming: c = current price,
// dp = percent change.
type finnhubQuote struct {
	Current   float64 `json:"c"`
	ChangePct float64 `json:"dp"`
}

func (f *FinnhubFetcher) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	u := fmt.Sprintf("https://finnhub.io/api/v1/quote?symbol=%s&token=%s",
		url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Quote{}, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("finnhub fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("finnhub: status %d", resp.StatusCode)
	}

	var q finnhubQuote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return model.Quote{}, fmt.Errorf("finnhub decode: %w", err)
	}
	// An unknown symbol comes back as all zeros rather than an error.
	if q.Current == 0 {
		return model.Quote{}, fmt.Errorf("finnhub: no quote for %s", symbol)
	}
	return model.Quote{Symbol: symbol, Price: q.Current, ChangePct: q.ChangePct}, nil
}
