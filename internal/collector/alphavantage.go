package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"VortexEdge/internal/model"
)

// AlphaVantageFetcher fetches current-price quotes from the Alpha Vantage
// GLOBAL_QUOTE endpoint.
type AlphaVantageFetcher struct {
	Client *http.Client
	APIKey string
}

// NewAlphaVantageFetcher creates an Alpha Vantage quote fetcher.
func NewAlphaVantageFetcher(apiKey string) *AlphaVantageFetcher {
	return &AlphaVantageFetcher{
		Client: &http.Client{Timeout: 15 * time.Second},
		APIKey: apiKey,
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

type alphaVantageResponse struct {
	GlobalQuote struct {
		Price      string `json:"05. price"`
		ChangePctS string `json:"10. change percent"`
	} `json:"Global Quote"`
}

func (f *AlphaVantageFetcher) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	u := fmt.Sprintf("https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Quote{}, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("alphavantage: status %d", resp.StatusCode)
	}

	var av alphaVantageResponse
	if err := json.NewDecoder(resp.Body).Decode(&av); err != nil {
		return model.Quote{}, fmt.Errorf("alphavantage decode: %w", err)
	}
	if av.GlobalQuote.Price == "" {
		return model.Quote{}, fmt.Errorf("alphavantage: no quote for %s", symbol)
	}

	price, err := strconv.ParseFloat(av.GlobalQuote.Price, 64)
	if err != nil {
		return model.Quote{}, fmt.Errorf("alphavantage price %q: %w", av.GlobalQuote.Price, err)
	}
	// "0.45%" -> 0.45
	changePct, _ := strconv.ParseFloat(strings.TrimSuffix(av.GlobalQuote.ChangePctS, "%"), 64)

	return model.Quote{Symbol: symbol, Price: price, ChangePct: changePct}, nil
}
