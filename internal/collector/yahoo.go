package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"time"

	"VortexEdge/internal/model"
)

// Rotated to keep the public chart API from throttling a single client
// signature.
var yahooUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
}

var yahooHosts = []string{
	"https://query2.finance.yahoo.com",
	"https://query1.finance.yahoo.com",
}

// YahooFetcher fetches daily candles and quotes from the Yahoo Finance
// public chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				RegularMarketVolume float64 `json:"regularMarketVolume"`
				PreviousClose       float64 `json:"previousClose"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol, rng string) (*yahooChart, error) {
	var lastErr error
	for _, host := range yahooHosts {
		u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
			host, url.PathEscape(symbol), rng)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", yahooUserAgents[rand.Intn(len(yahooUserAgents))])
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := f.Client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("yahoo fetch: %w", err)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("yahoo read body: %w", err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("yahoo: status %d", resp.StatusCode)
			continue
		}

		var chart yahooChart
		if err := json.Unmarshal(body, &chart); err != nil {
			lastErr = fmt.Errorf("yahoo decode: %w", err)
			continue
		}
		if chart.Chart.Error != nil {
			lastErr = fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
			continue
		}
		if len(chart.Chart.Result) == 0 {
			lastErr = fmt.Errorf("yahoo: no data returned")
			continue
		}
		return &chart, nil
	}
	return nil, lastErr
}

// fetchChartRetry retries once after a short pause; the chart API fails
// transiently often enough that a single retry recovers most symbols.
func (f *YahooFetcher) fetchChartRetry(ctx context.Context, symbol, rng string) (*yahooChart, error) {
	chart, err := f.fetchChart(ctx, symbol, rng)
	if err == nil {
		return chart, nil
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}
	return f.fetchChart(ctx, symbol, rng)
}

func rangeForDays(days int) string {
	switch {
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	default:
		return "2y"
	}
}

// FetchDailyCandles returns up to `days` most recent daily candles, oldest
// first. Null bars (holidays) are skipped.
func (f *YahooFetcher) FetchDailyCandles(ctx context.Context, symbol string, days int) ([]model.Candle, error) {
	chart, err := f.fetchChartRetry(ctx, symbol, rangeForDays(days))
	if err != nil {
		return nil, err
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: empty series for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	candles := make([]model.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := toFloat(quote.Close[i])
		if c <= 0 {
			continue
		}
		candles = append(candles, model.Candle{
			Time:   time.Unix(ts, 0),
			Open:   toFloat(quote.Open[i]),
			High:   toFloat(quote.High[i]),
			Low:    toFloat(quote.Low[i]),
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time.Before(candles[j].Time) })
	if len(candles) > days {
		candles = candles[len(candles)-days:]
	}
	return candles, nil
}

// FetchQuote derives the current price and daily change from the chart
// metadata, matching the regular-session previous close regardless of the
// chart range.
func (f *YahooFetcher) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	chart, err := f.fetchChartRetry(ctx, symbol, "1d")
	if err != nil {
		return model.Quote{}, err
	}
	meta := chart.Chart.Result[0].Meta
	prevClose := meta.PreviousClose
	if prevClose == 0 {
		prevClose = meta.ChartPreviousClose
	}
	if meta.RegularMarketPrice == 0 || prevClose == 0 {
		return model.Quote{}, fmt.Errorf("yahoo: incomplete quote for %s", symbol)
	}
	return model.Quote{
		Symbol:    symbol,
		Price:     meta.RegularMarketPrice,
		ChangePct: (meta.RegularMarketPrice - prevClose) / prevClose * 100,
	}, nil
}
