// Package collector fetches candle series and quotes from the upstream
// providers. It owns every network concern the screening engine must not
// see: batching, rate limiting, circuit breaking, caching and per-symbol
// failure isolation.
package collector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"VortexEdge/internal/cache"
	"VortexEdge/internal/metrics"
	"VortexEdge/internal/model"
	"VortexEdge/internal/universe"
)

// Config tunes the collection batching and provider protection.
type Config struct {
	HistoryDays       int
	ChunkSize         int
	ChunkPause        time.Duration
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig matches the behavior tuned against the public chart API:
// one month of history, chunks of ten with a short pause, a gentle request
// rate.
func DefaultConfig() Config {
	return Config{
		HistoryDays:       30,
		ChunkSize:         10,
		ChunkPause:        100 * time.Millisecond,
		RequestsPerSecond: 5,
		Burst:             10,
	}
}

// Collector gathers daily candle series for a batch of symbols.
type Collector struct {
	candles CandleProvider
	cache   cache.CandleCache
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	cfg     Config
}

// NewCollector wires a candle provider with the cache, a token-bucket rate
// limit and a circuit breaker that opens after consecutive provider
// failures.
func NewCollector(provider CandleProvider, candleCache cache.CandleCache, cfg Config) *Collector {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	if cfg.HistoryDays <= 0 {
		cfg.HistoryDays = DefaultConfig().HistoryDays
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig().RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig().Burst
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    provider.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	return &Collector{
		candles: provider,
		cache:   candleCache,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker: breaker,
		cfg:     cfg,
	}
}

// CollectSeries fetches candle history for every symbol, in chunks with a
// bounded fan-out per chunk. A failing symbol is logged and simply left out
// of the result; it never fails the batch.
func (c *Collector) CollectSeries(ctx context.Context, symbols []string) map[string][]model.Candle {
	out := make(map[string][]model.Candle, len(symbols))
	var mu sync.Mutex

	chunks := universe.Chunk(symbols, c.cfg.ChunkSize)
	for i, chunk := range chunks {
		var wg sync.WaitGroup
		for _, symbol := range chunk {
			wg.Add(1)
			go func(symbol string) {
				defer wg.Done()
				series, err := c.fetchOne(ctx, symbol)
				if err != nil {
					log.Warn().Err(err).Str("symbol", symbol).Msg("series fetch failed, symbol skipped")
					metrics.FetchErrors.WithLabelValues(c.candles.Name()).Inc()
					return
				}
				mu.Lock()
				out[symbol] = series
				mu.Unlock()
			}(symbol)
		}
		wg.Wait()

		if i == len(chunks)-1 || c.cfg.ChunkPause <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return out
		case <-time.After(c.cfg.ChunkPause):
		}
	}
	return out
}

func (c *Collector) fetchOne(ctx context.Context, symbol string) ([]model.Candle, error) {
	if series, ok := c.cache.Get(ctx, symbol); ok {
		return series, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	v, err := c.breaker.Execute(func() (interface{}, error) {
		return c.candles.FetchDailyCandles(ctx, symbol, c.cfg.HistoryDays)
	})
	if err != nil {
		return nil, err
	}
	series := v.([]model.Candle)
	if len(series) == 0 {
		return nil, errors.New("empty series")
	}
	c.cache.Put(ctx, symbol, series)
	return series, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.Candle
	Quotes map[string]model.Quote
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCandles(_ context.Context, symbol string, _ int) ([]model.Candle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	series, ok := m.Series[symbol]
	if !ok {
		return nil, errors.New("no data for symbol")
	}
	return series, nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (model.Quote, error) {
	if m.Err != nil {
		return model.Quote{}, m.Err
	}
	quote, ok := m.Quotes[symbol]
	if !ok {
		return model.Quote{}, errors.New("no quote for symbol")
	}
	return quote, nil
}
