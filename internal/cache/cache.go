// Package cache provides the candle-series cache consulted before any
// provider round-trip. The engine itself never touches the cache; it only
// ever sees the series the collector hands it.
package cache

import (
	"context"

	"VortexEdge/internal/model"
)

// CandleCache stores fetched daily series so repeat scans inside the TTL
// window skip the provider round-trip. Implementations must be safe for
// concurrent use.
type CandleCache interface {
	Get(ctx context.Context, symbol string) ([]model.Candle, bool)
	Put(ctx context.Context, symbol string, series []model.Candle)
	Close() error
}

// NoopCache is used when Redis is not configured; every lookup misses.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Get(context.Context, string) ([]model.Candle, bool) { return nil, false }
func (n *NoopCache) Put(context.Context, string, []model.Candle)        {}
func (n *NoopCache) Close() error                                       { return nil }
