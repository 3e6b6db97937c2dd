package collector

import (
	"context"

	"VortexEdge/internal/model"
)

// CandleProvider fetches daily candle history for a symbol.
type CandleProvider interface {
	FetchDailyCandles(ctx context.Context, symbol string, days int) ([]model.Candle, error)
	Name() string
}

// QuoteProvider fetches a current-price snapshot for a symbol.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (model.Quote, error)
	Name() string
}
