package collector

import (
	"context"

	"github.com/rs/zerolog/log"

	"VortexEdge/internal/model"
)

// CompositeQuotes tries each quote provider in order and returns the first
// successful answer. Used to put Alpha Vantage in front of the Yahoo
// fallback without either side knowing about the other.
type CompositeQuotes struct {
	Providers []QuoteProvider
}

// NewCompositeQuotes builds a fallback chain from the given providers.
func NewCompositeQuotes(providers ...QuoteProvider) *CompositeQuotes {
	return &CompositeQuotes{Providers: providers}
}

func (c *CompositeQuotes) Name() string { return "composite" }

func (c *CompositeQuotes) FetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	var lastErr error
	for _, p := range c.Providers {
		quote, err := p.FetchQuote(ctx, symbol)
		if err == nil {
			return quote, nil
		}
		lastErr = err
		log.Debug().Err(err).Str("provider", p.Name()).Str("symbol", symbol).Msg("quote provider failed, trying next")
	}
	return model.Quote{}, lastErr
}
