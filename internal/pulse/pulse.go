// Package pulse ranks the sector ETFs by relative strength against the
// market benchmark.
package pulse

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"VortexEdge/internal/collector"
	"VortexEdge/internal/model"
	"VortexEdge/internal/universe"
)

// Service fetches sector quotes and produces the ranked pulse report.
type Service struct {
	quotes collector.QuoteProvider
}

func NewService(quotes collector.QuoteProvider) *Service {
	return &Service{quotes: quotes}
}

// Snapshot fetches the benchmark and every sector ETF concurrently, then
// ranks sectors by relative strength. A failed sector quote drops that
// sector from the report; a failed benchmark fails the snapshot.
func (s *Service) Snapshot(ctx context.Context) (*model.PulseReport, error) {
	benchmark, err := s.quotes.FetchQuote(ctx, universe.Benchmark)
	if err != nil {
		return nil, fmt.Errorf("fetch benchmark quote: %w", err)
	}

	quotes := make(map[string]model.Quote, len(universe.Sectors))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sector := range universe.Sectors {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			quote, err := s.quotes.FetchQuote(ctx, symbol)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("sector quote failed, sector skipped")
				return
			}
			mu.Lock()
			quotes[symbol] = quote
			mu.Unlock()
		}(sector.Symbol)
	}
	wg.Wait()

	return &model.PulseReport{
		SPYChangePct: benchmark.ChangePct,
		Sectors:      Rank(quotes, benchmark.ChangePct),
		UpdatedAt:    time.Now().UTC(),
	}, nil
}

// Rank computes each sector's change relative to the benchmark and orders
// the result descending. Quotes with non-positive prices are dropped rather
// than reported as misleading zeros. Pure; no I/O.
func Rank(quotes map[string]model.Quote, benchmarkChangePct float64) []model.SectorStrength {
	ranked := make([]model.SectorStrength, 0, len(universe.Sectors))
	for _, sector := range universe.Sectors {
		quote, ok := quotes[sector.Symbol]
		if !ok || quote.Price <= 0 {
			continue
		}
		ranked = append(ranked, model.SectorStrength{
			Symbol:           sector.Symbol,
			Name:             sector.Name,
			Price:            quote.Price,
			ChangePct:        quote.ChangePct,
			RelativeStrength: quote.ChangePct - benchmarkChangePct,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelativeStrength > ranked[j].RelativeStrength
	})
	return ranked
}
