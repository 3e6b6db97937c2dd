// Package strategy implements the screening engine: derived metrics,
// composite scoring and the ranked report. Everything here is a pure
// computation over immutable candle series; fetching, caching and delivery
// live elsewhere.
package strategy

import (
	"sort"
	"sync"
	"time"

	"VortexEdge/internal/model"
)

// Screen runs one full screening pass over the supplied series map:
// per-symbol feature computation, the retention filter, composite scoring
// and a deterministic ranking. Feature computation is data-parallel across
// symbols; the final sort is the only serialization point. Symbols whose
// data could not be fetched are simply absent from the input map.
func Screen(seriesBySymbol map[string][]model.Candle, now time.Time, cfg Config) []model.FeatureRecord {
	symbols := make([]string, 0, len(seriesBySymbol))
	for symbol := range seriesBySymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	workers := cfg.MaxParallel
	if workers <= 0 {
		workers = 1
	}

	records := make([]*model.FeatureRecord, len(symbols))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			records[i] = BuildFeatureRecord(symbol, seriesBySymbol[symbol], now, cfg)
		}(i, symbol)
	}
	wg.Wait()

	retained := make([]model.FeatureRecord, 0, len(records))
	for _, rec := range records {
		if rec == nil || !retain(rec, cfg) {
			continue
		}
		retained = append(retained, *rec)
	}

	sort.SliceStable(retained, func(i, j int) bool {
		if retained[i].Score != retained[j].Score {
			return retained[i].Score > retained[j].Score
		}
		return retained[i].Symbol < retained[j].Symbol
	})
	return retained
}

// retain applies the inclusion filter: penny stocks are excluded and
// symbols without enough history for the indicator set are dropped
// silently, since short history is expected for recent listings.
func retain(rec *model.FeatureRecord, cfg Config) bool {
	if rec.Price <= cfg.MinPrice {
		return false
	}
	return rec.HistoryLen >= cfg.MinHistory
}
