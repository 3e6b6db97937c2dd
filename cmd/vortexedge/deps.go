package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"VortexEdge/internal/cache"
	"VortexEdge/internal/collector"
	"VortexEdge/internal/config"
	"VortexEdge/internal/pulse"
	"VortexEdge/internal/recorder"
	"VortexEdge/internal/scheduler"
)

// deps bundles the wired collaborators behind the scan service.
type deps struct {
	service *scheduler.Service
	cache   cache.CandleCache
	rec     recorder.Recorder
}

func (d *deps) close() {
	if err := d.rec.Close(); err != nil {
		log.Warn().Err(err).Msg("close recorder")
	}
	if err := d.cache.Close(); err != nil {
		log.Warn().Err(err).Msg("close cache")
	}
}

// buildDeps wires the full pipeline from config: cache, providers,
// collector, pulse, recorder and the scan service.
func buildDeps(cfg *config.Config) (*deps, error) {
	var candleCache cache.CandleCache = cache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.CacheTTL())
		if err != nil {
			return nil, fmt.Errorf("init redis cache: %w", err)
		}
		candleCache = rc
		log.Info().Str("addr", cfg.Redis.Addr).Msg("candle cache: redis")
	}

	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	col := collector.NewCollector(yahoo, candleCache, cfg.CollectorConfig())

	// Quote chain: Finnhub first when keyed, then Alpha Vantage, with the
	// chart API as the always-available fallback.
	var quoteProviders []collector.QuoteProvider
	if cfg.Providers.FinnhubKey != "" {
		quoteProviders = append(quoteProviders, collector.NewFinnhubFetcher(cfg.Providers.FinnhubKey))
	}
	if cfg.Providers.AlphaVantageKey != "" {
		quoteProviders = append(quoteProviders, collector.NewAlphaVantageFetcher(cfg.Providers.AlphaVantageKey))
	}
	quoteProviders = append(quoteProviders, yahoo)
	pulseSvc := pulse.NewService(collector.NewCompositeQuotes(quoteProviders...))

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	switch {
	case cfg.Database.PostgresDSN != "":
		pr, err := recorder.NewPostgresRecorder(cfg.Database.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("init postgres recorder: %w", err)
		}
		rec = pr
	case cfg.Database.SQLitePath != "":
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
		}
	}

	svc := scheduler.NewService(col, pulseSvc, rec, cfg.StrategyConfig(), cfg.Universe.Symbols)
	return &deps{service: svc, cache: candleCache, rec: rec}, nil
}
