// Package metrics exposes the Prometheus instrumentation shared across the
// scan pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal counts completed screening passes.
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vortexedge_scans_total",
		Help: "Completed screening passes.",
	})

	// ScanDuration observes wall time per screening pass.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vortexedge_scan_duration_seconds",
		Help:    "Wall time of a full screening pass.",
		Buckets: prometheus.DefBuckets,
	})

	// SymbolsCollected gauges how many symbols returned usable series in
	// the latest pass.
	SymbolsCollected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vortexedge_symbols_collected",
		Help: "Symbols with usable candle series in the latest scan.",
	})

	// Candidates gauges the size of the latest ranked report.
	Candidates = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vortexedge_candidates",
		Help: "Records retained by the latest scan.",
	})

	// FetchErrors counts per-provider fetch failures.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vortexedge_fetch_errors_total",
		Help: "Upstream fetch failures by provider.",
	}, []string{"provider"})
)
