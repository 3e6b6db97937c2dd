package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"VortexEdge/internal/collector"
	"VortexEdge/internal/metrics"
	"VortexEdge/internal/model"
	"VortexEdge/internal/pulse"
	"VortexEdge/internal/recorder"
	"VortexEdge/internal/strategy"
)

// Service orchestrates one screening pass: collect series, run the
// engine, record the run and publish the latest report for the HTTP layer.
type Service struct {
	collector *collector.Collector
	pulse     *pulse.Service
	recorder  recorder.Recorder
	cfg       strategy.Config
	symbols   []string

	mu          sync.RWMutex
	latestScan  *model.ScanReport
	latestPulse *model.PulseReport
}

// NewService wires the scan orchestration.
func NewService(col *collector.Collector, pulseSvc *pulse.Service, rec recorder.Recorder, cfg strategy.Config, symbols []string) *Service {
	return &Service{
		collector: col,
		pulse:     pulseSvc,
		recorder:  rec,
		cfg:       cfg,
		symbols:   symbols,
	}
}

// RunScan executes a full screening pass. A recorder failure is logged but
// never fails the scan; the report is still published.
func (s *Service) RunScan(ctx context.Context) (*model.ScanReport, error) {
	start := time.Now()
	series := s.collector.CollectSeries(ctx, s.symbols)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	records := strategy.Screen(series, now, s.cfg)
	report := &model.ScanReport{
		Opportunities: records,
		ScannedCount:  len(s.symbols),
		Timestamp:     now.UTC(),
	}

	s.mu.Lock()
	s.latestScan = report
	s.mu.Unlock()

	metrics.ScansTotal.Inc()
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	metrics.SymbolsCollected.Set(float64(len(series)))
	metrics.Candidates.Set(float64(len(records)))

	if err := s.recorder.RecordScan(&recorder.ScanRun{
		ID:           uuid.NewString(),
		Timestamp:    now,
		ScannedCount: len(s.symbols),
		Candidates:   records,
	}); err != nil {
		log.Error().Err(err).Msg("record scan failed")
	}

	log.Info().
		Int("scanned", len(s.symbols)).
		Int("collected", len(series)).
		Int("candidates", len(records)).
		Dur("took", time.Since(start)).
		Msg("scan complete")
	return report, nil
}

// RunPulse refreshes the sector pulse snapshot.
func (s *Service) RunPulse(ctx context.Context) (*model.PulseReport, error) {
	report, err := s.pulse.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.latestPulse = report
	s.mu.Unlock()

	log.Info().Int("sectors", len(report.Sectors)).Float64("spy_change", report.SPYChangePct).Msg("pulse refreshed")
	return report, nil
}

// LatestScan returns the most recent scan report, nil before the first
// completed pass.
func (s *Service) LatestScan() *model.ScanReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestScan
}

// LatestPulse returns the most recent pulse report, nil before the first
// completed refresh.
func (s *Service) LatestPulse() *model.PulseReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestPulse
}
