package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VortexEdge/internal/cache"
	"VortexEdge/internal/collector"
	"VortexEdge/internal/model"
	"VortexEdge/internal/pulse"
	"VortexEdge/internal/recorder"
	"VortexEdge/internal/strategy"
)

type capturingRecorder struct {
	runs []*recorder.ScanRun
	err  error
}

func (c *capturingRecorder) RecordScan(run *recorder.ScanRun) error {
	c.runs = append(c.runs, run)
	return c.err
}

func (c *capturingRecorder) Close() error { return nil }

func sampleSeries(n int, price float64) []model.Candle {
	series := make([]model.Candle, n)
	day := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	for i := range series {
		series[i] = model.Candle{
			Time: day.AddDate(0, 0, i), Open: price, High: price + 1, Low: price - 1, Close: price, Volume: 1e6,
		}
	}
	return series
}

func newTestService(mock *collector.MockFetcher, rec recorder.Recorder, symbols []string) *Service {
	cfg := collector.DefaultConfig()
	cfg.ChunkPause = 0
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000
	col := collector.NewCollector(mock, cache.NewNoopCache(), cfg)
	return NewService(col, pulse.NewService(mock), rec, strategy.DefaultConfig(), symbols)
}

func TestRunScan(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string][]model.Candle{
		"AAPL": sampleSeries(20, 180),
		"MSFT": sampleSeries(20, 410),
	}}
	rec := &capturingRecorder{}
	svc := newTestService(mock, rec, []string{"AAPL", "MSFT", "GONE"})

	require.Nil(t, svc.LatestScan(), "nothing published before the first pass")

	report, err := svc.RunScan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.ScannedCount)
	assert.Len(t, report.Opportunities, 2, "unfetchable symbol is absent, not fatal")

	assert.Same(t, report, svc.LatestScan())

	require.Len(t, rec.runs, 1)
	assert.NotEmpty(t, rec.runs[0].ID)
	assert.Equal(t, 3, rec.runs[0].ScannedCount)
}

func TestRunScan_RecorderFailureDoesNotFailScan(t *testing.T) {
	mock := &collector.MockFetcher{Series: map[string][]model.Candle{
		"AAPL": sampleSeries(20, 180),
	}}
	svc := newTestService(mock, &capturingRecorder{err: errors.New("disk full")}, []string{"AAPL"})

	report, err := svc.RunScan(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Same(t, report, svc.LatestScan())
}

func TestRunScan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &collector.MockFetcher{Series: map[string][]model.Candle{}}
	svc := newTestService(mock, &capturingRecorder{}, []string{"AAPL"})

	_, err := svc.RunScan(ctx)
	require.Error(t, err)
	assert.Nil(t, svc.LatestScan())
}

func TestRunPulse(t *testing.T) {
	mock := &collector.MockFetcher{Quotes: map[string]model.Quote{
		"SPY": {Symbol: "SPY", Price: 560, ChangePct: 0.5},
		"XLK": {Symbol: "XLK", Price: 210, ChangePct: 1.5},
	}}
	svc := newTestService(mock, &capturingRecorder{}, nil)

	require.Nil(t, svc.LatestPulse())
	report, err := svc.RunPulse(context.Background())
	require.NoError(t, err)
	assert.Same(t, report, svc.LatestPulse())
	assert.Len(t, report.Sectors, 1)
}
