package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VortexEdge/internal/model"
)

func TestScreen_Empty(t *testing.T) {
	out := Screen(map[string][]model.Candle{}, offSession, DefaultConfig())
	assert.Empty(t, out)
}

func TestScreen_PriceFloorStrict(t *testing.T) {
	series := map[string][]model.Candle{
		"AT":  flatSeries(20, 5.00, 1e6), // exactly at the floor, excluded
		"ABV": flatSeries(20, 5.01, 1e6),
	}
	out := Screen(series, offSession, DefaultConfig())
	require.Len(t, out, 1)
	assert.Equal(t, "ABV", out[0].Symbol)
}

func TestScreen_MinHistory(t *testing.T) {
	series := map[string][]model.Candle{
		"NEW": flatSeries(10, 50, 1e6), // recent listing, dropped silently
		"OLD": flatSeries(15, 50, 1e6),
	}
	out := Screen(series, offSession, DefaultConfig())
	require.Len(t, out, 1)
	assert.Equal(t, "OLD", out[0].Symbol)
}

func TestScreen_TieBreakBySymbol(t *testing.T) {
	series := map[string][]model.Candle{
		"BBB": flatSeries(20, 50, 1e6),
		"AAA": flatSeries(20, 50, 1e6),
		"CCC": flatSeries(20, 50, 1e6),
	}
	out := Screen(series, offSession, DefaultConfig())
	require.Len(t, out, 3)
	assert.Equal(t, out[0].Score, out[1].Score)
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, []string{out[0].Symbol, out[1].Symbol, out[2].Symbol})
}

func TestScreen_SortsByScoreDescending(t *testing.T) {
	quiet := flatSeries(20, 50, 1e6)

	spiked := flatSeries(20, 50, 1e6)
	last := &spiked[len(spiked)-1]
	last.Close = 51
	last.High = 51.5
	last.Low = 49.5
	last.Volume = 5e6

	series := map[string][]model.Candle{
		"ZZZ": spiked,
		"AAA": quiet,
	}
	out := Screen(series, offSession, DefaultConfig())
	require.Len(t, out, 2)
	assert.Equal(t, "ZZZ", out[0].Symbol, "higher score ranks first regardless of symbol order")
	assert.Greater(t, out[0].Score, out[1].Score)
}

func TestScreen_Deterministic(t *testing.T) {
	series := map[string][]model.Candle{
		"AAPL": flatSeries(20, 180, 2e6),
		"MSFT": flatSeries(25, 410, 3e6),
		"TSLA": flatSeries(30, 250, 9e6),
	}
	a := Screen(series, offSession, DefaultConfig())
	b := Screen(series, offSession, DefaultConfig())
	assert.Equal(t, a, b, "same inputs must produce an identical report")
}

func TestScreen_SingleWorkerStillCompletes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParallel = 0 // treated as one worker
	series := map[string][]model.Candle{
		"AAA": flatSeries(20, 50, 1e6),
		"BBB": flatSeries(20, 60, 1e6),
	}
	out := Screen(series, offSession, cfg)
	assert.Len(t, out, 2)
}
