package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VortexEdge/internal/model"
)

func fptr(v float64) *float64 { return &v }

func scoreOf(rec *model.FeatureRecord) float64 {
	total, _ := scoreSignals(rec, DefaultWeights())
	return total
}

func TestScoreSignals_EmptyRecord(t *testing.T) {
	total, contribs := scoreSignals(&model.FeatureRecord{}, DefaultWeights())
	assert.Equal(t, 0.0, total)
	assert.Empty(t, contribs)
}

func TestScoreSignals_RVOLBrackets(t *testing.T) {
	tests := []struct {
		rvol float64
		want float64
	}{
		{2.5, 12}, {2.0, 12}, {1.7, 8}, {1.5, 8}, {1.3, 4}, {1.2, 4}, {1.1, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOf(&model.FeatureRecord{RVOL: tt.rvol}), "RVOL=%.2f", tt.rvol)
	}
}

func TestScoreSignals_ATRPctBrackets(t *testing.T) {
	tests := []struct {
		atrPct float64
		want   float64
	}{
		{6, 10}, {5, 10}, {4, 6}, {3, 6}, {2.5, 3}, {2, 3}, {1.9, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOf(&model.FeatureRecord{ATRPct: fptr(tt.atrPct)}), "ATR%%=%.1f", tt.atrPct)
	}
}

func TestScoreSignals_GapBracketsAbsolute(t *testing.T) {
	tests := []struct {
		gap  float64
		want float64
	}{
		{3.5, 8}, {3, 8}, {-3, 8}, {2, 5}, {-2, 5}, {1.5, 5}, {1, 2}, {0.5, 2}, {0.4, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOf(&model.FeatureRecord{GapPct: fptr(tt.gap)}), "gap=%.1f", tt.gap)
	}
}

func TestScoreSignals_RSIBrackets(t *testing.T) {
	tests := []struct {
		rsi  float64
		want float64
	}{
		{85, 8}, {15, 8}, {80, 4}, {75, 4}, {25, 4}, {20, 4}, {50, 0}, {70, 0}, {30, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOf(&model.FeatureRecord{RSI: fptr(tt.rsi)}), "RSI=%.0f", tt.rsi)
	}
}

func TestScoreSignals_ZScoreBrackets(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{3.5, 6}, {-3.5, 6}, {2.5, 3}, {-2.5, 3}, {3, 3}, {2, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOf(&model.FeatureRecord{ZScore: fptr(tt.z)}), "z=%.2f", tt.z)
	}
}

func TestScoreSignals_Liquidity(t *testing.T) {
	assert.Equal(t, 3.0, scoreOf(&model.FeatureRecord{DollarVolM: 500}))
	assert.Equal(t, 0.0, scoreOf(&model.FeatureRecord{DollarVolM: 499}))
}

func TestScoreSignals_PatternCombo(t *testing.T) {
	// Both patterns fire individually plus the combo bonus.
	rec := &model.FeatureRecord{InsideBar: true, NR7: true}
	assert.Equal(t, 15.0+15.0+10.0, scoreOf(rec))
}

func TestScoreSignals_ConfluenceVolume(t *testing.T) {
	// pattern(15) + rvol high(12) + confluence(8)
	rec := &model.FeatureRecord{InsideBar: true, RVOL: 2.5}
	assert.Equal(t, 15.0+12.0+8.0, scoreOf(rec))

	// RVOL at exactly 1.2 scores the low bracket but not confluence.
	rec = &model.FeatureRecord{InsideBar: true, RVOL: 1.2}
	assert.Equal(t, 15.0+4.0, scoreOf(rec))

	// volume alone, no pattern, no confluence
	rec = &model.FeatureRecord{RVOL: 2.5}
	assert.Equal(t, 12.0, scoreOf(rec))
}

func TestScoreSignals_ConfluenceRSI(t *testing.T) {
	// pattern(15) + rsi near(4) + confluence(6)
	rec := &model.FeatureRecord{InsideBar: true, RSI: fptr(75)}
	assert.Equal(t, 15.0+4.0+6.0, scoreOf(rec))

	rec = &model.FeatureRecord{NR7: true, RSI: fptr(25)}
	assert.Equal(t, 15.0+4.0+6.0, scoreOf(rec))

	// RSI exactly 70 is not an extreme
	rec = &model.FeatureRecord{InsideBar: true, RSI: fptr(70)}
	assert.Equal(t, 15.0, scoreOf(rec))
}

func TestScoreSignals_Deterministic(t *testing.T) {
	rec := &model.FeatureRecord{
		InsideBar:  true,
		RVOL:       1.8,
		RSI:        fptr(76),
		ATRPct:     fptr(3.2),
		GapPct:     fptr(-1.8),
		ZScore:     fptr(2.4),
		DollarVolM: 812,
	}
	a, contribsA := scoreSignals(rec, DefaultWeights())
	b, contribsB := scoreSignals(rec, DefaultWeights())
	assert.Equal(t, a, b)
	assert.Equal(t, contribsA, contribsB)

	// Every contribution carries a name and positive points.
	for _, c := range contribsA {
		assert.NotEmpty(t, c.Name)
		assert.Positive(t, c.Points)
	}
}

func TestScoreSignals_CustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.InsideBar = 50
	total, _ := scoreSignals(&model.FeatureRecord{InsideBar: true}, w)
	assert.Equal(t, 50.0, total)
}
