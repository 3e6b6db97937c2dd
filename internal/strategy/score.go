package strategy

import (
	"fmt"
	"math"

	"VortexEdge/internal/model"
)

// Weights is the composite-score table. The values are tunable strategy
// constants, kept as data so tuning never touches the scoring control flow.
type Weights struct {
	InsideBar    float64 `yaml:"inside_bar"`
	NR           float64 `yaml:"nr"`
	PatternCombo float64 `yaml:"pattern_combo"`

	RVOLHigh float64 `yaml:"rvol_high"` // RVOL >= 2.0
	RVOLMid  float64 `yaml:"rvol_mid"`  // 1.5 <= RVOL < 2.0
	RVOLLow  float64 `yaml:"rvol_low"`  // 1.2 <= RVOL < 1.5

	ATRPctHigh float64 `yaml:"atr_pct_high"` // ATR% >= 5
	ATRPctMid  float64 `yaml:"atr_pct_mid"`  // 3 <= ATR% < 5
	ATRPctLow  float64 `yaml:"atr_pct_low"`  // 2 <= ATR% < 3

	GapHigh float64 `yaml:"gap_high"` // |Gap%| >= 3
	GapMid  float64 `yaml:"gap_mid"`  // 1.5 <= |Gap%| < 3
	GapLow  float64 `yaml:"gap_low"`  // 0.5 <= |Gap%| < 1.5

	RSIExtreme float64 `yaml:"rsi_extreme"` // RSI > 80 or < 20
	RSINear    float64 `yaml:"rsi_near"`    // RSI in (70,80] or [20,30)

	ZScoreExtreme float64 `yaml:"z_score_extreme"` // |z| > 3
	ZScoreHigh    float64 `yaml:"z_score_high"`    // 2 < |z| <= 3

	ConfluenceVolume float64 `yaml:"confluence_volume"` // pattern and RVOL > 1.2
	ConfluenceRSI    float64 `yaml:"confluence_rsi"`    // pattern and RSI > 70 or < 30

	Liquidity float64 `yaml:"liquidity"` // dollar volume >= LiquidityFloorM

	LiquidityFloorM float64 `yaml:"liquidity_floor_m"`
}

// DefaultWeights returns the production tuning.
func DefaultWeights() Weights {
	return Weights{
		InsideBar:    15,
		NR:           15,
		PatternCombo: 10,

		RVOLHigh: 12,
		RVOLMid:  8,
		RVOLLow:  4,

		ATRPctHigh: 10,
		ATRPctMid:  6,
		ATRPctLow:  3,

		GapHigh: 8,
		GapMid:  5,
		GapLow:  2,

		RSIExtreme: 8,
		RSINear:    4,

		ZScoreExtreme: 6,
		ZScoreHigh:    3,

		ConfluenceVolume: 8,
		ConfluenceRSI:    6,

		Liquidity:       3,
		LiquidityFloorM: 500,
	}
}

// scoreSignals evaluates the weight table against a computed record and
// returns the total with a per-signal breakdown. Within each signal group
// only the highest applicable bracket contributes; groups sum with each
// other. Absent (nil) metrics contribute nothing.
func scoreSignals(rec *model.FeatureRecord, w Weights) (float64, []model.Contribution) {
	var contribs []model.Contribution
	add := func(name string, points float64, commentary string) {
		if points == 0 {
			return
		}
		contribs = append(contribs, model.Contribution{Name: name, Points: points, Commentary: commentary})
	}

	pattern := rec.InsideBar || rec.NR7
	if rec.InsideBar {
		add("inside_bar", w.InsideBar, "inside bar compression")
	}
	if rec.NR7 {
		add("nr7", w.NR, "narrowest range of the lookback window")
	}
	if rec.InsideBar && rec.NR7 {
		add("pattern_combo", w.PatternCombo, "inside bar + NR7")
	}

	switch {
	case rec.RVOL >= 2.0:
		add("rvol", w.RVOLHigh, fmt.Sprintf("RVOL=%.2f", rec.RVOL))
	case rec.RVOL >= 1.5:
		add("rvol", w.RVOLMid, fmt.Sprintf("RVOL=%.2f", rec.RVOL))
	case rec.RVOL >= 1.2:
		add("rvol", w.RVOLLow, fmt.Sprintf("RVOL=%.2f", rec.RVOL))
	}

	if rec.ATRPct != nil {
		switch atrPct := *rec.ATRPct; {
		case atrPct >= 5:
			add("atr_pct", w.ATRPctHigh, fmt.Sprintf("ATR%%=%.1f", atrPct))
		case atrPct >= 3:
			add("atr_pct", w.ATRPctMid, fmt.Sprintf("ATR%%=%.1f", atrPct))
		case atrPct >= 2:
			add("atr_pct", w.ATRPctLow, fmt.Sprintf("ATR%%=%.1f", atrPct))
		}
	}

	if rec.GapPct != nil {
		switch gap := math.Abs(*rec.GapPct); {
		case gap >= 3:
			add("gap", w.GapHigh, fmt.Sprintf("gap=%+.1f%%", *rec.GapPct))
		case gap >= 1.5:
			add("gap", w.GapMid, fmt.Sprintf("gap=%+.1f%%", *rec.GapPct))
		case gap >= 0.5:
			add("gap", w.GapLow, fmt.Sprintf("gap=%+.1f%%", *rec.GapPct))
		}
	}

	if rec.RSI != nil {
		switch rsi := *rec.RSI; {
		case rsi > 80 || rsi < 20:
			add("rsi", w.RSIExtreme, fmt.Sprintf("RSI=%.0f", rsi))
		case rsi > 70 || rsi < 30:
			add("rsi", w.RSINear, fmt.Sprintf("RSI=%.0f", rsi))
		}
	}

	if rec.ZScore != nil {
		switch z := math.Abs(*rec.ZScore); {
		case z > 3:
			add("z_score", w.ZScoreExtreme, fmt.Sprintf("z=%+.2f", *rec.ZScore))
		case z > 2:
			add("z_score", w.ZScoreHigh, fmt.Sprintf("z=%+.2f", *rec.ZScore))
		}
	}

	if pattern && rec.RVOL > 1.2 {
		add("confluence_volume", w.ConfluenceVolume, "pattern with volume confirmation")
	}
	if pattern && rec.RSI != nil && (*rec.RSI > 70 || *rec.RSI < 30) {
		add("confluence_rsi", w.ConfluenceRSI, "pattern at RSI extreme")
	}

	if rec.DollarVolM >= w.LiquidityFloorM {
		add("liquidity", w.Liquidity, fmt.Sprintf("$vol=%.0fM", rec.DollarVolM))
	}

	total := 0.0
	for _, c := range contribs {
		total += c.Points
	}
	return total, contribs
}
