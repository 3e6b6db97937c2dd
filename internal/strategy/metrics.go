package strategy

import (
	"time"

	"VortexEdge/internal/calculator"
	"VortexEdge/internal/market"
	"VortexEdge/internal/model"
)

// BuildFeatureRecord computes the full metric snapshot for one symbol from
// its candle series and the current instant, then scores it. Returns nil
// for an empty series. Indicators without enough history stay nil on the
// record and are excluded from scoring.
func BuildFeatureRecord(symbol string, candles []model.Candle, now time.Time, cfg Config) *model.FeatureRecord {
	if len(candles) == 0 {
		return nil
	}
	last := candles[len(candles)-1]
	closes := calculator.ExtractCloses(candles)

	rec := &model.FeatureRecord{
		Symbol:     symbol,
		Date:       last.Time,
		Price:      last.Close,
		HistoryLen: len(candles),
	}

	if len(candles) >= 2 {
		prev := candles[len(candles)-2]
		if prev.Close > 0 {
			rec.ChangePct = (last.Close - prev.Close) / prev.Close * 100
		}
		if prev.Close > 0 && last.Open > 0 {
			gap := (last.Open - prev.Close) / prev.Close * 100
			rec.GapPct = &gap
		}
	}

	if rsi, err := calculator.CalculateRSI(closes, cfg.RSIPeriod); err == nil {
		rec.RSI = &rsi
	}
	if atr, err := calculator.CalculateATR(candles, cfg.ATRPeriod); err == nil {
		rec.ATR = &atr
		if last.Close > 0 {
			atrPct := atr / last.Close * 100
			rec.ATRPct = &atrPct
		}
	}
	if z, err := calculator.CalculateZScore(closes, cfg.ZScorePeriod); err == nil {
		rec.ZScore = &z
	}

	rec.RVOL = relativeVolume(calculator.ExtractVolumes(candles), now, cfg.VolumeSMAPeriod)
	rec.DollarVolM = last.Close * last.Volume / 1e6
	rec.InsideBar = calculator.IsInsideBar(candles)
	rec.NR7 = calculator.IsNR(candles, cfg.NRLookback)
	rec.Trend = trendDirection(closes, cfg.TrendLookback)

	rec.Score, rec.Contributions = scoreSignals(rec, cfg.Weights)
	return rec
}

// relativeVolume projects the current (possibly partial) session volume to
// a full-day figure and compares it to the mean of the prior sessions.
// Missing or zero baseline means no signal, reported as 0.
func relativeVolume(volumes []float64, now time.Time, period int) float64 {
	if len(volumes) < 2 {
		return 0
	}
	today := volumes[len(volumes)-1]
	prior := volumes[:len(volumes)-1]
	avg, err := calculator.CalculateSMA(prior, period)
	if err != nil || avg == 0 {
		return 0
	}
	projected := today / market.DayFraction(now)
	return projected / avg
}

// trendDirection compares the latest close to the close up to `lookback`
// sessions back, fewer when history is short. A coarse momentum flag, not a
// statistical trend test.
func trendDirection(closes []float64, lookback int) string {
	back := lookback
	if back > len(closes)-1 {
		back = len(closes) - 1
	}
	latest := closes[len(closes)-1]
	if latest > closes[len(closes)-1-back] {
		return model.TrendUp
	}
	return model.TrendDown
}
