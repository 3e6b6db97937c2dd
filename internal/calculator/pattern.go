package calculator

import "VortexEdge/internal/model"

// IsInsideBar reports whether the last candle is fully contained within the
// previous candle's high/low range. False when fewer than two candles exist.
func IsInsideBar(candles []model.Candle) bool {
	if len(candles) < 2 {
		return false
	}
	current := candles[len(candles)-1]
	previous := candles[len(candles)-2]
	return current.High < previous.High && current.Low > previous.Low
}

// IsNR reports whether the last candle has the strictly narrowest high-low
// range of the trailing lookback+1 bars (lookback 7 gives the classic NR7).
// An exact tie with any prior range disqualifies.
func IsNR(candles []model.Candle, lookback int) bool {
	if lookback <= 0 || len(candles) < lookback+1 {
		return false
	}
	last := len(candles) - 1
	targetRange := candles[last].Range()
	for i := 1; i <= lookback; i++ {
		if targetRange >= candles[last-i].Range() {
			return false
		}
	}
	return true
}
