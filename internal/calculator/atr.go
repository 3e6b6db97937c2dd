package calculator

import (
	"errors"
	"math"

	"VortexEdge/internal/model"
)

// CalculateATR computes the Wilder-smoothed Average True Range over the
// given period. Requires at least period+1 candles because true range needs
// the previous close.
func CalculateATR(candles []model.Candle, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(candles) < period+1 {
		return 0, ErrInsufficientData
	}

	trueRange := func(i int) float64 {
		high, low, prevClose := candles[i].High, candles[i].Low, candles[i-1].Close
		tr := high - low
		if d := math.Abs(high - prevClose); d > tr {
			tr = d
		}
		if d := math.Abs(low - prevClose); d > tr {
			tr = d
		}
		return tr
	}

	// Seed with the mean of the first `period` true ranges
	var sum float64
	for i := 1; i <= period; i++ {
		sum += trueRange(i)
	}
	atr := sum / float64(period)

	// Wilder smoothing for remaining candles
	for i := period + 1; i < len(candles); i++ {
		atr = (atr*float64(period-1) + trueRange(i)) / float64(period)
	}
	return atr, nil
}
