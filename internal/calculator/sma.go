package calculator

import (
	"errors"
	"math"
)

// CalculateSMA computes the simple moving average of the most recent
// `period` values.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// CalculateStdDev computes the population standard deviation of the most
// recent `period` values.
func CalculateStdDev(values []float64, period int) (float64, error) {
	mean, err := CalculateSMA(values, period)
	if err != nil {
		return 0, err
	}
	var sumSq float64
	for i := len(values) - period; i < len(values); i++ {
		d := values[i] - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(period)), nil
}

// CalculateZScore measures how far the last close sits from its rolling
// mean, in standard-deviation units. A flat price run has no defined
// z-score and yields ErrDegenerateInput.
func CalculateZScore(closes []float64, period int) (float64, error) {
	mean, err := CalculateSMA(closes, period)
	if err != nil {
		return 0, err
	}
	stdDev, err := CalculateStdDev(closes, period)
	if err != nil {
		return 0, err
	}
	if stdDev == 0 {
		return 0, ErrDegenerateInput
	}
	return (closes[len(closes)-1] - mean) / stdDev, nil
}
