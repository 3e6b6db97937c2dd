// Package calculator contains the pure numeric indicator functions. Every
// function is a deterministic computation over its inputs with no I/O and no
// hidden state; an error return means "no signal", never a failure the
// caller should surface.
package calculator

import (
	"errors"

	"VortexEdge/internal/model"
)

// ErrInsufficientData is returned when the series is shorter than the
// window an indicator requires.
var ErrInsufficientData = errors.New("not enough data")

// ErrDegenerateInput is returned for inputs where the indicator is
// mathematically undefined, such as a zero standard deviation.
var ErrDegenerateInput = errors.New("degenerate input")

// ExtractCloses returns the close prices of the given candles in order.
func ExtractCloses(candles []model.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// ExtractVolumes returns the volumes of the given candles in order.
func ExtractVolumes(candles []model.Candle) []float64 {
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		volumes[i] = c.Volume
	}
	return volumes
}
