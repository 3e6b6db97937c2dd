package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   float64
		err    error
	}{
		{name: "last window only", values: []float64{1, 2, 3, 4}, period: 2, want: 3.5},
		{name: "full series", values: []float64{2, 4, 6}, period: 3, want: 4},
		{name: "insufficient", values: []float64{1, 2}, period: 5, err: ErrInsufficientData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSMA(tt.values, tt.period)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCalculateSMA_Deterministic(t *testing.T) {
	values := []float64{10.5, 11.2, 9.8, 10.1, 10.9}
	a, err := CalculateSMA(values, 3)
	require.NoError(t, err)
	b, err := CalculateSMA(values, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculateStdDev_Population(t *testing.T) {
	// Classic population example: mean 5, variance 4, stddev 2.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sd, err := CalculateStdDev(values, 8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, 1e-12)
}

func TestCalculateStdDev_FlatSeries(t *testing.T) {
	sd, err := CalculateStdDev([]float64{7, 7, 7, 7}, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sd)
}

func TestCalculateZScore(t *testing.T) {
	// closes 1,2,3 over period 3: mean 2, population stddev sqrt(2/3),
	// z for the last close is sqrt(3/2).
	z, err := CalculateZScore([]float64{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.5), z, 1e-12)
}

func TestCalculateZScore_Sign(t *testing.T) {
	up, err := CalculateZScore([]float64{10, 11, 12, 15}, 4)
	require.NoError(t, err)
	assert.Positive(t, up)

	down, err := CalculateZScore([]float64{15, 12, 11, 8}, 4)
	require.NoError(t, err)
	assert.Negative(t, down)
}

func TestCalculateZScore_DegenerateSeries(t *testing.T) {
	_, err := CalculateZScore([]float64{5, 5, 5, 5, 5}, 5)
	require.ErrorIs(t, err, ErrDegenerateInput)
}
