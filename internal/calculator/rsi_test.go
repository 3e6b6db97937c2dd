package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRSI_InsufficientData(t *testing.T) {
	// Exactly period closes is one short: the seed window needs period deltas.
	closes := make([]float64, 14)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	_, err := CalculateRSI(closes, 14)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestCalculateRSI_InvalidPeriod(t *testing.T) {
	_, err := CalculateRSI([]float64{1, 2, 3}, 0)
	require.Error(t, err)
}

func TestCalculateRSI_PureUptrend(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi)
}

func TestCalculateRSI_PureDowntrend(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rsi)
}

func TestCalculateRSI_Bounds(t *testing.T) {
	// Alternating gains and losses must stay inside [0,100].
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100
		if i%2 == 0 {
			closes[i] = 103
		}
	}
	rsi, err := CalculateRSI(closes, 14)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rsi, 0.0)
	assert.LessOrEqual(t, rsi, 100.0)
}

func TestCalculateRSI_KnownValue(t *testing.T) {
	// period 2, closes 1,2,1,2: seed avgGain=avgLoss=0.5, one smoothing
	// step with gain 1 gives avgGain=0.75, avgLoss=0.25, RS=3, RSI=75.
	rsi, err := CalculateRSI([]float64{1, 2, 1, 2}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, rsi, 1e-9)
}
