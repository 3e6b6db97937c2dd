package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	symbols := make([]string, 25)
	for i := range symbols {
		symbols[i] = string(rune('A' + i))
	}

	batches := Chunk(symbols, 10)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 10)
	assert.Len(t, batches[1], 10)
	assert.Len(t, batches[2], 5)

	// Order preserved across batch boundaries.
	assert.Equal(t, symbols[10], batches[1][0])
}

func TestChunk_ZeroSizeIsOneBatch(t *testing.T) {
	batches := Chunk([]string{"AAPL", "MSFT"}, 0)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 2)
}

func TestChunk_Empty(t *testing.T) {
	assert.Nil(t, Chunk(nil, 10))
}

func TestDefaultUniverse(t *testing.T) {
	assert.NotEmpty(t, Default)
	assert.Contains(t, Default, "SPY")

	seen := make(map[string]bool, len(Default))
	for _, symbol := range Default {
		assert.False(t, seen[symbol], "duplicate symbol %s", symbol)
		seen[symbol] = true
	}
}

func TestSectors(t *testing.T) {
	assert.Len(t, Sectors, 11)
	for _, sector := range Sectors {
		assert.NotEmpty(t, sector.Symbol)
		assert.NotEmpty(t, sector.Name)
	}
}
