package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultSize, 1234)
	b := Generate(DefaultSize, 1234)
	require.Len(t, a, DefaultSize)
	assert.Equal(t, a, b)

	c := Generate(DefaultSize, 1235)
	assert.NotEqual(t, a, c, "different seeds should produce different data")
}

func TestGenerateRange(t *testing.T) {
	data := Generate(100_000, 99)

	var low, high bool
	for i, v := range data {
		require.GreaterOrEqual(t, v, int32(0), "element %d", i)
		require.LessOrEqual(t, v, int32(255), "element %d", i)
		if v < 128 {
			low = true
		} else {
			high = true
		}
	}
	assert.True(t, low, "expected values below 128")
	assert.True(t, high, "expected values at or above 128")
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(0, 1))
}

func TestNewSeed(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seed, int64(0))
}
