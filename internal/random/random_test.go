package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	s := Fixed(0.25, 0.75)

	assert.Equal(t, 0.25, s.Float64())
	assert.Equal(t, 0.75, s.Float64())
	assert.Equal(t, 0.0, s.Float64(), "exhausted sequence returns fallback")
	assert.Equal(t, 3, s.Used())
}

func TestIndex(t *testing.T) {
	tests := []struct {
		draw float64
		n    int
		want int
	}{
		{0, 3, 0},
		{0.34, 3, 1},
		{0.4, 3, 1},
		{0.99, 3, 2},
		{1, 3, 2},
		{0.5, 0, 0},
		{-0.1, 4, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Index(tt.draw, tt.n), "Index(%v, %d)", tt.draw, tt.n)
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestForMapDiffersPerVisit(t *testing.T) {
	assert.NotEqual(t, ForMap(1, 2, 0), ForMap(1, 2, 1))
	assert.NotEqual(t, ForMap(1, 2, 0), ForMap(1, 3, 0))
	assert.Equal(t, ForMap(1, 2, 5), ForMap(1, 2, 5))
}

func TestForMapNoLinearCollisions(t *testing.T) {
	// при сложении (map 1, visit 1_000_003) совпадал с (map 2, visit 0)
	assert.NotEqual(t, ForMap(7, 1, 1_000_003), ForMap(7, 2, 0))
	assert.NotEqual(t, ForMap(0, 1, 2), ForMap(1, 1, 1))
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}
