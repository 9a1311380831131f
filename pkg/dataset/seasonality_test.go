package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(period, cycles int) []float64 {
	values := make([]float64, period*cycles)
	for i := range values {
		values[i] = 10 + 5*math.Sin(2*math.Pi*float64(i)/float64(period))
	}
	return values
}

func TestDominantLag(t *testing.T) {
	values := sine(24, 14)

	lag := DominantLag(values, len(values)/2)
	require.Greater(t, lag, 0)
	// The strongest ACF peaks of a pure sine sit at multiples of the
	// period.
	assert.Zero(t, lag%24)
}

func TestDominantLagConstantSeries(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 3.5
	}
	assert.Zero(t, DominantLag(values, 50))
}

func TestDominantLagShortSeries(t *testing.T) {
	assert.Zero(t, DominantLag([]float64{1, 2, 3}, 10))
}

func TestSuggestContextLength(t *testing.T) {
	periodic := sine(24, 14)
	suggestion := SuggestContextLength(periodic, 6)
	assert.Zero(t, suggestion%24)

	flat := make([]float64, 64)
	assert.Equal(t, 28, SuggestContextLength(flat, 7))
}
