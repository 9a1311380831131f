package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStatistics(t *testing.T) {
	ds := Dataset{
		{ItemID: "a", Target: []float64{1, 2, 3, 6}, FeatStaticCat: []int{0}},
		{ItemID: "b", Target: []float64{4, 2}, FeatStaticCat: []int{1}},
	}

	st, err := CalculateStatistics(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, st.NumSeries)
	assert.Equal(t, 6, st.NumTimeObservations)
	assert.Equal(t, 3.0, st.MeanTargetLength)
	assert.Equal(t, 1.0, st.MinTarget)
	assert.Equal(t, 3.0, st.MeanTarget)
	assert.Equal(t, 6.0, st.MaxTarget)
	assert.Equal(t, 0, st.NumFeatDynamicReal)
	assert.Equal(t, []int{2}, st.CardinalityPerStaticCat)
}

func TestCalculateStatisticsEmptyDataset(t *testing.T) {
	_, err := CalculateStatistics(Dataset{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty dataset")
}

func TestCalculateStatisticsInconsistentDynamicReal(t *testing.T) {
	ds := Dataset{
		{ItemID: "a", Target: []float64{1, 2}, FeatDynamicReal: [][]float64{{0, 0}}},
		{ItemID: "b", Target: []float64{1, 2}},
	}
	_, err := CalculateStatistics(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamic real")
}

func TestCalculateStatisticsMisalignedDynamicReal(t *testing.T) {
	ds := Dataset{
		{ItemID: "a", Target: []float64{1, 2, 3}, FeatDynamicReal: [][]float64{{0, 0}}},
	}
	_, err := CalculateStatistics(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3")
}

func TestCalculateStatisticsInconsistentStaticCat(t *testing.T) {
	ds := Dataset{
		{ItemID: "a", Target: []float64{1}, FeatStaticCat: []int{1, 2}},
		{ItemID: "b", Target: []float64{1}, FeatStaticCat: []int{1}},
	}
	_, err := CalculateStatistics(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "static categorical")
}
