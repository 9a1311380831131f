package estimator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqcast/seqcast/pkg/dataset"
)

func TestDeriveAutoFields(t *testing.T) {
	// Two static categorical features taking 5 and 12 distinct values,
	// no dynamic real features.
	var ds dataset.Dataset
	for i := 0; i < 60; i++ {
		ds = append(ds, dataset.Entry{
			ItemID:        fmt.Sprintf("series-%d", i),
			Target:        []float64{1, 2, 3},
			FeatStaticCat: []int{i % 5, i % 12},
		})
	}

	af, err := DeriveAutoFields(ds)
	require.NoError(t, err)
	assert.False(t, af.UseFeatDynamicReal)
	assert.True(t, af.UseFeatStaticCat)
	assert.Equal(t, []int{5, 12}, af.Cardinality)
}

func TestDeriveAutoFieldsWithDynamicReal(t *testing.T) {
	ds := dataset.Dataset{
		{
			ItemID:          "a",
			Target:          []float64{1, 2, 3, 4},
			FeatDynamicReal: [][]float64{{0.1, 0.2, 0.3, 0.4}},
		},
	}

	af, err := DeriveAutoFields(ds)
	require.NoError(t, err)
	assert.True(t, af.UseFeatDynamicReal)
	assert.False(t, af.UseFeatStaticCat)
	assert.Empty(t, af.Cardinality)
}

func TestDeriveAutoFieldsEmptyDataset(t *testing.T) {
	_, err := DeriveAutoFields(nil)
	require.Error(t, err)
}

func TestWithAutoFields(t *testing.T) {
	af := AutoFields{UseFeatStaticCat: true, Cardinality: []int{4, 9}}
	cfg := Config{Freq: "H", PredictionLength: 6}.WithAutoFields(af)

	est, err := NewMQCNN(cfg)
	require.NoError(t, err)
	assert.True(t, est.Config.UseFeatStaticCat)
	assert.Equal(t, []int{4, 9}, est.Config.Cardinality)
	assert.Equal(t, []int{2, 5}, est.Config.EmbeddingDimension)
}
