package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMQCNNDefaults(t *testing.T) {
	est, err := NewMQCNN(Config{Freq: "H", PredictionLength: 12})
	require.NoError(t, err)

	enc, ok := est.Encoder.(*Conv1DEncoder)
	require.True(t, ok)
	assert.Equal(t, []int{30, 30, 30}, enc.ChannelsSeq)
	assert.Equal(t, []int{1, 3, 5}, enc.DilationSeq)
	assert.Equal(t, []int{7, 3, 3}, enc.KernelSizeSeq)
	assert.True(t, enc.UseResidual)
	assert.True(t, enc.UseStaticFeat)
	assert.True(t, enc.UseDynamicFeat)

	assert.Equal(t, 12, est.Decoder.DecoderLength)
	assert.Equal(t, 30, est.Decoder.FinalDim)
	assert.Empty(t, est.Decoder.HiddenDimensionSeq)

	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}, est.QuantileOutput.Quantiles)
	assert.Equal(t, 9, est.QuantileOutput.NumOutputs())

	assert.Equal(t, 48, est.Config.ContextLength)
	assert.False(t, *est.Config.Scaling)
	require.NotNil(t, est.Config.Trainer)
	assert.Equal(t, 100, est.Config.Trainer.Epochs)
}

func TestMQCNNValidation(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{
			name:  "zero prediction length",
			cfg:   Config{Freq: "H"},
			field: "predictionLength",
		},
		{
			name:  "negative prediction length",
			cfg:   Config{Freq: "H", PredictionLength: -3},
			field: "predictionLength",
		},
		{
			name: "mismatched cnn sequences",
			cfg: Config{Freq: "H", PredictionLength: 6,
				ChannelsSeq: []int{30, 30, 30}, DilationSeq: []int{1, 3}, KernelSizeSeq: []int{7, 3, 3}},
			field: "channelsSeq",
		},
		{
			name: "non-positive channels",
			cfg: Config{Freq: "H", PredictionLength: 6,
				ChannelsSeq: []int{30, 0, 30}, DilationSeq: []int{1, 3, 5}, KernelSizeSeq: []int{7, 3, 3}},
			field: "channelsSeq",
		},
		{
			name: "non-positive dilation",
			cfg: Config{Freq: "H", PredictionLength: 6,
				ChannelsSeq: []int{30, 30, 30}, DilationSeq: []int{1, -3, 5}, KernelSizeSeq: []int{7, 3, 3}},
			field: "dilationSeq",
		},
		{
			name:  "kernel size one",
			cfg:   Config{Freq: "H", PredictionLength: 6, KernelSizeSeq: []int{1, 3, 3}},
			field: "kernelSizeSeq",
		},
		{
			name:  "quantile above one",
			cfg:   Config{Freq: "H", PredictionLength: 6, Quantiles: []float64{0.5, 1.5}},
			field: "quantiles",
		},
		{
			name:  "quantile below zero",
			cfg:   Config{Freq: "H", PredictionLength: 6, Quantiles: []float64{-0.1}},
			field: "quantiles",
		},
		{
			name:  "non-positive decoder dim",
			cfg:   Config{Freq: "H", PredictionLength: 6, DecoderMLPDimSeq: []int{30, 0}},
			field: "decoderMlpDimSeq",
		},
		{
			name:  "missing cardinality",
			cfg:   Config{Freq: "H", PredictionLength: 6, UseFeatStaticCat: true},
			field: "cardinality",
		},
		{
			name:  "non-positive cardinality",
			cfg:   Config{Freq: "H", PredictionLength: 6, UseFeatStaticCat: true, Cardinality: []int{5, 0}},
			field: "cardinality",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMQCNN(tc.cfg)
			require.Error(t, err)

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr), "want a ConfigurationError, got %v", err)
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestQuantileBoundariesAreValid(t *testing.T) {
	est, err := NewMQCNN(Config{Freq: "H", PredictionLength: 6, Quantiles: []float64{0, 0.5, 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, est.QuantileOutput.Quantiles)
}

func TestEqualCNNSequencesOfAnyLength(t *testing.T) {
	est, err := NewMQCNN(Config{Freq: "D", PredictionLength: 6,
		ChannelsSeq: []int{10, 20}, DilationSeq: []int{1, 2}, KernelSizeSeq: []int{3, 2}})
	require.NoError(t, err)

	enc := est.Encoder.(*Conv1DEncoder)
	assert.Equal(t, []int{10, 20}, enc.ChannelsSeq)
}

func TestEmbeddingDimensionDerivation(t *testing.T) {
	est, err := NewMQCNN(Config{Freq: "H", PredictionLength: 6,
		UseFeatStaticCat: true, Cardinality: []int{5, 1000}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 50}, est.Config.EmbeddingDimension)
}

func TestContextLengthKept(t *testing.T) {
	est, err := NewMQCNN(Config{Freq: "H", PredictionLength: 6, ContextLength: 30})
	require.NoError(t, err)
	assert.Equal(t, 30, est.Config.ContextLength)
}

func TestDefaultSlicesNotShared(t *testing.T) {
	a, err := NewMQCNN(Config{Freq: "H", PredictionLength: 6})
	require.NoError(t, err)
	a.Config.ChannelsSeq[0] = 99

	b, err := NewMQCNN(Config{Freq: "H", PredictionLength: 6})
	require.NoError(t, err)
	assert.Equal(t, 30, b.Config.ChannelsSeq[0])
}
