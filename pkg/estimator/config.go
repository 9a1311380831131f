package estimator

import (
	"fmt"

	"github.com/seqcast/seqcast/pkg/trainer"
)

var (
	defaultDecoderMLPDimSeq = []int{30}
	defaultChannelsSeq      = []int{30, 30, 30}
	defaultDilationSeq      = []int{1, 3, 5}
	defaultKernelSizeSeq    = []int{7, 3, 3}
	defaultQuantiles        = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
)

const (
	// defaultContextMultiple sets the context length to a multiple of the
	// prediction length when no explicit context length is given.
	defaultContextMultiple = 4
	// maxEmbeddingDimension caps the derived embedding size per
	// categorical feature.
	maxEmbeddingDimension = 50
)

// Config carries every hyperparameter of the MQ-CNN and MQ-RNN estimators.
// The zero value of an optional field means "use the documented default";
// normalized resolves the defaults before validation, and the normalized
// copy is what ends up on the estimator bundle.
type Config struct {
	// Freq is the time granularity of the data, e.g. "5min", "H", "D".
	Freq string `json:"freq"`
	// PredictionLength is the forecast horizon in time steps.
	PredictionLength int `json:"predictionLength"`
	// ContextLength is the number of historical time steps conditioning
	// the forecast. Defaults to 4 * PredictionLength.
	ContextLength int `json:"contextLength,omitempty"`

	// UseFeatDynamicReal enables the dynamic real-valued features of the
	// dataset. Derivable through DeriveAutoFields.
	UseFeatDynamicReal bool `json:"useFeatDynamicReal,omitempty"`
	// UseFeatStaticCat enables the static categorical features of the
	// dataset. Derivable through DeriveAutoFields.
	UseFeatStaticCat bool `json:"useFeatStaticCat,omitempty"`
	// Cardinality is the number of distinct values of each static
	// categorical feature. Required when UseFeatStaticCat is set.
	Cardinality []int `json:"cardinality,omitempty"`
	// EmbeddingDimension is the embedding size per categorical feature.
	// Defaults to min(50, (c+1)/2) for each cardinality c.
	EmbeddingDimension []int `json:"embeddingDimension,omitempty"`

	// AddTimeFeature adds calendar features derived from Freq.
	AddTimeFeature bool `json:"addTimeFeature,omitempty"`
	// AddAgeFeature adds a feature growing with the age of the series.
	AddAgeFeature bool `json:"addAgeFeature,omitempty"`
	// EnableDecoderDynamicFeature also feeds the dynamic features to the
	// decoder. Disable it when the dynamic features are unknown over the
	// prediction range.
	EnableDecoderDynamicFeature bool `json:"enableDecoderDynamicFeature,omitempty"`

	// Seed is recorded on the bundle and propagated by SeedSources.
	// Constructors never mutate process-wide RNG state themselves.
	Seed *int64 `json:"seed,omitempty"`

	// DecoderMLPDimSeq lists the decoder MLP widths; the last element is
	// the decoder output dimensionality. Defaults to [30].
	DecoderMLPDimSeq []int `json:"decoderMlpDimSeq,omitempty"`
	// Quantiles are the levels optimized for and predicted by the model.
	// Defaults to the nine deciles 0.1 .. 0.9.
	Quantiles []float64 `json:"quantiles,omitempty"`

	// ChannelsSeq, DilationSeq and KernelSizeSeq describe one causal
	// convolution layer per triple. Only read by the MQ-CNN variant.
	ChannelsSeq   []int `json:"channelsSeq,omitempty"`
	DilationSeq   []int `json:"dilationSeq,omitempty"`
	KernelSizeSeq []int `json:"kernelSizeSeq,omitempty"`
	// UseResidual additionally passes the unaltered past target to the
	// decoder. Defaults to true for the MQ-CNN variant.
	UseResidual *bool `json:"useResidual,omitempty"`

	// Trainer is the handle to the external training orchestrator.
	// Defaults to trainer.New().
	Trainer *trainer.Trainer `json:"trainer,omitempty"`
	// Scaling scales the target values automatically. Defaults to false
	// for MQ-CNN and true for MQ-RNN.
	Scaling *bool `json:"scaling,omitempty"`
}

func (c Config) String() string {
	return fmt.Sprintf("{freq: %s, predictionLength: %d, contextLength: %d, quantiles: %v, decoderMlpDimSeq: %v}",
		c.Freq, c.PredictionLength, c.ContextLength, c.Quantiles, c.DecoderMLPDimSeq)
}

// normalized returns a copy with every omitted optional field resolved to
// its default for the given variant. Defaults are copied so that the
// package-level default slices stay immutable.
func (c Config) normalized(variant Variant) Config {
	if c.ContextLength == 0 {
		c.ContextLength = defaultContextMultiple * c.PredictionLength
	}
	if len(c.DecoderMLPDimSeq) == 0 {
		c.DecoderMLPDimSeq = copyInts(defaultDecoderMLPDimSeq)
	}
	if len(c.Quantiles) == 0 {
		c.Quantiles = copyFloats(defaultQuantiles)
	}
	if c.UseFeatStaticCat && len(c.EmbeddingDimension) == 0 {
		c.EmbeddingDimension = deriveEmbeddingDimensions(c.Cardinality)
	}
	if c.Trainer == nil {
		c.Trainer = trainer.New()
	}

	switch variant {
	case VariantMQCNN:
		if len(c.ChannelsSeq) == 0 {
			c.ChannelsSeq = copyInts(defaultChannelsSeq)
		}
		if len(c.DilationSeq) == 0 {
			c.DilationSeq = copyInts(defaultDilationSeq)
		}
		if len(c.KernelSizeSeq) == 0 {
			c.KernelSizeSeq = copyInts(defaultKernelSizeSeq)
		}
		if c.UseResidual == nil {
			c.UseResidual = boolP(true)
		}
		if c.Scaling == nil {
			c.Scaling = boolP(false)
		}
	case VariantMQRNN:
		// The recurrent encoder architecture is fixed; the convolution
		// hyperparameters stay untouched.
		if c.Scaling == nil {
			c.Scaling = boolP(true)
		}
	}

	return c
}

// validate checks the invariants of a normalized config. Every violation
// yields a ConfigurationError naming the field and the expected
// constraint.
func (c *Config) validate(variant Variant) error {
	if c.PredictionLength <= 0 {
		return configError("predictionLength", "must be greater than 0, got %d", c.PredictionLength)
	}
	if c.ContextLength < 0 {
		return configError("contextLength", "must not be negative, got %d", c.ContextLength)
	}
	for _, d := range c.DecoderMLPDimSeq {
		if d <= 0 {
			return configError("decoderMlpDimSeq", "elements must be greater than 0, got %d", d)
		}
	}
	for _, q := range c.Quantiles {
		if q < 0 || q > 1 {
			return configError("quantiles", "elements must be within [0, 1], got %v", q)
		}
	}
	if c.UseFeatStaticCat && len(c.Cardinality) == 0 {
		return configError("cardinality", "must be provided when static categorical features are enabled")
	}
	for _, card := range c.Cardinality {
		if card <= 0 {
			return configError("cardinality", "elements must be greater than 0, got %d", card)
		}
	}

	if variant == VariantMQCNN {
		if len(c.ChannelsSeq) != len(c.DilationSeq) || len(c.DilationSeq) != len(c.KernelSizeSeq) {
			return configError("channelsSeq", "mismatched CNN configurations: %d channels vs. %d dilations vs. %d kernel sizes",
				len(c.ChannelsSeq), len(c.DilationSeq), len(c.KernelSizeSeq))
		}
		for _, d := range c.ChannelsSeq {
			if d <= 0 {
				return configError("channelsSeq", "elements must be greater than 0, got %d", d)
			}
		}
		for _, d := range c.DilationSeq {
			if d <= 0 {
				return configError("dilationSeq", "elements must be greater than 0, got %d", d)
			}
		}
		for _, d := range c.KernelSizeSeq {
			if d <= 1 {
				return configError("kernelSizeSeq", "elements must be greater than 1, got %d", d)
			}
		}
	}

	if err := c.Trainer.Validate(); err != nil {
		return configError("trainer", "%v", err)
	}

	return nil
}

func deriveEmbeddingDimensions(cardinality []int) []int {
	dims := make([]int, 0, len(cardinality))
	for _, card := range cardinality {
		d := (card + 1) / 2
		if d > maxEmbeddingDimension {
			d = maxEmbeddingDimension
		}
		dims = append(dims, d)
	}
	return dims
}

func copyInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func copyFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func boolP(value bool) *bool {
	var b = value
	return &b
}
