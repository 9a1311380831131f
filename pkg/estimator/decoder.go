package estimator

import "fmt"

// ForkingMLPDecoder maps the latent representation of every encoder step
// to a full forecast horizon through a multi-layer perceptron, forking one
// decoding path per step. It is shared unmodified between the MQ-CNN and
// MQ-RNN estimators.
type ForkingMLPDecoder struct {
	// DecoderLength is the forecast horizon in time steps.
	DecoderLength int `json:"decoderLength"`
	// FinalDim is the output dimensionality of the decoder.
	FinalDim int `json:"finalDim"`
	// HiddenDimensionSeq lists the intermediate MLP widths, possibly
	// empty.
	HiddenDimensionSeq []int `json:"hiddenDimensionSeq"`
}

func newForkingMLPDecoder(c *Config) *ForkingMLPDecoder {
	n := len(c.DecoderMLPDimSeq)
	return &ForkingMLPDecoder{
		DecoderLength:      c.PredictionLength,
		FinalDim:           c.DecoderMLPDimSeq[n-1],
		HiddenDimensionSeq: c.DecoderMLPDimSeq[:n-1],
	}
}

func (d *ForkingMLPDecoder) String() string {
	return fmt.Sprintf("Forking MLP Decoder {decoderLength: %d, finalDim: %d, hiddenDimensions: %v}",
		d.DecoderLength, d.FinalDim, d.HiddenDimensionSeq)
}
