package estimator

import (
	"k8s.io/klog/v2"
)

// NewMQRNN assembles the MQ-RNN forecaster: a fixed bidirectional
// single-layer GRU encoder plus the same forking multi-quantile MLP
// decoder as the MQ-CNN variant. The convolution hyperparameters of the
// config are ignored.
func NewMQRNN(cfg Config) (*Estimator, error) {
	c := cfg.normalized(VariantMQRNN)
	if err := c.validate(VariantMQRNN); err != nil {
		return nil, err
	}

	e := &Estimator{
		Variant:        VariantMQRNN,
		Encoder:        newRNNEncoder(),
		Decoder:        newForkingMLPDecoder(&c),
		QuantileOutput: newQuantileOutput(c.Quantiles),
		Config:         c,
	}
	klog.V(2).InfoS("Assembled MQ-RNN estimator.",
		"encoder", e.Encoder.String(), "decoder", e.Decoder.String(), "quantileOutput", e.QuantileOutput.String())

	return e, nil
}
