package estimator

import (
	"k8s.io/klog/v2"
)

// NewMQCNN assembles the MQ-CNN forecaster: a hierarchical causal
// convolutional encoder plus a forking multi-quantile MLP decoder.
// The configuration is normalized and validated before any architecture
// object is built; a ConfigurationError means nothing was constructed.
func NewMQCNN(cfg Config) (*Estimator, error) {
	c := cfg.normalized(VariantMQCNN)
	if err := c.validate(VariantMQCNN); err != nil {
		return nil, err
	}

	e := &Estimator{
		Variant:        VariantMQCNN,
		Encoder:        newConv1DEncoder(&c),
		Decoder:        newForkingMLPDecoder(&c),
		QuantileOutput: newQuantileOutput(c.Quantiles),
		Config:         c,
	}
	klog.V(2).InfoS("Assembled MQ-CNN estimator.",
		"encoder", e.Encoder.String(), "decoder", e.Decoder.String(), "quantileOutput", e.QuantileOutput.String())

	return e, nil
}
