package estimator

// Variant tags one of the two estimator architectures. Dispatch is by
// explicit tag; both variants run the same validate, build, bundle
// pipeline.
type Variant string

const (
	// VariantMQCNN selects the convolutional encoder.
	VariantMQCNN Variant = "mqcnn"
	// VariantMQRNN selects the recurrent encoder.
	VariantMQRNN Variant = "mqrnn"
)

// Estimator is the assembled configuration bundle handed to the external
// training orchestrator: the architecture blocks plus the full set of
// shared fields. Bundles are built once at construction time and never
// mutated afterwards.
type Estimator struct {
	Variant        Variant            `json:"variant"`
	Encoder        Encoder            `json:"encoder"`
	Decoder        *ForkingMLPDecoder `json:"decoder"`
	QuantileOutput *QuantileOutput    `json:"quantileOutput"`
	// Config is the normalized configuration, defaults resolved.
	Config Config `json:"config"`
}

// New builds an estimator of the given variant. Identical arguments yield
// architecturally identical bundles.
func New(variant Variant, cfg Config) (*Estimator, error) {
	switch variant {
	case VariantMQCNN:
		return NewMQCNN(cfg)
	case VariantMQRNN:
		return NewMQRNN(cfg)
	default:
		return nil, configError("variant", "unknown estimator variant %q, want %q or %q", variant, VariantMQCNN, VariantMQRNN)
	}
}
