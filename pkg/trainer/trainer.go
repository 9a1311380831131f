package trainer

import "fmt"

var defaultTrainer = Trainer{
	Epochs:             100,
	BatchSize:          32,
	NumBatchesPerEpoch: 50,
	LearningRate:       1e-3,
	ClipGradient:       10,
	WeightDecay:        1e-8,
}

// Trainer is the handle to the external training orchestrator. Only the
// hyperparameters live here; the loop, the optimizer and every numerical
// kernel are owned by the backend consuming the estimator bundle.
type Trainer struct {
	Epochs             int     `json:"epochs,omitempty"`
	BatchSize          int     `json:"batchSize,omitempty"`
	NumBatchesPerEpoch int     `json:"numBatchesPerEpoch,omitempty"`
	LearningRate       float64 `json:"learningRate,omitempty"`
	ClipGradient       float64 `json:"clipGradient,omitempty"`
	WeightDecay        float64 `json:"weightDecay,omitempty"`
}

// New returns a trainer with the default hyperparameters.
func New() *Trainer {
	t := defaultTrainer
	return &t
}

// Validate checks the trainer hyperparameters, resolving omitted fields to
// their defaults first.
func (t *Trainer) Validate() error {
	if t.Epochs == 0 {
		t.Epochs = defaultTrainer.Epochs
	}
	if t.BatchSize == 0 {
		t.BatchSize = defaultTrainer.BatchSize
	}
	if t.NumBatchesPerEpoch == 0 {
		t.NumBatchesPerEpoch = defaultTrainer.NumBatchesPerEpoch
	}
	if t.LearningRate == 0 {
		t.LearningRate = defaultTrainer.LearningRate
	}
	if t.ClipGradient == 0 {
		t.ClipGradient = defaultTrainer.ClipGradient
	}
	if t.WeightDecay == 0 {
		t.WeightDecay = defaultTrainer.WeightDecay
	}

	if t.Epochs < 0 {
		return fmt.Errorf("epochs must be greater than 0, got %d", t.Epochs)
	}
	if t.BatchSize < 0 {
		return fmt.Errorf("batchSize must be greater than 0, got %d", t.BatchSize)
	}
	if t.NumBatchesPerEpoch < 0 {
		return fmt.Errorf("numBatchesPerEpoch must be greater than 0, got %d", t.NumBatchesPerEpoch)
	}
	if t.LearningRate < 0 {
		return fmt.Errorf("learningRate must be greater than 0, got %v", t.LearningRate)
	}
	if t.ClipGradient < 0 {
		return fmt.Errorf("clipGradient must be greater than 0, got %v", t.ClipGradient)
	}
	if t.WeightDecay < 0 {
		return fmt.Errorf("weightDecay must not be negative, got %v", t.WeightDecay)
	}

	return nil
}

func (t *Trainer) String() string {
	return fmt.Sprintf("{epochs: %d, batchSize: %d, numBatchesPerEpoch: %d, learningRate: %v, clipGradient: %v, weightDecay: %v}",
		t.Epochs, t.BatchSize, t.NumBatchesPerEpoch, t.LearningRate, t.ClipGradient, t.WeightDecay)
}
