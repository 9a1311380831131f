package estimator

import "fmt"

// QuantileOutput is the head producing one predicted value per configured
// quantile level per forecast step. The training backend uses it both for
// the quantile loss and for the prediction path at inference time. The
// levels are range-checked during config validation; no further validation
// happens here.
type QuantileOutput struct {
	Quantiles []float64 `json:"quantiles"`
}

func newQuantileOutput(quantiles []float64) *QuantileOutput {
	return &QuantileOutput{Quantiles: quantiles}
}

// NumOutputs returns the number of values predicted per forecast step.
func (q *QuantileOutput) NumOutputs() int {
	return len(q.Quantiles)
}

func (q *QuantileOutput) String() string {
	return fmt.Sprintf("Quantile Output {quantiles: %v}", q.Quantiles)
}
