package dataset

import (
	"fmt"
	"time"
)

// Entry is one time series of a training dataset.
type Entry struct {
	// ItemID identifies the series within the dataset.
	ItemID string `json:"itemId"`
	// Start is the timestamp of the first target value; subsequent values
	// follow at the dataset frequency.
	Start time.Time `json:"start"`
	// Target holds the observed values in chronological order.
	Target []float64 `json:"target"`
	// FeatDynamicReal holds one real-valued series per dynamic feature,
	// each aligned with Target.
	FeatDynamicReal [][]float64 `json:"featDynamicReal,omitempty"`
	// FeatStaticCat holds one integer code per static categorical
	// feature.
	FeatStaticCat []int `json:"featStaticCat,omitempty"`
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s: %d observations, %d dynamic real features, %d static categorical features",
		e.ItemID, len(e.Target), len(e.FeatDynamicReal), len(e.FeatStaticCat))
}

// Dataset is an in-memory collection of entries.
type Dataset []Entry
