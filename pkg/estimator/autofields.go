package estimator

import (
	"k8s.io/klog/v2"

	"github.com/seqcast/seqcast/pkg/dataset"
)

// AutoFields are the configuration fields derivable from a training
// sample instead of being supplied by hand.
type AutoFields struct {
	UseFeatDynamicReal bool  `json:"useFeatDynamicReal"`
	UseFeatStaticCat   bool  `json:"useFeatStaticCat"`
	Cardinality        []int `json:"cardinality"`
}

// DeriveAutoFields computes AutoFields from the statistics of the given
// sample. The derivation is read-only; merging the result into a Config is
// left to the caller. An empty or malformed sample yields a descriptive
// error.
func DeriveAutoFields(ds dataset.Dataset) (AutoFields, error) {
	st, err := dataset.CalculateStatistics(ds)
	if err != nil {
		return AutoFields{}, err
	}

	af := AutoFields{
		UseFeatDynamicReal: st.NumFeatDynamicReal > 0,
		UseFeatStaticCat:   len(st.CardinalityPerStaticCat) > 0,
		Cardinality:        st.CardinalityPerStaticCat,
	}

	klog.InfoS("Derived estimator fields from dataset statistics.",
		"useFeatDynamicReal", af.UseFeatDynamicReal,
		"useFeatStaticCat", af.UseFeatStaticCat,
		"cardinality", af.Cardinality)

	return af, nil
}

// WithAutoFields returns a copy of the config with the derived fields
// merged in.
func (c Config) WithAutoFields(af AutoFields) Config {
	c.UseFeatDynamicReal = af.UseFeatDynamicReal
	c.UseFeatStaticCat = af.UseFeatStaticCat
	c.Cardinality = af.Cardinality
	return c
}
