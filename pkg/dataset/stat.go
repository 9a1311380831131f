package dataset

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Statistics summarizes a dataset sample.
type Statistics struct {
	// NumSeries is the number of entries in the sample.
	NumSeries int `json:"numSeries"`
	// NumTimeObservations is the total number of target values.
	NumTimeObservations int `json:"numTimeObservations"`
	// MeanTargetLength is the mean number of target values per entry.
	MeanTargetLength float64 `json:"meanTargetLength"`
	MinTarget        float64 `json:"minTarget"`
	MeanTarget       float64 `json:"meanTarget"`
	MaxTarget        float64 `json:"maxTarget"`
	// NumFeatDynamicReal is the number of dynamic real features,
	// consistent across all entries.
	NumFeatDynamicReal int `json:"numFeatDynamicReal"`
	// CardinalityPerStaticCat is the distinct-value count of each static
	// categorical feature over the sample.
	CardinalityPerStaticCat []int `json:"cardinalityPerStaticCat"`
}

func (s *Statistics) String() string {
	return fmt.Sprintf("{numSeries: %d, numTimeObservations: %d, meanTargetLength: %.2f, target: [%v, %v], numFeatDynamicReal: %d, cardinalityPerStaticCat: %v}",
		s.NumSeries, s.NumTimeObservations, s.MeanTargetLength, s.MinTarget, s.MaxTarget, s.NumFeatDynamicReal, s.CardinalityPerStaticCat)
}

// CalculateStatistics computes the statistics of a training sample in one
// read-only pass. The sample must be non-empty and every entry must carry
// the same number of dynamic real and static categorical features; a
// violation is reported as an error rather than producing degenerate
// statistics.
func CalculateStatistics(ds Dataset) (*Statistics, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("cannot calculate statistics of an empty dataset")
	}

	numFeatDynamicReal := len(ds[0].FeatDynamicReal)
	numFeatStaticCat := len(ds[0].FeatStaticCat)

	distinct := make([]map[int]struct{}, numFeatStaticCat)
	for i := range distinct {
		distinct[i] = map[int]struct{}{}
	}

	var values []float64
	lengths := make([]float64, 0, len(ds))

	for i := range ds {
		e := &ds[i]
		if len(e.FeatDynamicReal) != numFeatDynamicReal {
			return nil, fmt.Errorf("entry %q has %d dynamic real features, want %d",
				e.ItemID, len(e.FeatDynamicReal), numFeatDynamicReal)
		}
		if len(e.FeatStaticCat) != numFeatStaticCat {
			return nil, fmt.Errorf("entry %q has %d static categorical features, want %d",
				e.ItemID, len(e.FeatStaticCat), numFeatStaticCat)
		}
		for j, f := range e.FeatDynamicReal {
			if len(f) != len(e.Target) {
				return nil, fmt.Errorf("dynamic real feature %d of entry %q has %d values, want %d",
					j, e.ItemID, len(f), len(e.Target))
			}
		}
		for j, v := range e.FeatStaticCat {
			distinct[j][v] = struct{}{}
		}
		values = append(values, e.Target...)
		lengths = append(lengths, float64(len(e.Target)))
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("dataset has no target observations")
	}

	meanLength, err := stats.Mean(lengths)
	if err != nil {
		return nil, err
	}
	minTarget, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	meanTarget, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	maxTarget, err := stats.Max(values)
	if err != nil {
		return nil, err
	}

	cardinality := make([]int, numFeatStaticCat)
	for j := range distinct {
		cardinality[j] = len(distinct[j])
	}

	return &Statistics{
		NumSeries:               len(ds),
		NumTimeObservations:     len(values),
		MeanTargetLength:        meanLength,
		MinTarget:               minTarget,
		MeanTarget:              meanTarget,
		MaxTarget:               maxTarget,
		NumFeatDynamicReal:      numFeatDynamicReal,
		CardinalityPerStaticCat: cardinality,
	}, nil
}
