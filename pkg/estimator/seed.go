package estimator

import (
	"math/rand"
	"sync"

	"k8s.io/klog/v2"
)

// RandomSource is a downstream pseudo-random source, typically the tensor
// RNG of the training backend.
type RandomSource interface {
	Seed(seed int64)
}

var (
	sourcesMu sync.Mutex
	sources   []RandomSource
)

// RegisterRandomSource registers a downstream source to be seeded by
// SeedSources.
func RegisterRandomSource(s RandomSource) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	sources = append(sources, s)
}

// SeedSources seeds math/rand and every registered downstream source.
// Seeding mutates process-wide state: callers constructing seeded
// estimators concurrently must serialize externally. Constructors never
// call this implicitly; invoke it once before model parameters are
// initialized.
func SeedSources(seed int64) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	rand.Seed(seed)
	for _, s := range sources {
		s.Seed(seed)
	}
	klog.V(2).InfoS("Seeded pseudo-random sources.", "seed", seed, "numSources", len(sources))
}

// SeedSources seeds the pseudo-random sources from the estimator's
// configured seed. It reports whether a seed was configured.
func (e *Estimator) SeedSources() bool {
	if e.Config.Seed == nil {
		return false
	}
	SeedSources(*e.Config.Seed)
	return true
}
