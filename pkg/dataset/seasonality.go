package dataset

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/montanaflynn/stats"
)

// minAutoCorrelation is the weakest autocorrelation still accepted as
// evidence of seasonality.
const minAutoCorrelation = 0.3

// autoCorrelation computes the circular autocorrelation of the values via
// the Wiener-Khinchin relation: IFFT of the power spectrum of the
// standardized series.
func autoCorrelation(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}

	mean, _ := stats.Mean(values)
	std, _ := stats.StdDevP(values)
	if std == 0 {
		// A constant series carries no periodicity.
		return nil
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = (values[i] - mean) / std
	}

	f := fft.FFTReal(x)
	p := make([]float64, len(f))
	for i := range f {
		p[i] = math.Pow(cmplx.Abs(f[i]), 2)
	}
	pi := fft.IFFTReal(p)

	ac := make([]float64, len(pi))
	for i := range pi {
		ac[i] = real(pi[i]) / float64(n)
	}
	return ac
}

// DominantLag returns the lag, in time steps, of the strongest
// autocorrelation peak within [2, maxLag], or 0 when the series shows no
// usable periodicity.
func DominantLag(target []float64, maxLag int) int {
	if len(target) < 4 {
		return 0
	}
	if maxLag > len(target)/2 {
		maxLag = len(target) / 2
	}

	ac := autoCorrelation(target)
	if len(ac) == 0 {
		return 0
	}

	best, bestLag := minAutoCorrelation, 0
	for k := 2; k <= maxLag && k+1 < len(ac); k++ {
		// Only local peaks of the ACF count as periodicity hints.
		if ac[k] >= ac[k-1] && ac[k] >= ac[k+1] && ac[k] > best {
			best = ac[k]
			bestLag = k
		}
	}
	return bestLag
}

// SuggestContextLength proposes a context length for the series: one full
// seasonal cycle when the series is periodic and the cycle covers at least
// the horizon, otherwise four times the prediction length.
func SuggestContextLength(target []float64, predictionLength int) int {
	if lag := DominantLag(target, len(target)/2); lag >= predictionLength {
		return lag
	}
	return 4 * predictionLength
}
