package shockfront

import (
	"fmt"

	"github.com/notargets/gohelios/utils"
)

// Step is the outcome of the detection on one density row.
type Step struct {
	Index      int         // Selected zone
	Candidates utils.Index // Zones passing both the slope and jump tests
	Fallback   bool        // True when no candidate qualified
}

// Gradient returns the unit-spacing numerical gradient of x: central
// differences in the interior and first differences at both ends.
func Gradient(x []float64) (g []float64) {
	var (
		n = len(x)
	)
	g = make([]float64, n)
	if n < 2 {
		return
	}
	g[0] = x[1] - x[0]
	for i := 1; i < n-1; i++ {
		g[i] = (x[i+1] - x[i-1]) / 2
	}
	g[n-1] = x[n-1] - x[n-2]
	return
}

// Smooth3 is a width-3 moving average of the same length as x. Values past
// either end count as zero.
func Smooth3(x []float64) (s []float64) {
	var (
		n = len(x)
		k = 1. / 3.
	)
	s = make([]float64, n)
	for i := range x {
		var left, right float64
		if i > 0 {
			left = x[i-1]
		}
		if i < n-1 {
			right = x[i+1]
		}
		s[i] = k*left + k*x[i] + k*right
	}
	return
}

// DensityRatios returns s[i-1]/s[i+1] for interior zones. Zones at either
// end, and zones whose outer neighbour is not positive, get 0.
func DensityRatios(s []float64) (r []float64) {
	var (
		n = len(s)
	)
	r = make([]float64, n)
	for i := 1; i < n-1; i++ {
		if s[i+1] > 0 {
			r[i] = s[i-1] / s[i+1]
		}
	}
	return
}

// Candidates returns, in ascending order, the zones with a negative
// gradient and a jump ratio above threshold.
func Candidates(grad, ratio []float64, threshold float64) (I utils.Index) {
	var (
		g = utils.NewVector(len(grad), grad)
		r = utils.NewVector(len(ratio), ratio)
	)
	return g.Find(utils.Less, 0, false).Intersect(r.Find(utils.Greater, threshold, false))
}

// Analyze runs the detection on a single density row.
func Analyze(rho []float64, threshold float64) (st Step, err error) {
	var (
		n = len(rho)
	)
	if n < 2 {
		err = fmt.Errorf("%w: density row has %d zones, need at least 2", ErrDimension, n)
		return
	}
	var (
		grad  = Gradient(rho)
		ratio = DensityRatios(Smooth3(rho))
		idx   int
	)
	st.Candidates = Candidates(grad, ratio, threshold)
	if len(st.Candidates) > 0 {
		// Steepest drop wins, first one on equal slopes
		idx = st.Candidates[0]
		for _, i := range st.Candidates[1:] {
			if grad[i] < grad[idx] {
				idx = i
			}
		}
	} else {
		st.Fallback = true
		idx = utils.ArgMin(grad)
	}
	st.Index = clamp(idx, 0, n-1)
	return
}

// DetectIndex returns the zone index of the shock in a single density row.
func DetectIndex(rho []float64, threshold float64) (idx int, err error) {
	var st Step
	if st, err = Analyze(rho, threshold); err != nil {
		return
	}
	idx = st.Index
	return
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
