// Package smoothing computes per-timestep maxima of a field and smooths them
// with a Savitzky-Golay filter. It is a display aid and never feeds the
// shock detector.
package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gohelios/utils"
)

const (
	DefaultWindow    = 11
	DefaultPolyOrder = 3
)

// WindowLength adjusts a requested window to a series of n samples: it is
// capped at the largest odd length not exceeding n, raised to at least 3
// and bumped to the next odd value if even.
func WindowLength(requested, n int) (wl int) {
	var (
		limit = n
	)
	if n%2 == 0 {
		limit = n - 1
	}
	wl = requested
	if limit < wl {
		wl = limit
	}
	if wl < 3 {
		wl = 3
	}
	if wl%2 == 0 {
		wl++
	}
	return
}

// projection returns the (wl x wl) least squares hat matrix of a degree
// polyorder fit over wl equispaced points. Row k evaluates the fitted
// polynomial at point k.
func projection(wl, polyorder int) (H *mat.Dense, err error) {
	var (
		half = wl / 2
		np   = polyorder + 1
		V    = mat.NewDense(wl, np, nil)
		I    = mat.NewDense(wl, wl, nil)
		C    mat.Dense
	)
	for k := 0; k < wl; k++ {
		x := float64(k - half)
		for j := 0; j < np; j++ {
			V.Set(k, j, utils.POW(x, j))
		}
		I.Set(k, k, 1)
	}
	// Least squares solve of V*C = I gives the pseudo inverse of V
	if err = C.Solve(V, I); err != nil {
		return
	}
	H = mat.NewDense(wl, wl, nil)
	H.Mul(V, &C)
	return
}

// Operator assembles the n x n banded smoothing matrix. Interior rows hold
// the centered filter coefficients. The first and last wl/2 rows evaluate a
// polynomial fitted to the first and last window, matching the "interp" edge
// mode of the usual Savitzky-Golay implementations.
func Operator(n, window, polyorder int) (op utils.CSR, err error) {
	var (
		wl   int
		half int
		H    *mat.Dense
	)
	if n < 3 {
		err = fmt.Errorf("%w: %d samples", ErrSeriesTooShort, n)
		return
	}
	if polyorder < 0 {
		err = fmt.Errorf("%w: %d", ErrPolyOrder, polyorder)
		return
	}
	wl = WindowLength(window, n)
	half = wl / 2
	if polyorder >= wl {
		polyorder = wl - 1
	}
	if H, err = projection(wl, polyorder); err != nil {
		return
	}
	dok := utils.NewDOK(n, n)
	for i := 0; i < n; i++ {
		switch {
		case i < half:
			dok.SetRowBand(i, 0, H.RawRowView(i))
		case i >= n-half:
			dok.SetRowBand(i, n-wl, H.RawRowView(i-(n-wl)))
		default:
			dok.SetRowBand(i, i-half, H.RawRowView(half))
		}
	}
	dok.SetReadOnly("savgol")
	op = dok.ToCSR()
	return
}

// SavitzkyGolay returns y smoothed with a window of (adjusted) length window
// and a fit of degree polyorder. y is not modified.
func SavitzkyGolay(y []float64, window, polyorder int) (ys []float64, err error) {
	var (
		op utils.CSR
	)
	if op, err = Operator(len(y), window, polyorder); err != nil {
		return
	}
	ys = op.MulVec(y)
	return
}
