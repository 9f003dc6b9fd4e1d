package utils

import (
	"math"
)

// Find returns the indices of entries satisfying op against target.
func (v Vector) Find(op EvalOp, target float64, abs bool) (I Index) {
	var (
		vD = v.Data()
	)
	I = make(Index, 0)
	for i, val := range vD {
		if abs {
			val = math.Abs(val)
		}
		if op.Eval(val, target) {
			I = append(I, i)
		}
	}
	return
}
