package shockfront

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohelios/utils"
)

func TestGradient(t *testing.T) {
	assert.Equal(t, []float64{1, 1.5, 2.5, 3}, Gradient([]float64{1, 2, 4, 7}))
	assert.Equal(t, []float64{-1, -1}, Gradient([]float64{2, 1}))
	assert.Equal(t, []float64{0}, Gradient([]float64{5}))
}

func TestSmooth3(t *testing.T) {
	s := Smooth3([]float64{3, 3, 3, 3})
	require.Len(t, s, 4)
	// Zero padding pulls the ends down
	assert.True(t, isNear([]float64{2, 3, 3, 2}, s, 1.e-12))
}

func TestDensityRatios(t *testing.T) {
	r := DensityRatios([]float64{4, 3, 2, 1})
	assert.Equal(t, []float64{0, 2, 3, 0}, r)
	// Non-positive neighbours give a neutral ratio instead of an error
	r = DensityRatios([]float64{4, 3, 0, -1, 2})
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, r)
	assert.False(t, utils.IsNan(r))
}

func TestAnalyzeScenario(t *testing.T) {
	// Density falling across the jump between zones 2 and 3
	st, err := Analyze([]float64{3.0, 3.1, 3.0, 1.05, 1.0, 1.0}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, utils.Index{2, 3, 4}, st.Candidates)
	assert.Equal(t, 2, st.Index)
	assert.False(t, st.Fallback)

	// Rising density has no compressive candidate, the steepest drop is the
	// one-sided slope at the last zone
	st, err = Analyze([]float64{1.0, 1.0, 1.05, 3.0, 3.1, 3.0}, DefaultThreshold)
	require.NoError(t, err)
	assert.Empty(t, st.Candidates)
	assert.True(t, st.Fallback)
	assert.Equal(t, 5, st.Index)
}

func TestAnalyzeFallback(t *testing.T) {
	// Monotonically increasing, no negative slope anywhere
	for _, row := range [][]float64{
		{1, 2, 3, 4, 5},
		{1, 1.5},
		{0, 0, 0},
		{-2, -1, 0, 1},
	} {
		st, err := Analyze(row, DefaultThreshold)
		require.NoError(t, err)
		assert.True(t, st.Fallback)
		assert.GreaterOrEqual(t, st.Index, 0)
		assert.LessOrEqual(t, st.Index, len(row)-1)
	}
	idx, err := DetectIndex([]float64{1, 2, 3, 4, 5}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	// Two zones falling: the first of the equal slopes
	idx, err = DetectIndex([]float64{2, 1}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = DetectIndex([]float64{1}, DefaultThreshold)
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestCandidatesTieBreak(t *testing.T) {
	// Two identical jumps, the first one is kept
	row := []float64{4, 4, 4, 1, 1, 1, 4, 4, 4, 1, 1, 1}
	st, err := Analyze(row, DefaultThreshold)
	require.NoError(t, err)
	require.NotEmpty(t, st.Candidates)
	grad := Gradient(row)
	for _, i := range st.Candidates {
		assert.GreaterOrEqual(t, grad[i], grad[st.Index])
	}
	assert.Equal(t, 2, st.Index)
}

func TestThresholdMonotonicity(t *testing.T) {
	var (
		rng        = rand.New(rand.NewSource(7))
		thresholds = []float64{1.0001, 1.05, 1.1, 1.5, 2, 3, 10}
	)
	for trial := 0; trial < 200; trial++ {
		nz := 3 + rng.Intn(40)
		row := make([]float64, nz)
		for i := range row {
			row[i] = 0.1 + 5*rng.Float64()
		}
		grad := Gradient(row)
		ratio := DensityRatios(Smooth3(row))
		prev := Candidates(grad, ratio, thresholds[0])
		for _, th := range thresholds[1:] {
			cur := Candidates(grad, ratio, th)
			assert.LessOrEqual(t, len(cur), len(prev))
			assert.Equal(t, cur, prev.Intersect(cur), "threshold %v candidates %v not within %v", th, cur, prev)
			prev = cur
		}
	}
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}

func nanValue() float64 { return math.NaN() }
