package smoothing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohelios/utils"
)

func TestWindowLength(t *testing.T) {
	tests := []struct {
		requested, n, want int
	}{
		{11, 100, 11},
		{11, 11, 11},
		{11, 10, 9},
		{11, 6, 5},
		{11, 4, 3},
		{11, 3, 3},
		{11, 2, 3},
		{4, 100, 5},
		{1, 100, 3},
		{10, 10, 9},
		{12, 11, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WindowLength(tt.requested, tt.n), "requested %d, n %d", tt.requested, tt.n)
	}
}

func TestSavitzkyGolayCoefficients(t *testing.T) {
	// Classic 5 point quadratic filter: (-3, 12, 17, 12, -3) / 35
	y := make([]float64, 11)
	y[5] = 1
	ys, err := SavitzkyGolay(y, 5, 2)
	require.NoError(t, err)
	want := []float64{-3. / 35, 12. / 35, 17. / 35, 12. / 35, -3. / 35}
	for k := range want {
		assert.InDelta(t, want[k], ys[3+k], 1e-12)
	}
	assert.InDelta(t, 0., ys[0], 1e-12)
	assert.InDelta(t, 0., ys[10], 1e-12)
	// Input untouched
	assert.Equal(t, 1., y[5])
}

func TestSavitzkyGolayPolynomialsPreserved(t *testing.T) {
	var (
		n = 40
		y = make([]float64, n)
	)
	for i := range y {
		x := float64(i) / 10
		y[i] = 2 - x + 0.5*x*x - 0.1*x*x*x
	}
	ys, err := SavitzkyGolay(y, DefaultWindow, DefaultPolyOrder)
	require.NoError(t, err)
	require.Len(t, ys, n)
	for i := range y {
		assert.InDelta(t, y[i], ys[i], 1e-9, "sample %d", i)
	}

	c := []float64{3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5}
	cs, err := SavitzkyGolay(c, 11, 0)
	require.NoError(t, err)
	for i := range cs {
		assert.InDelta(t, 3.5, cs[i], 1e-12)
	}
}

func TestSavitzkyGolayEdgesAndClamping(t *testing.T) {
	y := []float64{1, 4, 2, 8, 5, 7, 3}
	// A fit of degree window-1 interpolates every window exactly
	ys, err := SavitzkyGolay(y, 5, 20)
	require.NoError(t, err)
	for i := range y {
		assert.InDelta(t, y[i], ys[i], 1e-9)
	}

	// Shortest accepted series
	ys, err = SavitzkyGolay([]float64{1, 2, 3}, 11, 3)
	require.NoError(t, err)
	for i, v := range []float64{1, 2, 3} {
		assert.InDelta(t, v, ys[i], 1e-9)
	}

	_, err = SavitzkyGolay([]float64{1, 2}, 11, 3)
	assert.True(t, errors.Is(err, ErrSeriesTooShort))
	_, err = SavitzkyGolay(nil, 11, 3)
	assert.True(t, errors.Is(err, ErrSeriesTooShort))
	_, err = SavitzkyGolay(y, 5, -1)
	assert.True(t, errors.Is(err, ErrPolyOrder))
}

func TestOperatorBand(t *testing.T) {
	op, err := Operator(20, 7, 2)
	require.NoError(t, err)
	nr, nc := op.Dims()
	assert.Equal(t, 20, nr)
	assert.Equal(t, 20, nc)
	assert.LessOrEqual(t, op.NNZ(), 20*7)
	// Every row reproduces constants
	for i := 0; i < nr; i++ {
		var sum float64
		for j := 0; j < nc; j++ {
			sum += op.At(i, j)
		}
		assert.InDelta(t, 1., sum, 1e-12)
	}
}

func TestMaxima(t *testing.T) {
	field := utils.NewMatrix(4, 3, []float64{
		1, 5, 2,
		7, 0, 3,
		-1, -4, -2,
		2, 2, 9,
	})
	assert.Equal(t, []float64{5, 7, -1, 9}, MaxPerTimestep(field))

	mx, err := MaxPressure(field, false, DefaultWindow, DefaultPolyOrder)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, -1, 9}, mx)

	// Four samples use a 3 point window, a quadratic through 3 points is exact
	md, err := MaxDensity(field, true, DefaultWindow, 2)
	require.NoError(t, err)
	for i, v := range []float64{5, 7, -1, 9} {
		assert.InDelta(t, v, md[i], 1e-9)
	}

	md, err = MaxDensity(field, true, DefaultWindow, 1)
	require.NoError(t, err)
	assert.Len(t, md, 4)
	assert.False(t, math.IsNaN(md[1]))
	// Interior point of a linear 3 point fit is the window mean
	assert.InDelta(t, (5.+7-1)/3, md[1], 1e-12)
}
