package smoothing

import "github.com/notargets/gohelios/utils"

// MaxPerTimestep returns the maximum of each row of a (T, Z) field.
func MaxPerTimestep(field utils.Matrix) (mx []float64) {
	return field.RowMax().Data()
}

func smoothedMax(field utils.Matrix, smooth bool, window, polyorder int) (mx []float64, err error) {
	mx = MaxPerTimestep(field)
	if !smooth {
		return
	}
	return SavitzkyGolay(mx, window, polyorder)
}

// MaxPressure is the per-timestep peak pressure, optionally smoothed.
func MaxPressure(pressure utils.Matrix, smooth bool, window, polyorder int) ([]float64, error) {
	return smoothedMax(pressure, smooth, window, polyorder)
}

// MaxDensity is the per-timestep peak mass density, optionally smoothed.
func MaxDensity(density utils.Matrix, smooth bool, window, polyorder int) ([]float64, error) {
	return smoothedMax(density, smooth, window, polyorder)
}
