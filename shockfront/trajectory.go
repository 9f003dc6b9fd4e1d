package shockfront

// Trajectory holds one shock radius per timestep. Time[t] is the left time
// edge of step t, so the last time edge has no partner.
type Trajectory struct {
	Time     []float64
	Radius   []float64
	Index    []int  // Detected zone per timestep, before the first-step override
	Fallback []bool // Timesteps where no candidate passed the jump test
}

func newTrajectory(nt int, timeEdges []float64) (tr Trajectory) {
	tr = Trajectory{
		Time:     make([]float64, nt),
		Radius:   make([]float64, nt),
		Index:    make([]int, nt),
		Fallback: make([]bool, nt),
	}
	copy(tr.Time, timeEdges[:nt])
	return
}

func (tr Trajectory) Len() int { return len(tr.Radius) }

// FallbackCount is the number of timesteps that used the gradient fallback.
func (tr Trajectory) FallbackCount() (n int) {
	for _, fb := range tr.Fallback {
		if fb {
			n++
		}
	}
	return
}

// Points returns (time, radius) pairs.
func (tr Trajectory) Points() (pts [][2]float64) {
	pts = make([][2]float64, tr.Len())
	for i := range pts {
		pts[i] = [2]float64{tr.Time[i], tr.Radius[i]}
	}
	return
}
