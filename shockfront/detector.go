package shockfront

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/gohelios/mesh"
	"github.com/notargets/gohelios/utils"
)

// DefaultThreshold is the density ratio a jump must exceed to count as a shock.
const DefaultThreshold = 1.1

// Detector finds the shock front of a density history.
type Detector struct {
	Threshold      float64
	ParallelDegree int // Used by DetectParallel, 0 selects the number of CPUs
}

// Option configures a Detector.
type Option func(d *Detector)

// WithThreshold sets the density ratio a jump must exceed.
func WithThreshold(threshold float64) Option {
	return func(d *Detector) { d.Threshold = threshold }
}

// WithParallelDegree sets the number of goroutines DetectParallel uses.
func WithParallelDegree(np int) Option {
	return func(d *Detector) { d.ParallelDegree = np }
}

// NewDetector applies opts over the defaults and rejects a non-positive threshold.
func NewDetector(opts ...Option) (d *Detector, err error) {
	d = &Detector{
		Threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	if math.IsNaN(d.Threshold) || d.Threshold <= 0 {
		err = fmt.Errorf("%w: got %v", ErrThreshold, d.Threshold)
		d = nil
	}
	return
}

// DetectShockFront runs a sequential detection with the given threshold.
func DetectShockFront(density utils.Matrix, edges mesh.RadiusEdges, timeEdges []float64,
	threshold float64) (tr Trajectory, err error) {
	var d *Detector
	if d, err = NewDetector(WithThreshold(threshold)); err != nil {
		return
	}
	return d.Detect(density, edges, timeEdges)
}

// Detect computes the shock trajectory of a (T, Z) density field.
func (d *Detector) Detect(density utils.Matrix, edges mesh.RadiusEdges, timeEdges []float64) (tr Trajectory, err error) {
	var (
		nt int
	)
	if nt, err = d.validate(density, edges, timeEdges); err != nil {
		return
	}
	tr = newTrajectory(nt, timeEdges)
	if err = d.detectRange(context.Background(), density, edges, &tr, 0, nt); err != nil {
		return Trajectory{}, err
	}
	tr.Radius[0] = 0
	return
}

// DetectParallel splits the timesteps into partitions and detects each one
// concurrently. The result is identical to Detect.
func (d *Detector) DetectParallel(ctx context.Context, density utils.Matrix, edges mesh.RadiusEdges,
	timeEdges []float64) (tr Trajectory, err error) {
	var (
		nt int
		np = d.ParallelDegree
	)
	if nt, err = d.validate(density, edges, timeEdges); err != nil {
		return
	}
	if np <= 0 {
		np = utils.DefaultParallelDegree(nt)
	}
	tr = newTrajectory(nt, timeEdges)
	pm := utils.NewPartitionMap(np, nt)
	g, gctx := errgroup.WithContext(ctx)
	for n := 0; n < pm.ParallelDegree; n++ {
		kMin, kMax := pm.GetBucketRange(n)
		if kMax == kMin {
			continue
		}
		g.Go(func() error {
			return d.detectRange(gctx, density, edges, &tr, kMin, kMax)
		})
	}
	if err = g.Wait(); err != nil {
		return Trajectory{}, err
	}
	tr.Radius[0] = 0
	return
}

func (d *Detector) validate(density utils.Matrix, edges mesh.RadiusEdges, timeEdges []float64) (nt int, err error) {
	var (
		nz int
	)
	if math.IsNaN(d.Threshold) || d.Threshold <= 0 {
		err = fmt.Errorf("%w: got %v", ErrThreshold, d.Threshold)
		return
	}
	if density.IsEmpty() {
		err = fmt.Errorf("%w: no density data", ErrDimension)
		return
	}
	nt, nz = density.Dims()
	switch {
	case nt < 1:
		err = fmt.Errorf("%w: density has no timesteps", ErrDimension)
	case nz < 2:
		err = fmt.Errorf("%w: density has %d zones per timestep, need at least 2", ErrDimension, nz)
	case len(timeEdges) != nt+1:
		err = fmt.Errorf("%w: %d time edges for %d timesteps, expected %d", ErrDimension, len(timeEdges), nt, nt+1)
	default:
		if verr := edges.Validate(nt, nz); verr != nil {
			err = fmt.Errorf("%w: %w", ErrDimension, verr)
		}
	}
	return
}

// detectRange fills timesteps [kMin, kMax) of tr. Each call writes a
// disjoint slice range, so partitions can run concurrently.
func (d *Detector) detectRange(ctx context.Context, density utils.Matrix, edges mesh.RadiusEdges,
	tr *Trajectory, kMin, kMax int) (err error) {
	var (
		st Step
	)
	for t := kMin; t < kMax; t++ {
		if err = ctx.Err(); err != nil {
			return
		}
		if st, err = Analyze(density.RowView(t), d.Threshold); err != nil {
			return
		}
		tr.Index[t] = st.Index
		tr.Fallback[t] = st.Fallback
		tr.Radius[t] = edges.Center(t, st.Index)
	}
	return
}
