package sod_shock_tube

import (
	"errors"
	"fmt"

	"github.com/notargets/gohelios/dataio"
	"github.com/notargets/gohelios/utils"
)

var ErrParameters = errors.New("sod_shock_tube: invalid source parameters")

// Source samples a Problem on a fixed mesh and serves it as a Helios style
// dataset, which gives the shock tracker a case with a known answer.
type Source struct {
	Problem     *Problem
	NT, NZ      int     // Timesteps and zones
	TEnd        float64 // Last output time, the first is t = 0
	TimeScale   float64 // Seconds per time unit
	LengthScale float64 // Centimeters per length unit
}

// NewSource scales one time unit to 1 ns and one length unit to 1 um, so the
// processed dataset reads in problem units.
func NewSource(problem *Problem, nt, nz int, tEnd float64) *Source {
	return &Source{
		Problem:     problem,
		NT:          nt,
		NZ:          nz,
		TEnd:        tEnd,
		TimeScale:   1.e-9,
		LengthScale: 1.e-4,
	}
}

func (s *Source) Name() string {
	return fmt.Sprintf("sod(nt=%d, nz=%d, tEnd=%g)", s.NT, s.NZ, s.TEnd)
}

// Times returns the output times in problem units.
func (s *Source) Times() (t []float64) {
	return utils.NewVector(s.NT).Linspace(0, s.TEnd).Data()
}

func (s *Source) Load() (raw *dataio.RawDataset, err error) {
	var (
		pr = s.Problem
	)
	if pr == nil || s.NT < 2 || s.NZ < 2 || s.TEnd <= 0 || s.TimeScale <= 0 || s.LengthScale <= 0 {
		err = fmt.Errorf("%w: %s", ErrParameters, s.Name())
		return
	}
	var (
		dx      = (pr.XMax - pr.XMin) / float64(s.NZ)
		edges   = utils.NewVector(s.NZ+1).Linspace(pr.XMin, pr.XMax).Data()
		centers = make([]float64, s.NZ)
		times   = s.Times()
		vScale  = s.LengthScale / s.TimeScale
	)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}
	raw = &dataio.RawDataset{
		Title:           pr.String(),
		TimeWhole:       make([]float64, s.NT),
		ZoneBoundaries:  make([][]float64, s.NT),
		MassDensity:     make([][]float64, s.NT),
		IonTemperature:  make([][]float64, s.NT),
		ElecTemperature: make([][]float64, s.NT),
		ZoneMass:        make([][]float64, s.NT),
		IonPressure:     make([][]float64, s.NT),
		ElecPressure:    make([][]float64, s.NT),
		FluidVelocity:   make([][]float64, s.NT),
	}
	for k, t := range times {
		rho, p, u := pr.Sample(t, centers)
		raw.TimeWhole[k] = t * s.TimeScale
		raw.ZoneBoundaries[k] = scaled(edges, s.LengthScale)
		raw.MassDensity[k] = rho
		raw.FluidVelocity[k] = scaled(u, vScale)
		temp := make([]float64, s.NZ)
		half := scaled(p, 0.5)
		mass := make([]float64, s.NZ)
		for i := range rho {
			temp[i] = p[i] / rho[i]
			mass[i] = rho[i] * dx * s.LengthScale
		}
		raw.IonTemperature[k], raw.ElecTemperature[k] = temp, temp
		raw.IonPressure[k], raw.ElecPressure[k] = half, half
		raw.ZoneMass[k] = mass
	}
	return
}

func scaled(x []float64, a float64) (y []float64) {
	return utils.NewVector(len(x), x).Copy().Scale(a).Data()
}
