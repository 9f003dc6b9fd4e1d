package dataio

import (
	"fmt"

	"github.com/notargets/gohelios/mesh"
	"github.com/notargets/gohelios/utils"
)

// Dataset is the processed, read only view of a simulation in display
// units. Optional variables absent from the file are empty matrices.
type Dataset struct {
	Title            string
	TimeNS           []float64        // (T)
	TimeEdgesNS      []float64        // (T+1)
	ZoneRadiusUM     utils.Matrix     // Zone centers (T, Z)
	RadiusEdgesUM    mesh.RadiusEdges // (T, Z+1), TimeMajor
	MassDensity      utils.Matrix     // g/cc
	ElecDensity      utils.Matrix     // 1/cc
	IonTemperature   utils.Matrix     // eV
	ElecTemperature  utils.Matrix     // eV
	RadTemperature   utils.Matrix     // eV
	ZoneMass         utils.Matrix     // g
	Pressure         utils.Matrix     // Ion plus electron, J/cc
	FluidVelocityKMS utils.Matrix     // km/s
	Volume           utils.Matrix     // Zone mass over density, cc
}

const (
	secondsToNS   = 1e9
	cmToUM        = 1e4
	cmsPerKMS     = 1e5
	variableNames = "time_whole, zone_boundaries, mass_density"
)

// Dims returns (timesteps, zones).
func (ds *Dataset) Dims() (nt, nz int) {
	return ds.MassDensity.Dims()
}

// Field returns the requested variable, ErrMissingVariable if the source did
// not carry it.
func (ds *Dataset) Field(f Field) (M utils.Matrix, err error) {
	switch f {
	case FieldMassDensity:
		M = ds.MassDensity
	case FieldElecDensity:
		M = ds.ElecDensity
	case FieldIonTemperature:
		M = ds.IonTemperature
	case FieldElecTemperature:
		M = ds.ElecTemperature
	case FieldRadTemperature:
		M = ds.RadTemperature
	case FieldPressure:
		M = ds.Pressure
	case FieldFluidVelocity:
		M = ds.FluidVelocityKMS
	case FieldZoneMass:
		M = ds.ZoneMass
	case FieldVolume:
		M = ds.Volume
	}
	if M.IsEmpty() {
		err = fmt.Errorf("%w: %s", ErrMissingVariable, f)
	}
	return
}

// Load reads src and processes the result.
func Load(src Source) (ds *Dataset, err error) {
	var (
		raw *RawDataset
	)
	if src == nil {
		err = fmt.Errorf("%w: nil source", ErrMissingCollaborator)
		return
	}
	if raw, err = src.Load(); err != nil {
		return
	}
	return Process(raw)
}

// Process converts units and builds the time and radius edge arrays.
// zone_boundaries may hold Z+1 boundaries per timestep, used as the edges
// directly, or Z centers, from which edges are reconstructed along the zone
// axis.
func Process(raw *RawDataset) (ds *Dataset, err error) {
	var (
		nt, nz   int
		rho, zb  utils.Matrix
		ion, ele utils.Matrix
		vel      utils.Matrix
		edges    utils.Matrix
	)
	if raw == nil || len(raw.TimeWhole) == 0 || len(raw.MassDensity) == 0 || len(raw.ZoneBoundaries) == 0 {
		err = fmt.Errorf("%w: need %s", ErrMissingVariable, variableNames)
		return
	}
	nt = len(raw.TimeWhole)
	if utils.IsNan(raw.TimeWhole) {
		err = fmt.Errorf("%w: time_whole", ErrNonFinite)
		return
	}
	if rho, err = toMatrix("mass_density", raw.MassDensity, nt); err != nil {
		return
	}
	_, nz = rho.Dims()
	ds = &Dataset{
		Title:       raw.Title,
		TimeNS:      utils.NewVector(nt, raw.TimeWhole).Copy().Scale(secondsToNS).Data(),
		MassDensity: rho,
	}
	if ds.TimeEdgesNS, err = mesh.TimeEdges(ds.TimeNS); err != nil {
		return nil, fmt.Errorf("time_whole: %w", err)
	}

	if zb, err = toMatrix("zone_boundaries", raw.ZoneBoundaries, nt, nz, nz+1); err != nil {
		return nil, err
	}
	zb.Scale(cmToUM)
	if _, nc := zb.Dims(); nc == nz+1 {
		edges = zb
		if ds.ZoneRadiusUM, err = mesh.Centers(edges); err != nil {
			return nil, err
		}
	} else {
		ds.ZoneRadiusUM = zb
		if edges, err = mesh.CellEdges(zb); err != nil {
			return nil, fmt.Errorf("zone_boundaries: %w", err)
		}
	}
	if ds.RadiusEdgesUM, err = mesh.NewRadiusEdges(edges, mesh.TimeMajor); err != nil {
		return nil, err
	}

	optional := []struct {
		name string
		rows [][]float64
		dst  *utils.Matrix
	}{
		{"elec_density", raw.ElecDensity, &ds.ElecDensity},
		{"ion_temperature", raw.IonTemperature, &ds.IonTemperature},
		{"elec_temperature", raw.ElecTemperature, &ds.ElecTemperature},
		{"radiation_temperature", raw.RadiationTemperature, &ds.RadTemperature},
		{"zone_mass", raw.ZoneMass, &ds.ZoneMass},
		{"ion_pressure", raw.IonPressure, &ion},
		{"elec_pressure", raw.ElecPressure, &ele},
	}
	for _, v := range optional {
		if len(v.rows) == 0 {
			continue
		}
		if *v.dst, err = toMatrix(v.name, v.rows, nt, nz); err != nil {
			return nil, err
		}
	}

	switch {
	case !ion.IsEmpty() && !ele.IsEmpty():
		ds.Pressure = ion.Add(ele)
	case !ion.IsEmpty():
		ds.Pressure = ion
	case !ele.IsEmpty():
		ds.Pressure = ele
	}

	if len(raw.FluidVelocity) != 0 {
		if vel, err = toMatrix("fluid_velocity", raw.FluidVelocity, nt, nz, nz+1); err != nil {
			return nil, err
		}
		// Node velocities are averaged onto the zones
		if _, nc := vel.Dims(); nc == nz+1 {
			if vel, err = mesh.Centers(vel); err != nil {
				return nil, err
			}
		}
		ds.FluidVelocityKMS = vel.Apply(func(v float64) float64 { return v / cmsPerKMS })
	}

	if !ds.ZoneMass.IsEmpty() {
		ds.Volume = ds.ZoneMass.Copy().ElDiv(rho)
	}

	ds.setReadOnly()
	return
}

func (ds *Dataset) setReadOnly() {
	for _, m := range []*utils.Matrix{&ds.ZoneRadiusUM, &ds.RadiusEdgesUM.M, &ds.MassDensity,
		&ds.ElecDensity, &ds.IonTemperature, &ds.ElecTemperature, &ds.RadTemperature, &ds.ZoneMass,
		&ds.Pressure, &ds.FluidVelocityKMS, &ds.Volume} {
		if !m.IsEmpty() {
			m.SetReadOnly()
		}
	}
}

// toMatrix copies rows into a (nt, nc) matrix, nc must be one of ncols when
// given.
func toMatrix(name string, rows [][]float64, nt int, ncols ...int) (M utils.Matrix, err error) {
	var (
		nr, nc int
	)
	if M, err = utils.NewMatrixFromRows(rows); err != nil {
		return utils.Matrix{}, fmt.Errorf("%w: %s: %v", ErrShape, name, err)
	}
	nr, nc = M.Dims()
	if nr != nt {
		return utils.Matrix{}, fmt.Errorf("%w: %s has %d timesteps, time_whole has %d", ErrShape, name, nr, nt)
	}
	if len(ncols) != 0 {
		var ok bool
		for _, n := range ncols {
			ok = ok || nc == n
		}
		if !ok {
			return utils.Matrix{}, fmt.Errorf("%w: %s has %d columns, expected one of %v", ErrShape, name, nc, ncols)
		}
	}
	if utils.IsNan(M) {
		return utils.Matrix{}, fmt.Errorf("%w: %s", ErrNonFinite, name)
	}
	return
}
