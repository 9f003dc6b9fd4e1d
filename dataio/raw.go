// Package dataio reads Helios style simulation output and turns it into a
// fixed-schema Dataset in display units.
//
// On disk a RawDataset holds CGS quantities (s, cm, cm/s) keyed by the
// Helios variable names. Two dimensional variables are stored one row per
// timestep.
package dataio

// RawDataset is the on-disk record. The json tags are shared by the YAML
// and msgpack codecs.
type RawDataset struct {
	Title                string      `json:"title,omitempty"`
	TimeWhole            []float64   `json:"time_whole"`                 // s, (T)
	ZoneBoundaries       [][]float64 `json:"zone_boundaries"`            // cm, (T, Z+1) or (T, Z)
	MassDensity          [][]float64 `json:"mass_density"`               // g/cc, (T, Z)
	ElecDensity          [][]float64 `json:"elec_density,omitempty"`     // 1/cc
	IonTemperature       [][]float64 `json:"ion_temperature,omitempty"`  // eV
	ElecTemperature      [][]float64 `json:"elec_temperature,omitempty"` // eV
	RadiationTemperature [][]float64 `json:"radiation_temperature,omitempty"`
	ZoneMass             [][]float64 `json:"zone_mass,omitempty"`     // g
	IonPressure          [][]float64 `json:"ion_pressure,omitempty"`  // J/cc
	ElecPressure         [][]float64 `json:"elec_pressure,omitempty"` // J/cc
	FluidVelocity        [][]float64 `json:"fluid_velocity,omitempty"` // cm/s, (T, Z) or (T, Z+1)
}

// Source produces raw datasets.
type Source interface {
	Name() string
	Load() (*RawDataset, error)
}
