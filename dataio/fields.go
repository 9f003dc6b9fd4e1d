package dataio

import (
	"fmt"
	"strings"
)

// Field names one (T, Z) variable of a Dataset.
type Field uint8

const (
	FieldMassDensity Field = iota
	FieldElecDensity
	FieldIonTemperature
	FieldElecTemperature
	FieldRadTemperature
	FieldPressure
	FieldFluidVelocity
	FieldZoneMass
	FieldVolume
)

var fieldInfo = []struct {
	name, label string
}{
	{"density", "Density (g/cc)"},
	{"elecdensity", "Electron density (1/cc)"},
	{"iontemp", "Ion temperature (eV)"},
	{"eletemp", "Electron temperature (eV)"},
	{"radtemp", "Radiation temperature (eV)"},
	{"pressure", "Pressure (J/cc)"},
	{"fluidvel", "Fluid velocity (km/s)"},
	{"zonemass", "Zone mass (g)"},
	{"volume", "Volume (cc)"},
}

// Fields lists every field in declaration order.
func Fields() (ff []Field) {
	ff = make([]Field, len(fieldInfo))
	for i := range ff {
		ff[i] = Field(i)
	}
	return
}

func (f Field) String() string {
	if int(f) < len(fieldInfo) {
		return fieldInfo[f].name
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// Label is the axis label with units.
func (f Field) Label() string {
	if int(f) < len(fieldInfo) {
		return fieldInfo[f].label
	}
	return f.String()
}

func ParseField(name string) (f Field, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, fi := range fieldInfo {
		if fi.name == name {
			return Field(i), nil
		}
	}
	err = fmt.Errorf("%w: unknown field %q", ErrMissingVariable, name)
	return
}
