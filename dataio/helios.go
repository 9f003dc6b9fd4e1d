package dataio

import (
	"fmt"
	"sync"

	"github.com/notargets/gohelios/shockfront"
)

// Renderer draws a named plot of a dataset and reports where it went.
type Renderer interface {
	Render(kind string, ds *Dataset) (path string, err error)
}

// Helios ties a data source to a renderer. The dataset is loaded and
// processed once, on first use.
type Helios struct {
	src      Source
	renderer Renderer
	once     sync.Once
	ds       *Dataset
	err      error
}

func NewHelios(src Source, r Renderer) (h *Helios, err error) {
	switch {
	case src == nil:
		err = fmt.Errorf("%w: data source", ErrMissingCollaborator)
	case r == nil:
		err = fmt.Errorf("%w: renderer", ErrMissingCollaborator)
	default:
		h = &Helios{src: src, renderer: r}
	}
	return
}

func (h *Helios) Name() string { return h.src.Name() }

func (h *Helios) LoadAndProcess() (*Dataset, error) {
	h.once.Do(func() {
		h.ds, h.err = Load(h.src)
	})
	return h.ds, h.err
}

// ShockTrajectory detects the shock front in the mass density, times in ns
// and radii in um.
func (h *Helios) ShockTrajectory(threshold float64) (tr shockfront.Trajectory, err error) {
	var (
		ds *Dataset
	)
	if ds, err = h.LoadAndProcess(); err != nil {
		return
	}
	return shockfront.DetectShockFront(ds.MassDensity, ds.RadiusEdgesUM, ds.TimeEdgesNS, threshold)
}

// Plot renders one plot kind with the configured renderer.
func (h *Helios) Plot(kind string) (path string, err error) {
	var (
		ds *Dataset
	)
	if ds, err = h.LoadAndProcess(); err != nil {
		return
	}
	return h.renderer.Render(kind, ds)
}
