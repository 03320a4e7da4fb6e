// Package arcfile reads, writes and renders scenes of curly arcs.
//
// A scene is a canvas (pixel size plus logical range) and a list of arcs.
// Scenes are stored as JSON, as macro scripts, or as .arcs bundles: a zip
// archive holding scene.json and scene.macro. SVG and PNG renderers are
// included.
package arcfile

import (
	"errors"
	"fmt"
	"math"

	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// Canvas describes the drawing area of a scene.
type Canvas struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
}

// DefaultCanvas returns an 800x600 canvas showing the unit square.
func DefaultCanvas() Canvas {
	return Canvas{Width: 800, Height: 600, X1: 0, Y1: 0, X2: 1, Y2: 1}
}

// Validate reports whether the canvas can map logical to pixel coordinates.
func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.X1 == c.X2 || c.Y1 == c.Y2 {
		return fmt.Errorf("canvas range [%g, %g] x [%g, %g] is empty", c.X1, c.X2, c.Y1, c.Y2)
	}
	for _, v := range []float64{c.X1, c.Y1, c.X2, c.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("canvas range must be finite")
		}
	}
	return nil
}

// Pad returns a display-free surface for the canvas.
func (c Canvas) Pad() *host.Pad {
	return host.NewPad(c.Width, c.Height, c.X1, c.Y1, c.X2, c.Y2)
}

// ArcSpec is the stored form of one arc.
type ArcSpec struct {
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Radius     float64           `json:"radius"`
	PhiMin     float64           `json:"phimin"`
	PhiMax     float64           `json:"phimax"`
	WaveLength float64           `json:"wave_length"`
	Amplitude  float64           `json:"amplitude"`
	Curly      bool              `json:"curly"`
	Line       curlyarc.LineAttr `json:"line"`
	Label      string            `json:"label,omitempty"`
}

// SpecOf captures the stored fields of a.
func SpecOf(a *curlyarc.Arc) ArcSpec {
	c := a.Center()
	return ArcSpec{
		X:          c.X,
		Y:          c.Y,
		Radius:     a.Radius(),
		PhiMin:     a.PhiMin(),
		PhiMax:     a.PhiMax(),
		WaveLength: a.WaveLength(),
		Amplitude:  a.Amplitude(),
		Curly:      a.IsCurly(),
		Line:       a.Line(),
	}
}

// Arc creates the arc described by s.
func (s ArcSpec) Arc(opts ...curlyarc.Option) *curlyarc.Arc {
	base := []curlyarc.Option{curlyarc.WithCurly(s.Curly), curlyarc.WithLine(s.Line)}
	return curlyarc.New(s.X, s.Y, s.Radius, s.PhiMin, s.PhiMax, s.WaveLength, s.Amplitude, append(base, opts...)...)
}

// Scene is a canvas with arcs.
type Scene struct {
	Name   string    `json:"name,omitempty"`
	Canvas Canvas    `json:"canvas"`
	Arcs   []ArcSpec `json:"arcs"`
}

// NewScene returns an empty scene.
func NewScene(name string, c Canvas) *Scene {
	return &Scene{Name: name, Canvas: c}
}

// Add appends a to the scene.
func (s *Scene) Add(a *curlyarc.Arc) {
	s.Arcs = append(s.Arcs, SpecOf(a))
}

// Build creates the scene's arcs attached to surface, which may be nil.
func (s *Scene) Build(surface host.Surface) []*curlyarc.Arc {
	arcs := make([]*curlyarc.Arc, len(s.Arcs))
	for i, spec := range s.Arcs {
		if surface != nil {
			arcs[i] = spec.Arc(curlyarc.WithSurface(surface))
		} else {
			arcs[i] = spec.Arc()
		}
	}
	return arcs
}

// Update replaces the stored arcs with the current state of arcs, keeping
// labels by position.
func (s *Scene) Update(arcs []*curlyarc.Arc) {
	specs := make([]ArcSpec, len(arcs))
	for i, a := range arcs {
		specs[i] = SpecOf(a)
		if i < len(s.Arcs) {
			specs[i].Label = s.Arcs[i].Label
		}
	}
	s.Arcs = specs
}

// Validate checks the canvas and every arc.
func (s *Scene) Validate() error {
	if err := s.Canvas.Validate(); err != nil {
		return err
	}
	for i, a := range s.Arcs {
		if a.Radius < 0 {
			return fmt.Errorf("arc %d: negative radius %g", i, a.Radius)
		}
		if a.WaveLength < 0 || a.Amplitude < 0 {
			return fmt.Errorf("arc %d: negative wave parameters", i)
		}
	}
	return nil
}
