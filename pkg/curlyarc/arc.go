// Package curlyarc implements curly (gluon) and wavy (photon) arcs for
// Feynman diagrams.
//
// An Arc is defined by a center, a radius and an angular span in degrees,
// measured counterclockwise from phiMin to phiMax and wrapping through 360
// when phiMax < phiMin. The wave pattern is bent onto the arc and kept as a
// polyline in logical coordinates, rebuilt whenever the geometry changes.
//
// An Arc can be attached to a host.Surface, which supplies the pixel scale,
// receives redraw notifications and routes pointer events to the arc
// through ExecuteEvent.
package curlyarc

import (
	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
	"github.com/ha1tch/curlyarc-toolkit/pkg/waveform"
)

// LineAttr holds the line attributes of an arc.
type LineAttr struct {
	Color int `json:"color"`
	Style int `json:"style"`
	Width int `json:"width"`
}

// DefaultLine is the line used by new arcs: color 1 (black), solid, width 1.
var DefaultLine = LineAttr{Color: 1, Style: 1, Width: 1}

// Arc is a curly or wavy arc.
// The zero value is a degenerate wavy arc at the origin, built lazily.
type Arc struct {
	center     vec.Vec2
	radius     float64
	phiMin     float64
	phiMax     float64
	waveLength float64
	amplitude  float64
	curly      bool
	line       LineAttr

	surface host.Surface
	builder waveform.Builder

	points  []vec.Vec2
	built   bool
	session *Session
}

// Option configures an arc at construction.
type Option func(*Arc)

// WithSurface attaches the arc to a host surface.
func WithSurface(s host.Surface) Option {
	return func(a *Arc) { a.surface = s }
}

// WithBuilder replaces the waveform builder.
func WithBuilder(b waveform.Builder) Option {
	return func(a *Arc) { a.builder = b }
}

// WithCurly selects curly (true) or wavy (false) rendering.
func WithCurly(curly bool) Option {
	return func(a *Arc) { a.curly = curly }
}

// WithWaveLength overrides the wave length.
func WithWaveLength(v float64) Option {
	return func(a *Arc) { a.waveLength = v }
}

// WithAmplitude overrides the wave amplitude.
func WithAmplitude(v float64) Option {
	return func(a *Arc) { a.amplitude = v }
}

// WithLine sets the line attributes.
func WithLine(l LineAttr) Option {
	return func(a *Arc) { a.line = l }
}

// New creates an arc with center (x, y), the given radius and span in
// degrees. Wave length and amplitude are fractions of the host reference
// size. The arc is curly unless WithCurly(false) is given.
func New(x, y, radius, phiMin, phiMax, waveLength, amplitude float64, opts ...Option) *Arc {
	return newArc(x, y, radius, phiMin, phiMax, waveLength, amplitude, append([]Option{WithCurly(DefaultIsCurly)}, opts...))
}

func newArc(x, y, radius, phiMin, phiMax, waveLength, amplitude float64, opts []Option) *Arc {
	a := &Arc{
		center:     vec.Vec2{X: x, Y: y},
		radius:     radius,
		phiMin:     phiMin,
		phiMax:     phiMax,
		waveLength: waveLength,
		amplitude:  amplitude,
		line:       DefaultLine,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Build()
	return a
}

// Center returns the logical center.
func (a *Arc) Center() vec.Vec2 { return a.center }

// Radius returns the logical radius.
func (a *Arc) Radius() float64 { return a.radius }

// PhiMin returns the start angle in degrees.
func (a *Arc) PhiMin() float64 { return a.phiMin }

// PhiMax returns the end angle in degrees.
func (a *Arc) PhiMax() float64 { return a.phiMax }

// WaveLength returns the wave length.
func (a *Arc) WaveLength() float64 { return a.waveLength }

// Amplitude returns the wave amplitude.
func (a *Arc) Amplitude() float64 { return a.amplitude }

// IsCurly reports whether the arc is drawn curly rather than wavy.
func (a *Arc) IsCurly() bool { return a.curly }

// Line returns the line attributes.
func (a *Arc) Line() LineAttr { return a.line }

// Surface returns the attached host surface, or nil.
func (a *Arc) Surface() host.Surface { return a.surface }

// SetSurface attaches the arc to a surface (nil detaches) and rebuilds.
// Any gesture in progress is dropped.
func (a *Arc) SetSurface(s host.Surface) {
	a.surface = s
	a.session = nil
	a.Build()
}

// SetCenter sets the center.
func (a *Arc) SetCenter(x, y float64) {
	a.center = vec.Vec2{X: x, Y: y}
	a.Build()
}

// SetRadius sets the radius.
func (a *Arc) SetRadius(r float64) {
	a.radius = r
	a.Build()
}

// SetPhiMin sets the start angle in degrees.
func (a *Arc) SetPhiMin(phi float64) {
	a.phiMin = phi
	a.Build()
}

// SetPhiMax sets the end angle in degrees.
func (a *Arc) SetPhiMax(phi float64) {
	a.phiMax = phi
	a.Build()
}

// SetWaveLength sets the wave length.
func (a *Arc) SetWaveLength(v float64) {
	a.waveLength = v
	a.Build()
}

// SetAmplitude sets the wave amplitude.
func (a *Arc) SetAmplitude(v float64) {
	a.amplitude = v
	a.Build()
}

// SetCurly switches to curly (gluon) rendering.
func (a *Arc) SetCurly() {
	a.curly = true
	a.Build()
}

// SetWavy switches to wavy (photon) rendering.
func (a *Arc) SetWavy() {
	a.curly = false
	a.Build()
}

// SetLineColor sets the line color index.
func (a *Arc) SetLineColor(c int) {
	a.line.Color = c
	a.modified()
}

// SetLineStyle sets the line style index.
func (a *Arc) SetLineStyle(s int) {
	a.line.Style = s
	a.modified()
}

// SetLineWidth sets the line width.
func (a *Arc) SetLineWidth(w int) {
	a.line.Width = w
	a.modified()
}

func (a *Arc) modified() {
	if a.surface != nil {
		a.surface.Modified()
	}
}

func (a *Arc) waveBuilder() waveform.Builder {
	if a.builder == nil {
		return waveform.Standard{}
	}
	return a.builder
}
