package curlyarc

import (
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// sweep returns the angular extent in degrees, wrapped to be non-negative.
func (a *Arc) sweep() float64 {
	d := a.phiMax - a.phiMin
	if d < 0 {
		d += 360
	}
	return d
}

// scale returns logical units per pixel and the reference size of the
// attached surface, or unit values without one.
func (a *Arc) scale() (sx, sy, ref float64) {
	if a.surface == nil {
		return 1, 1, 1
	}
	sx, sy = a.surface.LogicalPerPixel()
	return sx, sy, a.surface.ReferenceSize()
}

// Length returns the logical length of the arc's centerline.
func (a *Arc) Length() float64 {
	return math.Pi * a.radius * a.sweep() / 180
}

// Build regenerates the polyline from the current geometry.
func (a *Arc) Build() {
	sx, sy, ref := a.scale()
	if sx == 0 {
		sx = 1
	}
	rPix := a.radius / sx
	phi0 := a.phiMin * math.Pi / 180

	local := a.waveBuilder().Build(a.Length()/sx, a.waveLength*ref, a.amplitude*ref, a.curly)

	ay := math.Abs(sy)
	pts := make([]vec.Vec2, len(local))
	for i, p := range local {
		angle := phi0
		if rPix != 0 {
			angle += p.X / rPix
		}
		r := p.Y + rPix
		pts[i] = vec.Vec2{
			X: a.center.X + r*math.Cos(angle)*sx,
			Y: a.center.Y + r*math.Sin(angle)*ay,
		}
	}
	a.points = pts
	a.built = true

	Logger().Debug("curlyarc: rebuilt",
		"center", a.center, "radius", a.radius, "points", len(pts))
	a.modified()
}

// Points returns the polyline in logical coordinates. The slice is owned by
// the arc and replaced on the next rebuild.
func (a *Arc) Points() []vec.Vec2 {
	if !a.built {
		a.Build()
	}
	return a.points
}

// PixelPoints returns the polyline mapped through the attached surface,
// or nil without one.
func (a *Arc) PixelPoints() []image.Point {
	if a.surface == nil {
		return nil
	}
	pts := a.Points()
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = a.surface.ToPixel(p)
	}
	return out
}

// Path returns the polyline as an open path in logical coordinates.
func (a *Arc) Path() *path.Data {
	pts := a.Points()
	p := &path.Data{}
	for i, v := range pts {
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p
}
