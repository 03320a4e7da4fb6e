package curlyarc

import (
	"image"
	"math"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// Feedback shows a gesture in progress to the user.
type Feedback interface {
	// Begin is called when the gesture is armed.
	Begin(s *Session)
	// Step is called after each accepted drag step.
	Step(s *Session)
	// Commit ends the gesture and makes the working geometry permanent.
	Commit(s *Session)
	// Abort ends the gesture without changing the arc.
	Abort(s *Session)
}

// feedbackFor picks the feedback style requested by the surface.
func feedbackFor(surface host.Surface) Feedback {
	if surface.Opaque() {
		return &Live{}
	}
	return &RubberBand{}
}

// Outline parameters for rubber-band feedback.
const (
	outlineSegments = 10
	markerHalf      = 4
)

// RubberBand draws a transient outline with XOR semantics and only changes
// the arc on commit. Drawing a frame a second time erases it.
type RubberBand struct {
	frame [][2]image.Point
}

func (f *RubberBand) Begin(s *Session) {
	f.frame = outline(s.center, s.radius, s.arc.phiMin, s.arc.sweep())
	f.draw(s.arc.surface)
}

func (f *RubberBand) Step(s *Session) {
	f.draw(s.arc.surface)
	f.frame = outline(s.center, s.radius, s.arc.phiMin, s.arc.sweep())
	f.draw(s.arc.surface)
}

func (f *RubberBand) Commit(s *Session) {
	f.Abort(s)
	s.apply()
}

func (f *RubberBand) Abort(s *Session) {
	f.draw(s.arc.surface)
	f.frame = nil
}

func (f *RubberBand) draw(surface host.Surface) {
	for _, l := range f.frame {
		surface.DrawLine(l[0], l[1])
	}
}

// outline returns the segments of a rubber-band frame: one square marker
// per handle and a polygon along the arc, closed through the center unless
// the arc is a full circle.
func outline(c image.Point, r int, phiMin, sweep float64) [][2]image.Point {
	var lines [][2]image.Point

	for _, m := range []image.Point{
		{c.X, c.Y - r}, {c.X, c.Y + r}, {c.X - r, c.Y}, {c.X + r, c.Y},
	} {
		p0 := image.Pt(m.X-markerHalf, m.Y-markerHalf)
		p1 := image.Pt(m.X+markerHalf, m.Y-markerHalf)
		p2 := image.Pt(m.X+markerHalf, m.Y+markerHalf)
		p3 := image.Pt(m.X-markerHalf, m.Y+markerHalf)
		lines = append(lines, [2]image.Point{p0, p1}, [2]image.Point{p1, p2},
			[2]image.Point{p2, p3}, [2]image.Point{p3, p0})
	}

	full := sweep >= 360
	if full {
		sweep = 360
	}
	pts := make([]image.Point, outlineSegments+1)
	for i := range pts {
		phi := (phiMin + sweep*float64(i)/outlineSegments) * math.Pi / 180
		pts[i] = image.Pt(
			c.X+int(math.Round(float64(r)*math.Cos(phi))),
			c.Y-int(math.Round(float64(r)*math.Sin(phi))),
		)
	}
	for i := 1; i < len(pts); i++ {
		lines = append(lines, [2]image.Point{pts[i-1], pts[i]})
	}
	if !full {
		lines = append(lines, [2]image.Point{c, pts[0]}, [2]image.Point{pts[len(pts)-1], c})
	}
	return lines
}

// Live updates the arc on every drag step and asks the host for alignment
// guidelines.
type Live struct{}

func (Live) Begin(*Session) {}

func (Live) Step(s *Session) {
	s.apply()
	s.arc.surface.ShowGuidelines(s.arc, s.handle.guide())
}

func (Live) Commit(s *Session) {
	s.arc.surface.ShowGuidelines(nil, host.GuideHide)
	s.arc.Build()
}

func (Live) Abort(s *Session) {
	s.arc.surface.ShowGuidelines(nil, host.GuideHide)
	s.restore()
}
