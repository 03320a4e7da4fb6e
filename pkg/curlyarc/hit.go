package curlyarc

import (
	"math"
)

// NotNear is returned by DistanceToPrimitive when the point cannot be
// near the arc.
const NotNear = 9999

// DistanceToPrimitive returns the distance in pixels from the pixel
// (px, py) to the arc's centerline circle, or NotNear when no surface is
// attached or the point lies outside the arc's angular span.
func (a *Arc) DistanceToPrimitive(px, py int) int {
	if a.surface == nil {
		return NotNear
	}
	sx, _ := a.surface.LogicalPerPixel()
	if sx == 0 {
		return NotNear
	}

	c := a.surface.ToPixel(a.center)
	dx := float64(px - c.X)
	dy := float64(c.Y - py)

	if !a.inSpan(math.Atan2(dy, dx) * 180 / math.Pi) {
		return NotNear
	}

	dist := math.Hypot(dx, dy)
	r := math.Abs(a.radius / sx)
	return int(math.Abs(dist - r))
}

// inSpan reports whether the direction phi, in degrees, falls within the
// arc's sweep.
func (a *Arc) inSpan(phi float64) bool {
	rel := math.Mod(phi-a.phiMin, 360)
	if rel < 0 {
		rel += 360
	}
	sweep := a.sweep()
	if sweep >= 360 {
		return true
	}
	return rel <= sweep
}
