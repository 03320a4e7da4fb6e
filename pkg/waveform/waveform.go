// Package waveform builds the straight curly and wavy line patterns used for
// Feynman diagram propagators.
//
// A pattern is a polyline of offsets along the x axis from 0 to length. Wavy
// patterns (photons) oscillate in y only; curly patterns (gluons) also
// oscillate in x, producing loops. Every point stays inside
// [0, length] x [-amplitude, amplitude] and the polyline always starts at
// (0, 0) and ends at (length, 0).
package waveform

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// StepsPerPeriod is the number of polyline segments used for one wavelength.
const StepsPerPeriod = 40

// MaxPoints bounds the size of a waveform. Parameters that would need more
// points yield a plain line.
const MaxPoints = 1 << 20

// Builder produces straight waveforms.
type Builder interface {
	Build(length, waveLength, amplitude float64, curly bool) []vec.Vec2
}

// Standard is the default Builder.
type Standard struct{}

// Build implements Builder using the package-level Build.
func (Standard) Build(length, waveLength, amplitude float64, curly bool) []vec.Vec2 {
	return Build(length, waveLength, amplitude, curly)
}

// Build returns the waveform offsets for a straight segment of the given
// length. A segment too short to hold half a period, degenerate wave
// parameters, or a pattern of more than MaxPoints points yields a plain
// two-point line.
func Build(length, waveLength, amplitude float64, curly bool) []vec.Vec2 {
	straight := []vec.Vec2{{X: 0, Y: 0}, {X: length, Y: 0}}
	if length <= 0 || waveLength <= 0 || amplitude <= 0 {
		return straight
	}

	// curly loops overshoot by one amplitude on each side
	reserve := 0.0
	if curly {
		reserve = 2 * amplitude
	}
	halfPeriod := waveLength / 2
	n := math.Floor((length - reserve) / halfPeriod)
	if !(n >= 1) || n*StepsPerPeriod/2 > MaxPoints {
		return straight
	}
	halves := int(n)

	rest := 0.5 * (length - reserve - float64(halves)*halfPeriod)
	dx := waveLength / StepsPerPeriod
	dphi := 2 * math.Pi / StepsPerPeriod
	steps := halves * StepsPerPeriod / 2

	points := make([]vec.Vec2, 0, steps+3)
	points = append(points, vec.Vec2{X: 0, Y: 0})

	x0 := rest + reserve/2
	for i := 0; i <= steps; i++ {
		phase := float64(i) * dphi
		x := x0 + float64(i)*dx
		if curly {
			x -= amplitude * math.Cos(phase)
		}
		points = append(points, vec.Vec2{X: x, Y: amplitude * math.Sin(phase)})
	}

	points = append(points, vec.Vec2{X: length, Y: 0})
	return points
}

// Bounds returns the extent of a waveform.
func Bounds(points []vec.Vec2) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
