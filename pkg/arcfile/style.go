package arcfile

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// palette maps the low color indices to colors. Unknown indices draw black.
var palette = []color.RGBA{
	{255, 255, 255, 255}, // 0 white
	{0, 0, 0, 255},       // 1 black
	{255, 0, 0, 255},     // 2 red
	{0, 204, 0, 255},     // 3 green
	{0, 0, 255, 255},     // 4 blue
	{255, 255, 0, 255},   // 5 yellow
	{255, 0, 255, 255},   // 6 magenta
	{0, 255, 255, 255},   // 7 cyan
	{89, 211, 84, 255},   // 8
	{89, 84, 216, 255},   // 9
}

// LineColor returns the color for a color index.
func LineColor(index int) color.RGBA {
	if index < 0 || index >= len(palette) {
		return palette[1]
	}
	return palette[index]
}

// dashPattern returns on/off lengths, in units of the line width, for a
// line style. Solid lines return nil.
func dashPattern(style int) []float64 {
	switch style {
	case 2:
		return []float64{6, 4}
	case 3:
		return []float64{1, 3}
	case 4:
		return []float64{6, 3, 1, 3}
	}
	return nil
}

// dash splits a polyline into the visible pieces of a dash pattern with
// lengths scaled by unit.
func dash(pts []vec.Vec2, pattern []float64, unit float64) [][]vec.Vec2 {
	if len(pattern) == 0 || unit <= 0 || len(pts) < 2 {
		return [][]vec.Vec2{pts}
	}

	var out [][]vec.Vec2
	idx := 0
	left := pattern[0] * unit
	on := true
	cur := []vec.Vec2{pts[0]}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a)
		segLen := seg.Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			p := a.Add(seg.Mul(pos / segLen))
			if on {
				cur = append(cur, p)
				out = append(out, cur)
			}
			cur = []vec.Vec2{p}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx] * unit
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		} else {
			cur = []vec.Vec2{b}
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// lineWidth returns the stroke width in pixels for a width attribute.
func lineWidth(w int) float64 {
	return math.Max(1, float64(w))
}
