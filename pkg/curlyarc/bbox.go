package curlyarc

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// aspect returns |yRange / xRange| of the attached surface. The vertical
// half-extent of the bounding box is radius * aspect.
func (a *Arc) aspect() float64 {
	r := a.surface.Range()
	w := math.Abs(r.URx - r.LLx)
	if w == 0 {
		return 0
	}
	return math.Abs(r.URy-r.LLy) / w
}

// BBox returns the pixel bounding box of the arc's full circle.
// It is the zero box when no surface is attached.
func (a *Arc) BBox() host.BBox {
	if a.surface == nil {
		return host.BBox{}
	}
	r2 := a.radius * a.aspect()
	x1 := a.surface.ToPixel(a.center.Sub(vecX(a.radius))).X
	x2 := a.surface.ToPixel(a.center.Add(vecX(a.radius))).X
	y1 := a.surface.ToPixel(a.center.Add(vecY(r2))).Y
	y2 := a.surface.ToPixel(a.center.Sub(vecY(r2))).Y
	return host.BBox{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// BBoxCenter returns the center in pixels.
func (a *Arc) BBoxCenter() image.Point {
	if a.surface == nil {
		return image.Point{}
	}
	return a.surface.ToPixel(a.center)
}

// SetBBoxCenter moves the center to the pixel p.
func (a *Arc) SetBBoxCenter(p image.Point) {
	if a.surface == nil {
		return
	}
	a.center = a.surface.ToLogical(p)
	a.Build()
}

// SetBBoxCenterX moves the center horizontally to pixel column x.
func (a *Arc) SetBBoxCenterX(x int) {
	if a.surface == nil {
		return
	}
	a.center.X = a.surface.ToLogical(image.Pt(x, 0)).X
	a.Build()
}

// SetBBoxCenterY moves the center vertically to pixel row y.
func (a *Arc) SetBBoxCenterY(y int) {
	if a.surface == nil {
		return
	}
	a.center.Y = a.surface.ToLogical(image.Pt(0, y)).Y
	a.Build()
}

// SetBBoxX1 moves the left edge to pixel column x, keeping the right edge.
func (a *Arc) SetBBoxX1(x int) {
	if a.surface == nil {
		return
	}
	x1 := a.surface.ToLogical(image.Pt(x, 0)).X
	right := a.center.X + a.radius
	if x1 > right {
		a.rejected("x1", x)
		return
	}
	a.radius = (right - x1) / 2
	a.center.X = x1 + a.radius
	a.Build()
}

// SetBBoxX2 moves the right edge to pixel column x, keeping the left edge.
func (a *Arc) SetBBoxX2(x int) {
	if a.surface == nil {
		return
	}
	x2 := a.surface.ToLogical(image.Pt(x, 0)).X
	left := a.center.X - a.radius
	if x2 < left {
		a.rejected("x2", x)
		return
	}
	a.radius = (x2 - left) / 2
	a.center.X = x2 - a.radius
	a.Build()
}

// SetBBoxY1 moves the top edge to pixel row y, keeping the bottom edge.
func (a *Arc) SetBBoxY1(y int) {
	if a.surface == nil {
		return
	}
	k := a.aspect()
	if k == 0 {
		return
	}
	y1 := a.surface.ToLogical(image.Pt(0, y)).Y
	bottom := a.center.Y - a.radius*k
	if y1 < bottom {
		a.rejected("y1", y)
		return
	}
	r2 := (y1 - bottom) / 2
	a.radius = r2 / k
	a.center.Y = y1 - r2
	a.Build()
}

// SetBBoxY2 moves the bottom edge to pixel row y, keeping the top edge.
func (a *Arc) SetBBoxY2(y int) {
	if a.surface == nil {
		return
	}
	k := a.aspect()
	if k == 0 {
		return
	}
	y2 := a.surface.ToLogical(image.Pt(0, y)).Y
	top := a.center.Y + a.radius*k
	if y2 > top {
		a.rejected("y2", y)
		return
	}
	r2 := (top - y2) / 2
	a.radius = r2 / k
	a.center.Y = y2 + r2
	a.Build()
}

func (a *Arc) rejected(edge string, v int) {
	Logger().Debug("curlyarc: edge would cross the opposite edge", "edge", edge, "pixel", v)
}

func vecX(v float64) vec.Vec2 { return vec.Vec2{X: v} }
func vecY(v float64) vec.Vec2 { return vec.Vec2{Y: v} }
