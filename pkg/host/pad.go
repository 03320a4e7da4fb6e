package host

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a line recorded by a Pad.
type Segment struct {
	A, B image.Point
}

// Pad is a Surface with no display. It maps a logical range onto a
// Width x Height pixel area and records every drawing request, which makes
// it suitable for rasterising through other renderers and for tests.
type Pad struct {
	Width, Height int
	// OpaqueMoves selects live geometry updates while dragging.
	OpaqueMoves bool

	frame rect.Rect
	ctm   matrix.Matrix // logical to pixel

	Lines      []Segment
	Cursor     Cursor
	Revision   int // incremented by Modified
	GuideTag   byte
	GuideBox   BBox
	GuideCalls int
}

// NewPad creates a pad of the given pixel size showing the logical range
// [x1, x2] x [y1, y2].
func NewPad(width, height int, x1, y1, x2, y2 float64) *Pad {
	p := &Pad{Width: width, Height: height}
	p.SetRange(x1, y1, x2, y2)
	return p
}

// SetRange changes the logical range shown by the pad.
func (p *Pad) SetRange(x1, y1, x2, y2 float64) {
	p.frame = rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}

	kx := float64(p.Width) / (x2 - x1)
	ky := float64(p.Height) / (y2 - y1)
	p.ctm = matrix.Matrix{kx, 0, 0, -ky, -x1 * kx, y2 * ky}
}

// Range implements Surface.
func (p *Pad) Range() rect.Rect {
	return p.frame
}

// Matrix returns the logical to pixel transform.
func (p *Pad) Matrix() matrix.Matrix {
	return p.ctm
}

// LogicalPerPixel implements Surface.
func (p *Pad) LogicalPerPixel() (sx, sy float64) {
	return 1 / p.ctm[0], 1 / p.ctm[3]
}

// ReferenceSize implements Surface.
func (p *Pad) ReferenceSize() float64 {
	return math.Max(float64(p.Width), float64(p.Height))
}

// ToPixelF maps a logical point to fractional pixel coordinates.
func (p *Pad) ToPixelF(v vec.Vec2) vec.Vec2 {
	m := p.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// ToPixel implements Surface. Coordinates are rounded to the nearest pixel.
func (p *Pad) ToPixel(v vec.Vec2) image.Point {
	f := p.ToPixelF(v)
	return image.Pt(int(math.Round(f.X)), int(math.Round(f.Y)))
}

// ToLogical implements Surface.
func (p *Pad) ToLogical(px image.Point) vec.Vec2 {
	m := p.ctm
	return vec.Vec2{
		X: (float64(px.X) - m[4]) / m[0],
		Y: (float64(px.Y) - m[5]) / m[3],
	}
}

// DrawLine implements Surface by recording the segment.
func (p *Pad) DrawLine(a, b image.Point) {
	p.Lines = append(p.Lines, Segment{A: a, B: b})
}

// SetCursor implements Surface.
func (p *Pad) SetCursor(c Cursor) {
	p.Cursor = c
}

// Modified implements Surface.
func (p *Pad) Modified() {
	p.Revision++
}

// Opaque implements Surface.
func (p *Pad) Opaque() bool {
	return p.OpaqueMoves
}

// ShowGuidelines implements Surface by recording the request.
func (p *Pad) ShowGuidelines(shape Boxed, tag byte) {
	p.GuideCalls++
	p.GuideTag = tag
	if tag == GuideHide || shape == nil {
		p.GuideBox = BBox{}
		return
	}
	p.GuideBox = shape.BBox()
}

// Overlay returns the segments that remain visible when the recorded lines
// are combined with XOR semantics: drawing a segment twice erases it.
func (p *Pad) Overlay() []Segment {
	count := make(map[Segment]int)
	var order []Segment
	for _, s := range p.Lines {
		if s.B.X < s.A.X || (s.B.X == s.A.X && s.B.Y < s.A.Y) {
			s.A, s.B = s.B, s.A
		}
		if count[s] == 0 {
			order = append(order, s)
		}
		count[s]++
	}

	var visible []Segment
	for _, s := range order {
		if count[s]%2 == 1 {
			visible = append(visible, s)
		}
	}
	return visible
}

// ClearLines forgets the recorded lines.
func (p *Pad) ClearLines() {
	p.Lines = p.Lines[:0]
}
