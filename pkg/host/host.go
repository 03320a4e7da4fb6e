// Package host defines the canvas surface that interactive primitives are
// drawn on, plus Pad, a display-free implementation of it.
//
// Logical coordinates are plot coordinates with y growing upward. Pixel
// coordinates are device coordinates with y growing downward.
package host

import (
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Cursor identifies the pointer icon a primitive asks for.
type Cursor int

const (
	CursorPointer Cursor = iota
	CursorMove
	CursorTopSide
	CursorBottomSide
	CursorLeftSide
	CursorRightSide
)

var cursorNames = [...]string{"pointer", "move", "top", "bottom", "left", "right"}

func (c Cursor) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "unknown"
	}
	return cursorNames[c]
}

// BBox is an axis-aligned box in pixels. X, Y is the top-left corner.
type BBox struct {
	X, Y          int
	Width, Height int
}

// Rectangle converts the box to an image.Rectangle.
func (b BBox) Rectangle() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Boxed is implemented by anything that can report a pixel bounding box.
type Boxed interface {
	BBox() BBox
}

// Guideline tags passed to ShowGuidelines.
const (
	GuideHide   byte = 0
	GuideTop    byte = 't'
	GuideBottom byte = 'b'
	GuideLeft   byte = 'l'
	GuideRight  byte = 'r'
	GuideInside byte = 'i'
)

// Surface is the capability a primitive needs from its host canvas.
type Surface interface {
	// LogicalPerPixel returns logical units per pixel along X and Y.
	// The Y factor is negative when pixel rows grow downward.
	LogicalPerPixel() (sx, sy float64)
	// ReferenceSize is the largest pixel dimension of the drawing area.
	ReferenceSize() float64
	// Range is the logical extent of the drawing area.
	Range() rect.Rect

	ToPixel(p vec.Vec2) image.Point
	ToLogical(p image.Point) vec.Vec2

	DrawLine(a, b image.Point)
	SetCursor(c Cursor)
	Modified()

	// Opaque reports whether drags should update geometry live.
	Opaque() bool
	// ShowGuidelines displays alignment guides for shape while its edge
	// tagged tag is dragged. GuideHide removes them.
	ShowGuidelines(shape Boxed, tag byte)
}
