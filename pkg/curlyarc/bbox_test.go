package curlyarc

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

type geometry struct {
	X, Y, R float64
}

func geom(a *Arc) geometry {
	return geometry{X: a.Center().X, Y: a.Center().Y, R: a.Radius()}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// widePad shows 2 x 1 logical units on 1000 x 500 pixels.
func widePad() *host.Pad {
	return host.NewPad(1000, 500, 0, 0, 2, 1)
}

func TestBBox(t *testing.T) {
	a := New(1, 0.5, 0.5, 0, 360, 0.02, 0.01, WithSurface(widePad()))

	want := host.BBox{X: 250, Y: 125, Width: 500, Height: 250}
	if diff := cmp.Diff(want, a.BBox()); diff != "" {
		t.Errorf("BBox mismatch (-want +got):\n%s", diff)
	}
	if got := a.BBoxCenter(); got != image.Pt(500, 250) {
		t.Errorf("BBoxCenter: got %v", got)
	}

	detached := New(1, 0.5, 0.5, 0, 360, 0.02, 0.01)
	if detached.BBox() != (host.BBox{}) {
		t.Error("detached arc should have a zero box")
	}
}

func TestBBoxRoundTrip(t *testing.T) {
	a := New(1, 0.5, 0.5, 0, 180, 0.02, 0.01, WithSurface(widePad()))
	before := geom(a)

	b := a.BBox()
	a.SetBBoxX1(b.X)
	a.SetBBoxX2(b.X + b.Width)
	a.SetBBoxY1(b.Y)
	a.SetBBoxY2(b.Y + b.Height)

	if diff := cmp.Diff(before, geom(a), approx); diff != "" {
		t.Errorf("geometry changed (-want +got):\n%s", diff)
	}
}

func TestSetBBoxEdges(t *testing.T) {
	tests := []struct {
		name string
		edit func(a *Arc)
		want geometry
	}{
		{"x1 inward", func(a *Arc) { a.SetBBoxX1(350) }, geometry{X: 1.1, Y: 0.5, R: 0.4}},
		{"x1 onto right edge", func(a *Arc) { a.SetBBoxX1(750) }, geometry{X: 1.5, Y: 0.5, R: 0}},
		{"x2 outward", func(a *Arc) { a.SetBBoxX2(850) }, geometry{X: 1.1, Y: 0.5, R: 0.6}},
		{"y1 up", func(a *Arc) { a.SetBBoxY1(25) }, geometry{X: 1, Y: 0.6, R: 0.7}},
		{"y2 up", func(a *Arc) { a.SetBBoxY2(275) }, geometry{X: 1, Y: 0.6, R: 0.3}},
		{"x1 past right edge", func(a *Arc) { a.SetBBoxX1(800) }, geometry{X: 1, Y: 0.5, R: 0.5}},
		{"x2 past left edge", func(a *Arc) { a.SetBBoxX2(200) }, geometry{X: 1, Y: 0.5, R: 0.5}},
		{"y1 below bottom", func(a *Arc) { a.SetBBoxY1(400) }, geometry{X: 1, Y: 0.5, R: 0.5}},
		{"y2 above top", func(a *Arc) { a.SetBBoxY2(100) }, geometry{X: 1, Y: 0.5, R: 0.5}},
		{"center", func(a *Arc) { a.SetBBoxCenter(image.Pt(600, 100)) }, geometry{X: 1.2, Y: 0.8, R: 0.5}},
		{"center x", func(a *Arc) { a.SetBBoxCenterX(100) }, geometry{X: 0.2, Y: 0.5, R: 0.5}},
		{"center y", func(a *Arc) { a.SetBBoxCenterY(400) }, geometry{X: 1, Y: 0.2, R: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(1, 0.5, 0.5, 0, 360, 0.02, 0.01, WithSurface(widePad()))
			tt.edit(a)
			if diff := cmp.Diff(tt.want, geom(a), approx); diff != "" {
				t.Errorf("geometry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetBBoxKeepsOppositeEdge(t *testing.T) {
	a := New(1, 0.5, 0.5, 0, 360, 0.02, 0.01, WithSurface(widePad()))

	a.SetBBoxY1(25)
	if b := a.BBox(); b.Y != 25 || b.Y+b.Height != 375 {
		t.Errorf("after SetBBoxY1: %+v", b)
	}

	a.SetBBoxX2(900)
	if b := a.BBox(); b.X+b.Width != 900 {
		t.Errorf("after SetBBoxX2: %+v", b)
	}
}

func TestSetBBoxDetached(t *testing.T) {
	a := New(1, 0.5, 0.5, 0, 360, 0.02, 0.01)
	before := geom(a)

	a.SetBBoxX1(0)
	a.SetBBoxX2(0)
	a.SetBBoxY1(0)
	a.SetBBoxY2(0)
	a.SetBBoxCenter(image.Pt(3, 3))
	a.SetBBoxCenterX(3)
	a.SetBBoxCenterY(3)

	if diff := cmp.Diff(before, geom(a)); diff != "" {
		t.Errorf("detached arc changed (-want +got):\n%s", diff)
	}
}
