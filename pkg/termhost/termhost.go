// Package termhost implements host.Surface on a tcell screen.
//
// Each terminal cell is one pixel. The canvas occupies the whole screen
// except the bottom status row. Arcs are plotted with one rune per cell;
// rubber-band lines go into an XOR overlay so that drawing a line twice
// removes it, as on a raster display.
package termhost

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// Styles
var (
	StyleArc      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	StyleGuide    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// Runes used on the canvas.
const (
	RuneArc     = '•'
	RuneOverlay = '+'
	RuneGuide   = '·'
)

// Screen is a Surface backed by a tcell screen. The logical to cell
// transform and the guideline and cursor bookkeeping come from the
// embedded host.Pad.
type Screen struct {
	*host.Pad
	screen tcell.Screen

	overlay map[image.Point]bool
	dirty   bool
}

// New wraps s, showing the logical range [x1, x2] x [y1, y2].
func New(s tcell.Screen, x1, y1, x2, y2 float64) *Screen {
	w, h := canvasSize(s)
	return &Screen{
		Pad:     host.NewPad(w, h, x1, y1, x2, y2),
		screen:  s,
		overlay: make(map[image.Point]bool),
		dirty:   true,
	}
}

func canvasSize(s tcell.Screen) (int, int) {
	w, h := s.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// Resize adapts the canvas to the current screen size, keeping the
// logical range. The overlay is dropped.
func (t *Screen) Resize() {
	r := t.Range()
	t.Width, t.Height = canvasSize(t.screen)
	t.SetRange(r.LLx, r.LLy, r.URx, r.URy)
	t.overlay = make(map[image.Point]bool)
	t.dirty = true
}

// DrawLine toggles the cells on the segment a-b in the overlay.
func (t *Screen) DrawLine(a, b image.Point) {
	Line(a, b, func(p image.Point) {
		if t.overlay[p] {
			delete(t.overlay, p)
		} else {
			t.overlay[p] = true
		}
	})
}

// Modified marks the screen for redraw.
func (t *Screen) Modified() {
	t.Pad.Modified()
	t.dirty = true
}

// Dirty reports whether a redraw was requested since the last Render.
func (t *Screen) Dirty() bool { return t.dirty }

// OverlayCells returns the number of visible overlay cells.
func (t *Screen) OverlayCells() int { return len(t.overlay) }

// Plotted is a polyline to draw in a given style.
type Plotted struct {
	Points []image.Point
	Style  tcell.Style
}

// Render clears the screen and draws guidelines, shapes, the overlay and
// the status row. It does not call Show.
func (t *Screen) Render(shapes []Plotted, status string) {
	t.screen.Clear()

	if t.GuideTag != host.GuideHide {
		t.drawGuides()
	}
	for _, s := range shapes {
		for i := 1; i < len(s.Points); i++ {
			Line(s.Points[i-1], s.Points[i], func(p image.Point) {
				t.setCell(p, RuneArc, s.Style)
			})
		}
		if len(s.Points) == 1 {
			t.setCell(s.Points[0], RuneArc, s.Style)
		}
	}
	for p := range t.overlay {
		t.setCell(p, RuneOverlay, StyleOverlay)
	}

	w, h := t.screen.Size()
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-1, ' ', nil, StyleStatus)
	}
	line := fmt.Sprintf(" [%s] %s", t.Cursor, status)
	for i, r := range []rune(line) {
		if i >= w {
			break
		}
		t.screen.SetContent(i, h-1, r, nil, StyleStatus)
	}
	t.dirty = false
}

// drawGuides draws the edges of the guideline box across the canvas.
func (t *Screen) drawGuides() {
	r := t.GuideBox.Rectangle()
	for x := 0; x < t.Width; x++ {
		t.setCell(image.Pt(x, r.Min.Y), RuneGuide, StyleGuide)
		t.setCell(image.Pt(x, r.Max.Y), RuneGuide, StyleGuide)
	}
	for y := 0; y < t.Height; y++ {
		t.setCell(image.Pt(r.Min.X, y), RuneGuide, StyleGuide)
		t.setCell(image.Pt(r.Max.X, y), RuneGuide, StyleGuide)
	}
}

func (t *Screen) setCell(p image.Point, r rune, style tcell.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= t.Width || p.Y >= t.Height {
		return
	}
	t.screen.SetContent(p.X, p.Y, r, nil, style)
}

// Line calls plot for every cell on the segment a-b, endpoints included.
func Line(a, b image.Point, plot func(image.Point)) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	p := a
	for {
		plot(p)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
