package termhost

import (
	"image"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// newScreen returns a simulated 100 x 61 terminal showing 100 x 60 logical
// units, one unit per cell.
func newScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(100, 61)
	return sim, New(sim, 0, 0, 100, 60)
}

func contents(sim tcell.SimulationScreen) (cells []tcell.SimCell, w, h int) {
	sim.Show()
	return sim.GetContents()
}

func countRune(cells []tcell.SimCell, r rune) int {
	n := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == r {
			n++
		}
	}
	return n
}

func row(cells []tcell.SimCell, w, y int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func TestLine(t *testing.T) {
	tests := []struct {
		a, b image.Point
		n    int
	}{
		{image.Pt(0, 0), image.Pt(10, 0), 11},
		{image.Pt(0, 0), image.Pt(3, 3), 4},
		{image.Pt(5, 9), image.Pt(5, 2), 8},
		{image.Pt(2, 2), image.Pt(2, 2), 1},
	}

	for _, tt := range tests {
		var cells []image.Point
		Line(tt.a, tt.b, func(p image.Point) { cells = append(cells, p) })
		if len(cells) != tt.n {
			t.Errorf("Line(%v, %v): %d cells, want %d", tt.a, tt.b, len(cells), tt.n)
			continue
		}
		if cells[0] != tt.a || cells[len(cells)-1] != tt.b {
			t.Errorf("Line(%v, %v): endpoints %v %v", tt.a, tt.b, cells[0], cells[len(cells)-1])
		}
	}
}

func TestScreenGeometry(t *testing.T) {
	_, s := newScreen(t)

	if s.Width != 100 || s.Height != 60 {
		t.Fatalf("canvas %dx%d, want 100x60", s.Width, s.Height)
	}
	if got := s.ToPixel(s.ToLogical(image.Pt(30, 40))); got != image.Pt(30, 40) {
		t.Errorf("round trip: got %v", got)
	}
	if !s.Dirty() {
		t.Error("new screen should need a redraw")
	}
}

func TestOverlayXOR(t *testing.T) {
	_, s := newScreen(t)

	s.DrawLine(image.Pt(0, 0), image.Pt(10, 0))
	if s.OverlayCells() != 11 {
		t.Errorf("overlay cells %d, want 11", s.OverlayCells())
	}
	s.DrawLine(image.Pt(0, 0), image.Pt(10, 0))
	if s.OverlayCells() != 0 {
		t.Errorf("overlay cells %d after redraw, want 0", s.OverlayCells())
	}
}

func TestRenderArc(t *testing.T) {
	sim, s := newScreen(t)
	a := curlyarc.New(50, 30, 20, 0, 360, 0.02, 0.01, curlyarc.WithSurface(s))

	s.Render([]Plotted{{Points: a.PixelPoints(), Style: StyleArc}}, "1 arc")
	if s.Dirty() {
		t.Error("Render should clear the dirty flag")
	}

	cells, w, h := contents(sim)
	if n := countRune(cells, RuneArc); n < 50 {
		t.Errorf("only %d arc cells plotted", n)
	}
	status := row(cells, w, h-1)
	if !strings.Contains(status, "[pointer]") || !strings.Contains(status, "1 arc") {
		t.Errorf("status row %q", status)
	}
}

func TestRubberBandOnScreen(t *testing.T) {
	sim, s := newScreen(t)
	a := curlyarc.New(50, 30, 20, 0, 360, 0.02, 0.01, curlyarc.WithSurface(s))

	a.ExecuteEvent(curlyarc.EventButton1Down, 70, 30)
	a.ExecuteEvent(curlyarc.EventButton1Motion, 75, 30)
	if s.OverlayCells() == 0 {
		t.Fatal("no outline while dragging")
	}
	if s.Cursor != host.CursorRightSide {
		t.Errorf("cursor %v, want right", s.Cursor)
	}

	s.Render(nil, "")
	cells, _, _ := contents(sim)
	if countRune(cells, RuneOverlay) == 0 {
		t.Error("overlay not rendered")
	}

	a.ExecuteEvent(curlyarc.EventButton1Up, 75, 30)
	if s.OverlayCells() != 0 {
		t.Errorf("%d overlay cells left after commit", s.OverlayCells())
	}
	if a.Radius() != 25 {
		t.Errorf("radius %g, want 25", a.Radius())
	}
}

func TestGuidelines(t *testing.T) {
	sim, s := newScreen(t)
	a := curlyarc.New(50, 30, 20, 0, 360, 0.02, 0.01, curlyarc.WithSurface(s))

	s.ShowGuidelines(a, host.GuideLeft)
	s.Render(nil, "")
	cells, _, _ := contents(sim)
	if countRune(cells, RuneGuide) == 0 {
		t.Error("guidelines not rendered")
	}

	s.ShowGuidelines(nil, host.GuideHide)
	s.Render(nil, "")
	cells, _, _ = contents(sim)
	if countRune(cells, RuneGuide) != 0 {
		t.Error("guidelines still rendered after hide")
	}
}

func TestResize(t *testing.T) {
	sim, s := newScreen(t)
	s.DrawLine(image.Pt(0, 0), image.Pt(5, 5))

	sim.SetSize(50, 31)
	s.Resize()

	if s.Width != 50 || s.Height != 30 {
		t.Errorf("canvas %dx%d after resize", s.Width, s.Height)
	}
	if r := s.Range(); r.URx != 100 || r.URy != 60 {
		t.Errorf("range changed: %+v", r)
	}
	if s.OverlayCells() != 0 {
		t.Error("resize should drop the overlay")
	}
	if sx, _ := s.LogicalPerPixel(); sx != 2 {
		t.Errorf("sx %g, want 2", sx)
	}
}
