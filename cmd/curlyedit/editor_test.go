package main

import (
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ha1tch/curlyarc-toolkit/pkg/arcfile"
	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
)

// testEditor shows the range [0, 2] x [0, 1] on a 100 x 50 cell canvas,
// so cells are square and 0.02 logical units wide. The single arc is a
// full circle with its center on cell (50, 25) and a radius of 20 cells.
func testEditor(t *testing.T, opaque bool) *Editor {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(100, 51)

	scene := arcfile.NewScene("test", arcfile.Canvas{Width: 100, Height: 50, X1: 0, Y1: 0, X2: 2, Y2: 1})
	scene.Add(curlyarc.New(1, 0.5, 0.4, 0, 360, 0.02, 0.01))
	scene.Arcs[0].Label = "g"
	return newEditor(s, scene, curlyarc.NewDefaults(), opaque)
}

func mouse(ed *Editor, x, y int, btn tcell.ButtonMask) {
	ed.handleMouse(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
}

func key(ed *Editor, k tcell.Key, r rune) bool {
	return ed.handleKey(tcell.NewEventKey(k, r, tcell.ModNone))
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMouseResize(t *testing.T) {
	for _, opaque := range []bool{false, true} {
		ed := testEditor(t, opaque)

		mouse(ed, 70, 25, tcell.Button1)
		if ed.selected != 0 {
			t.Fatalf("opaque=%v: press on the arc selected %d", opaque, ed.selected)
		}
		if h := ed.arcs[0].Session().Handle(); h != curlyarc.HandleRight {
			t.Errorf("opaque=%v: grabbed %v, want right", opaque, h)
		}
		mouse(ed, 75, 25, tcell.Button1)
		mouse(ed, 75, 25, tcell.ButtonNone)

		if diff := cmp.Diff(0.5, ed.scene.Arcs[0].Radius, approx); diff != "" {
			t.Errorf("opaque=%v: radius (-want +got):\n%s", opaque, diff)
		}
		if ed.scene.Arcs[0].Label != "g" {
			t.Errorf("label lost")
		}
		if !ed.modified || len(ed.undoStack) != 1 {
			t.Errorf("opaque=%v: modified=%v undo=%d", opaque, ed.modified, len(ed.undoStack))
		}
		if ed.host.OverlayCells() != 0 {
			t.Errorf("opaque=%v: overlay left behind", opaque)
		}

		ed.undo()
		if diff := cmp.Diff(0.4, ed.scene.Arcs[0].Radius, approx); diff != "" {
			t.Errorf("opaque=%v: radius after undo (-want +got):\n%s", opaque, diff)
		}
		if ed.arcs[0].Radius() != ed.scene.Arcs[0].Radius {
			t.Error("live arcs not rebuilt after undo")
		}
	}
}

func TestClickAwayDeselects(t *testing.T) {
	ed := testEditor(t, false)
	mouse(ed, 70, 25, tcell.Button1)
	mouse(ed, 70, 25, tcell.ButtonNone)
	if ed.selected != 0 || ed.modified {
		t.Fatalf("click on arc: selected=%d modified=%v", ed.selected, ed.modified)
	}

	mouse(ed, 2, 2, tcell.Button1)
	mouse(ed, 2, 2, tcell.ButtonNone)
	if ed.selected != -1 {
		t.Errorf("click on empty canvas kept selection %d", ed.selected)
	}
	if len(ed.undoStack) != 0 {
		t.Error("clicks without changes should not be undoable")
	}
}

func TestArrowNudgeMoves(t *testing.T) {
	ed := testEditor(t, false)

	// a point on the circle away from the edge handles
	mouse(ed, 64, 11, tcell.Button1)
	mouse(ed, 64, 11, tcell.ButtonNone)
	if ed.selected != 0 {
		t.Fatalf("selected %d", ed.selected)
	}

	key(ed, tcell.KeyRight, 0)
	if ed.pointer != image.Pt(65, 11) {
		t.Errorf("pointer at %v", ed.pointer)
	}
	if h := ed.arcs[0].Session().Handle(); h != curlyarc.HandleMove {
		t.Errorf("grabbed %v, want move", h)
	}
	if diff := cmp.Diff(1.02, ed.scene.Arcs[0].X, approx); diff != "" {
		t.Errorf("center x (-want +got):\n%s", diff)
	}
	if ed.arcs[0].Session().Phase() != curlyarc.PhaseCommitted {
		t.Errorf("phase %s", ed.arcs[0].Session().Phase())
	}
}

func TestNudgeWithoutSelection(t *testing.T) {
	ed := testEditor(t, false)
	key(ed, tcell.KeyUp, 0)
	if ed.messageType != MsgError || ed.modified {
		t.Errorf("message %q modified %v", ed.message, ed.modified)
	}
}

func TestKeyCommands(t *testing.T) {
	ed := testEditor(t, false)
	key(ed, tcell.KeyTab, 0)
	if ed.selected != 0 || ed.pointer != image.Pt(50, 25) {
		t.Fatalf("tab: selected %d pointer %v", ed.selected, ed.pointer)
	}

	key(ed, tcell.KeyRune, 'w')
	if ed.scene.Arcs[0].Curly || ed.arcs[0].IsCurly() {
		t.Error("w should make the arc wavy")
	}
	key(ed, tcell.KeyRune, 'n')
	if len(ed.arcs) != 2 || len(ed.scene.Arcs) != 2 || ed.selected != 1 {
		t.Fatalf("n: %d arcs, selected %d", len(ed.arcs), ed.selected)
	}
	added := ed.scene.Arcs[1]
	if diff := cmp.Diff(arcfile.ArcSpec{
		X: 1, Y: 0.5, Radius: 0.25, PhiMin: 0, PhiMax: 180,
		WaveLength: curlyarc.DefaultWaveLength, Amplitude: curlyarc.DefaultAmplitude,
		Curly: true, Line: curlyarc.DefaultLine,
	}, added, approx); diff != "" {
		t.Errorf("new arc (-want +got):\n%s", diff)
	}

	key(ed, tcell.KeyRune, 'd')
	if len(ed.arcs) != 1 || ed.selected != -1 {
		t.Errorf("d: %d arcs, selected %d", len(ed.arcs), ed.selected)
	}

	key(ed, tcell.KeyRune, 'u')
	key(ed, tcell.KeyRune, 'u')
	key(ed, tcell.KeyRune, 'u')
	if len(ed.arcs) != 1 || !ed.scene.Arcs[0].Curly {
		t.Errorf("after undo: %+v", ed.scene.Arcs)
	}
	key(ed, tcell.KeyRune, 'u')
	if ed.message != "Nothing to undo" {
		t.Errorf("message %q", ed.message)
	}

	key(ed, tcell.KeyRune, 'o')
	if !ed.host.OpaqueMoves || !strings.Contains(ed.statusLine(), "live") {
		t.Error("o should switch to live mode")
	}
}

func TestQuitNeedsConfirmation(t *testing.T) {
	ed := testEditor(t, false)
	if !key(ed, tcell.KeyRune, 'q') {
		t.Fatal("unmodified editor should quit at once")
	}

	ed.modified = true
	if key(ed, tcell.KeyRune, 'q') {
		t.Fatal("first q with unsaved changes should not quit")
	}
	key(ed, tcell.KeyTab, 0)
	if key(ed, tcell.KeyEscape, 0) {
		t.Fatal("another key should reset the confirmation")
	}
	if !key(ed, tcell.KeyEscape, 0) {
		t.Error("second quit request should quit")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.arcs", "scene.json"} {
		ed := testEditor(t, false)
		ed.filename = filepath.Join(dir, name)
		ed.modified = true

		key(ed, tcell.KeyRune, 's')
		if ed.modified || ed.messageType != MsgSuccess {
			t.Fatalf("%s: save failed: %s", name, ed.message)
		}
		got, err := loadFile(ed.filename)
		if err != nil {
			t.Fatalf("%s: loadFile: %v", name, err)
		}
		if diff := cmp.Diff(ed.scene, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestDrawStatus(t *testing.T) {
	ed := testEditor(t, false)
	ed.filename = "/tmp/feynman.arcs"
	key(ed, tcell.KeyTab, 0)
	ed.draw()
	ed.screen.Show()

	cells, w, h := ed.screen.(tcell.SimulationScreen).GetContents()
	var row strings.Builder
	for x := 0; x < w; x++ {
		c := cells[(h-1)*w+x]
		if len(c.Runes) > 0 {
			row.WriteRune(c.Runes[0])
		}
	}
	for _, want := range []string{"feynman.arcs", "1 arcs", "rubber-band", "#0 curly"} {
		if !strings.Contains(row.String(), want) {
			t.Errorf("status row %q missing %q", row.String(), want)
		}
	}
}

func TestResizeRebuilds(t *testing.T) {
	ed := testEditor(t, false)
	before := len(ed.arcs[0].PixelPoints())
	ed.screen.(tcell.SimulationScreen).SetSize(200, 101)
	ed.resize()

	if ed.host.Width != 200 || ed.host.Height != 100 {
		t.Fatalf("canvas %dx%d", ed.host.Width, ed.host.Height)
	}
	if c := ed.arcs[0].PixelPoints()[0]; c != image.Pt(140, 50) {
		t.Errorf("first point %v, want (140, 50)", c)
	}
	if before == 0 {
		t.Error("no points before resize")
	}
}
