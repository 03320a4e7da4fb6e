// Command curlyedit is a terminal editor for curly arc scenes.
package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/curlyarc-toolkit/pkg/arcfile"
	"github.com/ha1tch/curlyarc-toolkit/pkg/config"
	"github.com/ha1tch/curlyarc-toolkit/pkg/curlyarc"
	"github.com/ha1tch/curlyarc-toolkit/pkg/termhost"
)

// pickTolerance is the distance in cells within which a click grabs an arc.
const pickTolerance = 2

const maxUndoLevels = 50

// MessageType selects how a status message is shown.
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgError
	MsgSuccess
)

// Editor holds the state of one editing session.
type Editor struct {
	screen   tcell.Screen
	host     *termhost.Screen
	scene    *arcfile.Scene
	arcs     []*curlyarc.Arc
	defaults *curlyarc.Defaults

	filename    string
	selected    int
	pointer     image.Point
	buttonDown  bool
	modified    bool
	confirmQuit bool

	undoStack [][]arcfile.ArcSpec
	pending   []arcfile.ArcSpec // scene as it was when the current gesture began

	message     string
	messageType MessageType
}

func main() {
	var cfgPath, logPath, filename string
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				cfgPath = args[i+1]
				i++
			}
		case "--log":
			if i+1 < len(args) {
				logPath = args[i+1]
				i++
			}
		case "-h", "--help":
			fmt.Println("Usage: curlyedit [--config file] [--log file] [scene.arcs|scene.json]")
			return
		default:
			filename = args[i]
		}
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log %s: %v\n", logPath, err)
			os.Exit(1)
		}
		defer f.Close()
		l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		curlyarc.SetLogger(l)
		arcfile.SetLogger(l)
	}

	v, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	scene := arcfile.NewScene("", config.Canvas(v))
	if filename != "" {
		s, err := loadFile(filename)
		switch {
		case err == nil:
			scene = s
		case errors.Is(err, fs.ErrNotExist):
			scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		default:
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
			os.Exit(1)
		}
	}
	if err := scene.Canvas.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	ed := newEditor(screen, scene, config.Defaults(v), config.Opaque(v))
	ed.filename = filename
	ed.run()

	screen.Fini()
}

func newEditor(screen tcell.Screen, scene *arcfile.Scene, defaults *curlyarc.Defaults, opaque bool) *Editor {
	c := scene.Canvas
	h := termhost.New(screen, c.X1, c.Y1, c.X2, c.Y2)
	h.OpaqueMoves = opaque
	return &Editor{
		screen:   screen,
		host:     h,
		scene:    scene,
		arcs:     scene.Build(h),
		defaults: defaults,
		selected: -1,
	}
}

func (ed *Editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			ed.screen.Sync()
			ed.resize()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		}
	}
}

func (ed *Editor) resize() {
	ed.host.Resize()
	for _, a := range ed.arcs {
		a.Build()
	}
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	quitKey := ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
	if !quitKey {
		ed.confirmQuit = false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return ed.quit()
	case tcell.KeyUp:
		ed.nudge(0, -1)
	case tcell.KeyDown:
		ed.nudge(0, 1)
	case tcell.KeyLeft:
		ed.nudge(-1, 0)
	case tcell.KeyRight:
		ed.nudge(1, 0)
	case tcell.KeyTab:
		ed.cycleSelection()
	case tcell.KeyDelete:
		ed.deleteSelected()
	case tcell.KeyCtrlS:
		ed.save()
	case tcell.KeyCtrlZ:
		ed.undo()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ed.quit()
		case 'o':
			ed.toggleOpaque()
		case 'w':
			ed.toggleWavy()
		case 'n':
			ed.addArc()
		case 'd':
			ed.deleteSelected()
		case 's':
			ed.save()
		case 'u':
			ed.undo()
		}
	}
	return false
}

func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	ed.pointer = image.Pt(x, y)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !ed.buttonDown:
		ed.buttonDown = true
		ed.selected = ed.pick(x, y)
		if ed.selected < 0 {
			return
		}
		ed.pending = ed.specs()
		ed.arcs[ed.selected].ExecuteEvent(curlyarc.EventButton1Down, x, y)
	case held:
		if ed.selected >= 0 {
			ed.arcs[ed.selected].ExecuteEvent(curlyarc.EventButton1Motion, x, y)
		}
	case ed.buttonDown:
		ed.buttonDown = false
		if ed.selected >= 0 {
			ed.arcs[ed.selected].ExecuteEvent(curlyarc.EventButton1Up, x, y)
			ed.commit()
		}
	default:
		if ed.selected >= 0 {
			ed.arcs[ed.selected].ExecuteEvent(curlyarc.EventMouseMotion, x, y)
		}
	}
}

// pick returns the arc under cell (x, y), or -1. An arc is grabbed when
// its centerline circle or its drawn points come within pickTolerance.
func (ed *Editor) pick(x, y int) int {
	best, dist := -1, pickTolerance+1
	for i, a := range ed.arcs {
		d := a.DistanceToPrimitive(x, y)
		for _, p := range a.PixelPoints() {
			if pd := max(abs(p.X-x), abs(p.Y-y)); pd < d {
				d = pd
			}
		}
		if d < dist {
			best, dist = i, d
		}
	}
	return best
}

// nudge moves the pointer by one cell with an arrow key press and release,
// which drags whatever part of the selected arc lies under it.
func (ed *Editor) nudge(dx, dy int) {
	if ed.selected < 0 {
		ed.showMessage("No arc selected", MsgError)
		return
	}
	a := ed.arcs[ed.selected]
	ed.pending = ed.specs()
	a.ExecuteEvent(curlyarc.EventArrowKeyPress, ed.pointer.X, ed.pointer.Y)
	ed.pointer = ed.pointer.Add(image.Pt(dx, dy))
	a.ExecuteEvent(curlyarc.EventArrowKeyRelease, ed.pointer.X, ed.pointer.Y)
	ed.commit()
}

// commit records the finished gesture for undo if it changed the scene.
func (ed *Editor) commit() {
	now := ed.specs()
	if ed.pending == nil || slices.Equal(ed.pending, now) {
		ed.pending = nil
		return
	}
	ed.pushUndo(ed.pending)
	ed.pending = nil
	ed.modified = true
}

// specs syncs the scene with the live arcs and returns a copy of it.
func (ed *Editor) specs() []arcfile.ArcSpec {
	ed.scene.Update(ed.arcs)
	return slices.Clone(ed.scene.Arcs)
}

func (ed *Editor) pushUndo(specs []arcfile.ArcSpec) {
	ed.undoStack = append(ed.undoStack, specs)
	if len(ed.undoStack) > maxUndoLevels {
		ed.undoStack = ed.undoStack[1:]
	}
}

func (ed *Editor) undo() {
	if len(ed.undoStack) == 0 {
		ed.showMessage("Nothing to undo", MsgInfo)
		return
	}
	specs := ed.undoStack[len(ed.undoStack)-1]
	ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]

	ed.scene.Arcs = specs
	ed.arcs = ed.scene.Build(ed.host)
	if ed.selected >= len(ed.arcs) {
		ed.selected = -1
	}
	ed.modified = true
	ed.showMessage("Undo", MsgInfo)
}

func (ed *Editor) cycleSelection() {
	if len(ed.arcs) == 0 {
		return
	}
	ed.selected = (ed.selected + 1) % len(ed.arcs)
	ed.pointer = ed.host.ToPixel(ed.arcs[ed.selected].Center())
}

func (ed *Editor) toggleOpaque() {
	ed.host.OpaqueMoves = !ed.host.OpaqueMoves
	ed.showMessage("Mode: "+ed.modeString(), MsgInfo)
}

func (ed *Editor) toggleWavy() {
	if ed.selected < 0 {
		ed.showMessage("No arc selected", MsgError)
		return
	}
	ed.pushUndo(ed.specs())
	a := ed.arcs[ed.selected]
	if a.IsCurly() {
		a.SetWavy()
	} else {
		a.SetCurly()
	}
	ed.scene.Update(ed.arcs)
	ed.modified = true
}

// addArc places a half circle from the configured defaults at the pointer.
func (ed *Editor) addArc() {
	ed.pushUndo(ed.specs())
	r := ed.host.Range()
	radius := (r.URx - r.LLx) / 8
	if radius < 0 {
		radius = -radius
	}
	c := ed.host.ToLogical(ed.pointer)
	a := ed.defaults.New(c.X, c.Y, radius, 0, 180, curlyarc.WithSurface(ed.host))
	ed.arcs = append(ed.arcs, a)
	ed.scene.Add(a)
	ed.selected = len(ed.arcs) - 1
	ed.modified = true
}

func (ed *Editor) deleteSelected() {
	if ed.selected < 0 {
		ed.showMessage("No arc selected", MsgError)
		return
	}
	ed.pushUndo(ed.specs())
	ed.arcs = slices.Delete(ed.arcs, ed.selected, ed.selected+1)
	ed.scene.Arcs = slices.Delete(ed.scene.Arcs, ed.selected, ed.selected+1)
	ed.selected = -1
	ed.modified = true
}

func (ed *Editor) save() {
	if ed.filename == "" {
		ed.filename = "untitled.arcs"
	}
	ed.scene.Update(ed.arcs)
	if err := saveFile(ed.filename, ed.scene); err != nil {
		ed.showMessage(fmt.Sprintf("Error saving: %v", err), MsgError)
		return
	}
	ed.modified = false
	ed.showMessage("Saved "+ed.filename, MsgSuccess)
}

// quit reports whether the editor should exit. Unsaved changes need a
// second request.
func (ed *Editor) quit() bool {
	if ed.modified && !ed.confirmQuit {
		ed.confirmQuit = true
		ed.showMessage("Unsaved changes, press q again to quit", MsgError)
		return false
	}
	return true
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
}

// File operations

func loadFile(path string) (*arcfile.Scene, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return arcfile.ParseJSON(data)
	}
	return arcfile.ReadBundleFile(path)
}

func saveFile(path string, s *arcfile.Scene) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := arcfile.ToJSON(s, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}
	return arcfile.WriteBundleFile(path, s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
