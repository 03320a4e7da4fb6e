package curlyarc

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/curlyarc-toolkit/pkg/fsm"
	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

// Event is a pointer or keyboard event delivered by the host.
type Event int

const (
	EventButton1Down Event = iota + 1
	EventButton1Motion
	EventButton1Up
	EventMouseMotion
	EventArrowKeyPress
	EventArrowKeyRelease
)

var eventNames = map[Event]string{
	EventButton1Down:     "button1-down",
	EventButton1Motion:   "button1-motion",
	EventButton1Up:       "button1-up",
	EventMouseMotion:     "mouse-motion",
	EventArrowKeyPress:   "arrow-press",
	EventArrowKeyRelease: "arrow-release",
}

func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return "unknown"
}

func (e Event) input() string {
	switch e {
	case EventButton1Down, EventArrowKeyPress:
		return inputPress
	case EventMouseMotion:
		return inputHover
	case EventButton1Motion:
		return inputDrag
	case EventButton1Up, EventArrowKeyRelease:
		return inputRelease
	}
	return ""
}

// Handle identifies the part of the arc grabbed by a gesture.
type Handle int

const (
	HandleNone Handle = iota
	HandleMove
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
)

var handleNames = [...]string{"none", "move", "top", "bottom", "left", "right"}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "unknown"
	}
	return handleNames[h]
}

// handleTolerance is the per-axis pixel distance within which an edge
// handle is grabbed.
const handleTolerance = 10

func (h Handle) cursor() host.Cursor {
	switch h {
	case HandleTop:
		return host.CursorTopSide
	case HandleBottom:
		return host.CursorBottomSide
	case HandleLeft:
		return host.CursorLeftSide
	case HandleRight:
		return host.CursorRightSide
	case HandleMove:
		return host.CursorMove
	}
	return host.CursorPointer
}

func (h Handle) guide() byte {
	switch h {
	case HandleTop:
		return host.GuideTop
	case HandleBottom:
		return host.GuideBottom
	case HandleLeft:
		return host.GuideLeft
	case HandleRight:
		return host.GuideRight
	case HandleMove:
		return host.GuideInside
	}
	return host.GuideHide
}

// Session tracks one gesture on one arc. Each arc owns its session, so
// gestures on different arcs may interleave freely.
type Session struct {
	arc    *Arc
	runner *fsm.Runner

	handle   Handle
	center   image.Point // working center, pixels
	radius   int         // working radius, pixels
	last     image.Point
	moved    bool
	resized  bool
	feedback Feedback

	origCenter vec.Vec2
	origRadius float64
}

func newSession(a *Arc) *Session {
	r, err := fsm.NewRunner(Gesture())
	if err != nil {
		// The gesture table is fixed and always valid.
		panic(err)
	}
	return &Session{arc: a, runner: r}
}

// Session returns the arc's gesture session, creating it on first use.
func (a *Arc) Session() *Session {
	if a.session == nil {
		a.session = newSession(a)
	}
	return a.session
}

// ExecuteEvent feeds a host event at pixel (px, py) into the arc's gesture
// session. It does nothing when no surface is attached.
func (a *Arc) ExecuteEvent(ev Event, px, py int) {
	if a.surface == nil {
		return
	}
	a.Session().Execute(ev, px, py)
}

// Phase returns the current gesture phase.
func (s *Session) Phase() string { return s.runner.CurrentState() }

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool {
	p := s.Phase()
	return p == PhaseArmed || p == PhaseDragging
}

// Handle returns the handle grabbed by the current or last gesture.
func (s *Session) Handle() Handle { return s.handle }

// WorkingCenter returns the working center in pixels.
func (s *Session) WorkingCenter() image.Point { return s.center }

// WorkingRadius returns the working radius in pixels.
func (s *Session) WorkingRadius() int { return s.radius }

// History returns the recent gesture transitions, oldest first.
func (s *Session) History() []fsm.Step { return s.runner.History() }

// Status describes the gesture phase and its last transition.
func (s *Session) Status() string { return s.runner.Status() }

// Execute advances the gesture with one event.
func (s *Session) Execute(ev Event, px, py int) {
	if s.arc.surface == nil {
		return
	}
	in := ev.input()
	if in == "" {
		return
	}
	if ev == EventArrowKeyRelease && s.Active() {
		s.step(inputDrag, px, py)
	}
	s.step(in, px, py)
}

func (s *Session) step(in string, px, py int) {
	wasActive := s.Active()
	from := s.Phase()
	out, err := s.runner.Step(in)
	if err != nil {
		Logger().Warn("curlyarc: gesture step failed", "err", err)
		return
	}
	Logger().Debug("curlyarc: gesture", "from", from, "input", in, "to", s.Phase(), "output", out)

	switch out {
	case outArm:
		if wasActive {
			s.abort()
		}
		s.arm(px, py)
	case outPick:
		s.pick(px, py)
	case outAbandon:
		s.abort()
		s.pick(px, py)
	case outDrag:
		s.drag(px, py)
	case outCommit:
		if s.feedback != nil {
			s.feedback.Commit(s)
			s.feedback = nil
		}
	}
}

// geometry returns the pixel center and pixel radius of the arc as it
// currently stands.
func (s *Session) geometry() (image.Point, int) {
	a := s.arc
	c := a.surface.ToPixel(a.center)
	left := a.surface.ToPixel(vec.Vec2{X: a.center.X - a.radius, Y: a.center.Y})
	right := a.surface.ToPixel(vec.Vec2{X: a.center.X + a.radius, Y: a.center.Y})
	d := left.X - right.X
	if d < 0 {
		d = -d
	}
	return c, d / 2
}

// detect returns the handle under pixel p for a circle of pixel radius r
// centered at c.
func detect(c image.Point, r int, p image.Point) Handle {
	near := func(hx, hy int) bool {
		return abs(p.X-hx) < handleTolerance && abs(p.Y-hy) < handleTolerance
	}
	switch {
	case near(c.X, c.Y-r):
		return HandleTop
	case near(c.X, c.Y+r):
		return HandleBottom
	case near(c.X-r, c.Y):
		return HandleLeft
	case near(c.X+r, c.Y):
		return HandleRight
	}
	return HandleMove
}

func (s *Session) pick(px, py int) {
	c, r := s.geometry()
	s.arc.surface.SetCursor(detect(c, r, image.Pt(px, py)).cursor())
}

func (s *Session) arm(px, py int) {
	a := s.arc
	s.center, s.radius = s.geometry()
	s.last = image.Pt(px, py)
	s.handle = detect(s.center, s.radius, s.last)
	s.moved, s.resized = false, false
	s.origCenter, s.origRadius = a.center, a.radius

	a.surface.SetCursor(s.handle.cursor())
	s.feedback = feedbackFor(a.surface)
	s.feedback.Begin(s)
}

func (s *Session) drag(px, py int) {
	dx := px - s.last.X
	up := s.last.Y - py

	switch s.handle {
	case HandleMove:
		s.center = s.center.Add(image.Pt(dx, -up))
		s.moved = true
	case HandleTop, HandleBottom, HandleLeft, HandleRight:
		r := s.radius
		switch s.handle {
		case HandleTop:
			r += up
		case HandleBottom:
			r -= up
		case HandleLeft:
			r -= dx
		case HandleRight:
			r += dx
		}
		if r < 0 {
			Logger().Debug("curlyarc: resize would invert the arc", "radius", r)
			return
		}
		s.radius = r
		s.resized = true
	default:
		return
	}
	s.last = image.Pt(px, py)
	s.feedback.Step(s)
}

func (s *Session) abort() {
	if s.feedback != nil {
		s.feedback.Abort(s)
		s.feedback = nil
	}
	s.arc.surface.SetCursor(host.CursorPointer)
}

// apply converts the working pixel geometry to logical coordinates.
// Only the parts changed by the gesture are converted.
func (s *Session) apply() {
	a := s.arc
	if s.moved {
		a.center = a.surface.ToLogical(s.center)
	}
	if s.resized {
		sx, _ := a.surface.LogicalPerPixel()
		a.radius = float64(s.radius) * math.Abs(sx)
	}
	a.Build()
}

// restore puts back the geometry the arc had when the gesture began.
func (s *Session) restore() {
	s.arc.center, s.arc.radius = s.origCenter, s.origRadius
	s.arc.Build()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
