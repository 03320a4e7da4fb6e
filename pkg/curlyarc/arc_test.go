package curlyarc

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/curlyarc-toolkit/pkg/host"
)

const eps = 1e-9

func TestLength(t *testing.T) {
	tests := []struct {
		phiMin, phiMax float64
		sweep          float64
	}{
		{0, 180, 180},
		{0, 360, 360},
		{45, 45, 0},
		{270, 90, 180},
		{350, 10, 20},
		{-90, 90, 180},
	}

	for _, tt := range tests {
		a := New(0, 0, 10, tt.phiMin, tt.phiMax, 0.02, 0.01)
		want := math.Pi * 10 * tt.sweep / 180
		if got := a.Length(); got != want {
			t.Errorf("Length(%g..%g): got %g, want %g", tt.phiMin, tt.phiMax, got, want)
		}
	}
}

func TestBuildScenario(t *testing.T) {
	for _, curly := range []bool{true, false} {
		a := New(0, 0, 10, 0, 180, 2, 1, WithCurly(curly))
		pts := a.Points()
		if len(pts) < 10 {
			t.Fatalf("curly=%v: only %d points", curly, len(pts))
		}

		for i, p := range pts {
			d := math.Hypot(p.X, p.Y)
			if math.Abs(d-10) > 1+eps {
				t.Errorf("curly=%v: point %d at distance %g", curly, i, d)
			}
			ang := math.Atan2(p.Y, p.X) * 180 / math.Pi
			if ang < -eps || ang > 180+eps {
				t.Errorf("curly=%v: point %d at angle %g", curly, i, ang)
			}
		}

		first, last := pts[0], pts[len(pts)-1]
		if math.Abs(first.X-10) > eps || math.Abs(first.Y) > eps {
			t.Errorf("curly=%v: first point %v, want (10, 0)", curly, first)
		}
		if math.Abs(last.X+10) > eps || math.Abs(last.Y) > eps {
			t.Errorf("curly=%v: last point %v, want (-10, 0)", curly, last)
		}
	}
}

func TestBuildAspect(t *testing.T) {
	// 2 logical units across 1000 pixels, 1 unit across 250 pixels
	pad := host.NewPad(1000, 250, 0, 0, 2, 1)
	a := New(1, 0.5, 0.5, 90, 90, 0.02, 0.01, WithSurface(pad))

	// zero sweep: a straight two-point line collapsed at phiMin
	pts := a.Points()
	if len(pts) != 2 {
		t.Fatalf("got %d points", len(pts))
	}
	sx, sy := pad.LogicalPerPixel()
	wantY := 0.5 + (0.5/sx)*math.Abs(sy)
	if math.Abs(pts[0].X-1) > eps || math.Abs(pts[0].Y-wantY) > eps {
		t.Errorf("got %v, want (1, %g)", pts[0], wantY)
	}
}

type fixedBuilder []vec.Vec2

func (b fixedBuilder) Build(float64, float64, float64, bool) []vec.Vec2 { return b }

func TestBuildCustomBuilder(t *testing.T) {
	b := fixedBuilder{{X: 0, Y: 0}, {X: 0, Y: 2}}
	a := New(1, 1, 10, 90, 180, 1, 1, WithBuilder(b))

	pts := a.Points()
	want := []vec.Vec2{{X: 1, Y: 11}, {X: 1, Y: 13}}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > eps || math.Abs(pts[i].Y-want[i].Y) > eps {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestZeroArcBuildsLazily(t *testing.T) {
	var a Arc
	pts := a.Points()
	if len(pts) != 2 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		if p != (vec.Vec2{}) {
			t.Errorf("zero arc point %v, want origin", p)
		}
	}
	if a.PixelPoints() != nil {
		t.Error("PixelPoints without a surface should be nil")
	}
}

func TestSettersRebuild(t *testing.T) {
	pad := host.NewPad(100, 100, 0, 0, 1, 1)
	a := New(0.5, 0.5, 0.2, 0, 90, 0.02, 0.01, WithSurface(pad))
	rev := pad.Revision

	a.SetRadius(0.3)
	a.SetCenter(0.4, 0.4)
	a.SetPhiMin(10)
	a.SetPhiMax(100)
	a.SetWaveLength(0.03)
	a.SetAmplitude(0.02)
	a.SetWavy()
	a.SetLineColor(2)

	if pad.Revision-rev != 8 {
		t.Errorf("got %d redraw requests, want 8", pad.Revision-rev)
	}
	if a.IsCurly() {
		t.Error("SetWavy should clear curly")
	}
	a.SetCurly()
	if !a.IsCurly() {
		t.Error("SetCurly should set curly")
	}

	p := a.Points()[0]
	want := vec.Vec2{X: 0.4 + 0.3*math.Cos(10*math.Pi/180), Y: 0.4 + 0.3*math.Sin(10*math.Pi/180)}
	if math.Abs(p.X-want.X) > eps || math.Abs(p.Y-want.Y) > eps {
		t.Errorf("first point %v, want %v", p, want)
	}
}

func TestPath(t *testing.T) {
	a := New(0, 0, 10, 0, 90, 2, 1)
	p := a.Path()
	if len(p.Cmds) != len(a.Points()) {
		t.Fatalf("got %d commands for %d points", len(p.Cmds), len(a.Points()))
	}
	if p.Cmds[0] != path.CmdMoveTo {
		t.Errorf("first command %v, want MoveTo", p.Cmds[0])
	}
	for _, c := range p.Cmds[1:] {
		if c != path.CmdLineTo {
			t.Fatalf("command %v, want LineTo", c)
		}
	}
}

func TestDefaults(t *testing.T) {
	d := NewDefaults()
	if d.WaveLength() != DefaultWaveLength || d.Amplitude() != DefaultAmplitude || d.IsCurly() != DefaultIsCurly {
		t.Fatalf("unexpected initial defaults %+v", d)
	}

	d.SetAmplitude(0.5)
	d.SetWaveLength(0.25)
	d.SetIsCurly(false)

	a := d.New(0, 0, 1, 0, 90)
	if a.Amplitude() != 0.5 || a.WaveLength() != 0.25 || a.IsCurly() {
		t.Errorf("arc did not pick up defaults: amp %g wl %g curly %v", a.Amplitude(), a.WaveLength(), a.IsCurly())
	}

	b := d.New(0, 0, 1, 0, 90, WithAmplitude(0.1), WithCurly(true))
	if b.Amplitude() != 0.1 || b.WaveLength() != 0.25 || !b.IsCurly() {
		t.Errorf("options should override defaults: amp %g wl %g curly %v", b.Amplitude(), b.WaveLength(), b.IsCurly())
	}

	other := NewDefaults()
	if other.Amplitude() != DefaultAmplitude {
		t.Error("Defaults must not share state")
	}
}

func TestHitTest(t *testing.T) {
	pad := host.NewPad(1000, 1000, 0, 0, 1, 1)

	point := func(theta float64) (int, int) {
		p := pad.ToPixel(vec.Vec2{
			X: 0.5 + 0.25*math.Cos(theta*math.Pi/180),
			Y: 0.5 + 0.25*math.Sin(theta*math.Pi/180),
		})
		return p.X, p.Y
	}

	tests := []struct {
		phiMin, phiMax float64
		theta          float64
		hit            bool
	}{
		{0, 180, 90, true},
		{0, 180, 0, true},
		{0, 180, 270, false},
		{0, 360, 200, true},
		{270, 90, 0, true},
		{270, 90, 315, true},
		{270, 90, 180, false},
		{-45, 45, 30, true},
		{-45, 45, 90, false},
		{400, 450, 60, true},
	}

	for _, tt := range tests {
		a := New(0.5, 0.5, 0.25, tt.phiMin, tt.phiMax, 0.02, 0.01, WithSurface(pad))
		px, py := point(tt.theta)
		d := a.DistanceToPrimitive(px, py)
		if tt.hit && d != 0 {
			t.Errorf("%g..%g at %g: got %d, want 0", tt.phiMin, tt.phiMax, tt.theta, d)
		}
		if !tt.hit && d != NotNear {
			t.Errorf("%g..%g at %g: got %d, want %d", tt.phiMin, tt.phiMax, tt.theta, d, NotNear)
		}
	}

	a := New(0.5, 0.5, 0.25, 0, 360, 0.02, 0.01, WithSurface(pad))
	if d := a.DistanceToPrimitive(500, 500); d != 250 {
		t.Errorf("distance from center: got %d, want 250", d)
	}

	detached := New(0.5, 0.5, 0.25, 0, 360, 0.02, 0.01)
	if d := detached.DistanceToPrimitive(750, 500); d != NotNear {
		t.Errorf("detached: got %d", d)
	}
}
