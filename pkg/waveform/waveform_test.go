package waveform

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestBuildEndpoints(t *testing.T) {
	for _, curly := range []bool{true, false} {
		pts := Build(100, 10, 2, curly)
		if len(pts) < 3 {
			t.Fatalf("curly=%v: expected a waveform, got %d points", curly, len(pts))
		}
		first, last := pts[0], pts[len(pts)-1]
		if first.X != 0 || first.Y != 0 {
			t.Errorf("curly=%v: first point %v, want origin", curly, first)
		}
		if last.X != 100 || last.Y != 0 {
			t.Errorf("curly=%v: last point %v, want (100, 0)", curly, last)
		}
	}
}

func TestBuildStaysInsideBand(t *testing.T) {
	tests := []struct {
		length, wave, amp float64
		curly             bool
	}{
		{100, 10, 2, true},
		{100, 10, 2, false},
		{31.4, 2, 1, true},
		{7.3, 0.9, 0.4, true},
		{7.3, 0.9, 0.4, false},
	}

	for _, tt := range tests {
		pts := Build(tt.length, tt.wave, tt.amp, tt.curly)
		minX, minY, maxX, maxY := Bounds(pts)
		if minX < -eps || maxX > tt.length+eps {
			t.Errorf("%+v: x range [%.4f, %.4f] outside [0, %.4f]", tt, minX, maxX, tt.length)
		}
		if minY < -tt.amp-eps || maxY > tt.amp+eps {
			t.Errorf("%+v: y range [%.4f, %.4f] outside amplitude", tt, minY, maxY)
		}
	}
}

func TestBuildWavyIsMonotonic(t *testing.T) {
	pts := Build(50, 5, 1, false)
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X-eps {
			t.Fatalf("point %d goes backwards: %.4f after %.4f", i, pts[i].X, pts[i-1].X)
		}
	}
}

func TestBuildCurlyLoopsBack(t *testing.T) {
	pts := Build(50, 5, 2, true)
	backwards := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			backwards++
		}
	}
	if backwards == 0 {
		t.Error("curly pattern should contain backward loop segments")
	}
}

func TestBuildDegenerate(t *testing.T) {
	tests := []struct {
		name              string
		length, wave, amp float64
	}{
		{"zero length", 0, 1, 1},
		{"zero wavelength", 10, 0, 1},
		{"zero amplitude", 10, 1, 0},
		{"too short for a loop", 1, 10, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Build(tt.length, tt.wave, tt.amp, true)
			if len(pts) != 2 {
				t.Fatalf("expected straight line, got %d points", len(pts))
			}
			if pts[1].X != tt.length {
				t.Errorf("end X: got %.4f, want %.4f", pts[1].X, tt.length)
			}
		})
	}
}

func TestBuildPointCount(t *testing.T) {
	// 10 half periods of 5 fit exactly in 50
	pts := Build(50, 10, 1, false)
	want := 10*StepsPerPeriod/2 + 3
	if len(pts) != want {
		t.Errorf("point count: got %d, want %d", len(pts), want)
	}
	if math.Abs(pts[1].X) > eps {
		t.Errorf("no slack expected before the first period, got %.4f", pts[1].X)
	}
}

func TestStandardBuilder(t *testing.T) {
	var b Builder = Standard{}
	got := b.Build(20, 4, 1, true)
	want := Build(20, 4, 1, true)
	if len(got) != len(want) {
		t.Fatalf("Standard.Build: %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("point %d differs: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestBoundsEmpty(t *testing.T) {
	minX, minY, maxX, maxY := Bounds(nil)
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Error("Bounds(nil) should be zero")
	}
}

func TestBuildRejectsOversizedPatterns(t *testing.T) {
	tests := []struct {
		name                     string
		length, waveLength, ampl float64
	}{
		{"too many periods", 1e9, 1e-3, 1e-4},
		{"infinite length", math.Inf(1), 1, 0.1},
		{"nan wavelength", 10, math.NaN(), 0.1},
	}
	for _, tt := range tests {
		pts := Build(tt.length, tt.waveLength, tt.ampl, true)
		if len(pts) != 2 {
			t.Errorf("%s: got %d points, want a plain line", tt.name, len(pts))
		}
	}
}
