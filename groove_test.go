package groove_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zhk0567/groove"
)

func TestCenterline(t *testing.T) {
	var tests = []struct {
		angle, d, length float64
	}{
		{30, 10, 50},
		{45, 20, 100},
		{15, 3, 8},
		{80, 12, 200},
		{5, 40, 1},
	}
	for _, tc := range tests {
		pts := groove.Centerline(tc.angle, tc.d, tc.length, 2, 1, 100)
		if len(pts) < 11 {
			t.Errorf("angle=%g: got %d points, want at least 11", tc.angle, len(pts))
		}
		if pts[0].X != 0 || pts[0].Y != 0 {
			t.Errorf("angle=%g: first point %v, want origin", tc.angle, pts[0])
		}
		last := pts[len(pts)-1]
		if math.Abs(last.X-tc.length) > 1e-6*tc.length {
			t.Errorf("angle=%g: last x=%g, want %g", tc.angle, last.X, tc.length)
		}
		slope := math.Tan(tc.angle * math.Pi / 180)
		for i, p := range pts {
			if i > 0 && p.X <= pts[i-1].X {
				t.Errorf("angle=%g: x not strictly increasing at %d", tc.angle, i)
				break
			}
			if math.Abs(p.Y-p.X*slope) > 1e-9*(1+math.Abs(p.Y)) {
				t.Errorf("angle=%g: point %d off the developed helix line: %v", tc.angle, i, p)
				break
			}
		}
	}
}

func TestCenterlineConcrete(t *testing.T) {
	// pitch = pi*10/tan(30) = 54.414, revolutions = 50/54.414 = 0.919,
	// points = floor(91.9)+1 = 92.
	pts := groove.Centerline(30, 10, 50, 2, 1, 100)
	if len(pts) != 92 {
		t.Fatalf("got %d points, want 92", len(pts))
	}
	pitch := groove.Pitch(30, 10)
	if math.Abs(pitch-54.413980927026724) > 1e-9 {
		t.Errorf("pitch=%v", pitch)
	}
	last := pts[len(pts)-1]
	wantY := 50 * math.Tan(30*math.Pi/180) // 28.8675...
	if last.X != 50 || math.Abs(last.Y-wantY) > 1e-9 {
		t.Errorf("last point %v, want (50,%g)", last, wantY)
	}
}

func TestCenterlineDegenerate(t *testing.T) {
	// Angles at the domain edges must never leak NaN or Inf, and the
	// curve must stay drawable.
	for _, angle := range []float64{0, 90, -10, 180, 1e-300} {
		pts := groove.Centerline(angle, 10, 50, 2, 1, 100)
		if len(pts) < 11 {
			t.Errorf("angle=%g: got %d points, want at least 11", angle, len(pts))
		}
		for i, p := range pts {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				t.Fatalf("angle=%g: non-finite point %d: %v", angle, i, p)
			}
		}
	}
	// Zero length engages the pitch=1 branch of the fallback.
	pts := groove.Centerline(0, 10, 0, 2, 1, 100)
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("zero length: NaN point %d: %v", i, p)
		}
	}
}

func TestCenterlineSampleDensity(t *testing.T) {
	// Non-positive densities floor to the minimum drawable count.
	for _, ppr := range []int{0, -5, 1} {
		pts := groove.Centerline(30, 10, 50, 2, 1, ppr)
		if len(pts) != 11 {
			t.Errorf("ppr=%d: got %d points, want 11", ppr, len(pts))
		}
	}
	// Near-90 angles hit the sample cap instead of exhausting memory.
	pts := groove.Centerline(90, 10, 50, 2, 1, 100)
	if len(pts) > 1<<20+1 {
		t.Errorf("angle=90: %d points exceeds cap", len(pts))
	}
}

func TestBoundaries(t *testing.T) {
	const width = 2.0
	center := groove.Centerline(30, 10, 50, width, 1, 100)
	segs := groove.Boundaries(center, width)
	if len(segs) != len(center) {
		t.Fatalf("got %d segments, want %d", len(segs), len(center))
	}
	for i, s := range segs {
		c := center[i]
		if s.Left.X != c.X || s.Right.X != c.X {
			t.Errorf("segment %d: x coordinates %g,%g differ from centerline %g", i, s.Left.X, s.Right.X, c.X)
		}
		if math.Abs(s.Left.Y-s.Right.Y-width) > 1e-12 {
			t.Errorf("segment %d: band width %g, want %g", i, s.Left.Y-s.Right.Y, width)
		}
		if math.Abs(s.Left.Y+s.Right.Y-2*c.Y) > 1e-12 {
			t.Errorf("segment %d: band not centered on centerline", i)
		}
	}
}

func TestBoundariesShortCenterline(t *testing.T) {
	if segs := groove.Boundaries(nil, 2); segs != nil {
		t.Errorf("nil centerline: got %d segments, want none", len(segs))
	}
	one := groove.Centerline(30, 10, 50, 2, 1, 100)[:1]
	if segs := groove.Boundaries(one, 2); segs != nil {
		t.Errorf("single point centerline: got %d segments, want none", len(segs))
	}
}

func TestToolOutline(t *testing.T) {
	pts := groove.ToolOutline(20, 100)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	if pts[0] != pts[4] {
		t.Errorf("outline not closed: %v != %v", pts[0], pts[4])
	}
	want := [][2]float64{{0, -10}, {100, -10}, {100, 10}, {0, 10}, {0, -10}}
	for i, w := range want {
		if pts[i].X != w[0] || pts[i].Y != w[1] {
			t.Errorf("point %d: got %v, want %v", i, pts[i], w)
		}
	}
	// Degenerate inputs still return a closed 5 point sequence.
	pts = groove.ToolOutline(0, -1)
	if len(pts) != 5 || pts[0] != pts[4] {
		t.Errorf("degenerate outline: %v", pts)
	}
}

func TestIdempotence(t *testing.T) {
	a := groove.Centerline(30, 10, 50, 2, 1, 100)
	b := groove.Centerline(30, 10, 50, 2, 1, 100)
	if !reflect.DeepEqual(a, b) {
		t.Error("Centerline is not deterministic")
	}
	if !reflect.DeepEqual(groove.Boundaries(a, 2), groove.Boundaries(b, 2)) {
		t.Error("Boundaries is not deterministic")
	}
	if !reflect.DeepEqual(groove.ToolOutline(10, 50), groove.ToolOutline(10, 50)) {
		t.Error("ToolOutline is not deterministic")
	}
}
