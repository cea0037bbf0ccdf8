package vg

import "testing"

// invariant 2: LinearFold always starts a subpath with FlatSub, and the
// number of FlatSub events equals the number of Sub segments.
func TestInvariant2LinearFoldStartsWithSub(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).QcurveTo(Pt(1, 1), Pt(2, 0)).Close().
		Sub(Pt(5, 5)).LineTo(Pt(6, 6))

	var events []FlatEvent
	events = LinearFold(p, 1e-3, events, func(acc []FlatEvent, e FlatEvent) []FlatEvent {
		return append(acc, e)
	})

	if len(events) == 0 {
		t.Fatal("expected at least one event")
	}
	if _, ok := events[0].(FlatSub); !ok {
		t.Errorf("first event = %T, want FlatSub", events[0])
	}

	subCount := 0
	for _, e := range events {
		if _, ok := e.(FlatSub); ok {
			subCount++
		}
	}
	if subCount != 2 {
		t.Errorf("FlatSub count = %d, want 2 (matching the 2 Sub segments)", subCount)
	}
}

func TestLinearFoldLineOnlyPathIsIdentity(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1))

	var pts []P2
	pts = LinearFold(p, 1e-3, pts, func(acc []P2, e FlatEvent) []P2 {
		switch ev := e.(type) {
		case FlatSub:
			return append(acc, ev.P)
		case FlatLine:
			return append(acc, ev.P)
		}
		return acc
	})

	want := []P2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

// S2: Circle((0,0),1) flattened at tol=1e-3 yields >= 32 segments, all
// within tol of the unit circle.
func TestS2FlattenCircle(t *testing.T) {
	p := Circle(Pt(0, 0), 1)

	var pts []P2
	pts = LinearFold(p, 1e-3, pts, func(acc []P2, e FlatEvent) []P2 {
		switch ev := e.(type) {
		case FlatSub:
			return append(acc, ev.P)
		case FlatLine:
			return append(acc, ev.P)
		}
		return acc
	})

	if len(pts) < 32 {
		t.Errorf("got %d flattened points, want >= 32", len(pts))
	}
	for _, pt := range pts {
		dist := pt.Sub(Pt(0, 0)).Length()
		if dist < 1-1e-3-1e-9 || dist > 1+1e-3+1e-9 {
			t.Errorf("flattened point %v has radius %v, want within 1e-3 of 1", pt, dist)
		}
	}
}

func TestSampleUniformSpacing(t *testing.T) {
	p := EmptyPath().Sub(Pt(0, 0)).LineTo(Pt(10, 0))

	var pts []P2
	pts = Sample(p, 1e-3, 2, pts, func(acc []P2, e SampleEvent) []P2 {
		return append(acc, e.P)
	})

	if len(pts) < 2 {
		t.Fatalf("expected multiple samples along a length-10 line, got %d", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1]).Length()
		if d < 2-1e-6 || d > 2+1e-6 {
			t.Errorf("sample spacing[%d] = %v, want 2", i, d)
		}
	}
}

func TestCubicEarcEndpointsMatch(t *testing.T) {
	s := Earc{Large: false, CW: false, Angle: 0, Radii: Vec(1, 1), P: Pt(0, 1)}
	p0 := Pt(1, 0)

	var last P2
	count := 0
	CubicEarc(p0, s, 1e-3, struct{}{}, func(acc struct{}, c1, c2, end P2) struct{} {
		count++
		last = end
		return acc
	})

	if count == 0 {
		t.Fatal("expected at least one cubic leaf")
	}
	if !last.Approx(s.P, 1e-6) {
		t.Errorf("last leaf endpoint = %v, want %v", last, s.P)
	}
}
