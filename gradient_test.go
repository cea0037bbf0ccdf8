package vg

import "testing"

func TestColorAtOffsetEmptyStops(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != Transparent {
		t.Errorf("colorAtOffset(nil) = %v, want Transparent", got)
	}
}

func TestColorAtOffsetSingleStop(t *testing.T) {
	stops := Stops{{Offset: 0.5, Color: Red}}
	if got := colorAtOffset(stops, 0.9); got != Red {
		t.Errorf("colorAtOffset single stop = %v, want Red regardless of t", got)
	}
}

func TestColorAtOffsetClampsEnds(t *testing.T) {
	stops := Stops{{Offset: 0.2, Color: Red}, {Offset: 0.8, Color: Blue}}
	if got := colorAtOffset(stops, -1); got != Red {
		t.Errorf("colorAtOffset(-1) = %v, want first stop color Red", got)
	}
	if got := colorAtOffset(stops, 2); got != Blue {
		t.Errorf("colorAtOffset(2) = %v, want last stop color Blue", got)
	}
}

func TestColorAtOffsetInterpolates(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Black}, {Offset: 1, Color: White}}
	mid := colorAtOffset(stops, 0.5)
	if mid.R < 0.1 || mid.R > 0.9 {
		t.Errorf("midpoint of black->white gradient = %v, want a mid-gray value", mid)
	}
}

func TestColorAtOffsetUnsortedInput(t *testing.T) {
	stops := Stops{{Offset: 1, Color: White}, {Offset: 0, Color: Black}}
	if got := colorAtOffset(stops, 0); got != Black {
		t.Errorf("colorAtOffset should sort stops before evaluating, got %v at t=0", got)
	}
}

func TestAxialColorAtDegenerate(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	got := axialColorAt(stops, Pt(1, 1), Pt(1, 1), Pt(5, 5))
	if got != Red {
		t.Errorf("degenerate axial gradient (p1==p2) = %v, want first stop color", got)
	}
}

func TestAxialColorAtEndpoints(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	if got := axialColorAt(stops, Pt(0, 0), Pt(10, 0), Pt(0, 0)); got != Red {
		t.Errorf("axialColorAt at p1 = %v, want Red", got)
	}
	if got := axialColorAt(stops, Pt(0, 0), Pt(10, 0), Pt(10, 0)); got != Blue {
		t.Errorf("axialColorAt at p2 = %v, want Blue", got)
	}
}

func TestRadialColorAtCenter(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	got := radialColorAt(stops, Pt(0, 0), Pt(0, 0), 10, Pt(0, 0))
	if got != Red {
		t.Errorf("radialColorAt at the focus/center = %v, want Red", got)
	}
}

func TestRadialColorAtZeroRadius(t *testing.T) {
	stops := Stops{{Offset: 0, Color: Red}, {Offset: 1, Color: Blue}}
	got := radialColorAt(stops, Pt(0, 0), Pt(0, 0), 0, Pt(5, 5))
	if got != Red {
		t.Errorf("radialColorAt with r=0 = %v, want first stop color", got)
	}
}
