package vg

import "testing"

func approxInSlice(t *testing.T, got []float64, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if d := got[i] - want[i]; d > eps || d < -eps {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = 0 -> roots 1, 2
	approxInSlice(t, SolveQuadratic(1, -3, 2), []float64{1, 2}, 1e-9)
}

func TestSolveQuadraticDoubleRoot(t *testing.T) {
	// x^2 - 2x + 1 = 0 -> double root at 1
	approxInSlice(t, SolveQuadratic(1, -2, 1), []float64{1}, 1e-9)
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	if got := SolveQuadratic(1, 0, 1); got != nil {
		t.Errorf("SolveQuadratic(1,0,1) = %v, want nil", got)
	}
}

func TestSolveQuadraticLinearFallback(t *testing.T) {
	// a == 0: 2x + 4 = 0 -> x = -2
	approxInSlice(t, SolveQuadratic(0, 2, 4), []float64{-2}, 1e-9)
}

func TestSolveCubicThreeRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	roots := SolveCubic(1, -6, 11, -6)
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3: %v", len(roots), roots)
	}
	sum := roots[0] + roots[1] + roots[2]
	if d := sum - 6; d > 1e-9 || d < -1e-9 {
		t.Errorf("sum of roots = %v, want 6", sum)
	}
}

func TestSolveCubicOneRealRoot(t *testing.T) {
	// x^3 + x + 1 = 0 has exactly one real root, near -0.6823
	roots := SolveCubic(1, 0, 1, 1)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1: %v", len(roots), roots)
	}
	if d := roots[0] - (-0.6823278); d > 1e-5 || d < -1e-5 {
		t.Errorf("root = %v, want ~-0.6823278", roots[0])
	}
}

func TestSolveQuadraticInUnitIntervalFiltersOutOfRange(t *testing.T) {
	// roots at 0.5 and 3 -> (x-0.5)(x-3) = x^2 - 3.5x + 1.5
	got := SolveQuadraticInUnitInterval(1, -3.5, 1.5)
	approxInSlice(t, got, []float64{0.5}, 1e-9)
}

func TestSolveQuadraticInUnitIntervalClampsNearBoundary(t *testing.T) {
	// root at exactly 1
	got := SolveQuadraticInUnitInterval(1, -2, 1)
	approxInSlice(t, got, []float64{1}, 1e-9)
}

func TestSolveCubicInUnitIntervalFiltersOutOfRange(t *testing.T) {
	roots := SolveCubicInUnitInterval(1, -6, 11, -6) // roots 1,2,3
	approxInSlice(t, roots, []float64{1}, 1e-9)
}
