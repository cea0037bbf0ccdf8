package vg

// Equal reports whether p and other have exactly the same segments in
// the same order, comparing floating point fields with ==  (§4.2's
// strict `equal`).
func (p Path) Equal(other Path) bool {
	if p.n != other.n {
		return false
	}
	a, b := p.Segments(), other.Segments()
	for i := range a {
		if !segmentEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Approx reports whether p and other have the same segment sequence up
// to epsilon on every coordinate (§4.2's tolerant `equal`).
func (p Path) Approx(other Path, epsilon float64) bool {
	if p.n != other.n {
		return false
	}
	a, b := p.Segments(), other.Segments()
	for i := range a {
		if !segmentApprox(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func segmentEqual(x, y Segment) bool {
	switch xs := x.(type) {
	case Sub:
		ys, ok := y.(Sub)
		return ok && xs.P == ys.P
	case Line:
		ys, ok := y.(Line)
		return ok && xs.P == ys.P
	case Qcurve:
		ys, ok := y.(Qcurve)
		return ok && xs.C == ys.C && xs.P == ys.P
	case Ccurve:
		ys, ok := y.(Ccurve)
		return ok && xs.C1 == ys.C1 && xs.C2 == ys.C2 && xs.P == ys.P
	case Earc:
		ys, ok := y.(Earc)
		return ok && xs.Large == ys.Large && xs.CW == ys.CW &&
			xs.Angle == ys.Angle && xs.Radii == ys.Radii && xs.P == ys.P
	case Close:
		_, ok := y.(Close)
		return ok
	}
	return false
}

func segmentApprox(x, y Segment, epsilon float64) bool {
	switch xs := x.(type) {
	case Sub:
		ys, ok := y.(Sub)
		return ok && xs.P.Approx(ys.P, epsilon)
	case Line:
		ys, ok := y.(Line)
		return ok && xs.P.Approx(ys.P, epsilon)
	case Qcurve:
		ys, ok := y.(Qcurve)
		return ok && xs.C.Approx(ys.C, epsilon) && xs.P.Approx(ys.P, epsilon)
	case Ccurve:
		ys, ok := y.(Ccurve)
		return ok && xs.C1.Approx(ys.C1, epsilon) && xs.C2.Approx(ys.C2, epsilon) &&
			xs.P.Approx(ys.P, epsilon)
	case Earc:
		ys, ok := y.(Earc)
		if !ok || xs.Large != ys.Large || xs.CW != ys.CW {
			return false
		}
		return absf(xs.Angle-ys.Angle) <= epsilon &&
			xs.Radii.Approx(ys.Radii, epsilon) && xs.P.Approx(ys.P, epsilon)
	case Close:
		_, ok := y.(Close)
		return ok
	}
	return false
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Compare gives a strict total order over paths (§4.2's compare):
// segments compare pairwise by kind, then by field, using default
// float ordering; a path that is a proper prefix of another sorts
// first.
func (p Path) Compare(other Path) int {
	return p.compare(other, compareFloat)
}

// CompareApprox is Compare's epsilon-tolerant counterpart: floats
// within epsilon of each other compare equal.
func (p Path) CompareApprox(other Path, epsilon float64) int {
	return p.compare(other, compareFloatEps(epsilon))
}

func (p Path) compare(other Path, cmp func(a, b float64) int) int {
	a, b := p.Segments(), other.Segments()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := segmentCompare(a[i], b[i], cmp); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloatEps returns a comparator that treats two floats within
// epsilon of each other as equal.
func compareFloatEps(epsilon float64) func(a, b float64) int {
	return func(a, b float64) int {
		switch d := a - b; {
		case d > epsilon:
			return 1
		case d < -epsilon:
			return -1
		default:
			return 0
		}
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func comparePoint(a, b P2, cmp func(x, y float64) int) int {
	if c := cmp(a.X, b.X); c != 0 {
		return c
	}
	return cmp(a.Y, b.Y)
}

func compareVec2(a, b V2, cmp func(x, y float64) int) int {
	if c := cmp(a.X, b.X); c != 0 {
		return c
	}
	return cmp(a.Y, b.Y)
}

// segmentKindOrder fixes an arbitrary but stable total order over
// segment kinds, matching the order they're declared in path.go.
func segmentKindOrder(s Segment) int {
	switch s.(type) {
	case Sub:
		return 0
	case Line:
		return 1
	case Qcurve:
		return 2
	case Ccurve:
		return 3
	case Earc:
		return 4
	case Close:
		return 5
	}
	return 6
}

// segmentCompare orders two segments: first by kind, then — per §4.2's
// "Earc compares (large, cw) as booleans, then angle and radii and
// endpoint" — by field, using cmp for every float comparison.
func segmentCompare(x, y Segment, cmp func(a, b float64) int) int {
	if kx, ky := segmentKindOrder(x), segmentKindOrder(y); kx != ky {
		return cmpInt(kx, ky)
	}
	switch xs := x.(type) {
	case Sub:
		return comparePoint(xs.P, y.(Sub).P, cmp)
	case Line:
		return comparePoint(xs.P, y.(Line).P, cmp)
	case Qcurve:
		ys := y.(Qcurve)
		if c := comparePoint(xs.C, ys.C, cmp); c != 0 {
			return c
		}
		return comparePoint(xs.P, ys.P, cmp)
	case Ccurve:
		ys := y.(Ccurve)
		if c := comparePoint(xs.C1, ys.C1, cmp); c != 0 {
			return c
		}
		if c := comparePoint(xs.C2, ys.C2, cmp); c != 0 {
			return c
		}
		return comparePoint(xs.P, ys.P, cmp)
	case Earc:
		ys := y.(Earc)
		if c := compareBool(xs.Large, ys.Large); c != 0 {
			return c
		}
		if c := compareBool(xs.CW, ys.CW); c != 0 {
			return c
		}
		if c := cmp(xs.Angle, ys.Angle); c != 0 {
			return c
		}
		if c := compareVec2(xs.Radii, ys.Radii, cmp); c != 0 {
			return c
		}
		return comparePoint(xs.P, ys.P, cmp)
	case Close:
		return 0
	}
	return 0
}
