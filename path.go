package vg

// Segment is one element of a Path: Sub, Line, Qcurve, Ccurve, Earc or
// Close (§3.2). The interface is sealed — isSegment is unexported, so
// only this package can introduce new segment kinds.
type Segment interface {
	isSegment()
}

// Sub begins a new subpath at absolute point P.
type Sub struct{ P P2 }

// Line draws a straight line to P.
type Line struct{ P P2 }

// Qcurve draws a quadratic Bézier with control point C to endpoint P.
type Qcurve struct{ C, P P2 }

// Ccurve draws a cubic Bézier with control points C1, C2 to endpoint P.
type Ccurve struct{ C1, C2, P P2 }

// Earc draws an elliptic arc to P. Large selects the 180°+ arc, CW the
// clockwise arc; Angle is the ellipse's x-axis rotation in radians and
// Radii = (rx, ry).
type Earc struct {
	Large, CW bool
	Angle     float64
	Radii     V2
	P         P2
}

// Close closes the current subpath.
type Close struct{}

func (Sub) isSegment()    {}
func (Line) isSegment()   {}
func (Qcurve) isSegment() {}
func (Ccurve) isSegment() {}
func (Earc) isSegment()   {}
func (Close) isSegment()  {}

// segNode is one link of the reverse-order (most-recent-first) storage
// a Path uses internally so that every builder op is an O(1) cons onto
// a shared, immutable tail (§3.2 invariant 1: "underlying ordered
// storage may be maintained in reverse for O(1) append").
type segNode struct {
	seg  Segment
	prev *segNode
}

// Path is an immutable, finite ordered sequence of segments. The zero
// value is the empty path.
type Path struct {
	head *segNode
	n    int

	// subStart is the absolute start point of the current (most recent)
	// subpath; it survives a Close so a later implicit Sub can reuse it.
	subStart P2
	// current is the endpoint of the most recently appended non-Close
	// segment (the glossary's "current point").
	current    P2
	hasCurrent bool
	// subOpen is true exactly when the current subpath consists of only
	// its Sub segment so far (no Line/Qcurve/Ccurve/Earc/Close yet).
	subOpen bool
	// lastWasClose is true exactly when the most recently appended
	// segment was Close.
	lastWasClose bool
}

// EmptyPath is the unique path with zero segments.
func EmptyPath() Path { return Path{} }

// IsEmpty reports whether p has zero segments.
func (p Path) IsEmpty() bool { return p.n == 0 }

// Len returns the number of segments in p.
func (p Path) Len() int { return p.n }

// HasCurrentPoint reports whether p has a defined current point.
func (p Path) HasCurrentPoint() bool { return p.hasCurrent }

// CurrentPoint returns the current point of p, or ErrEmptyPath if p has
// none (§3.2 invariant 4).
func (p Path) CurrentPoint() (P2, error) {
	if !p.hasCurrent {
		return P2{}, ErrEmptyPath
	}
	return p.current, nil
}

// Segments materializes p's segments in forward (construction) order.
func (p Path) Segments() []Segment {
	out := make([]Segment, p.n)
	node := p.head
	for i := p.n - 1; i >= 0; i-- {
		out[i] = node.seg
		node = node.prev
	}
	return out
}

// Fold left-folds f over p's segments in forward order (or reverse, if
// rev is true), threading an accumulator — the functional-core
// counterpart to Segments for callers that don't want to materialize a
// slice (§4.2's `fold ?rev f acc p`).
func Fold[A any](p Path, rev bool, acc A, f func(A, Segment) A) A {
	if !rev {
		for _, s := range p.Segments() {
			acc = f(acc, s)
		}
		return acc
	}
	for node := p.head; node != nil; node = node.prev {
		acc = f(acc, node.seg)
	}
	return acc
}
