package vg

import "errors"

// Invalid-argument errors (§7). Each is a distinct sentinel so callers
// can discriminate with errors.Is.
var (
	// ErrEmptyPath is returned by CurrentPoint, the query that needs a
	// current point, on an empty Path.
	ErrEmptyPath = errors.New("vg: operation requires a non-empty path")

	// ErrBoundsOutOfRange is the sentinel for the bounds-out-of-range
	// kind of invalid argument. No function in this package returns it;
	// Bounds and the Box2 operations report no errors.
	ErrBoundsOutOfRange = errors.New("vg: bounds out of range")
)
