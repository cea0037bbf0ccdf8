package meta

import "fmt"

// Date is the (year, month, day) / (hour, minute, second) pair used by
// the CreationDate key (§3.5).
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

func compareOrdered[T comparable](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		if a == b {
			return 0
		}
		if less(a, b) {
			return -1
		}
		return 1
	}
}

func compareStrings(a, b string) int { return compareOrdered(func(a, b string) bool { return a < b })(a, b) }

func compareStringSlices(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareStrings(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func formatStringSlice(ss []string) string { return fmt.Sprintf("%v", ss) }

// Resolution is the standard key for an image's intended output
// resolution, a V2-shaped pair stored as [2]float64 to avoid this
// package depending on the root vg package's geometry types.
var Resolution = NewKey[[2]float64]("resolution",
	func(v [2]float64) string { return fmt.Sprintf("%gx%g", v[0], v[1]) },
	func(a, b [2]float64) int {
		if a[0] != b[0] {
			return compareOrdered(func(a, b float64) bool { return a < b })(a[0], b[0])
		}
		return compareOrdered(func(a, b float64) bool { return a < b })(a[1], b[1])
	})

// Title is the standard key for a document title.
var Title = NewKey[string]("title", nil, compareStrings)

// Authors is the standard key for a document's author list.
var Authors = NewKey[[]string]("authors", formatStringSlice, compareStringSlices)

// Creator is the standard key for the name of the tool that produced
// the document.
var Creator = NewKey[string]("creator", nil, compareStrings)

// Keywords is the standard key for a document's keyword list.
var Keywords = NewKey[[]string]("keywords", formatStringSlice, compareStringSlices)

// Subject is the standard key for a document's subject line.
var Subject = NewKey[string]("subject", nil, compareStrings)

// Description is the standard key for a free-form document description.
var Description = NewKey[string]("description", nil, compareStrings)

// CreationDate is the standard key for a document's creation timestamp.
var CreationDate = NewKey[Date]("creation_date", Date.String, func(a, b Date) int {
	return compareStrings(a.String(), b.String())
})
