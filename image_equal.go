package vg

import "github.com/monstasat/vg/meta"

// ImageEqual reports whether a and b are structurally identical,
// comparing floats with ==. Traversal is iterative (an explicit work
// stack) so a deep tree cannot exhaust the call stack (§4.3).
func ImageEqual(a, b Image) bool {
	type pair struct{ a, b Image }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x := p.a.(type) {
		case Primitive:
			y, ok := p.b.(Primitive)
			if !ok || !primitiveEqual(x, y) {
				return false
			}
		case Cut:
			y, ok := p.b.(Cut)
			if !ok || compareArea(x.Area, y.Area, compareFloat) != 0 || !x.Path.Equal(y.Path) {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Blend:
			y, ok := p.b.(Blend)
			if !ok || x.Blender != y.Blender || x.HasAlpha != y.HasAlpha || (x.HasAlpha && x.Alpha != y.Alpha) {
				return false
			}
			stack = append(stack, pair{x.Src, y.Src}, pair{x.Dst, y.Dst})
		case Tr:
			y, ok := p.b.(Tr)
			if !ok || x.Matrix() != y.Matrix() {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Meta:
			y, ok := p.b.(Meta)
			if !ok || !meta.Equal(x.Meta, y.Meta) {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		default:
			return false
		}
	}
	return true
}

func primitiveEqual(x, y Primitive) bool {
	if x.kind != y.kind {
		return false
	}
	switch x.kind {
	case PrimConst:
		return x.color == y.color
	case PrimAxial:
		return x.p1 == y.p1 && x.p2 == y.p2 && stopsEqual(x.stops, y.stops)
	case PrimRadial:
		return x.focus == y.focus && x.center == y.center && x.radius == y.radius && stopsEqual(x.stops, y.stops)
	case PrimRaster:
		return x.bounds == y.bounds && x.raster.Equal(y.raster)
	}
	return false
}

func stopsEqual(a, b Stops) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ImageApprox is ImageEqual's epsilon-tolerant counterpart: floats
// compare within epsilon, and Blend's Alpha and Area/Outline widths
// likewise.
func ImageApprox(a, b Image, epsilon float64) bool {
	type pair struct{ a, b Image }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x := p.a.(type) {
		case Primitive:
			y, ok := p.b.(Primitive)
			if !ok || !primitiveApprox(x, y, epsilon) {
				return false
			}
		case Cut:
			y, ok := p.b.(Cut)
			if !ok || compareArea(x.Area, y.Area, compareFloatEps(epsilon)) != 0 || !x.Path.Approx(y.Path, epsilon) {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Blend:
			y, ok := p.b.(Blend)
			if !ok || x.Blender != y.Blender || x.HasAlpha != y.HasAlpha ||
				(x.HasAlpha && absf(x.Alpha-y.Alpha) > epsilon) {
				return false
			}
			stack = append(stack, pair{x.Src, y.Src}, pair{x.Dst, y.Dst})
		case Tr:
			y, ok := p.b.(Tr)
			if !ok || !matrixApprox(x.Matrix(), y.Matrix(), epsilon) {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Meta:
			y, ok := p.b.(Meta)
			if !ok || !meta.Equal(x.Meta, y.Meta) {
				return false
			}
			stack = append(stack, pair{x.Image, y.Image})
		default:
			return false
		}
	}
	return true
}

func primitiveApprox(x, y Primitive, epsilon float64) bool {
	if x.kind != y.kind {
		return false
	}
	switch x.kind {
	case PrimConst:
		return x.color.Approx(y.color, epsilon)
	case PrimAxial:
		return x.p1.Approx(y.p1, epsilon) && x.p2.Approx(y.p2, epsilon) && stopsApprox(x.stops, y.stops, epsilon)
	case PrimRadial:
		return x.focus.Approx(y.focus, epsilon) && x.center.Approx(y.center, epsilon) &&
			absf(x.radius-y.radius) <= epsilon && stopsApprox(x.stops, y.stops, epsilon)
	case PrimRaster:
		return x.bounds.Approx(y.bounds, epsilon) && x.raster.Equal(y.raster)
	}
	return false
}

func stopsApprox(a, b Stops, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if absf(a[i].Offset-b[i].Offset) > epsilon || !a[i].Color.Approx(b[i].Color, epsilon) {
			return false
		}
	}
	return true
}

func matrixApprox(a, b M3, epsilon float64) bool {
	return absf(a.A-b.A) <= epsilon && absf(a.B-b.B) <= epsilon && absf(a.C-b.C) <= epsilon &&
		absf(a.D-b.D) <= epsilon && absf(a.E-b.E) <= epsilon && absf(a.F-b.F) <= epsilon
}

// ImagePretty renders img as indented text, one line per node, via an
// iterative traversal (§4.3). Used by backends and cmd/vgdump to
// inspect a tree without provoking recursion on deep inputs.
func ImagePretty(img Image) string {
	type frame struct {
		img   Image
		depth int
	}
	var out string
	stack := []frame{{img, 0}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		indent := ""
		for i := 0; i < fr.depth; i++ {
			indent += "  "
		}
		switch x := fr.img.(type) {
		case Primitive:
			out += indent + prettyPrimitive(x) + "\n"
		case Cut:
			out += indent + "Cut\n"
			stack = append(stack, frame{x.Image, fr.depth + 1})
		case Blend:
			out += indent + "Blend\n"
			stack = append(stack, frame{x.Dst, fr.depth + 1}, frame{x.Src, fr.depth + 1})
		case Tr:
			out += indent + "Tr\n"
			stack = append(stack, frame{x.Image, fr.depth + 1})
		case Meta:
			out += indent + "Meta " + meta.Pp(x.Meta) + "\n"
			stack = append(stack, frame{x.Image, fr.depth + 1})
		}
	}
	return out
}

// ImageCompare gives a strict total order over image trees (§4.3):
// nodes compare by kind, then by field, visited in the same
// top-to-bottom, left-to-right order ImagePretty prints them.
// Traversal is iterative (an explicit work stack) so a deep tree
// cannot exhaust the call stack.
func ImageCompare(a, b Image) int {
	return imageCompare(a, b, compareFloat)
}

// ImageCompareApprox is ImageCompare's epsilon-tolerant counterpart.
func ImageCompareApprox(a, b Image, epsilon float64) int {
	return imageCompare(a, b, compareFloatEps(epsilon))
}

func imageKindOrder(img Image) int {
	switch img.(type) {
	case Primitive:
		return 0
	case Cut:
		return 1
	case Blend:
		return 2
	case Tr:
		return 3
	case Meta:
		return 4
	}
	return 5
}

func imageCompare(a, b Image, cmp func(x, y float64) int) int {
	type pair struct{ a, b Image }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ka, kb := imageKindOrder(p.a), imageKindOrder(p.b); ka != kb {
			return cmpInt(ka, kb)
		}
		switch x := p.a.(type) {
		case Primitive:
			if c := primitiveCompare(x, p.b.(Primitive), cmp); c != 0 {
				return c
			}
		case Cut:
			y := p.b.(Cut)
			if c := compareArea(x.Area, y.Area, cmp); c != 0 {
				return c
			}
			if c := x.Path.compare(y.Path, cmp); c != 0 {
				return c
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Blend:
			y := p.b.(Blend)
			if c := cmpInt(int(x.Blender), int(y.Blender)); c != 0 {
				return c
			}
			if c := compareBool(x.HasAlpha, y.HasAlpha); c != 0 {
				return c
			}
			if x.HasAlpha {
				if c := cmp(x.Alpha, y.Alpha); c != 0 {
					return c
				}
			}
			stack = append(stack, pair{x.Dst, y.Dst}, pair{x.Src, y.Src})
		case Tr:
			y := p.b.(Tr)
			if c := matrixCompare(x.Matrix(), y.Matrix(), cmp); c != 0 {
				return c
			}
			stack = append(stack, pair{x.Image, y.Image})
		case Meta:
			y := p.b.(Meta)
			if c := meta.Compare(x.Meta, y.Meta); c != 0 {
				return c
			}
			stack = append(stack, pair{x.Image, y.Image})
		}
	}
	return 0
}

func primitiveCompare(x, y Primitive, cmp func(a, b float64) int) int {
	if c := cmpInt(int(x.kind), int(y.kind)); c != 0 {
		return c
	}
	switch x.kind {
	case PrimConst:
		return compareColor(x.color, y.color, cmp)
	case PrimAxial:
		if c := comparePoint(x.p1, y.p1, cmp); c != 0 {
			return c
		}
		if c := comparePoint(x.p2, y.p2, cmp); c != 0 {
			return c
		}
		return compareStops(x.stops, y.stops, cmp)
	case PrimRadial:
		if c := comparePoint(x.focus, y.focus, cmp); c != 0 {
			return c
		}
		if c := comparePoint(x.center, y.center, cmp); c != 0 {
			return c
		}
		if c := cmp(x.radius, y.radius); c != 0 {
			return c
		}
		return compareStops(x.stops, y.stops, cmp)
	case PrimRaster:
		if c := compareBox(x.bounds, y.bounds, cmp); c != 0 {
			return c
		}
		return x.raster.Compare(y.raster)
	}
	return 0
}

func compareColor(a, b Color, cmp func(x, y float64) int) int {
	if c := cmp(a.R, b.R); c != 0 {
		return c
	}
	if c := cmp(a.G, b.G); c != 0 {
		return c
	}
	if c := cmp(a.B, b.B); c != 0 {
		return c
	}
	return cmp(a.A, b.A)
}

func compareStops(a, b Stops, cmp func(x, y float64) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i].Offset, b[i].Offset); c != 0 {
			return c
		}
		if c := compareColor(a[i].Color, b[i].Color, cmp); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func compareBox(a, b Box2, cmp func(x, y float64) int) int {
	if c := comparePoint(a.Min, b.Min, cmp); c != 0 {
		return c
	}
	return comparePoint(a.Max, b.Max, cmp)
}

func matrixCompare(a, b M3, cmp func(x, y float64) int) int {
	if c := cmp(a.A, b.A); c != 0 {
		return c
	}
	if c := cmp(a.B, b.B); c != 0 {
		return c
	}
	if c := cmp(a.C, b.C); c != 0 {
		return c
	}
	if c := cmp(a.D, b.D); c != 0 {
		return c
	}
	if c := cmp(a.E, b.E); c != 0 {
		return c
	}
	return cmp(a.F, b.F)
}

// compareArea orders Area values by constructor kind, then — for
// AreaOutline — by the wrapped Outline's fields.
func compareArea(a, b Area, cmp func(x, y float64) int) int {
	if c := cmpInt(int(a.kind), int(b.kind)); c != 0 {
		return c
	}
	if a.kind != areaOutline {
		return 0
	}
	return compareOutline(a.outline, b.outline, cmp)
}

func compareOutline(a, b Outline, cmp func(x, y float64) int) int {
	if c := cmp(a.Width, b.Width); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Cap), int(b.Cap)); c != 0 {
		return c
	}
	if c := cmpInt(int(a.Join), int(b.Join)); c != 0 {
		return c
	}
	if c := cmp(a.MiterAngle, b.MiterAngle); c != 0 {
		return c
	}
	return compareDashes(a.Dashes, b.Dashes, cmp)
}

func compareDashes(a, b *Dashes, cmp func(x, y float64) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp(a.Phase, b.Phase); c != 0 {
		return c
	}
	for i := 0; i < len(a.Pattern) && i < len(b.Pattern); i++ {
		if c := cmp(a.Pattern[i], b.Pattern[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a.Pattern), len(b.Pattern))
}

func prettyPrimitive(p Primitive) string {
	switch p.kind {
	case PrimConst:
		return "Const"
	case PrimAxial:
		return "Axial"
	case PrimRadial:
		return "Radial"
	case PrimRaster:
		return "Raster"
	}
	return "Primitive"
}
