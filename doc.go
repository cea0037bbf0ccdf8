// Package vg is a declarative 2D vector graphics library: images are
// described as immutable algebraic values — trees whose leaves are
// primitive color, gradient and raster fills and whose interior nodes
// cut, transform, blend and tag those leaves — and rendered to one or
// more backends through the github.com/monstasat/vg/render driver.
//
// # Coordinate system
//
// The plane uses a conventional mathematical orientation: X increases
// right, Y increases up, angles in radians measured counter-clockwise
// from the positive X axis.
//
// # Packages
//
//   - vg: geometry (P2, V2, M2, M3, Box2), Path and its builder,
//     Color and gradients, Raster, Outline/Area, and the Image tree.
//   - github.com/monstasat/vg/meta: the typed heterogeneous metadata map.
//   - github.com/monstasat/vg/render: the streaming renderer driver.
package vg

// Version identifies this build of the library.
const Version = "0.1.0"
