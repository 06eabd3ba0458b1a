// Package geom provides the tolerant scalar and vector algebra the clipping
// engine is built on: a single epsilon governing fuzzy equality and
// ordering, 3-vector arithmetic backed by mgl64, and the 2D line algebra
// used to intersect polygon edges once they are projected onto a plane.
package geom

import "math"

// EPS is the tolerance governing every fuzzy comparison in this module and
// its dependents. It is tuned so the clipping algorithm does not synthesize
// zero-length edges from "nearly equal" split points; tightening it has
// historically broken termination.
const EPS = 1e-3

// CoordInf is the machine infinity for the coordinate type, used to seed
// bounding-box min/max accumulation.
var CoordInf = math.Inf(1)

// Equal reports whether a and b are within EPS of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < EPS
}

// Less is a tolerant strict less-than: it requires b to exceed a by at
// least EPS. Inside the dead band (|a-b| < EPS) neither Less(a, b) nor
// Less(b, a) holds, so !Less(a, b) is not the same as Less(b, a) or as a
// plain a >= b; GE is defined as !Less and keeps that dead band.
func Less(a, b float64) bool {
	return b-a >= EPS
}

// GE is the tolerant, loose greater-or-equal used by bounding-box
// containment checks: a is not strictly (tolerantly) less than b.
func GE(a, b float64) bool {
	return !Less(a, b)
}
