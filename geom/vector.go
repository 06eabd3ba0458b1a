package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the coordinate type used across the clipper: a plain alias over
// mgl64.Vec3 so arena storage, polygon sides, and intersection math all
// share one representation without per-package wrapper types.
type Vec3 = mgl64.Vec3

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return a.Add(b) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return a.Sub(b) }

// Scale returns a scaled by s.
func Scale(a Vec3, s float64) Vec3 { return a.Mul(s) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// Cross returns the cross product a×b.
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Magnitude returns sqrt(dot(a,a)).
func Magnitude(a Vec3) float64 { return a.Len() }

// Normalize returns a/|a| and true, or the zero vector and false if a is
// exactly zero-length. There is no tolerance here: a post-cross-product
// zero indicates collinearity that must propagate upward as a hard
// "undefined" rather than being smoothed over.
func Normalize(a Vec3) (Vec3, bool) {
	if a.X() == 0 && a.Y() == 0 && a.Z() == 0 {
		return Vec3{}, false
	}
	length := Magnitude(a)
	if length == 0 {
		return Vec3{}, false
	}
	return a.Mul(1.0 / length), true
}

// VectorEqual is the componentwise tolerant equality used for vertex
// deduplication and normal comparison.
func VectorEqual(a, b Vec3) bool {
	return Equal(a.X(), b.X()) && Equal(a.Y(), b.Y()) && Equal(a.Z(), b.Z())
}

// ComponentMin returns the componentwise minimum of a and b.
func ComponentMin(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

// ComponentMax returns the componentwise maximum of a and b.
func ComponentMax(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}

// Compare orders a and b lexicographically by (x, y, z) using strict
// floating-point ordering (not the tolerant predicates above) — it is used
// only to produce a stable sort order over which tolerant-equality
// neighbors are then collapsed.
func Compare(a, b Vec3) int {
	if a.X() != b.X() {
		if a.X() < b.X() {
			return -1
		}
		return 1
	}
	if a.Y() != b.Y() {
		if a.Y() < b.Y() {
			return -1
		}
		return 1
	}
	if a.Z() != b.Z() {
		if a.Z() < b.Z() {
			return -1
		}
		return 1
	}
	return 0
}
