package geom

import "math"

// Plane is an ordered triple of distinct axis indices (X, Y, Z) drawn from
// {0,1,2}. X and Y are the in-plane axes used for 2D projection and
// intersection math; Z is the ignored axis, chosen as the axis of
// largest-magnitude component of a polygon's normal so projected edges
// never become degenerate.
type Plane struct {
	X, Y, Z int
}

// Point2D is the projection of a Vec3 onto a Plane's in-plane axes.
type Point2D struct {
	X, Y float64
}

// FindPlane chooses the axis whose component has the largest magnitude as
// the ignored axis; the remaining two become the in-plane axes in their
// natural numeric order. This picks the projection with the best numerical
// conditioning, the same rationale as snapping a near-zero normal component
// to an axis before using it.
func FindPlane(normal Vec3) Plane {
	ax, ay, az := math.Abs(normal.X()), math.Abs(normal.Y()), math.Abs(normal.Z())

	ignored := 2
	switch {
	case ax >= ay && ax >= az:
		ignored = 0
	case ay >= ax && ay >= az:
		ignored = 1
	default:
		ignored = 2
	}

	axes := [3]int{0, 1, 2}
	in := make([]int, 0, 2)
	for _, a := range axes {
		if a != ignored {
			in = append(in, a)
		}
	}
	return Plane{X: in[0], Y: in[1], Z: ignored}
}

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	default:
		return v.Z()
	}
}

// Project returns the 2D projection of v under plane p's in-plane axes.
func Project(v Vec3, p Plane) Point2D {
	return Point2D{X: component(v, p.X), Y: component(v, p.Y)}
}

// XYLess is the strict projected comparator: both coordinates must be
// tolerantly less.
func XYLess(a, b Point2D) bool {
	return Less(a.X, b.X) && Less(a.Y, b.Y)
}

// XYGE is the loose projected comparator: neither coordinate of a may be
// tolerantly less than the same coordinate of b.
func XYGE(a, b Point2D) bool {
	return GE(a.X, b.X) && GE(a.Y, b.Y)
}

// YGradient returns the slope of line a-b in the projection. The caller
// must guarantee b.X != a.X (i.e. the line is not vertical).
func YGradient(a, b Point2D) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

// YIntercept returns the y-intercept of the line through a with slope m.
func YIntercept(a Point2D, m float64) float64 {
	return a.Y - m*a.X
}

// Intersect treats segments a-b and c-d as infinite lines in the
// projection defined by plane p, and returns their intersection point
// lifted back into full 3-space. The second return value is false if the
// lines are parallel (including coincident).
//
// The ignored axis is recovered by interpolating along a-b itself (using
// whichever of the two in-plane axes varies more along a-b, to keep the
// division well conditioned), not by resolving the plane equation
// directly: since a-b is a real 3D segment, the 2D intersection point's
// position along it also fixes its true ignored-axis coordinate, which
// only equals a constant for axis-aligned planes in general.
func Intersect(a, b, c, d Vec3, p Plane) (Vec3, bool) {
	pa, pb, pc, pd := Project(a, p), Project(b, p), Project(c, p), Project(d, p)
	xy, ok := intersect2D(pa, pb, pc, pd)
	if !ok {
		return Vec3{}, false
	}

	dx := pb.X - pa.X
	dy := pb.Y - pa.Y
	var t float64
	if math.Abs(dx) >= math.Abs(dy) {
		t = (xy.X - pa.X) / dx
	} else {
		t = (xy.Y - pa.Y) / dy
	}

	return Add(a, Scale(Sub(b, a), t)), true
}

// intersect2D implements the case analysis from the line/line intersection
// algorithm: vertical-AB, horizontal-AB, sloped-AB, each paired against the
// corresponding case of CD, checked in order.
func intersect2D(a, b, c, d Point2D) (Point2D, bool) {
	abVertical := Equal(a.X, b.X)
	cdVertical := Equal(c.X, d.X)

	if abVertical {
		if cdVertical {
			return Point2D{}, false // parallel, both vertical
		}
		ix := a.X
		iy := lineY(ix, c, d)
		return Point2D{X: ix, Y: iy}, true
	}

	abHorizontal := Equal(a.Y, b.Y)
	if abHorizontal {
		iy := a.Y
		if cdVertical {
			return Point2D{X: c.X, Y: iy}, true
		}
		if Equal(c.Y, d.Y) {
			return Point2D{}, false // parallel, both horizontal
		}
		m2 := YGradient(c, d)
		c2 := YIntercept(c, m2)
		ix := (iy - c2) / m2
		return Point2D{X: ix, Y: iy}, true
	}

	// AB sloped.
	m1 := YGradient(a, b)
	c1 := YIntercept(a, m1)

	if cdVertical {
		ix := c.X
		iy := m1*ix + c1
		return Point2D{X: ix, Y: iy}, true
	}

	m2 := YGradient(c, d)
	if Equal(m1, m2) {
		return Point2D{}, false // parallel, same slope (covers CD horizontal when AB is too, already ruled out above)
	}
	c2 := YIntercept(c, m2)
	ix := (c2 - c1) / (m1 - m2)
	iy := m1*ix + c1
	return Point2D{X: ix, Y: iy}, true
}

func lineY(x float64, c, d Point2D) float64 {
	if Equal(c.Y, d.Y) {
		return c.Y
	}
	m := YGradient(c, d)
	b := YIntercept(c, m)
	return m*x + b
}
