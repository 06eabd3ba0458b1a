package primitive

import (
	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// Coplanar reports whether p and q lie in the same plane and face the same
// direction. If both have a defined normal, the normals must be tolerantly
// equal (opposite-facing coplanar polygons — back-to-back decals — are not
// coplanar by this test, since only same-facing overlaps cause z-fighting)
// and one polygon's first vertex must lie tolerantly on the other's plane.
// If only one has a normal (the other is a degenerate point or line),
// every vertex of the degenerate primitive is tested against the other's
// plane instead. If neither has a normal, they are not coplanar.
func Coplanar(p, q *Primitive, arena *vertex.Arena) bool {
	pn, pok := p.Normal(arena)
	qn, qok := q.Normal(arena)

	switch {
	case pok && qok:
		if !geom.VectorEqual(pn, qn) {
			return false
		}
		p0 := arena.Coords(p.sides[0])
		q0 := arena.Coords(q.sides[0])
		return geom.Equal(geom.Dot(pn, geom.Sub(q0, p0)), 0)

	case pok && !qok:
		return onPlane(q, p.sides[0], pn, arena)

	case qok && !pok:
		return onPlane(p, q.sides[0], qn, arena)

	default:
		return false
	}
}

// onPlane reports whether every vertex of degenerate (a point or line
// primitive with no defined normal) lies tolerantly on the plane through
// planeVertex with the given normal.
func onPlane(degenerate *Primitive, planeVertex int, normal geom.Vec3, arena *vertex.Arena) bool {
	if degenerate.nsides == 0 {
		return false
	}
	origin := arena.Coords(planeVertex)
	for i := 0; i < degenerate.nsides; i++ {
		v := arena.Coords(degenerate.sides[i])
		if !geom.Equal(geom.Dot(normal, geom.Sub(v, origin)), 0) {
			return false
		}
	}
	return true
}
