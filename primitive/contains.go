package primitive

import (
	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ContainsPoint reports whether point, projected onto p's plane, lies
// inside p (a point on the boundary counts as inside). It short-circuits on
// p's bounding box before falling back to a ray-cast parity test.
//
// The ray cast walks each edge of p and counts how many cross a horizontal
// ray extending in the +X direction from point. Horizontal edges never
// contribute a crossing (handled separately, as a direct on-segment test).
// For sloped and vertical edges, each edge is attributed to the half-open
// y-range [low, high) of its own endpoints so that a ray passing exactly
// through a shared vertex between two edges is counted by exactly one of
// them.
func ContainsPoint(p *Primitive, point geom.Vec3, arena *vertex.Arena) bool {
	plane, ok := p.FindPlane(arena)
	if !ok {
		return false
	}
	pt := geom.Project(point, plane)
	if bbox, ok := p.BBox(arena); ok {
		lo, hi := bbox.project2D(plane)
		if !geom.XYGE(pt, lo) || !geom.XYGE(hi, pt) {
			return false
		}
	}

	n := p.nsides
	inside := false
	for i := 0; i < n; i++ {
		a := geom.Project(arena.Coords(p.sides[i]), plane)
		b := geom.Project(arena.Coords(p.sides[(i+1)%n]), plane)

		if geom.Equal(a.X, pt.X) && geom.Equal(a.Y, pt.Y) {
			return true
		}

		if geom.Equal(a.Y, b.Y) {
			if geom.Equal(a.Y, pt.Y) && geom.GE(pt.X, minF(a.X, b.X)) && geom.GE(maxF(a.X, b.X), pt.X) {
				return true
			}
			continue
		}

		top, bottom := a, b
		if top.Y < bottom.Y {
			top, bottom = bottom, top
		}
		if geom.Less(pt.Y, bottom.Y) || !geom.Less(pt.Y, top.Y) {
			continue
		}

		var ix float64
		if geom.Equal(a.X, b.X) {
			ix = a.X
		} else {
			m := geom.YGradient(a, b)
			c := geom.YIntercept(a, m)
			ix = (pt.Y - c) / m
		}

		if geom.Equal(ix, pt.X) {
			return true
		}
		if geom.Less(pt.X, ix) {
			inside = !inside
		}
	}
	return inside
}

// Contains reports whether p fully covers q: every vertex of q lies inside
// p. A bounding-box containment check on the two polygons' plane
// projections short-circuits the common non-containing case before the
// per-vertex ray casts.
func Contains(p, q *Primitive, arena *vertex.Arena) bool {
	if pb, ok := p.BBox(arena); ok {
		if qb, ok := q.BBox(arena); ok {
			if plane, ok := p.FindPlane(arena); ok && !pb.contains2D(qb, plane) {
				return false
			}
		}
	}

	for i := 0; i < q.nsides; i++ {
		if !ContainsPoint(p, arena.Coords(q.sides[i]), arena) {
			return false
		}
	}
	return true
}
