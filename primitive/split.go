package primitive

import (
	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// sideOf returns the signed area of the triangle (a, b, point) in the 2D
// projection: positive on one side of the infinite line a-b, negative on
// the other, zero on the line itself.
func sideOf(point, a, b geom.Point2D) float64 {
	return (b.X-a.X)*(point.Y-a.Y) - (b.Y-a.Y)*(point.X-a.X)
}

type crossing struct {
	edgeIdx    int // the edge runs from side edgeIdx to side edgeIdx+1
	vertexIdx int // arena index of the intersection point
}

// Split cuts p along the infinite line through arena vertices clipA and
// clipB, projected onto p's own plane. If the line crosses p's boundary at
// exactly two edges, p is rewritten in place to hold one resulting half and
// a new polygon holding the other half is returned. If the line does not
// cross exactly two edges (the line misses p, or crosses a different
// number of edges), Split is a no-op and
// returns a nil polygon and nil error: the driver is expected to recognize
// this as "nothing to do" rather than treat it as failure. An edge with an
// endpoint on the line is never counted as a crossing, so a line through
// one of p's vertices does not split p there: p is split only when the
// line crosses two edges away from their endpoints.
//
// Each resulting half reuses the clip line's intersection points by arena
// index: when an intersection coincides with an existing vertex (within
// tolerance), Split reuses that vertex's index rather than adding a
// near-duplicate.
func Split(p *Primitive, clipA, clipB int, arena *vertex.Arena) (*Primitive, error) {
	if p.nsides < 3 {
		return nil, nil
	}
	plane, ok := p.FindPlane(arena)
	if !ok {
		return nil, nil
	}

	la := geom.Project(arena.Coords(clipA), plane)
	lb := geom.Project(arena.Coords(clipB), plane)
	if geom.Equal(la.X, lb.X) && geom.Equal(la.Y, lb.Y) {
		return nil, nil
	}

	n := p.nsides
	sides := make([]float64, n)
	for i := 0; i < n; i++ {
		pt := geom.Project(arena.Coords(p.sides[i]), plane)
		sides[i] = sideOf(pt, la, lb)
	}

	var crossings []crossing
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		si, sj := sides[i], sides[j]

		if geom.Equal(si, 0) || geom.Equal(sj, 0) {
			// An endpoint lies on the line; it is not itself a new crossing
			// point, it already is one.
			continue
		}
		if (si > 0) == (sj > 0) {
			continue
		}

		va := arena.Coords(p.sides[i])
		vb := arena.Coords(p.sides[j])
		ca := arena.Coords(clipA)
		cb := arena.Coords(clipB)

		ipoint, ok := geom.Intersect(va, vb, ca, cb, plane)
		if !ok {
			continue
		}
		idx, found := arena.Find(ipoint)
		if !found {
			idx = arena.Add(ipoint)
		}
		crossings = append(crossings, crossing{edgeIdx: i, vertexIdx: idx})
	}

	if len(crossings) != 2 {
		return nil, nil
	}
	c0, c1 := crossings[0], crossings[1]

	other := New(p.Colour, p.ID)
	if !appendRun(other, c0, c1, p, n) {
		return nil, ErrTooManySides
	}

	remainder := New(p.Colour, p.ID)
	if !appendRun(remainder, c1, c0, p, n) {
		return nil, ErrTooManySides
	}

	p.Clear()
	for _, s := range remainder.Sides() {
		p.AddSide(s)
	}
	return other, nil
}

// appendRun builds one half of the split: the crossing vertex at from, the
// original polygon's vertices strictly between from's edge and to's edge
// (walking forward, wrapping around n), then the crossing vertex at to. It
// returns false without partially mutating dst's caller-visible state
// beyond dst itself if the run would exceed MaxSides.
func appendRun(dst *Primitive, from, to crossing, src *Primitive, n int) bool {
	if dst.nsides >= MaxSides {
		return false
	}
	dst.sides[dst.nsides] = from.vertexIdx
	dst.nsides++

	for k := (from.edgeIdx + 1) % n; ; k = (k + 1) % n {
		if dst.nsides >= MaxSides {
			return false
		}
		dst.sides[dst.nsides] = src.sides[k]
		dst.nsides++
		if k == to.edgeIdx {
			break
		}
	}

	if dst.nsides >= MaxSides {
		return false
	}
	dst.sides[dst.nsides] = to.vertexIdx
	dst.nsides++
	dst.invalidateCaches()
	return true
}
