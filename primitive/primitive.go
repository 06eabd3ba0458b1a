// Package primitive implements the clipper's polygon type: a fixed-capacity
// vertex-index list with cached plane normal and bounding box, and the
// coplanarity, containment, equality, split and clip operations the clip
// driver composes.
package primitive

import (
	"errors"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// MaxSides is the fixed per-polygon side capacity. A split that would
// exceed it is a hard error rather than a partially-committed mutation.
const MaxSides = 15

// ErrTooManySides is returned by Split/Clip when a resulting half would
// need more than MaxSides vertex indices.
var ErrTooManySides = errors.New("primitive: split would exceed max sides")

// ErrDegenerateClipper is returned by Clip when the clipping polygon has
// fewer than 3 sides.
var ErrDegenerateClipper = errors.New("primitive: clipper has fewer than 3 sides")

// Primitive is a closed polygon of 0 to MaxSides vertex-arena indices, plus
// an opaque colour and identifier. A polygon with fewer than 3 sides
// represents a point (1) or a line (2); the clip driver skips these.
type Primitive struct {
	Colour int
	ID     int

	sides  [MaxSides]int
	nsides int

	normal      geom.Vec3
	normalValid bool

	bbox      AABB
	bboxValid bool
}

// New returns an empty primitive with the given colour and id.
func New(colour, id int) *Primitive {
	return &Primitive{Colour: colour, ID: id}
}

// NSides returns the current number of sides.
func (p *Primitive) NSides() int { return p.nsides }

// Side returns the vertex-arena index of side i (0 <= i < NSides()).
func (p *Primitive) Side(i int) int { return p.sides[i] }

// Sides returns the vertex-arena indices of every side, in winding order.
// The returned slice aliases the primitive's internal storage and must not
// be retained across a mutating call.
func (p *Primitive) Sides() []int { return p.sides[:p.nsides] }

// invalidateCaches clears the normal and bbox caches. It must be called on
// every side addition, reversal, or clear.
func (p *Primitive) invalidateCaches() {
	p.normalValid = false
	p.bboxValid = false
}

// AddSide appends a vertex-arena index as the next side. It panics if the
// polygon already has MaxSides sides: building a polygon beyond capacity
// through direct construction is a caller precondition violation, not a
// runtime split-budget condition (see Clip/Split, which return
// ErrTooManySides instead for the same limit reached through geometry).
func (p *Primitive) AddSide(vertexIndex int) {
	if p.nsides == MaxSides {
		panic("primitive.AddSide: polygon already has MaxSides sides")
	}
	p.sides[p.nsides] = vertexIndex
	p.nsides++
	p.invalidateCaches()
}

// Clear empties the polygon's side list, keeping its colour and id.
func (p *Primitive) Clear() {
	p.nsides = 0
	p.invalidateCaches()
}

// Reverse reverses the polygon's winding order, flipping its normal.
func (p *Primitive) Reverse() {
	for i, j := 0, p.nsides-1; i < j; i, j = i+1, j-1 {
		p.sides[i], p.sides[j] = p.sides[j], p.sides[i]
	}
	p.invalidateCaches()
}

// Normal returns the polygon's plane normal, computed (and cached) as
// normalize(cross(v1-v0, v2-v1)) from its first three sides. It returns
// false if the polygon has fewer than three sides or its first three
// vertices are collinear (a zero cross product).
func (p *Primitive) Normal(arena *vertex.Arena) (geom.Vec3, bool) {
	if p.normalValid {
		return p.normal, true
	}
	if p.nsides < 3 {
		return geom.Vec3{}, false
	}

	v0 := arena.Coords(p.sides[0])
	v1 := arena.Coords(p.sides[1])
	v2 := arena.Coords(p.sides[2])

	n, ok := geom.Normalize(geom.Cross(geom.Sub(v1, v0), geom.Sub(v2, v1)))
	if !ok {
		return geom.Vec3{}, false
	}

	p.normal = n
	p.normalValid = true
	return p.normal, true
}

// FindPlane delegates to the cached normal's FindPlane, returning false if
// the normal is undefined.
func (p *Primitive) FindPlane(arena *vertex.Arena) (geom.Plane, bool) {
	n, ok := p.Normal(arena)
	if !ok {
		return geom.Plane{}, false
	}
	return geom.FindPlane(n), true
}

// BBox returns the polygon's axis-aligned bounding box, computed (and
// cached) as the componentwise min/max over every side vertex. It requires
// at least one side.
func (p *Primitive) BBox(arena *vertex.Arena) (AABB, bool) {
	if p.bboxValid {
		return p.bbox, true
	}
	if p.nsides < 1 {
		return AABB{}, false
	}

	min := geom.Vec3{geom.CoordInf, geom.CoordInf, geom.CoordInf}
	max := geom.Vec3{-geom.CoordInf, -geom.CoordInf, -geom.CoordInf}
	for i := 0; i < p.nsides; i++ {
		c := arena.Coords(p.sides[i])
		min = geom.ComponentMin(min, c)
		max = geom.ComponentMax(max, c)
	}

	p.bbox = AABB{Min: min, Max: max}
	p.bboxValid = true
	return p.bbox, true
}

// Clone returns an independent copy of p: same colour, id, and side list,
// with its own cache state (left invalid, since a clone that is about to
// be mutated by Split/Clip should not start from stale cached geometry).
func (p *Primitive) Clone() *Primitive {
	q := &Primitive{Colour: p.Colour, ID: p.ID, sides: p.sides, nsides: p.nsides}
	return q
}

// Equal reports whether p and q have the same number of sides and, for
// some rotation of q's side sequence, every position's vertex index
// matches p's. Winding must match; reflections are not equal. Two
// zero-sided polygons are equal.
func (p *Primitive) Equal(q *Primitive) bool {
	if p.nsides != q.nsides {
		return false
	}
	if p.nsides == 0 {
		return true
	}

	for rot := 0; rot < q.nsides; rot++ {
		matches := true
		for i := 0; i < p.nsides; i++ {
			if p.sides[i] != q.sides[(i+rot)%q.nsides] {
				matches = false
				break
			}
		}
		if matches {
			return true
		}
	}
	return false
}

// SkewSide returns the index of the first side (among sides 3..nsides-1)
// whose vertex lies outside the plane defined by the polygon's first three
// vertices, or -1 if the polygon is planar. Polygons with fewer than four
// sides are always planar.
func (p *Primitive) SkewSide(arena *vertex.Arena) int {
	if p.nsides < 4 {
		return -1
	}
	n, ok := p.Normal(arena)
	if !ok {
		return -1
	}
	v0 := arena.Coords(p.sides[0])

	for i := 3; i < p.nsides; i++ {
		v := arena.Coords(p.sides[i])
		if !geom.Equal(geom.Dot(n, geom.Sub(v, v0)), 0) {
			return i
		}
	}
	return -1
}
