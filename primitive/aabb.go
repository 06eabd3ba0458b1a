package primitive

import (
	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// AABB is an axis-aligned bounding box in full 3-space, adapted from the
// collision engine's rigid-body AABB: same shape, repurposed here to cache
// a polygon's vertex extents instead of a shape's world bounds.
type AABB struct {
	Min geom.Vec3
	Max geom.Vec3
}

// ContainsPoint reports whether point lies inside the box, inclusive of
// its faces.
func (b AABB) ContainsPoint(point geom.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// project2D returns the box's min/max projected onto plane p's in-plane
// axes.
func (b AABB) project2D(p geom.Plane) (geom.Point2D, geom.Point2D) {
	return geom.Project(b.Min, p), geom.Project(b.Max, p)
}

// overlaps2D reports whether b and other's projections overlap under the
// strict tolerant comparator: they fail to overlap only if one lies
// entirely (tolerantly) to one side of the other on some axis.
func (b AABB) overlaps2D(other AABB, p geom.Plane) bool {
	aMin, aMax := b.project2D(p)
	bMin, bMax := other.project2D(p)

	separated := geom.Less(aMax.X, bMin.X) || geom.Less(bMax.X, aMin.X) ||
		geom.Less(aMax.Y, bMin.Y) || geom.Less(bMax.Y, aMin.Y)
	return !separated
}

// contains2D reports whether b's projection tolerantly contains other's
// projection (xy_ge on both the low and high corners).
func (b AABB) contains2D(other AABB, p geom.Plane) bool {
	bMin, bMax := b.project2D(p)
	oMin, oMax := other.project2D(p)

	return geom.XYGE(oMin, bMin) && geom.XYGE(bMax, oMax)
}

// BBoxesOverlap reports whether a and b's bounding boxes, projected onto
// a's plane, overlap. It conservatively returns true (never rules out
// overlap) if either polygon's bbox or plane is undefined.
func BBoxesOverlap(a, b *Primitive, arena *vertex.Arena) bool {
	ab, ok := a.BBox(arena)
	if !ok {
		return true
	}
	bb, ok := b.BBox(arena)
	if !ok {
		return true
	}
	plane, ok := a.FindPlane(arena)
	if !ok {
		return true
	}
	return ab.overlaps2D(bb, plane)
}
