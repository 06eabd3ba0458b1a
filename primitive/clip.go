package primitive

import (
	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// State is the progress of a Clip sequence run by the caller one clipper
// edge at a time.
type State int

const (
	// StateNone means this edge produced no cut: target did not cross the
	// clipper edge's line, so target is either entirely inside or entirely
	// outside it and is left unmodified.
	StateNone State = iota
	// StateInProgress means this edge cut target; target (mutated in
	// place) still needs to be tested against the clipper's remaining
	// edges before its fate is decided.
	StateInProgress
	// StateComplete means edgeIdx was the clipper's last edge. For a convex
	// clipper, whatever remains of target then lies on the interior side of
	// every edge whose line cut it; it lies inside the clipper only if it is
	// also on the interior side of every edge that did not cut it.
	StateComplete
)

// Clip cuts target, a single time, against one edge of clipper (the edge
// running from clipper.Side(edgeIdx) to clipper.Side((edgeIdx+1)%n)). The
// fragment of target that lies on the clipper's exterior side of that edge
// — and so is already known to lie outside the full clipper polygon — is
// returned as keep and should be retained permanently by the caller.
// target itself is mutated in place to hold the fragment on the clipper's
// interior side of the edge, which must still be tested against the
// clipper's remaining edges.
//
// This performs exactly one cut per call; a convex clipper with k sides
// requires up to k calls (edgeIdx = 0..k-1, in order) to fully resolve one
// target polygon; once StateComplete is reported, the caller decides
// whether what remains of target lies inside the clipper.
func Clip(target, clipper *Primitive, edgeIdx int, arena *vertex.Arena) (keep *Primitive, state State, err error) {
	if clipper.nsides < 3 {
		return nil, StateComplete, ErrDegenerateClipper
	}
	n := clipper.nsides
	last := edgeIdx == n-1

	plane, ok := clipper.FindPlane(arena)
	if !ok {
		return nil, StateComplete, ErrDegenerateClipper
	}

	clipA := clipper.sides[edgeIdx]
	clipB := clipper.sides[(edgeIdx+1)%n]
	la := geom.Project(arena.Coords(clipA), plane)
	lb := geom.Project(arena.Coords(clipB), plane)

	interior := interiorSign(clipper, edgeIdx, la, lb, arena, plane)

	other, err := Split(target, clipA, clipB, arena)
	if err != nil {
		return nil, StateComplete, err
	}
	if other == nil {
		if last {
			return nil, StateComplete, nil
		}
		return nil, StateNone, nil
	}

	// other.sides[0] is a crossing vertex on the clip line itself; the side
	// after it is an original vertex of target lying off the line, which
	// decides the side of the edge other is on.
	otherPt := geom.Project(arena.Coords(other.sides[1]), plane)
	if sideOf(otherPt, la, lb)*interior < 0 {
		// other lies on the exterior side; target (mutated by Split) kept
		// the interior fragment.
		if last {
			return other, StateComplete, nil
		}
		return other, StateInProgress, nil
	}

	// other lies on the interior side: swap roles so target keeps the
	// interior fragment and the exterior one is returned to the caller.
	exterior := New(target.Colour, target.ID)
	for _, s := range target.Sides() {
		exterior.AddSide(s)
	}
	target.Clear()
	for _, s := range other.Sides() {
		target.AddSide(s)
	}

	if last {
		return exterior, StateComplete, nil
	}
	return exterior, StateInProgress, nil
}

// ClipOnce scans clipper's edges in order and performs the first cut of
// target that actually occurs, then returns immediately without looking at
// clipper's remaining edges — the "one cut per invocation" contract the
// clip driver relies on to re-evaluate a target's coplanarity/containment
// against the full front set after every split, rather than resolving a
// target fully against one clipper before moving on. Each edge cuts along
// its infinite line: target is split whenever that line crosses it, even if
// the edge segment itself does not reach target, and no bounding-box test
// is made first. split is false if no such line crosses target, in which
// case target is unmodified.
func ClipOnce(target, clipper *Primitive, arena *vertex.Arena) (other *Primitive, split bool, err error) {
	if clipper.nsides < 3 {
		return nil, false, ErrDegenerateClipper
	}
	for edgeIdx := 0; edgeIdx < clipper.nsides; edgeIdx++ {
		out, state, cerr := Clip(target, clipper, edgeIdx, arena)
		if cerr != nil {
			return nil, false, cerr
		}
		if out != nil {
			return out, true, nil
		}
		if state == StateComplete {
			break
		}
	}
	return nil, false, nil
}

// interiorSign returns the sign of clipper's centroid relative to the line
// through la-lb, used as the reference for which side of a clip edge faces
// the clipper's interior.
func interiorSign(clipper *Primitive, edgeIdx int, la, lb geom.Point2D, arena *vertex.Arena, plane geom.Plane) float64 {
	var sumX, sumY float64
	for i := 0; i < clipper.nsides; i++ {
		pt := geom.Project(arena.Coords(clipper.sides[i]), plane)
		sumX += pt.X
		sumY += pt.Y
	}
	centroid := geom.Point2D{X: sumX / float64(clipper.nsides), Y: sumY / float64(clipper.nsides)}
	return sideOf(centroid, la, lb)
}
