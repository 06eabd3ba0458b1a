package objclip

import "errors"

// ErrTooManySides is returned when a split required by clipping would
// produce a polygon with more than primitive.MaxSides sides.
var ErrTooManySides = errors.New("objclip: clip would produce a polygon with too many sides")

// ErrSplitBudgetExhausted is returned by ClipScene, ClipGroup and
// ClipGroupVsGroup when a single call's split count reaches MAX_SPLITS. It
// bounds the work one
// call can do against pathological inputs (near-degenerate overlaps that
// keep re-splitting slivers) rather than running unbounded.
var ErrSplitBudgetExhausted = errors.New("objclip: split budget exhausted for this call")

// ErrAllocation names a group failing to grow to hold the polygons a clip
// pass produces. No function in this module returns it: group growth uses
// Go slice allocation, which does not report failure as an error.
var ErrAllocation = errors.New("objclip: group allocation failed")

// ErrDegenerateClipper is returned when a clipping polygon has fewer than
// three sides.
var ErrDegenerateClipper = errors.New("objclip: clipper has fewer than three sides")
