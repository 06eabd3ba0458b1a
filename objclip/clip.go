// Package objclip drives the coplanar-polygon clipping pass: given polygons
// in back-to-front render order, it detects same-plane overlaps and cuts
// away the occluded portion of the rearward polygon, preventing z-fighting
// without deleting any polygon that still contributes visible area.
package objclip

import (
	"log/slog"

	"github.com/vertexforge/objclip/group"
	"github.com/vertexforge/objclip/primitive"
	"github.com/vertexforge/objclip/vertex"
)

// MAX_SPLITS bounds the number of Split operations one clip invocation will
// perform. ClipScene treats this as cumulative across its whole call (one
// render-order walk over every group); ClipGroup and ClipGroupVsGroup, used
// standalone, each start their own fresh budget. It exists to bound the
// work done against pathological inputs, not ordinary scenes.
const MAX_SPLITS = 1024

// Options configures a clip pass.
type Options struct {
	// Logger receives structured progress events. A nil Logger disables
	// logging.
	Logger *slog.Logger
	// Verbose enables per-pair events: ClipPolygons adds events for pairs
	// it skips to the ones it logs for pairs it clips, and the group
	// drivers (ClipScene, ClipGroup, ClipGroupVsGroup) log each split,
	// deletion and split-budget exhaustion only when Verbose is set.
	Verbose bool
}

func (o Options) log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(discard{}, nil))
	}
	return o.Logger
}

// ClipPolygons tests rear against front, a single clipper polygon assumed
// to be nearer the viewer (later in render order). If the two are not
// coplanar, or their bounding boxes do not overlap, rear is returned
// unchanged. If front fully covers rear, ClipPolygons returns no polygons:
// rear is entirely occluded. Otherwise it returns the fragment(s) of rear
// that remain visible outside front.
//
// This is a convenience over a single pair; it fully resolves rear against
// front in one call. The group-level drivers (ClipGroup, ClipGroupVsGroup,
// ClipScene) do not build on this directly — they need to re-test a
// fragment against the rest of the front set after each individual split,
// which ClipPolygons' one-shot resolution doesn't expose — they instead
// drive primitive.ClipOnce one cut at a time. splits reports how many Split
// operations were performed, for the caller's own accounting; a single
// pair can perform at most front.NSides() splits, far under MAX_SPLITS.
func ClipPolygons(rear, front *primitive.Primitive, arena *vertex.Arena, opts Options) (kept []*primitive.Primitive, splits int, err error) {
	log := opts.log()

	if front.NSides() < 3 {
		return nil, 0, ErrDegenerateClipper
	}
	if !primitive.Coplanar(rear, front, arena) {
		if opts.Verbose {
			log.Debug("clip: not coplanar, skipping", "rear", rear.ID, "front", front.ID)
		}
		return []*primitive.Primitive{rear}, 0, nil
	}
	if !primitive.BBoxesOverlap(front, rear, arena) {
		if opts.Verbose {
			log.Debug("clip: bounding boxes disjoint, skipping", "rear", rear.ID, "front", front.ID)
		}
		return []*primitive.Primitive{rear}, 0, nil
	}
	if primitive.Contains(front, rear, arena) {
		log.Debug("clip: rear fully occluded", "rear", rear.ID, "front", front.ID)
		return nil, 0, nil
	}

	current := rear.Clone()
	sawCrossing := false

	for edgeIdx := 0; edgeIdx < front.NSides(); edgeIdx++ {
		outside, state, cerr := primitive.Clip(current, front, edgeIdx, arena)
		if cerr != nil {
			return nil, splits, wrapPrimitiveErr(cerr)
		}
		if outside != nil {
			sawCrossing = true
			splits++
			kept = append(kept, outside)
		}
		if state == primitive.StateComplete {
			break
		}
	}

	if !sawCrossing {
		// The bounding boxes overlapped but the polygons themselves never
		// actually crossed: a bbox false positive. rear is untouched.
		return []*primitive.Primitive{rear}, splits, nil
	}
	if !primitive.Contains(front, current, arena) {
		// current lies on the interior side of every edge whose line cut
		// it but outside front past an edge that did not: still visible.
		kept = append(kept, current)
	}

	log.Debug("clip: resolved overlap", "rear", rear.ID, "front", front.ID, "fragments", len(kept), "splits", splits)
	return kept, splits, nil
}

func wrapPrimitiveErr(err error) error {
	switch err {
	case primitive.ErrTooManySides:
		return ErrTooManySides
	case primitive.ErrDegenerateClipper:
		return ErrDegenerateClipper
	default:
		return err
	}
}

// ClipGroup clips every polygon in g against every polygon nearer the
// viewer than it (i.e. against every later polygon in g, under the
// assumption that g is already ordered back-to-front), in place. It is
// ClipScene specialized to a single group with no cross-group pass, and
// starts its own fresh MAX_SPLITS budget.
func ClipGroup(g *group.Group, arena *vertex.Arena, opts Options) (int, error) {
	splits := 0
	_, err := clipGroupPass(arena, []*group.Group{g}, []int{0}, 0, &splits, opts)
	return splits, err
}

// ClipGroupVsGroup clips every polygon in rear against every polygon in
// front, in place. front is assumed entirely nearer the viewer than rear;
// passing the same group for both is equivalent to ClipGroup. Unlike
// ClipGroup, there is no same-group pass here even if rear == front is not
// the case being modeled — every polygon in front, starting from its own
// first position, is tested.
func ClipGroupVsGroup(rear, front *group.Group, arena *vertex.Arena, opts Options) (int, error) {
	if rear == front {
		return ClipGroup(rear, arena, opts)
	}

	splits := 0
	back := 0
	for back < rear.Len() {
		deleted, err := clipOneBack(arena, rear, back, front, 0, &splits, opts)
		if err != nil {
			return splits, err
		}
		if !deleted {
			back++
		}
	}
	return splits, nil
}

// ClipScene is the top-level clip driver: groups, given in back-to-front
// render order, are each clipped against their own later polygons (the
// same-group pass), then against every other, later-rendered group in
// order (the cross-group pass), exactly as spec's clip_polygons/clip_group
// loop over groups[order[0..order_len)]. splits and deleted are cumulative
// across the whole call, and splits is bounded by MAX_SPLITS for the
// entire invocation, not per group.
func ClipScene(arena *vertex.Arena, groups []*group.Group, order []int, opts Options) (splits, deleted int, err error) {
	log := opts.log()
	for bg := 0; bg < len(order); bg++ {
		d, err := clipGroupPass(arena, groups, order, bg, &splits, opts)
		deleted += d
		if err != nil {
			return splits, deleted, err
		}
	}
	log.Debug("clip scene: done", "groups", len(order), "splits", splits, "deleted", deleted)
	return splits, deleted, nil
}

// clipGroupPass implements clip_group(bg): it walks groups[order[bg]]
// position by position, clipping each polygon still standing against its
// own group's successors, then (while not yet deleted) against every later
// group in the render order, skipping groups that repeat order[bg] itself
// (the same-group pass already covers that).
func clipGroupPass(arena *vertex.Arena, groups []*group.Group, order []int, bg int, splits *int, opts Options) (deleted int, err error) {
	log := opts.log()
	backGroup := groups[order[bg]]

	back := 0
	for back < backGroup.Len() {
		del, err := clipOneBack(arena, backGroup, back, backGroup, back+1, splits, opts)
		if err != nil {
			return deleted, err
		}

		if !del {
			for fg := bg + 1; fg < len(order); fg++ {
				if order[fg] == order[bg] {
					continue
				}
				del, err = clipOneBack(arena, backGroup, back, groups[order[fg]], 0, splits, opts)
				if err != nil {
					return deleted, err
				}
				if del {
					break
				}
			}
		}

		if del {
			deleted++
			if opts.Verbose {
				log.Debug("clip group: back polygon deleted", "group", order[bg], "position", back)
			}
		} else {
			back++
		}
	}
	return deleted, nil
}

// clipOneBack implements clip_group_vs_group: it tests the polygon at
// backGroup position back against frontGroup, starting at frontIdx
// frontStart, returning true (and leaving backGroup with that position
// deleted) the moment the back polygon is found to be fully covered by
// some front polygon. Every exterior fragment produced by a split is
// spliced back into backGroup immediately after position back, so it is
// independently re-walked — from scratch, against the full relevant front
// set — once the caller's own position-by-position walk reaches it; this
// is the spec's "insert at back+1" step generalized to work whether
// frontGroup is backGroup itself or a distinct, later group (in which case
// the insertion does not perturb frontGroup's own indices, so no index
// compensation is needed there).
func clipOneBack(arena *vertex.Arena, backGroup *group.Group, back int, frontGroup *group.Group, frontStart int, splits *int, opts Options) (covered bool, err error) {
	log := opts.log()
	sameGroup := backGroup == frontGroup

	pback := backGroup.Get(back)
	if pback.NSides() < 1 {
		return false, nil
	}
	if _, ok := pback.FindPlane(arena); !ok {
		// Point/line primitive: no plane to clip against, success with no
		// action.
		return false, nil
	}

	frontIdx := frontStart
	for frontIdx < frontGroup.Len() {
		pfront := frontGroup.Get(frontIdx)
		if pfront.NSides() < 3 {
			frontIdx++
			continue
		}
		if !primitive.Coplanar(pfront, pback, arena) {
			frontIdx++
			continue
		}

		done := false
		for !done {
			pback = backGroup.Get(back)
			pfront = frontGroup.Get(frontIdx)

			if pfront.Equal(pback) || primitive.Contains(pfront, pback, arena) {
				covered = true
				done = true
				break
			}

			other, split, cerr := primitive.ClipOnce(pback, pfront, arena)
			if cerr != nil {
				return false, wrapPrimitiveErr(cerr)
			}
			if !split {
				done = true
				break
			}

			*splits++
			if opts.Verbose {
				log.Debug("clip: split", "back", pback.ID, "front", pfront.ID, "splits", *splits)
			}
			if *splits >= MAX_SPLITS {
				if opts.Verbose {
					log.Debug("clip: split budget exhausted", "back", pback.ID, "front", pfront.ID, "splits", *splits)
				}
				return false, ErrSplitBudgetExhausted
			}

			backGroup.Insert(back+1, other)
			if sameGroup {
				frontIdx++
			}
		}

		if covered {
			if opts.Verbose {
				log.Debug("clip: back polygon covered, deleting", "back", pback.ID, "front", pfront.ID)
			}
			backGroup.Delete(back)
			return true, nil
		}
		frontIdx++
	}
	return false, nil
}

// discard is an io.Writer that throws everything away, used as the
// handler sink for a disabled Logger.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
