// Package vertex implements the clipper's vertex arena: an append-only
// store of 3D coordinates with tolerant deduplication, usage marking, and
// output renumbering.
package vertex

import (
	"fmt"
	"sort"

	"github.com/vertexforge/objclip/geom"
)

// NoDup is the Dup value for a vertex that is not a duplicate of any
// earlier vertex.
const NoDup = -1

// Vertex is one entry in the arena.
type Vertex struct {
	Coords geom.Vec3
	ID     int
	Dup    int
	Marked bool
}

// Arena is a growable, append-only vertex store. Vertices are never
// individually removed — deletion is expressed by the absence of the
// Marked flag after a Renumber pass.
type Arena struct {
	vertices []Vertex

	// sortedIdx is the auxiliary pointer/index array used only during
	// duplicate detection: it holds a sorted view over vertices by
	// lexicographic coordinate order.
	sortedIdx []int

	// dedupedCount is the arena length as of the last FindDuplicates call.
	// Renumber refuses to run if vertices were appended since then without
	// a fresh dedup pass, per spec: find_duplicates must precede any
	// marking/renumbering that relies on duplicate collapsing.
	dedupedCount int
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

// Len returns the number of vertices in the arena, including duplicates
// and unmarked (to-be-dropped) ones.
func (a *Arena) Len() int { return len(a.vertices) }

// Add appends a new vertex unconditionally and returns its index. The new
// vertex starts with ID equal to its index, no duplicate link, and
// unmarked.
func (a *Arena) Add(coords geom.Vec3) int {
	idx := len(a.vertices)
	a.vertices = append(a.vertices, Vertex{
		Coords: coords,
		ID:     idx,
		Dup:    NoDup,
	})
	return idx
}

// Find performs a linear scan for a vertex whose coordinates are tolerantly
// equal to coords, returning its index and true, or false if none exists.
func (a *Arena) Find(coords geom.Vec3) (int, bool) {
	for i := range a.vertices {
		if geom.VectorEqual(a.vertices[i].Coords, coords) {
			return i, true
		}
	}
	return 0, false
}

// Coords returns the stored coordinates at index i.
func (a *Arena) Coords(i int) geom.Vec3 {
	return a.vertices[i].Coords
}

// representative follows the Dup chain from i to its non-duplicate root.
// Dup chains are kept flat by FindDuplicates, so this never needs to loop
// more than once in steady state, but it walks fully regardless.
func (a *Arena) representative(i int) int {
	for a.vertices[i].Dup != NoDup {
		i = a.vertices[i].Dup
	}
	return i
}

// ID returns the (possibly renumbered) id of the vertex at index i,
// following the duplicate chain to its representative first.
func (a *Arena) ID(i int) int {
	return a.vertices[a.representative(i)].ID
}

// Mark flags the vertex at index i as used. The mark is always applied to
// i's duplicate-chain representative (and cleared from i if i is itself a
// duplicate), so a duplicate class is never left with the mark on a
// non-representative member regardless of when Mark is called relative to
// FindDuplicates.
func (a *Arena) Mark(i int) {
	rep := a.representative(i)
	a.vertices[rep].Marked = true
	if rep != i {
		a.vertices[i].Marked = false
	}
}

// MarkAll marks every vertex's duplicate-chain representative as used.
func (a *Arena) MarkAll() {
	for i := range a.vertices {
		a.Mark(i)
	}
}

// IsUsed reports whether the vertex at index i (after following its
// duplicate chain) is marked.
func (a *Arena) IsUsed(i int) bool {
	return a.vertices[a.representative(i)].Marked
}

// FindDuplicates sorts an auxiliary index view of the arena lexicographically
// by (x, y, z) — strict ordering decides the walk, tolerant equality decides
// collisions — then walks the sorted view collapsing tolerant-equal
// neighbors into duplicate classes. The representative of a class is its
// earliest member by sort position, not by original arena index. Marked
// status is propagated up to the representative and cleared from the
// others. It returns the number of vertices merged into an earlier
// representative.
func (a *Arena) FindDuplicates() int {
	n := len(a.vertices)
	a.sortedIdx = make([]int, n)
	for i := range a.sortedIdx {
		a.sortedIdx[i] = i
	}
	sort.Slice(a.sortedIdx, func(i, j int) bool {
		return geom.Compare(a.vertices[a.sortedIdx[i]].Coords, a.vertices[a.sortedIdx[j]].Coords) < 0
	})

	merged := 0
	repPos := 0 // position in sortedIdx of the current class's representative
	for pos := 1; pos < n; pos++ {
		repIdx := a.sortedIdx[repPos]
		curIdx := a.sortedIdx[pos]
		if geom.VectorEqual(a.vertices[repIdx].Coords, a.vertices[curIdx].Coords) {
			a.vertices[curIdx].Dup = repIdx
			if a.vertices[curIdx].Marked {
				a.vertices[repIdx].Marked = true
			}
			a.vertices[curIdx].Marked = false
			merged++
			continue
		}
		repPos = pos
	}

	a.dedupedCount = n
	return merged
}

// Vertices returns the coordinates of every marked vertex, ordered by its
// renumbered ID (index 0 is ID 0, and so on). It is meant to be called
// after FindDuplicates, the group's SetUsed pass, and Renumber have all
// run, so that the IDs it relies on are both deduplicated and dense.
func (a *Arena) Vertices() []geom.Vec3 {
	maxID := -1
	for i := range a.vertices {
		if a.vertices[i].Marked && a.vertices[i].ID > maxID {
			maxID = a.vertices[i].ID
		}
	}
	if maxID < 0 {
		return nil
	}
	out := make([]geom.Vec3, maxID+1)
	for i := range a.vertices {
		if a.vertices[i].Marked {
			out[a.vertices[i].ID] = a.vertices[i].Coords
		}
	}
	return out
}

// Renumber walks the arena in original order, assigning successive ids
// (0, 1, 2, ...) only to marked vertices; unmarked vertices keep a stale id
// and are not meant to be emitted. It returns the number of vertices kept.
//
// It panics if vertices were appended to the arena since the last
// FindDuplicates call: running Renumber over an un-deduplicated tail would
// silently keep duplicate coordinates and drop their representative's id,
// per the arena's documented ordering contract.
func (a *Arena) Renumber() int {
	if a.dedupedCount != len(a.vertices) {
		panic(fmt.Sprintf("vertex.Arena.Renumber: %d vertices appended since last FindDuplicates (deduped %d, have %d)",
			len(a.vertices)-a.dedupedCount, a.dedupedCount, len(a.vertices)))
	}

	kept := 0
	for i := range a.vertices {
		if a.vertices[i].Marked {
			a.vertices[i].ID = kept
			kept++
		}
	}
	return kept
}
