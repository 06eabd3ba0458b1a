// Package group implements the clipper's polygon group: a flat, growable
// collection of primitives processed together during a clip pass, with the
// same append/remove-by-shift discipline the collision world uses for its
// body list.
package group

import (
	"github.com/vertexforge/objclip/primitive"
	"github.com/vertexforge/objclip/vertex"
)

// minCapacity is the smallest backing array Alloc ever allocates.
const minCapacity = 8

// Group is an ordered collection of polygons; its polygons may carry
// different colours. Position IS render order (earlier positions draw first/further
// back): Insert and Delete both preserve the relative order of every other
// polygon, shifting the tail right or left respectively.
type Group struct {
	polys []*primitive.Primitive
}

// New returns an empty group with no pre-allocated capacity.
func New() *Group {
	return &Group{}
}

// Init resets g to an empty group, reusing its backing array if it has
// one.
func (g *Group) Init() {
	g.polys = g.polys[:0]
}

// Clear empties the group without releasing its backing array.
func (g *Group) Clear() {
	for i := range g.polys {
		g.polys[i] = nil
	}
	g.polys = g.polys[:0]
}

// Len returns the number of polygons currently in the group.
func (g *Group) Len() int { return len(g.polys) }

// Get returns the polygon at position i.
func (g *Group) Get(i int) *primitive.Primitive { return g.polys[i] }

// Alloc grows g's backing array, if needed, to hold at least n polygons.
// The new capacity is the largest of minCapacity, double the current
// capacity, and n, matching the spatial grid's power-of-two-ish
// over-allocation so repeated small appends do not each trigger a copy.
func (g *Group) Alloc(n int) {
	if cap(g.polys) >= n {
		return
	}
	newCap := minCapacity
	if c := cap(g.polys) * 2; c > newCap {
		newCap = c
	}
	if n > newCap {
		newCap = n
	}
	grown := make([]*primitive.Primitive, len(g.polys), newCap)
	copy(grown, g.polys)
	g.polys = grown
}

// Add appends p to the group, growing the backing array as needed.
func (g *Group) Add(p *primitive.Primitive) {
	g.Alloc(len(g.polys) + 1)
	g.polys = append(g.polys, p)
}

// Insert places p at position i, shifting the tail one position to the
// right.
func (g *Group) Insert(i int, p *primitive.Primitive) {
	g.Alloc(len(g.polys) + 1)
	g.polys = append(g.polys, nil)
	copy(g.polys[i+1:], g.polys[i:])
	g.polys[i] = p
}

// Delete removes the polygon at position i, shifting every successor one
// position left so render order is preserved. Position is render order
// within a group (spec's "Clip order"), so a swap-with-last removal would
// scramble it.
func (g *Group) Delete(i int) {
	last := len(g.polys) - 1
	copy(g.polys[i:], g.polys[i+1:])
	g.polys[last] = nil
	g.polys = g.polys[:last]
}

// DeleteValue removes the first occurrence of p from the group, mirroring
// the collision world's remove-by-identity search over its body slice. It
// is a no-op if p is not present.
func (g *Group) DeleteValue(p *primitive.Primitive) {
	for i, q := range g.polys {
		if q == p {
			g.Delete(i)
			return
		}
	}
}

// SetUsed marks every vertex referenced by a side of any polygon still in
// the group as used in arena, the step that must run after clipping and
// before Renumber so that vertices belonging only to discarded (fully
// occluded) polygons are dropped from the output.
func (g *Group) SetUsed(arena *vertex.Arena) {
	for _, p := range g.polys {
		for _, s := range p.Sides() {
			arena.Mark(s)
		}
	}
}

// All returns every polygon in the group, in current (not necessarily
// insertion) order. The returned slice aliases the group's internal
// storage and must not be retained across a mutating call.
func (g *Group) All() []*primitive.Primitive { return g.polys }
