package objio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vertexforge/objclip/vertex"
)

// ColourMaterial maps a primitive's colour value back to the material name
// written in a usemtl line. A nil ColourMaterial falls back to
// defaultColourMaterial, never to silently skipping usemtl output.
type ColourMaterial func(colour int) string

// VertexStyle selects how a face line references a vertex.
type VertexStyle int

const (
	// VertexStylePositive writes a plain 1-based index counted from the
	// start of the vertex list (id+1).
	VertexStylePositive VertexStyle = iota
	// VertexStyleNegative writes a negative index counted back from the
	// end of the vertex list (-(total-id)), valid per the OBJ spec and
	// useful for streaming writers that don't know the final vertex count
	// up front.
	VertexStyleNegative
)

// MeshStyle selects how an n>3-sided primitive is decomposed into face
// lines, since plain Wavefront "f" statements are not required to support
// concave or non-planar polygons the way this package's Primitive does.
type MeshStyle int

const (
	// MeshStyleNoChange emits one face line per primitive regardless of
	// side count.
	MeshStyleNoChange MeshStyle = iota
	// MeshStyleTriangleFan decomposes every primitive with more than 3
	// sides into a fan of triangles sharing vertex 0: (0,1,2), (0,2,3),
	// (0,3,4), and so on.
	MeshStyleTriangleFan
	// MeshStyleTriangleStrip decomposes every primitive with more than 3
	// sides into a zigzag strip of triangles, alternating between the
	// next unused vertex from the head of the side list and the next
	// unused vertex from the tail: (0,1,2), (n-1,0,2), (n-1,2,3),
	// (n-2,n-1,3), and so on.
	MeshStyleTriangleStrip
)

// WriteOptions configures Write's output contract.
type WriteOptions struct {
	// VertexStyle selects face-line vertex indexing. Zero value is
	// VertexStylePositive.
	VertexStyle VertexStyle
	// MeshStyle selects n>3-sided face decomposition. Zero value is
	// MeshStyleNoChange.
	MeshStyle MeshStyle
	// ColourMaterial resolves a primitive's colour to a material name for
	// usemtl lines. A nil ColourMaterial uses defaultColourMaterial.
	ColourMaterial ColourMaterial
	// ObjectName names the object the per-group "g" lines are emitted
	// under. Empty defaults to "object".
	ObjectName string
	// RotationPivot, if non-nil, is the renumbered vertex id at which a
	// "# Following vertices rotate" banner is written just before that
	// vertex's "v" line, marking the start of a rotating vertex block for
	// downstream tools that animate a subset of a mesh's vertices.
	RotationPivot *int
}

func defaultColourMaterial(colour int) string {
	return fmt.Sprintf("colour_%d", colour)
}

// Write serializes mesh as Wavefront OBJ text: a vertex-count header, one
// "v" line per surviving vertex (in renumbered ID order), then a
// primitive-count header and "g"/"usemtl"/face block per non-empty group
// in mesh.Order.
//
// Write assumes the caller has already run the output pipeline over
// mesh.Arena — FindDuplicates, each surviving group's SetUsed, then
// Renumber — so that Arena.Vertices and Arena.ID reflect the final,
// deduplicated vertex set. Calling Write without that pipeline will still
// produce output, just over whatever (possibly stale or un-deduplicated)
// IDs the arena currently holds.
func Write(w io.Writer, mesh *Mesh, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	colourMaterial := opts.ColourMaterial
	if colourMaterial == nil {
		colourMaterial = defaultColourMaterial
	}
	objectName := opts.ObjectName
	if objectName == "" {
		objectName = "object"
	}

	verts := mesh.Arena.Vertices()
	if _, err := fmt.Fprintf(bw, "# %d vertices\n", len(verts)); err != nil {
		return err
	}
	for i, v := range verts {
		if opts.RotationPivot != nil && i == *opts.RotationPivot {
			if _, err := bw.WriteString("# Following vertices rotate\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X(), v.Y(), v.Z()); err != nil {
			return err
		}
	}

	for groupIdx, name := range mesh.Order {
		g := mesh.Groups[name]
		if g.Len() == 0 {
			continue
		}

		if _, err := fmt.Fprintf(bw, "# %d primitives\n", g.Len()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "g %s %s_%d\n", objectName, objectName, groupIdx); err != nil {
			return err
		}

		lastColour := -1
		haveColour := false
		for i := 0; i < g.Len(); i++ {
			p := g.Get(i)

			if !haveColour || p.Colour != lastColour {
				if _, err := fmt.Fprintf(bw, "usemtl %s\n", colourMaterial(p.Colour)); err != nil {
					return err
				}
				lastColour = p.Colour
				haveColour = true
			}

			if err := writeFaces(bw, p.Sides(), mesh.Arena, len(verts), opts.VertexStyle, opts.MeshStyle); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// writeFaces emits one or more face lines for sides, decomposing it per
// meshStyle if it has more than 3 sides.
func writeFaces(bw *bufio.Writer, sides []int, arena *vertex.Arena, total int, style VertexStyle, meshStyle MeshStyle) error {
	if len(sides) <= 3 || meshStyle == MeshStyleNoChange {
		return writeFace(bw, sides, arena, total, style)
	}

	var tris [][3]int
	switch meshStyle {
	case MeshStyleTriangleFan:
		tris = triangleFan(sides)
	case MeshStyleTriangleStrip:
		tris = triangleStrip(sides)
	}
	for _, tri := range tris {
		if err := writeFace(bw, tri[:], arena, total, style); err != nil {
			return err
		}
	}
	return nil
}

// triangleFan decomposes sides into a fan sharing sides[0]: (0,1,2),
// (0,2,3), (0,3,4), ...
func triangleFan(sides []int) [][3]int {
	n := len(sides)
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	for s := 1; s <= n-2; s++ {
		tris = append(tris, [3]int{sides[0], sides[s], sides[s+1]})
	}
	return tris
}

// triangleStrip decomposes sides into a zigzag strip. The first triangle
// is (0,1,2); each following triangle is built from the previous
// triangle's first and third vertex plus the next unclaimed vertex, taken
// alternately from the tail of sides (counting down from n-1) and the
// head of sides (counting up from 3):
//
//	(0,1,2), (n-1,0,2), (n-1,2,3), (n-2,n-1,3), (n-2,3,4), ...
func triangleStrip(sides []int) [][3]int {
	n := len(sides)
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	prev := [3]int{sides[0], sides[1], sides[2]}
	tris = append(tris, prev)

	tailNext := n - 1
	headNext := 3
	fromTail := true
	for len(tris) < n-2 {
		var face [3]int
		if fromTail {
			face = [3]int{sides[tailNext], prev[0], prev[2]}
			tailNext--
		} else {
			face = [3]int{prev[0], prev[2], sides[headNext]}
			headNext++
		}
		tris = append(tris, face)
		prev = face
		fromTail = !fromTail
	}
	return tris
}

func writeFace(bw *bufio.Writer, sides []int, arena *vertex.Arena, total int, style VertexStyle) error {
	prefix := "f"
	switch len(sides) {
	case 1:
		prefix = "p"
	case 2:
		prefix = "l"
	}
	if _, err := bw.WriteString(prefix); err != nil {
		return err
	}
	for _, s := range sides {
		if _, err := fmt.Fprintf(bw, " %d", faceIndex(arena, s, total, style)); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}

// faceIndex returns the OBJ index written for vertex-arena index s, under
// style.
func faceIndex(arena *vertex.Arena, s, total int, style VertexStyle) int {
	id := arena.ID(s)
	if style == VertexStyleNegative {
		return -(total - id)
	}
	return id + 1
}
