// Package objio reads and writes the Wavefront OBJ subset the clipper
// operates on: vertices, faces, groups, and materials. It does not carry
// normals or texture coordinates — the clipping engine works purely on
// polygon geometry — so a round trip through this package drops any of
// those a source file had.
package objio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/group"
	"github.com/vertexforge/objclip/primitive"
	"github.com/vertexforge/objclip/vertex"
)

// MaterialColour maps a material name (the argument of a usemtl line) to
// the opaque colour value stored on each Primitive. The clipper itself
// never interprets colour beyond using it as a coplanarity-irrelevant tag
// carried through untouched; assigning it meaning is entirely up to the
// caller's implementation of this function.
type MaterialColour func(material string) int

// Mesh is the in-memory result of reading an OBJ file: the shared vertex
// arena together with one polygon group per "g" statement, in file order.
// A file with no "g" statements parses into a single unnamed ("") group.
type Mesh struct {
	Arena  *vertex.Arena
	Groups map[string]*group.Group
	Order  []string
}

// Read parses r as Wavefront OBJ text. colourFor resolves usemtl material
// names to colour values; if nil, every primitive is assigned colour 0.
//
// Only "v", "g", "usemtl", and "f" lines are interpreted; every other line
// (including "vn", "vt", "o", "s", "mtllib", and comments) is skipped, the
// same tolerant subset the clipping pass needs and nothing more.
func Read(r io.Reader, colourFor MaterialColour) (*Mesh, error) {
	if colourFor == nil {
		colourFor = func(string) int { return 0 }
	}

	m := &Mesh{
		Arena:  vertex.New(),
		Groups: map[string]*group.Group{},
	}
	ensureGroup := func(name string) *group.Group {
		g, ok := m.Groups[name]
		if !ok {
			g = group.New()
			m.Groups[name] = g
			m.Order = append(m.Order, name)
		}
		return g
	}
	ensureGroup("")

	currentGroup := ""
	currentColour := colourFor("")
	nextID := 0

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, rerr := reader.ReadString('\n')
		lineNo++
		line = strings.TrimSpace(line)

		if line != "" && !strings.HasPrefix(line, "#") {
			tokens := strings.Fields(line)
			switch tokens[0] {
			case "v":
				v, err := parseVertex(tokens)
				if err != nil {
					return nil, fmt.Errorf("objio: line %d: %w", lineNo, err)
				}
				m.Arena.Add(v)

			case "g":
				if len(tokens) >= 2 {
					currentGroup = tokens[1]
				} else {
					currentGroup = ""
				}
				ensureGroup(currentGroup)

			case "usemtl":
				if len(tokens) >= 2 {
					currentColour = colourFor(tokens[1])
				}

			case "f":
				sides := tokens[1:]
				if len(sides) > primitive.MaxSides {
					return nil, fmt.Errorf("objio: line %d: face has %d vertices, max %d", lineNo, len(sides), primitive.MaxSides)
				}
				p := primitive.New(currentColour, nextID)
				nextID++
				for _, tok := range sides {
					idx, err := parseFaceIndex(tok, m.Arena.Len())
					if err != nil {
						return nil, fmt.Errorf("objio: line %d: %w", lineNo, err)
					}
					p.AddSide(idx)
				}
				ensureGroup(currentGroup).Add(p)
			}
		}

		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return nil, rerr
		}
	}

	return m, nil
}

func parseVertex(tokens []string) (geom.Vec3, error) {
	if len(tokens) < 4 {
		return geom.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %q", strings.Join(tokens, " "))
	}
	x, e1 := strconv.ParseFloat(tokens[1], 64)
	y, e2 := strconv.ParseFloat(tokens[2], 64)
	z, e3 := strconv.ParseFloat(tokens[3], 64)
	if e1 != nil || e2 != nil || e3 != nil {
		return geom.Vec3{}, fmt.Errorf("bad vertex %q", strings.Join(tokens, " "))
	}
	return geom.Vec3{x, y, z}, nil
}

// parseFaceIndex resolves one face-statement token ("v", "v/vt", or
// "v/vt/vn") to a zero-based arena index. OBJ indices are 1-based from the
// start of the file; a negative index is relative to the vertex count seen
// so far.
func parseFaceIndex(tok string, vertexCount int) (int, error) {
	parts := strings.SplitN(tok, "/", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", tok)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		return vertexCount + n, nil
	default:
		return 0, fmt.Errorf("face index 0 is invalid")
	}
}
