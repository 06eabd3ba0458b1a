package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

func quad(a *vertex.Arena, colour, id int, corners [4]geom.Vec3) *Primitive {
	p := New(colour, id)
	for _, c := range corners {
		p.AddSide(a.Add(c))
	}
	return p
}

func TestClipPartialOverlapProducesOutsideFragment(t *testing.T) {
	a := vertex.New()
	rear := quad(a, 0, 1, [4]geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}})
	front := quad(a, 1, 2, [4]geom.Vec3{{1, 1, 0}, {3, 1, 0}, {3, 3, 0}, {1, 3, 0}})

	state := StateNone
	var fragments []*Primitive
	for edgeIdx := 0; edgeIdx < front.NSides(); edgeIdx++ {
		outside, st, err := Clip(rear, front, edgeIdx, a)
		require.NoError(t, err)
		if outside != nil {
			fragments = append(fragments, outside)
		}
		state = st
		if state == StateComplete {
			break
		}
	}

	require.NotEmpty(t, fragments)
	// No kept fragment may lie inside front. A fragment's corners on the cut
	// lines sit on front's boundary, which ContainsPoint counts as inside,
	// so each fragment is tested by its centroid.
	for _, f := range fragments {
		var centroid geom.Vec3
		for i := 0; i < f.NSides(); i++ {
			centroid = geom.Add(centroid, a.Coords(f.Side(i)))
		}
		centroid = geom.Scale(centroid, 1/float64(f.NSides()))
		require.False(t, ContainsPoint(front, centroid, a))
	}
}

func TestClipDegenerateClipperErrors(t *testing.T) {
	a := vertex.New()
	rear := quad(a, 0, 1, [4]geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}})
	front := New(1, 2)
	front.AddSide(a.Add(geom.Vec3{0, 0, 0}))
	front.AddSide(a.Add(geom.Vec3{1, 0, 0}))

	_, _, err := Clip(rear, front, 0, a)
	require.ErrorIs(t, err, ErrDegenerateClipper)
}
