package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

func TestSplitBisectsSquare(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}

	clipA := a.Add(geom.Vec3{1, -1, 0})
	clipB := a.Add(geom.Vec3{1, 3, 0})

	other, err := Split(p, clipA, clipB, a)
	require.NoError(t, err)
	require.NotNil(t, other)

	require.Equal(t, 4, p.nsides)
	require.Equal(t, 4, other.nsides)

	totalArea := 0.0
	for _, poly := range []*Primitive{p, other} {
		box, ok := poly.BBox(a)
		require.True(t, ok)
		totalArea += (box.Max.X() - box.Min.X()) * (box.Max.Y() - box.Min.Y())
	}
	require.InDelta(t, 4.0, totalArea, geom.EPS)
}

func TestSplitNoOpWhenLineMissesPolygon(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}

	clipA := a.Add(geom.Vec3{10, -1, 0})
	clipB := a.Add(geom.Vec3{10, 3, 0})

	other, err := Split(p, clipA, clipB, a)
	require.NoError(t, err)
	require.Nil(t, other)
	require.Equal(t, 4, p.nsides)
}

func TestSplitReusesExistingVertexAtIntersection(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	before := a.Len()

	// Clip line through x=1, same as TestSplitBisectsSquare. A second copy
	// of the square, split by the same line in the same arena, meets it at
	// the two vertices the first split already created.
	clipA := a.Add(geom.Vec3{1, -1, 0})
	clipB := a.Add(geom.Vec3{1, 3, 0})
	before += 2

	other1, err := Split(p, clipA, clipB, a)
	require.NoError(t, err)
	require.NotNil(t, other1)
	afterFirst := a.Len()
	require.Equal(t, before+2, afterFirst)

	other2, err := Split(other1, clipA, clipB, a)
	require.NoError(t, err)
	// other1 is entirely on one side of the line already (it came from
	// the first split), so the second split against the same line is a
	// no-op and adds no further vertices.
	require.Nil(t, other2)
	require.Equal(t, afterFirst, a.Len())

	copyOfSquare := New(0, 2)
	for i := 0; i < 4; i++ {
		copyOfSquare.AddSide(i)
	}
	other3, err := Split(copyOfSquare, clipA, clipB, a)
	require.NoError(t, err)
	require.NotNil(t, other3)
	require.Equal(t, afterFirst, a.Len())
}
