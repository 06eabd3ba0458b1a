package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

// square builds a unit square in the Z=z plane with the given winding,
// returning the primitive and the arena it was built in.
func square(t *testing.T, z float64) (*Primitive, *vertex.Arena) {
	t.Helper()
	a := vertex.New()
	i0 := a.Add(geom.Vec3{0, 0, z})
	i1 := a.Add(geom.Vec3{1, 0, z})
	i2 := a.Add(geom.Vec3{1, 1, z})
	i3 := a.Add(geom.Vec3{0, 1, z})

	p := New(0, 1)
	p.AddSide(i0)
	p.AddSide(i1)
	p.AddSide(i2)
	p.AddSide(i3)
	return p, a
}

func TestAddSidePanicsAtCapacity(t *testing.T) {
	p := New(0, 1)
	for i := 0; i < MaxSides; i++ {
		p.AddSide(i)
	}
	require.Panics(t, func() { p.AddSide(99) })
}

func TestNormalOfUnitSquare(t *testing.T) {
	p, a := square(t, 0)
	n, ok := p.Normal(a)
	require.True(t, ok)
	require.InDelta(t, 0.0, n.X(), geom.EPS)
	require.InDelta(t, 0.0, n.Y(), geom.EPS)
	require.InDelta(t, 1.0, n.Z(), geom.EPS)
}

func TestNormalUndefinedForDegeneratePolygon(t *testing.T) {
	p := New(0, 1)
	a := vertex.New()
	i0 := a.Add(geom.Vec3{0, 0, 0})
	i1 := a.Add(geom.Vec3{1, 0, 0})
	p.AddSide(i0)
	p.AddSide(i1)

	_, ok := p.Normal(a)
	require.False(t, ok)
}

func TestNormalIsCachedUntilInvalidated(t *testing.T) {
	p, a := square(t, 0)
	n1, _ := p.Normal(a)
	p.Reverse()
	n2, _ := p.Normal(a)
	require.InDelta(t, -n1.Z(), n2.Z(), geom.EPS)
}

func TestBBox(t *testing.T) {
	p, a := square(t, 2)
	box, ok := p.BBox(a)
	require.True(t, ok)
	require.Equal(t, geom.Vec3{0, 0, 2}, box.Min)
	require.Equal(t, geom.Vec3{1, 1, 2}, box.Max)
}

func TestEqualAcceptsRotationNotReflection(t *testing.T) {
	p := New(0, 1)
	p.AddSide(0)
	p.AddSide(1)
	p.AddSide(2)
	p.AddSide(3)

	rotated := New(0, 2)
	rotated.AddSide(2)
	rotated.AddSide(3)
	rotated.AddSide(0)
	rotated.AddSide(1)
	require.True(t, p.Equal(rotated))

	reflected := New(0, 3)
	reflected.AddSide(3)
	reflected.AddSide(2)
	reflected.AddSide(1)
	reflected.AddSide(0)
	require.False(t, p.Equal(reflected))
}

func TestSkewSideDetectsNonPlanarVertex(t *testing.T) {
	a := vertex.New()
	i0 := a.Add(geom.Vec3{0, 0, 0})
	i1 := a.Add(geom.Vec3{1, 0, 0})
	i2 := a.Add(geom.Vec3{1, 1, 0})
	i3 := a.Add(geom.Vec3{0, 1, 5}) // lifted off-plane

	p := New(0, 1)
	p.AddSide(i0)
	p.AddSide(i1)
	p.AddSide(i2)
	p.AddSide(i3)

	require.Equal(t, 3, p.SkewSide(a))
}
