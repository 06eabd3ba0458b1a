package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

func TestCoplanarSameFacingOverlap(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	q := New(1, 2)
	for _, c := range []geom.Vec3{{0.5, 0.5, 0}, {1.5, 0.5, 0}, {1.5, 1.5, 0}, {0.5, 1.5, 0}} {
		q.AddSide(a.Add(c))
	}

	require.True(t, Coplanar(p, q, a))
}

func TestCoplanarDifferentPlanesRejected(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	q := New(1, 2)
	for _, c := range []geom.Vec3{{0, 0, 1}, {2, 0, 1}, {2, 2, 1}, {0, 2, 1}} {
		q.AddSide(a.Add(c))
	}

	require.False(t, Coplanar(p, q, a))
}

func TestCoplanarOppositeFacingRejected(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	q := New(1, 2)
	// Same plane, wound the opposite way (normal points -Z instead of +Z).
	for _, c := range []geom.Vec3{{0, 0, 0}, {0, 2, 0}, {2, 2, 0}, {2, 0, 0}} {
		q.AddSide(a.Add(c))
	}

	require.False(t, Coplanar(p, q, a))
}

func TestCoplanarDegeneratePrimitiveOnPlane(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	// q is a line (2 sides, no normal), lying in p's z=0 plane.
	q := New(1, 2)
	for _, c := range []geom.Vec3{{0.5, 0.5, 0}, {1.5, 1.5, 0}} {
		q.AddSide(a.Add(c))
	}

	require.True(t, Coplanar(p, q, a))
	require.True(t, Coplanar(q, p, a))
}

func TestCoplanarDegeneratePrimitiveOffPlane(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		p.AddSide(a.Add(c))
	}
	// q is a point (1 side, no normal), off p's z=0 plane.
	q := New(1, 2)
	q.AddSide(a.Add(geom.Vec3{1, 1, 1}))

	require.False(t, Coplanar(p, q, a))
	require.False(t, Coplanar(q, p, a))
}

func TestCoplanarNeitherHasNormal(t *testing.T) {
	a := vertex.New()
	p := New(0, 1)
	p.AddSide(a.Add(geom.Vec3{0, 0, 0}))
	q := New(1, 2)
	q.AddSide(a.Add(geom.Vec3{0, 0, 0}))

	require.False(t, Coplanar(p, q, a))
}
