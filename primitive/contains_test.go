package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexforge/objclip/geom"
	"github.com/vertexforge/objclip/vertex"
)

func TestContainsPointInsideOutsideAndOnBoundary(t *testing.T) {
	p, a := square(t, 0)

	require.True(t, ContainsPoint(p, geom.Vec3{0.5, 0.5, 0}, a))
	require.False(t, ContainsPoint(p, geom.Vec3{2, 2, 0}, a))
	require.True(t, ContainsPoint(p, geom.Vec3{0, 0.5, 0}, a), "point on boundary edge counts as inside")
	require.True(t, ContainsPoint(p, geom.Vec3{0, 0, 0}, a), "point on a vertex counts as inside")
}

func TestContainsFullCoverage(t *testing.T) {
	a := vertex.New()
	outer := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {4, 0, 0}, {4, 4, 0}, {0, 4, 0}} {
		outer.AddSide(a.Add(c))
	}
	inner := New(1, 2)
	for _, c := range []geom.Vec3{{1, 1, 0}, {2, 1, 0}, {2, 2, 0}, {1, 2, 0}} {
		inner.AddSide(a.Add(c))
	}

	require.True(t, Contains(outer, inner, a))
	require.False(t, Contains(inner, outer, a))
}

func TestContainsPartialOverlapNotContained(t *testing.T) {
	a := vertex.New()
	outer := New(0, 1)
	for _, c := range []geom.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}} {
		outer.AddSide(a.Add(c))
	}
	straddling := New(1, 2)
	for _, c := range []geom.Vec3{{1, 1, 0}, {3, 1, 0}, {3, 3, 0}, {1, 3, 0}} {
		straddling.AddSide(a.Add(c))
	}

	require.False(t, Contains(outer, straddling, a))
}
