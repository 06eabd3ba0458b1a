package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindPlaneIgnoresLargestAxis(t *testing.T) {
	p := FindPlane(Vec3{0, 0, 1})
	require.Equal(t, 2, p.Z)
	require.ElementsMatch(t, []int{0, 1}, []int{p.X, p.Y})

	p = FindPlane(Vec3{1, 0, 0})
	require.Equal(t, 0, p.Z)

	p = FindPlane(Vec3{0, -5, 1})
	require.Equal(t, 1, p.Z)
}

func TestIntersectSlopedLines(t *testing.T) {
	plane := Plane{X: 0, Y: 1, Z: 2}
	a := Vec3{0, 0, 0}
	b := Vec3{2, 2, 0}
	c := Vec3{0, 2, 0}
	d := Vec3{2, 0, 0}

	got, ok := Intersect(a, b, c, d, plane)
	require.True(t, ok)
	require.InDelta(t, 1.0, got.X(), EPS)
	require.InDelta(t, 1.0, got.Y(), EPS)
}

func TestIntersectVerticalAndHorizontal(t *testing.T) {
	plane := Plane{X: 0, Y: 1, Z: 2}
	// AB vertical at x=1, CD horizontal at y=3
	a := Vec3{1, 0, 0}
	b := Vec3{1, 5, 0}
	c := Vec3{0, 3, 0}
	d := Vec3{4, 3, 0}

	got, ok := Intersect(a, b, c, d, plane)
	require.True(t, ok)
	require.InDelta(t, 1.0, got.X(), EPS)
	require.InDelta(t, 3.0, got.Y(), EPS)
}

func TestIntersectParallelLinesFail(t *testing.T) {
	plane := Plane{X: 0, Y: 1, Z: 2}
	a := Vec3{0, 0, 0}
	b := Vec3{1, 1, 0}
	c := Vec3{0, 1, 0}
	d := Vec3{1, 2, 0}

	_, ok := Intersect(a, b, c, d, plane)
	require.False(t, ok)
}

func TestIntersectRecoversThirdCoordinate(t *testing.T) {
	// Two lines in a plane with its normal along Y, so FindPlane makes Y
	// the ignored axis and X, Z the in-plane axes; checks the in-plane
	// intersection and that the ignored Y coordinate is recovered.
	plane := FindPlane(Vec3{0, 1, 0})
	a := Vec3{0, 5, 0}
	b := Vec3{2, 5, 2}
	c := Vec3{0, 5, 2}
	d := Vec3{2, 5, 0}

	got, ok := Intersect(a, b, c, d, plane)
	require.True(t, ok)
	require.InDelta(t, 1.0, got.X(), EPS)
	require.InDelta(t, 5.0, got.Y(), EPS)
	require.InDelta(t, 1.0, got.Z(), EPS)
}
