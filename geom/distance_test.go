package geom

import (
	"testing"

	"github.com/exactgeom/exactgeom/arith"
	"github.com/stretchr/testify/assert"
)

func TestRayPointDistanceScenario(t *testing.T) {
	r := mustRay(t, pt(0, 0, 0), vec(1, 0, 0))
	p := pt(0, 1, 0)

	assert.Equal(t, 0, DistanceSquared(r, p).Cmp(rat("1")))
	d, err := Distance(r, p, 0, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(rat("1")))
}

func TestPointDistances(t *testing.T) {
	table := []struct {
		g    Geometry
		p    *Point
		want string
	}{
		{mustLine(t, pt(0, 0, 0), pt(1, 0, 0)), pt(5, 3, 4), "25"},
		{mustRay(t, pt(0, 0, 0), vec(1, 0, 0)), pt(-3, 4, 0), "25"},
		{mustSegment(t, pt(0, 0, 0), pt(2, 0, 0)), pt(4, 0, 0), "4"},
		{mustSegment(t, pt(0, 0, 0), pt(2, 0, 0)), pt(1, 3, 0), "9"},
		{mustPlane(t, pt(0, 0, 0), vec(0, 0, 1)), pt(7, -2, 5), "25"},
		{mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0)), ptR("1/2", "1/2", "3"), "9"},
		{mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0)), pt(4, 0, 0), "4"},
		{unitTetra(t), ptR("1/4", "1/4", "1/4"), "0"},
		{unitTetra(t), pt(0, 0, 3), "4"},
	}

	for i, line := range table {
		got := DistanceSquared(line.g, line.p)
		if got.Cmp(rat(line.want)) != 0 {
			t.Errorf("%d) DistanceSquared = %s, want %s", i+1, got.RatString(), line.want)
		}
	}
}

func TestLineLineDistance(t *testing.T) {
	// Skew lines: the x axis and a shifted y-direction line at z = 2.
	l1 := mustLine(t, pt(0, 0, 0), pt(1, 0, 0))
	l2 := mustLine(t, pt(0, 0, 2), pt(0, 1, 2))
	assert.Equal(t, 0, DistanceSquared(l1, l2).Cmp(rat("4")))

	// Parallel lines.
	l3 := mustLine(t, pt(0, 3, 4), pt(1, 3, 4))
	assert.Equal(t, 0, DistanceSquared(l1, l3).Cmp(rat("25")))

	// Crossing lines are at distance zero.
	l4 := mustLine(t, pt(2, -1, 0), pt(2, 1, 0))
	assert.Equal(t, 0, DistanceSquared(l1, l4).Sign())
}

func TestRayAndSegmentDistances(t *testing.T) {
	r1 := mustRay(t, pt(0, 0, 0), vec(1, 0, 0))

	// Rays pointing away from each other: origin to origin.
	r2 := mustRay(t, pt(-2, 0, 1), vec(-1, 0, 0))
	assert.Equal(t, 0, DistanceSquared(r1, r2).Cmp(rat("5")))

	// Segment behind the ray origin.
	s1 := mustSegment(t, pt(-2, 1, 0), pt(-2, -1, 0))
	assert.Equal(t, 0, DistanceSquared(r1, s1).Cmp(rat("4")))

	// Segment crossing over the ray at height 3.
	s2 := mustSegment(t, pt(1, -1, 3), pt(1, 1, 3))
	assert.Equal(t, 0, DistanceSquared(r1, s2).Cmp(rat("9")))

	// Parallel segments at offset 1 (the no-intersection scenario pair).
	a := mustSegment(t, pt(0, 0, 0), pt(1, 0, 0))
	b := mustSegment(t, pt(0, 1, 0), pt(1, 1, 0))
	assert.Equal(t, 0, DistanceSquared(a, b).Cmp(rat("1")))

	// Staggered collinear segments: endpoint to endpoint.
	c := mustSegment(t, pt(3, 0, 0), pt(5, 0, 0))
	assert.Equal(t, 0, DistanceSquared(a, c).Cmp(rat("4")))
}

func TestPlaneDistances(t *testing.T) {
	xy := mustPlane(t, pt(0, 0, 0), vec(0, 0, 1))

	assert.Equal(t, 0, DistanceSquared(xy, mustPlane(t, pt(0, 0, 3), vec(0, 0, -1))).Cmp(rat("9")))
	assert.Equal(t, 0, DistanceSquared(xy, mustPlane(t, pt(0, 0, 0), vec(1, 0, 0))).Sign())

	// A line parallel to the plane keeps its offset; a crossing line touches.
	assert.Equal(t, 0, DistanceSquared(xy, mustLine(t, pt(0, 0, 2), pt(1, 0, 2))).Cmp(rat("4")))
	assert.Equal(t, 0, DistanceSquared(xy, mustLine(t, pt(0, 0, -1), pt(0, 0, 1))).Sign())

	// Bounded primitives hovering above.
	seg := mustSegment(t, pt(0, 0, 1), pt(1, 1, 2))
	assert.Equal(t, 0, DistanceSquared(xy, seg).Cmp(rat("1")))
	tri := mustTriangle(t, pt(0, 0, 2), pt(1, 0, 3), pt(0, 1, 4))
	assert.Equal(t, 0, DistanceSquared(xy, tri).Cmp(rat("4")))
	tet := unitTetra(t).Translate(vec(0, 0, 5))
	assert.Equal(t, 0, DistanceSquared(xy, tet).Cmp(rat("25")))
}

func TestTriangleAndTetraDistances(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0))

	// A segment hovering over the interior.
	hover := mustSegment(t, ptR("1/2", "1/2", "2"), ptR("3/4", "1/2", "2"))
	assert.Equal(t, 0, DistanceSquared(hover, tri).Cmp(rat("4")))

	// Parallel triangles stacked vertically.
	above := tri.Translate(vec(0, 0, 3))
	assert.Equal(t, 0, DistanceSquared(tri, above).Cmp(rat("9")))

	// Coplanar triangles separated along x.
	right := tri.Translate(vec(5, 0, 0))
	assert.Equal(t, 0, DistanceSquared(tri, right).Cmp(rat("9")))

	// Tetrahedra separated along an axis.
	t1 := unitTetra(t)
	t2 := t1.Translate(vec(3, 0, 0))
	assert.Equal(t, 0, DistanceSquared(t1, t2).Cmp(rat("4")))

	// Overlapping tetrahedra are at distance zero.
	t3 := t1.Translate(NewVector(rat("1/4"), rat("1/4"), rat("1/4")))
	assert.Equal(t, 0, DistanceSquared(t1, t3).Sign())
}

func TestDistanceSymmetryAndZeroLaw(t *testing.T) {
	shapes := []Geometry{
		pt(5, 5, 5),
		mustLine(t, pt(0, 0, 0), pt(1, 1, 1)),
		mustRay(t, pt(1, 0, 0), vec(0, 1, 0)),
		mustPlane(t, pt(0, 0, 3), vec(0, 0, 1)),
		mustSegment(t, pt(0, 0, 0), pt(1, 0, 0)),
		mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0)),
		unitTetra(t),
	}

	for i, a := range shapes {
		for j, b := range shapes {
			ab, ba := DistanceSquared(a, b), DistanceSquared(b, a)
			if ab.Cmp(ba) != 0 {
				t.Errorf("(%d,%d) asymmetric: %s vs %s", i, j, ab.RatString(), ba.RatString())
			}
			if (ab.Sign() == 0) != Intersects(a, b) {
				t.Errorf("(%d,%d) dsq=%s disagrees with Intersects=%v",
					i, j, ab.RatString(), Intersects(a, b))
			}
		}
	}

	for i, a := range shapes {
		if DistanceSquared(a, a).Sign() != 0 {
			t.Errorf("%d) self distance is nonzero", i)
		}
	}
}

func TestDistanceRounded(t *testing.T) {
	// Corner-to-corner gap of sqrt(3) between two boxy tetrahedra.
	a := pt(0, 0, 0)
	b := pt(1, 1, 1)
	d, err := Distance(a, b, -4, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(rat("17321/10000")))

	// An irrational gap far below the grid is ambiguous rather than
	// silently zero.
	near := ptR("1/1000000", "1/1000000", "0")
	_, err = Distance(a, near, 0, arith.RoundHalfEven)
	assert.Error(t, err)
}

func TestPerTypeWrappers(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0))
	p := ptR("1/2", "1/2", "3")

	assert.False(t, tri.Intersects(p))
	assert.Equal(t, 0, tri.DistanceSquaredTo(p).Cmp(rat("9")))
	d, err := tri.DistanceTo(p, 0, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(rat("3")))
	assert.Equal(t, IntersectNone, tri.IntersectionWith(p).IntersectionKind())
}

func BenchmarkSegmentSegmentDistance(b *testing.B) {
	s1, _ := NewLineSegment(pt(0, 0, 0), pt(1, 0, 0))
	s2, _ := NewLineSegment(pt(0, 1, 3), pt(2, 5, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DistanceSquared(s1, s2)
	}
}
