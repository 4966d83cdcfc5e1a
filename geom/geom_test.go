package geom

import (
	"math/big"
	"testing"

	"github.com/exactgeom/exactgeom/arith"
	"github.com/stretchr/testify/assert"
)

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal: " + s)
	}
	return r
}

func pt(x, y, z int64) *Point   { return NewPointInt(x, y, z) }
func vec(x, y, z int64) *Vector { return NewVectorInt(x, y, z) }

func ptR(x, y, z string) *Point { return NewPoint(rat(x), rat(y), rat(z)) }

func mustLine(t *testing.T, p, q *Point) *Line {
	t.Helper()
	l, err := NewLineFromPoints(p, q)
	if err != nil {
		t.Fatalf("NewLineFromPoints: %v", err)
	}
	return l
}

func mustRay(t *testing.T, p *Point, v *Vector) *Ray {
	t.Helper()
	r, err := NewRay(p, v)
	if err != nil {
		t.Fatalf("NewRay: %v", err)
	}
	return r
}

func mustPlane(t *testing.T, p *Point, n *Vector) *Plane {
	t.Helper()
	pl, err := NewPlane(p, n)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return pl
}

func mustSegment(t *testing.T, p, q *Point) *LineSegment {
	t.Helper()
	s, err := NewLineSegment(p, q)
	if err != nil {
		t.Fatalf("NewLineSegment: %v", err)
	}
	return s
}

func mustTriangle(t *testing.T, p, q, r *Point) *Triangle {
	t.Helper()
	tri, err := NewTriangle(p, q, r)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return tri
}

func mustTetra(t *testing.T, p, q, r, s *Point) *Tetrahedron {
	t.Helper()
	tet, err := NewTetrahedron(p, q, r, s)
	if err != nil {
		t.Fatalf("NewTetrahedron: %v", err)
	}
	return tet
}

// unitTetra is the corner tetrahedron of the unit cube.
func unitTetra(t *testing.T) *Tetrahedron {
	return mustTetra(t, pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0), pt(0, 0, 1))
}

func TestVectorAlgebra(t *testing.T) {
	a := vec(1, 2, 3)
	b := vec(4, 5, 6)

	assert.True(t, a.Add(b).Equal(vec(5, 7, 9)))
	assert.True(t, b.Sub(a).Equal(vec(3, 3, 3)))
	assert.True(t, a.Neg().Equal(vec(-1, -2, -3)))
	assert.Equal(t, 0, a.Dot(b).Cmp(rat("32")))
	assert.True(t, a.Cross(b).Equal(vec(-3, 6, -3)))
	assert.Equal(t, 0, a.Cross(b).Dot(a).Sign())
	assert.True(t, a.Scale(rat("2")).Equal(vec(2, 4, 6)))
}

func TestVectorParallelAndZero(t *testing.T) {
	assert.True(t, vec(1, 2, 3).IsParallelTo(vec(-2, -4, -6)))
	assert.False(t, vec(1, 2, 3).IsParallelTo(vec(1, 2, 4)))
	assert.True(t, ZeroVector().IsZero())
	assert.False(t, vec(0, 0, 1).IsZero())
}

func TestVectorMagnitude(t *testing.T) {
	v := vec(3, 4, 0)
	assert.Equal(t, 0, v.MagnitudeSquared().Cmp(rat("25")))
	m, err := v.Magnitude(0, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, m.Cmp(rat("5")))

	d := vec(1, 1, 0)
	got, err := d.Magnitude(-4, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(rat("14142/10000")))
}

func TestVectorImmutability(t *testing.T) {
	v := vec(1, 2, 3)
	v.DX().SetInt64(99)
	assert.Equal(t, 0, v.DX().Cmp(rat("1")))

	w := v.Add(vec(1, 1, 1))
	assert.True(t, v.Equal(vec(1, 2, 3)))
	assert.True(t, w.Equal(vec(2, 3, 4)))
}

func TestPointPositionAndTranslate(t *testing.T) {
	p := NewPointParts(vec(1, 0, 0), vec(0, 2, 0))
	assert.Equal(t, 0, p.X().Cmp(rat("1")))
	assert.Equal(t, 0, p.Y().Cmp(rat("2")))

	q := p.Translate(vec(0, 0, 3))
	assert.Equal(t, 0, q.Z().Cmp(rat("3")))
	// The original is untouched.
	assert.Equal(t, 0, p.Z().Sign())
}

func TestPointEqualIgnoresDecomposition(t *testing.T) {
	a := NewPointParts(vec(1, 1, 1), vec(1, 0, 0))
	b := NewPointParts(vec(0, 0, 0), vec(2, 1, 1))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(pt(2, 1, 0)))
}

func TestPointDistance(t *testing.T) {
	a, b := pt(0, 0, 0), pt(1, 2, 2)
	assert.Equal(t, 0, a.DistanceSquared(b).Cmp(rat("9")))
	d, err := a.Distance(b, 0, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(rat("3")))
}

func TestLineContainsAndParam(t *testing.T) {
	l := mustLine(t, pt(0, 0, 0), pt(1, 1, 1))
	assert.True(t, l.ContainsPoint(ptR("1/2", "1/2", "1/2")))
	assert.True(t, l.ContainsPoint(pt(-3, -3, -3)))
	assert.False(t, l.ContainsPoint(pt(1, 1, 0)))

	assert.Equal(t, 0, l.paramOf(pt(2, 2, 2)).Cmp(rat("2")))
}

func TestLineDegenerate(t *testing.T) {
	_, err := NewLine(pt(0, 0, 0), ZeroVector())
	assert.True(t, IsDegenerate(err))
	_, err = NewLineFromPoints(pt(1, 2, 3), pt(1, 2, 3))
	assert.True(t, IsDegenerate(err))
}

func TestLineSameAndParallel(t *testing.T) {
	l1 := mustLine(t, pt(0, 0, 0), pt(1, 0, 0))
	l2 := mustLine(t, pt(5, 0, 0), pt(-1, 0, 0))
	l3 := mustLine(t, pt(0, 1, 0), pt(1, 1, 0))

	assert.True(t, l1.Same(l2))
	assert.True(t, l1.IsParallelTo(l3))
	assert.False(t, l1.Same(l3))
}

func TestRayContainsPoint(t *testing.T) {
	r := mustRay(t, pt(0, 0, 0), vec(1, 0, 0))
	assert.True(t, r.ContainsPoint(pt(0, 0, 0)))
	assert.True(t, r.ContainsPoint(pt(7, 0, 0)))
	assert.False(t, r.ContainsPoint(pt(-1, 0, 0)))
}

func TestPlaneSideAndProject(t *testing.T) {
	pl := mustPlane(t, pt(0, 0, 0), vec(0, 0, 1))

	assert.Equal(t, 1, pl.Side(pt(0, 0, 5)))
	assert.Equal(t, -1, pl.Side(pt(0, 0, -5)))
	assert.Equal(t, 0, pl.Side(pt(3, 4, 0)))

	proj := pl.Project(pt(3, 4, 5))
	assert.True(t, proj.Equal(pt(3, 4, 0)))
	assert.Equal(t, 0, pl.DistanceSquaredToPoint(pt(0, 0, 5)).Cmp(rat("25")))
}

func TestPlaneFromPointsAndSame(t *testing.T) {
	p1, err := NewPlaneFromPoints(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0))
	assert.NoError(t, err)
	p2 := mustPlane(t, pt(7, -2, 0), vec(0, 0, -3))
	assert.True(t, p1.Same(p2))

	_, err = NewPlaneFromPoints(pt(0, 0, 0), pt(1, 1, 1), pt(2, 2, 2))
	assert.True(t, IsDegenerate(err))
}

func TestSegmentBasics(t *testing.T) {
	s := mustSegment(t, pt(0, 0, 0), pt(2, 0, 0))
	assert.True(t, s.Centroid().Equal(pt(1, 0, 0)))
	assert.Equal(t, 0, s.LengthSquared().Cmp(rat("4")))
	assert.True(t, s.ContainsPoint(pt(1, 0, 0)))
	assert.False(t, s.ContainsPoint(pt(3, 0, 0)))
	assert.True(t, s.Equal(mustSegment(t, pt(2, 0, 0), pt(0, 0, 0))))
}

func TestTriangleAreaAndContains(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0))
	assert.Equal(t, 0, tri.AreaSquared().Cmp(rat("4")))

	a, err := tri.Area(0, arith.RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(rat("2")))

	assert.True(t, tri.ContainsPoint(ptR("1/2", "1/2", "0")))
	assert.True(t, tri.ContainsPoint(pt(1, 0, 0)))  // on an edge
	assert.True(t, tri.ContainsPoint(pt(0, 2, 0)))  // on a corner
	assert.False(t, tri.ContainsPoint(pt(2, 2, 0))) // outside, in plane
	assert.False(t, tri.ContainsPoint(pt(0, 0, 1))) // off the plane

	_, err = NewTriangle(pt(0, 0, 0), pt(1, 1, 1), pt(2, 2, 2))
	assert.True(t, IsDegenerate(err))
}

func TestTetrahedronVolumeAndContains(t *testing.T) {
	tet := unitTetra(t)
	assert.Equal(t, 0, tet.Volume().Cmp(rat("1/6")))

	assert.True(t, tet.ContainsPoint(ptR("1/4", "1/4", "1/4")))
	assert.True(t, tet.ContainsPoint(pt(0, 0, 0)))
	assert.False(t, tet.ContainsPoint(pt(1, 1, 1)))

	_, err := NewTetrahedron(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0), pt(1, 1, 0))
	assert.True(t, IsDegenerate(err))
}

func TestCentroids(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(3, 0, 0), pt(0, 3, 0))
	assert.True(t, tri.Centroid().Equal(pt(1, 1, 0)))

	tet := mustTetra(t, pt(0, 0, 0), pt(4, 0, 0), pt(0, 4, 0), pt(0, 0, 4))
	assert.True(t, tet.Centroid().Equal(pt(1, 1, 1)))
}

func BenchmarkTetrahedronContainsPoint(b *testing.B) {
	tet, _ := NewTetrahedron(pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0), pt(0, 0, 1))
	x := ptR("1/4", "1/4", "1/4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tet.ContainsPoint(x)
	}
}
