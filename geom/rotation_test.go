package geom

import (
	"math/big"
	"testing"

	"github.com/exactgeom/exactgeom/arith"
	"github.com/stretchr/testify/assert"
)

// assertNear checks equality up to the grid step of the given oom.
func assertNear(t *testing.T, got, want *big.Rat, oom int) {
	t.Helper()
	diff := new(big.Rat).Sub(got, want)
	diff.Abs(diff)
	step := arith.Pow10(oom)
	if diff.Cmp(step) > 0 {
		t.Errorf("got %s, want %s within 10^%d", got.RatString(), want.RatString(), oom)
	}
}

func TestRotatePointQuarterTurn(t *testing.T) {
	axis := mustLine(t, pt(0, 0, 0), pt(0, 0, 1))
	oom := -12
	halfPi, err := arith.Pi(oom-4, arith.RoundHalfEven)
	assert.NoError(t, err)
	halfPi.Mul(halfPi, rat("1/2"))

	got, err := Rotate(pt(1, 0, 0), axis, halfPi, oom, arith.RoundHalfEven)
	assert.NoError(t, err)
	p := got.(*Point)
	assertNear(t, p.X(), rat("0"), oom+2)
	assertNear(t, p.Y(), rat("1"), oom+2)
	assert.Equal(t, 0, p.Z().Sign())
}

func TestRotateAboutOffsetAxis(t *testing.T) {
	// Half turn about the vertical line through (1, 0, 0).
	axis := mustLine(t, pt(1, 0, 0), pt(1, 0, 1))
	oom := -12
	pi, err := arith.Pi(oom-4, arith.RoundHalfEven)
	assert.NoError(t, err)

	got, err := Rotate(pt(0, 0, 0), axis, pi, oom, arith.RoundHalfEven)
	assert.NoError(t, err)
	p := got.(*Point)
	assertNear(t, p.X(), rat("2"), oom+2)
	assertNear(t, p.Y(), rat("0"), oom+2)
}

func TestRotatePreservesShape(t *testing.T) {
	axis := mustLine(t, pt(0, 0, 0), pt(0, 0, 1))
	oom := -20
	quarter, err := arith.Pi(oom-4, arith.RoundHalfEven)
	assert.NoError(t, err)
	quarter.Mul(quarter, rat("1/2"))

	tri := mustTriangle(t, pt(3, 0, 0), pt(5, 0, 0), pt(3, 2, 0))
	got, err := Rotate(tri, axis, quarter, oom, arith.RoundHalfEven)
	assert.NoError(t, err)
	rot := got.(*Triangle)

	// Lengths survive up to the rounding grid.
	for i := range tri.Edges() {
		want := tri.Edges()[i].LengthSquared()
		have := rot.Edges()[i].LengthSquared()
		assertNear(t, have, want, oom+8)
	}
	// The rotation keeps the triangle in the z = 0 plane.
	assert.Equal(t, 0, rot.P().Z().Sign())
}

func TestRotateRebuildsEveryKind(t *testing.T) {
	axis := mustLine(t, pt(0, 0, 0), pt(0, 0, 1))
	theta := rat("1/3")
	shapes := []Geometry{
		pt(1, 2, 3),
		mustLine(t, pt(0, 0, 0), pt(1, 1, 1)),
		mustRay(t, pt(1, 0, 0), vec(0, 1, 0)),
		mustPlane(t, pt(0, 0, 3), vec(0, 0, 1)),
		mustSegment(t, pt(0, 0, 0), pt(1, 0, 0)),
		mustTriangle(t, pt(0, 0, 0), pt(2, 0, 0), pt(0, 2, 0)),
		unitTetra(t),
	}

	for i, g := range shapes {
		got, err := Rotate(g, axis, theta, -16, arith.RoundHalfEven)
		if err != nil {
			t.Fatalf("%d) Rotate: %v", i, err)
		}
		if kindRank(got) != kindRank(g) {
			t.Errorf("%d) rotation changed kind: %T -> %T", i, g, got)
		}
	}
}

func TestRotationReusesTrigValues(t *testing.T) {
	axis := mustLine(t, pt(0, 0, 0), pt(0, 0, 1))
	r, err := NewRotation(axis, rat("1"), -10, arith.RoundHalfEven)
	assert.NoError(t, err)

	a := r.Apply(pt(1, 0, 0))
	b := r.Apply(pt(1, 0, 0))
	assert.True(t, a.Equal(b))
}

func TestRotateBadOOM(t *testing.T) {
	axis := mustLine(t, pt(0, 0, 0), pt(0, 0, 1))
	_, err := Rotate(pt(1, 0, 0), axis, rat("1"), 5000, arith.RoundHalfEven)
	assert.Error(t, err)
}
