package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(t *testing.T, minX, minY, minZ, maxX, maxY, maxZ int64) *Envelope {
	t.Helper()
	e, err := NewEnvelopeFromPoints(pt(minX, minY, minZ), pt(maxX, maxY, maxZ))
	if err != nil {
		t.Fatalf("NewEnvelopeFromPoints: %v", err)
	}
	return e
}

func TestEnvelopeKind(t *testing.T) {
	table := []struct {
		e    *Envelope
		want EnvelopeKind
	}{
		{env(t, 0, 0, 0, 1, 1, 1), EnvelopeBox},
		{env(t, 0, 0, 0, 1, 1, 0), EnvelopeRectangle},
		{env(t, 0, 0, 0, 1, 0, 0), EnvelopeSegment},
		{env(t, 2, 2, 2, 2, 2, 2), EnvelopePoint},
	}
	for i, line := range table {
		if got := line.e.Kind(); got != line.want {
			t.Errorf("%d) Kind() = %v, want %v", i+1, got, line.want)
		}
	}
}

func TestEnvelopeUnionScenario(t *testing.T) {
	a := env(t, 0, 0, 0, 1, 1, 1)
	b := env(t, -1, -1, -1, 0, 0, 0)
	assert.True(t, a.Union(b).Equal(env(t, -1, -1, -1, 1, 1, 1)))
}

func TestEnvelopeUnionAlgebra(t *testing.T) {
	a := env(t, 0, 0, 0, 1, 1, 1)
	b := env(t, -2, 0, 1, 0, 3, 2)
	c := env(t, 5, 5, 5, 6, 6, 6)

	assert.True(t, a.Union(b).Equal(b.Union(a)))
	assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
	assert.True(t, a.Union(b).Contains(a))
	assert.True(t, a.Union(b).Contains(b))
}

func TestEnvelopeIntersect(t *testing.T) {
	a := env(t, 0, 0, 0, 2, 2, 2)
	b := env(t, 1, 1, 1, 3, 3, 3)

	got, ok := a.Intersect(b)
	assert.True(t, ok)
	assert.True(t, got.Equal(env(t, 1, 1, 1, 2, 2, 2)))
	assert.True(t, a.Contains(got))
	assert.True(t, b.Contains(got))

	// Touching faces intersect in a degenerate envelope.
	c := env(t, 2, 0, 0, 4, 2, 2)
	got, ok = a.Intersect(c)
	assert.True(t, ok)
	assert.Equal(t, EnvelopeRectangle, got.Kind())

	_, ok = a.Intersect(env(t, 5, 5, 5, 6, 6, 6))
	assert.False(t, ok)
}

func TestEnvelopeIntersectsAndContainsPoint(t *testing.T) {
	a := env(t, 0, 0, 0, 2, 2, 2)
	assert.True(t, a.Intersects(env(t, 1, 1, 1, 3, 3, 3)))
	assert.True(t, a.Intersects(env(t, 2, 2, 2, 3, 3, 3))) // corner touch
	assert.False(t, a.Intersects(env(t, 3, 0, 0, 4, 2, 2)))

	assert.True(t, a.ContainsPoint(pt(1, 1, 1)))
	assert.True(t, a.ContainsPoint(pt(0, 2, 2)))
	assert.False(t, a.ContainsPoint(pt(-1, 1, 1)))
}

func TestEnvelopeCornersFacesEdges(t *testing.T) {
	box := env(t, 0, 0, 0, 1, 2, 3)

	corners := box.Corners()
	assert.Len(t, corners, 8)
	for _, c := range corners {
		assert.True(t, box.ContainsPoint(c))
	}

	faces := box.Faces()
	assert.Len(t, faces, 6)
	for _, f := range faces {
		assert.True(t, f.Sign == 1 || f.Sign == -1)
		for _, c := range f.Corners {
			assert.True(t, box.ContainsPoint(c))
		}
	}

	assert.Len(t, box.Edges(), 12)
	// A flat envelope has fewer distinct edges.
	assert.Len(t, env(t, 0, 0, 0, 1, 2, 0).Edges(), 4)
	assert.Len(t, env(t, 0, 0, 0, 1, 0, 0).Edges(), 1)
}

func TestEnvelopeOfPrimitives(t *testing.T) {
	tri := mustTriangle(t, pt(0, 0, 0), pt(2, 0, 1), pt(1, 3, -1))
	e := tri.Envelope()
	assert.True(t, e.Equal(env(t, 0, 0, -1, 2, 3, 1)))

	tet := unitTetra(t)
	assert.True(t, tet.Envelope().Equal(env(t, 0, 0, 0, 1, 1, 1)))

	assert.True(t, pt(1, 2, 3).Envelope().Equal(env(t, 1, 2, 3, 1, 2, 3)))
	assert.Nil(t, mustLine(t, pt(0, 0, 0), pt(1, 0, 0)).Envelope())
	assert.Nil(t, mustPlane(t, pt(0, 0, 0), vec(0, 0, 1)).Envelope())
}

func TestEnvelopeClipLine(t *testing.T) {
	box := env(t, 0, 0, 0, 2, 2, 2)

	// Through the middle.
	l := mustLine(t, pt(-1, 1, 1), pt(3, 1, 1))
	seg, ok := box.ClipLine(l).(*LineSegment)
	if !ok {
		t.Fatalf("ClipLine = %T, want *LineSegment", box.ClipLine(l))
	}
	assert.True(t, seg.Equal(mustSegment(t, pt(0, 1, 1), pt(2, 1, 1))))

	// Grazing a corner.
	diag := mustLine(t, pt(2, 2, 2), pt(3, 1, 2))
	p, ok := box.ClipLine(diag).(*Point)
	if !ok {
		t.Fatalf("ClipLine = %T, want *Point", box.ClipLine(diag))
	}
	assert.True(t, p.Equal(pt(2, 2, 2)))

	// Missing entirely.
	miss := mustLine(t, pt(5, 0, 0), pt(5, 1, 0))
	_, none := box.ClipLine(miss).(NoIntersection)
	assert.True(t, none)
}

// TestEnvelopeClipMatchesFaceHits cross-checks slab clipping against a
// brute-force sweep over the six faces.
func TestEnvelopeClipMatchesFaceHits(t *testing.T) {
	box := env(t, 0, 0, 0, 3, 2, 1)
	lines := []*Line{
		mustLine(t, pt(-1, -1, -1), pt(4, 3, 2)),
		mustLine(t, pt(-1, 1, 0), pt(4, 1, 1)),
		mustLine(t, pt(0, 0, 5), pt(3, 2, 5)),
		mustLine(t, pt(1, 1, -4), pt(1, 1, 6)),
	}

	for i, l := range lines {
		clipHits := false
		if _, none := box.ClipLine(l).(NoIntersection); !none {
			clipHits = true
		}

		faceHits := false
		for _, f := range box.Faces() {
			tri1 := mustTriangle(t, f.Corners[0], f.Corners[1], f.Corners[2])
			tri2 := mustTriangle(t, f.Corners[0], f.Corners[2], f.Corners[3])
			if Intersects(l, tri1) || Intersects(l, tri2) {
				faceHits = true
				break
			}
		}
		if clipHits != faceHits {
			t.Errorf("%d) slab clip says %v, face walk says %v", i+1, clipHits, faceHits)
		}
	}
}

func TestEnvelopeClipRayAndSegment(t *testing.T) {
	box := env(t, 0, 0, 0, 2, 2, 2)

	r := mustRay(t, pt(1, 1, 1), vec(1, 0, 0))
	seg := box.ClipRay(r).(*LineSegment)
	assert.True(t, seg.Equal(mustSegment(t, pt(1, 1, 1), pt(2, 1, 1))))

	away := mustRay(t, pt(3, 1, 1), vec(1, 0, 0))
	_, none := box.ClipRay(away).(NoIntersection)
	assert.True(t, none)

	inside := mustSegment(t, pt(1, 1, 1), ptR("3/2", "1", "1"))
	got := box.ClipSegment(inside).(*LineSegment)
	assert.True(t, got.Equal(inside))
}

func BenchmarkEnvelopeIntersects(b *testing.B) {
	a, _ := NewEnvelopeFromPoints(pt(0, 0, 0), pt(2, 2, 2))
	c, _ := NewEnvelopeFromPoints(pt(1, 1, 1), pt(3, 3, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Intersects(c)
	}
}
