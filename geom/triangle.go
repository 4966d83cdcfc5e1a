package geom

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/exactgeom/exactgeom/arith"
)

// Triangle is a finite polytope on three non-collinear points.
type Triangle struct {
	p, q, r *Point

	planeOnce sync.Once
	plane     *Plane

	edgesOnce sync.Once
	edges     [3]*LineSegment

	centOnce sync.Once
	cent     *Point

	areaOnce sync.Once
	area     *arith.Sqrt

	envOnce sync.Once
	env     *Envelope
}

// NewTriangle builds a triangle on three non-collinear points. Collinear
// (or coincident) points are a degenerate input.
func NewTriangle(p, q, r *Point) (*Triangle, error) {
	if q.Sub(p).Cross(r.Sub(p)).IsZero() {
		return nil, degenerate("triangle on collinear points %s, %s, %s", p, q, r)
	}
	return &Triangle{p: p, q: q, r: r}, nil
}

// P returns the first corner.
func (t *Triangle) P() *Point { return t.p }

// Q returns the second corner.
func (t *Triangle) Q() *Point { return t.q }

// R returns the third corner.
func (t *Triangle) R() *Point { return t.r }

// Points returns the three corners in winding order.
func (t *Triangle) Points() [3]*Point { return [3]*Point{t.p, t.q, t.r} }

// Plane returns the carrier plane with normal (q-p) x (r-p). Memoized.
func (t *Triangle) Plane() *Plane {
	t.planeOnce.Do(func() {
		t.plane = &Plane{p: t.p, n: t.q.Sub(t.p).Cross(t.r.Sub(t.p))}
	})
	return t.plane
}

// Edges returns the segments pq, qr, rp. Memoized.
func (t *Triangle) Edges() [3]*LineSegment {
	t.edgesOnce.Do(func() {
		t.edges[0] = &LineSegment{p: t.p, q: t.q}
		t.edges[1] = &LineSegment{p: t.q, q: t.r}
		t.edges[2] = &LineSegment{p: t.r, q: t.p}
	})
	return t.edges
}

// Centroid returns the barycenter of the corners. Memoized.
func (t *Triangle) Centroid() *Point {
	t.centOnce.Do(func() {
		third := big.NewRat(1, 3)
		sum := t.q.Sub(t.p).Add(t.r.Sub(t.p)).Scale(third)
		t.cent = t.p.Translate(sum)
	})
	return t.cent
}

// AreaSquared returns the exact squared area |n|^2 / 4.
func (t *Triangle) AreaSquared() *big.Rat {
	return t.areaSqrt().Squared()
}

// Area returns the area rounded to the given oom, or exactly if the squared
// area is a perfect square.
func (t *Triangle) Area(oom int, p arith.RoundingPolicy) (*big.Rat, error) {
	return t.areaSqrt().Approx(oom, p)
}

func (t *Triangle) areaSqrt() *arith.Sqrt {
	t.areaOnce.Do(func() {
		n2 := t.Plane().n.MagnitudeSquared()
		t.area = arith.MustSqrt(n2.Quo(n2, big.NewRat(4, 1)))
	})
	return t.area
}

// ContainsPoint reports whether x lies in the closed triangle: coplanar
// with the carrier plane and on the inner side of each edge, where "inner"
// is fixed by the winding via cross-product signs against the normal.
func (t *Triangle) ContainsPoint(x *Point) bool {
	pl := t.Plane()
	if !pl.ContainsPoint(x) {
		return false
	}
	return t.containsCoplanar(x)
}

// containsCoplanar is ContainsPoint for a point already known to lie in the
// carrier plane.
func (t *Triangle) containsCoplanar(x *Point) bool {
	n := t.Plane().n
	corners := t.Points()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%3]
		side := b.Sub(a).Cross(x.Sub(a)).Dot(n)
		if side.Sign() < 0 {
			return false
		}
	}
	return true
}

// edgeOffset returns the exact affine side quantity of x against directed
// edge a->b within the triangle's plane: positive inside, zero on the edge
// line.
func (t *Triangle) edgeOffset(a, b, x *Point) *big.Rat {
	return b.Sub(a).Cross(x.Sub(a)).Dot(t.Plane().n)
}

// Translate returns the triangle moved by w.
func (t *Triangle) Translate(w *Vector) *Triangle {
	return &Triangle{
		p: t.p.Translate(w), q: t.q.Translate(w), r: t.r.Translate(w),
	}
}

// Envelope returns the corner bounding envelope. Memoized.
func (t *Triangle) Envelope() *Envelope {
	t.envOnce.Do(func() {
		t.env = envelopeOfPoints(t.p, t.q, t.r)
	})
	return t.env
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle[%s, %s, %s]", t.p.Pos(), t.q.Pos(), t.r.Pos())
}
