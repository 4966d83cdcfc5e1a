package geom

import (
	"fmt"
	"math/big"
)

// Plane is the set {x | n.(x - p) = 0}, n != 0.
type Plane struct {
	p *Point
	n *Vector
}

// NewPlane builds a plane through p with normal n. A zero normal is a
// degenerate input.
func NewPlane(p *Point, n *Vector) (*Plane, error) {
	if n.IsZero() {
		return nil, degenerate("plane through %s with zero normal", p)
	}
	return &Plane{p: p, n: n}, nil
}

// NewPlaneFromPoints builds the plane through three points with normal
// (q-p) x (r-p). Collinear points are a degenerate input.
func NewPlaneFromPoints(p, q, r *Point) (*Plane, error) {
	n := q.Sub(p).Cross(r.Sub(p))
	if n.IsZero() {
		return nil, degenerate("plane through collinear points %s, %s, %s", p, q, r)
	}
	return &Plane{p: p, n: n}, nil
}

// Point returns the plane's anchor point.
func (pl *Plane) Point() *Point { return pl.p }

// Normal returns the plane's normal vector.
func (pl *Plane) Normal() *Vector { return pl.n }

// ContainsPoint is the exact membership test n.(x - p) = 0.
func (pl *Plane) ContainsPoint(x *Point) bool {
	return pl.Side(x) == 0
}

// Side returns the sign of n.(x - p): +1 on the normal side, -1 opposite,
// 0 on the plane.
func (pl *Plane) Side(x *Point) int {
	return pl.n.Dot(x.Sub(pl.p)).Sign()
}

// offsetOf returns the exact signed quantity n.(x - p), the unnormalized
// plane offset of x.
func (pl *Plane) offsetOf(x *Point) *big.Rat {
	return pl.n.Dot(x.Sub(pl.p))
}

// ContainsLine reports whether the whole line lies in the plane.
func (pl *Plane) ContainsLine(l *Line) bool {
	return pl.n.Dot(l.v).Sign() == 0 && pl.ContainsPoint(l.p)
}

// IsParallelTo reports whether the normals are parallel.
func (pl *Plane) IsParallelTo(o *Plane) bool {
	return pl.n.IsParallelTo(o.n)
}

// Same reports whether pl and o describe the same point set.
func (pl *Plane) Same(o *Plane) bool {
	return pl.IsParallelTo(o) && pl.ContainsPoint(o.p)
}

// DistanceSquaredToPoint returns the exact squared distance from the plane
// to x: (n.(x-p))^2 / |n|^2.
func (pl *Plane) DistanceSquaredToPoint(x *Point) *big.Rat {
	d := pl.offsetOf(x)
	d.Mul(d, d)
	return d.Quo(d, pl.n.MagnitudeSquared())
}

// Project returns the orthogonal projection of x onto the plane: the
// projection is rational, so it is exact.
func (pl *Plane) Project(x *Point) *Point {
	t := pl.offsetOf(x)
	t.Quo(t, pl.n.MagnitudeSquared())
	return x.Translate(pl.n.Scale(t.Neg(t)))
}

// Translate returns the plane moved by w.
func (pl *Plane) Translate(w *Vector) *Plane {
	return &Plane{p: pl.p.Translate(w), n: pl.n}
}

// Envelope returns nil: a plane is unbounded.
func (pl *Plane) Envelope() *Envelope { return nil }

func (pl *Plane) String() string {
	return fmt.Sprintf("Plane[through %s, normal %s]", pl.p.Pos(), pl.n)
}
