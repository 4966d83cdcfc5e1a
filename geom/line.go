package geom

import (
	"fmt"
	"math/big"
)

// Line is the infinite line {p + t*v | t real}, v != 0.
type Line struct {
	p *Point
	v *Vector
}

// NewLine builds a line through p with direction v. A zero direction is a
// degenerate input.
func NewLine(p *Point, v *Vector) (*Line, error) {
	if v.IsZero() {
		return nil, degenerate("line through %s with zero direction", p)
	}
	return &Line{p: p, v: v}, nil
}

// NewLineFromPoints builds the line through two distinct points.
func NewLineFromPoints(p, q *Point) (*Line, error) {
	if p.Equal(q) {
		return nil, degenerate("line through coincident points %s", p)
	}
	return &Line{p: p, v: q.Sub(p)}, nil
}

// Point returns the anchor point of the line.
func (l *Line) Point() *Point { return l.p }

// Dir returns the direction vector of the line.
func (l *Line) Dir() *Vector { return l.v }

// At returns the point p + t*v.
func (l *Line) At(t *big.Rat) *Point {
	return l.p.Translate(l.v.Scale(t))
}

// ContainsPoint is the exact point-on-line test cross(v, x-p) = 0.
func (l *Line) ContainsPoint(x *Point) bool {
	return l.v.Cross(x.Sub(l.p)).IsZero()
}

// IsParallelTo reports whether the direction vectors are parallel.
func (l *Line) IsParallelTo(m *Line) bool {
	return l.v.IsParallelTo(m.v)
}

// Same reports whether l and m describe the same point set.
func (l *Line) Same(m *Line) bool {
	return l.IsParallelTo(m) && l.ContainsPoint(m.p)
}

// paramOf solves p + t*v = x for t. The caller must ensure x is on the
// line; the component with the largest |v| entry is used so the division is
// never by zero.
func (l *Line) paramOf(x *Point) *big.Rat {
	axis := largestAxis(l.v)
	num := new(big.Rat).Sub(x.Pos().comp(axis), l.p.Pos().comp(axis))
	return num.Quo(num, l.v.comp(axis))
}

// largestAxis returns the axis on which v has the component of largest
// absolute value.
func largestAxis(v *Vector) int {
	axis := 0
	best := new(big.Rat).Abs(v.comp(0))
	for i := 1; i < 3; i++ {
		a := new(big.Rat).Abs(v.comp(i))
		if a.Cmp(best) > 0 {
			axis, best = i, a
		}
	}
	return axis
}

// Translate returns the line moved by w.
func (l *Line) Translate(w *Vector) *Line {
	return &Line{p: l.p.Translate(w), v: l.v}
}

// Envelope returns nil: a line is unbounded.
func (l *Line) Envelope() *Envelope { return nil }

func (l *Line) String() string {
	return fmt.Sprintf("Line[%s + t*%s]", l.p.Pos(), l.v)
}

// Ray is the half line {p + t*v | t >= 0}.
type Ray struct {
	line *Line
}

// NewRay builds a ray from origin p along v. A zero direction is a
// degenerate input.
func NewRay(p *Point, v *Vector) (*Ray, error) {
	l, err := NewLine(p, v)
	if err != nil {
		return nil, err
	}
	return &Ray{line: l}, nil
}

// NewRayFromPoints builds the ray from p toward q.
func NewRayFromPoints(p, q *Point) (*Ray, error) {
	l, err := NewLineFromPoints(p, q)
	if err != nil {
		return nil, err
	}
	return &Ray{line: l}, nil
}

// Line returns the infinite carrier line of the ray.
func (r *Ray) Line() *Line { return r.line }

// Origin returns the ray's origin point.
func (r *Ray) Origin() *Point { return r.line.p }

// Dir returns the ray's direction vector.
func (r *Ray) Dir() *Vector { return r.line.v }

// At returns the point origin + t*dir. t may be negative, in which case the
// result is off the ray.
func (r *Ray) At(t *big.Rat) *Point { return r.line.At(t) }

// ContainsPoint reports whether x is on the ray: on the carrier line with a
// nonnegative parameter.
func (r *Ray) ContainsPoint(x *Point) bool {
	if !r.line.ContainsPoint(x) {
		return false
	}
	return r.line.paramOf(x).Sign() >= 0
}

// Translate returns the ray moved by w.
func (r *Ray) Translate(w *Vector) *Ray {
	return &Ray{line: r.line.Translate(w)}
}

// Envelope returns nil: a ray is unbounded.
func (r *Ray) Envelope() *Envelope { return nil }

func (r *Ray) String() string {
	return fmt.Sprintf("Ray[%s + t*%s, t >= 0]", r.line.p.Pos(), r.line.v)
}
