package geom

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/exactgeom/exactgeom/arith"
)

// LineSegment is the finite run of a line between two distinct points.
// Equality ignores endpoint order.
type LineSegment struct {
	p, q *Point

	lineOnce sync.Once
	line     *Line

	midOnce sync.Once
	mid     *Point

	envOnce sync.Once
	env     *Envelope
}

// NewLineSegment builds the segment between two distinct points. Coincident
// endpoints are a degenerate input.
func NewLineSegment(p, q *Point) (*LineSegment, error) {
	if p.Equal(q) {
		return nil, degenerate("segment with coincident endpoints %s", p)
	}
	return &LineSegment{p: p, q: q}, nil
}

// P returns the first endpoint.
func (s *LineSegment) P() *Point { return s.p }

// Q returns the second endpoint.
func (s *LineSegment) Q() *Point { return s.q }

// Line returns the carrier line through the endpoints, directed p -> q.
// Memoized.
func (s *LineSegment) Line() *Line {
	s.lineOnce.Do(func() {
		s.line = &Line{p: s.p, v: s.q.Sub(s.p)}
	})
	return s.line
}

// Centroid returns the midpoint. Memoized.
func (s *LineSegment) Centroid() *Point {
	s.midOnce.Do(func() {
		half := big.NewRat(1, 2)
		s.mid = s.p.Translate(s.q.Sub(s.p).Scale(half))
	})
	return s.mid
}

// LengthSquared returns the exact squared length.
func (s *LineSegment) LengthSquared() *big.Rat {
	return s.q.Sub(s.p).MagnitudeSquared()
}

// Length returns the length rounded to the given oom.
func (s *LineSegment) Length(oom int, p arith.RoundingPolicy) (*big.Rat, error) {
	return s.q.Sub(s.p).Magnitude(oom, p)
}

// Equal reports whether the segments cover the same point set; endpoint
// order is ignored.
func (s *LineSegment) Equal(o *LineSegment) bool {
	return (s.p.Equal(o.p) && s.q.Equal(o.q)) ||
		(s.p.Equal(o.q) && s.q.Equal(o.p))
}

// ContainsPoint reports whether x lies on the segment, endpoints included.
func (s *LineSegment) ContainsPoint(x *Point) bool {
	l := s.Line()
	if !l.ContainsPoint(x) {
		return false
	}
	t := l.paramOf(x)
	return t.Sign() >= 0 && t.Cmp(ratOne) <= 0
}

// Translate returns the segment moved by w.
func (s *LineSegment) Translate(w *Vector) *LineSegment {
	return &LineSegment{p: s.p.Translate(w), q: s.q.Translate(w)}
}

// Envelope returns the bounding envelope of the two endpoints. Memoized.
func (s *LineSegment) Envelope() *Envelope {
	s.envOnce.Do(func() {
		s.env = envelopeOfPoints(s.p, s.q)
	})
	return s.env
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("LineSegment[%s - %s]", s.p.Pos(), s.q.Pos())
}
