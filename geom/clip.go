package geom

import (
	"math/big"
)

// span is a possibly unbounded parameter interval used by the clipping
// routines. A nil bound means unbounded on that side.
type span struct {
	lo, hi *big.Rat
	dead   bool
}

func fullSpan() span { return span{} }

func unitSpan() span {
	return span{lo: new(big.Rat), hi: big.NewRat(1, 1)}
}

func nonNegativeSpan() span {
	return span{lo: new(big.Rat)}
}

func (s *span) empty() bool {
	if s.dead {
		return true
	}
	return s.lo != nil && s.hi != nil && s.lo.Cmp(s.hi) > 0
}

// degenerate reports whether the span holds exactly one parameter.
func (s *span) degenerate() bool {
	return !s.empty() && s.lo != nil && s.hi != nil && s.lo.Cmp(s.hi) == 0
}

func (s *span) raiseLo(t *big.Rat) {
	if s.lo == nil || t.Cmp(s.lo) > 0 {
		s.lo = new(big.Rat).Set(t)
	}
}

func (s *span) lowerHi(t *big.Rat) {
	if s.hi == nil || t.Cmp(s.hi) < 0 {
		s.hi = new(big.Rat).Set(t)
	}
}

// clipAffine restricts the span to {t | f0 + t*df >= 0} and reports whether
// anything is left. Every constraint used by the engine (plane sides,
// triangle edge sides, envelope slabs) is affine along a line, so this one
// primitive covers all of them.
func (s *span) clipAffine(f0, df *big.Rat) bool {
	switch df.Sign() {
	case 0:
		if f0.Sign() < 0 {
			s.dead = true
		}
	case 1:
		t := new(big.Rat).Quo(new(big.Rat).Neg(f0), df)
		s.raiseLo(t)
	case -1:
		t := new(big.Rat).Quo(new(big.Rat).Neg(f0), df)
		s.lowerHi(t)
	}
	return !s.empty()
}

// contains reports whether t lies in the span.
func (s *span) contains(t *big.Rat) bool {
	if s.empty() {
		return false
	}
	if s.lo != nil && t.Cmp(s.lo) < 0 {
		return false
	}
	return s.hi == nil || t.Cmp(s.hi) <= 0
}

// intersectSpan restricts s to the other span.
func (s *span) intersectSpan(o span) bool {
	if o.dead {
		s.dead = true
		return false
	}
	if o.lo != nil {
		s.raiseLo(o.lo)
	}
	if o.hi != nil {
		s.lowerHi(o.hi)
	}
	return !s.empty()
}

// resolve converts the clipped span over line l into intersection geometry.
// An unbounded surviving side yields the line or ray itself.
func (s *span) resolve(l *Line) Intersection {
	switch {
	case s.empty():
		return NoIntersection{}
	case s.lo == nil && s.hi == nil:
		return l
	case s.lo != nil && s.hi == nil:
		return &Ray{line: &Line{p: l.At(s.lo), v: l.v}}
	case s.lo == nil && s.hi != nil:
		return &Ray{line: &Line{p: l.At(s.hi), v: l.v.Neg()}}
	case s.degenerate():
		return l.At(s.lo)
	}
	return &LineSegment{p: l.At(s.lo), q: l.At(s.hi)}
}
