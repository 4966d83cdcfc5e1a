package geom

import (
	"fmt"
	"math/big"
)

// EnvelopeKind classifies how many axis ranges of an envelope are
// degenerate: none (box), one (rectangle), two (segment), three (point).
type EnvelopeKind int

const (
	EnvelopeBox EnvelopeKind = iota
	EnvelopeRectangle
	EnvelopeSegment
	EnvelopePoint
)

func (k EnvelopeKind) String() string {
	switch k {
	case EnvelopeBox:
		return "Box"
	case EnvelopeRectangle:
		return "Rectangle"
	case EnvelopeSegment:
		return "Segment"
	case EnvelopePoint:
		return "Point"
	}
	return "Unknown"
}

// Envelope is an axis-aligned bounding volume with collapsible
// dimensionality. It accelerates intersection queries by cheap rejection
// and is never exposed as the shape of anything.
type Envelope struct {
	xMin, xMax, yMin, yMax, zMin, zMax *big.Rat
}

// NewEnvelope builds an envelope from explicit bounds. Inverted bounds are
// a degenerate input.
func NewEnvelope(xMin, xMax, yMin, yMax, zMin, zMax *big.Rat) (*Envelope, error) {
	if xMin.Cmp(xMax) > 0 || yMin.Cmp(yMax) > 0 || zMin.Cmp(zMax) > 0 {
		return nil, degenerate("envelope with inverted bounds")
	}
	return &Envelope{
		xMin: new(big.Rat).Set(xMin), xMax: new(big.Rat).Set(xMax),
		yMin: new(big.Rat).Set(yMin), yMax: new(big.Rat).Set(yMax),
		zMin: new(big.Rat).Set(zMin), zMax: new(big.Rat).Set(zMax),
	}, nil
}

// NewEnvelopeFromPoints builds the smallest envelope holding every given
// point. At least one point is required.
func NewEnvelopeFromPoints(pts ...*Point) (*Envelope, error) {
	if len(pts) == 0 {
		return nil, degenerate("envelope of no points")
	}
	return envelopeOfPoints(pts...), nil
}

func envelopeOfPoints(pts ...*Point) *Envelope {
	pos := pts[0].Pos()
	e := &Envelope{
		xMin: pos.DX(), xMax: pos.DX(),
		yMin: pos.DY(), yMax: pos.DY(),
		zMin: pos.DZ(), zMax: pos.DZ(),
	}
	for _, p := range pts[1:] {
		pos = p.Pos()
		e.xMin = ratMin(e.xMin, pos.dx)
		e.xMax = ratMax(e.xMax, pos.dx)
		e.yMin = ratMin(e.yMin, pos.dy)
		e.yMax = ratMax(e.yMax, pos.dy)
		e.zMin = ratMin(e.zMin, pos.dz)
		e.zMax = ratMax(e.zMax, pos.dz)
	}
	return e
}

// Min returns a copy of the lower bound on the given axis (0, 1, 2).
func (e *Envelope) Min(axis int) *big.Rat {
	return new(big.Rat).Set(e.min(axis))
}

// Max returns a copy of the upper bound on the given axis.
func (e *Envelope) Max(axis int) *big.Rat {
	return new(big.Rat).Set(e.max(axis))
}

func (e *Envelope) min(axis int) *big.Rat {
	switch axis {
	case 0:
		return e.xMin
	case 1:
		return e.yMin
	default:
		return e.zMin
	}
}

func (e *Envelope) max(axis int) *big.Rat {
	switch axis {
	case 0:
		return e.xMax
	case 1:
		return e.yMax
	default:
		return e.zMax
	}
}

// Kind reports how far the envelope has collapsed.
func (e *Envelope) Kind() EnvelopeKind {
	flat := 0
	for axis := 0; axis < 3; axis++ {
		if e.min(axis).Cmp(e.max(axis)) == 0 {
			flat++
		}
	}
	return EnvelopeKind(flat)
}

// Equal is exact bound-wise comparison.
func (e *Envelope) Equal(o *Envelope) bool {
	for axis := 0; axis < 3; axis++ {
		if e.min(axis).Cmp(o.min(axis)) != 0 || e.max(axis).Cmp(o.max(axis)) != 0 {
			return false
		}
	}
	return true
}

// Intersects is the exact per-axis interval overlap test: on every axis
// min(e) <= max(o) and min(o) <= max(e). Touching boundaries intersect.
func (e *Envelope) Intersects(o *Envelope) bool {
	for axis := 0; axis < 3; axis++ {
		if e.min(axis).Cmp(o.max(axis)) > 0 || o.min(axis).Cmp(e.max(axis)) > 0 {
			return false
		}
	}
	return true
}

// Union returns the smallest envelope holding both operands. Union is
// commutative and associative, and absorbing a contained envelope is the
// identity.
func (e *Envelope) Union(o *Envelope) *Envelope {
	return &Envelope{
		xMin: ratMin(e.xMin, o.xMin), xMax: ratMax(e.xMax, o.xMax),
		yMin: ratMin(e.yMin, o.yMin), yMax: ratMax(e.yMax, o.yMax),
		zMin: ratMin(e.zMin, o.zMin), zMax: ratMax(e.zMax, o.zMax),
	}
}

// Intersect returns the overlap of the operands, with ok=false when some
// axis range inverts (no intersection).
func (e *Envelope) Intersect(o *Envelope) (*Envelope, bool) {
	r := &Envelope{
		xMin: ratMax(e.xMin, o.xMin), xMax: ratMin(e.xMax, o.xMax),
		yMin: ratMax(e.yMin, o.yMin), yMax: ratMin(e.yMax, o.yMax),
		zMin: ratMax(e.zMin, o.zMin), zMax: ratMin(e.zMax, o.zMax),
	}
	if r.xMin.Cmp(r.xMax) > 0 || r.yMin.Cmp(r.yMax) > 0 || r.zMin.Cmp(r.zMax) > 0 {
		return nil, false
	}
	return r, true
}

// Contains reports whether o lies entirely inside e, boundaries included.
func (e *Envelope) Contains(o *Envelope) bool {
	for axis := 0; axis < 3; axis++ {
		if e.min(axis).Cmp(o.min(axis)) > 0 || o.max(axis).Cmp(e.max(axis)) > 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether x lies inside e, boundaries included.
func (e *Envelope) ContainsPoint(x *Point) bool {
	pos := x.Pos()
	for axis := 0; axis < 3; axis++ {
		c := pos.comp(axis)
		if c.Cmp(e.min(axis)) < 0 || c.Cmp(e.max(axis)) > 0 {
			return false
		}
	}
	return true
}

// Centroid returns the center of the envelope.
func (e *Envelope) Centroid() *Point {
	half := big.NewRat(1, 2)
	mid := func(lo, hi *big.Rat) *big.Rat {
		m := new(big.Rat).Add(lo, hi)
		return m.Mul(m, half)
	}
	return NewPoint(mid(e.xMin, e.xMax), mid(e.yMin, e.yMax), mid(e.zMin, e.zMax))
}

// Corners returns the corner points. Degenerate envelopes repeat corners;
// callers that need distinct points must deduplicate.
func (e *Envelope) Corners() [8]*Point {
	var out [8]*Point
	for i := 0; i < 8; i++ {
		x := e.xMin
		if i&1 != 0 {
			x = e.xMax
		}
		y := e.yMin
		if i&2 != 0 {
			y = e.yMax
		}
		z := e.zMin
		if i&4 != 0 {
			z = e.zMax
		}
		out[i] = NewPoint(x, y, z)
	}
	return out
}

// EnvelopeFace describes one bounding face by its normal axis and the sign
// of the outward normal, instead of one subclass per face.
type EnvelopeFace struct {
	// Axis is the normal axis: 0 (x), 1 (y) or 2 (z).
	Axis int
	// Sign is -1 for the min-bound face and +1 for the max-bound face.
	Sign int
	// Corners are the four face corners in loop order. Degenerate envelopes
	// repeat corners.
	Corners [4]*Point
}

// Faces returns the six bounding faces as (axis, sign) descriptors.
func (e *Envelope) Faces() [6]EnvelopeFace {
	var out [6]EnvelopeFace
	i := 0
	for axis := 0; axis < 3; axis++ {
		for _, sign := range []int{-1, +1} {
			bound := e.min(axis)
			if sign > 0 {
				bound = e.max(axis)
			}
			u, w := (axis+1)%3, (axis+2)%3
			mk := func(uVal, wVal *big.Rat) *Point {
				var c [3]*big.Rat
				c[axis], c[u], c[w] = bound, uVal, wVal
				return NewPoint(c[0], c[1], c[2])
			}
			out[i] = EnvelopeFace{
				Axis: axis,
				Sign: sign,
				Corners: [4]*Point{
					mk(e.min(u), e.min(w)), mk(e.max(u), e.min(w)),
					mk(e.max(u), e.max(w)), mk(e.min(u), e.max(w)),
				},
			}
			i++
		}
	}
	return out
}

// Edges returns the distinct non-degenerate bounding edges, up to twelve of
// them.
func (e *Envelope) Edges() []*LineSegment {
	seen := map[string]bool{}
	var out []*LineSegment
	for _, f := range e.Faces() {
		for i := 0; i < 4; i++ {
			a, b := f.Corners[i], f.Corners[(i+1)%4]
			if a.Equal(b) {
				continue
			}
			k1 := a.Pos().String() + "|" + b.Pos().String()
			k2 := b.Pos().String() + "|" + a.Pos().String()
			if seen[k1] || seen[k2] {
				continue
			}
			seen[k1] = true
			out = append(out, &LineSegment{p: a, q: b})
		}
	}
	return out
}

// clipSpan restricts the parameter span of line l to the envelope's slab on
// every axis, the per-axis replacement for walking faces. It reports
// whether anything survives.
func (e *Envelope) clipSpan(l *Line, s *span) bool {
	pos := l.p.Pos()
	for axis := 0; axis < 3; axis++ {
		p0, d := pos.comp(axis), l.v.comp(axis)
		// p0 + t*d >= min  and  max - p0 - t*d >= 0
		if !s.clipAffine(new(big.Rat).Sub(p0, e.min(axis)), d) {
			return false
		}
		if !s.clipAffine(new(big.Rat).Sub(e.max(axis), p0), new(big.Rat).Neg(d)) {
			return false
		}
	}
	return true
}

// ClipLine returns the exact intersection of a line with the envelope:
// nothing, a point, or a segment.
func (e *Envelope) ClipLine(l *Line) Intersection {
	s := fullSpan()
	e.clipSpan(l, &s)
	return s.resolve(l)
}

// ClipRay is ClipLine restricted to t >= 0.
func (e *Envelope) ClipRay(r *Ray) Intersection {
	s := nonNegativeSpan()
	e.clipSpan(r.line, &s)
	return s.resolve(r.line)
}

// ClipSegment is ClipLine restricted to the segment's parameter range.
func (e *Envelope) ClipSegment(seg *LineSegment) Intersection {
	s := unitSpan()
	e.clipSpan(seg.Line(), &s)
	return s.resolve(seg.Line())
}

func (e *Envelope) String() string {
	return fmt.Sprintf("Envelope[x: %s..%s, y: %s..%s, z: %s..%s]",
		e.xMin.RatString(), e.xMax.RatString(),
		e.yMin.RatString(), e.yMax.RatString(),
		e.zMin.RatString(), e.zMax.RatString())
}
