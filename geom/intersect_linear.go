package geom

import (
	"math/big"
)

// lineHit classifies the relative position of two lines.
type lineHit struct {
	kind   lineHitKind
	pt     *Point   // crossing point, for lineHitPoint
	t1, t2 *big.Rat // parameters of the crossing on each line
}

type lineHitKind int

const (
	lineHitSkew lineHitKind = iota
	lineHitPoint
	lineHitSame
	lineHitParallel
)

// solveLines classifies two lines exactly. For non-parallel lines the 2x2
// system t*v1 - u*v2 = (m.p - l.p) is solved on the two axes away from the
// largest cross-product component, which is exactly where the system is
// best conditioned and never degenerate; the third equation is then checked
// by an exact point-on-line test to separate crossing from skew.
func solveLines(l, m *Line) lineHit {
	if l.IsParallelTo(m) {
		if l.ContainsPoint(m.p) {
			return lineHit{kind: lineHitSame}
		}
		return lineHit{kind: lineHitParallel}
	}

	cross := l.v.Cross(m.v)
	axis := largestAxis(cross)
	a1, a2 := (axis+1)%3, (axis+2)%3

	dp := m.p.Sub(l.p)
	det := cross.comp(axis)

	// Cramer on rows a1, a2 of t*v1 - u*v2 = dp.
	t1 := new(big.Rat).Sub(
		new(big.Rat).Mul(dp.comp(a1), m.v.comp(a2)),
		new(big.Rat).Mul(m.v.comp(a1), dp.comp(a2)),
	)
	t1.Quo(t1, det)

	t2 := new(big.Rat).Sub(
		new(big.Rat).Mul(dp.comp(a1), l.v.comp(a2)),
		new(big.Rat).Mul(l.v.comp(a1), dp.comp(a2)),
	)
	t2.Quo(t2, det)

	pt := l.At(t1)
	if !m.ContainsPoint(pt) {
		return lineHit{kind: lineHitSkew}
	}
	return lineHit{kind: lineHitPoint, pt: pt, t1: t1, t2: t2}
}

func ixLineLine(l, m *Line) Intersection {
	switch h := solveLines(l, m); h.kind {
	case lineHitSame:
		return l
	case lineHitPoint:
		return h.pt
	}
	return NoIntersection{}
}

func ixLineRay(l *Line, r *Ray) Intersection {
	switch h := solveLines(l, r.line); h.kind {
	case lineHitSame:
		return r
	case lineHitPoint:
		if h.t2.Sign() >= 0 {
			return h.pt
		}
	}
	return NoIntersection{}
}

func ixLineSegment(l *Line, s *LineSegment) Intersection {
	switch h := solveLines(l, s.Line()); h.kind {
	case lineHitSame:
		return s
	case lineHitPoint:
		if h.t2.Sign() >= 0 && h.t2.Cmp(ratOne) <= 0 {
			return h.pt
		}
	}
	return NoIntersection{}
}

func ixRayRay(r1, r2 *Ray) Intersection {
	switch h := solveLines(r1.line, r2.line); h.kind {
	case lineHitPoint:
		if h.t1.Sign() >= 0 && h.t2.Sign() >= 0 {
			return h.pt
		}
		return NoIntersection{}
	case lineHitSame:
		t := r1.line.paramOf(r2.Origin())
		if r1.line.v.Dot(r2.line.v).Sign() > 0 {
			// Same orientation: the overlap starts at the later origin.
			if t.Sign() >= 0 {
				return &Ray{line: &Line{p: r2.Origin(), v: r1.line.v}}
			}
			return r1
		}
		// Facing each other: the overlap is the stretch between origins.
		switch t.Sign() {
		case 1:
			return &LineSegment{p: r1.Origin(), q: r2.Origin()}
		case 0:
			return r1.Origin()
		}
	}
	return NoIntersection{}
}

func ixRaySegment(r *Ray, s *LineSegment) Intersection {
	switch h := solveLines(r.line, s.Line()); h.kind {
	case lineHitPoint:
		if h.t1.Sign() >= 0 && h.t2.Sign() >= 0 && h.t2.Cmp(ratOne) <= 0 {
			return h.pt
		}
		return NoIntersection{}
	case lineHitSame:
		sp := nonNegativeSpan()
		return clipCollinear(r.line, sp, s)
	}
	return NoIntersection{}
}

func ixSegmentSegment(s1, s2 *LineSegment) Intersection {
	switch h := solveLines(s1.Line(), s2.Line()); h.kind {
	case lineHitPoint:
		if h.t1.Sign() >= 0 && h.t1.Cmp(ratOne) <= 0 &&
			h.t2.Sign() >= 0 && h.t2.Cmp(ratOne) <= 0 {
			return h.pt
		}
		return NoIntersection{}
	case lineHitSame:
		return clipCollinear(s1.Line(), unitSpan(), s2)
	}
	return NoIntersection{}
}

// clipCollinear intersects the parameter span of line l with the interval
// covered by segment s, which must be collinear with l.
func clipCollinear(l *Line, sp span, s *LineSegment) Intersection {
	a, b := l.paramOf(s.p), l.paramOf(s.q)
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	sp.raiseLo(a)
	sp.lowerHi(b)
	return sp.resolve(l)
}

// planeLineParam solves for the line parameter of the plane crossing.
// kind is lineHitPoint for a single crossing, lineHitSame when the line
// lies in the plane, and lineHitParallel for a parallel, disjoint pair.
func planeLineParam(pl *Plane, l *Line) (t *big.Rat, kind lineHitKind) {
	den := pl.n.Dot(l.v)
	if den.Sign() == 0 {
		if pl.ContainsPoint(l.p) {
			return nil, lineHitSame
		}
		return nil, lineHitParallel
	}
	t = pl.n.Dot(pl.p.Sub(l.p))
	return t.Quo(t, den), lineHitPoint
}

func ixLinePlane(l *Line, pl *Plane) Intersection {
	switch t, kind := planeLineParam(pl, l); kind {
	case lineHitSame:
		return l
	case lineHitPoint:
		return l.At(t)
	}
	return NoIntersection{}
}

func ixRayPlane(r *Ray, pl *Plane) Intersection {
	switch t, kind := planeLineParam(pl, r.line); kind {
	case lineHitSame:
		return r
	case lineHitPoint:
		if t.Sign() >= 0 {
			return r.line.At(t)
		}
	}
	return NoIntersection{}
}

func ixPlaneSegment(pl *Plane, s *LineSegment) Intersection {
	switch t, kind := planeLineParam(pl, s.Line()); kind {
	case lineHitSame:
		return s
	case lineHitPoint:
		if t.Sign() >= 0 && t.Cmp(ratOne) <= 0 {
			return s.Line().At(t)
		}
	}
	return NoIntersection{}
}

func ixPlanePlane(p1, p2 *Plane) Intersection {
	if p1.IsParallelTo(p2) {
		if p1.ContainsPoint(p2.p) {
			return p1
		}
		return NoIntersection{}
	}

	// Direction of the shared line, then an anchor point on it:
	// ((c1*n2 - c2*n1) x d) / |d|^2 satisfies both plane equations.
	d := p1.n.Cross(p2.n)
	c1 := p1.n.Dot(p1.p.Pos())
	c2 := p2.n.Dot(p2.p.Pos())
	w := p2.n.Scale(c1).Sub(p1.n.Scale(c2)).Cross(d)
	anchor := pointAt(w.Scale(invOf(d.MagnitudeSquared())))
	return &Line{p: anchor, v: d}
}

// pointAt wraps a position vector as a point with a zero offset.
func pointAt(v *Vector) *Point {
	return &Point{offset: ZeroVector(), rel: v}
}

func invOf(r *big.Rat) *big.Rat {
	return new(big.Rat).Inv(r)
}
