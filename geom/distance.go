package geom

import (
	"math/big"

	"github.com/exactgeom/exactgeom/arith"
)

// DistanceSquared returns the exact squared Euclidean distance between the
// closest pair of points of a and b. It is zero exactly when the two
// primitives intersect.
func DistanceSquared(a, b Geometry) *big.Rat {
	if kindRank(a) > kindRank(b) {
		a, b = b, a
	}

	switch x := a.(type) {
	case *Point:
		return dsqPointAny(x, b)
	case *Line:
		return dsqLineAny(x, b)
	case *Ray:
		return dsqRayAny(x, b)
	case *Plane:
		return dsqPlaneAny(x, b)
	case *LineSegment:
		return dsqSegmentAny(x, b)
	case *Triangle:
		return dsqTriangleAny(x, b)
	case *Tetrahedron:
		return dsqTetraTetra(x, b.(*Tetrahedron))
	}
	return ratZeroCopy()
}

// Distance rounds the square root of DistanceSquared onto the 10^oom grid
// under the given policy.
func Distance(a, b Geometry, oom int, p arith.RoundingPolicy) (*big.Rat, error) {
	sq, err := arith.NewSqrt(DistanceSquared(a, b))
	if err != nil {
		return nil, err
	}
	return sq.Approx(oom, p)
}

func ratZeroCopy() *big.Rat { return new(big.Rat) }

func dsqPointAny(p *Point, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *Point:
		return p.DistanceSquared(y)
	case *Line:
		return dsqPointLine(p, y)
	case *Ray:
		return dsqPointRay(p, y)
	case *Plane:
		return y.DistanceSquaredToPoint(p)
	case *LineSegment:
		return dsqPointSegment(p, y)
	case *Triangle:
		return dsqPointTriangle(p, y)
	case *Tetrahedron:
		return dsqPointTetra(p, y)
	}
	return ratZeroCopy()
}

func dsqLineAny(l *Line, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *Line:
		return dsqLineLine(l, y)
	case *Ray:
		return dsqLineRay(l, y)
	case *Plane:
		return dsqLinePlane(l, y)
	case *LineSegment:
		return dsqLineSegment(l, y)
	case *Triangle:
		return dsqLineTriangle(l, y)
	case *Tetrahedron:
		return dsqLineTetra(l, y)
	}
	return ratZeroCopy()
}

func dsqRayAny(r *Ray, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *Ray:
		return dsqRayRay(r, y)
	case *Plane:
		return dsqRayPlane(r, y)
	case *LineSegment:
		return dsqRaySegment(r, y)
	case *Triangle:
		return dsqRayTriangle(r, y)
	case *Tetrahedron:
		return dsqRayTetra(r, y)
	}
	return ratZeroCopy()
}

func dsqPlaneAny(pl *Plane, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *Plane:
		if pl.IsParallelTo(y) && !pl.Same(y) {
			return pl.DistanceSquaredToPoint(y.p)
		}
		return ratZeroCopy()
	case *LineSegment:
		return dsqPlaneCorners(pl, []*Point{y.p, y.q})
	case *Triangle:
		return dsqPlaneCorners(pl, []*Point{y.p, y.q, y.r})
	case *Tetrahedron:
		return dsqPlaneCorners(pl, []*Point{y.p, y.q, y.r, y.s})
	}
	return ratZeroCopy()
}

func dsqSegmentAny(s *LineSegment, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *LineSegment:
		return dsqSegmentSegment(s, y)
	case *Triangle:
		return dsqSegmentTriangle(s, y)
	case *Tetrahedron:
		return dsqSegmentTetra(s, y)
	}
	return ratZeroCopy()
}

func dsqTriangleAny(t *Triangle, b Geometry) *big.Rat {
	switch y := b.(type) {
	case *Triangle:
		return dsqTriangleTriangle(t, y)
	case *Tetrahedron:
		return dsqTriangleTetra(t, y)
	}
	return ratZeroCopy()
}

// dsqPointLine is |w|^2 - (w.v)^2 / |v|^2 with w the offset from the line's
// base point. The subtraction is exact, so the result is zero only when the
// point lies on the line.
func dsqPointLine(p *Point, l *Line) *big.Rat {
	w := p.Sub(l.p)
	wv := w.Dot(l.v)
	d := w.MagnitudeSquared()
	proj := new(big.Rat).Quo(new(big.Rat).Mul(wv, wv), l.v.MagnitudeSquared())
	return d.Sub(d, proj)
}

// lineParamOfClosest returns the parameter of the foot of the perpendicular
// from p onto l.
func lineParamOfClosest(p *Point, l *Line) *big.Rat {
	w := p.Sub(l.p)
	return new(big.Rat).Quo(w.Dot(l.v), l.v.MagnitudeSquared())
}

func dsqPointRay(p *Point, r *Ray) *big.Rat {
	t := lineParamOfClosest(p, r.line)
	if t.Sign() < 0 {
		return p.DistanceSquared(r.line.p)
	}
	return dsqPointLine(p, r.line)
}

func dsqPointSegment(p *Point, s *LineSegment) *big.Rat {
	l := s.Line()
	t := lineParamOfClosest(p, l)
	switch {
	case t.Sign() <= 0:
		return p.DistanceSquared(s.p)
	case t.Cmp(ratOne) >= 0:
		return p.DistanceSquared(s.q)
	}
	return dsqPointLine(p, l)
}

func dsqPointTriangle(p *Point, t *Triangle) *big.Rat {
	pl := t.Plane()
	if t.containsCoplanar(pl.Project(p)) {
		return pl.DistanceSquaredToPoint(p)
	}
	best := (*big.Rat)(nil)
	for _, e := range t.Edges() {
		best = minRat(best, dsqPointSegment(p, e))
	}
	return best
}

func dsqPointTetra(p *Point, t *Tetrahedron) *big.Rat {
	if t.ContainsPoint(p) {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range t.Faces() {
		best = minRat(best, dsqPointTriangle(p, f))
	}
	return best
}

// dsqLineLine handles both parallel lines and skew lines. For skew lines the
// gap is the projection of the offset onto the common perpendicular,
// (dp . v1 x v2)^2 / |v1 x v2|^2.
func dsqLineLine(l1, l2 *Line) *big.Rat {
	n := l1.v.Cross(l2.v)
	if n.IsZero() {
		return dsqPointLine(l2.p, l1)
	}
	dp := l2.p.Sub(l1.p)
	num := dp.Dot(n)
	num.Mul(num, new(big.Rat).Set(num))
	return num.Quo(num, n.MagnitudeSquared())
}

// closestParams solves for the parameters of the mutually closest points of
// two non-parallel lines. ok is false when the lines are parallel.
func closestParams(l1, l2 *Line) (s, t *big.Rat, ok bool) {
	r := l1.p.Sub(l2.p)
	a := l1.v.MagnitudeSquared()
	b := l1.v.Dot(l2.v)
	c := l2.v.MagnitudeSquared()
	e1 := l1.v.Dot(r)
	e2 := l2.v.Dot(r)

	den := new(big.Rat).Sub(new(big.Rat).Mul(a, c), new(big.Rat).Mul(b, b))
	if den.Sign() == 0 {
		return nil, nil, false
	}
	s = new(big.Rat).Sub(new(big.Rat).Mul(b, e2), new(big.Rat).Mul(c, e1))
	s.Quo(s, den)
	t = new(big.Rat).Sub(new(big.Rat).Mul(a, e2), new(big.Rat).Mul(b, e1))
	t.Quo(t, den)
	return s, t, true
}

func dsqLineRay(l *Line, r *Ray) *big.Rat {
	_, t, ok := closestParams(l, r.line)
	if ok && t.Sign() >= 0 {
		return dsqLineLine(l, r.line)
	}
	return dsqPointLine(r.line.p, l)
}

func dsqLineSegment(l *Line, s *LineSegment) *big.Rat {
	_, t, ok := closestParams(l, s.Line())
	if ok && t.Sign() >= 0 && t.Cmp(ratOne) <= 0 {
		return dsqLineLine(l, s.Line())
	}
	if !ok || t.Sign() < 0 {
		d1 := dsqPointLine(s.p, l)
		if !ok {
			return minRat(d1, dsqPointLine(s.q, l))
		}
		return d1
	}
	return dsqPointLine(s.q, l)
}

func dsqLinePlane(l *Line, pl *Plane) *big.Rat {
	if pl.n.Dot(l.v).Sign() != 0 {
		return ratZeroCopy()
	}
	return pl.DistanceSquaredToPoint(l.p)
}

// dsqLineTriangle relies on the closest triangle feature lying on the
// boundary whenever the line misses the triangle.
func dsqLineTriangle(l *Line, t *Triangle) *big.Rat {
	if _, miss := clipLinearTriangle(l, fullSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, e := range t.Edges() {
		best = minRat(best, dsqLineSegment(l, e))
	}
	return best
}

func dsqLineTetra(l *Line, t *Tetrahedron) *big.Rat {
	if _, miss := clipLinearTetra(l, fullSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range t.Faces() {
		best = minRat(best, dsqLineTriangle(l, f))
	}
	return best
}

func dsqRayRay(r1, r2 *Ray) *big.Rat {
	s, t, ok := closestParams(r1.line, r2.line)
	if ok && s.Sign() >= 0 && t.Sign() >= 0 {
		return dsqLineLine(r1.line, r2.line)
	}
	return minRat(dsqPointRay(r1.line.p, r2), dsqPointRay(r2.line.p, r1))
}

func dsqRayPlane(r *Ray, pl *Plane) *big.Rat {
	if _, miss := IntersectionOf(r, pl).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	return pl.DistanceSquaredToPoint(r.line.p)
}

func dsqRaySegment(r *Ray, s *LineSegment) *big.Rat {
	u, t, ok := closestParams(r.line, s.Line())
	if ok && u.Sign() >= 0 && t.Sign() >= 0 && t.Cmp(ratOne) <= 0 {
		return dsqLineLine(r.line, s.Line())
	}
	best := dsqPointSegment(r.line.p, s)
	best = minRat(best, dsqPointRay(s.p, r))
	return minRat(best, dsqPointRay(s.q, r))
}

func dsqRayTriangle(r *Ray, t *Triangle) *big.Rat {
	if _, miss := clipLinearTriangle(r.line, nonNegativeSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := dsqPointTriangle(r.line.p, t)
	for _, e := range t.Edges() {
		best = minRat(best, dsqRaySegment(r, e))
	}
	return best
}

func dsqRayTetra(r *Ray, t *Tetrahedron) *big.Rat {
	if _, miss := clipLinearTetra(r.line, nonNegativeSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range t.Faces() {
		best = minRat(best, dsqRayTriangle(r, f))
	}
	return best
}

// dsqPlaneCorners is the shared bounded-primitive case: if any two corners
// sit on opposite sides, or one lies on the plane, the primitive touches it.
func dsqPlaneCorners(pl *Plane, corners []*Point) *big.Rat {
	side := 0
	for _, c := range corners {
		s := pl.Side(c)
		if s == 0 || (side != 0 && s != side) {
			return ratZeroCopy()
		}
		side = s
	}
	best := (*big.Rat)(nil)
	for _, c := range corners {
		best = minRat(best, pl.DistanceSquaredToPoint(c))
	}
	return best
}

func dsqSegmentSegment(s1, s2 *LineSegment) *big.Rat {
	u, t, ok := closestParams(s1.Line(), s2.Line())
	if ok &&
		u.Sign() >= 0 && u.Cmp(ratOne) <= 0 &&
		t.Sign() >= 0 && t.Cmp(ratOne) <= 0 {
		return dsqLineLine(s1.Line(), s2.Line())
	}
	best := dsqPointSegment(s1.p, s2)
	best = minRat(best, dsqPointSegment(s1.q, s2))
	best = minRat(best, dsqPointSegment(s2.p, s1))
	return minRat(best, dsqPointSegment(s2.q, s1))
}

func dsqSegmentTriangle(s *LineSegment, t *Triangle) *big.Rat {
	if _, miss := clipLinearTriangle(s.Line(), unitSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := dsqPointTriangle(s.p, t)
	best = minRat(best, dsqPointTriangle(s.q, t))
	for _, e := range t.Edges() {
		best = minRat(best, dsqSegmentSegment(s, e))
	}
	return best
}

func dsqSegmentTetra(s *LineSegment, t *Tetrahedron) *big.Rat {
	if _, miss := clipLinearTetra(s.Line(), unitSpan(), t).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range t.Faces() {
		best = minRat(best, dsqSegmentTriangle(s, f))
	}
	return best
}

func dsqTriangleTriangle(t1, t2 *Triangle) *big.Rat {
	if _, miss := ixTriangleTriangle(t1, t2).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, e := range t1.Edges() {
		best = minRat(best, dsqSegmentTriangle(e, t2))
	}
	for _, e := range t2.Edges() {
		best = minRat(best, dsqSegmentTriangle(e, t1))
	}
	return best
}

func dsqTriangleTetra(tri *Triangle, tet *Tetrahedron) *big.Rat {
	if _, miss := ixTriangleTetra(tri, tet).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range tet.Faces() {
		best = minRat(best, dsqTriangleTriangle(tri, f))
	}
	return best
}

func dsqTetraTetra(t1, t2 *Tetrahedron) *big.Rat {
	if _, miss := ixTetraTetra(t1, t2).(NoIntersection); !miss {
		return ratZeroCopy()
	}
	best := (*big.Rat)(nil)
	for _, f := range t1.Faces() {
		best = minRat(best, dsqTriangleTetra(f, t2))
	}
	return best
}

// minRat treats a nil best as unset.
func minRat(best, next *big.Rat) *big.Rat {
	if best == nil || next.Cmp(best) < 0 {
		return next
	}
	return best
}
