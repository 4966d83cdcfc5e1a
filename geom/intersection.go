package geom

// IntersectionKind discriminates the possible geometries of a pairwise
// intersection. Matching on it exhaustively replaces the downcast-and-hope
// pattern: a missing case is visible at review time, not a runtime cast
// failure.
type IntersectionKind int

const (
	IntersectNone IntersectionKind = iota
	IntersectPoint
	IntersectLineSegment
	IntersectLine
	IntersectRay
	IntersectPlane
	IntersectPolygon
	IntersectPolyhedron
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectNone:
		return "None"
	case IntersectPoint:
		return "Point"
	case IntersectLineSegment:
		return "LineSegment"
	case IntersectLine:
		return "Line"
	case IntersectRay:
		return "Ray"
	case IntersectPlane:
		return "Plane"
	case IntersectPolygon:
		return "Polygon"
	case IntersectPolyhedron:
		return "Polyhedron"
	}
	return "Unknown"
}

// Intersection is the discriminated result of an intersection query. The
// concrete type is always the geometry value itself: a *Point, a
// *LineSegment, a *Line, a *Ray, a *Plane, a *Polygon, a *Polyhedron, or
// NoIntersection.
type Intersection interface {
	IntersectionKind() IntersectionKind
}

// NoIntersection is the first-class empty result. It is not an error.
type NoIntersection struct{}

func (NoIntersection) IntersectionKind() IntersectionKind { return IntersectNone }

func (NoIntersection) String() string { return "None" }

func (p *Point) IntersectionKind() IntersectionKind       { return IntersectPoint }
func (s *LineSegment) IntersectionKind() IntersectionKind { return IntersectLineSegment }
func (l *Line) IntersectionKind() IntersectionKind        { return IntersectLine }
func (r *Ray) IntersectionKind() IntersectionKind         { return IntersectRay }
func (pl *Plane) IntersectionKind() IntersectionKind      { return IntersectPlane }
func (pg *Polygon) IntersectionKind() IntersectionKind    { return IntersectPolygon }
func (ph *Polyhedron) IntersectionKind() IntersectionKind { return IntersectPolyhedron }

// Intersects reports whether two primitives share at least one point. It is
// decided exactly: either the condition reduces to rational sign tests, or
// the comparison happens at the squared level, so no rounding is involved.
func Intersects(a, b Geometry) bool {
	if envelopeReject(a, b) {
		return false
	}
	return IntersectionOf(a, b).IntersectionKind() != IntersectNone
}

// IntersectionOf returns the exact geometry shared by a and b.
func IntersectionOf(a, b Geometry) Intersection {
	if envelopeReject(a, b) {
		return NoIntersection{}
	}
	if kindRank(a) > kindRank(b) {
		a, b = b, a
	}

	switch x := a.(type) {
	case *Point:
		return intersectPointAny(x, b)
	case *Line:
		return intersectLineAny(x, b)
	case *Ray:
		return intersectRayAny(x, b)
	case *Plane:
		return intersectPlaneAny(x, b)
	case *LineSegment:
		return intersectSegmentAny(x, b)
	case *Triangle:
		return intersectTriangleAny(x, b)
	case *Tetrahedron:
		return ixTetraTetra(x, b.(*Tetrahedron))
	}
	return NoIntersection{}
}

// envelopeReject is the cheap pre-filter: when both operands are bounded
// and their envelopes miss each other, the primitives cannot intersect.
// The converse is never assumed.
func envelopeReject(a, b Geometry) bool {
	ea, eb := a.Envelope(), b.Envelope()
	return ea != nil && eb != nil && !ea.Intersects(eb)
}

func kindRank(g Geometry) int {
	switch g.(type) {
	case *Point:
		return 0
	case *Line:
		return 1
	case *Ray:
		return 2
	case *Plane:
		return 3
	case *LineSegment:
		return 4
	case *Triangle:
		return 5
	case *Tetrahedron:
		return 6
	}
	return 7
}

func intersectPointAny(p *Point, b Geometry) Intersection {
	contains := false
	switch y := b.(type) {
	case *Point:
		contains = p.Equal(y)
	case *Line:
		contains = y.ContainsPoint(p)
	case *Ray:
		contains = y.ContainsPoint(p)
	case *Plane:
		contains = y.ContainsPoint(p)
	case *LineSegment:
		contains = y.ContainsPoint(p)
	case *Triangle:
		contains = y.ContainsPoint(p)
	case *Tetrahedron:
		contains = y.ContainsPoint(p)
	}
	if contains {
		return p
	}
	return NoIntersection{}
}

func intersectLineAny(l *Line, b Geometry) Intersection {
	switch y := b.(type) {
	case *Line:
		return ixLineLine(l, y)
	case *Ray:
		return ixLineRay(l, y)
	case *Plane:
		return ixLinePlane(l, y)
	case *LineSegment:
		return ixLineSegment(l, y)
	case *Triangle:
		return clipLinearTriangle(l, fullSpan(), y)
	case *Tetrahedron:
		return clipLinearTetra(l, fullSpan(), y)
	}
	return NoIntersection{}
}

func intersectRayAny(r *Ray, b Geometry) Intersection {
	switch y := b.(type) {
	case *Ray:
		return ixRayRay(r, y)
	case *Plane:
		return ixRayPlane(r, y)
	case *LineSegment:
		return ixRaySegment(r, y)
	case *Triangle:
		return clipLinearTriangle(r.line, nonNegativeSpan(), y)
	case *Tetrahedron:
		return clipLinearTetra(r.line, nonNegativeSpan(), y)
	}
	return NoIntersection{}
}

func intersectPlaneAny(pl *Plane, b Geometry) Intersection {
	switch y := b.(type) {
	case *Plane:
		return ixPlanePlane(pl, y)
	case *LineSegment:
		return ixPlaneSegment(pl, y)
	case *Triangle:
		return ixPlaneTriangle(pl, y)
	case *Tetrahedron:
		return ixPlaneTetra(pl, y)
	}
	return NoIntersection{}
}

func intersectSegmentAny(s *LineSegment, b Geometry) Intersection {
	switch y := b.(type) {
	case *LineSegment:
		return ixSegmentSegment(s, y)
	case *Triangle:
		return clipLinearTriangle(s.Line(), unitSpan(), y)
	case *Tetrahedron:
		return clipLinearTetra(s.Line(), unitSpan(), y)
	}
	return NoIntersection{}
}

func intersectTriangleAny(t *Triangle, b Geometry) Intersection {
	switch y := b.(type) {
	case *Triangle:
		return ixTriangleTriangle(t, y)
	case *Tetrahedron:
		return ixTriangleTetra(t, y)
	}
	return NoIntersection{}
}
