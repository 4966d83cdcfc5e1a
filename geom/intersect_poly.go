package geom

import (
	"math/big"
)

// clipLinearTriangle intersects the portion of line l selected by the span
// with a triangle. The span is the whole line for Line queries, t >= 0 for
// rays and [0, 1] for segments.
func clipLinearTriangle(l *Line, sp span, tri *Triangle) Intersection {
	pl := tri.Plane()
	den := pl.n.Dot(l.v)

	if den.Sign() == 0 {
		if !pl.ContainsPoint(l.p) {
			return NoIntersection{}
		}
		if !clipSpanByTriangle(l, &sp, tri) {
			return NoIntersection{}
		}
		return sp.resolve(l)
	}

	t, _ := planeLineParam(pl, l)
	if !sp.contains(t) {
		return NoIntersection{}
	}
	x := l.At(t)
	if tri.containsCoplanar(x) {
		return x
	}
	return NoIntersection{}
}

// clipSpanByTriangle restricts the span of an in-plane line by the three
// edge half-planes of the triangle. Each edge-side quantity is affine in
// the line parameter, so this is three clipAffine calls.
func clipSpanByTriangle(l *Line, sp *span, tri *Triangle) bool {
	n := tri.Plane().n
	corners := tri.Points()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%3]
		edge := b.Sub(a)
		f0 := edge.Cross(l.p.Sub(a)).Dot(n)
		df := edge.Cross(l.v).Dot(n)
		if !sp.clipAffine(f0, df) {
			return false
		}
	}
	return true
}

// clipLinearTetra intersects the portion of line l selected by the span
// with a tetrahedron by clipping against its four inner face half-spaces.
func clipLinearTetra(l *Line, sp span, tet *Tetrahedron) Intersection {
	corners := tet.Points()
	for i, face := range tet.Faces() {
		pl := face.Plane()
		inner := pl.Side(corners[i])
		f0 := pl.offsetOf(l.p)
		df := pl.n.Dot(l.v)
		if inner < 0 {
			f0.Neg(f0)
			df.Neg(df)
		}
		if !sp.clipAffine(f0, df) {
			return NoIntersection{}
		}
	}
	return sp.resolve(l)
}

func ixPlaneTriangle(pl *Plane, tri *Triangle) Intersection {
	tpl := tri.Plane()
	if pl.IsParallelTo(tpl) {
		if pl.ContainsPoint(tri.p) {
			return &Polygon{verts: []*Point{tri.p, tri.q, tri.r}, plane: tpl}
		}
		return NoIntersection{}
	}
	l := ixPlanePlane(pl, tpl).(*Line)
	return clipLinearTriangle(l, fullSpan(), tri)
}

func ixPlaneTetra(pl *Plane, tet *Tetrahedron) Intersection {
	var segs []*LineSegment
	var pts []*Point

	for _, face := range tet.Faces() {
		switch sec := ixPlaneTriangle(pl, face).(type) {
		case *Polygon:
			// A whole face lies in the plane; it is the entire section.
			return sec
		case *LineSegment:
			segs = appendSegment(segs, sec)
		case *Point:
			pts = appendPoint(pts, sec)
		}
	}

	switch len(segs) {
	case 0:
		if len(pts) > 0 {
			return pts[0]
		}
		return NoIntersection{}
	case 1:
		return segs[0]
	}
	return polygonFromLoop(pl, chainSegments(segs))
}

func ixTriangleTriangle(t1, t2 *Triangle) Intersection {
	p1, p2 := t1.Plane(), t2.Plane()
	if p1.IsParallelTo(p2) {
		if !p1.ContainsPoint(t2.p) {
			return NoIntersection{}
		}
		// Coplanar: Sutherland-Hodgman clip of t1 by t2's edges.
		verts := []*Point{t1.p, t1.q, t1.r}
		corners := t2.Points()
		for i := range corners {
			a, b := corners[i], corners[(i+1)%3]
			edge := b.Sub(a)
			verts = clipLoop(verts, func(x *Point) *big.Rat {
				return edge.Cross(x.Sub(a)).Dot(p2.n)
			})
			if len(verts) == 0 {
				return NoIntersection{}
			}
		}
		return polygonFromLoop(p1, verts)
	}

	// Both sections lie on the planes' shared line; intersect the spans.
	l := ixPlanePlane(p1, p2).(*Line)
	sp := fullSpan()
	if !clipSpanByTriangle(l, &sp, t1) || !clipSpanByTriangle(l, &sp, t2) {
		return NoIntersection{}
	}
	return sp.resolve(l)
}

func ixTriangleTetra(tri *Triangle, tet *Tetrahedron) Intersection {
	verts := []*Point{tri.p, tri.q, tri.r}
	corners := tet.Points()
	for i, face := range tet.Faces() {
		pl := face.Plane()
		inner := pl.Side(corners[i])
		verts = clipLoop(verts, func(x *Point) *big.Rat {
			o := pl.offsetOf(x)
			if inner < 0 {
				o.Neg(o)
			}
			return o
		})
		if len(verts) == 0 {
			return NoIntersection{}
		}
	}
	return polygonFromLoop(tri.Plane(), verts)
}

func ixTetraTetra(t1, t2 *Tetrahedron) Intersection {
	var polys []*Polygon
	var segs []*LineSegment
	var pts []*Point

	collect := func(in Intersection) {
		switch x := in.(type) {
		case *Polygon:
			polys = appendPolygon(polys, x)
		case *LineSegment:
			segs = appendSegment(segs, x)
		case *Point:
			pts = appendPoint(pts, x)
		}
	}

	for _, face := range t1.Faces() {
		collect(ixTriangleTetra(face, t2))
	}
	for _, face := range t2.Faces() {
		collect(ixTriangleTetra(face, t1))
	}

	switch {
	case len(polys) >= 2:
		return &Polyhedron{faces: polys}
	case len(polys) == 1:
		return polys[0]
	case len(segs) > 0:
		return segs[0]
	case len(pts) > 0:
		return pts[0]
	}
	return NoIntersection{}
}

// clipLoop clips a convex vertex loop against the half-space f(x) >= 0,
// where f is affine. Crossing points are exact: f varies linearly along an
// edge, so the crossing parameter is f(a) / (f(a) - f(b)).
func clipLoop(verts []*Point, f func(*Point) *big.Rat) []*Point {
	if len(verts) == 0 {
		return nil
	}
	vals := make([]*big.Rat, len(verts))
	for i, v := range verts {
		vals[i] = f(v)
	}

	var out []*Point
	for i := range verts {
		j := (i + 1) % len(verts)
		fi, fj := vals[i], vals[j]
		if fi.Sign() >= 0 {
			out = append(out, verts[i])
		}
		if fi.Sign()*fj.Sign() < 0 {
			t := new(big.Rat).Quo(fi, new(big.Rat).Sub(fi, fj))
			step := verts[j].Sub(verts[i]).Scale(t)
			out = append(out, verts[i].Translate(step))
		}
	}
	return out
}

// polygonFromLoop converts a clipped vertex loop into intersection
// geometry, collapsing duplicate and collinear loops to their true
// dimensionality.
func polygonFromLoop(pl *Plane, verts []*Point) Intersection {
	var uniq []*Point
	for _, v := range verts {
		if len(uniq) == 0 || !uniq[len(uniq)-1].Equal(v) {
			uniq = append(uniq, v)
		}
	}
	for len(uniq) > 1 && uniq[0].Equal(uniq[len(uniq)-1]) {
		uniq = uniq[:len(uniq)-1]
	}

	switch len(uniq) {
	case 0:
		return NoIntersection{}
	case 1:
		return uniq[0]
	case 2:
		return &LineSegment{p: uniq[0], q: uniq[1]}
	}

	dir := uniq[1].Sub(uniq[0])
	collinear := true
	for _, v := range uniq[2:] {
		if !dir.Cross(v.Sub(uniq[0])).IsZero() {
			collinear = false
			break
		}
	}
	if !collinear {
		return &Polygon{verts: uniq, plane: pl}
	}

	// Degenerate sliver: return the extreme stretch.
	l := &Line{p: uniq[0], v: dir}
	lo, hi := l.paramOf(uniq[0]), l.paramOf(uniq[0])
	for _, v := range uniq[1:] {
		t := l.paramOf(v)
		if t.Cmp(lo) < 0 {
			lo = t
		}
		if t.Cmp(hi) > 0 {
			hi = t
		}
	}
	if lo.Cmp(hi) == 0 {
		return uniq[0]
	}
	return &LineSegment{p: l.At(lo), q: l.At(hi)}
}

// chainSegments orders face-section segments that share exact endpoints
// into a single vertex loop.
func chainSegments(segs []*LineSegment) []*Point {
	verts := []*Point{segs[0].p, segs[0].q}
	used := make([]bool, len(segs))
	used[0] = true
	for {
		last := verts[len(verts)-1]
		found := false
		for i, s := range segs {
			if used[i] {
				continue
			}
			var next *Point
			switch {
			case s.p.Equal(last):
				next = s.q
			case s.q.Equal(last):
				next = s.p
			default:
				continue
			}
			used[i] = true
			if next.Equal(verts[0]) {
				return verts
			}
			verts = append(verts, next)
			found = true
			break
		}
		if !found {
			return verts
		}
	}
}

func appendPoint(pts []*Point, p *Point) []*Point {
	for _, q := range pts {
		if q.Equal(p) {
			return pts
		}
	}
	return append(pts, p)
}

func appendSegment(segs []*LineSegment, s *LineSegment) []*LineSegment {
	for _, o := range segs {
		if o.Equal(s) {
			return segs
		}
	}
	return append(segs, s)
}

func appendPolygon(polys []*Polygon, pg *Polygon) []*Polygon {
	for _, o := range polys {
		if polygonsEqual(o, pg) {
			return polys
		}
	}
	return append(polys, pg)
}

// polygonsEqual compares vertex sets regardless of loop order.
func polygonsEqual(a, b *Polygon) bool {
	if len(a.verts) != len(b.verts) {
		return false
	}
	matched := make([]bool, len(b.verts))
outer:
	for _, v := range a.verts {
		for i, w := range b.verts {
			if !matched[i] && v.Equal(w) {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
