package geom

import (
	"math/big"

	"github.com/exactgeom/exactgeom/arith"
)

// The per-type methods below are convenience wrappers over the symmetric
// package-level engine.

func (p *Point) Intersects(g Geometry) bool { return Intersects(p, g) }
func (p *Point) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(p, g)
}
func (p *Point) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(p, g) }
func (p *Point) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(p, g, oom, pol)
}

func (l *Line) Intersects(g Geometry) bool { return Intersects(l, g) }
func (l *Line) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(l, g)
}
func (l *Line) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(l, g) }
func (l *Line) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(l, g, oom, pol)
}

func (r *Ray) Intersects(g Geometry) bool { return Intersects(r, g) }
func (r *Ray) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(r, g)
}
func (r *Ray) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(r, g) }
func (r *Ray) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(r, g, oom, pol)
}

func (pl *Plane) Intersects(g Geometry) bool { return Intersects(pl, g) }
func (pl *Plane) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(pl, g)
}
func (pl *Plane) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(pl, g) }
func (pl *Plane) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(pl, g, oom, pol)
}

func (s *LineSegment) Intersects(g Geometry) bool { return Intersects(s, g) }
func (s *LineSegment) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(s, g)
}
func (s *LineSegment) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(s, g) }
func (s *LineSegment) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(s, g, oom, pol)
}

func (t *Triangle) Intersects(g Geometry) bool { return Intersects(t, g) }
func (t *Triangle) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(t, g)
}
func (t *Triangle) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(t, g) }
func (t *Triangle) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(t, g, oom, pol)
}

func (t *Tetrahedron) Intersects(g Geometry) bool { return Intersects(t, g) }
func (t *Tetrahedron) IntersectionWith(g Geometry) Intersection {
	return IntersectionOf(t, g)
}
func (t *Tetrahedron) DistanceSquaredTo(g Geometry) *big.Rat { return DistanceSquared(t, g) }
func (t *Tetrahedron) DistanceTo(g Geometry, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return Distance(t, g, oom, pol)
}
