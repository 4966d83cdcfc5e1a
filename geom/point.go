package geom

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/exactgeom/exactgeom/arith"
)

// Point is a position given as an offset vector plus a relative vector.
// The split decouples where a shape sits from its internal layout, which
// makes translation a constant-size update; two points are equal whenever
// their absolute positions agree, however the split is chosen.
type Point struct {
	offset, rel *Vector

	posOnce sync.Once
	pos     *Vector

	envOnce sync.Once
	env     *Envelope
}

// NewPoint builds a point at the given absolute coordinates, with a zero
// offset.
func NewPoint(x, y, z *big.Rat) *Point {
	return &Point{offset: ZeroVector(), rel: NewVector(x, y, z)}
}

// NewPointInt builds a point at integer coordinates.
func NewPointInt(x, y, z int64) *Point {
	return &Point{offset: ZeroVector(), rel: NewVectorInt(x, y, z)}
}

// NewPointParts builds a point from an explicit offset/relative pair.
func NewPointParts(offset, rel *Vector) *Point {
	return &Point{offset: offset, rel: rel}
}

// Pos returns the absolute position offset + rel. Memoized.
func (p *Point) Pos() *Vector {
	p.posOnce.Do(func() {
		p.pos = p.offset.Add(p.rel)
	})
	return p.pos
}

// Offset returns the offset part of the point.
func (p *Point) Offset() *Vector { return p.offset }

// Rel returns the relative part of the point.
func (p *Point) Rel() *Vector { return p.rel }

// X returns a copy of the absolute x coordinate.
func (p *Point) X() *big.Rat { return p.Pos().DX() }

// Y returns a copy of the absolute y coordinate.
func (p *Point) Y() *big.Rat { return p.Pos().DY() }

// Z returns a copy of the absolute z coordinate.
func (p *Point) Z() *big.Rat { return p.Pos().DZ() }

// Translate returns the point moved by v. Only the offset changes.
func (p *Point) Translate(v *Vector) *Point {
	return &Point{offset: p.offset.Add(v), rel: p.rel}
}

// Sub returns the displacement from q to p.
func (p *Point) Sub(q *Point) *Vector {
	return p.Pos().Sub(q.Pos())
}

// Equal compares absolute positions exactly, ignoring how each point splits
// into offset and relative parts.
func (p *Point) Equal(q *Point) bool {
	return p.Pos().Equal(q.Pos())
}

// DistanceSquared returns the exact squared distance to q.
func (p *Point) DistanceSquared(q *Point) *big.Rat {
	return p.Sub(q).MagnitudeSquared()
}

// Distance returns the distance to q rounded to the given oom.
func (p *Point) Distance(q *Point, oom int, pol arith.RoundingPolicy) (*big.Rat, error) {
	return p.Sub(q).Magnitude(oom, pol)
}

// Envelope returns the degenerate, point-kind envelope at p.
func (p *Point) Envelope() *Envelope {
	p.envOnce.Do(func() {
		pos := p.Pos()
		p.env = &Envelope{
			xMin: pos.DX(), xMax: pos.DX(),
			yMin: pos.DY(), yMax: pos.DY(),
			zMin: pos.DZ(), zMax: pos.DZ(),
		}
	})
	return p.env
}

func (p *Point) String() string {
	return fmt.Sprintf("Point%s", p.Pos())
}
