package geom

import (
	"math/big"

	"github.com/exactgeom/exactgeom/arith"
)

// rotationGuard is the number of extra decimal digits carried when
// approximating sin, cos and the axis normalization before the final
// rounding onto the caller's grid.
const rotationGuard = 8

// Rotation rotates points about an axis line by an angle in radians. The
// sine, cosine and axis length are irrational in general, so a rotation is
// pinned to an oom and policy at construction and every rotated coordinate
// is correct on that grid up to the guarded series error.
type Rotation struct {
	axis *Line
	sin  *big.Rat
	cos  *big.Rat
	unit *Vector
	oom  int
	pol  arith.RoundingPolicy
}

// NewRotation prepares a rotation of theta radians about the axis,
// computing rounded trigonometric values once so that repeated Apply calls
// use the same rotation matrix.
func NewRotation(axis *Line, theta *big.Rat, oom int, p arith.RoundingPolicy) (*Rotation, error) {
	if err := arith.CheckOOM(oom); err != nil {
		return nil, err
	}
	g := oom - rotationGuard

	sin, err := arith.Sin(theta, g, p)
	if err != nil {
		return nil, err
	}
	cos, err := arith.Cos(theta, g, p)
	if err != nil {
		return nil, err
	}
	inv, err := invMagnitude(axis.v, g, p)
	if err != nil {
		return nil, err
	}
	return &Rotation{
		axis: axis,
		sin:  sin,
		cos:  cos,
		unit: axis.v.Scale(inv),
		oom:  oom,
		pol:  p,
	}, nil
}

// invMagnitude approximates 1/|v| by rounding |v| first and inverting the
// rational result.
func invMagnitude(v *Vector, oom int, p arith.RoundingPolicy) (*big.Rat, error) {
	m, err := v.Magnitude(oom, p)
	if err != nil {
		return nil, err
	}
	if m.Sign() == 0 {
		return nil, arith.ErrPrecisionAmbiguous
	}
	return new(big.Rat).Inv(m), nil
}

// Apply rotates a single point with the Rodrigues formula
//
//	x' = x cosθ + (k × x) sinθ + k (k . x)(1 - cosθ)
//
// taken relative to the axis base point, then rounds each coordinate onto
// the rotation's grid.
func (r *Rotation) Apply(p *Point) *Point {
	x := p.Sub(r.axis.p)

	kx := r.unit.Cross(x)
	kdx := r.unit.Dot(x)

	one := new(big.Rat).SetInt64(1)
	rot := x.Scale(r.cos).
		Add(kx.Scale(r.sin)).
		Add(r.unit.Scale(new(big.Rat).Mul(kdx, one.Sub(one, r.cos))))

	coords := [3]*big.Rat{rot.DX(), rot.DY(), rot.DZ()}
	base := r.axis.p.Pos()
	bases := [3]*big.Rat{base.DX(), base.DY(), base.DZ()}
	for i := range coords {
		coords[i] = arith.Round(coords[i].Add(coords[i], bases[i]), r.oom, r.pol)
	}
	return NewPoint(coords[0], coords[1], coords[2])
}

func (r *Rotation) applyAll(pts ...*Point) []*Point {
	out := make([]*Point, len(pts))
	for i, p := range pts {
		out[i] = r.Apply(p)
	}
	return out
}

// Rotate rotates any bounded or unbounded primitive about the axis. The
// result is rebuilt through the ordinary constructors, so a rotation that
// collapses a primitive onto a degenerate one surfaces ErrDegenerateInput.
func Rotate(g Geometry, axis *Line, theta *big.Rat, oom int, p arith.RoundingPolicy) (Geometry, error) {
	r, err := NewRotation(axis, theta, oom, p)
	if err != nil {
		return nil, err
	}
	return r.RotateGeometry(g)
}

func (r *Rotation) RotateGeometry(g Geometry) (Geometry, error) {
	switch x := g.(type) {
	case *Point:
		return r.Apply(x), nil
	case *Line:
		pts := r.applyAll(x.p, x.At(ratOne))
		return NewLineFromPoints(pts[0], pts[1])
	case *Ray:
		pts := r.applyAll(x.line.p, x.line.At(ratOne))
		return NewRayFromPoints(pts[0], pts[1])
	case *Plane:
		pts := r.applyAll(x.p, x.p.Translate(x.n))
		return NewPlane(pts[0], pts[1].Sub(pts[0]))
	case *LineSegment:
		pts := r.applyAll(x.p, x.q)
		return NewLineSegment(pts[0], pts[1])
	case *Triangle:
		pts := r.applyAll(x.p, x.q, x.r)
		return NewTriangle(pts[0], pts[1], pts[2])
	case *Tetrahedron:
		pts := r.applyAll(x.p, x.q, x.r, x.s)
		return NewTetrahedron(pts[0], pts[1], pts[2], pts[3])
	}
	return nil, degenerate("cannot rotate %T", g)
}
