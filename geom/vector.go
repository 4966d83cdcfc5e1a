package geom

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/exactgeom/exactgeom/arith"
)

// Vector is an exact three dimensional displacement. All algebra on it is
// exact; only Magnitude can require rounding, and only when the squared
// magnitude is not a perfect rational square.
type Vector struct {
	dx, dy, dz *big.Rat

	magOnce sync.Once
	mag     *arith.Sqrt
}

// NewVector builds a vector from exact rational components. The inputs are
// copied.
func NewVector(dx, dy, dz *big.Rat) *Vector {
	return &Vector{
		dx: new(big.Rat).Set(dx),
		dy: new(big.Rat).Set(dy),
		dz: new(big.Rat).Set(dz),
	}
}

// NewVectorInt builds a vector from integer components.
func NewVectorInt(dx, dy, dz int64) *Vector {
	return &Vector{
		dx: big.NewRat(dx, 1),
		dy: big.NewRat(dy, 1),
		dz: big.NewRat(dz, 1),
	}
}

// ZeroVector returns the zero displacement.
func ZeroVector() *Vector {
	return &Vector{dx: new(big.Rat), dy: new(big.Rat), dz: new(big.Rat)}
}

// DX returns a copy of the x component.
func (v *Vector) DX() *big.Rat { return new(big.Rat).Set(v.dx) }

// DY returns a copy of the y component.
func (v *Vector) DY() *big.Rat { return new(big.Rat).Set(v.dy) }

// DZ returns a copy of the z component.
func (v *Vector) DZ() *big.Rat { return new(big.Rat).Set(v.dz) }

// comp returns the component along the given axis (0, 1, 2), shared not
// copied. Package-internal callers must not mutate it.
func (v *Vector) comp(axis int) *big.Rat {
	switch axis {
	case 0:
		return v.dx
	case 1:
		return v.dy
	default:
		return v.dz
	}
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) *Vector {
	return &Vector{
		dx: new(big.Rat).Add(v.dx, w.dx),
		dy: new(big.Rat).Add(v.dy, w.dy),
		dz: new(big.Rat).Add(v.dz, w.dz),
	}
}

// Sub returns v - w.
func (v *Vector) Sub(w *Vector) *Vector {
	return &Vector{
		dx: new(big.Rat).Sub(v.dx, w.dx),
		dy: new(big.Rat).Sub(v.dy, w.dy),
		dz: new(big.Rat).Sub(v.dz, w.dz),
	}
}

// Neg returns -v.
func (v *Vector) Neg() *Vector {
	return &Vector{
		dx: new(big.Rat).Neg(v.dx),
		dy: new(big.Rat).Neg(v.dy),
		dz: new(big.Rat).Neg(v.dz),
	}
}

// Scale returns s * v.
func (v *Vector) Scale(s *big.Rat) *Vector {
	return &Vector{
		dx: new(big.Rat).Mul(v.dx, s),
		dy: new(big.Rat).Mul(v.dy, s),
		dz: new(big.Rat).Mul(v.dz, s),
	}
}

// Dot returns the exact inner product of v and w.
func (v *Vector) Dot(w *Vector) *big.Rat {
	sum := new(big.Rat).Mul(v.dx, w.dx)
	sum.Add(sum, new(big.Rat).Mul(v.dy, w.dy))
	return sum.Add(sum, new(big.Rat).Mul(v.dz, w.dz))
}

// Cross returns the exact cross product v x w.
func (v *Vector) Cross(w *Vector) *Vector {
	return &Vector{
		dx: new(big.Rat).Sub(
			new(big.Rat).Mul(v.dy, w.dz), new(big.Rat).Mul(v.dz, w.dy)),
		dy: new(big.Rat).Sub(
			new(big.Rat).Mul(v.dz, w.dx), new(big.Rat).Mul(v.dx, w.dz)),
		dz: new(big.Rat).Sub(
			new(big.Rat).Mul(v.dx, w.dy), new(big.Rat).Mul(v.dy, w.dx)),
	}
}

// IsZero reports whether all three components are zero.
func (v *Vector) IsZero() bool {
	return v.dx.Sign() == 0 && v.dy.Sign() == 0 && v.dz.Sign() == 0
}

// Equal is exact component-wise comparison. There is no epsilon.
func (v *Vector) Equal(w *Vector) bool {
	return v.dx.Cmp(w.dx) == 0 && v.dy.Cmp(w.dy) == 0 && v.dz.Cmp(w.dz) == 0
}

// IsParallelTo reports whether the cross product of v and w vanishes. The
// zero vector is parallel to everything under this definition.
func (v *Vector) IsParallelTo(w *Vector) bool {
	return v.Cross(w).IsZero()
}

// MagnitudeSquared returns the exact squared length of v.
func (v *Vector) MagnitudeSquared() *big.Rat {
	return v.magSqrt().Squared()
}

// MagnitudeSqrt returns |v| as an exact-or-rounded square root value. The
// result is memoized for the life of the vector.
func (v *Vector) MagnitudeSqrt() *arith.Sqrt {
	return v.magSqrt()
}

func (v *Vector) magSqrt() *arith.Sqrt {
	v.magOnce.Do(func() {
		v.mag = arith.MustSqrt(v.Dot(v))
	})
	return v.mag
}

// Magnitude returns |v| rounded to the given oom, or exactly if the squared
// magnitude is a perfect square.
func (v *Vector) Magnitude(oom int, p arith.RoundingPolicy) (*big.Rat, error) {
	return v.magSqrt().Approx(oom, p)
}

func (v *Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)",
		v.dx.RatString(), v.dy.RatString(), v.dz.RatString())
}
