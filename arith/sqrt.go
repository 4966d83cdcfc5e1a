package arith

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// ErrPrecisionAmbiguous is returned when a requested oom is too coarse to
// distinguish a nonzero result from zero. Callers that would otherwise turn
// the rounded value into a boolean must treat this as "don't know" rather
// than "zero".
var ErrPrecisionAmbiguous = errors.New("requested oom too coarse for result")

// ErrNegativeRadicand is returned when a square root of a negative rational
// is requested.
var ErrNegativeRadicand = errors.New("negative radicand")

// Sqrt is the nonnegative square root of an exact nonnegative rational. The
// radicand is always held exactly; the root itself is held exactly when the
// radicand is a perfect rational square and is otherwise materialized only
// on demand, rounded to a caller-supplied oom. Approximations are memoized
// per (oom, policy) with a compute-and-publish-once discipline, so a Sqrt
// is safe for concurrent readers.
type Sqrt struct {
	squared *big.Rat
	exact   *big.Rat // nil when the root is irrational

	mu     sync.Mutex
	approx map[approxKey]*big.Rat
}

type approxKey struct {
	oom    int
	policy RoundingPolicy
}

// NewSqrt returns √x. It fails if x is negative.
func NewSqrt(x *big.Rat) (*Sqrt, error) {
	if x.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeRadicand, "sqrt(%s)", x.RatString())
	}
	s := &Sqrt{squared: new(big.Rat).Set(x)}
	s.exact = exactRoot(s.squared)
	return s, nil
}

// MustSqrt is NewSqrt for radicands that are nonnegative by construction,
// such as squared magnitudes.
func MustSqrt(x *big.Rat) *Sqrt {
	s, err := NewSqrt(x)
	if err != nil {
		panic(err)
	}
	return s
}

// Squared returns the exact radicand.
func (s *Sqrt) Squared() *big.Rat {
	return new(big.Rat).Set(s.squared)
}

// IsExact reports whether the root is itself rational.
func (s *Sqrt) IsExact() bool {
	return s.exact != nil
}

// Exact returns the exact rational root, or nil if the root is irrational.
func (s *Sqrt) Exact() *big.Rat {
	if s.exact == nil {
		return nil
	}
	return new(big.Rat).Set(s.exact)
}

// Cmp compares two square roots without materializing either: both values
// are nonnegative, so comparing radicands is equivalent.
func (s *Sqrt) Cmp(t *Sqrt) int {
	return s.squared.Cmp(t.squared)
}

// CmpRat compares the root against a rational at the squared level when r
// is nonnegative, again avoiding any rounding.
func (s *Sqrt) CmpRat(r *big.Rat) int {
	if r.Sign() < 0 {
		return 1
	}
	r2 := new(big.Rat).Mul(r, r)
	return s.squared.Cmp(r2)
}

// Approx returns the root as a decimal rounded to the given oom. When the
// root is exact it is returned unrounded. A nonzero root that rounds to
// zero yields ErrPrecisionAmbiguous.
func (s *Sqrt) Approx(oom int, p RoundingPolicy) (*big.Rat, error) {
	if err := CheckOOM(oom); err != nil {
		return nil, err
	}
	if s.exact != nil {
		return new(big.Rat).Set(s.exact), nil
	}

	key := approxKey{oom, p}
	s.mu.Lock()
	if s.approx == nil {
		s.approx = map[approxKey]*big.Rat{}
	}
	v, ok := s.approx[key]
	if !ok {
		v = roundedRoot(s.squared, oom, p)
		s.approx[key] = v
	}
	s.mu.Unlock()

	if v.Sign() == 0 && s.squared.Sign() != 0 {
		return nil, errors.Wrapf(
			ErrPrecisionAmbiguous, "sqrt(%s) at oom %d", s.squared.RatString(), oom,
		)
	}
	return new(big.Rat).Set(v), nil
}

func (s *Sqrt) String() string {
	if s.exact != nil {
		return s.exact.RatString()
	}
	return fmt.Sprintf("sqrt(%s)", s.squared.RatString())
}

// exactRoot returns the rational square root of x, or nil if none exists.
// x must be nonnegative and, as a big.Rat, is already in lowest terms, so
// the root is rational iff numerator and denominator are both perfect
// squares.
func exactRoot(x *big.Rat) *big.Rat {
	if x.Sign() == 0 {
		return new(big.Rat)
	}
	num, numOK := perfectSquareRoot(x.Num())
	if !numOK {
		return nil
	}
	den, denOK := perfectSquareRoot(x.Denom())
	if !denOK {
		return nil
	}
	return new(big.Rat).SetFrac(num, den)
}

func perfectSquareRoot(n *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(r, r)
	return r, check.Cmp(n) == 0
}

// roundedRoot computes round(sqrt(x), oom, p) for nonnegative rational x.
// The root scaled by 10^-oom is rounded to an integer m exactly; see
// roundScaledRoot. The result is m * 10^oom.
func roundedRoot(x *big.Rat, oom int, p RoundingPolicy) *big.Rat {
	// sqrt(x)/10^oom = sqrt(x / 10^(2*oom))
	y := new(big.Rat).Quo(x, Pow10(2*oom))
	m := roundScaledRoot(y.Num(), y.Denom(), p)
	return new(big.Rat).Mul(new(big.Rat).SetInt(m), Pow10(oom))
}

// roundScaledRoot rounds sqrt(a/b) to an integer under the given policy,
// for nonnegative a and positive b, using only integer arithmetic.
func roundScaledRoot(a, b *big.Int, p RoundingPolicy) *big.Int {
	// floor(sqrt(a/b)) == isqrt(floor(a/b)) because sqrt is monotonic and
	// there is no integer strictly between sqrt(floor(a/b)) and sqrt(a/b).
	f := new(big.Int).Sqrt(new(big.Int).Quo(a, b))

	// Exactness: sqrt(a/b) == f iff f^2 * b == a.
	fb := new(big.Int).Mul(new(big.Int).Mul(f, f), b)
	if fb.Cmp(a) == 0 {
		return f
	}

	one := big.NewInt(1)
	switch p {
	case RoundDown, RoundFloor:
		return f
	case RoundUp, RoundCeiling:
		return f.Add(f, one)
	}

	// Nearest: compare sqrt(a/b) against f + 1/2, i.e. 4a against (2f+1)^2 b.
	mid := new(big.Int).Lsh(f, 1)
	mid.Add(mid, one)
	mid.Mul(mid, mid)
	mid.Mul(mid, b)
	fourA := new(big.Int).Lsh(a, 2)

	switch cmp := fourA.Cmp(mid); {
	case cmp < 0:
		return f
	case cmp > 0:
		return f.Add(f, one)
	}

	switch p {
	case RoundHalfDown:
		return f
	case RoundHalfUp:
		return f.Add(f, one)
	case RoundHalfEven:
		if f.Bit(0) == 0 {
			return f
		}
		return f.Add(f, one)
	}
	return f
}
