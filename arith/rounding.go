/*package arith supplies the scalar layer of the geometry kernel: exact
rational arithmetic over math/big, decimal rounding to a requested order of
magnitude (OOM), square roots that stay exact whenever the radicand is a
perfect rational square, and enough trigonometry to rotate geometry by a
precision-bounded angle.

An OOM of -3 means "round to the nearest multiple of 10^-3". Predicates in
the geom package never round; rounding only happens when a caller asks for
a decimal form of an inherently irrational quantity.
*/
package arith

import (
	"math/big"

	"github.com/pkg/errors"
)

// RoundingPolicy selects how a value that does not fall on the requested
// decimal grid is moved onto it.
type RoundingPolicy int

const (
	// RoundDown rounds toward zero.
	RoundDown RoundingPolicy = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfEven rounds to nearest, ties to the even multiple.
	RoundHalfEven
)

func (p RoundingPolicy) String() string {
	switch p {
	case RoundDown:
		return "Down"
	case RoundUp:
		return "Up"
	case RoundFloor:
		return "Floor"
	case RoundCeiling:
		return "Ceiling"
	case RoundHalfDown:
		return "HalfDown"
	case RoundHalfUp:
		return "HalfUp"
	case RoundHalfEven:
		return "HalfEven"
	}
	return "Unknown"
}

// ParsePolicy converts a policy name, as used in config files, to a
// RoundingPolicy.
func ParsePolicy(name string) (RoundingPolicy, error) {
	for p := RoundDown; p <= RoundHalfEven; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown rounding policy %q", name)
}

// MaxOOMMagnitude bounds |oom| in every rounding call. Without a bound, a
// deep chain of constructions combined with an extreme oom request can
// force arbitrarily expensive integer arithmetic.
const MaxOOMMagnitude = 4096

// CheckOOM returns an error if the given order of magnitude is outside the
// supported range.
func CheckOOM(oom int) error {
	if oom > MaxOOMMagnitude || oom < -MaxOOMMagnitude {
		return errors.Errorf(
			"oom %d outside supported range [-%d, %d]",
			oom, MaxOOMMagnitude, MaxOOMMagnitude,
		)
	}
	return nil
}

var (
	ratOne = big.NewRat(1, 1)
	ratTwo = big.NewRat(2, 1)
	intTen = big.NewInt(10)
)

// Pow10 returns 10^n as an exact rational. Callers own the result.
func Pow10(n int) *big.Rat {
	m := n
	if m < 0 {
		m = -m
	}
	p := new(big.Int).Exp(intTen, big.NewInt(int64(m)), nil)
	if n < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetFrac(p, big.NewInt(1))
}

// Round rounds x to the nearest multiple of 10^oom under the given policy.
// Values already on the grid are returned unchanged (up to copying). The
// caller is responsible for validating oom with CheckOOM.
func Round(x *big.Rat, oom int, p RoundingPolicy) *big.Rat {
	scaled := new(big.Rat).Quo(x, Pow10(oom))
	n := roundQuotient(scaled.Num(), scaled.Denom(), p)
	return new(big.Rat).Mul(new(big.Rat).SetInt(n), Pow10(oom))
}

// roundQuotient rounds num/den to an integer under the given policy.
// den must be positive, which big.Rat guarantees for its denominator.
func roundQuotient(num, den *big.Int, p RoundingPolicy) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	neg := num.Sign() < 0

	awayFromZero := func() *big.Int {
		if neg {
			return q.Sub(q, big.NewInt(1))
		}
		return q.Add(q, big.NewInt(1))
	}

	switch p {
	case RoundDown:
		return q
	case RoundUp:
		return awayFromZero()
	case RoundFloor:
		if neg {
			return q.Sub(q, big.NewInt(1))
		}
		return q
	case RoundCeiling:
		if neg {
			return q
		}
		return q.Add(q, big.NewInt(1))
	}

	// Half policies: compare 2|r| against den.
	twoR := new(big.Int).Abs(r)
	twoR.Mul(twoR, big.NewInt(2))
	switch cmp := twoR.Cmp(den); {
	case cmp < 0:
		return q
	case cmp > 0:
		return awayFromZero()
	}

	switch p {
	case RoundHalfDown:
		return q
	case RoundHalfUp:
		return awayFromZero()
	case RoundHalfEven:
		if q.Bit(0) == 0 {
			return q
		}
		return awayFromZero()
	}
	return q
}
