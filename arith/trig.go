package arith

import (
	"math/big"
)

// trigGuard is the number of extra decimal digits carried internally by the
// trig routines before the final rounding.
const trigGuard = 12

// Pi returns π rounded to the given oom using Machin's formula
// π = 16 atan(1/5) - 4 atan(1/239), whose terms are all rational.
func Pi(oom int, p RoundingPolicy) (*big.Rat, error) {
	if err := CheckOOM(oom); err != nil {
		return nil, err
	}
	pi := piTo(oom - trigGuard)
	return Round(pi, oom, p), nil
}

func piTo(oom int) *big.Rat {
	a := atanInvTo(5, oom-2)
	b := atanInvTo(239, oom-2)
	pi := new(big.Rat).Mul(big.NewRat(16, 1), a)
	return pi.Sub(pi, new(big.Rat).Mul(big.NewRat(4, 1), b))
}

// atanInvTo computes atan(1/m) by its alternating series, stopping once the
// next term drops below 10^oom. Truncating an alternating series bounds the
// error by the first dropped term.
func atanInvTo(m int64, oom int) *big.Rat {
	limit := Pow10(oom)
	mRat := big.NewRat(1, m)
	m2 := new(big.Rat).Mul(mRat, mRat)

	sum := new(big.Rat)
	pow := new(big.Rat).Set(mRat) // (1/m)^(2k+1)
	for k := int64(0); ; k++ {
		term := new(big.Rat).Mul(pow, big.NewRat(1, 2*k+1))
		if term.Cmp(limit) < 0 {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		pow.Mul(pow, m2)
	}
	return sum
}

// Sin returns sin(x), x in radians, rounded to the given oom. The argument
// is reduced into [-π, π] with a correspondingly precise 2π before the
// Taylor series is summed, so the cost grows with both |oom| and the size
// of x.
func Sin(x *big.Rat, oom int, p RoundingPolicy) (*big.Rat, error) {
	if err := CheckOOM(oom); err != nil {
		return nil, err
	}
	r := reduceAngle(x, oom-trigGuard)
	return Round(sinTo(r, oom-trigGuard), oom, p), nil
}

// Cos returns cos(x), x in radians, rounded to the given oom.
func Cos(x *big.Rat, oom int, p RoundingPolicy) (*big.Rat, error) {
	if err := CheckOOM(oom); err != nil {
		return nil, err
	}
	r := reduceAngle(x, oom-trigGuard)
	return Round(cosTo(r, oom-trigGuard), oom, p), nil
}

// reduceAngle maps x into roughly [-π, π] by subtracting the nearest
// multiple of a 2π approximation carried to enough digits that the residual
// error stays below the working precision.
func reduceAngle(x *big.Rat, oom int) *big.Rat {
	if new(big.Rat).Abs(x).Cmp(big.NewRat(4, 1)) <= 0 {
		return new(big.Rat).Set(x)
	}
	// The reduction multiplies the 2π error by n, so spend extra digits
	// proportional to the magnitude of x.
	digits := len(x.Num().String())
	twoPi := new(big.Rat).Mul(ratTwo, piTo(oom-digits))
	n := roundQuotient(
		new(big.Rat).Quo(x, twoPi).Num(),
		new(big.Rat).Quo(x, twoPi).Denom(),
		RoundHalfEven,
	)
	return new(big.Rat).Sub(x, new(big.Rat).Mul(new(big.Rat).SetInt(n), twoPi))
}

// sinTo sums the Taylor series for sin until the next term drops below
// 10^oom. The series alternates, so the truncation error is bounded by the
// first dropped term.
func sinTo(x *big.Rat, oom int) *big.Rat {
	limit := Pow10(oom)
	x2 := new(big.Rat).Mul(x, x)

	sum := new(big.Rat)
	term := new(big.Rat).Set(x) // x^(2k+1) / (2k+1)!
	for k := int64(0); ; k++ {
		if new(big.Rat).Abs(term).Cmp(limit) < 0 {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		next := new(big.Rat).Mul(term, x2)
		next.Mul(next, big.NewRat(1, (2*k+2)*(2*k+3)))
		term = next
	}
	return sum
}

// cosTo sums the Taylor series for cos until the next term drops below
// 10^oom.
func cosTo(x *big.Rat, oom int) *big.Rat {
	limit := Pow10(oom)
	x2 := new(big.Rat).Mul(x, x)

	sum := new(big.Rat)
	term := new(big.Rat).Set(ratOne) // x^(2k) / (2k)!
	for k := int64(0); ; k++ {
		if new(big.Rat).Abs(term).Cmp(limit) < 0 {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		next := new(big.Rat).Mul(term, x2)
		next.Mul(next, big.NewRat(1, (2*k+1)*(2*k+2)))
		term = next
	}
	return sum
}
