package geom

import (
	"math/big"
)

// Shared rational constants. Comparison-only; never passed anywhere that
// could mutate them.
var (
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

// ratMin returns a copy of the smaller of a and b.
func ratMin(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return new(big.Rat).Set(a)
	}
	return new(big.Rat).Set(b)
}

// ratMax returns a copy of the larger of a and b.
func ratMax(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return new(big.Rat).Set(a)
	}
	return new(big.Rat).Set(b)
}
