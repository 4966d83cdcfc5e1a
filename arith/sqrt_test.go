package arith

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSqrtExact(t *testing.T) {
	table := []struct{ x, root string }{
		{"0", "0"},
		{"1", "1"},
		{"4", "2"},
		{"9/4", "3/2"},
		{"1/100", "1/10"},
		{"225/64", "15/8"},
	}

	for i, line := range table {
		s, err := NewSqrt(rat(line.x))
		if err != nil {
			t.Fatalf("%d) NewSqrt(%s): %v", i+1, line.x, err)
		}
		if !s.IsExact() {
			t.Errorf("%d) sqrt(%s) reported irrational", i+1, line.x)
			continue
		}
		if s.Exact().Cmp(rat(line.root)) != 0 {
			t.Errorf("%d) sqrt(%s) = %s, want %s",
				i+1, line.x, s.Exact().RatString(), line.root)
		}
	}
}

func TestSqrtIrrational(t *testing.T) {
	for _, x := range []string{"2", "3", "1/2", "8", "99/7"} {
		s, err := NewSqrt(rat(x))
		assert.NoError(t, err)
		assert.False(t, s.IsExact(), x)
		assert.Nil(t, s.Exact(), x)
	}
}

func TestSqrtNegative(t *testing.T) {
	_, err := NewSqrt(rat("-1"))
	assert.True(t, errors.Is(err, ErrNegativeRadicand))
}

func TestSqrtApprox(t *testing.T) {
	table := []struct {
		x      string
		oom    int
		policy RoundingPolicy
		want   string
	}{
		{"2", -3, RoundDown, "1414/1000"},
		{"2", -3, RoundUp, "1415/1000"},
		{"2", -3, RoundHalfEven, "1414/1000"},
		{"2", 0, RoundHalfUp, "1"},
		{"3", -5, RoundHalfEven, "173205/100000"},
		{"1/2", -4, RoundHalfEven, "7071/10000"},
		{"2", 0, RoundCeiling, "2"},
	}

	for i, line := range table {
		s := MustSqrt(rat(line.x))
		got, err := s.Approx(line.oom, line.policy)
		if err != nil {
			t.Fatalf("%d) Approx: %v", i+1, err)
		}
		if got.Cmp(rat(line.want)) != 0 {
			t.Errorf("%d) sqrt(%s) at oom %d (%s) = %s, want %s",
				i+1, line.x, line.oom, line.policy, got.RatString(), line.want)
		}
	}
}

func TestSqrtApproxExactPassthrough(t *testing.T) {
	s := MustSqrt(rat("9/4"))
	// An exact root ignores the grid entirely.
	got, err := s.Approx(0, RoundDown)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(rat("3/2")))
}

func TestSqrtPrecisionAmbiguous(t *testing.T) {
	// sqrt(1/4000000) ~ 1/2000 vanishes at oom 0.
	s := MustSqrt(rat("1/4000001"))
	_, err := s.Approx(0, RoundHalfEven)
	assert.True(t, errors.Is(err, ErrPrecisionAmbiguous))

	// At a fine enough oom the same root is representable.
	v, err := s.Approx(-6, RoundHalfEven)
	assert.NoError(t, err)
	assert.True(t, v.Sign() > 0)
}

func TestSqrtCmp(t *testing.T) {
	a := MustSqrt(rat("2"))
	b := MustSqrt(rat("3"))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(MustSqrt(rat("2"))))
	assert.Equal(t, 1, a.CmpRat(big.NewRat(7, 5)))   // sqrt 2 > 1.4
	assert.Equal(t, -1, a.CmpRat(big.NewRat(15, 10))) // sqrt 2 < 1.5
	assert.Equal(t, 1, a.CmpRat(big.NewRat(-1, 1)))
}

func BenchmarkSqrtApprox(b *testing.B) {
	x := rat("2")
	for i := 0; i < b.N; i++ {
		s := MustSqrt(x)
		s.Approx(-30, RoundHalfEven)
	}
}
