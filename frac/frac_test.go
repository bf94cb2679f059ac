package frac_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/contfrac/frac"
	"github.com/stretchr/testify/require"
)

// TestNewNormalizes checks sign normalization and gcd reduction.
func TestNewNormalizes(t *testing.T) {
	cases := []struct {
		p, q     int64
		wantNum  int64
		wantDen  int64
		wantText string
	}{
		{10, 4, 5, 2, "5/2"},
		{10, -4, -5, 2, "-5/2"},
		{-10, -4, 5, 2, "5/2"},
		{0, -7, 0, 1, "0"},
		{21, 7, 3, 1, "3"},
		{-22, 7, -22, 7, "-22/7"},
	}
	for _, tc := range cases {
		f, err := frac.New(tc.p, tc.q)
		require.NoError(t, err)                                 // valid denominator
		require.Equal(t, big.NewInt(tc.wantNum), f.Num())       // reduced numerator
		require.Equal(t, big.NewInt(tc.wantDen), f.Den())       // positive denominator
		require.Equal(t, tc.wantText, f.String())               // rendering
		require.True(t, frac.IsNormal(f), "not normal: %v", f) // invariant holds
	}
}

// TestNewZeroDenominator ensures q == 0 is rejected.
func TestNewZeroDenominator(t *testing.T) {
	_, err := frac.New(1, 0)
	require.ErrorIs(t, err, frac.ErrZeroDenominator)

	_, err = frac.NewBig(big.NewInt(0), big.NewInt(0))
	require.ErrorIs(t, err, frac.ErrZeroDenominator)
}

// TestInf covers the projective infinity.
func TestInf(t *testing.T) {
	inf := frac.Inf()
	require.True(t, inf.IsInf())
	require.False(t, inf.IsZero())
	require.Equal(t, "1/0", inf.String())
	require.True(t, math.IsInf(inf.Float64(), 1))
	require.Nil(t, inf.Rat())
	require.True(t, inf.Neg().IsInf())
}

// TestCmp verifies ordering, including Inf.
func TestCmp(t *testing.T) {
	a, _ := frac.New(1, 3)
	b, _ := frac.New(1, 2)
	c, _ := frac.New(-5, 2)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
	require.Equal(t, -1, c.Cmp(a))
	require.Equal(t, 1, frac.Inf().Cmp(b))
	require.Equal(t, -1, c.Cmp(frac.Inf()))
	require.Equal(t, 0, frac.Inf().Cmp(frac.Inf()))
}

// TestAccessorsReturnCopies ensures callers cannot mutate a Frac.
func TestAccessorsReturnCopies(t *testing.T) {
	f, err := frac.New(3, 7)
	require.NoError(t, err)

	f.Num().SetInt64(100)
	f.Den().SetInt64(100)
	require.Equal(t, "3/7", f.String())
}

// TestConversions covers FromInt, FromRat, Rat, Float64 and Neg.
func TestConversions(t *testing.T) {
	require.Equal(t, "-4", frac.FromInt(-4).String())
	require.True(t, frac.FromInt(9).IsInt())
	require.True(t, frac.FromInt(0).IsZero())
	require.Equal(t, "12345678901234567890", frac.FromBigInt(mustBig("12345678901234567890")).String())

	f := frac.FromRat(big.NewRat(6, -8))
	require.Equal(t, "-3/4", f.String())
	require.Equal(t, -0.75, f.Float64())
	require.Equal(t, 0, f.Rat().Cmp(big.NewRat(-3, 4)))
	require.Equal(t, "3/4", f.Neg().String())
	require.Equal(t, -1, f.Sign())
	require.True(t, f.Equal(f.Neg().Neg()))
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal " + s)
	}

	return n
}
