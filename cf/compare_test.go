package cf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contfrac/cf"
)

func cmp(t *testing.T, x, y *cf.CF) int {
	t.Helper()
	c, err := x.Cmp(y)
	require.NoError(t, err)

	return c
}

// TestCompare_Rationals covers the reference orderings, including pairs that
// differ only in length.
func TestCompare_Rationals(t *testing.T) {
	cases := []struct {
		a, b [2]int64
		want int
	}{
		{[2]int64{1, 2}, [2]int64{3, 7}, 1},  // [0; 2] vs [0; 2, 3]
		{[2]int64{2, 3}, [2]int64{5, 7}, -1}, // [0; 1, 2] vs [0; 1, 2, 2]
		{[2]int64{5, 7}, [2]int64{2, 3}, 1},
		{[2]int64{3, 7}, [2]int64{1, 2}, -1},
		{[2]int64{2, 3}, [2]int64{3, 4}, -1},
		{[2]int64{1, 2}, [2]int64{1, 3}, 1},
		{[2]int64{-1, 2}, [2]int64{-1, 3}, -1},
		{[2]int64{-22, 7}, [2]int64{-3, 1}, -1},
		{[2]int64{10, 7}, [2]int64{10, 7}, 0},
	}
	for _, tc := range cases {
		a, b := rat(t, tc.a[0], tc.a[1]), rat(t, tc.b[0], tc.b[1])
		require.Equal(t, tc.want, cmp(t, a, b), "%v vs %v", tc.a, tc.b)
	}
}

// TestCompare_AgreesWithBigRat checks every pair of a grid of rationals.
func TestCompare_AgreesWithBigRat(t *testing.T) {
	var vals []*big.Rat
	for p := int64(-6); p <= 6; p++ {
		for q := int64(1); q <= 6; q++ {
			vals = append(vals, big.NewRat(p, q))
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			x, err := cf.FromBigRational(a.Num(), a.Denom())
			require.NoError(t, err)
			y, err := cf.FromBigRational(b.Num(), b.Denom())
			require.NoError(t, err)
			require.Equal(t, a.Cmp(b), cmp(t, x, y), "%v vs %v", a, b)
		}
	}
}

// TestCompare_Infinity puts Infinity above every finite value.
func TestCompare_Infinity(t *testing.T) {
	require.Equal(t, 1, cmp(t, cf.Infinity(), rat(t, 1000, 1)))
	require.Equal(t, -1, cmp(t, rat(t, -1000, 1), cf.Infinity()))
	require.Equal(t, -1, cmp(t, cf.E(), cf.Infinity()))
	require.Equal(t, 0, cmp(t, cf.Infinity(), rat(t, 5, 0)))
}

// TestCompare_Irrationals orders the constants against nearby rationals.
func TestCompare_Irrationals(t *testing.T) {
	require.Equal(t, -1, cmp(t, cf.Sqrt2(), rat(t, 3, 2)))
	require.Equal(t, 1, cmp(t, cf.Sqrt2(), rat(t, 7, 5)))
	require.Equal(t, 1, cmp(t, cf.E(), rat(t, 27, 10)))
	require.Equal(t, -1, cmp(t, cf.E(), rat(t, 87, 32)))
	require.Equal(t, 1, cmp(t, cf.Phi(), rat(t, 8, 5)))
	require.Equal(t, -1, cmp(t, cf.Sqrt2(), cf.Phi()))
	require.Equal(t, 0, cmp(t, cf.E(), cf.E()))
}

// TestCompare_BoundedDepth shows that equality is bounded by CompareDepth.
func TestCompare_BoundedDepth(t *testing.T) {
	a := coeffs(t, 1, 2, 3)
	b := coeffs(t, 1, 2, 4)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.False(t, eq)

	shallow, err := cf.FromCoefficients([]int64{1, 2, 3}, cf.WithCompareDepth(2))
	require.NoError(t, err)
	eq, err = shallow.Equal(b)
	require.NoError(t, err)
	require.True(t, eq) // agree on two coefficients
}

// TestCompare_Canonical treats [5, 1] and [6] as the same value.
func TestCompare_Canonical(t *testing.T) {
	eq, err := coeffs(t, 5, 1).Equal(coeffs(t, 6))
	require.NoError(t, err)
	require.True(t, eq)
}

// TestCompare_Predicates exercises the boolean helpers.
func TestCompare_Predicates(t *testing.T) {
	lo, hi := rat(t, 1, 3), rat(t, 1, 2)

	for _, tc := range []struct {
		f    func(*cf.CF) (bool, error)
		want bool
	}{
		{lo.Less, true},
		{lo.LessOrEqual, true},
		{lo.Greater, false},
		{lo.GreaterOrEqual, false},
		{lo.Equal, false},
	} {
		got, err := tc.f(hi)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	ge, err := lo.GreaterOrEqual(rat(t, 2, 6))
	require.NoError(t, err)
	require.True(t, ge)

	c, err := cf.Compare(hi, lo)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	_, err = cf.Compare(nil, lo)
	require.ErrorIs(t, err, cf.ErrNilOperand)
}
