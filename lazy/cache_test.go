package lazy_test

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	"github.com/katalvlaran/contfrac/lazy"
	"github.com/stretchr/testify/require"
)

// countingSource yields 1, 2, 3, ... up to limit (0 = infinite) and records
// how many terms were pulled and whether it was stopped.
type countingSource struct {
	pulled  int
	limit   int
	stopped bool
}

func (s *countingSource) Next() (*big.Int, bool, error) {
	if s.limit > 0 && s.pulled >= s.limit {
		return nil, false, nil
	}
	s.pulled++

	return big.NewInt(int64(s.pulled)), true, nil
}

func (s *countingSource) Stop() { s.stopped = true }

func ints(ts []*big.Int) []int64 {
	out := make([]int64, len(ts))
	for i, t := range ts {
		out[i] = t.Int64()
	}

	return out
}

// TestAtPullsOnlyWhatIsNeeded checks the bounded lookahead.
func TestAtPullsOnlyWhatIsNeeded(t *testing.T) {
	src := &countingSource{}
	c := lazy.New(src)

	v, ok, err := c.At(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), v.Int64())
	require.LessOrEqual(t, src.pulled, 3) // index + lookahead(2) + 1 at most

	v, ok, err = c.At(10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(11), v.Int64())
	require.LessOrEqual(t, src.pulled, 13)
	require.GreaterOrEqual(t, c.Known(), 11)
}

// TestAtEndOfFiniteSequence returns ok=false past the end and releases the source.
func TestAtEndOfFiniteSequence(t *testing.T) {
	src := &countingSource{limit: 3} // 1, 2, 3
	c := lazy.New(src)

	_, ok, err := c.At(3)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, c.Exhausted())
	require.True(t, src.stopped)

	_, ok, err = c.At(100)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = c.At(-1)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestCanonicalFold covers the trailing-1 rule.
func TestCanonicalFold(t *testing.T) {
	cases := []struct {
		in   []int64
		want []int64
	}{
		{[]int64{5, 1}, []int64{6}},
		{[]int64{1, 2, 3, 1}, []int64{1, 2, 4}},
		{[]int64{1}, []int64{1}},
		{[]int64{0, 1}, []int64{1}},
		{[]int64{2, 1, 1}, []int64{2, 2}},
		{[]int64{}, []int64{}},
	}
	for _, tc := range cases {
		lazyCache := lazy.New(lazy.Ints(tc.in...))
		got, err := lazyCache.Take(10)
		require.NoError(t, err)
		require.Equal(t, tc.want, ints(got), "lazy %v", tc.in)

		bs := make([]*big.Int, len(tc.in))
		for i, v := range tc.in {
			bs[i] = big.NewInt(v)
		}
		eager, err := lazy.Of(bs).Take(10)
		require.NoError(t, err)
		require.Equal(t, tc.want, ints(eager), "eager %v", tc.in)
	}
}

// TestFoldNeverRewritesReturnedTerm reads term by term from a sequence ending
// in 1 and checks each value against the final canonical prefix.
func TestFoldNeverRewritesReturnedTerm(t *testing.T) {
	c := lazy.New(lazy.Ints(3, 7, 1))
	var seen []int64
	for i := 0; ; i++ {
		v, ok, err := c.At(i)
		require.NoError(t, err)
		if !ok {
			break
		}
		seen = append(seen, v.Int64())
	}
	require.Equal(t, []int64{3, 8}, seen)
}

// TestTakeShorterSequence returns only what exists.
func TestTakeShorterSequence(t *testing.T) {
	c := lazy.New(lazy.Ints(1, 2, 3))
	got, err := c.Take(10)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ints(got))

	got, err = c.Take(0)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestReturnedTermsAreCopies ensures callers cannot corrupt the memo.
func TestReturnedTermsAreCopies(t *testing.T) {
	c := lazy.New(lazy.Ints(4, 5))
	v, _, err := c.At(0)
	require.NoError(t, err)
	v.SetInt64(99)

	again, _, err := c.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(4), again.Int64())
}

// TestSourceErrorIsSticky checks error propagation.
func TestSourceErrorIsSticky(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	c := lazy.New(lazy.SourceFunc(func() (*big.Int, bool, error) {
		n++
		if n > 4 {
			return nil, false, boom
		}

		return big.NewInt(2), true, nil
	}))

	_, err := c.Take(3)
	require.NoError(t, err)

	_, _, err = c.At(5)
	require.ErrorIs(t, err, boom)
	_, err = c.Take(1)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, c.Err(), boom)
	require.False(t, c.Exhausted())
}

// TestZeroCacheIsEmpty checks that the zero value is the empty sequence.
func TestZeroCacheIsEmpty(t *testing.T) {
	var c lazy.Cache
	_, ok, err := c.At(0)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, c.Exhausted())
}

// TestSeqSource pulls from an infinite iterator and stops it at the end.
func TestSeqSource(t *testing.T) {
	seq := func(yield func(*big.Int) bool) {
		for k := int64(1); ; k++ {
			if !yield(big.NewInt(k * k)) {
				return
			}
		}
	}
	c := lazy.New(lazy.Seq(seq))
	got, err := c.Take(5)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 9, 16, 25}, ints(got))

	finite := slices.Values([]*big.Int{big.NewInt(2), big.NewInt(1)})
	got, err = lazy.New(lazy.Seq(finite)).Take(5)
	require.NoError(t, err)
	require.Equal(t, []int64{3}, ints(got))
}

// TestPrependAndFrom build shifted views over an existing cache.
func TestPrependAndFrom(t *testing.T) {
	base := lazy.New(lazy.Ints(1, 2, 3))

	shifted, err := lazy.New(lazy.From(base, 1)).Take(10)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, ints(shifted))

	prefixed, err := lazy.New(lazy.Prepend(big.NewInt(0), lazy.From(base, 0))).Take(10)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3}, ints(prefixed))
}
