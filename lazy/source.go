// SPDX-License-Identifier: MIT

package lazy

import (
	"iter"
	"math/big"
)

// Source produces coefficients one at a time.
// Next returns (term, true, nil) for the next term, (nil, false, nil) at the
// end of a finite sequence, or a non-nil error. After an end or an error Next
// is not called again.
type Source interface {
	Next() (*big.Int, bool, error)
}

// Stopper is implemented by sources holding resources that must be released
// once the cache no longer needs them.
type Stopper interface {
	Stop()
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (*big.Int, bool, error)

// Next calls f.
func (f SourceFunc) Next() (*big.Int, bool, error) { return f() }

// sliceSource yields a fixed list of terms.
type sliceSource struct {
	terms []*big.Int
	pos   int
}

// Slice returns a finite Source over copies of terms.
func Slice(terms []*big.Int) Source {
	cp := make([]*big.Int, len(terms))
	for i, t := range terms {
		cp[i] = new(big.Int).Set(t)
	}

	return &sliceSource{terms: cp}
}

// Ints returns a finite Source over machine integers.
func Ints(terms ...int64) Source {
	bs := make([]*big.Int, len(terms))
	for i, t := range terms {
		bs[i] = big.NewInt(t)
	}

	return &sliceSource{terms: bs}
}

func (s *sliceSource) Next() (*big.Int, bool, error) {
	if s.pos >= len(s.terms) {
		return nil, false, nil
	}
	t := s.terms[s.pos]
	s.pos++

	return t, true, nil
}

// seqSource converts a push iterator into a pull Source via iter.Pull.
type seqSource struct {
	next func() (*big.Int, bool)
	stop func()
}

// Seq returns a Source reading from seq. The underlying coroutine is stopped
// when the cache is done with it.
func Seq(seq iter.Seq[*big.Int]) Source {
	next, stop := iter.Pull(seq)

	return &seqSource{next: next, stop: stop}
}

func (s *seqSource) Next() (*big.Int, bool, error) {
	t, ok := s.next()
	if !ok {
		return nil, false, nil
	}

	return new(big.Int).Set(t), true, nil
}

// Stop releases the pull coroutine.
func (s *seqSource) Stop() { s.stop() }

// Prepend returns a Source yielding head and then everything from tail.
func Prepend(head *big.Int, tail Source) Source {
	first := true

	return &joined{
		next: func() (*big.Int, bool, error) {
			if first {
				first = false
				return new(big.Int).Set(head), true, nil
			}

			return tail.Next()
		},
		stop: func() { stopSource(tail) },
	}
}

// From returns a Source reading c from index start onward.
// Reads go through the cache, so c keeps its memo and canonical form.
func From(c *Cache, start int) Source {
	i := start

	return SourceFunc(func() (*big.Int, bool, error) {
		t, ok, err := c.At(i)
		if err != nil || !ok {
			return nil, false, err
		}
		i++

		return t, true, nil
	})
}

type joined struct {
	next func() (*big.Int, bool, error)
	stop func()
}

func (j *joined) Next() (*big.Int, bool, error) { return j.next() }
func (j *joined) Stop()                         { j.stop() }

func stopSource(s Source) {
	if st, ok := s.(Stopper); ok {
		st.Stop()
	}
}
