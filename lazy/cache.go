// SPDX-License-Identifier: MIT

package lazy

import "math/big"

// lookahead is how far past the requested index the source is advanced so
// that the canonical-form fold can no longer touch the returned term.
const lookahead = 2

var bigOne = big.NewInt(1)

// Cache memoizes the terms of a Source. See the package doc for the contract.
// The zero value is an empty, exhausted cache (the empty sequence).
type Cache struct {
	terms []*big.Int
	src   Source // nil once exhausted or failed
	err   error  // sticky source error
}

// New returns a cache that pulls from src on demand.
func New(src Source) *Cache {
	return &Cache{src: src}
}

// Of returns an already exhausted cache holding copies of terms, with the
// canonical-form fold applied.
func Of(terms []*big.Int) *Cache {
	c := &Cache{terms: make([]*big.Int, len(terms))}
	for i, t := range terms {
		c.terms[i] = new(big.Int).Set(t)
	}
	c.canonicalize()

	return c
}

// At returns a copy of the term at index i.
// ok is false when the sequence is known to end before i.
// A source error is sticky: it is returned from this and every later call.
func (c *Cache) At(i int) (term *big.Int, ok bool, err error) {
	if i < 0 {
		return nil, false, nil
	}
	if err := c.settle(i); err != nil {
		return nil, false, err
	}
	if i >= len(c.terms) {
		return nil, false, nil
	}

	return new(big.Int).Set(c.terms[i]), true, nil
}

// Take returns copies of up to n leading terms; fewer when the sequence is
// shorter.
func (c *Cache) Take(n int) ([]*big.Int, error) {
	if n <= 0 {
		return []*big.Int{}, nil
	}
	if err := c.settle(n - 1); err != nil {
		return nil, err
	}
	if n > len(c.terms) {
		n = len(c.terms)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int).Set(c.terms[i])
	}

	return out, nil
}

// Known returns the number of terms memoized so far. Terms within the
// lookahead window may still be folded, so use At to read them.
func (c *Cache) Known() int { return len(c.terms) }

// Exhausted reports whether the source has ended (the sequence is finite and
// fully memoized).
func (c *Cache) Exhausted() bool { return c.src == nil && c.err == nil }

// Err returns the sticky source error, if any.
func (c *Cache) Err() error { return c.err }

// settle pulls until term i can no longer change: either the source ended,
// or term i+1 exists and is not 1, or term i+2 exists.
func (c *Cache) settle(i int) error {
	for c.src != nil {
		n := len(c.terms)
		if n > i+lookahead {
			return nil
		}
		if n > i+1 && c.terms[i+1].Cmp(bigOne) != 0 {
			return nil
		}
		if err := c.pull(); err != nil {
			return err
		}
	}

	return c.err
}

// pull fetches one term from the source.
func (c *Cache) pull() error {
	t, ok, err := c.src.Next()
	if err != nil {
		c.err = err
		c.release()

		return err
	}
	if !ok {
		c.release()
		c.canonicalize()

		return nil
	}
	c.terms = append(c.terms, new(big.Int).Set(t))

	return nil
}

func (c *Cache) release() {
	stopSource(c.src)
	c.src = nil
}

// canonicalize folds a trailing 1 into the previous term.
func (c *Cache) canonicalize() {
	n := len(c.terms)
	if n > 1 && c.terms[n-1].Cmp(bigOne) == 0 {
		c.terms = c.terms[:n-1]
		c.terms[n-2] = new(big.Int).Add(c.terms[n-2], bigOne)
	}
}
