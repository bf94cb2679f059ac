// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"github.com/katalvlaran/contfrac/lazy"
	"github.com/katalvlaran/contfrac/matrix"
)

// homographic streams the coefficients of f(x) = (a·x + b)/(c·x + d) for an
// input continued fraction x.
//
// Each input coefficient t is absorbed as m ← m·[[t, 1], [1, 0]]. After every
// absorption the engine emits as many output coefficients as m determines on
// its own (matrix.LFT.TryProduceTerm), each one reducing m ← [[c, d],
// [a − q·c, b − q·d]]. When x ends, m applied to ∞ is the rational a/c and
// the rest of the output is its Euclidean expansion.
//
// Term extraction assumes the remaining input is a tail (≥ 1), so nothing is
// produced before the first coefficient has been absorbed unless primed says
// the input already is a tail.
type homographic struct {
	m      matrix.LFT
	in     lazy.Source
	primed bool
	tail   lazy.Source
}

// newHomographic starts the engine. A degenerate m (ad − bc = 0) does not
// depend on x and is emitted without reading input.
func newHomographic(m matrix.LFT, in lazy.Source, primed bool) lazy.Source {
	if m.IsDegenerate() {
		return constant(m)
	}

	return &homographic{m: m, in: in, primed: primed}
}

// constant expands a degenerate transform: a/c, else b/d, else ∞.
// The all-zero matrix is 0/0.
func constant(m matrix.LFT) lazy.Source {
	switch {
	case m.C.Sign() != 0:
		return newEuclid(m.A, m.C)
	case m.D.Sign() != 0:
		return newEuclid(m.B, m.D)
	case m.HasZeroNumerator():
		return failing(cfErrorf("Transform", ErrIndeterminate))
	default:
		return newEuclid(big.NewInt(1), new(big.Int))
	}
}

func (h *homographic) Next() (*big.Int, bool, error) {
	for {
		if h.tail != nil {
			return h.tail.Next()
		}
		if h.primed {
			q, rest, ok, err := h.m.TryProduceTerm()
			if err != nil {
				return nil, false, err
			}
			if ok {
				h.m = rest
				return q, true, nil
			}
		}

		t, ok, err := h.in.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			h.tail = newEuclid(h.m.A, h.m.C)
			continue
		}
		h.m = h.m.Ingest(t)
		h.primed = true
	}
}
