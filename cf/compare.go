// SPDX-License-Identifier: MIT

package cf

// Compare returns -1, 0 or +1 as x is less than, equal to or greater than y,
// reading at most x's CompareDepth coefficients of each.
//
// Coefficients are compared index by index with the order reversed at odd
// indices, where a larger coefficient means a smaller value. An expansion that
// ends first behaves as if it continued with +∞ at that index, so the shorter
// one is larger at an even index and smaller at an odd one; Infinity ([])
// is therefore above every finite value. Values agreeing on the whole depth
// compare equal.
func Compare(x, y *CF) (int, error) {
	if x == nil || y == nil {
		return 0, cfErrorf("Compare", ErrNilOperand)
	}
	for i := 0; i < x.opts.compareDepth; i++ {
		a, aok, err := x.terms.At(i)
		if err != nil {
			return 0, err
		}
		b, bok, err := y.terms.At(i)
		if err != nil {
			return 0, err
		}

		var c int
		switch {
		case !aok && !bok:
			return 0, nil
		case !aok:
			c = 1
		case !bok:
			c = -1
		default:
			c = a.Cmp(b)
		}
		if c != 0 {
			if i%2 == 1 {
				c = -c
			}
			return c, nil
		}
	}

	return 0, nil
}

// Cmp is Compare(x, y).
func (x *CF) Cmp(y *CF) (int, error) { return Compare(x, y) }

// Equal reports whether x and y agree on CompareDepth coefficients.
// This is bounded-precision equality, like == on float64.
func (x *CF) Equal(y *CF) (bool, error) {
	c, err := Compare(x, y)

	return c == 0, err
}

// Less reports whether x < y.
func (x *CF) Less(y *CF) (bool, error) {
	c, err := Compare(x, y)

	return c < 0, err
}

// LessOrEqual reports whether x ≤ y.
func (x *CF) LessOrEqual(y *CF) (bool, error) {
	c, err := Compare(x, y)

	return c <= 0, err
}

// Greater reports whether x > y.
func (x *CF) Greater(y *CF) (bool, error) {
	c, err := Compare(x, y)

	return c > 0, err
}

// GreaterOrEqual reports whether x ≥ y.
func (x *CF) GreaterOrEqual(y *CF) (bool, error) {
	c, err := Compare(x, y)

	return c >= 0, err
}
