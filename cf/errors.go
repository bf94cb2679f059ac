// SPDX-License-Identifier: MIT

package cf

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when dividing by a zero-valued operand,
	// rational or continued fraction.
	ErrDivisionByZero = errors.New("cf: division by zero")

	// ErrIndeterminate is returned for ∞ − ∞, ∞ × 0, 0 × ∞, ∞ ÷ ∞, the
	// rational 0/0 and NaN.
	ErrIndeterminate = errors.New("cf: indeterminate form")

	// ErrMalformedCoefficients is returned when a coefficient after the first
	// is not strictly positive.
	ErrMalformedCoefficients = errors.New("cf: malformed coefficients")

	// ErrRangeOverflow is returned by the fixed-width accessors when a
	// coefficient does not fit in an int64.
	ErrRangeOverflow = errors.New("cf: coefficient out of int64 range")

	// ErrInfiniteExpansion is returned by Rat when the expansion did not end
	// within Options.ExactLimit coefficients.
	ErrInfiniteExpansion = errors.New("cf: expansion did not terminate")

	// ErrNilOperand is returned when an operator receives a nil *CF.
	ErrNilOperand = errors.New("cf: nil operand")
)

// cfErrorf prefixes err with the operation tag, keeping errors.Is intact.
func cfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
