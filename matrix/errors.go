// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Callers match these with errors.Is; call-site context is added by
// matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominatorRow is returned when an LFT with second row (0, 0) is
	// asked for a term: the transform is identically infinite.
	ErrZeroDenominatorRow = errors.New("matrix: denominator row is zero")

	// ErrDivideByZero is returned by FloorDiv for a zero divisor.
	ErrDivideByZero = errors.New("matrix: division by zero")
)

// matrixErrorf prefixes err with the operation tag, keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
