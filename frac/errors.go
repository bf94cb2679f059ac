// SPDX-License-Identifier: MIT

package frac

import "errors"

// ErrZeroDenominator is returned by New and NewBig for q == 0.
// Use Inf() when the projective infinity 1/0 is what you mean.
var ErrZeroDenominator = errors.New("frac: zero denominator")
