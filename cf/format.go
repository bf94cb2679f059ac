// SPDX-License-Identifier: MIT

package cf

import "strings"

// String renders up to DisplayTerms coefficients: "[1; 2, 3]", "[5]", "[]"
// for Infinity, and a trailing ", ..." when more coefficients exist.
// An error raised while reading renders as "[error: ...]".
func (x *CF) String() string {
	return x.Format(x.opts.displayTerms)
}

// Format renders up to n coefficients (at least one) in the notation of
// String.
func (x *CF) Format(n int) string {
	n = max(n, 1)
	terms, err := x.terms.Take(n + 1)
	if err != nil {
		return "[error: " + err.Error() + "]"
	}
	more := len(terms) > n
	if more {
		terms = terms[:n]
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range terms {
		switch i {
		case 0:
		case 1:
			sb.WriteString("; ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	if more {
		if len(terms) == 1 {
			sb.WriteString("; ...")
		} else {
			sb.WriteString(", ...")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
