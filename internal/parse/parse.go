// SPDX-License-Identifier: MIT

// Package parse turns command-line operands into continued fractions.
//
// Accepted forms:
//
//	7, -3              integers
//	10/7, 22/-7, 1/0   rationals (x/0 is infinity, 0/0 is rejected)
//	3.25, 1e-3         decimals, read exactly
//	[1; 2, 3], [5], [] coefficient lists
//	e, sqrt2, phi      built-in constants
//	inf, infinity, ∞   the point at infinity
package parse

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/katalvlaran/contfrac/frac"
)

// ErrSyntax is returned for operands that match no accepted form.
var ErrSyntax = errors.New("parse: invalid operand")

// Operand parses s. opts are attached to the resulting value.
func Operand(s string, opts ...cf.Option) (*cf.CF, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "e":
		return cf.E(opts...), nil
	case "sqrt2", "√2":
		return cf.Sqrt2(opts...), nil
	case "phi", "φ":
		return cf.Phi(opts...), nil
	case "inf", "infinity", "∞":
		return cf.Infinity(opts...), nil
	}

	switch {
	case strings.HasPrefix(s, "["):
		return coefficients(s, opts)
	case strings.Contains(s, "/"):
		return rational(s, opts)
	default:
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return cf.FromFrac(frac.FromRat(r), opts...), nil
	}
}

// rational parses "p/q" with integer p and q.
func rational(s string, opts []cf.Option) (*cf.CF, error) {
	ps, qs, _ := strings.Cut(s, "/")
	p, okP := new(big.Int).SetString(strings.TrimSpace(ps), 10)
	q, okQ := new(big.Int).SetString(strings.TrimSpace(qs), 10)
	if !okP || !okQ {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return cf.FromBigRational(p, q, opts...)
}

// coefficients parses "[a0; a1, a2, ...]". The separator after a0 may also be
// a comma.
func coefficients(s string, opts []cf.Option) (*cf.CF, error) {
	body, ok := strings.CutSuffix(s[1:], "]")
	if !ok {
		return nil, fmt.Errorf("%w: missing ']' in %q", ErrSyntax, s)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return cf.Infinity(opts...), nil
	}

	fields := strings.FieldsFunc(body, func(r rune) bool { return r == ';' || r == ',' })
	if strings.Count(body, ";") > 1 {
		return nil, fmt.Errorf("%w: more than one ';' in %q", ErrSyntax, s)
	}
	terms := make([]*big.Int, len(fields))
	for i, f := range fields {
		t, ok := new(big.Int).SetString(strings.TrimSpace(f), 10)
		if !ok {
			return nil, fmt.Errorf("%w: coefficient %q in %q", ErrSyntax, f, s)
		}
		terms[i] = t
	}

	return cf.FromBigCoefficients(terms, opts...)
}
