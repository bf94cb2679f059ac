// SPDX-License-Identifier: MIT

// Package main implements cfcalc, a calculator for exact continued-fraction
// arithmetic.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
