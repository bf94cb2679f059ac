// Package cf_test provides benchmarks for the engines on the built-in
// constants.
package cf_test

import (
	"testing"

	"github.com/katalvlaran/contfrac/cf"
)

// sinks to defeat dead-code elimination
var sinkCF *cf.CF

// BenchmarkAdd_Irrational reads 40 coefficients of e + √2.
func BenchmarkAdd_Irrational(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		z, err := cf.E().Add(cf.Sqrt2())
		if err != nil {
			b.Fatal(err)
		}
		if _, err := z.Take(40); err != nil {
			b.Fatal(err)
		}
		sinkCF = z
	}
}

// BenchmarkMul_Fuse measures √2·√2, which always runs into the fuse.
func BenchmarkMul_Fuse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		z, err := cf.Sqrt2().Mul(cf.Sqrt2())
		if err != nil {
			b.Fatal(err)
		}
		if _, err := z.Take(2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAddInt reads 200 coefficients through the homographic engine.
func BenchmarkAddInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		z, err := cf.E().AddInt(3)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := z.Take(200); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompare compares two equal expansions to full depth.
func BenchmarkCompare(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cf.Compare(cf.Phi(), cf.Phi()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRat converts a long finite expansion.
func BenchmarkRat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x, err := cf.FromRational(832040, 514229) // consecutive Fibonacci numbers
		if err != nil {
			b.Fatal(err)
		}
		if _, err := x.Rat(); err != nil {
			b.Fatal(err)
		}
	}
}
