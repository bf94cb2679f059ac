// Package matrix_test provides benchmarks for the LFT and Gosper tensor
// operations, driven by the coefficients of √2 so that entries grow the way
// they do inside the engines.
package matrix_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/katalvlaran/contfrac/matrix"
)

// benchSteps are the numbers of ingested coefficients to benchmark.
var benchSteps = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkL matrix.LFT
	sinkG matrix.Gosper
	sinkQ *big.Int
	sinkB bool
)

func BenchmarkLFTIngestProduce(b *testing.B) {
	b.ReportAllocs()
	two := big.NewInt(2)
	for _, n := range benchSteps {
		b.Run(fmt.Sprintf("steps=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := matrix.NewLFT(1, 1, 0, 1).Ingest(big.NewInt(1)) // √2 + 1
				for s := 0; s < n; s++ {
					m = m.Ingest(two)
					for {
						q, rest, ok, err := m.TryProduceTerm()
						if err != nil {
							b.Fatal(err)
						}
						if !ok {
							break
						}
						m, sinkQ = rest, q
					}
				}
				sinkL = m
			}
		})
	}
}

func BenchmarkGosperIngestProduce(b *testing.B) {
	b.ReportAllocs()
	one, two := big.NewInt(1), big.NewInt(2)
	for _, n := range benchSteps {
		b.Run(fmt.Sprintf("steps=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g := matrix.Addition().IngestX(one).IngestY(one) // √2 + √2
				for s := 0; s < n; s++ {
					g = g.IngestX(two).IngestY(two)
					for {
						q, ok := g.TryNextTerm()
						if !ok {
							break
						}
						g, sinkQ = g.Produce(q), q
					}
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkGosperBounds(b *testing.B) {
	b.ReportAllocs()
	g := matrix.Multiplication().IngestX(big.NewInt(1)).IngestY(big.NewInt(1))
	for s := 0; s < 32; s++ {
		g = g.IngestX(big.NewInt(2)).IngestY(big.NewInt(2))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, sinkB = g.Bounds()
	}
}

func BenchmarkFloorDiv(b *testing.B) {
	b.ReportAllocs()
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(200), nil)
	d := new(big.Int).Neg(new(big.Int).Exp(big.NewInt(7), big.NewInt(40), nil))
	for i := 0; i < b.N; i++ {
		q, err := matrix.FloorDiv(n, d)
		if err != nil {
			b.Fatal(err)
		}
		sinkQ = q
	}
}
