// Package matrix_test provides benchmarks for the kernels behind priority
// derivation, on reciprocal matrices of AHP-sized and larger orders.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ahp/matrix"
)

// benchSizes covers the largest AHP order (15) and a stress size.
var benchSizes = []int{3, 15, 64}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

// reciprocalDense fills an n×n positive reciprocal matrix deterministically.
func reciprocalDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		_ = d.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			v := float64(rng.Intn(9) + 1)
			if rng.Intn(2) == 0 {
				v = 1 / v
			}
			_ = d.Set(i, j, v)
			_ = d.Set(j, i, 1/v)
		}
	}

	return d
}

func BenchmarkColSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d := reciprocalDense(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.ColSums(d)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkScaleCols(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d := reciprocalDense(b, n, 4242)
			scale := make([]float64, n)
			for j := range scale {
				scale[j] = 1 / float64(j+1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ScaleCols(d, scale)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d := reciprocalDense(b, n, 7)
			x := make([]float64, n)
			for j := range x {
				x[j] = 1 / float64(n)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MatVec(d, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
