package mergesort_test

import (
	"cmp"
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/lvsort/mergesort"
	"github.com/katalvlaran/lvsort/seqgen"
)

// benchmarkSort is a helper that sorts a fresh-shaped input of length n with opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkSort(b *testing.B, shape seqgen.Shape, n int, opts ...mergesort.Option) {
	in, err := seqgen.New(1).Shape(shape, n)
	if err != nil {
		b.Fatalf("generate %s: %v", shape, err)
	}

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := mergesort.SortWith(in, cmp.Compare[int], opts...); err != nil {
			b.Fatalf("SortWith failed: %v", err)
		}
	}
}

// BenchmarkSort_Shapes benchmarks the sequential sort on every input shape.
func BenchmarkSort_Shapes(b *testing.B) {
	for _, shape := range seqgen.Shapes {
		for _, n := range []int{1_000, 100_000} {
			b.Run(fmt.Sprintf("%s/%d", shape, n), func(b *testing.B) {
				benchmarkSort(b, shape, n)
			})
		}
	}
}

// BenchmarkSort_Parallel benchmarks the forked mode on a large random input.
func BenchmarkSort_Parallel(b *testing.B) {
	benchmarkSort(b, seqgen.ShapeRandom, 1_000_000,
		mergesort.WithParallel(8192),
		mergesort.WithMaxGoroutines(runtime.GOMAXPROCS(0)),
	)
}

// BenchmarkSort_Sequential is the baseline for BenchmarkSort_Parallel.
func BenchmarkSort_Sequential(b *testing.B) {
	benchmarkSort(b, seqgen.ShapeRandom, 1_000_000)
}
