package binsort

import (
	"slices"
	"testing"
)

func benchmarkSortN(b *testing.B, n int, opts ...Option) {
	rng := newTestRNG(b)
	pairs := randomPairs(rng, n, 1<<24)
	scratch := make([]pair, n)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		copy(scratch, pairs)
		SortWithBins[int32](scratch, comparePairs, opts...)
	}
}

func BenchmarkSortWithBins10K(b *testing.B)  { benchmarkSortN(b, 10_000) }
func BenchmarkSortWithBins100K(b *testing.B) { benchmarkSortN(b, 100_000) }
func BenchmarkSortWithBins1M(b *testing.B)   { benchmarkSortN(b, 1_000_000) }

func BenchmarkSortWithBinsInPlace10K(b *testing.B) {
	benchmarkSortN(b, 10_000, WithInPlaceDistribution())
}
func BenchmarkSortWithBinsInPlace100K(b *testing.B) {
	benchmarkSortN(b, 100_000, WithInPlaceDistribution())
}
func BenchmarkSortWithBinsInPlace1M(b *testing.B) {
	benchmarkSortN(b, 1_000_000, WithInPlaceDistribution())
}

func benchmarkReferenceN(b *testing.B, n int) {
	rng := newTestRNG(b)
	pairs := randomPairs(rng, n, 1<<24)
	scratch := make([]pair, n)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		copy(scratch, pairs)
		slices.SortFunc(scratch, comparePairs)
	}
}

func BenchmarkReferenceSort10K(b *testing.B)  { benchmarkReferenceN(b, 10_000) }
func BenchmarkReferenceSort100K(b *testing.B) { benchmarkReferenceN(b, 100_000) }
func BenchmarkReferenceSort1M(b *testing.B)   { benchmarkReferenceN(b, 1_000_000) }

func benchmarkDistributeN(b *testing.B, n int, opts ...Option) {
	rng := newTestRNG(b)
	pairs := randomPairs(rng, n, 1<<24)
	scratch := make([]pair, n)
	cfg := newConfig(opts)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		copy(scratch, pairs)
		distribute(scratch, pair.Key, pair.Bin, cfg)
	}
}

func BenchmarkDistributeCopy1M(b *testing.B) { benchmarkDistributeN(b, 1_000_000) }
func BenchmarkDistributeInPlace1M(b *testing.B) {
	benchmarkDistributeN(b, 1_000_000, WithInPlaceDistribution())
}
