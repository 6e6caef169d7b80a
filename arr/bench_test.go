package arr_test

import (
	"testing"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/chain"
)

// makeInts creates a []int of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilter(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Filter(items, func(n int) bool { return n%2 == 0 })
	}
}

// BenchmarkFilter_Lo is the typed baseline for BenchmarkFilter.
func BenchmarkFilter_Lo(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lo.Filter(items, func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Map(items, func(n int) int { return n * 2 })
	}
}

func BenchmarkMap_Lo(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lo.Map(items, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkReduce(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Reduce(items, 0, func(acc, n int) int { return acc + n })
	}
}

func BenchmarkMaxNumeric(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Max(items, nil)
	}
}

func BenchmarkSortBy(b *testing.B) {
	items := lo.Reverse(makeInts(1_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.SortBy(items, func(n int) int { return n })
	}
}

func BenchmarkUniq(b *testing.B) {
	items := makeInts(1_000)
	for i := range items {
		items[i] %= 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Uniq(items)
	}
}

func BenchmarkChain(b *testing.B) {
	items := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chain.Chain(items).
			Filter(func(n int) bool { return n%2 == 0 }).
			Map(func(n int) int { return n * n }).
			First().
			Value()
	}
}
