package search_test

import (
	"testing"

	"github.com/leetkit/leetkit/search"
)

// BenchmarkBinary measures lookups across a large sorted slice,
// cycling the target to defeat branch-prediction warm-up.
func BenchmarkBinary(b *testing.B) {
	const n = 1 << 20
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Binary(s, (i%n)*2)
	}
}

// BenchmarkTwoSum_WorstCase forces a full scan: the only valid pair is
// the last two elements.
func BenchmarkTwoSum_WorstCase(b *testing.B) {
	const n = 10000
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i
	}
	target := nums[n-2] + nums[n-1]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = search.TwoSum(nums, target)
	}
}
