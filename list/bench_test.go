package list_test

import (
	"testing"

	"github.com/leetkit/leetkit/list"
)

// BenchmarkReverse measures the pointer walk alone; the list is rebuilt
// outside the timed region by reversing it back.
func BenchmarkReverse(b *testing.B) {
	const n = 100000
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	head := list.FromSlice(vals)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head = list.Reverse(head)
	}
}
