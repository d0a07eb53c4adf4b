package list_test

import (
	"fmt"

	"github.com/leetkit/leetkit/list"
)

// ExampleReverse builds 1→2→3→4→5, reverses it, and prints both the
// values and the length.
func ExampleReverse() {
	head := list.FromSlice([]int{1, 2, 3, 4, 5})
	head = list.Reverse(head)

	fmt.Println(head.Slice())
	fmt.Println(head.Len())
	// Output:
	// [5 4 3 2 1]
	// 5
}

// ExampleFromSlice shows that the empty list is simply a nil head.
func ExampleFromSlice() {
	head := list.FromSlice([]int{})
	fmt.Println(head == nil, head.Len())
	// Output:
	// true 0
}
