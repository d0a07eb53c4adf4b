// Package list provides a minimal generic singly linked list and its
// canonical iterative reversal.
//
// What
//
//   - Node[T]: one value plus an exclusive forward reference to the next
//     node (nil marks the tail). A *Node[T] head identifies a whole list;
//     a nil head is the empty list.
//   - FromSlice / (*Node).Slice: round-trip between slices and lists,
//     mainly for construction and assertions in tests.
//   - Reverse: rewires every node's forward reference to point at its
//     original predecessor and returns the new head.
//
// Why
//
//   - The pointer-chain reversal is the textbook exercise in exclusive
//     ownership: during the walk, each node's "next" transfers from the
//     node to its predecessor, one step at a time.
//   - Reversing twice restores the original value sequence, which makes
//     the operation trivially property-testable.
//
// Determinism
//
//	Reverse visits each node exactly once and allocates nothing; for a
//	given list it always produces the same chain.
//
// Complexity (n = list length)
//
//   - Reverse: O(n) time, O(1) extra memory (iterative three-pointer walk).
//     A recursive formulation is equivalent but costs O(n) call stack and
//     is deliberately not the primary implementation here.
//   - FromSlice / Slice / Len: O(n) time.
//
// Usage
//
//	head := list.FromSlice([]int{1, 2, 3, 4, 5})
//	head = list.Reverse(head)
//	fmt.Println(head.Slice()) // [5 4 3 2 1]
//
// Reverse(nil) is nil and a single-node list reverses to itself; there
// are no error conditions.
package list
