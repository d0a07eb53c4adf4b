package list

// Reverse reverses the list in place and returns the new head.
//
// Three-pointer walk: save current.Next, rewire current.Next to the
// predecessor, advance. When current runs off the tail, prev is the
// head of the reversed list.
//
// Reverse(nil) returns nil; a single node is returned unchanged.
// Time O(n), extra memory O(1).
func Reverse[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	cur := head
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}

	return prev
}
