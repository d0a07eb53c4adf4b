package list

// Node is one element of a singly linked list.
// A nil *Node[T] is the empty list.
type Node[T any] struct {
	Val  T
	Next *Node[T]
}

// FromSlice builds a list with the values of vals in order and returns
// its head, or nil for an empty slice.
func FromSlice[T any](vals []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range vals {
		n := &Node[T]{Val: v}
		if tail == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// Slice collects the list's values front to back.
// The empty list yields a nil slice.
func (n *Node[T]) Slice() []T {
	var out []T
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// Len reports the number of nodes reachable from n.
func (n *Node[T]) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}

	return count
}
