package sequence

// Intersect returns the multiset intersection of a and b: each common
// value repeated min(count in a, count in b) times, ordered by b's scan
// order. Disjoint inputs yield an empty (nil) slice.
//
// Frequency map over a, then one pass over b emitting while a positive
// remaining count exists.
func Intersect[T comparable](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	remaining := make(map[T]int, len(a))
	for _, v := range a {
		remaining[v]++
	}

	var out []T
	for _, v := range b {
		if remaining[v] > 0 {
			out = append(out, v)
			remaining[v]--
		}
	}

	return out
}
