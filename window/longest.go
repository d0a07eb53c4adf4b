package window

// LongestUnique returns the length, in runes, of the longest contiguous
// substring of s containing no repeated character.
//
// Sliding window with a rune→last-seen-index map. When the window grows
// onto a rune last seen at or after left, left jumps to just past that
// occurrence, restoring uniqueness in one step. A stale map entry
// (lastSeen < left) must not move the window, hence the >= left check.
func LongestUnique(s string) int {
	lastSeen := make(map[rune]int)
	best, left := 0, 0
	right := 0
	for _, r := range s {
		if idx, seen := lastSeen[r]; seen && idx >= left {
			left = idx + 1
		}
		lastSeen[r] = right
		if width := right - left + 1; width > best {
			best = width
		}
		right++
	}

	return best
}
