// Package window provides sliding-window scans over character sequences.
//
// What
//
//   - LongestUnique: length of the longest contiguous substring with no
//     repeated character, counted in runes.
//
// Why
//
//   - The sliding window [left, right] maintains one invariant: every
//     character inside it is unique within it. Extending right may break
//     the invariant; left then jumps just past the previous occurrence,
//     never further, so the maximum window is never skipped.
//
// The subtle edge: a character found in the last-seen map may have
// fallen outside the current window already, so the window only moves
// when lastSeen >= left — mere presence in the map is not enough.
//
// Complexity (n = rune count, Σ = alphabet size)
//
//   - Time:   O(n)
//   - Memory: O(min(n, Σ)) for the last-seen-index map
//
// Usage
//
//	window.LongestUnique("abcabcbb") // 3 ("abc")
//	window.LongestUnique("bbbbb")    // 1
//	window.LongestUnique("")         // 0
package window
