package text

import (
	"slices"
	"strconv"
	"strings"
)

// GroupAnagrams partitions words into groups whose members share the
// same multiset of characters. Groups appear in the order their first
// member appears in words, and each group keeps input order.
//
// Lowercase a–z words are keyed by a 26-letter count vector, O(k) per
// word; anything else falls back to a sorted-rune key, O(k log k).
// The two key spaces carry distinct tags so a pathological word can
// never collide with a count encoding.
func GroupAnagrams(words []string) [][]string {
	groups := make([][]string, 0, len(words))
	index := make(map[string]int, len(words))
	for _, w := range words {
		k := anagramKey(w)
		g, ok := index[k]
		if !ok {
			g = len(groups)
			index[k] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], w)
	}

	return groups
}

// anagramKey builds the canonical key for w.
func anagramKey(w string) string {
	var counts [26]int
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			return sortedKey(w)
		}
		counts[c-'a']++
	}

	var sb strings.Builder
	sb.WriteString("c|")
	for _, n := range counts {
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(':')
	}

	return sb.String()
}

// sortedKey is the fallback canonical key: the word's runes in sorted
// order, tagged to stay disjoint from count-vector keys.
func sortedKey(w string) string {
	runes := []rune(w)
	slices.Sort(runes)

	return "s|" + string(runes)
}
