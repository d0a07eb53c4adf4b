// Package text provides character-level scans and canonical-key grouping:
// palindrome checking, roman numeral parsing, and anagram grouping.
//
// What
//
//   - IsPalindrome: true iff the input reads the same both ways after
//     discarding non-alphanumeric runes and folding case. The empty
//     string and an all-punctuation string are vacuous palindromes.
//   - RomanToInt: integer value of a roman numeral (I V X L C D M),
//     handling subtractive pairs (IV, IX, XL, …) by one-symbol lookahead.
//     A symbol outside the alphabet yields ErrBadNumeral; other
//     malformations (invalid repetition, wrong ordering) are not
//     validated and produce a best-effort value.
//   - GroupAnagrams: partitions words into groups sharing one character
//     multiset. Groups appear in first-seen order and keep the input
//     order of their members, so output is deterministic.
//
// Canonical keys
//
//	GroupAnagrams keys lowercase-alphabetic words by a 26-letter count
//	vector, O(k) per word. Words containing anything else fall back to a
//	sorted-rune key, O(k log k); the two key spaces are tagged so they
//	can never collide.
//
// Complexity (n = inputs, k = word length)
//
//   - IsPalindrome: O(n) time, O(n) transient memory for rune decoding.
//   - RomanToInt: O(n) time, O(1) memory.
//   - GroupAnagrams: O(n·k) time for count-vector keys, O(n·k) memory.
//
// Usage
//
//	text.IsPalindrome("A man, a plan, a canal: Panama") // true
//
//	v, err := text.RomanToInt("MCMXCIV") // 1994
//
//	groups := text.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
//	// [[eat tea ate] [tan nat] [bat]]
package text
