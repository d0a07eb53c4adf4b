package text

import "unicode"

// IsPalindrome reports whether s reads identically forward and backward
// once non-alphanumeric runes are discarded and case is folded.
//
// Two pointers from both ends skip past ignored runes and compare the
// folded survivors; the first mismatch decides. Empty input and input
// with no alphanumeric runes at all are vacuous palindromes.
// Time O(n), plus the one []rune decode for indexable comparison.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	i, j := 0, len(runes)-1
	for i < j {
		for i < j && !isAlnum(runes[i]) {
			i++
		}
		for i < j && !isAlnum(runes[j]) {
			j--
		}
		if unicode.ToLower(runes[i]) != unicode.ToLower(runes[j]) {
			return false
		}
		i++
		j--
	}

	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
