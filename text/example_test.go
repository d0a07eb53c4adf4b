package text_test

import (
	"fmt"

	"github.com/leetkit/leetkit/text"
)

// ExampleIsPalindrome checks the two canonical phrases.
func ExampleIsPalindrome() {
	fmt.Println(text.IsPalindrome("A man, a plan, a canal: Panama"))
	fmt.Println(text.IsPalindrome("race a car"))
	// Output:
	// true
	// false
}

// ExampleRomanToInt parses 1994, which uses two subtractive pairs.
func ExampleRomanToInt() {
	v, err := text.RomanToInt("MCMXCIV")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 1994
}

// ExampleGroupAnagrams groups the classic six words; output order is
// deterministic (first-seen).
func ExampleGroupAnagrams() {
	groups := text.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	fmt.Println(groups)
	// Output:
	// [[eat tea ate] [tan nat] [bat]]
}
