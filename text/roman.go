package text

import (
	"errors"
	"fmt"
)

// ErrBadNumeral is returned when RomanToInt meets a byte outside the
// roman alphabet I V X L C D M.
var ErrBadNumeral = errors.New("text: invalid roman numeral symbol")

// romanValues maps each roman symbol to its value; zero marks an
// invalid byte.
var romanValues = [256]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt parses a roman numeral, returning its integer value.
//
// Left-to-right scan with one-symbol lookahead: a symbol smaller than
// its successor is subtracted (IV = 4), otherwise added. The empty
// string parses to 0. Symbols outside the alphabet yield ErrBadNumeral
// with the offending position; structural malformations such as "IIII"
// are not validated and give a best-effort value.
func RomanToInt(s string) (int, error) {
	total := 0
	for i := 0; i < len(s); i++ {
		v := romanValues[s[i]]
		if v == 0 {
			return 0, fmt.Errorf("%w: %q at index %d", ErrBadNumeral, s[i], i)
		}
		if i+1 < len(s) && v < romanValues[s[i+1]] {
			total -= v
		} else {
			total += v
		}
	}

	return total, nil
}
