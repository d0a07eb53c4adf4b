package sequence

// Majority returns the element occurring more than ⌊n/2⌋ times.
//
// Boyer–Moore voting: carry a (candidate, count) pair; adopt the current
// element when count hits zero, then count matches up and mismatches
// down. After the scan the pair is a valid majority candidate for the
// whole input — provided a strict majority exists.
//
// Returns ErrEmptyInput for an empty slice. With WithVerify, a second
// pass counts the candidate and returns ErrNoMajority when the majority
// precondition does not hold; without it the precondition is assumed.
func Majority[T comparable](s []T, opts ...Option) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}
	var o majorityOptions
	for _, opt := range opts {
		opt(&o)
	}

	candidate, count := s[0], 0
	for _, v := range s {
		if count == 0 {
			candidate = v
		}
		if v == candidate {
			count++
		} else {
			count--
		}
	}

	if o.verify {
		occurrences := 0
		for _, v := range s {
			if v == candidate {
				occurrences++
			}
		}
		if occurrences <= len(s)/2 {
			return zero, ErrNoMajority
		}
	}

	return candidate, nil
}
