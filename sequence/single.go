package sequence

// SingleNumber returns the one value with odd multiplicity in a slice
// where every other value appears exactly twice.
//
// XOR fold: a^a == 0 and a^0 == a, so every paired value cancels and
// only the unpaired one survives. Element order is irrelevant, and the
// result is exact for negative values since XOR works bit by bit.
//
// Returns ErrEmptyInput for an empty slice. An input violating the
// exactly-one-odd-multiplicity precondition yields the XOR of all
// odd-multiplicity values, which is meaningless to the caller.
func SingleNumber[T Integer](s []T) (T, error) {
	var acc T
	if len(s) == 0 {
		return acc, ErrEmptyInput
	}
	for _, v := range s {
		acc ^= v
	}

	return acc, nil
}
