package search

import "cmp"

// NotFound is the sentinel index reported when the target is absent.
const NotFound = -1

// Binary returns the index of target in the ascending-sorted slice s,
// or NotFound. Among duplicates the returned index is unspecified; use
// BinaryFirst or BinaryLast when it matters.
//
// The midpoint is computed as lo + (hi-lo)/2 so the sum of two large
// indices can never overflow.
func Binary[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// BinaryFirst returns the smallest index holding target, or NotFound.
// On a match it keeps searching left by tightening the upper bound.
func BinaryFirst[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	found := NotFound
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			found = mid
			hi = mid - 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return found
}

// BinaryLast returns the largest index holding target, or NotFound.
// On a match it keeps searching right by tightening the lower bound.
func BinaryLast[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	found := NotFound
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			found = mid
			lo = mid + 1
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return found
}
