// Package search provides the classic lookup routines over ordered and
// unordered integer sequences: bounded binary search (with first/last
// occurrence variants) and the hash-map two-sum scan.
//
// What
//
//   - Binary: index of target in an ascending-sorted slice, or NotFound.
//   - BinaryFirst / BinaryLast: leftmost / rightmost index of target
//     among duplicates, or NotFound.
//   - TwoSum: a pair of distinct indices (i, j), i < j, whose elements
//     sum to the target, plus an ok flag.
//
// Why
//
//   - "Not found" is an ordinary outcome of a search, so these routines
//     report it with a sentinel value (NotFound, or ok == false), never
//     with an error. Callers get a total, predictable contract.
//
// Determinism
//
//	TwoSum returns the first pair encountered in scan order: the earliest
//	valid j, paired with the index of its complement seen earlier. For a
//	given input the result never varies.
//
// Preconditions
//
//	Binary* require the input to be sorted ascending; unsorted input is
//	not detected and yields an unspecified index. TwoSum has no ordering
//	requirement.
//
// Complexity (n = len(input))
//
//   - Binary, BinaryFirst, BinaryLast: O(log n) time, O(1) memory.
//   - TwoSum: O(n) expected time, O(n) memory for the complement map.
//
// Usage
//
//	idx := search.Binary([]int{-1, 0, 3, 5, 9, 12}, 9) // 4
//	if idx == search.NotFound { ... }
//
//	i, j, ok := search.TwoSum([]int{2, 7, 11, 15}, 9) // 0, 1, true
package search
