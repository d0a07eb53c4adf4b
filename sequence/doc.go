// Package sequence provides the single-pass sequence routines: Boyer–Moore
// majority voting, XOR single-number extraction, stable in-place zero
// compaction, and multiset intersection.
//
// What
//
//   - Majority: the element occurring more than ⌊n/2⌋ times. By default
//     the caller guarantees such an element exists; WithVerify adds a
//     counting pass that turns a broken guarantee into ErrNoMajority.
//   - SingleNumber: the one value with odd multiplicity when every other
//     value appears exactly twice, found by XOR cancellation.
//   - MoveZeroes: in-place stable partition — non-zero values keep their
//     relative order at the front, zeros fill the tail. Mutation of the
//     argument is the contract; there is no return value.
//   - Intersect: each common value of two sequences, repeated
//     min(count in a, count in b) times, in the second sequence's scan
//     order.
//
// Why
//
//   - Each routine is the canonical O(n) single-pass form of its problem;
//     Majority and SingleNumber additionally run in O(1) memory.
//
// Errors
//
//   - ErrEmptyInput — Majority and SingleNumber need at least one element.
//   - ErrNoMajority — Majority under WithVerify, when no strict majority
//     exists. Without WithVerify the precondition is the caller's burden
//     and the returned value is meaningless if it is violated.
//
// Complexity (n, m = input lengths)
//
//   - Majority: O(n) time (2·O(n) with WithVerify), O(1) memory.
//   - SingleNumber: O(n) time, O(1) memory; bitwise XOR is sign-agnostic,
//     so negative values cancel just as well.
//   - MoveZeroes: O(n) time, O(1) memory, at most one write per slot.
//   - Intersect: O(n+m) time, O(n) memory for the frequency map.
//
// Usage
//
//	winner, err := sequence.Majority([]int{2, 2, 1, 1, 1, 2, 2})
//
//	v, err := sequence.Majority(votes, sequence.WithVerify())
//	if errors.Is(err, sequence.ErrNoMajority) { ... }
//
//	nums := []int{0, 1, 0, 3, 12}
//	sequence.MoveZeroes(nums) // nums is now [1 3 12 0 0]
package sequence
