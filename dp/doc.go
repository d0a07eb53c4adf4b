// Package dp provides linear dynamic-programming routines that need only
// constant working memory.
//
// What
//
//   - ClimbStairs: the number of distinct ways to climb n steps taking
//     one or two at a time. The recurrence ways(n) = ways(n-1) + ways(n-2)
//     is Fibonacci-shaped, so only the last two values are ever kept.
//
// Conventions
//
//	ClimbStairs(n) == n for n <= 2, so ClimbStairs(0) == 0 — "zero steps,
//	zero ways" — and negative n also returns 0. This follows the common
//	pedagogical convention rather than the combinatorial "one empty way".
//
// A memoized recursive form computes the same values but costs O(n)
// call stack; the iterative form here is the primary implementation.
//
// Complexity
//
//   - Time:   O(n)
//   - Memory: O(1)
//
// Usage
//
//	dp.ClimbStairs(5) // 8
package dp
