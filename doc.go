// Package leetkit is a small, dependency-light library of the classic
// interview algorithms — hash-map lookups, two-pointer scans, sliding
// windows, Boyer–Moore voting and friends — with explicit contracts.
//
// 🚀 What is leetkit?
//
//	A pure-Go collection of the canonical coding-kata routines, each one
//	implemented once, documented, and tested:
//		• Search: binary search (+ first/last occurrence), two-sum
//		• Sequences: majority element, single number, move zeroes,
//		  multiset intersection
//		• Text: valid palindrome, roman numerals, anagram grouping
//		• Windows: longest substring without repeats
//		• Lists: generic singly linked list with iterative reversal
//		• DP: climbing stairs in O(1) space
//
// ✨ Why choose leetkit?
//
//   - Explicit contracts – typed inputs, typed outputs, documented sentinels
//   - Predictable failures – "not found" is a value, never a panic
//   - Pure Go – no cgo, no hidden deps
//   - Generic where it pays – one Reverse for every element type
//
// Everything is organized under small per-technique subpackages:
//
//	dp/       — linear dynamic programming (climbing stairs)
//	list/     — generic singly linked list primitives & reversal
//	search/   — binary search variants and two-sum
//	sequence/ — single-pass integer-sequence routines
//	text/     — character-level scans and canonical-key grouping
//	window/   — sliding-window routines
//
// Quick ASCII example:
//
//	    [2 7 11 15], target 9
//	     ↑ ↑
//	     i j            → TwoSum returns (0, 1, true)
//
// Each routine is a pure synchronous function (MoveZeroes mutates its
// argument in place; that mutation is its documented contract).
//
//	go get github.com/leetkit/leetkit
package leetkit
