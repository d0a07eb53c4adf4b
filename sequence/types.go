// Package sequence defines options and error sentinels for the
// single-pass sequence routines.
package sequence

import "errors"

// Sentinel errors for sequence routines.
var (
	// ErrEmptyInput is returned when a routine needs at least one element.
	ErrEmptyInput = errors.New("sequence: input must be non-empty")

	// ErrNoMajority is returned by Majority under WithVerify when no
	// element occurs more than ⌊n/2⌋ times.
	ErrNoMajority = errors.New("sequence: no strict majority element")
)

// Integer constrains SingleNumber to types with bitwise XOR.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Option configures Majority via functional arguments.
type Option func(*majorityOptions)

type majorityOptions struct {
	verify bool
}

// WithVerify makes Majority confirm the candidate with a second counting
// pass, returning ErrNoMajority when the input has no strict majority.
// Without it, Majority trusts the caller's precondition and never checks.
func WithVerify() Option {
	return func(o *majorityOptions) { o.verify = true }
}
