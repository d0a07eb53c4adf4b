package sequence

// MoveZeroes rearranges s in place so that all non-zero values keep
// their original relative order at the front, followed by zeros.
// "Zero" is the zero value of T.
//
// Write-pointer pass: after index i is processed, s[:write] holds
// exactly the non-zero values of the original s[:i+1] in order. A swap
// instead of a plain copy keeps the tail correct without a second
// fill loop, and skips the self-swap when no zero has been seen yet.
func MoveZeroes[T comparable](s []T) {
	var zero T
	write := 0
	for read, v := range s {
		if v == zero {
			continue
		}
		if read != write {
			s[write], s[read] = s[read], s[write]
		}
		write++
	}
}
