package search

// Integer is the element constraint for TwoSum: any integer type,
// signed or unsigned, including named types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// TwoSum returns indices i < j with nums[i]+nums[j] == target and
// ok == true, or ok == false when no such pair exists.
//
// Single scan with a value→index map: when position j is reached, the
// map holds exactly the values of nums[:j], so the complement lookup
// decides in O(1) whether j completes a pair. The first valid j wins;
// its partner is the most recent earlier index holding the complement.
func TwoSum[T Integer](nums []T, target T) (i, j int, ok bool) {
	seen := make(map[T]int, len(nums))
	for idx, n := range nums {
		if prev, found := seen[target-n]; found {
			return prev, idx, true
		}
		seen[n] = idx
	}

	return NotFound, NotFound, false
}
