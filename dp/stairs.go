package dp

// ClimbStairs returns the number of distinct ways to climb n steps
// taking 1 or 2 steps at a time.
//
// ways(n) = ways(n-1) + ways(n-2); only the last two values are kept.
// n <= 2 returns n directly, so ClimbStairs(0) == 0 and negative input
// returns 0. Results overflow int beyond n == 91 on 64-bit platforms;
// inputs that large are outside this routine's intent.
func ClimbStairs(n int) int {
	if n < 0 {
		return 0
	}
	if n <= 2 {
		return n
	}
	prev, cur := 1, 2
	for i := 3; i <= n; i++ {
		prev, cur = cur, prev+cur
	}

	return cur
}
