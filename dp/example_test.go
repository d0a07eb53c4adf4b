package dp_test

import (
	"fmt"

	"github.com/leetkit/leetkit/dp"
)

// ExampleClimbStairs counts the ways up a five-step staircase.
func ExampleClimbStairs() {
	fmt.Println(dp.ClimbStairs(1), dp.ClimbStairs(2), dp.ClimbStairs(5))
	// Output:
	// 1 2 8
}
