// Package intutils provides utilities for working with ints
package intutils

import "math"

// CheckedProd calculates the product of all non-negative integers in a
// list. The returned bool is false if the product overflows an int or
// if any integer is negative.
func CheckedProd(ints ...int) (int, bool) {
	prod := 1
	for _, v := range ints {
		if v < 0 {
			return 0, false
		}
		if v != 0 && prod > math.MaxInt/v {
			return 0, false
		}
		prod *= v
	}
	return prod, true
}

// ExclusiveProd returns the running products of a list of integers,
// where element i holds the product of ints[:i]. Element 0 is always 1.
func ExclusiveProd(ints []int) []int {
	prods := make([]int, len(ints))
	running := 1
	for i, v := range ints {
		prods[i] = running
		running *= v
	}
	return prods
}
