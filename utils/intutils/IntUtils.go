// Package intutils provides utilities for working with ints
package intutils

// Clip clips an int to within a minimum and maximum value.
// If the int exceeds max, then the function returns the max
// If min exceeds the int, then the function returns the min
func Clip(value, min, max int) int {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Mod returns the non-negative remainder of a divided by n
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
