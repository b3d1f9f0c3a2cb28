// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// InInterval returns whether value lies in the half-open interval
// [interval.Min, interval.Max)
func InInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value < interval.Max
}

// Finite returns whether all floats in a list are neither NaN nor
// infinite
func Finite(floats ...float64) bool {
	for _, f := range floats {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Wrap returns value modulo 1 in [0, 1). Negative values wrap around
// from 1, so Wrap(-0.25) == 0.75.
func Wrap(value float64) float64 {
	wrapped := value - math.Floor(value)
	if wrapped >= 1.0 {
		// -tiny - floor(-tiny) rounds up to exactly 1
		return 0.0
	}
	return wrapped
}
