// Package core provides small numeric and slice helpers shared by the
// measurement and normalization packages.
package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, comparing
// absolutely for small magnitudes and relatively otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// AmpToDB converts a linear amplitude to decibels: 20 * log10(|value|).
// Returns -Inf for zero.
func AmpToDB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// DBToAmp converts decibels to a linear amplitude: 10^(dB/20).
// Returns 0 for -Inf.
func DBToAmp(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}

	return math.Pow(10, db/20)
}

