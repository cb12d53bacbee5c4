package core

import "golang.org/x/exp/constraints"

// Clamp limits value to the closed range [lo, hi]
func Clamp[T constraints.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
