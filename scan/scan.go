// Package scan implements linear search and argmin over integer slices,
// each as a scalar reference and as a lane-parallel kernel whose width is
// chosen by the caller or by CPU detection.
//
// All functions are pure: they never modify the input, keep no state
// between calls and do not allocate. A result of -1 means the value is not
// present or the slice is empty.
package scan

import "github.com/mhr3/lanescan/internal/lanes"

// Integer is the set of element types the kernels accept.
type Integer interface {
	lanes.Integer
}

// Vector selects the lane width of a kernel: [4]T, [8]T, [16]T or [32]T.
type Vector[T Integer] interface {
	lanes.Vector[T]
}

// Find returns the index of the first element of s equal to x, or -1.
func Find[T Integer](s []T, x T) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}
	return -1
}

// Argmin returns the index of the first occurrence of the smallest element
// of s, or -1 if s is empty.
func Argmin[T Integer](s []T) int {
	if len(s) == 0 {
		return -1
	}
	k := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[k] {
			k = i
		}
	}
	return k
}
