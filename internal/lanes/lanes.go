// Package lanes provides fixed-width integer vectors and the handful of
// lane-parallel operations the scan kernels are built from.
//
// A vector is a Go array whose length is the lane count, so vectors are
// plain values that live in registers or on the stack and never allocate.
// Comparisons produce a Mask with bit i set when lane i holds.
package lanes

import "unsafe"

// MaxLanes is the widest supported vector.
const MaxLanes = 32

// Integer is the set of element types a vector can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Vector is a vector of 4, 8, 16 or 32 lanes of T.
// Any other width does not satisfy the constraint.
type Vector[T Integer] interface {
	~[4]T | ~[8]T | ~[16]T | ~[32]T
}

// Width returns the number of lanes in V.
func Width[V Vector[T], T Integer]() int {
	var v V
	return len(v)
}

// Load reads the first Width lanes of s.
// It panics if s is shorter than the vector.
func Load[V Vector[T], T Integer](s []T) V {
	var v V
	_ = s[len(v)-1] // bounds check hint
	for i := 0; i < len(v); i++ {
		v[i] = s[i]
	}
	return v
}

// Broadcast returns a vector with x in every lane.
func Broadcast[V Vector[T], T Integer](x T) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = x
	}
	return v
}

// Equal compares a and b lane by lane.
func Equal[V Vector[T], T Integer](a, b V) Mask {
	var m Mask
	for i := 0; i < len(a); i++ {
		m |= bit(a[i] == b[i]) << i
	}
	return m
}

// Less reports, lane by lane, whether a is strictly smaller than b.
func Less[V Vector[T], T Integer](a, b V) Mask {
	var m Mask
	for i := 0; i < len(a); i++ {
		m |= bit(a[i] < b[i]) << i
	}
	return m
}

// Select takes lane i from a where m has bit i set and from b otherwise.
func Select[V Vector[T], T Integer](m Mask, a, b V) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = b[i]
		if m&(1<<i) != 0 {
			v[i] = a[i]
		}
	}
	return v
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Integer]() T {
	var zero T
	if ones := ^zero; ones > zero {
		return ones
	}
	return ^(T(1) << (Size[T]()*8 - 1))
}

// Size returns the size of T in bytes.
func Size[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func bit(b bool) Mask {
	if b {
		return 1
	}
	return 0
}
