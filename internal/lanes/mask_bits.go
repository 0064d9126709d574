//go:build !noasm

package lanes

import "math/bits"

// First returns the lowest set lane, or -1 if no lane is set.
func (m Mask) First() int {
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(m))
}
