//go:build noasm

package lanes

// First returns the lowest set lane, or -1 if no lane is set.
func (m Mask) First() int {
	for i := 0; i < MaxLanes; i++ {
		if m&(1<<i) != 0 {
			return i
		}
	}
	return -1
}
