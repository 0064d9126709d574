package lanes

// Mask holds one bit per lane; bit i is lane i. Lane order is memory order,
// so the lowest set bit is the earliest matching element.
type Mask uint32

// Any reports whether any lane is set.
func (m Mask) Any() bool { return m != 0 }
