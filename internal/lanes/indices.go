package lanes

// Indices is a vector of element positions, one per lane. Only the first
// width lanes are meaningful; the caller carries the width.
type Indices [MaxLanes]int

// Iota returns the positions 0, 1, ..., width-1.
func Iota(width int) Indices {
	var ix Indices
	for i := 0; i < width; i++ {
		ix[i] = i
	}
	return ix
}

// Add returns ix with n added to each of the first width lanes.
func (ix Indices) Add(n, width int) Indices {
	for i := 0; i < width; i++ {
		ix[i] += n
	}
	return ix
}

// SelectIndices takes lane i from a where m has bit i set and from b
// otherwise.
func SelectIndices(m Mask, a, b Indices, width int) Indices {
	for i := 0; i < width; i++ {
		if m&(1<<i) != 0 {
			b[i] = a[i]
		}
	}
	return b
}
