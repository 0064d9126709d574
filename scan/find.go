package scan

import (
	"github.com/mhr3/lanescan/internal/chunk"
	"github.com/mhr3/lanescan/internal/lanes"
)

// FindLanes returns the index of the first element of s equal to x, or -1.
// The slice is compared one vector of V at a time, e.g.
//
//	i := scan.FindLanes[[8]uint32](s, x)
//
// The result is always identical to Find.
func FindLanes[V Vector[T], T Integer](s []T, x T) int {
	c := chunk.Split(s, lanes.Width[V, T]())
	needle := lanes.Broadcast[V, T](x)

	for i := 0; i < c.Len(); i++ {
		v := lanes.Load[V, T](c.At(i))
		if m := lanes.Equal[V, T](v, needle); m.Any() {
			return c.Offset(i) + m.First()
		}
	}

	off := c.RemainderOffset()
	for i, v := range c.Remainder() {
		if v == x {
			return off + i
		}
	}
	return -1
}
