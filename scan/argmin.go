package scan

import (
	"github.com/mhr3/lanescan/internal/chunk"
	"github.com/mhr3/lanescan/internal/lanes"
)

// ArgminWidth is the lane width used by ArgminVec.
const ArgminWidth = 16

// ArgminVec returns the index of the first occurrence of the smallest
// element of s, or -1 if s is empty, using 16-lane vectors.
func ArgminVec[T Integer](s []T) int {
	return ArgminLanes[[ArgminWidth]T](s)
}

// ArgminLanes returns the index of the first occurrence of the smallest
// element of s, or -1 if s is empty. The result is always identical to
// Argmin.
//
// Lane i tracks the minimum of the elements whose index is i modulo the
// width, and where it was first seen. Every comparison is strict so an
// equal value never displaces an earlier index.
func ArgminLanes[V Vector[T], T Integer](s []T) int {
	if len(s) == 0 {
		return -1
	}

	w := lanes.Width[V, T]()
	c := chunk.Split(s, w)
	if c.Len() == 0 {
		return Argmin(s)
	}

	mins := lanes.Broadcast[V, T](lanes.MaxValue[T]())
	idxs := lanes.Iota(w)
	cur := idxs
	for i := 0; i < c.Len(); i++ {
		v := lanes.Load[V, T](c.At(i))
		m := lanes.Less[V, T](v, mins)
		mins = lanes.Select[V, T](m, v, mins)
		idxs = lanes.SelectIndices(m, cur, idxs, w)
		cur = cur.Add(w, w)
	}

	// Lanes never hold equal indices, but they can hold equal values, so
	// the earlier index has to be preferred explicitly.
	best, bestIdx := mins[0], idxs[0]
	for j := 1; j < w; j++ {
		if mins[j] < best || (mins[j] == best && idxs[j] < bestIdx) {
			best, bestIdx = mins[j], idxs[j]
		}
	}

	off := c.RemainderOffset()
	for i, v := range c.Remainder() {
		if v < best {
			best, bestIdx = v, off+i
		}
	}
	return bestIdx
}
