// Package chunk partitions a slice into fixed-width chunks followed by a
// shorter remainder. The partition is a view over the input: no element is
// copied.
package chunk

import "iter"

// Chunks is the partition of a slice into Len() full chunks of Width()
// elements and a remainder of fewer than Width() trailing elements.
type Chunks[T any] struct {
	s     []T
	width int
	n     int
}

// Split partitions s into chunks of width elements.
// It panics if width is not positive.
func Split[T any](s []T, width int) Chunks[T] {
	if width <= 0 {
		panic("chunk: width must be positive")
	}
	return Chunks[T]{s: s, width: width, n: len(s) / width}
}

// Len returns the number of full chunks.
func (c Chunks[T]) Len() int { return c.n }

// Width returns the chunk width.
func (c Chunks[T]) Width() int { return c.width }

// At returns the i-th chunk. The returned slice has its capacity clipped to
// the chunk, so appending to it never overwrites the next chunk.
func (c Chunks[T]) At(i int) []T {
	lo := i * c.width
	hi := lo + c.width
	return c.s[lo:hi:hi]
}

// Offset returns the index in the original slice of the first element of
// the i-th chunk.
func (c Chunks[T]) Offset(i int) int { return i * c.width }

// Remainder returns the trailing elements not covered by a full chunk.
func (c Chunks[T]) Remainder() []T { return c.s[c.n*c.width:] }

// RemainderOffset returns the index in the original slice of the first
// remainder element.
func (c Chunks[T]) RemainderOffset() int { return c.n * c.width }

// All yields every full chunk in order together with its offset in the
// original slice.
func (c Chunks[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(c.Offset(i), c.At(i)) {
				return
			}
		}
	}
}
