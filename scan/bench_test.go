package scan

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viterin/vek"
)

var benchSizes = []int{10, 20, 50, 100, 500, 1000, 2500, 5000, 10_000}

// prepareInput returns a shuffled 0..n-1 and the value that was in the
// middle before shuffling.
func prepareInput(rnd *rand.Rand, n int) ([]uint32, uint32) {
	s := make([]uint32, n)
	for i := range s {
		s[i] = uint32(i)
	}
	middle := s[n/2]
	rnd.Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s, middle
}

func toFloat64(s []uint32) []float64 {
	f := make([]float64, len(s))
	for i, v := range s {
		f[i] = float64(v)
	}
	return f
}

func TestShuffledInputs(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for _, n := range benchSizes {
		s, middle := prepareInput(rnd, n)
		checkFind(t, s, middle, slices.Index(s, middle))

		// Values are unique, so vek agrees with every tie-break rule.
		want := vek.ArgMin(toFloat64(s))
		require.Equal(t, uint32(0), s[want])
		checkArgmin(t, s, want)
	}
}

func BenchmarkFind(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))

	for _, n := range benchSizes {
		s, middle := prepareInput(rnd, n)
		name := fmt.Sprintf("size=%d", n)

		b.Run(name+"/impl=stdlib", func(b *testing.B) {
			b.SetBytes(int64(n * 4))
			for b.Loop() {
				slices.Index(s, middle)
			}
		})

		for _, k := range findKernels {
			b.Run(name+"/impl="+k.name, func(b *testing.B) {
				b.SetBytes(int64(n * 4))
				for b.Loop() {
					k.fn(s, middle)
				}
			})
		}
	}
}

func BenchmarkArgmin(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))

	for _, n := range benchSizes {
		s, _ := prepareInput(rnd, n)
		f := toFloat64(s)
		name := fmt.Sprintf("size=%d", n)

		b.Run(name+"/impl=vek", func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				vek.ArgMin(f)
			}
		})

		for _, k := range argminKernels {
			b.Run(name+"/impl="+k.name, func(b *testing.B) {
				b.SetBytes(int64(n * 4))
				for b.Loop() {
					k.fn(s)
				}
			})
		}
	}
}
