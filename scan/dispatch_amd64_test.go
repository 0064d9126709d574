//go:build !noasm && amd64

package scan

import (
	"testing"

	segcpu "github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/x86"
	"github.com/stretchr/testify/assert"
)

func TestLevelMatchesCPU(t *testing.T) {
	if noSIMDEnv() {
		t.Skip("LANESCAN_NO_SIMD is set")
	}

	switch Level() {
	case DispatchAVX512:
		assert.True(t, segcpu.X86.Has(x86.AVX512F))
		assert.Equal(t, 16, Lanes[uint32]())
	case DispatchAVX2:
		assert.True(t, segcpu.X86.Has(x86.AVX2))
		assert.Equal(t, 8, Lanes[uint32]())
	case DispatchSSE2:
		assert.Equal(t, 4, Lanes[uint32]())
	default:
		t.Fatalf("unexpected level %s on amd64", Level())
	}
}
