package scan

import (
	"os"
	"strconv"

	"github.com/mhr3/lanescan/internal/lanes"
)

// DispatchLevel is the instruction set the dispatching functions target.
type DispatchLevel int

const (
	// DispatchScalar runs the scalar reference loops.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 targets 128-bit x86 vectors.
	DispatchSSE2
	// DispatchAVX2 targets 256-bit x86 vectors.
	DispatchAVX2
	// DispatchAVX512 targets 512-bit x86 vectors.
	DispatchAVX512
	// DispatchNEON targets 128-bit arm64 vectors.
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go.
var (
	level         DispatchLevel
	registerBytes int
)

// Level returns the detected dispatch level.
func Level() DispatchLevel {
	return level
}

// Lanes returns the lane width Index and IndexMin use for T, or 1 when they
// fall back to the scalar loops.
func Lanes[T Integer]() int {
	if level == DispatchScalar {
		return 1
	}
	return laneWidth(registerBytes, lanes.Size[T]())
}

// laneWidth fits as many elements as a register holds, limited to the
// supported widths.
func laneWidth(regBytes, elemBytes int) int {
	return min(max(regBytes/elemBytes, 4), lanes.MaxLanes)
}

// noSIMDEnv reports whether LANESCAN_NO_SIMD asks for the scalar loops.
func noSIMDEnv() bool {
	val := os.Getenv("LANESCAN_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setLevel(l DispatchLevel, regBytes int) {
	if noSIMDEnv() {
		l = DispatchScalar
	}
	level, registerBytes = l, regBytes
}
