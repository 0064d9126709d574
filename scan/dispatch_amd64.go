//go:build !noasm && amd64

package scan

import "golang.org/x/sys/cpu"

var (
	hasAVX2   = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F
)

func init() {
	switch {
	case hasAVX512:
		setLevel(DispatchAVX512, 64)
	case hasAVX2:
		setLevel(DispatchAVX2, 32)
	default:
		// SSE2 is part of the amd64 baseline.
		setLevel(DispatchSSE2, 16)
	}
}
