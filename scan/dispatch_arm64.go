//go:build !noasm && arm64

package scan

func init() {
	// ASIMD is part of the arm64 baseline.
	setLevel(DispatchNEON, 16)
}
