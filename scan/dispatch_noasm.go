//go:build noasm

package scan

func init() {
	level, registerBytes = DispatchScalar, 16
}
