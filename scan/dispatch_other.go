//go:build !noasm && !amd64 && !arm64

package scan

func init() {
	setLevel(DispatchScalar, 16)
}
