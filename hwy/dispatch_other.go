//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures only get the scalar backend.
	setScalarMode()
}

// HasFMA reports false: no hardware fused multiply-add is assumed on
// architectures without a dedicated backend.
func HasFMA() bool {
	return false
}
