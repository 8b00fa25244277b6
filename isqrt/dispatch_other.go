//go:build !amd64 && !arm64

package isqrt

func init() {
	// Other architectures use the portable kernels. math.Sqrt is still a
	// hardware instruction on most of them (riscv64, ppc64x, s390x, wasm).
	currentLevel = DispatchScalar
}

// HasSSE3 returns false on non-x86 architectures.
func HasSSE3() bool {
	return false
}
