//go:build arm64

package isqrt

import "golang.org/x/sys/cpu"

func init() {
	if NoAsmEnv() {
		currentLevel = DispatchScalar
		return
	}

	// ARMv8-A always has ASIMD and FP. UCVTF converts unsigned 64-bit
	// integers directly, so the portable float64(x) conversion is already
	// a single instruction and nothing is overridden.
	if cpu.ARM64.HasASIMD && cpu.ARM64.HasFP {
		currentLevel = DispatchNEON
	} else {
		currentLevel = DispatchScalar
	}
}

// HasSSE3 returns false on arm64.
func HasSSE3() bool {
	return false
}
