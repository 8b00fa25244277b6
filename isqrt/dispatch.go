// Copyright 2025 go-isqrt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isqrt

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction set the kernels were wired to.
type DispatchLevel int

const (
	// DispatchScalar indicates portable Go with no architecture-specific
	// paths. ISQRT_NO_ASM always selects it.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the x86-64 baseline. Unsigned 64-bit conversion
	// uses the branch-free magic-constant construction in Go.
	DispatchSSE2

	// DispatchSSE3 indicates SSE3 (HADDPD) with the assembly kernel
	// installed as SqrtUint64. Builds with -tags noasm never report it.
	DispatchSSE3

	// DispatchNEON indicates ARMv8 ASIMD/FP, which converts unsigned 64-bit
	// integers to double in hardware (UCVTF).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE3:
		return "sse3"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the instruction set the kernels are using.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current target,
// for example "sse3" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoAsmEnv checks if the ISQRT_NO_ASM environment variable is set.
// When set, the portable kernels are used regardless of CPU capabilities.
// This is useful for testing the fallback on hardware that has the fast path.
func NoAsmEnv() bool {
	val := os.Getenv("ISQRT_NO_ASM")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Dispatch function variables.
// These are initialized to the portable implementations and may be
// overridden by architecture-specific init() functions.
var (
	// Uint64ToFloat64 converts x to the nearest float64.
	Uint64ToFloat64 func(x uint64) float64

	// SqrtUint64 returns the floor of the square root of x.
	SqrtUint64 func(x uint64) uint64
)

func init() {
	Uint64ToFloat64 = BaseUint64ToFloat64
	SqrtUint64 = BaseSqrtUint64
}
