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

//go:build amd64

package isqrt

import "golang.org/x/sys/cpu"

func init() {
	setupDispatch()
}

// setupDispatch wires the portable amd64 kernels and sets currentLevel.
// z_sqrt_amd64.go may raise the level to DispatchSSE3 afterwards.
func setupDispatch() {
	Uint64ToFloat64 = BaseUint64ToFloat64
	SqrtUint64 = BaseSqrtUint64

	if NoAsmEnv() {
		currentLevel = DispatchScalar
		return
	}

	detectCPUFeatures()
	if currentLevel == DispatchSSE2 {
		// amd64 has no unsigned 64-bit to double instruction, and the
		// compiler lowers float64(x) to a sign test with two paths.
		Uint64ToFloat64 = MagicUint64ToFloat64
	}
}

func detectCPUFeatures() {
	// SSE2 is the amd64 baseline; x/sys/cpu still reports it for clarity.
	if cpu.X86.HasSSE2 {
		currentLevel = DispatchSSE2
	} else {
		currentLevel = DispatchScalar
	}
}

// HasSSE3 returns true if the CPU supports SSE3, which the unsigned 64-bit
// assembly kernel needs for HADDPD.
func HasSSE3() bool {
	return cpu.X86.HasSSE3
}
