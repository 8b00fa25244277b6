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

//go:build !noasm && amd64

package isqrt

import "github.com/ajroetker/go-isqrt/isqrt/asm"

// AMD64 assembly dispatch for the unsigned 64-bit root.
//
// The z_ prefix ensures this init() runs after dispatch.go and
// dispatch_amd64.go have set up the portable defaults and currentLevel.

func init() {
	installAsmKernels()
}

// installAsmKernels swaps in the SSE3 kernel. DispatchSSE3 is reported only
// when SqrtUint64 really is the assembly kernel.
func installAsmKernels() {
	if NoAsmEnv() || currentLevel != DispatchSSE2 || !HasSSE3() {
		return
	}
	SqrtUint64 = asm.SqrtUint64SSE3
	currentLevel = DispatchSSE3
}
