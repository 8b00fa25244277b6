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

// Operands for the rounding-mode probe. They are variables so the compiler
// cannot fold the additions at build time.
var (
	probeOne  = 1.0
	probeHalf = 0x1p-53 // half an ulp of 1.0
	probeUlp  = 0x1p-52 // one ulp of 1.0
)

// RoundsToNearest reports whether float64 arithmetic currently rounds to
// nearest, ties to even. The 64-bit kernels rely on it; Go never changes
// the mode, but foreign code linked through cgo can.
//
// 1 + ulp/2 is a tie that rounds down to the even 1.0, which rules out
// rounding up. (1 + ulp) + ulp/2 is a tie that rounds up to the even
// 1 + 2ulp, which rules out rounding down or toward zero.
func RoundsToNearest() bool {
	a := probeOne + probeHalf
	b := (probeOne + probeUlp) + probeHalf
	return a == probeOne && b == probeOne+2*probeUlp
}
