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

import "math"

// Bit patterns of the magic doubles used to build a float64 from the two
// 32-bit halves of a uint64. OR-ing a 32-bit value v into the low mantissa
// bits of magicLo gives exactly 2^52 + v; OR-ing it into magicHi gives
// exactly 2^84 + v*2^32.
const (
	magicLoBits = 0x4330000000000000 // 2^52
	magicHiBits = 0x4530000000000000 // 2^84

	magicLo = 0x1p52
	magicHi = 0x1p84
)

// BaseUint64ToFloat64 converts x to the nearest float64 using the
// compiler's conversion. It is the portable fallback.
func BaseUint64ToFloat64(x uint64) float64 {
	return float64(x)
}

// MagicUint64ToFloat64 converts x to the nearest float64 by splitting it into
// 32-bit halves, planting each half in the mantissa of a magic double,
// subtracting the magics back out and summing the halves.
//
// Both halves are exact after the subtraction, so the final addition is the
// only rounding step and the result matches float64(x) under
// round-to-nearest.
func MagicUint64ToFloat64(x uint64) float64 {
	lo := math.Float64frombits(magicLoBits|x&0xFFFFFFFF) - magicLo
	hi := math.Float64frombits(magicHiBits|x>>32) - magicHi
	return hi + lo
}

// SignSplitUint64ToFloat64 converts x to the nearest float64 using only the
// signed 64-bit conversion. Values below 2^63 convert directly. When the
// sign bit is set, x is halved with the shifted-out bit folded into the
// lowest bit so the signed conversion still sees the rounding tie-break,
// then the result is doubled, which is exact.
func SignSplitUint64ToFloat64(x uint64) float64 {
	if int64(x) >= 0 {
		return float64(int64(x))
	}
	h := x>>1 | x&1
	return float64(int64(h)) * 2
}
