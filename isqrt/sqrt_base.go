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
	"math"
	"unsafe"
)

// SqrtInt32 returns the floor of the square root of x, or SentinelInt32 if
// x is negative.
//
// A float64 holds every int32 exactly, and the square root of a 31-bit
// value never rounds across an integer, so truncation alone is exact
// under any rounding mode.
func SqrtInt32(x int32) int32 {
	if x < 0 {
		return SentinelInt32
	}
	return int32(math.Sqrt(float64(x)))
}

// SqrtUint32 returns the floor of the square root of x.
func SqrtUint32(x uint32) uint32 {
	return uint32(math.Sqrt(float64(x)))
}

// SqrtInt64 returns the floor of the square root of x, or SentinelInt64 if
// x is negative.
//
// The conversion to float64 may round x up to the next perfect square, in
// which case the truncated root is one too large. x-g*g is then negative
// and its sign bit is subtracted from g.
func SqrtInt64(x int64) int64 {
	if x < 0 {
		return SentinelInt64
	}
	g := int64(math.Sqrt(float64(x)))
	return g - int64(uint64(x-g*g)>>63)
}

// BaseSqrtUint64 returns the floor of the square root of x using the
// current Uint64ToFloat64 conversion.
//
// g*g may wrap: for x >= 2^64-2^10 the conversion rounds to 2^64, the
// root is 2^32 and its square is 0 mod 2^64. x itself then has its top bit
// set, so the correction still fires. In every other overshoot x-g*g is a small
// negative difference.
func BaseSqrtUint64(x uint64) uint64 {
	g := uint64(math.Sqrt(Uint64ToFloat64(x)))
	return g - (x-g*g)>>63
}

// IntegerSqrt returns the floor of the square root of x for any supported
// integer type. Negative signed inputs return the minimum value of the
// type's width (SentinelInt32 or SentinelInt64).
//
// int and uint use the 64-bit kernels on 64-bit platforms and the 32-bit
// kernels otherwise.
func IntegerSqrt[T Integers](x T) T {
	var zero T
	signed := ^zero < 0
	if unsafe.Sizeof(zero) == 4 {
		if signed {
			return T(SqrtInt32(int32(x)))
		}
		return T(SqrtUint32(uint32(x)))
	}
	if signed {
		return T(SqrtInt64(int64(x)))
	}
	return T(SqrtUint64(uint64(x)))
}
