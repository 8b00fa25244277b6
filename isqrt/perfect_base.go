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

// The predicates skip the correction step. A perfect square k*k always
// produces exactly k from the sqrt and truncation, and r*r == x can only
// hold when x is a square, so comparing is enough.

// IsPerfectSqrInt32 reports whether x is the square of an integer.
// Negative inputs are never perfect squares.
//
// The root is taken in single precision: float32(x) is off by at most half
// an ulp, which moves the root by less than half an ulp of k, so a square
// still rounds to its exact root.
func IsPerfectSqrInt32(x int32) bool {
	if x < 0 {
		return false
	}
	r := int64(sqrt32(float32(x)))
	return r*r == int64(x)
}

// IsPerfectSqrUint32 reports whether x is the square of an integer.
func IsPerfectSqrUint32(x uint32) bool {
	r := uint64(sqrt32(float32(x)))
	return r*r == uint64(x)
}

// IsPerfectSqrInt64 reports whether x is the square of an integer.
// Negative inputs are never perfect squares.
func IsPerfectSqrInt64(x int64) bool {
	if x < 0 {
		return false
	}
	r := int64(math.Sqrt(float64(x)))
	return r*r == x
}

// IsPerfectSqrUint64 reports whether x is the square of an integer.
//
// r is at most 2^32, whose square wraps to 0; that only happens for x near
// 2^64, so the comparison still fails as it should.
func IsPerfectSqrUint64(x uint64) bool {
	r := uint64(math.Sqrt(Uint64ToFloat64(x)))
	return r*r == x
}

// IsPerfectSqr reports whether x is the square of a nonnegative integer,
// for any supported integer type. It is false for every negative input.
func IsPerfectSqr[T Integers](x T) bool {
	var zero T
	signed := ^zero < 0
	if unsafe.Sizeof(zero) == 4 {
		if signed {
			return IsPerfectSqrInt32(int32(x))
		}
		return IsPerfectSqrUint32(uint32(x))
	}
	if signed {
		return IsPerfectSqrInt64(int64(x))
	}
	return IsPerfectSqrUint64(uint64(x))
}

// sqrt32 is a single-precision square root. The compiler lowers the
// float64 round trip to SQRTSS on amd64 and FSQRT Sn on arm64; the double
// rounding is harmless because float64 has more than 2*24+2 mantissa bits.
func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
