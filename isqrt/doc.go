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

// Package isqrt provides exact, truncating integer square roots and
// perfect-square predicates for 32-bit and 64-bit integers.
//
// Instead of a bit-by-bit or Newton-Raphson loop, every function converts
// its argument to floating point, takes a single hardware square root
// (SQRTSD/SQRTSS on amd64, FSQRT on arm64) and truncates back to an
// integer. The 64-bit paths then correct the one possible off-by-one
// caused by rounding near large perfect squares.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-isqrt/isqrt"
//
//	r := isqrt.IntegerSqrt(uint64(1) << 40) // 1 << 20
//	ok := isqrt.IsPerfectSqr(int32(49))     // true
//
// # Contract
//
// For every nonnegative x, IntegerSqrt(x) returns the unique r with
// r*r <= x < (r+1)*(r+1). Negative signed inputs produce a sentinel,
// math.MinInt32 or math.MinInt64, instead of an error; callers that need to
// tell a negative input apart from a real result must check the sign
// themselves. IsPerfectSqr reports false for every negative input.
//
// # Preconditions
//
// The 32-bit functions are exact under any FPU rounding mode. The 64-bit
// functions require round-to-nearest, which is the default for Go programs;
// RoundsToNearest probes the current mode.
//
// On amd64 the unsigned 64-bit root runs an SSE3 assembly kernel when the
// CPU supports it. Set ISQRT_NO_ASM=1 or build with -tags noasm to force the
// portable implementation.
package isqrt
