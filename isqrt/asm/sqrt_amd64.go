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

// Package asm holds the amd64 assembly kernels for the isqrt package.
// Callers must check for SSE3 before using them.
package asm

// SqrtUint64SSE3 returns the floor of the square root of x.
//
// The low and high 32-bit halves of x are interleaved into the mantissas of
// the magic doubles 2^52 and 2^84 (PUNPCKLLQ), the magics are subtracted
// (SUBPD) and the halves summed (HADDPD), giving x rounded to the nearest
// double. SQRTSD and CVTTSD2SQ then produce a root that is either exact or
// one too large, and the sign bit of x-g*g corrects it.
//
// Requires round-to-nearest.
//
//go:noescape
func SqrtUint64SSE3(x uint64) uint64
