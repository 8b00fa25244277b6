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

// SignedInts is a constraint for the signed integer types with a root kernel.
type SignedInts interface {
	~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for the unsigned integer types with a root kernel.
type UnsignedInts interface {
	~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types accepted by IntegerSqrt
// and IsPerfectSqr.
type Integers interface {
	SignedInts | UnsignedInts
}

const (
	// SentinelInt32 is returned by SqrtInt32 for negative inputs.
	SentinelInt32 int32 = -1 << 31

	// SentinelInt64 is returned by SqrtInt64 for negative inputs.
	SentinelInt64 int64 = -1 << 63
)
