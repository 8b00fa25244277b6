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

// Package verify checks the isqrt kernels against their contract over
// large input domains. Sweeps run on a workerpool.Pool and return the
// lowest failing input as a *Mismatch.
package verify

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"lukechampine.com/uint128"

	"github.com/ajroetker/go-isqrt/internal/workerpool"
	"github.com/ajroetker/go-isqrt/isqrt"
)

// Mismatch describes a kernel result that violates the contract.
type Mismatch struct {
	Kernel string
	Input  uint64
	Got    uint64
	Reason string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%s(%d) = %d: %s", m.Kernel, m.Input, m.Got, m.Reason)
}

// Floor64 reports whether r*r <= x < (r+1)*(r+1). The squares are computed
// in 128 bits, so r = 2^32-1 is checked against 2^64 without wrapping.
func Floor64(x, r uint64) bool {
	if r > 1<<32 {
		return false
	}
	sq := uint128.From64(r).Mul64(r)
	next := uint128.From64(r + 1).Mul64(r + 1)
	return sq.Cmp64(x) <= 0 && next.Cmp64(x) > 0
}

// firstMismatch collects the mismatch with the lowest input across workers.
type firstMismatch struct {
	mu sync.Mutex
	m  *Mismatch
}

func (f *firstMismatch) report(m *Mismatch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil || m.Input < f.m.Input {
		f.m = m
	}
}

func (f *firstMismatch) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		return nil
	}
	return f.m
}

// CheckUint32 checks every 32-bit kernel at x: both roots against the
// floor contract and both predicates against the root.
func CheckUint32(x uint32) *Mismatch {
	r := isqrt.SqrtUint32(x)
	if !Floor64(uint64(x), uint64(r)) {
		return &Mismatch{"SqrtUint32", uint64(x), uint64(r), "not the floor root"}
	}
	sq := uint64(r)*uint64(r) == uint64(x)
	if got := isqrt.IsPerfectSqrUint32(x); got != sq {
		return &Mismatch{"IsPerfectSqrUint32", uint64(x), b2u(got), "disagrees with root"}
	}
	if x <= math.MaxInt32 {
		if ri := isqrt.SqrtInt32(int32(x)); uint32(ri) != r {
			return &Mismatch{"SqrtInt32", uint64(x), uint64(ri), "disagrees with SqrtUint32"}
		}
		if got := isqrt.IsPerfectSqrInt32(int32(x)); got != sq {
			return &Mismatch{"IsPerfectSqrInt32", uint64(x), b2u(got), "disagrees with root"}
		}
	} else {
		neg := int32(x)
		if ri := isqrt.SqrtInt32(neg); ri != isqrt.SentinelInt32 {
			return &Mismatch{"SqrtInt32", uint64(x), uint64(uint32(ri)), "negative input did not return the sentinel"}
		}
		if isqrt.IsPerfectSqrInt32(neg) {
			return &Mismatch{"IsPerfectSqrInt32", uint64(x), 1, "negative input reported as square"}
		}
	}
	return nil
}

// CheckUint64 checks the 64-bit kernels at x. The signed kernels are
// checked at int64(x), which is negative when the top bit is set.
func CheckUint64(x uint64) *Mismatch {
	r := isqrt.SqrtUint64(x)
	if !Floor64(x, r) {
		return &Mismatch{"SqrtUint64", x, r, "not the floor root"}
	}
	sq := r*r == x
	if got := isqrt.IsPerfectSqrUint64(x); got != sq {
		return &Mismatch{"IsPerfectSqrUint64", x, b2u(got), "disagrees with root"}
	}

	s := int64(x)
	rs := isqrt.SqrtInt64(s)
	if s < 0 {
		if rs != isqrt.SentinelInt64 {
			return &Mismatch{"SqrtInt64", x, uint64(rs), "negative input did not return the sentinel"}
		}
		if isqrt.IsPerfectSqrInt64(s) {
			return &Mismatch{"IsPerfectSqrInt64", x, 1, "negative input reported as square"}
		}
		return nil
	}
	if uint64(rs) != r {
		return &Mismatch{"SqrtInt64", x, uint64(rs), "disagrees with SqrtUint64"}
	}
	if got := isqrt.IsPerfectSqrInt64(s); got != sq {
		return &Mismatch{"IsPerfectSqrInt64", x, b2u(got), "disagrees with root"}
	}
	return nil
}

// SweepUint32 runs CheckUint32 on every x in [lo, hi). hi may be 1<<32.
func SweepUint32(pool *workerpool.Pool, lo, hi uint64) error {
	if hi > 1<<32 {
		return fmt.Errorf("sweep end %d exceeds the 32-bit domain", hi)
	}
	var first firstMismatch
	pool.ParallelRange(lo, hi, 1<<18, func(clo, chi uint64) bool {
		for x := clo; x < chi; x++ {
			if m := CheckUint32(uint32(x)); m != nil {
				first.report(m)
				return false
			}
		}
		return true
	})
	return first.err()
}

// SweepSquares64 runs CheckUint64 on k*k-1, k*k and k*k+1 for every k in
// [kLo, kHi). These are the inputs where rounding in the conversion or the
// square root can push the truncated root off by one. kHi may be 1<<32.
func SweepSquares64(pool *workerpool.Pool, kLo, kHi uint64) error {
	if kHi > 1<<32 {
		return fmt.Errorf("root end %d exceeds 2^32", kHi)
	}
	var first firstMismatch
	pool.ParallelRange(kLo, kHi, 1<<16, func(clo, chi uint64) bool {
		for k := clo; k < chi; k++ {
			sq := k * k
			// For k == 0, sq-1 wraps to math.MaxUint64, which is worth
			// checking anyway.
			for _, x := range [3]uint64{sq - 1, sq, sq + 1} {
				if m := CheckUint64(x); m != nil {
					first.report(m)
					return false
				}
			}
		}
		return true
	})
	return first.err()
}

// SampleUint64 runs CheckUint64 on n pseudo-random inputs drawn from seed,
// spread over every magnitude, plus math.MaxUint64.
func SampleUint64(pool *workerpool.Pool, seed int64, n uint64) error {
	if m := CheckUint64(math.MaxUint64); m != nil {
		return m
	}
	var first firstMismatch
	pool.ParallelRange(0, n, 1<<16, func(clo, chi uint64) bool {
		// Each chunk gets its own source so results do not depend on
		// scheduling.
		rng := rand.New(rand.NewSource(seed + int64(clo)))
		for range chi - clo {
			x := rng.Uint64() >> uint(rng.Intn(64))
			if m := CheckUint64(x); m != nil {
				first.report(m)
				return false
			}
		}
		return true
	})
	return first.err()
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
