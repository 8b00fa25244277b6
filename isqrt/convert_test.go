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
	"math/rand"
	"testing"
)

var conversionFuncs = []struct {
	name string
	fn   func(uint64) float64
}{
	{"Base", BaseUint64ToFloat64},
	{"Magic", MagicUint64ToFloat64},
	{"SignSplit", SignSplitUint64ToFloat64},
	{"Dispatch", func(x uint64) float64 { return Uint64ToFloat64(x) }},
}

func TestUint64ToFloat64Edges(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"max uint32", math.MaxUint32, 4294967295},
		{"2^32", 1 << 32, 0x1p32},
		{"2^53", 1 << 53, 0x1p53},
		{"2^53+1 ties to even", 1<<53 + 1, 0x1p53},
		{"2^53+3 ties to even", 1<<53 + 3, 0x1p53 + 4},
		{"max int64", math.MaxInt64, 0x1p63},
		{"2^63", 1 << 63, 0x1p63},
		{"2^63+2^10 ties to even", 1<<63 + 1<<10, 0x1p63},
		{"2^63+2^10+1 rounds up", 1<<63 + 1<<10 + 1, 0x1p63 + 0x1p11},
		{"2^63+3*2^10 ties to even", 1<<63 + 3<<10, 0x1p63 + 0x1p12},
		{"2^64-2^11", math.MaxUint64 - 1<<11 + 1, 0x1p64 - 0x1p11},
		{"2^64-2^10-1 rounds down", math.MaxUint64 - 1<<10, 0x1p64 - 0x1p11},
		{"2^64-2^10 ties to even", math.MaxUint64 - 1<<10 + 1, 0x1p64},
		{"max uint64", math.MaxUint64, 0x1p64},
	}

	for _, conv := range conversionFuncs {
		for _, tt := range tests {
			t.Run(conv.name+"/"+tt.name, func(t *testing.T) {
				if got := conv.fn(tt.x); got != tt.want {
					t.Errorf("%s(%d) = %v, want %v", conv.name, tt.x, got, tt.want)
				}
			})
		}
	}
}

// TestUint64ToFloat64Random compares every primitive bit-for-bit with the
// compiler's conversion, concentrating on patterns that exercise rounding.
func TestUint64ToFloat64Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	inputs := make([]uint64, 0, 400000)
	for range 100000 {
		x := rng.Uint64()
		inputs = append(inputs,
			x,
			x|1<<63,
			x>>uint(rng.Intn(64)),
			// Low 11 bits at the halfway point between two doubles.
			x&^0x7FF|1<<63|0x400,
		)
	}

	for _, conv := range conversionFuncs {
		t.Run(conv.name, func(t *testing.T) {
			for _, x := range inputs {
				got := conv.fn(x)
				want := float64(x)
				if math.Float64bits(got) != math.Float64bits(want) {
					t.Fatalf("%s(%#x) = %v, want %v", conv.name, x, got, want)
				}
			}
		})
	}
}

func TestMagicUint64ToFloat64Exact(t *testing.T) {
	// Every value below 2^53 is representable, so the construction must be
	// exact, not merely nearest.
	rng := rand.New(rand.NewSource(8))
	for range 100000 {
		x := rng.Uint64() >> 11
		if got := MagicUint64ToFloat64(x); uint64(got) != x {
			t.Fatalf("MagicUint64ToFloat64(%d) = %v, not exact", x, got)
		}
	}
}

func BenchmarkBaseUint64ToFloat64(b *testing.B) {
	x := uint64(0xFFFFFFFE00000001)
	var sink float64
	for b.Loop() {
		sink += BaseUint64ToFloat64(x)
	}
	_ = sink
}

func BenchmarkMagicUint64ToFloat64(b *testing.B) {
	x := uint64(0xFFFFFFFE00000001)
	var sink float64
	for b.Loop() {
		sink += MagicUint64ToFloat64(x)
	}
	_ = sink
}

func BenchmarkSignSplitUint64ToFloat64(b *testing.B) {
	x := uint64(0xFFFFFFFE00000001)
	var sink float64
	for b.Loop() {
		sink += SignSplitUint64ToFloat64(x)
	}
	_ = sink
}
