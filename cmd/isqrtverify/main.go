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

// Command isqrtverify checks the isqrt kernels over large input domains.
//
// Usage:
//
//	isqrtverify -mode u32                          # every uint32, all 32-bit kernels
//	isqrtverify -mode squares64 -lo 0 -hi 4294967296  # k*k-1, k*k, k*k+1 for every k
//	isqrtverify -mode random64 -n 100000000 -seed 1   # random 64-bit inputs
//
// Set ISQRT_NO_ASM=1 to check the portable kernels instead of the assembly
// ones. The exit status is 1 if any input violates the contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ajroetker/go-isqrt/internal/verify"
	"github.com/ajroetker/go-isqrt/internal/workerpool"
	"github.com/ajroetker/go-isqrt/isqrt"
)

var (
	mode    = flag.String("mode", "u32", "Sweep to run: u32, squares64 or random64")
	lo      = flag.Uint64("lo", 0, "Start of the range (inputs for u32, roots for squares64)")
	hi      = flag.Uint64("hi", 1<<32, "End of the range, exclusive")
	workers = flag.Int("workers", 0, "Number of workers (default: GOMAXPROCS)")
	samples = flag.Uint64("n", 1<<26, "Number of random inputs for random64")
	seed    = flag.Int64("seed", 1, "Random seed for random64")
)

func main() {
	flag.Parse()

	if !isqrt.RoundsToNearest() {
		fmt.Fprintf(os.Stderr, "Error: FPU is not in round-to-nearest mode; 64-bit kernels are not exact\n")
		os.Exit(1)
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	fmt.Fprintf(os.Stderr, "isqrt dispatch: %s, workers: %d\n", isqrt.CurrentName(), pool.NumWorkers())

	start := time.Now()
	err := run(pool, *mode)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s after %v: %v\n", *mode, elapsed, err)
		pool.Close()
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "ok   %s in %v\n", *mode, elapsed)
}

func run(pool *workerpool.Pool, mode string) error {
	switch mode {
	case "u32":
		fmt.Fprintf(os.Stderr, "checking x in [%d, %d)\n", *lo, *hi)
		if err := verify.SweepUint32(pool, *lo, *hi); err != nil {
			return fmt.Errorf("32-bit sweep: %w", err)
		}
	case "squares64":
		fmt.Fprintf(os.Stderr, "checking k*k-1, k*k, k*k+1 for k in [%d, %d)\n", *lo, *hi)
		if err := verify.SweepSquares64(pool, *lo, *hi); err != nil {
			return fmt.Errorf("64-bit square sweep: %w", err)
		}
	case "random64":
		fmt.Fprintf(os.Stderr, "checking %d random inputs, seed %d\n", *samples, *seed)
		if err := verify.SampleUint64(pool, *seed, *samples); err != nil {
			return fmt.Errorf("64-bit random sweep: %w", err)
		}
	default:
		return fmt.Errorf("unknown mode %q (want u32, squares64 or random64)", mode)
	}
	return nil
}
