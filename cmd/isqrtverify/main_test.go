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

package main

import (
	"strings"
	"testing"

	"github.com/ajroetker/go-isqrt/internal/workerpool"
)

func TestRunModes(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	*lo, *hi = 1<<20, 1<<20+1<<16
	*samples = 1 << 12

	for _, m := range []string{"u32", "squares64", "random64"} {
		t.Run(m, func(t *testing.T) {
			if err := run(pool, m); err != nil {
				t.Errorf("run(%q) = %v", m, err)
			}
		})
	}
}

func TestRunUnknownMode(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	err := run(pool, "u16")
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Errorf("run(\"u16\") = %v, want unknown mode error", err)
	}
}

func TestRunRangeError(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	*lo, *hi = 0, 1<<33
	defer func() { *lo, *hi = 0, 1<<32 }()

	if err := run(pool, "u32"); err == nil {
		t.Errorf("run(\"u32\") with hi = 2^33 succeeded, want error")
	}
}
