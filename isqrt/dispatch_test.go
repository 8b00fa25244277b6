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
	"runtime"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchSSE3, "sse3"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	t.Logf("dispatch level: %s", CurrentName())

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}

	switch runtime.GOARCH {
	case "amd64":
		switch CurrentLevel() {
		case DispatchScalar, DispatchSSE2, DispatchSSE3:
		default:
			t.Errorf("amd64 level = %s, want scalar, sse2 or sse3", CurrentLevel())
		}
		if CurrentLevel() == DispatchSSE3 && !HasSSE3() {
			t.Errorf("level sse3 without SSE3 support")
		}
		if NoAsmEnv() && CurrentLevel() != DispatchScalar {
			t.Errorf("ISQRT_NO_ASM set but level = %s", CurrentLevel())
		}
	case "arm64":
		if CurrentLevel() != DispatchNEON && CurrentLevel() != DispatchScalar {
			t.Errorf("arm64 level = %s, want neon or scalar", CurrentLevel())
		}
	default:
		if CurrentLevel() != DispatchScalar {
			t.Errorf("%s level = %s, want scalar", runtime.GOARCH, CurrentLevel())
		}
	}
}

func TestNoAsmEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("ISQRT_NO_ASM", tt.val)
			if got := NoAsmEnv(); got != tt.want {
				t.Errorf("NoAsmEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
