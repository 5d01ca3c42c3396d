// Copyright 2025 The Changeology Authors
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

package myers

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nhemsley/changeology/diff/internal/config"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "largish",
			x:    strings.Split("xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay", ""),
			y:    strings.Split("waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaait", ""),
			want: "DIMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			{
				rx, ry, complete := Diff(tt.x, tt.y, config.Default)
				if !complete {
					t.Errorf("Diff(...) did not complete")
				}
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
				}
			}
			{
				rx, ry, complete := DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }, config.Default)
				if !complete {
					t.Errorf("DiffFunc(...) did not complete")
				}
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
				}
			}
		})
	}
}

func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		if rx[s] {
			sb.WriteRune('D')
			s++
		} else if ry[t] {
			sb.WriteRune('I')
			t++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}

// TestUntilExpired forces a coarse result: completely disjoint inputs long enough to hit the
// first deadline check with a deadline that has already passed.
func TestUntilExpired(t *testing.T) {
	x := make([]int, 100)
	y := make([]int, 100)
	for i := range x {
		x[i] = 1
		y[i] = 2
	}
	eq := func(a, b int) bool { return a == b }

	rx, ry, complete := Until(x, y, eq, time.Now().Add(-time.Hour))
	if complete {
		t.Fatalf("Until(...) with expired deadline reported a complete result")
	}
	got := render(rx, ry, len(x), len(y))
	want := strings.Repeat("D", 100) + strings.Repeat("I", 100)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Until(...) differs [-want,+got]:\n%s", diff)
	}
}

// TestUntilExpiredStillValid checks that a coarsened result is still a valid edit script: the
// unmarked elements must match up pairwise.
func TestUntilExpiredStillValid(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("expired"))))
	x := make([]int, 2000)
	for i := range x {
		x[i] = rng.IntN(4)
	}
	y := make([]int, 2000)
	for i := range y {
		y[i] = rng.IntN(4)
	}
	eq := func(a, b int) bool { return a == b }

	rx, ry, _ := Until(x, y, eq, time.Now().Add(-time.Hour))
	checkVectors(t, x, y, rx, ry)
}

func TestDiffRandom(t *testing.T) {
	for i := range 20 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := make([]int, rng.IntN(1000))
			for s := range x {
				x[s] = rng.IntN(10)
			}
			y := make([]int, rng.IntN(1000))
			for t := range y {
				y[t] = rng.IntN(10)
			}
			rx, ry, complete := Diff(x, y, config.Default)
			if !complete {
				t.Fatalf("Diff(...) did not complete")
			}
			checkVectors(t, x, y, rx, ry)
		})
	}
}

// checkVectors verifies the structural invariants of a pair of result vectors: matching
// lengths, equal match counts on both sides, and pairwise equal unmarked elements.
func checkVectors(t *testing.T, x, y []int, rx, ry []bool) {
	t.Helper()
	if len(rx) != len(x)+1 || len(ry) != len(y)+1 {
		t.Fatalf("result vector lengths %d, %d, want %d, %d", len(rx), len(ry), len(x)+1, len(y)+1)
	}
	var xs, ys []int
	for s, marked := range rx[:len(x)] {
		if !marked {
			xs = append(xs, x[s])
		}
	}
	for t, marked := range ry[:len(y)] {
		if !marked {
			ys = append(ys, y[t])
		}
	}
	if diff := cmp.Diff(xs, ys); diff != "" {
		t.Fatalf("unmarked elements do not match pairwise [-x,+y]:\n%s", diff)
	}
}
