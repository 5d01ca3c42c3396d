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

package rvecs

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// vectors builds a pair of result vectors from strings of 'D'/'I' markers, one character per
// element plus the trailing border.
func vectors(x, y string) (rx, ry []bool) {
	rx = make([]bool, len(x)+1)
	for i, c := range x {
		rx[i] = c == 'D'
	}
	ry = make([]bool, len(y)+1)
	for i, c := range y {
		ry[i] = c == 'I'
	}
	return rx, ry
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		x, y    string
		context int
		want    []Hunk
	}{
		{
			name:    "no-changes",
			x:       "....",
			y:       "....",
			context: 3,
			want:    nil,
		},
		{
			name:    "empty",
			x:       "",
			y:       "",
			context: 3,
			want:    nil,
		},
		{
			name:    "single-change-clamped-at-edges",
			x:       ".D.",
			y:       ".I.",
			context: 3,
			want:    []Hunk{{0, 3, 0, 3}},
		},
		{
			name:    "context-window",
			x:       ".....D.....",
			y:       ".....I.....",
			context: 2,
			want:    []Hunk{{3, 8, 3, 8}},
		},
		{
			name:    "no-context",
			x:       "..D..",
			y:       ".....",
			context: 0,
			want:    []Hunk{{2, 3, 2, 2}},
		},
		{
			// Gap of 3 matches with context 1: the windows do not overlap, two hunks.
			name:    "far-apart-changes-split",
			x:       ".D...D.",
			y:       ".I...I.",
			context: 1,
			want:    []Hunk{{0, 3, 0, 3}, {4, 7, 4, 7}},
		},
		{
			// Same change positions with context 3: the windows overlap, one hunk.
			name:    "close-changes-merge",
			x:       ".D...D.",
			y:       ".I...I.",
			context: 3,
			want:    []Hunk{{0, 7, 0, 7}},
		},
		{
			// A gap of exactly 2*context matches still merges; only more than that splits.
			name:    "gap-of-twice-context-merges",
			x:       "D....D",
			y:       "I....I",
			context: 2,
			want:    []Hunk{{0, 6, 0, 6}},
		},
		{
			name:    "gap-of-twice-context-plus-one-splits",
			x:       "D.....D",
			y:       "I.....I",
			context: 2,
			want:    []Hunk{{0, 3, 0, 3}, {4, 7, 4, 7}},
		},
		{
			name:    "insert-only",
			x:       "..",
			y:       ".III.",
			context: 1,
			want:    []Hunk{{0, 2, 0, 5}},
		},
		{
			name:    "trailing-change",
			x:       "...DD",
			y:       "...",
			context: 1,
			want:    []Hunk{{2, 5, 2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := vectors(tt.x, tt.y)
			got := slices.Collect(Hunks(rx, ry, tt.context))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
