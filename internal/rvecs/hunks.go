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

import "iter"

// Hunk describes a block of consecutive edits with context as half-open ranges into x and y.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
}

// Hunks iterates over the change regions in the result vectors, extending each region with up
// to context matching elements on either side. Two regions separated by no more than 2*context
// matches share a hunk; their context windows would otherwise overlap.
func Hunks(rx, ry []bool, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0
		s0, t0 := -1, -1 // start of the open hunk, -1 when no hunk is open
		se, te := 0, 0   // position just after the last change in the open hunk
		run := 0         // matches seen since the last change
		for s < n || t < m {
			if s < n && rx[s] || t < m && ry[t] {
				if s0 < 0 {
					s0, t0 = max(0, s-context), max(0, t-context)
				}
				for s < n && rx[s] {
					s++
				}
				for t < m && ry[t] {
					t++
				}
				se, te = s, t
				run = 0
			} else {
				s++
				t++
				run++
				if s0 >= 0 && run > 2*context {
					if !yield(Hunk{s0, se + context, t0, te + context}) {
						return
					}
					s0, t0 = -1, -1
				}
			}
		}
		if s0 >= 0 {
			c := min(run, context)
			yield(Hunk{s0, se + c, t0, te + c})
		}
	}
}
