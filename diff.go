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

package diff

import (
	"slices"

	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/impl"
	"github.com/nhemsley/changeology/diff/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // The element is present in both slices.
	Delete           // A deletion of an element from the left slice.
	Insert           // An insertion of an element from the right slice.
)

// Edit describes a single edit of a diff.
//
//   - For Equal, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a contiguous block of changes together with its surrounding context.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY].
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// Edits returns one edit for every element in the input slices; the subsequence of Equal and
// Delete edits reproduces x and the subsequence of Equal and Insert edits reproduces y. If x and
// y are identical, the output consists of an Equal edit for every input element.
//
// The following options are supported: [Patience], [Timeout].
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.FlagAlgorithm|config.FlagTimeout)
	rx, ry, _ := impl.Diff(x, y, cfg)
	return edits(x, y, rx, ry)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// The following option is supported: [Timeout]. Patience diff requires hashable elements and is
// not available here.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.FlagTimeout)
	rx, ry, _ := impl.DiffFunc(x, y, eq, cfg)
	return edits(x, y, rx, ry)
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one
// to the other, grouped into hunks.
//
// A hunk covers a run of changes along with up to [Context] matching elements before and after.
// Hunks whose context windows would overlap are folded into a single hunk. If x and y are
// identical, the output has length zero.
//
// The following options are supported: [Context], [Patience], [Timeout].
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.FlagContext|config.FlagAlgorithm|config.FlagTimeout)
	rx, ry, _ := impl.Diff(x, y, cfg)
	return hunks(x, y, rx, ry, cfg)
}

// HunksFunc is like [Hunks] but uses the provided equality comparison.
//
// The following options are supported: [Context], [Timeout].
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.FlagContext|config.FlagTimeout)
	rx, ry, _ := impl.DiffFunc(x, y, eq, cfg)
	return hunks(x, y, rx, ry, cfg)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	n, m := len(rx)-1, len(ry)-1
	out := make([]Edit[T], 0, max(n, m))
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit[T]{Op: Delete, X: x[s]})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit[T]{Op: Insert, Y: y[t]})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Edit[T]{Op: Equal, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	var out []Hunk[T]
	for h := range rvecs.Hunks(rx, ry, cfg.Context) {
		eout := make([]Edit[T], 0, (h.S1-h.S0)+(h.T1-h.T0))
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				eout = append(eout, Edit[T]{Op: Delete, X: x[s]})
				s++
			}
			for t < h.T1 && ry[t] {
				eout = append(eout, Edit[T]{Op: Insert, Y: y[t]})
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				eout = append(eout, Edit[T]{Op: Equal, X: x[s], Y: y[t]})
				s++
				t++
			}
		}
		out = append(out, Hunk[T]{
			PosX:  h.S0,
			EndX:  h.S1,
			PosY:  h.T0,
			EndY:  h.T1,
			Edits: slices.Clip(eout),
		})
	}
	return out
}
