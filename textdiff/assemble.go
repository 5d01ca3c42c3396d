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

package textdiff

import (
	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/rvecs"
)

// assemble turns a pair of result vectors into hunks with content, per-row line types, and a
// status. xs and ys are the token streams, kx and ky the comparison keys the diff ran on.
// Returns nil when the vectors contain no changes.
func assemble(xs, ys, kx, ky []string, rx, ry []bool, cfg config.Config) []Hunk {
	var hunks []Hunk
	for r := range rvecs.Hunks(rx, ry, cfg.Context) {
		hunks = append(hunks, buildHunk(xs, ys, kx, ky, rx, ry, r, cfg))
	}
	return hunks
}

func buildHunk(xs, ys, kx, ky []string, rx, ry []bool, r rvecs.Hunk, cfg config.Config) Hunk {
	h := Hunk{
		SecondaryStatus: None,
		OldRange:        HunkRange{r.S0, r.S1 - r.S0},
		NewRange:        HunkRange{r.T0, r.T1 - r.T0},
	}

	var dels, inss int // emitted OldOnly and NewOnly rows
	s, t := r.S0, r.T0
	for s < r.S1 || t < r.T1 {
		if s < r.S1 && rx[s] || t < r.T1 && ry[t] {
			d0, i0 := s, t
			for s < r.S1 && rx[s] {
				s++
			}
			for t < r.T1 && ry[t] {
				t++
			}
			d, i := emitRegion(&h, xs[d0:s], ys[i0:t], kx[d0:s], ky[i0:t], cfg)
			dels += d
			inss += i
		} else {
			h.appendRow(Line{Type: Both, Old: xs[s], New: ys[t]})
			s++
			t++
		}
	}

	switch {
	case dels > 0 && inss > 0:
		h.Status = Modified
	case dels > 0:
		h.Status = Deleted
	case inss > 0:
		h.Status = Added
	default:
		// Every row paired up equal under the comparison key. This happens when a timed-out
		// diff coarsened a rectangle of matching content.
		h.Status = Unchanged
	}
	return h
}

// emitRegion appends the rows for one run of consecutive deletes and inserts. Deletes and
// inserts are paired positionally: the i-th deleted token lines up with the i-th inserted one.
// A pair that is equal under the comparison key collapses into a single Both row; an unequal
// pair becomes an OldOnly row followed by a NewOnly row sharing the same intra-line spans.
// Leftover tokens on the longer side trail as unpaired rows.
//
// Positional pairing is not a sub-hunk LCS; for reordered edits it can line up tokens that
// a re-diff would not. It matches how side-by-side viewers render a modified block.
func emitRegion(h *Hunk, oldToks, newToks, oldKeys, newKeys []string, cfg config.Config) (dels, inss int) {
	n := min(len(oldToks), len(newToks))
	for j := 0; j < n; j++ {
		if oldKeys[j] == newKeys[j] {
			h.appendRow(Line{Type: Both, Old: oldToks[j], New: newToks[j]})
			continue
		}
		var spans []Span
		if cfg.Granularity == config.Line {
			spans = inlineSpans(oldToks[j], newToks[j])
		}
		h.appendRow(Line{Type: OldOnly, Old: oldToks[j], Spans: spans})
		h.appendRow(Line{Type: NewOnly, New: newToks[j], Spans: spans})
		dels++
		inss++
	}
	for _, tok := range oldToks[n:] {
		h.appendRow(Line{Type: OldOnly, Old: tok})
		dels++
	}
	for _, tok := range newToks[n:] {
		h.appendRow(Line{Type: NewOnly, New: tok})
		inss++
	}
	return dels, inss
}

func (h *Hunk) appendRow(l Line) {
	h.LineTypes = append(h.LineTypes, l.Type)
	h.Lines = append(h.Lines, l)
}
