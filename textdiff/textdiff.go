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

// Package textdiff is the text-diff engine of the change viewer. It compares two versions of a
// document and produces a sequence of hunks: aligned ranges classified as added, deleted,
// modified, or unchanged, with a per-row line type inside each hunk.
//
// The engine is stateless and reentrant. Every call owns its inputs, and a finished [Result]
// and its [Snapshot] are immutable values that can be shared between goroutines without
// synchronization.
package textdiff

import (
	"unicode/utf8"

	"github.com/nhemsley/changeology/diff"
	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/impl"
	"github.com/nhemsley/changeology/diff/internal/normalize"
	"github.com/nhemsley/changeology/diff/internal/tokenize"
)

const allOptions = config.FlagContext | config.FlagAlgorithm | config.FlagTimeout |
	config.FlagGranularity | config.FlagIgnoreWhitespace | config.FlagLineEnding

// Diff compares old and new and returns the hunks describing their differences.
//
// All options of this package and of the diff package are supported. Errors are reported as
// tagged [Error] values: for [InvalidEncoding] and [OptionConflict] no result is computed; for
// [TimedOut] a valid but coarse result is returned alongside the error.
func Diff(old, new string, opts ...diff.Option) (*Result, error) {
	cfg := config.FromOptions(opts, allOptions)

	if !utf8.ValidString(old) {
		return nil, &Error{Kind: InvalidEncoding, Detail: "old input is not valid UTF-8"}
	}
	if !utf8.ValidString(new) {
		return nil, &Error{Kind: InvalidEncoding, Detail: "new input is not valid UTF-8"}
	}
	if cfg.Granularity == config.Character && cfg.IgnoreWhitespace {
		// A character token is at most one whitespace rune; collapsing runs would change the
		// token count and break the alignment between keys and content.
		return nil, &Error{Kind: OptionConflict, Detail: "character granularity cannot ignore whitespace"}
	}

	mode := cfg.LineEnding
	if mode == config.Auto {
		mode = normalize.Detect(old, new)
	}
	old = normalize.LineEndings(old, mode)
	new = normalize.LineEndings(new, mode)

	r := &Result{
		oldLineCount: tokenize.LineCount(old),
		newLineCount: tokenize.LineCount(new),
	}

	xs, ys := tokens(old, cfg), tokens(new, cfg)

	// Empty documents never reach the differ.
	switch {
	case len(xs) == 0 && len(ys) == 0:
		r.hunks = []Hunk{{
			Status:          Unchanged,
			SecondaryStatus: None,
		}}
		return r, nil
	case len(xs) == 0:
		r.hunks = []Hunk{wholeSideHunk(Added, ys)}
		return r, nil
	case len(ys) == 0:
		r.hunks = []Hunk{wholeSideHunk(Deleted, xs)}
		return r, nil
	}

	kx, ky := keys(xs, cfg), keys(ys, cfg)
	rx, ry, complete := impl.Diff(kx, ky, cfg)

	r.hunks = assemble(xs, ys, kx, ky, rx, ry, cfg)
	if r.hunks == nil {
		// Only equal tokens: a single catch-all hunk covering both documents.
		h := Hunk{
			Status:          Unchanged,
			SecondaryStatus: None,
			OldRange:        HunkRange{0, len(xs)},
			NewRange:        HunkRange{0, len(ys)},
			LineTypes:       make([]LineType, len(xs)),
			Lines:           make([]Line, len(xs)),
		}
		for i := range xs {
			h.LineTypes[i] = Both
			h.Lines[i] = Line{Type: Both, Old: xs[i], New: ys[i]}
		}
		r.hunks = []Hunk{h}
	}

	if !complete {
		return r, &Error{Kind: TimedOut, Detail: "result was coarsened"}
	}
	return r, nil
}

// wholeSideHunk builds the single hunk for a document that is added or deleted in its
// entirety.
func wholeSideHunk(status HunkStatus, toks []string) Hunk {
	h := Hunk{
		Status:          status,
		SecondaryStatus: None,
		LineTypes:       make([]LineType, len(toks)),
		Lines:           make([]Line, len(toks)),
	}
	switch status {
	case Added:
		h.NewRange = HunkRange{0, len(toks)}
		for i, tok := range toks {
			h.LineTypes[i] = NewOnly
			h.Lines[i] = Line{Type: NewOnly, New: tok}
		}
	case Deleted:
		h.OldRange = HunkRange{0, len(toks)}
		for i, tok := range toks {
			h.LineTypes[i] = OldOnly
			h.Lines[i] = Line{Type: OldOnly, Old: tok}
		}
	}
	return h
}

func tokens(s string, cfg config.Config) []string {
	switch cfg.Granularity {
	case config.Word:
		return tokenize.Words(s)
	case config.Character:
		return tokenize.Runes(s)
	default:
		return tokenize.Lines(s)
	}
}

// keys returns the comparison keys for a token stream. Without whitespace-insensitivity the
// tokens are their own keys.
func keys(toks []string, cfg config.Config) []string {
	if !cfg.IgnoreWhitespace {
		return toks
	}
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = normalize.Key(tok)
	}
	return out
}
