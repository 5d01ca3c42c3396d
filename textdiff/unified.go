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
	"strings"
	"unicode/utf8"

	"github.com/nhemsley/changeology/diff"
	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/impl"
	"github.com/nhemsley/changeology/diff/internal/normalize"
)

// Unified renders the differences between old and new as a flat line-tagged stream: one line
// per token, prefixed with "-" for deletions, "+" for insertions, and " " for matches.
//
// Unlike the classic unified-diff format there are no "@@" hunk headers and no context
// trimming; the stream covers both inputs in full. Callers display this text, they do not
// parse it.
func Unified(old, new string, opts ...diff.Option) (string, error) {
	cfg := config.FromOptions(opts, allOptions)

	if !utf8.ValidString(old) {
		return "", &Error{Kind: InvalidEncoding, Detail: "old input is not valid UTF-8"}
	}
	if !utf8.ValidString(new) {
		return "", &Error{Kind: InvalidEncoding, Detail: "new input is not valid UTF-8"}
	}
	if cfg.Granularity == config.Character && cfg.IgnoreWhitespace {
		return "", &Error{Kind: OptionConflict, Detail: "character granularity cannot ignore whitespace"}
	}

	mode := cfg.LineEnding
	if mode == config.Auto {
		mode = normalize.Detect(old, new)
	}
	old = normalize.LineEndings(old, mode)
	new = normalize.LineEndings(new, mode)

	xs, ys := tokens(old, cfg), tokens(new, cfg)
	kx, ky := keys(xs, cfg), keys(ys, cfg)
	rx, ry, _ := impl.Diff(kx, ky, cfg)

	var sb strings.Builder
	s, t := 0, 0
	for s < len(xs) || t < len(ys) {
		switch {
		case s < len(xs) && rx[s]:
			writeTagged(&sb, '-', xs[s])
			s++
		case t < len(ys) && ry[t]:
			writeTagged(&sb, '+', ys[t])
			t++
		default:
			writeTagged(&sb, ' ', xs[s])
			s++
			t++
		}
	}
	return sb.String(), nil
}

func writeTagged(sb *strings.Builder, tag byte, tok string) {
	sb.WriteByte(tag)
	sb.WriteString(trimEOL(tok))
	sb.WriteByte('\n')
}
