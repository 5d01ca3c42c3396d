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

// Package tokenize produces the token streams the differ consumes: lines, words, or Unicode
// scalar values. Concatenating a token stream always reproduces the input string exactly.
package tokenize

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Lines splits s into lines, recognizing \r\n, \r, and \n as terminators. The terminator stays
// on its line. Input without a trailing terminator yields a final line without one, so any
// non-empty input produces at least one line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(s, "\n")+strings.Count(s, "\r")+1)
	start := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '\n':
			i++
			lines = append(lines, s[start:i])
			start = i
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			lines = append(lines, s[start:i])
			start = i
		default:
			i++
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// LineCount returns the number of lines in s counting a final empty line after a trailing
// terminator, matching what a line-indexed buffer reports. The empty string counts as one line.
func LineCount(s string) int {
	n := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			n++
		}
	}
	return n
}

// Words splits s into UAX #29 word segments. Whitespace and punctuation runs are tokens of
// their own, which keeps the stream lossless.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// Runes splits s into its Unicode scalar values.
func Runes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
