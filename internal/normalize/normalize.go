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

// Package normalize applies the pre-diff canonicalization rules: line-ending rewriting and
// whitespace-insensitive comparison keys.
package normalize

import (
	"strings"

	"github.com/nhemsley/changeology/diff/internal/config"
)

// Detect counts the line terminator forms across both inputs and returns the majority form.
// Ties resolve to Unix, as does input without any terminator.
func Detect(old, new string) config.LineEnding {
	crlf := strings.Count(old, "\r\n") + strings.Count(new, "\r\n")
	cr := strings.Count(old, "\r") + strings.Count(new, "\r") - crlf
	lf := strings.Count(old, "\n") + strings.Count(new, "\n") - crlf
	switch {
	case crlf > cr && crlf > lf:
		return config.Windows
	case cr > crlf && cr > lf:
		return config.MacOS
	default:
		return config.Unix
	}
}

// LineEndings rewrites all of \r\n, \r, and \n to the terminator selected by mode. Preserve
// and Auto return s unchanged; Auto must be resolved with [Detect] first.
func LineEndings(s string, mode config.LineEnding) string {
	var eol string
	switch mode {
	case config.Unix:
		eol = "\n"
	case config.Windows:
		eol = "\r\n"
	case config.MacOS:
		eol = "\r"
	default:
		return s
	}
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	start := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '\n':
			b.WriteString(s[start:i])
			b.WriteString(eol)
			i++
			start = i
		case '\r':
			b.WriteString(s[start:i])
			b.WriteString(eol)
			if i+1 < len(s) && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			start = i
		default:
			i++
		}
	}
	b.WriteString(s[start:])
	return b.String()
}

// Key returns the whitespace-insensitive comparison key for a token: maximal whitespace runs
// collapse to a single space and leading and trailing whitespace is dropped.
func Key(token string) string {
	return strings.Join(strings.Fields(token), " ")
}
