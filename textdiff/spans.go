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

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nhemsley/changeology/diff"
)

// inlineSpans computes the intra-line highlight spans for a positionally paired old/new line.
// Line terminators are excluded; the spans cover only the visible text.
func inlineSpans(old, new string) []Span {
	dmp := diffmatchpatch.New()
	ds := dmp.DiffMain(trimEOL(old), trimEOL(new), false)
	ds = dmp.DiffCleanupSemantic(ds)

	spans := make([]Span, 0, len(ds))
	for _, d := range ds {
		if d.Text == "" {
			continue
		}
		var op diff.Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = diff.Delete
		case diffmatchpatch.DiffInsert:
			op = diff.Insert
		default:
			op = diff.Equal
		}
		spans = append(spans, Span{Op: op, Text: d.Text})
	}
	return spans
}

// trimEOL drops the single trailing line terminator of a line token, if present.
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
