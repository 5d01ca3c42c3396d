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

import "github.com/nhemsley/changeology/diff"

// LineType classifies a single row within a hunk.
type LineType int

const (
	// The line is present only in the old document.
	OldOnly LineType = iota

	// The line is present only in the new document.
	NewOnly

	// The line is present in both documents, aligned.
	Both
)

func (t LineType) String() string {
	switch t {
	case OldOnly:
		return "OldOnly"
	case NewOnly:
		return "NewOnly"
	case Both:
		return "Both"
	default:
		return "LineType(?)"
	}
}

// HunkStatus is the primary classification of a hunk.
type HunkStatus int

const (
	// The hunk has no old-side content beyond context.
	Added HunkStatus = iota

	// The hunk has no new-side content beyond context.
	Deleted

	// Both sides are non-empty and differ.
	Modified

	// Both sides are identical. Used as a single catch-all hunk when the whole document is
	// unchanged or both inputs are empty.
	Unchanged
)

func (s HunkStatus) String() string {
	switch s {
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	case Modified:
		return "Modified"
	case Unchanged:
		return "Unchanged"
	default:
		return "HunkStatus(?)"
	}
}

// SecondaryStatus is a consumer-supplied tag attached to a hunk after construction, used by
// working-copy integrations to record whether a hunk is staged. The engine always writes
// [None].
type SecondaryStatus int

const (
	None SecondaryStatus = iota
	Staged
	Unstaged
)

func (s SecondaryStatus) String() string {
	switch s {
	case None:
		return "None"
	case Staged:
		return "Staged"
	case Unstaged:
		return "Unstaged"
	default:
		return "SecondaryStatus(?)"
	}
}

// HunkRange is a range of lines in one document: Start is the 0-based index of the first line
// and Count the number of lines covered. Empty ranges are permitted.
type HunkRange struct {
	Start, Count int
}

// End returns the exclusive end of the range.
func (r HunkRange) End() int { return r.Start + r.Count }

// IsEmpty reports whether the range covers no lines.
func (r HunkRange) IsEmpty() bool { return r.Count == 0 }

// Contains reports whether line falls inside the range.
func (r HunkRange) Contains(line int) bool { return line >= r.Start && line < r.End() }

// Span is an intraline segment of a positionally paired old/new row, for fine-grained
// highlighting. Text holds the shared content for Equal spans, the removed content for Delete
// spans, and the added content for Insert spans.
type Span struct {
	Op   diff.Op
	Text string
}

// Line is one row of a hunk as a reader would see it top to bottom. Old is set for OldOnly and
// Both rows, New for NewOnly and Both rows. Spans is populated on rows that form a positional
// old/new pair within a Modified hunk.
type Line struct {
	Type     LineType
	Old, New string
	Spans    []Span
}

// Hunk is a contiguous region of the diff: a run of changes plus its leading and trailing
// context lines.
type Hunk struct {
	Status          HunkStatus
	SecondaryStatus SecondaryStatus
	OldRange        HunkRange
	NewRange        HunkRange

	// LineTypes classifies every row of the hunk in reading order. The number of OldOnly plus
	// Both entries equals OldRange.Count; NewOnly plus Both equals NewRange.Count.
	LineTypes []LineType

	// Lines carries the row content, parallel to LineTypes.
	Lines []Line
}

// HasChanges reports whether the hunk represents any change.
func (h *Hunk) HasChanges() bool { return h.Status != Unchanged }

// AddedLines returns the number of NewOnly rows in the hunk.
func (h *Hunk) AddedLines() int { return h.countType(NewOnly) }

// DeletedLines returns the number of OldOnly rows in the hunk.
func (h *Hunk) DeletedLines() int { return h.countType(OldOnly) }

// UnchangedLines returns the number of Both rows in the hunk.
func (h *Hunk) UnchangedLines() int { return h.countType(Both) }

func (h *Hunk) countType(t LineType) int {
	n := 0
	for _, lt := range h.LineTypes {
		if lt == t {
			n++
		}
	}
	return n
}

// LineType returns the classification of the i-th row, with ok false when i is out of range.
func (h *Hunk) LineType(i int) (LineType, bool) {
	if i < 0 || i >= len(h.LineTypes) {
		return 0, false
	}
	return h.LineTypes[i], true
}

// clone returns a deep copy of the hunk.
func (h *Hunk) clone() Hunk {
	c := *h
	c.LineTypes = append([]LineType(nil), h.LineTypes...)
	c.Lines = append([]Line(nil), h.Lines...)
	for i := range c.Lines {
		c.Lines[i].Spans = append([]Span(nil), c.Lines[i].Spans...)
	}
	return c
}
