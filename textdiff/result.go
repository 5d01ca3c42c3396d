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

// Result is the outcome of a [Diff] call: the hunks in document order plus the line counts of
// both inputs after normalization. A Result owns its content; it keeps no reference to the
// caller's input strings.
//
// The hunks themselves are read-only. The only mutation a Result permits is
// [Result.SetSecondaryStatus]; take a [Result.Snapshot] to get a fully immutable value.
type Result struct {
	hunks        []Hunk
	oldLineCount int
	newLineCount int
}

// Hunks returns all hunks in ascending order of their old-side start.
//
// The returned slice is shared with the Result and must not be modified.
func (r *Result) Hunks() []Hunk { return r.hunks }

// HunkCount returns the number of hunks.
func (r *Result) HunkCount() int { return len(r.hunks) }

// Hunk returns the i-th hunk, reporting whether i was in range.
func (r *Result) Hunk(i int) (Hunk, bool) {
	if i < 0 || i >= len(r.hunks) {
		return Hunk{}, false
	}
	return r.hunks[i], true
}

// HasChanges reports whether any hunk carries a change.
func (r *Result) HasChanges() bool {
	for i := range r.hunks {
		if r.hunks[i].HasChanges() {
			return true
		}
	}
	return false
}

// AddedLines returns the total number of new-only rows across all hunks.
func (r *Result) AddedLines() int {
	n := 0
	for i := range r.hunks {
		n += r.hunks[i].AddedLines()
	}
	return n
}

// DeletedLines returns the total number of old-only rows across all hunks.
func (r *Result) DeletedLines() int {
	n := 0
	for i := range r.hunks {
		n += r.hunks[i].DeletedLines()
	}
	return n
}

// UnchangedLines returns the total number of rows present in both documents across all hunks.
func (r *Result) UnchangedLines() int {
	n := 0
	for i := range r.hunks {
		n += r.hunks[i].UnchangedLines()
	}
	return n
}

// OldLineCount returns the number of lines in the old document after normalization.
func (r *Result) OldLineCount() int { return r.oldLineCount }

// NewLineCount returns the number of lines in the new document after normalization.
func (r *Result) NewLineCount() int { return r.newLineCount }

// SetSecondaryStatus tags the i-th hunk with a consumer-side status. It reports whether i was
// in range. The engine never assigns anything but [None] itself.
func (r *Result) SetSecondaryStatus(i int, st SecondaryStatus) bool {
	if i < 0 || i >= len(r.hunks) {
		return false
	}
	r.hunks[i].SecondaryStatus = st
	return true
}

// Snapshot returns a deep, immutable copy of the Result. Later calls to
// [Result.SetSecondaryStatus] do not affect it.
func (r *Result) Snapshot() *Snapshot {
	hunks := make([]Hunk, len(r.hunks))
	for i := range r.hunks {
		hunks[i] = r.hunks[i].clone()
	}
	return &Snapshot{
		hunks:        hunks,
		oldLineCount: r.oldLineCount,
		newLineCount: r.newLineCount,
	}
}

// Snapshot is a frozen copy of a [Result]. It supports the same queries but no mutation and is
// safe to share between goroutines.
type Snapshot struct {
	hunks        []Hunk
	oldLineCount int
	newLineCount int
}

// Hunks returns all hunks in document order. The slice must not be modified.
func (s *Snapshot) Hunks() []Hunk { return s.hunks }

// HunkCount returns the number of hunks.
func (s *Snapshot) HunkCount() int { return len(s.hunks) }

// Hunk returns the i-th hunk, reporting whether i was in range.
func (s *Snapshot) Hunk(i int) (Hunk, bool) {
	if i < 0 || i >= len(s.hunks) {
		return Hunk{}, false
	}
	return s.hunks[i], true
}

// HasChanges reports whether any hunk carries a change.
func (s *Snapshot) HasChanges() bool {
	for i := range s.hunks {
		if s.hunks[i].HasChanges() {
			return true
		}
	}
	return false
}

// AddedLines returns the total number of new-only rows across all hunks.
func (s *Snapshot) AddedLines() int {
	n := 0
	for i := range s.hunks {
		n += s.hunks[i].AddedLines()
	}
	return n
}

// DeletedLines returns the total number of old-only rows across all hunks.
func (s *Snapshot) DeletedLines() int {
	n := 0
	for i := range s.hunks {
		n += s.hunks[i].DeletedLines()
	}
	return n
}

// UnchangedLines returns the total number of rows present in both documents across all hunks.
func (s *Snapshot) UnchangedLines() int {
	n := 0
	for i := range s.hunks {
		n += s.hunks[i].UnchangedLines()
	}
	return n
}

// OldLineCount returns the number of lines in the old document after normalization.
func (s *Snapshot) OldLineCount() int { return s.oldLineCount }

// NewLineCount returns the number of lines in the new document after normalization.
func (s *Snapshot) NewLineCount() int { return s.newLineCount }
