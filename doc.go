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

// Package diff provides functions to compare two slices and produce the edit script that
// transforms one into the other.
//
// The main functions are [Edits], which returns one edit per input element, and [Hunks], which
// groups changes into contiguous blocks with surrounding context. Both are deterministic: two
// calls with identical inputs and options produce identical output.
//
// The default algorithm is Myers' O(ND) algorithm in its linear-space variant; [Patience] selects
// patience diff instead. [Timeout] bounds the wall-clock work; when the budget is exhausted the
// result degrades to a coarser but still valid edit script.
//
// For text documents, see [github.com/nhemsley/changeology/diff/textdiff] which adds tokenization,
// normalization, and the hunk model used by the change viewer.
package diff
