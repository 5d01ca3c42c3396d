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

package worktree

import (
	"context"

	"github.com/nhemsley/changeology/diff"
	"github.com/nhemsley/changeology/diff/textdiff"
)

// FileDiff compares a file's HEAD version against the working tree and tags every changed
// hunk as staged or unstaged. A hunk is considered staged when its old-side range overlaps a
// change between HEAD and the index.
//
// When the engine runs out of time, FileDiff returns the coarse result together with the
// TimedOut error; callers may render it like any other result.
func (r *Repo) FileDiff(ctx context.Context, path string, opts ...diff.Option) (*textdiff.Result, error) {
	head, err := r.HeadContent(ctx, path)
	if err != nil {
		return nil, err
	}
	working, err := r.WorkingContent(path)
	if err != nil {
		return nil, err
	}
	res, resErr := diffOrCoarse(head, working, opts)
	if res == nil {
		return nil, resErr
	}

	index, err := r.IndexContent(ctx, path)
	if err != nil {
		return nil, err
	}
	staged, stagedErr := diffOrCoarse(head, index, opts)
	if staged == nil {
		return nil, stagedErr
	}
	attachSecondary(res, staged)
	if resErr != nil {
		return res, resErr
	}
	return res, stagedErr
}

// diffOrCoarse runs the engine and keeps the coarse result when the time budget expired.
// Other errors discard the result.
func diffOrCoarse(old, new string, opts []diff.Option) (*textdiff.Result, error) {
	res, err := textdiff.Diff(old, new, opts...)
	if err != nil && !textdiff.IsKind(err, textdiff.TimedOut) {
		return nil, err
	}
	return res, err
}

// attachSecondary tags the changed hunks of res as Staged or Unstaged based on the hunks of
// the HEAD-to-index diff. Both diffs share the same old document, so old-side ranges are
// directly comparable.
func attachSecondary(res, staged *textdiff.Result) {
	for i, h := range res.Hunks() {
		if !h.HasChanges() {
			continue
		}
		st := textdiff.Unstaged
		for _, sh := range staged.Hunks() {
			if sh.HasChanges() && overlaps(h.OldRange, sh.OldRange) {
				st = textdiff.Staged
				break
			}
		}
		res.SetSecondaryStatus(i, st)
	}
}

// overlaps reports whether two old-side ranges intersect. Empty ranges (pure insertions)
// count as touching the position they sit at.
func overlaps(a, b textdiff.HunkRange) bool {
	ae, be := max(a.End(), a.Start+1), max(b.End(), b.Start+1)
	return a.Start < be && b.Start < ae
}
