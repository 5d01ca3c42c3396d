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
	"fmt"
	"sort"
	"strings"
)

// FileStatus is one changed file from git status.
type FileStatus struct {
	Path      string
	Code      string // the two-letter XY status code, "??" for untracked
	Staged    bool   // changes between HEAD and the index
	Unstaged  bool   // changes between the index and the working tree
	Untracked bool
}

// Status lists the changed files of the repository, sorted by path. Ignored files are
// excluded, untracked files included.
func (r *Repo) Status(ctx context.Context) ([]FileStatus, error) {
	out, err := run(ctx, r.root, "status", "--porcelain=v2", "--untracked-files=all", "-z")
	if err != nil {
		return nil, err
	}
	files, err := parsePorcelain(out)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// parsePorcelain parses NUL-terminated porcelain v2 output.
func parsePorcelain(out string) ([]FileStatus, error) {
	records := strings.Split(out, "\x00")
	files := make([]FileStatus, 0, len(records))
	for i := 0; i < len(records); i++ {
		rec := records[i]
		if rec == "" {
			continue
		}
		switch rec[0] {
		case '1':
			fields := strings.SplitN(rec, " ", 9)
			if len(fields) != 9 {
				return nil, fmt.Errorf("malformed status record: %q", rec)
			}
			files = append(files, fileFromXY(fields[8], fields[1]))

		case 'u':
			fields := strings.SplitN(rec, " ", 11)
			if len(fields) != 11 {
				return nil, fmt.Errorf("malformed unmerged record: %q", rec)
			}
			files = append(files, fileFromXY(fields[10], fields[1]))

		case '2':
			fields := strings.SplitN(rec, " ", 10)
			if len(fields) != 10 {
				return nil, fmt.Errorf("malformed rename record: %q", rec)
			}
			files = append(files, fileFromXY(fields[9], fields[1]))
			i++ // the original path follows as its own NUL-terminated record

		case '?':
			files = append(files, FileStatus{
				Path:      strings.TrimPrefix(rec, "? "),
				Code:      "??",
				Unstaged:  true,
				Untracked: true,
			})

		case '!', '#':
			continue

		default:
			return nil, fmt.Errorf("unknown status record: %q", rec)
		}
	}
	return files, nil
}

func fileFromXY(path, xy string) FileStatus {
	return FileStatus{
		Path:     path,
		Code:     xy,
		Staged:   len(xy) > 0 && xy[0] != '.',
		Unstaged: len(xy) > 1 && xy[1] != '.',
	}
}
