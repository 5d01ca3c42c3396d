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

// Package worktree integrates the diff engine with a git working copy. It reads file content
// at the three relevant versions (HEAD, index, working directory), lists changed files, and
// attaches staged/unstaged tags to the hunks of a file diff.
//
// All repository access shells out to the git binary; the package never touches the object
// store directly.
package worktree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo is an open git working copy.
type Repo struct {
	root string // absolute path of the worktree root
}

// Open locates the repository containing dir and returns a handle to it.
func Open(ctx context.Context, dir string) (*Repo, error) {
	root, err := run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &Repo{root: strings.TrimSpace(root)}, nil
}

// Root returns the absolute path of the worktree root.
func (r *Repo) Root() string { return r.root }

// HeadContent returns the content of path (relative to the worktree root) at HEAD. A path that
// does not exist at HEAD yields an empty string and no error.
func (r *Repo) HeadContent(ctx context.Context, path string) (string, error) {
	return r.showContent(ctx, "HEAD:"+path)
}

// IndexContent returns the staged content of path. A path absent from the index yields an
// empty string and no error.
func (r *Repo) IndexContent(ctx context.Context, path string) (string, error) {
	return r.showContent(ctx, ":"+path)
}

// WorkingContent returns the on-disk content of path. A deleted file yields an empty string
// and no error.
func (r *Repo) WorkingContent(path string) (string, error) {
	b, err := os.ReadFile(filepath.Join(r.root, path))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Repo) showContent(ctx context.Context, spec string) (string, error) {
	out, err := run(ctx, r.root, "show", spec)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
		// Path does not exist at that version.
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

// run executes git with the given arguments in dir and returns its stdout. Stderr is folded
// into the error.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
