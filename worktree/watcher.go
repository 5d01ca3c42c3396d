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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reports file changes inside the worktree until ctx is cancelled. Every batch of
// filesystem events results in one call to fn with the paths that changed, relative to the
// worktree root. Hidden directories, including .git, are not watched; index and HEAD updates
// surface through the files they touch.
func (r *Repo) Watch(ctx context.Context, fn func(paths []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watchDir(watcher, r.root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			return err
		case event := <-watcher.Events:
			if event.Has(fsnotify.Chmod) {
				continue
			}

			// New directories need watches of their own; removed ones drop theirs.
			switch stat, serr := os.Stat(event.Name); {
			case serr == nil && event.Has(fsnotify.Create) && stat.IsDir():
				if err := watchDir(watcher, event.Name); err != nil {
					return err
				}
			case os.IsNotExist(serr) && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)):
				watcher.Remove(event.Name)
			}

			paths := []string{r.relPath(event.Name)}
			for drained := false; !drained; {
				select {
				case event := <-watcher.Events:
					if event.Has(fsnotify.Chmod) {
						continue
					}
					paths = append(paths, r.relPath(event.Name))
				default:
					drained = true
				}
			}
			fn(paths)
		}
	}
}

func (r *Repo) relPath(name string) string {
	rel, err := filepath.Rel(r.root, name)
	if err != nil {
		return name
	}
	return filepath.ToSlash(rel)
}

func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
