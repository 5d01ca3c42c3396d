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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhemsley/changeology/diff/worktree"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List changed files with per-file hunk statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		repo, err := worktree.Open(cmd.Context(), dir)
		if err != nil {
			return err
		}
		files, err := repo.Status(cmd.Context())
		if err != nil {
			return err
		}
		for _, f := range files {
			// A timed-out diff still carries a coarse result worth listing.
			res, err := repo.FileDiff(cmd.Context(), f.Path)
			if err != nil && res == nil {
				return err
			}
			fmt.Printf("%2s %s +%d -%d\n", f.Code, f.Path, res.AddedLines(), res.DeletedLines())
		}
		return nil
	},
}
