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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nhemsley/changeology/diff/worktree"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the working copy and report changed files as they change",
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

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log.Printf("Watching %s, press Ctrl-C to stop", repo.Root())
		err = repo.Watch(ctx, func(paths []string) {
			for _, path := range paths {
				res, err := repo.FileDiff(ctx, path)
				if err != nil && res == nil {
					log.Printf("diffing %s: %v", path, err)
					continue
				}
				fmt.Printf("%s +%d -%d (%d hunks)\n", path, res.AddedLines(), res.DeletedLines(), res.HunkCount())
			}
		})
		if errors.Is(err, context.Canceled) {
			fmt.Print("\r")
			log.Printf("Shutting down")
			return nil
		}
		return err
	},
}
