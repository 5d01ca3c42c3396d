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
	"time"

	"github.com/spf13/cobra"

	"github.com/nhemsley/changeology/diff"
	"github.com/nhemsley/changeology/diff/textdiff"
	"github.com/nhemsley/changeology/diff/worktree"
)

var diffFlags struct {
	context  int
	words    bool
	chars    bool
	patience bool
	ignoreWS bool
	eol      string
	timeout  time.Duration
}

var diffCmd = &cobra.Command{
	Use:   "diff <path> | diff <old-file> <new-file>",
	Short: "Diff a repository file against HEAD, or two files against each other",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := diffOptions()
		if err != nil {
			return err
		}

		if len(args) == 2 {
			old, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			new, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			out, err := textdiff.Unified(string(old), string(new), opts...)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		repo, err := worktree.Open(cmd.Context(), dir)
		if err != nil {
			return err
		}
		res, err := repo.FileDiff(cmd.Context(), args[0], opts...)
		if err != nil && res == nil {
			return err
		}
		printResult(args[0], res)
		return nil
	},
}

func init() {
	f := diffCmd.Flags()
	f.IntVar(&diffFlags.context, "context", 3, "matching lines surrounding each change")
	f.BoolVar(&diffFlags.words, "word", false, "diff word by word instead of line by line")
	f.BoolVar(&diffFlags.chars, "char", false, "diff character by character")
	f.BoolVar(&diffFlags.patience, "patience", false, "use patience diff")
	f.BoolVar(&diffFlags.ignoreWS, "ignore-ws", false, "ignore whitespace differences")
	f.StringVar(&diffFlags.eol, "eol", "preserve", "line-ending mode: preserve, unix, windows, macos, auto")
	f.DurationVar(&diffFlags.timeout, "timeout", 5*time.Second, "time budget before the diff is coarsened")
}

func diffOptions() ([]diff.Option, error) {
	opts := []diff.Option{
		diff.Context(diffFlags.context),
		diff.Timeout(diffFlags.timeout),
	}
	if diffFlags.words {
		opts = append(opts, textdiff.Words())
	}
	if diffFlags.chars {
		opts = append(opts, textdiff.Characters())
	}
	if diffFlags.patience {
		opts = append(opts, diff.Patience())
	}
	if diffFlags.ignoreWS {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	mode, err := eolMode(diffFlags.eol)
	if err != nil {
		return nil, err
	}
	opts = append(opts, textdiff.LineEndings(mode))
	return opts, nil
}

func eolMode(s string) (textdiff.LineEndingMode, error) {
	switch s {
	case "preserve":
		return textdiff.Preserve, nil
	case "unix":
		return textdiff.Unix, nil
	case "windows":
		return textdiff.Windows, nil
	case "macos":
		return textdiff.MacOS, nil
	case "auto":
		return textdiff.Auto, nil
	default:
		return 0, fmt.Errorf("unknown line-ending mode %q", s)
	}
}

func printResult(path string, res *textdiff.Result) {
	fmt.Printf("%s: +%d -%d (%d hunks)\n", path, res.AddedLines(), res.DeletedLines(), res.HunkCount())
	for _, h := range res.Hunks() {
		if !h.HasChanges() {
			continue
		}
		tag := ""
		if h.SecondaryStatus != textdiff.None {
			tag = " [" + h.SecondaryStatus.String() + "]"
		}
		fmt.Printf("@@ %s -%d,%d +%d,%d%s\n", h.Status,
			h.OldRange.Start+1, h.OldRange.Count, h.NewRange.Start+1, h.NewRange.Count, tag)
		for _, l := range h.Lines {
			switch l.Type {
			case textdiff.OldOnly:
				fmt.Printf("-%s", ensureEOL(l.Old))
			case textdiff.NewOnly:
				fmt.Printf("+%s", ensureEOL(l.New))
			default:
				fmt.Printf(" %s", ensureEOL(l.Old))
			}
		}
	}
}

func ensureEOL(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
