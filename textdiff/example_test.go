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

package textdiff_test

import (
	"fmt"

	"github.com/nhemsley/changeology/diff/textdiff"
)

func ExampleDiff() {
	res, err := textdiff.Diff("A\nB\nC\n", "A\nX\nC\n")
	if err != nil {
		panic(err)
	}
	for _, h := range res.Hunks() {
		fmt.Printf("%v hunk, old %d-%d, new %d-%d\n",
			h.Status, h.OldRange.Start, h.OldRange.End(), h.NewRange.Start, h.NewRange.End())
		for _, l := range h.Lines {
			fmt.Printf("  %v\n", l.Type)
		}
	}
	fmt.Printf("+%d -%d\n", res.AddedLines(), res.DeletedLines())
	// Output:
	// Modified hunk, old 0-3, new 0-3
	//   Both
	//   OldOnly
	//   NewOnly
	//   Both
	// +1 -1
}

func ExampleUnified() {
	out, err := textdiff.Unified("a\nb\nc\n", "a\nx\nc\n")
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	//  a
	// -b
	// +x
	//  c
}
