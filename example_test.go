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

package diff_test

import (
	"fmt"

	"github.com/nhemsley/changeology/diff"
)

func ExampleEdits() {
	x := []string{"a", "b", "c"}
	y := []string{"a", "x", "c"}
	for _, edit := range diff.Edits(x, y) {
		switch edit.Op {
		case diff.Equal:
			fmt.Printf(" %s\n", edit.X)
		case diff.Delete:
			fmt.Printf("-%s\n", edit.X)
		case diff.Insert:
			fmt.Printf("+%s\n", edit.Y)
		}
	}
	// Output:
	//  a
	// -b
	// +x
	//  c
}

// Group the edits between two documents into hunks with one matching line of context around
// each change, similar to what diff -U1 would produce.
func ExampleHunks() {
	x := []string{"L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8"}
	y := []string{"L1", "X2", "L3", "L4", "L5", "X6", "L7", "L8"}
	for _, h := range diff.Hunks(x, y, diff.Context(1)) {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case diff.Equal:
				fmt.Printf(" %s\n", edit.X)
			case diff.Delete:
				fmt.Printf("-%s\n", edit.X)
			case diff.Insert:
				fmt.Printf("+%s\n", edit.Y)
			}
		}
	}
	// Output:
	// @@ -1,3 +1,3 @@
	//  L1
	// -L2
	// +X2
	//  L3
	// @@ -5,3 +5,3 @@
	//  L5
	// -L6
	// +X6
	//  L7
}
