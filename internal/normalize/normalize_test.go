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

package normalize

import (
	"testing"

	"github.com/nhemsley/changeology/diff/internal/config"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     config.LineEnding
	}{
		{
			name: "all-unix",
			old:  "a\nb\n",
			new:  "a\nb\nc\n",
			want: config.Unix,
		},
		{
			name: "all-windows",
			old:  "a\r\nb\r\n",
			new:  "a\r\n",
			want: config.Windows,
		},
		{
			name: "all-macos",
			old:  "a\rb\r",
			new:  "a\r",
			want: config.MacOS,
		},
		{
			name: "majority-wins",
			old:  "a\r\nb\nc\n",
			new:  "d\n",
			want: config.Unix,
		},
		{
			name: "tie-resolves-to-unix",
			old:  "a\r\n",
			new:  "b\n",
			want: config.Unix,
		},
		{
			name: "no-terminators",
			old:  "a",
			new:  "b",
			want: config.Unix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.old, tt.new); got != tt.want {
				t.Errorf("Detect(%q, %q) = %v, want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestLineEndings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode config.LineEnding
		want string
	}{
		{
			name: "preserve",
			in:   "a\r\nb\rc\n",
			mode: config.Preserve,
			want: "a\r\nb\rc\n",
		},
		{
			name: "to-unix",
			in:   "a\r\nb\rc\n",
			mode: config.Unix,
			want: "a\nb\nc\n",
		},
		{
			name: "to-windows",
			in:   "a\r\nb\rc\n",
			mode: config.Windows,
			want: "a\r\nb\r\nc\r\n",
		},
		{
			name: "to-macos",
			in:   "a\r\nb\rc\n",
			mode: config.MacOS,
			want: "a\rb\rc\r",
		},
		{
			name: "no-terminators-unchanged",
			in:   "abc",
			mode: config.Unix,
			want: "abc",
		},
		{
			name: "empty",
			in:   "",
			mode: config.Windows,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineEndings(tt.in, tt.mode); got != tt.want {
				t.Errorf("LineEndings(%q, %v) = %q, want %q", tt.in, tt.mode, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"foo", "foo"},
		{"  foo   bar  ", "foo bar"},
		{"foo\tbar\n", "foo bar"},
		{"\t \n", ""},
	}

	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
