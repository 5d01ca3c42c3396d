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

package textdiff

import (
	"github.com/nhemsley/changeology/diff"
	"github.com/nhemsley/changeology/diff/internal/config"
)

// Words switches the differ to word granularity: tokens are UAX #29 word segments over the
// whole input rather than lines. Hunk ranges and line types then count word tokens.
func Words() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Granularity = config.Word
		return config.FlagGranularity
	}
}

// Characters switches the differ to character granularity: tokens are Unicode scalar values.
func Characters() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Granularity = config.Character
		return config.FlagGranularity
	}
}

// IgnoreWhitespace compares tokens after collapsing every maximal whitespace run to a single
// space and trimming. The content surfaced in hunks keeps its original bytes; only the
// comparison is affected.
func IgnoreWhitespace() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.FlagIgnoreWhitespace
	}
}

// LineEndingMode selects the pre-diff canonicalization of line terminators.
type LineEndingMode int

const (
	// Split on any of \r\n, \r, \n without rewriting the terminator bytes. The default.
	Preserve LineEndingMode = iota

	// Rewrite all terminators to \n.
	Unix

	// Rewrite all terminators to \r\n.
	Windows

	// Rewrite all terminators to \r.
	MacOS

	// Detect the predominant terminator across both inputs; ties resolve to Unix.
	Auto
)

// LineEndings selects how line terminators are canonicalized before tokenization.
func LineEndings(mode LineEndingMode) diff.Option {
	return func(cfg *config.Config) config.Flag {
		switch mode {
		case Unix:
			cfg.LineEnding = config.Unix
		case Windows:
			cfg.LineEnding = config.Windows
		case MacOS:
			cfg.LineEnding = config.MacOS
		case Auto:
			cfg.LineEnding = config.Auto
		default:
			cfg.LineEnding = config.Preserve
		}
		return config.FlagLineEnding
	}
}
