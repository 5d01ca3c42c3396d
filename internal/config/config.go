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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

import "time"

// Algorithm selects the edit-distance procedure used by the core differ.
type Algorithm int

const (
	// Myers' O(ND) algorithm in its linear-space variant. The default.
	Myers Algorithm = iota

	// Patience diff: anchor the diff on tokens that are unique in both inputs.
	Patience
)

// Granularity is the token unit the differ operates on.
type Granularity int

const (
	// Compare whole lines. The default.
	Line Granularity = iota

	// Compare words, segmented per Unicode UAX #29.
	Word

	// Compare Unicode scalar values.
	Character
)

// LineEnding describes how line terminators are canonicalized before tokenization.
type LineEnding int

const (
	// Split lines on any of \r\n, \r, \n but leave the terminator bytes alone. The default.
	Preserve LineEnding = iota

	// Rewrite all terminators to \n.
	Unix

	// Rewrite all terminators to \r\n.
	Windows

	// Rewrite all terminators to \r.
	MacOS

	// Count terminator forms across both inputs and pick the majority, ties go to Unix.
	Auto
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Algorithm used by the core differ.
	Algorithm Algorithm

	// Token unit for text diffs.
	Granularity Granularity

	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// If set, tokens are compared after collapsing whitespace runs and trimming.
	IgnoreWhitespace bool

	// Line terminator canonicalization applied before tokenization.
	LineEnding LineEnding

	// Upper bound on the wall-clock time spent by the core differ. On expiry the differ
	// returns a coarser but still valid result.
	Timeout time.Duration
}

// Default is the default configuration.
var Default = Config{
	Algorithm:        Myers,
	Granularity:      Line,
	Context:          3,
	IgnoreWhitespace: false,
	LineEnding:       Preserve,
	Timeout:          5 * time.Second,
}

// Flag identifies a single config entry. It is used to detect options being set on entry
// points that don't support them.
type Flag int

const (
	FlagContext Flag = 1 << iota
	FlagAlgorithm
	FlagTimeout
	FlagGranularity
	FlagIgnoreWhitespace
	FlagLineEnding
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case FlagContext:
		return "diff.Context"
	case FlagAlgorithm:
		return "diff.Patience"
	case FlagTimeout:
		return "diff.Timeout"
	case FlagGranularity:
		return "textdiff.Words/textdiff.Characters"
	case FlagIgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	case FlagLineEnding:
		return "textdiff.LineEndings"
	default:
		panic("never reached")
	}
}
