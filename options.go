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

package diff

import (
	"time"

	"github.com/nhemsley/changeology/diff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.FlagContext
	}
}

// Patience selects the patience diff algorithm. It anchors the diff on elements that appear
// exactly once in both inputs, which tends to produce more readable diffs for prose and source
// code at the cost of not always being minimal. The default is Myers' algorithm.
func Patience() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Algorithm = config.Patience
		return config.FlagAlgorithm
	}
}

// Timeout bounds the wall-clock time spent by the core differ. When the budget is exhausted,
// the remaining input is reported as a plain deletion followed by an insertion instead of being
// compared further; the result is coarser but still a valid edit script. The default is 5s.
//
// Non-positive durations disable the bound.
func Timeout(d time.Duration) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Timeout = d
		return config.FlagTimeout
	}
}
