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

// Package impl selects the diff algorithm backing the comparison functions of this module and
// hides the choice from the user-facing packages.
package impl

import (
	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/myers"
	"github.com/nhemsley/changeology/diff/internal/patience"
)

// Diff compares the contents of x and y using the algorithm selected in cfg and returns result
// vectors marking deletions in x and insertions in y. complete is false if the time budget
// expired and parts of the result were coarsened.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool, complete bool) {
	switch cfg.Algorithm {
	case config.Patience:
		return patience.Diff(x, y, cfg)
	default:
		return myers.Diff(x, y, cfg)
	}
}

// DiffFunc is like [Diff] but uses the provided equality comparison. Only Myers' algorithm is
// available: patience diff needs to hash tokens, which an equality function doesn't permit.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool, complete bool) {
	return myers.DiffFunc(x, y, eq, cfg)
}
