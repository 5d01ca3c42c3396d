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

import "errors"

// ErrorKind discriminates the failure modes of the engine.
type ErrorKind int

const (
	// An input is not valid UTF-8.
	InvalidEncoding ErrorKind = iota

	// The core differ exhausted its time budget. A valid but coarse [Result] is returned
	// alongside this error.
	TimedOut

	// The requested options cannot be combined.
	OptionConflict
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEncoding:
		return "invalid encoding"
	case TimedOut:
		return "timed out"
	case OptionConflict:
		return "option conflict"
	default:
		return "unknown error"
	}
}

// Error is the tagged error value reported by the engine. The engine never aborts: every
// failure is reported as a value and, for [TimedOut], accompanied by a usable result.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "textdiff: " + e.Kind.String()
	}
	return "textdiff: " + e.Kind.String() + ": " + e.Detail
}

// IsKind reports whether err is a textdiff [Error] of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
