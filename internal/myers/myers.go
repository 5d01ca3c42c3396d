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

// Package myers implements Myers' diff algorithm in the linear-space variant described in
// section 4.2 of the paper.
//
// The algorithm models all edit scripts between x and y as paths through a grid in which a
// horizontal edge is a deletion, a vertical edge an insertion, and a diagonal edge a match. A
// minimal edit script corresponds to a path from the top-left corner to the bottom-right corner
// with the fewest non-diagonal edges. The linear-space variant finds the middle segment of such
// a path by searching forwards and backwards simultaneously and recurses into the two remaining
// rectangles.
//
// The search is exact. A caller-supplied deadline bounds the wall-clock work: when it expires,
// the rectangle under consideration is reported as a plain deletion of its x-side followed by an
// insertion of its y-side, which keeps the result a valid (if coarse) edit script.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1,
// 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers

import (
	"math"
	"time"

	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/rvecs"
)

// checkInterval is the number of d-iterations between deadline checks in the middle-segment
// search. The search cost per iteration grows with d, so early iterations are batched.
const checkInterval = 16

// Diff compares the contents of x and y and returns result vectors marking deletions in x and
// insertions in y. complete is false if the deadline derived from cfg.Timeout expired and parts
// of the result were coarsened.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool, complete bool) {
	return Until(x, y, func(a, b T) bool { return a == b }, Deadline(cfg))
}

// DiffFunc is like [Diff] but uses the provided equality comparison.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool, complete bool) {
	return Until(x, y, eq, Deadline(cfg))
}

// Deadline translates cfg.Timeout into an absolute deadline. The zero time disables the bound.
func Deadline(cfg config.Config) time.Time {
	if cfg.Timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(cfg.Timeout)
}

// Until compares x and y with an explicit deadline. The zero deadline disables the bound.
func Until[T any](x, y []T, eq func(a, b T) bool, deadline time.Time) (rx, ry []bool, complete bool) {
	rx, ry = rvecs.Make(x, y)

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix and suffix, they can never contain an edit.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax && tmin == tmax:
		return rx, ry, true
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry, true
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry, true
	}

	// v-arrays for the forward and backward searches. v[v0+k] holds the s-coordinate of the
	// endpoint of the furthest reaching d-path on diagonal k = s - t; t follows from t = s - k.
	// Two extra elements on either side act as borders so the k-loops need no special cases.
	vlen := 2*(len(x)+len(y)) + 3
	buf := make([]int, 2*vlen)

	m := &search[T]{
		x:        x,
		y:        y,
		eq:       eq,
		vf:       buf[:vlen],
		vb:       buf[vlen:],
		v0:       len(y) + 1,
		rx:       rx,
		ry:       ry,
		deadline: deadline,
	}
	m.compare(smin, smax, tmin, tmax)
	return rx, ry, !m.expired
}

type search[T any] struct {
	x, y []T
	eq   func(a, b T) bool

	vf, vb []int
	v0     int

	rx, ry []bool

	deadline time.Time
	expired  bool
}

// compare fills the result vectors for the rectangle (smin, tmin) to (smax, tmax).
func (m *search[T]) compare(smin, smax, tmin, tmax int) {
	// Subrectangles produced by split can carry fresh common prefixes or suffixes; strip them
	// so that split can assume the corners differ.
	for smin < smax && tmin < tmax && m.eq(m.x[smin], m.y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && m.eq(m.x[smax-1], m.y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		if m.expired {
			m.coarsen(smin, smax, tmin, tmax)
			return
		}
		s0, s1, t0, t1, ok := m.split(smin, smax, tmin, tmax)
		if !ok {
			m.coarsen(smin, smax, tmin, tmax)
			return
		}
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// coarsen reports the whole rectangle as a deletion followed by an insertion.
func (m *search[T]) coarsen(smin, smax, tmin, tmax int) {
	for s := smin; s < smax; s++ {
		m.rx[s] = true
	}
	for t := tmin; t < tmax; t++ {
		m.ry[t] = true
	}
}

// split finds the endpoints of a, potentially empty, run of diagonals in the middle of a
// minimal path from (smin, tmin) to (smax, tmax).
//
// The inputs must not share a common prefix or suffix inside the rectangle and the rectangle
// must be non-empty in both dimensions. ok is false if the deadline expired before the middle
// segment was found.
func (m *search[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int, ok bool) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// t = s - k bounds the diagonals that stay inside the rectangle.
	kmin, kmax := smin-tmax, smax-tmin

	// The forward search starts on the diagonal through the top-left corner, the backward
	// search on the diagonal through the bottom-right corner. Numbering both searches in the
	// same k-space avoids any conversion when testing for overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// A minimal path has an odd length exactly when N-M is odd. Forward and backward paths can
	// only meet on diagonals of matching parity, so each direction only needs to test for
	// overlap when the parity works out.
	odd := (N-M)%2 != 0

	// The corners differ, so there is no 0-path and the d-loop can start at 1 with the d=0
	// result seeded directly.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		if !m.deadline.IsZero() && d%checkInterval == 0 && time.Now().After(m.deadline) {
			m.expired = true
			return 0, 0, 0, 0, false
		}

		// Forward search. Grow the band of diagonals unless it would leave the rectangle;
		// when growing, seed the border element so the decision below picks the in-band
		// neighbor.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// A furthest reaching d-path on diagonal k extends a (d-1)-path on diagonal k-1
			// with a deletion, or one on diagonal k+1 with an insertion, whichever reaches
			// further. Ties prefer the deletion.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Extend along the diagonal as far as possible.
			ms, mt := s, t
			for s < smax && t < tmax && m.eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ms, s, mt, t, true
			}
		}

		// Backward search, mirror image of the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			ms, mt := s, t
			for s > smin && t > tmin && m.eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, ms, t, mt, true
			}
		}
	}
}
