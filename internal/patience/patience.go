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

// Package patience implements patience diff.
//
// Patience diff anchors the comparison on tokens that appear exactly once in both inputs. The
// longest increasing subsequence of such anchor pairs is taken as matched, and the regions
// between consecutive anchors are compared recursively. Regions without any anchors fall back
// to Myers' algorithm. The resulting diffs are not always minimal, but the anchors keep unique
// lines aligned, which reads well for source code and prose.
package patience

import (
	"sort"
	"time"

	"github.com/nhemsley/changeology/diff/internal/config"
	"github.com/nhemsley/changeology/diff/internal/myers"
	"github.com/nhemsley/changeology/diff/internal/rvecs"
)

// Diff compares the contents of x and y and returns result vectors marking deletions in x and
// insertions in y. complete is false if the deadline derived from cfg.Timeout expired and parts
// of the result were coarsened.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool, complete bool) {
	rx, ry = rvecs.Make(x, y)
	d := differ[T]{x: x, y: y, rx: rx, ry: ry, deadline: myers.Deadline(cfg), complete: true}
	d.compare(0, len(x), 0, len(y))
	return rx, ry, d.complete
}

type differ[T comparable] struct {
	x, y     []T
	rx, ry   []bool
	deadline time.Time
	complete bool
}

// anchor is a pair of positions holding the same token, unique in both inputs.
type anchor struct {
	s, t int
}

func (d *differ[T]) compare(smin, smax, tmin, tmax int) {
	for smin < smax && tmin < tmax && d.x[smin] == d.y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && d.x[smax-1] == d.y[tmax-1] {
		smax--
		tmax--
	}

	switch {
	case smin == smax && tmin == tmax:
		return
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			d.ry[t] = true
		}
		return
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			d.rx[s] = true
		}
		return
	}

	if !d.deadline.IsZero() && time.Now().After(d.deadline) {
		d.complete = false
		for s := smin; s < smax; s++ {
			d.rx[s] = true
		}
		for t := tmin; t < tmax; t++ {
			d.ry[t] = true
		}
		return
	}

	anchors := d.anchors(smin, smax, tmin, tmax)
	if len(anchors) == 0 {
		// No unique token shared by both sides, let Myers sort out the rest.
		subrx, subry, ok := myers.Until(d.x[smin:smax], d.y[tmin:tmax], func(a, b T) bool { return a == b }, d.deadline)
		copy(d.rx[smin:smax], subrx[:smax-smin])
		copy(d.ry[tmin:tmax], subry[:tmax-tmin])
		d.complete = d.complete && ok
		return
	}

	ps, pt := smin, tmin
	for _, a := range anchors {
		d.compare(ps, a.s, pt, a.t)
		ps, pt = a.s+1, a.t+1
	}
	d.compare(ps, smax, pt, tmax)
}

// anchors returns an increasing sequence of positions of tokens that occur exactly once in
// x[smin:smax] and exactly once in y[tmin:tmax].
func (d *differ[T]) anchors(smin, smax, tmin, tmax int) []anchor {
	type occurrence struct {
		s, t   int
		nx, ny int
	}
	occ := make(map[T]*occurrence, smax-smin)
	for s := smin; s < smax; s++ {
		o := occ[d.x[s]]
		if o == nil {
			o = &occurrence{}
			occ[d.x[s]] = o
		}
		o.s = s
		o.nx++
	}
	for t := tmin; t < tmax; t++ {
		o := occ[d.y[t]]
		if o == nil {
			continue
		}
		o.t = t
		o.ny++
	}

	pairs := make([]anchor, 0, len(occ))
	for _, o := range occ {
		if o.nx == 1 && o.ny == 1 {
			pairs = append(pairs, anchor{o.s, o.t})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].s < pairs[j].s })

	return longestIncreasing(pairs)
}

// longestIncreasing returns the longest subsequence of pairs (sorted by s) whose t positions
// are strictly increasing, via patience sorting.
func longestIncreasing(pairs []anchor) []anchor {
	if len(pairs) == 0 {
		return nil
	}
	// piles[i] is the index into pairs of the smallest t that tops a pile of length i+1;
	// back[j] links each pair to the top of the previous pile at placement time.
	piles := make([]int, 0, len(pairs))
	back := make([]int, len(pairs))
	for j, p := range pairs {
		i := sort.Search(len(piles), func(i int) bool { return pairs[piles[i]].t >= p.t })
		if i > 0 {
			back[j] = piles[i-1]
		} else {
			back[j] = -1
		}
		if i == len(piles) {
			piles = append(piles, j)
		} else {
			piles[i] = j
		}
	}

	out := make([]anchor, len(piles))
	for i, j := len(piles)-1, piles[len(piles)-1]; i >= 0; i-- {
		out[i] = pairs[j]
		j = back[j]
	}
	return out
}
