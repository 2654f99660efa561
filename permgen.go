// Copyright Krzesimir Nowak
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

package itergen

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// permFrame is one level of the permutation recursion. rest holds the
// positions of the domain elements still available at this level and
// is owned by the frame; pos picks the current one.
type permFrame struct {
	rest []int
	pos  int
}

// PermGen generates all ordered r-tuples of distinct elements of a
// domain. The first element varies slowest: for every domain element
// e, in domain order, PermGen yields e followed by every
// (r-1)-permutation of the domain with e removed.
//
// Elements are told apart by position, not by value, so a domain with
// repeated values yields repeated-looking tuples.
type PermGen[T any] struct {
	domain  []T
	r       int
	frames  []permFrame
	started bool
	done    bool
}

// NewPermGen returns a generator of r-permutations of domain. The
// domain is copied. The generator is empty if r > len(domain) and
// yields a single empty tuple if r is zero.
func NewPermGen[T any](domain []T, r int) (*PermGen[T], error) {
	if err := checkNonNegative("r", r); err != nil {
		return nil, err
	}
	return &PermGen[T]{
		domain: slices.Clone(domain),
		r:      r,
	}, nil
}

// NewFullPermGen returns a generator of all orderings of domain.
func NewFullPermGen[T any](domain []T) *PermGen[T] {
	g, _ := NewPermGen(domain, len(domain))
	return g
}

// NPerms returns k!/(k-r)!, the number of tuples generated for a domain
// of k elements, or zero if r > k.
func NPerms(r, k int) uint64 {
	if r < 0 || k < 0 || r > k {
		return 0
	}
	return (uint64)(combin.NumPermutations(k, r))
}

func (g *PermGen[T]) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if g.r > len(g.domain) {
			g.done = true
			return false
		}
		g.frames = make([]permFrame, g.r)
		if g.r > 0 {
			all := make([]int, len(g.domain))
			for i := range all {
				all[i] = i
			}
			g.frames[0] = permFrame{rest: all}
			g.descend(1)
		}
		return true
	}
	for i := g.r - 1; i >= 0; i-- {
		f := &g.frames[i]
		f.pos++
		if f.pos < len(f.rest) {
			g.descend(i + 1)
			return true
		}
	}
	g.done = true
	g.frames = nil
	return false
}

// descend rebuilds the frames from level onwards, each one starting at
// the first element left over by its parent.
func (g *PermGen[T]) descend(level int) {
	for i := level; i < g.r; i++ {
		parent := g.frames[i-1]
		rest := make([]int, 0, len(parent.rest)-1)
		rest = append(rest, parent.rest[:parent.pos]...)
		rest = append(rest, parent.rest[parent.pos+1:]...)
		g.frames[i] = permFrame{rest: rest}
	}
}

// Get returns a copy of the current tuple, or nil if there is none.
func (g *PermGen[T]) Get() []T {
	if g.frames == nil {
		return nil
	}
	tuple := make([]T, g.r)
	for i, f := range g.frames {
		tuple[i] = g.domain[f.rest[f.pos]]
	}
	return tuple
}

// Indices returns the domain positions making up the current tuple, or
// nil if there is none.
func (g *PermGen[T]) Indices() []int {
	if g.frames == nil {
		return nil
	}
	idxs := make([]int, g.r)
	for i, f := range g.frames {
		idxs[i] = f.rest[f.pos]
	}
	return idxs
}
