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

// CombGen generates all strictly increasing tuples of length r drawn
// from {0, ..., n-1}, in lexicographic order.
type CombGen struct {
	r       int
	n       int
	idxs    []int
	started bool
	done    bool
}

// NewCombGen returns a generator of r-combinations of n indices. The
// generator is empty if r > n and yields a single empty tuple if r is
// zero.
func NewCombGen(r, n int) (*CombGen, error) {
	if err := checkRN(r, n); err != nil {
		return nil, err
	}
	return &CombGen{
		r:    r,
		n:    n,
		idxs: nil,
	}, nil
}

// NCombs returns the number of tuples generated by NewCombGen(r, n).
func NCombs(r, n int) uint64 {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	return (uint64)(combin.Binomial(n, r))
}

func (g *CombGen) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if g.r > g.n {
			g.done = true
			return false
		}
		g.idxs = make([]int, g.r)
		for i := range g.idxs {
			g.idxs[i] = i
		}
		return true
	}
	i := g.r - 1
	l := g.n - 1
	for i >= 0 {
		if g.idxs[i] < l {
			g.idxs[i]++
			for i2 := i + 1; i2 < g.r; i2++ {
				g.idxs[i2] = g.idxs[i2-1] + 1
			}
			return true
		}
		i--
		l--
	}
	g.done = true
	g.idxs = nil
	return false
}

// Get returns a copy of the current tuple, or nil if Next has not
// been called yet or the generator is exhausted.
func (g *CombGen) Get() []int {
	if g.idxs == nil {
		return nil
	}
	return slices.Clone(g.idxs)
}
