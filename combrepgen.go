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

// CombRepGen generates all non-decreasing tuples of length r drawn
// from {0, ..., n-1}, in lexicographic order. Like CombGen it produces
// nothing when r > n.
type CombRepGen struct {
	r       int
	n       int
	idxs    []int
	started bool
	done    bool
}

func NewCombRepGen(r, n int) (*CombRepGen, error) {
	if err := checkRN(r, n); err != nil {
		return nil, err
	}
	return &CombRepGen{
		r:    r,
		n:    n,
		idxs: nil,
	}, nil
}

// NCombsRep returns the number of tuples generated by
// NewCombRepGen(r, n), that is C(n+r-1, r) for r <= n and zero
// otherwise.
func NCombsRep(r, n int) uint64 {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if r == 0 {
		return 1
	}
	return (uint64)(combin.Binomial(n+r-1, r))
}

func (g *CombRepGen) Next() bool {
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
		return true
	}
	l := g.n - 1
	for i := g.r - 1; i >= 0; i-- {
		if g.idxs[i] < l {
			g.idxs[i]++
			for i2 := i + 1; i2 < g.r; i2++ {
				g.idxs[i2] = g.idxs[i]
			}
			return true
		}
	}
	g.done = true
	g.idxs = nil
	return false
}

// Get returns a copy of the current tuple, or nil if there is none.
func (g *CombRepGen) Get() []int {
	if g.idxs == nil {
		return nil
	}
	return slices.Clone(g.idxs)
}
