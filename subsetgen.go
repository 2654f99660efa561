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
	"math"
)

// SubsetGen generates every subset of {0, ..., n-1} as a strictly
// increasing tuple. Subsets come ordered by size, and subsets of the
// same size in lexicographic order, starting with the empty one.
type SubsetGen struct {
	n    int
	size int
	comb *CombGen
	done bool
}

func NewSubsetGen(n int) (*SubsetGen, error) {
	if err := checkNonNegative("n", n); err != nil {
		return nil, err
	}
	return &SubsetGen{
		n:    n,
		comb: &CombGen{r: 0, n: n},
	}, nil
}

// NSubsets returns 2^n, the number of subsets generated by
// NewSubsetGen(n). The result saturates at math.MaxUint64 for n >= 64.
func NSubsets(n int) uint64 {
	if n < 0 {
		return 0
	}
	if n >= 64 {
		return math.MaxUint64
	}
	return (uint64)(1) << n
}

func (g *SubsetGen) Next() bool {
	if g.done {
		return false
	}
	for !g.comb.Next() {
		g.size++
		if g.size > g.n {
			g.done = true
			g.comb = nil
			return false
		}
		g.comb = &CombGen{r: g.size, n: g.n}
	}
	return true
}

// Get returns a copy of the current subset, or nil if there is none.
func (g *SubsetGen) Get() []int {
	if g.comb == nil {
		return nil
	}
	return g.comb.Get()
}
