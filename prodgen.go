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
	"math/bits"
	"slices"
)

// ProdGen generates the cartesian product of a list of pools. The last
// pool varies fastest, as in nested loops with the last pool innermost.
type ProdGen[T any] struct {
	pools   [][]T
	idxs    []int
	started bool
	done    bool
}

// NewProdGen returns a generator of the cartesian product of pools,
// with the list of pools repeated repeat times. Every pool is copied
// once and the copy is shared by all repetitions. No pools yield a
// single empty tuple; an empty pool yields nothing.
func NewProdGen[T any](repeat int, pools ...[]T) (*ProdGen[T], error) {
	if repeat < 1 {
		return nil, invalidArg("repeat (=%d) < 1", repeat)
	}
	owned := make([][]T, 0, len(pools))
	for _, pool := range pools {
		owned = append(owned, slices.Clone(pool))
	}
	all := make([][]T, 0, len(owned)*repeat)
	for i := 0; i < repeat; i++ {
		all = append(all, owned...)
	}
	return &ProdGen[T]{
		pools: all,
	}, nil
}

// NProd returns the number of tuples in the product of pools of the
// given lengths repeated repeat times. The result saturates at
// math.MaxUint64.
func NProd(repeat int, lens ...int) uint64 {
	if repeat < 1 {
		return 0
	}
	for _, l := range lens {
		if l <= 0 {
			return 0
		}
	}
	total := (uint64)(1)
	for i := 0; i < repeat; i++ {
		for _, l := range lens {
			hi, lo := bits.Mul64(total, (uint64)(l))
			if hi != 0 {
				return math.MaxUint64
			}
			total = lo
		}
	}
	return total
}

func (g *ProdGen[T]) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		for _, pool := range g.pools {
			if len(pool) == 0 {
				g.done = true
				return false
			}
		}
		g.idxs = make([]int, len(g.pools))
		return true
	}
	for i := len(g.idxs) - 1; i >= 0; i-- {
		g.idxs[i]++
		if g.idxs[i] < len(g.pools[i]) {
			return true
		}
		g.idxs[i] = 0
	}
	g.done = true
	g.idxs = nil
	return false
}

// Get returns a copy of the current tuple, or nil if there is none.
func (g *ProdGen[T]) Get() []T {
	if g.idxs == nil {
		return nil
	}
	tuple := make([]T, len(g.idxs))
	for i, idx := range g.idxs {
		tuple[i] = g.pools[i][idx]
	}
	return tuple
}
