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
	"iter"
	"slices"
)

// Generator is the pull protocol shared by the finite generators of
// this package.
type Generator[E any] interface {
	Next() bool
	Get() []E
}

var (
	_ Generator[int]    = &CombGen{}
	_ Generator[int]    = &CombRepGen{}
	_ Generator[int]    = &SubsetGen{}
	_ Generator[string] = &PermGen[string]{}
	_ Generator[string] = &ProdGen[string]{}
)

// Collect drains g and returns every tuple it generates.
func Collect[E any](g Generator[E]) [][]E {
	var out [][]E
	for g.Next() {
		out = append(out, g.Get())
	}
	return out
}

// tuples turns a generator factory into a sequence. Every range over
// the sequence gets a fresh generator.
func tuples[E any](mk func() Generator[E]) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		g := mk()
		for g.Next() {
			if !yield(g.Get()) {
				return
			}
		}
	}
}

// Combinations is the range-over-func form of NewCombGen. Arguments
// are validated here, not when the sequence is ranged over.
func Combinations(r, n int) (iter.Seq[[]int], error) {
	if _, err := NewCombGen(r, n); err != nil {
		return nil, err
	}
	return tuples(func() Generator[int] {
		return &CombGen{r: r, n: n}
	}), nil
}

// CombinationsWithReplacement is the range-over-func form of
// NewCombRepGen.
func CombinationsWithReplacement(r, n int) (iter.Seq[[]int], error) {
	if _, err := NewCombRepGen(r, n); err != nil {
		return nil, err
	}
	return tuples(func() Generator[int] {
		return &CombRepGen{r: r, n: n}
	}), nil
}

// Permutations is the range-over-func form of NewPermGen. The domain
// is copied once, here.
func Permutations[T any](domain []T, r int) (iter.Seq[[]T], error) {
	if err := checkNonNegative("r", r); err != nil {
		return nil, err
	}
	domain = slices.Clone(domain)
	return tuples(func() Generator[T] {
		return &PermGen[T]{domain: domain, r: r}
	}), nil
}

func FullPermutations[T any](domain []T) iter.Seq[[]T] {
	seq, _ := Permutations(domain, len(domain))
	return seq
}

// Product yields the cartesian product of pools.
func Product[T any](pools ...[]T) iter.Seq[[]T] {
	seq, _ := ProductRepeat(1, pools...)
	return seq
}

// ProductRepeat yields the cartesian product of pools repeated repeat
// times, so ProductRepeat(2, a, b) equals Product(a, b, a, b).
func ProductRepeat[T any](repeat int, pools ...[]T) (iter.Seq[[]T], error) {
	g, err := NewProdGen(repeat, pools...)
	if err != nil {
		return nil, err
	}
	all := g.pools
	return tuples(func() Generator[T] {
		return &ProdGen[T]{pools: all}
	}), nil
}

// ProductSeq is like ProductRepeat but takes sequences. Each sequence
// is consumed exactly once, before ProductSeq returns.
func ProductSeq[T any](repeat int, seqs ...iter.Seq[T]) (iter.Seq[[]T], error) {
	if repeat < 1 {
		return nil, invalidArg("repeat (=%d) < 1", repeat)
	}
	pools := make([][]T, 0, len(seqs))
	for _, s := range seqs {
		pools = append(pools, slices.Collect(s))
	}
	return ProductRepeat(repeat, pools...)
}

// Subsets is the range-over-func form of NewSubsetGen.
func Subsets(n int) (iter.Seq[[]int], error) {
	if _, err := NewSubsetGen(n); err != nil {
		return nil, err
	}
	return tuples(func() Generator[int] {
		g, _ := NewSubsetGen(n)
		return g
	}), nil
}

// Count yields start, start+step and so on. It never ends on its own.
func Count[N Number](start, step N) iter.Seq[N] {
	return func(yield func(N) bool) {
		c := NewCounter(start, step)
		for yield(c.Next()) {
		}
	}
}

// CycleSeq yields the elements of items over and over.
func CycleSeq[T any](items []T) (iter.Seq[T], error) {
	if _, err := NewCycle(items); err != nil {
		return nil, err
	}
	items = slices.Clone(items)
	return func(yield func(T) bool) {
		c := &Cycle[T]{items: items}
		for yield(c.Next()) {
		}
	}, nil
}

// Repeat yields v forever.
func Repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}

// RepeatN yields v exactly times times.
func RepeatN[T any](v T, times int) (iter.Seq[T], error) {
	if err := checkNonNegative("times", times); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := 0; i < times; i++ {
			if !yield(v) {
				return
			}
		}
	}, nil
}
