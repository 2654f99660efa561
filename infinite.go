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

	"golang.org/x/exp/constraints"
)

// Number is satisfied by every integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counter yields start, start+step, start+2*step and so on, forever.
type Counter[N Number] struct {
	next N
	step N
}

func NewCounter[N Number](start, step N) *Counter[N] {
	return &Counter[N]{
		next: start,
		step: step,
	}
}

func (c *Counter[N]) Next() N {
	v := c.next
	c.next += c.step
	return v
}

// Cycle yields the elements of a non-empty slice in order, starting
// over after the last one, forever.
type Cycle[T any] struct {
	items []T
	idx   int
}

// NewCycle returns a Cycle over a copy of items. It fails if items is
// empty.
func NewCycle[T any](items []T) (*Cycle[T], error) {
	if len(items) == 0 {
		return nil, invalidArg("cannot cycle over an empty slice")
	}
	return &Cycle[T]{
		items: slices.Clone(items),
	}, nil
}

func (c *Cycle[T]) Next() T {
	v := c.items[c.idx]
	c.idx = (c.idx + 1) % len(c.items)
	return v
}

// Repeater yields the same value forever.
type Repeater[T any] struct {
	v T
}

func NewRepeater[T any](v T) *Repeater[T] {
	return &Repeater[T]{v: v}
}

func (r *Repeater[T]) Next() T {
	return r.v
}
