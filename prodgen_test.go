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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func TestNProd(t *testing.T) {
	assert.Equal(t, (uint64)(1), NProd(1))
	assert.Equal(t, (uint64)(4), NProd(1, 2, 2))
	assert.Equal(t, (uint64)(16), NProd(2, 2, 2))
	assert.Equal(t, (uint64)(0), NProd(1, 2, 0, 3))
	assert.Equal(t, (uint64)(0), NProd(0, 2))
	assert.Equal(t, (uint64)(1)<<60, NProd(3, 1<<20))
	assert.Equal(t, (uint64)(math.MaxUint64), NProd(2, 1<<20, 1<<20, 1<<20))
	assert.Equal(t, (uint64)(math.MaxUint64), NProd(64, 2, 2))
	assert.Equal(t, (uint64)(0), NProd(64, 2, 2, 0))
}

func TestProdGen(t *testing.T) {
	type testcase struct {
		name   string
		repeat int
		pools  [][]int
		prods  [][]int
	}
	testcases := []testcase{
		{
			name:   "no pools",
			repeat: 1,
			pools:  nil,
			prods:  [][]int{{}},
		},
		{
			name:   "no pools repeated",
			repeat: 3,
			pools:  nil,
			prods:  [][]int{{}},
		},
		{
			name:   "two pools",
			repeat: 1,
			pools:  [][]int{{1, 2}, {4, 5}},
			prods:  [][]int{{1, 4}, {1, 5}, {2, 4}, {2, 5}},
		},
		{
			name:   "uneven pools",
			repeat: 1,
			pools:  [][]int{{1, 2, 3}, {4, 5, 6}},
			prods:  [][]int{{1, 4}, {1, 5}, {1, 6}, {2, 4}, {2, 5}, {2, 6}, {3, 4}, {3, 5}, {3, 6}},
		},
		{
			name:   "single pool",
			repeat: 1,
			pools:  [][]int{{9, 8}},
			prods:  [][]int{{9}, {8}},
		},
		{
			name:   "repeated pool",
			repeat: 2,
			pools:  [][]int{{0, 1}},
			prods:  [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		{
			name:   "empty pool",
			repeat: 1,
			pools:  [][]int{{1, 2}, {}, {3}},
			prods:  nil,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			pg, err := NewProdGen(tc.repeat, tc.pools...)
			require.NoError(t, err)
			assert.Equal(t, tc.prods, Collect[int](pg))
		})
	}
}

func TestProdGenMixedValues(t *testing.T) {
	pg, err := NewProdGen[interface{}](1, []interface{}{"1", 1}, []interface{}{2, "2"})
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{{"1", 2}, {"1", "2"}, {1, 2}, {1, "2"}}, Collect[interface{}](pg))
}

func TestProdGenMatchesGonumOdometer(t *testing.T) {
	lens := []int{2, 3, 1, 4}
	pools := make([][]int, len(lens))
	for i, l := range lens {
		pools[i] = make([]int, l)
		for j := range pools[i] {
			pools[i][j] = j
		}
	}
	pg, err := NewProdGen(1, pools...)
	require.NoError(t, err)
	got := Collect[int](pg)
	expected := combin.Cartesian(lens)
	assert.Equal(t, expected, got)
	assert.Equal(t, NProd(1, lens...), (uint64)(len(got)))
}

func TestProdGenOwnsPools(t *testing.T) {
	a := []string{"a", "b"}
	pg, err := NewProdGen(2, a)
	require.NoError(t, err)
	a[0] = "z"
	require.True(t, pg.Next())
	assert.Equal(t, []string{"a", "a"}, pg.Get())
	count := 1
	for pg.Next() {
		count++
	}
	assert.Equal(t, 4, count)
	assert.False(t, pg.Next())
	assert.Nil(t, pg.Get())
}

func TestProdGenInvalidRepeat(t *testing.T) {
	for _, repeat := range []int{0, -1} {
		pg, err := NewProdGen(repeat, []int{1})
		assert.Nil(t, pg)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "repeat %d: %v", repeat, err)
	}
}
