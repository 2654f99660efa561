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
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySet[K cmp.Ordered] map[K]struct{}

func (s keySet[K]) Add(k K) {
	s[k] = struct{}{}
}

func (s keySet[K]) AddSlice(other []K) {
	for _, k := range other {
		s.Add(k)
	}
}

func (s keySet[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

func (s keySet[K]) Len() int {
	return len(s)
}

func (s keySet[K]) Diff(other keySet[K]) keySet[K] {
	diff := keySet[K]{}
	for k := range s {
		if !other.Has(k) {
			diff.Add(k)
		}
	}
	return diff
}

func (s keySet[K]) ToSlice() []K {
	slice := make([]K, 0, len(s))
	for k := range s {
		slice = append(slice, k)
	}
	slices.Sort(slice)
	return slice
}

// idxsStr renders small index tuples as a string of digits, like "012".
func idxsStr(idxs []int) string {
	sb := strings.Builder{}
	for _, idx := range idxs {
		sb.WriteString(strconv.FormatInt((int64)(idx), 10))
	}
	return sb.String()
}

func tupleStr[T any](tuple []T) string {
	return fmt.Sprintf("%v", tuple)
}

func collectStrs[E any](g Generator[E], format func([]E) string) []string {
	var strs []string
	for g.Next() {
		strs = append(strs, format(g.Get()))
	}
	return strs
}

// requireSameSequence checks that got holds exactly the expected
// elements, without duplicates, in the expected order.
func requireSameSequence(t *testing.T, expected, got []string, msgAndArgs ...interface{}) {
	t.Helper()
	expectedSet := keySet[string]{}
	expectedSet.AddSlice(expected)
	require.Len(t, expected, expectedSet.Len(), "bug in testcase")
	failed := !assert.Len(t, got, len(expected), msgAndArgs...)
	gotSet := keySet[string]{}
	gotSet.AddSlice(got)
	if !assert.Equal(t, len(got), gotSet.Len(), "duplicated elements in generated sequence") {
		failed = true
	}
	missing := expectedSet.Diff(gotSet).ToSlice()
	extra := gotSet.Diff(expectedSet).ToSlice()
	if !assert.Empty(t, missing, "missing elements from generated sequence: %#v", missing) {
		failed = true
	}
	if !assert.Empty(t, extra, "extra elements in generated sequence: %#v", extra) {
		failed = true
	}
	if failed {
		t.FailNow()
	}
	for idx := 0; idx < len(got); idx++ {
		assert.Equal(t, expected[idx], got[idx], "bad value at index %d", idx)
	}
}

func TestKeySet(t *testing.T) {
	s1 := keySet[string]{}
	assert.Equal(t, 0, s1.Len())
	assert.False(t, s1.Has("foo"))
	s1.Add("foo")
	s1.Add("foo")
	assert.Equal(t, 1, s1.Len())
	assert.True(t, s1.Has("foo"))

	s1.AddSlice([]string{"c", "b", "a", "b"})
	assert.Equal(t, 4, s1.Len())

	s2 := keySet[string]{}
	s2.AddSlice([]string{"b", "c", "d"})
	assert.Equal(t, []string{"a", "foo"}, s1.Diff(s2).ToSlice())
	assert.Equal(t, []string{"d"}, s2.Diff(s1).ToSlice())
}
