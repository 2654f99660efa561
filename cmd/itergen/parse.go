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

package main

import (
	"fmt"
	"strconv"
	"strings"
)

type kind string

const (
	kindCombinations                kind = "combinations"
	kindCombinationsWithReplacement kind = "combinations_with_replacement"
	kindPermutations                kind = "permutations"
	kindProduct                     kind = "product"
	kindSubsets                     kind = "subsets"
	kindCount                       kind = "count"
	kindCycle                       kind = "cycle"
	kindRepeat                      kind = "repeat"
)

var allKinds = []kind{
	kindCombinations,
	kindCombinationsWithReplacement,
	kindPermutations,
	kindProduct,
	kindSubsets,
	kindCount,
	kindCycle,
	kindRepeat,
}

func strToKind(s string) (kind, error) {
	if s == "" {
		return "", fmt.Errorf("empty kind string")
	}
	for _, k := range allKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %s, expected one of %s", s, kindsStr())
}

func kindsStr() string {
	strs := make([]string, 0, len(allKinds))
	for _, k := range allKinds {
		strs = append(strs, string(k))
	}
	return strings.Join(strs, ", ")
}

func (k kind) infinite() bool {
	switch k {
	case kindCount, kindCycle, kindRepeat:
		return true
	default:
		return false
	}
}

// strToItems splits a comma-separated list. An empty string is an
// empty list.
func strToItems(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// strToPools parses a semicolon-separated list of comma-separated
// pools, like 1,2;a,b. An empty segment is an empty pool.
func strToPools(s string) ([][]string, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	pools := make([][]string, 0, len(parts))
	for idx, part := range parts {
		pool := strToItems(part)
		for _, item := range pool {
			if item == "" {
				return nil, fmt.Errorf("empty item in pool %d (%s)", idx, part)
			}
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

// itemToValue turns numeric items into numbers so they are printed
// unquoted in YAML output.
func itemToValue(item string) interface{} {
	if i, err := strconv.ParseInt(item, 10, 64); err == nil {
		return i
	}
	return item
}

func itemsToValues(items []string) []interface{} {
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, itemToValue(item))
	}
	return values
}
