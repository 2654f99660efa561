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

// Package itergen provides lazy generators of combinatorial sequences:
// combinations, combinations with replacement, k-permutations and
// cartesian products, together with a few trivial infinite sequences.
//
// Every finite generator follows the same pull protocol:
//
//	g, err := itergen.NewCombGen(2, 3)
//	if err != nil {
//		// negative arguments
//	}
//	for g.Next() {
//		tuple := g.Get()
//		// ...
//	}
//
// Get returns a fresh slice on every call, so the caller may keep or
// modify it. A generator that returned false from Next stays exhausted.
// Generators are not safe for concurrent use.
package itergen
