// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package linker

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/netlistio/ingest/pkg/model"
)

// topoSortMacros orders macros by inter-macro dependency (spec §4.5 step 4):
// an edge A -> B exists when macro A contains an instance whose resolved
// definition is macro B. The result is reverse-postorder DFS, which is
// exactly the ordering spec §8 requires: for every edge A -> B, A precedes
// B. On a cycle, the original (unordered) macro slice is returned alongside
// a CIRCULAR_DEPENDENCY error naming the cycle path; the pipeline does not
// recurse forever because grey (in-progress) nodes are never re-entered.
func topoSortMacros(macros []*model.Macro) ([]*model.Macro, *model.LinkError) {
	n := uint(len(macros))
	index := make(map[*model.Macro]uint, n)

	for i, m := range macros {
		index[m] = uint(i)
	}

	deps := buildDependencyEdges(macros, index)

	var (
		grey    = bitset.New(n)
		black   = bitset.New(n)
		stack   []uint
		ordered []*model.Macro
		cycle   []uint
	)

	var visit func(i uint) bool

	visit = func(i uint) bool {
		if black.Test(i) {
			return true
		}

		if grey.Test(i) {
			cycle = append(append([]uint{}, stack...), i)
			return false
		}

		grey.Set(i)

		stack = append(stack, i)

		for _, j := range deps[i] {
			if !visit(j) {
				return false
			}
		}

		stack = stack[:len(stack)-1]
		grey.Clear(i)
		black.Set(i)
		ordered = append(ordered, macros[i])

		return true
	}

	for i := uint(0); i < n; i++ {
		if !black.Test(i) && !visit(i) {
			return macros, cycleError(macros, cycle)
		}
	}

	reverse(ordered)

	return ordered, nil
}

func buildDependencyEdges(macros []*model.Macro, index map[*model.Macro]uint) [][]uint {
	deps := make([][]uint, len(macros))

	for i, m := range macros {
		seen := bitset.New(uint(len(macros)))

		for _, child := range m.Children {
			dep, ok := child.Definition.(*model.Macro)
			if !ok {
				continue
			}

			j, tracked := index[dep]
			if !tracked || seen.Test(j) {
				continue
			}

			seen.Set(j)
			deps[i] = append(deps[i], j)
		}
	}

	return deps
}

func reverse(macros []*model.Macro) {
	for l, r := 0, len(macros)-1; l < r; l, r = l+1, r-1 {
		macros[l], macros[r] = macros[r], macros[l]
	}
}

func cycleError(macros []*model.Macro, path []uint) *model.LinkError {
	names := make([]string, len(path))
	for i, idx := range path {
		names[i] = macros[idx].CellName()
	}

	return &model.LinkError{Kind: model.CircularDependency, Message: strings.Join(names, " -> ")}
}
