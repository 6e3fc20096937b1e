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
package spice

import "github.com/netlistio/ingest/pkg/model"

// Result is what dispatching a single logical line against the SPICE format
// strategy can produce: a declaration/instance cell, a directive, or
// neither, if the line matched nothing recognised (spec §4.3).
type Result struct {
	Cell      model.Cell
	Directive Directive
}

// Dispatch applies the SPICE format strategy to a logical line in the order
// the original heuristic tries them: declarations first (`.subckt`,
// `.model`), then directives (`.include`, `.lib`, Cadence brackets), then
// instances. Declarations and directives are anchored to a line-initial
// keyword so trying them first never misclassifies an instance line.
func Dispatch(line string) (Result, bool) {
	if cell := ParseDeclaration(line); cell != nil {
		return Result{Cell: cell}, true
	}

	if d, ok := ParseDirective(line); ok {
		return Result{Directive: d}, true
	}

	if inst := ParseInstance(line); inst != nil {
		return Result{Cell: inst}, true
	}

	return Result{}, false
}
