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
package model

// ParseResult is what the chunk parser produces for a single ParseRegion:
// the cells (macros, models, top-level instances) declared within it, any
// syntax errors encountered, and the directives discovered that the
// orchestrator still needs to act on (spec §3, §4.3).
type ParseResult struct {
	Region     ParseRegion
	Cells      []Cell
	Errors     []*ParseError
	Includes   []IncludeDirective
	Libraries  []LibraryDirective
}
