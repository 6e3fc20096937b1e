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

// IncludeDirective is a `.include "file"` / `.inc` statement, or one of the
// Cadence bracketed forms. When the referenced file cannot be resolved, a
// strict directive is skipped with a logged warning and a lenient one is
// skipped silently; neither fails compilation (spec §6, "path resolution
// order").
type IncludeDirective struct {
	Path   string
	Strict bool
}

// LibraryDirective is a `.lib <filename> [<section>]` statement. When
// Section is non-empty it references a named section within Path; when
// empty it behaves exactly like an IncludeDirective over the whole of Path
// (spec §4.4). The bare `.lib <name>` / `.endl [<name>]` structural form
// that marks a section's boundaries inside a library file is not modeled
// here at all - it is consumed directly by the library section extractor
// and never surfaces as a directive (spec §4.2).
type LibraryDirective struct {
	Path    string
	Section string
}
