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
package compiler

import (
	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/source"
	"github.com/netlistio/ingest/pkg/spice"
)

// parseChunk folds a single region's bytes into logical lines and dispatches
// each through the SPICE format strategy, applying the region emission rule
// of spec §4.3: a Macro region's first cell must be its subcircuit header,
// and every instance after it becomes a child of that macro; a Global
// region's cells are appended directly to the result's top-level list.
//
// A `.subckt`...`.ends` pair found mid-stream inside a flat Global region
// (library-section content is never re-scanned, spec §4.2 step 2) is given
// the same shallow child-parsing treatment a library content resolver would
// give it (spec §4.5): its header opens an inline macro scope that closes on
// the matching `.ends`, rather than being dropped as an ordinary top-level
// cell with no children.
//
// srcFile wraps the whole file region belongs to, so a ParseError raised
// here can resolve the line it occurred on; line offsets from the chunk
// parser are relative to data, which may be a sub-slice of srcFile's
// contents starting at region.Start, so they are rebased before use.
func parseChunk(region model.ParseRegion, srcFile *source.File, data []byte, skipTitle bool) model.ParseResult {
	result := model.ParseResult{Region: region}

	cp := spice.NewChunkParser(data, skipTitle)

	var (
		macro        *model.Macro
		openedInline bool
	)

	for _, line := range cp.Collect() {
		if macro != nil && openedInline && spice.MatchesMacroEnd([]byte(line.Text)) {
			macro = nil
			openedInline = false

			continue
		}

		dispatched, ok := spice.Dispatch(line.Text)
		if !ok {
			continue
		}

		if dispatched.Cell != nil {
			if header, isMacro := dispatched.Cell.(*model.Macro); isMacro && macro == nil {
				macro = header
				openedInline = region.Type != model.Macro
				result.Cells = append(result.Cells, macro)

				continue
			}

			if region.Type == model.Macro && macro == nil {
				offset := region.Start + line.Start
				result.Errors = append(result.Errors, &model.ParseError{
					Filepath: region.Filepath,
					File:     srcFile,
					Span:     source.NewSpan(offset, offset),
					Message:  "macro region does not open with a subcircuit header",
				})

				continue
			}

			if macro != nil {
				// Only Instance children are tracked on a macro body
				// (model.Macro.Children). A `.model` declared inside a
				// subcircuit body is registered the same way a top-level one
				// is - the linker's model resolver is a single flat table
				// with no macro-local scoping - so it is appended to the
				// result's top-level cell list rather than threaded through
				// a second child slice.
				if inst, isInstance := dispatched.Cell.(*model.Instance); isInstance {
					inst.Parent = macro
					macro.Children = append(macro.Children, inst)
					continue
				}

				if _, isModel := dispatched.Cell.(*model.Model); isModel {
					result.Cells = append(result.Cells, dispatched.Cell)
				}

				continue
			}

			result.Cells = append(result.Cells, dispatched.Cell)

			continue
		}

		if dispatched.Directive.Include != nil {
			result.Includes = append(result.Includes, *dispatched.Directive.Include)
		}

		if dispatched.Directive.Library != nil {
			result.Libraries = append(result.Libraries, *dispatched.Directive.Library)
		}
	}

	return result
}
