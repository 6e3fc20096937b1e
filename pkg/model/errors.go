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

import (
	"fmt"

	"github.com/netlistio/ingest/pkg/source"
)

// ParseError is a syntax-level failure raised by the chunk parser while
// interpreting a single logical line (spec §7). File and Span anchor it to
// the byte range within the file it came from, letting Error recover the
// offending line via source.File.FindFirstEnclosingLine; File is nil for a
// region that failed before any bytes were read (e.g. the file itself could
// not be opened), in which case Error falls back to the bare filepath.
type ParseError struct {
	Filepath string
	File     *source.File
	Span     source.Span
	Message  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File == nil {
		return fmt.Sprintf("%s: %s", e.Filepath, e.Message)
	}

	line := e.File.FindFirstEnclosingLine(e.Span)

	return fmt.Sprintf("%s:%d: %s", e.Filepath, line.Number(), e.Message)
}

// LinkErrorKind enumerates the semantic failure kinds the linker and
// compiler can report (spec §7). Every kind besides ParseError is
// represented here since they share the same shape: a kind tag, a message
// and the file the failure was discovered relative to.
type LinkErrorKind uint8

const (
	// UndefinedModel is reported when an instance's definition name cannot
	// be resolved against any primitive, macro or library model.
	UndefinedModel LinkErrorKind = iota
	// UnnamedCell is reported when a macro or top-level instance reaches the
	// linker with an empty name. The SPICE parser itself never produces
	// one: a `.subckt` line with no name is not recognised as a declaration.
	UnnamedCell
	// DuplicateDefinition is reported when two macros declare the same
	// name.
	DuplicateDefinition
	// CircularDependency is reported when the macro dependency graph
	// contains a cycle.
	CircularDependency
	// IncludeNotFound names the case of a strict `.include` directive whose
	// path cannot be resolved by any of the search rules (spec §6). The
	// compiler logs a warning for it and creates no LinkError of this kind.
	IncludeNotFound
	// LibrarySectionNotFound names the case of a `.lib` directive whose
	// section does not exist in the target file. The compiler logs a warning
	// for it and creates no LinkError of this kind.
	LibrarySectionNotFound
)

// String returns the kind's name exactly as it appears in spec §7's error
// kind table.
func (k LinkErrorKind) String() string {
	switch k {
	case UndefinedModel:
		return "UNDEFINED_MODEL"
	case UnnamedCell:
		return "UNNAMED_CELL"
	case DuplicateDefinition:
		return "DUPLICATE_DEFINITION"
	case CircularDependency:
		return "CIRCULAR_DEPENDENCY"
	case IncludeNotFound:
		return "IncludeNotFound"
	case LibrarySectionNotFound:
		return "LibrarySectionNotFound"
	default:
		return "UNKNOWN"
	}
}

// LinkError is a semantic failure discovered while compiling or linking,
// tagged with its LinkErrorKind.
type LinkError struct {
	Kind     LinkErrorKind
	Filepath string
	Message  string
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	if e.Filepath == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Filepath, e.Message)
}
