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

// Package source provides file and byte-span plumbing, used by the compiler
// and model.ParseError for locating the origin of a record or error.
package source

// Span represents a contiguous byte range [Start,End) within a source file.
// Unlike a string slice, retaining the physical offsets allows recovering the
// enclosing line on demand.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting byte offset of this span.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last byte offset of this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of bytes covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}
