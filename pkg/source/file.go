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
package source

import "fmt"

// Line provides information about a given line within a source file: its
// 1-indexed line number and the byte span it occupies.
type Line struct {
	text   []byte
	span   Span
	number int
}

// String returns the textual content of this line.
func (l Line) String() string {
	return string(l.text[l.span.start:l.span.end])
}

// Number returns the 1-indexed line number.
func (l Line) Number() int {
	return l.number
}

// Start returns the byte offset at which this line begins.
func (l Line) Start() int {
	return l.span.start
}

// File represents a single netlist source file: its path and raw contents.
// Contents are retained as bytes (never runes) since all spans, including
// those produced by the memory-mapped scanner, are byte offsets.
type File struct {
	filename string
	contents []byte
}

// NewFile wraps a filename and its raw bytes as a File.
func NewFile(filename string, contents []byte) *File {
	return &File{filename, contents}
}

// Filename returns the path this file was read from.
func (f *File) Filename() string {
	return f.filename
}

// Contents returns the raw bytes of this file.
func (f *File) Contents() []byte {
	return f.contents
}

// SyntaxError constructs an error anchored to a span of this file.
func (f *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{f, span, msg}
}

// FindFirstEnclosingLine determines the line enclosing the start of span. If
// the span lies beyond the end of the file, the last physical line is
// returned.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	num := 1
	start := 0

	for i := 0; i < len(f.contents); i++ {
		if i == index {
			end := findEndOfLine(index, f.contents)
			return Line{f.contents, Span{start, end}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{f.contents, Span{start, len(f.contents)}, num}
}

// SyntaxError is a structured, span-anchored error produced while scanning or
// parsing a source file.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the file this error was raised against.
func (e *SyntaxError) SourceFile() *File {
	return e.srcfile
}

// Span returns the byte range this error is anchored to.
func (e *SyntaxError) Span() Span {
	return e.span
}

// Message returns the human-readable error message.
func (e *SyntaxError) Message() string {
	return e.msg
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	line := e.FirstEnclosingLine()
	return fmt.Sprintf("%s:%d: %s", e.srcfile.Filename(), line.Number(), e.msg)
}

// FirstEnclosingLine determines the line this error is associated with.
func (e *SyntaxError) FirstEnclosingLine() Line {
	return e.srcfile.FindFirstEnclosingLine(e.span)
}

func findEndOfLine(index int, text []byte) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}
