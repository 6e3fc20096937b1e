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

import (
	"strings"

	"github.com/netlistio/ingest/pkg/util"
)

// LogicalLine is one folded SPICE statement: comments stripped, `+`
// continuations joined onto the line they continue, with the byte offset of
// its first physical line preserved for diagnostics (spec §4.3).
type LogicalLine struct {
	Text  string
	Start int
}

// ChunkParser folds the physical lines of a single ParseRegion into logical
// lines, implementing util.Iterator[LogicalLine] so the compiler can pull
// lines on demand without materialising the whole region up front.
//
// When skipTitle is set, the first physical line of the region is taken as
// the SPICE title line and discarded, whether or not it is a comment, unless
// it is itself a directive (starts with '.'); byte-slice regions (library
// sections, macro bodies) are parsed flat (spec §4.3).
type ChunkParser struct {
	data []byte
	pos  int

	skipTitle    bool
	titleHandled bool

	// accumulated holds the physical lines folded into the logical line
	// currently being built; it must survive across fill() calls, since a
	// fold boundary (the line that terminates one logical line and starts
	// the next) is discovered one call before the line it started is ready
	// to be returned.
	accumulated []string
	accStart    int

	pending *LogicalLine
}

// NewChunkParser constructs a chunk parser over the raw bytes of a region.
// skipTitle should be true only for the first Global sub-region of a
// whole-file region.
func NewChunkParser(data []byte, skipTitle bool) *ChunkParser {
	return &ChunkParser{data: data, skipTitle: skipTitle}
}

func isComment(line string) bool {
	return line == "" || strings.IndexByte(CommentChars, line[0]) >= 0
}

func isContinuation(line string) bool {
	return len(line) > 0 && line[0] == ContinuationChar
}

// readPhysicalLine returns the next physical line (trimmed, sans newline)
// and the byte offset it started at, or ok=false at end of data.
func (p *ChunkParser) readPhysicalLine() (line string, start int, ok bool) {
	if p.pos >= len(p.data) {
		return "", 0, false
	}

	start = p.pos

	end := strings.IndexByte(string(p.data[p.pos:]), '\n')
	if end < 0 {
		line = string(p.data[p.pos:])
		p.pos = len(p.data)
	} else {
		line = string(p.data[p.pos : p.pos+end])
		p.pos += end + 1
	}

	return strings.TrimSpace(line), start, true
}

func joinLogical(lines []string) string {
	return strings.Join(lines, " ")
}

// flushPending turns the current accumulation into the pending logical
// line, if it amounts to anything.
func (p *ChunkParser) flushPending() {
	if len(p.accumulated) == 0 {
		return
	}

	logical := joinLogical(p.accumulated)
	start := p.accStart
	p.accumulated = nil

	if !isComment(logical) {
		p.pending = &LogicalLine{Text: logical, Start: start}
	}
}

func (p *ChunkParser) handleTitle() (stop bool) {
	p.titleHandled = true

	if !p.skipTitle {
		return false
	}

	line, start, ok := p.readPhysicalLine()
	if !ok {
		return true
	}

	switch {
	case isComment(line):
		// genuine comment title line: discarded entirely.
	case strings.HasPrefix(line, "."):
		// a directive on the title line is retained, not discarded.
		p.accumulated = []string{line}
		p.accStart = start
	default:
		// genuine non-comment, non-directive title line: discarded.
	}

	return false
}

func (p *ChunkParser) fill() {
	if p.pending != nil {
		return
	}

	if !p.titleHandled {
		if stop := p.handleTitle(); stop {
			return
		}
	}

	for {
		line, start, ok := p.readPhysicalLine()
		if !ok {
			break
		}

		if isComment(line) {
			continue
		}

		if isContinuation(line) {
			if len(p.accumulated) == 0 {
				p.accStart = start
			}

			p.accumulated = append(p.accumulated, strings.TrimSpace(line[1:]))

			continue
		}

		p.flushPending()

		p.accumulated = []string{line}
		p.accStart = start

		if p.pending != nil {
			return
		}
	}

	p.flushPending()
}

// HasNext implements util.Iterator.
func (p *ChunkParser) HasNext() bool {
	p.fill()
	return p.pending != nil
}

// Next implements util.Iterator.
func (p *ChunkParser) Next() LogicalLine {
	p.fill()

	next := *p.pending
	p.pending = nil

	return next
}

// Append implements util.Iterator.
func (p *ChunkParser) Append(iter util.Iterator[LogicalLine]) util.Iterator[LogicalLine] {
	return util.NewAppendIterator[LogicalLine](p, iter)
}

// Collect implements util.Iterator.
func (p *ChunkParser) Collect() []LogicalLine {
	var lines []LogicalLine

	for p.HasNext() {
		lines = append(lines, p.Next())
	}

	return lines
}
