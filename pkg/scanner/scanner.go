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

// Package scanner implements the region scanner: a byte-range finite state
// machine over a memory-mapped file that locates subcircuit scopes without
// fully parsing them (spec §4.1).
package scanner

import (
	"bytes"

	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/util"
)

// Strategy abstracts the format-specific heuristics the FSM needs: how to
// recognise a macro's opening and closing line. The SPICE strategy lives in
// pkg/spice (spice.MatchesMacroStart / spice.MatchesMacroEnd).
type Strategy interface {
	MatchesMacroStart(line []byte) (delimiter, name string, ok bool)
	MatchesMacroEnd(line []byte) bool
}

// funcStrategy adapts two plain functions to the Strategy interface, so
// callers can pass pkg/spice's package-level functions directly without
// declaring a wrapper type of their own.
type funcStrategy struct {
	start func([]byte) (string, string, bool)
	end   func([]byte) bool
}

func (f funcStrategy) MatchesMacroStart(line []byte) (string, string, bool) { return f.start(line) }
func (f funcStrategy) MatchesMacroEnd(line []byte) bool                     { return f.end(line) }

// NewStrategy builds a Strategy from the two free functions a format
// package exposes.
func NewStrategy(start func([]byte) (string, string, bool), end func([]byte) bool) Strategy {
	return funcStrategy{start, end}
}

// Scan walks an entire file's bytes with a two-state FSM (global / in-macro)
// and returns the Global and Macro regions it discovered, in file order.
// Nested `.subckt`/`.ends` tokens are tolerated via a depth counter rather
// than split into their own regions: real SPICE subcircuits are never
// nested, so depth only ever protects against a stray token inside a
// malformed macro body (spec §4.1, §9 design notes).
func Scan(filepath string, data []byte, strategy Strategy) []model.ParseRegion {
	var (
		regions      []model.ParseRegion
		currentStart int
		depth        int
		inMacro      bool
		macroName    string
	)

	pos := 0
	for pos < len(data) {
		lineEnd := bytes.IndexByte(data[pos:], '\n')

		var (
			line    []byte
			nextPos int
		)

		if lineEnd < 0 {
			line = data[pos:]
			nextPos = len(data)
		} else {
			line = data[pos : pos+lineEnd+1]
			nextPos = pos + lineEnd + 1
		}

		if !inMacro {
			if _, name, ok := strategy.MatchesMacroStart(line); ok {
				if pos > currentStart {
					regions = append(regions, model.NewByteSliceRegion(filepath, currentStart, pos, model.Global, util.None[string]()))
				}

				macroName = name
				currentStart = pos
				depth = 1
				inMacro = true
			}
		} else {
			if _, _, ok := strategy.MatchesMacroStart(line); ok {
				depth++
			} else if strategy.MatchesMacroEnd(line) {
				depth--
				if depth == 0 {
					regions = append(regions, model.NewByteSliceRegion(filepath, currentStart, nextPos, model.Macro, util.Some(macroName)))
					currentStart = nextPos
					inMacro = false
				}
			}
		}

		pos = nextPos
	}

	if pos > currentStart {
		regions = append(regions, model.NewByteSliceRegion(filepath, currentStart, pos, model.Global, util.None[string]()))
	}

	return regions
}
