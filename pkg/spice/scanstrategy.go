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

// Package spice implements the SPICE format strategy: the regexes and
// heuristics the scanner's FSM and the chunk parser rely on to tell macro
// boundaries, declarations, instances and directives apart (spec §4.1, §4.4).
package spice

import "regexp"

var (
	reSubckt = regexp.MustCompile(`(?im)^\s*(\.subckt)\s+(\S+)`)
	reEnds   = regexp.MustCompile(`(?im)^\s*\.ends`)
)

// CommentChars are the leading bytes that mark a SPICE line as a comment.
const CommentChars = "*$"

// ContinuationChar marks a SPICE line as a continuation of the previous one.
const ContinuationChar = '+'

// MatchesMacroStart reports whether line opens a `.subckt` body, returning
// the matched delimiter keyword and the subcircuit name. It implements the
// scanner's Strategy.MatchesMacroStart contract (spec §4.1).
func MatchesMacroStart(line []byte) (delimiter, name string, ok bool) {
	m := reSubckt.FindSubmatch(line)
	if m == nil {
		return "", "", false
	}

	return string(m[1]), string(m[2]), true
}

// MatchesMacroEnd reports whether line closes a macro body with `.ends`. It
// implements the scanner's Strategy.MatchesMacroEnd contract.
func MatchesMacroEnd(line []byte) bool {
	return reEnds.Match(line)
}
