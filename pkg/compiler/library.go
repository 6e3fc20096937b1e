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
	"regexp"
	"strings"
)

var (
	reLibSectionStart = regexp.MustCompile(`(?im)^[ \t]*\.lib[ \t]+(\S+)[ \t]*$`)
	reLibSectionEnd   = regexp.MustCompile(`(?im)^[ \t]*\.endl(?:[ \t]+\S+)?[ \t]*$`)
)

// findLibrarySection locates the named section within a library file's raw
// bytes (spec §4.2, "Library section extraction"): the first `.lib <name>`
// start marker whose name matches case-insensitively, bounded by the next
// `.endl` marker or EOF. The returned start offset sits immediately after
// the header line, so the chunk parser never re-sees the header as a
// directive. Nested `.lib`/`.endl` pairs are not tracked (spec §9 Open
// Question (i) - left unresolved by the source, so this takes the simplest
// reading: the next `.endl` of any name closes the section).
func findLibrarySection(data []byte, name string) (start, end int, found bool) {
	for _, m := range reLibSectionStart.FindAllSubmatchIndex(data, -1) {
		sectionName := string(data[m[2]:m[3]])
		if !strings.EqualFold(sectionName, name) {
			continue
		}

		headerEnd := m[1]
		if headerEnd < len(data) && data[headerEnd] == '\n' {
			headerEnd++
		}

		sectionEnd := len(data)
		if em := reLibSectionEnd.FindIndex(data[headerEnd:]); em != nil {
			sectionEnd = headerEnd + em[0]
		}

		return headerEnd, sectionEnd, true
	}

	return 0, 0, false
}
