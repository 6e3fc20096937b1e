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
	"regexp"
	"strings"

	"github.com/netlistio/ingest/pkg/model"
)

var (
	reInclude        = regexp.MustCompile(`(?i)^\s*\.include\s+(?:"([^"]+)"|'([^']+)'|(\S+))`)
	reLibDirective   = regexp.MustCompile(`(?i)^\s*\.lib\s+(?:"([^"]+)"|'([^']+)'|(\S+))(?:\s+(\S+))?\s*$`)
	reCadenceStrict  = regexp.MustCompile(`(?i)^\s*\[!\s*([^"\]]+?)\s*\]`)
	reCadenceLenient = regexp.MustCompile(`(?i)^\s*\[\?\s*([^"\]]+?)\s*\]`)
)

// Directive is whichever single directive ParseDirective recognised on a
// logical line. Exactly one of Include or Library is non-nil.
type Directive struct {
	Include *model.IncludeDirective
	Library *model.LibraryDirective
}

// ParseDirective recognises a `.include`, `.lib`, or Cadence-bracketed
// directive line, returning the directive it describes, or ok=false if line
// is not a directive (spec §4.4, §6).
func ParseDirective(line string) (Directive, bool) {
	if m := reInclude.FindStringSubmatch(line); m != nil {
		return Directive{Include: &model.IncludeDirective{Path: firstNonEmpty(m[1:]), Strict: true}}, true
	}

	if m := reLibDirective.FindStringSubmatch(line); m != nil {
		path := firstNonEmpty(m[1:4])
		section := strings.TrimSpace(m[4])

		return Directive{Library: &model.LibraryDirective{
			Path:    path,
			Section: section,
		}}, true
	}

	if m := reCadenceStrict.FindStringSubmatch(line); m != nil {
		return Directive{Include: &model.IncludeDirective{Path: trimQuotes(m[1]), Strict: true}}, true
	}

	if m := reCadenceLenient.FindStringSubmatch(line); m != nil {
		return Directive{Include: &model.IncludeDirective{Path: trimQuotes(m[1]), Strict: false}}, true
	}

	return Directive{}, false
}

func firstNonEmpty(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}

	return ""
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
