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
	"github.com/netlistio/ingest/pkg/util"
)

var reEqualsNorm = regexp.MustCompile(`\s*=\s*`)

// ParseInstance applies the last-positional-token algorithm to a logical
// line, returning the instance it describes or nil if the line's leading
// token is not a recognised instance prefix (spec §4.4).
func ParseInstance(line string) *model.Instance {
	normalized := reEqualsNorm.ReplaceAllString(line, "=")
	tokens := strings.Fields(normalized)

	if len(tokens) < 2 {
		return nil
	}

	name := tokens[0]
	tokens = tokens[1:]

	prefix, known := classifyPrefix(name)
	if !known {
		return nil
	}

	params := map[string]string{}

	var resolved *model.Primitive

	if kind, passive := passivePrefixKind[prefix]; passive {
		resolved = model.NewPrimitive(kind)

		if n := len(tokens); n > 0 && isValueLike(tokens[n-1]) {
			params["value"] = tokens[n-1]
			tokens = tokens[:n-1]
		}
	}

	tokens = extractParams(tokens, params)

	definitionName, nets := splitDefinitionAndNets(tokens, resolved != nil)

	inst := model.NewUnresolvedInstance(name, nets, params, definitionName)
	if resolved != nil {
		inst.Definition = resolved
		inst.DefinitionName = resolved.CellName()
	}

	return inst
}

// extractParams pops every `key=value` token out of tokens (scanning front to
// back, so a later duplicate key overwrites an earlier one) and records them
// into params, returning the remaining tokens in their original order.
func extractParams(tokens []string, params map[string]string) []string {
	remaining := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if k, v, ok := strings.Cut(tok, "="); ok {
			params[k] = v
		} else {
			remaining = append(remaining, tok)
		}
	}

	return remaining
}

// splitDefinitionAndNets walks the remaining tokens in reverse: unless the
// definition name is already fixed (a passive primitive), the last token
// becomes the definition name and everything before it is a net, collected
// as an order-preserving set (spec §4.4 steps 4-5).
func splitDefinitionAndNets(tokens []string, definitionFixed bool) (string, []string) {
	var definitionName string

	reversedNets := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]

		if !definitionFixed && definitionName == "" {
			definitionName = tok
			continue
		}

		reversedNets = append(reversedNets, tok)
	}

	// nets were collected walking in reverse; restore declaration order
	// before deduplicating, so that duplicates resolve to their first
	// occurrence rather than their last (spec §3, "preserving net order of
	// appearance").
	for l, r := 0, len(reversedNets)-1; l < r; l, r = l+1, r-1 {
		reversedNets[l], reversedNets[r] = reversedNets[r], reversedNets[l]
	}

	seen := util.NewHashSet[util.BytesKey](uint(len(reversedNets)))
	nets := make([]string, 0, len(reversedNets))

	for _, tok := range reversedNets {
		if !seen.Insert(util.NewBytesKey([]byte(tok))) {
			nets = append(nets, tok)
		}
	}

	return definitionName, nets
}

func isValueLike(token string) bool {
	if token == "" {
		return false
	}

	c := token[0]

	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// ParseDeclaration recognises a `.subckt` or `.model` logical line,
// returning the Macro or Model cell it declares, or nil otherwise (spec
// §4.4).
func ParseDeclaration(line string) model.Cell {
	if delimiter, name, ok := MatchesMacroStart([]byte(line)); ok {
		_ = delimiter

		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			return nil
		}

		ports := make([]model.Port, 0, len(tokens)-2)

		for _, tok := range tokens[2:] {
			if strings.Contains(tok, "=") {
				continue
			}

			ports = append(ports, model.Port{Name: tok})
		}

		return model.NewMacro(name, ports, nil)
	}

	if m := reModel.FindStringSubmatch(line); m != nil {
		name, baseType, paramsStr := m[1], m[2], m[3]
		params := map[string]string{}

		if paramsStr != "" {
			cleaned := reEqualsNorm.ReplaceAllString(paramsStr, "=")
			for _, tok := range strings.Fields(cleaned) {
				if k, v, ok := strings.Cut(tok, "="); ok {
					params[k] = v
				} else {
					params[tok] = "true"
				}
			}
		}

		return model.NewModel(name, baseType, params)
	}

	return nil
}

var reModel = regexp.MustCompile(`(?i)^\s*\.model\s+(\S+)\s+(\S+)\s*(.*)$`)
