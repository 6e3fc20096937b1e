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
	"io"
	"sort"
	"strings"

	"github.com/netlistio/ingest/pkg/util"
)

// Instance is a single device or subcircuit call site: a reference
// designator, the ordered list of net names it connects to, its key=value
// parameters, and either a resolved Definition or an unresolved textual
// definition name (spec §3, §4.5).
//
// Passive instances (R, C, L) get their Definition at parse time, with
// DefinitionName set to the primitive's name. For every other instance,
// Definition is nil before linking and DefinitionName holds the raw model or
// subcircuit name parsed from source; after a successful link, Definition is
// set and DefinitionName is retained only for diagnostics.
type Instance struct {
	Name_          string
	Nets           []string
	Params         map[string]string
	DefinitionName string
	Definition     Definition
	// Parent points at the enclosing Macro, or nil for a top-level
	// instance. It is set by the chunk parser when the instance is attached
	// to a macro body; the linker walks Macro.Children and does not read it.
	Parent *Macro
}

// NewUnresolvedInstance constructs an instance whose definition is not yet
// known, as produced by the chunk parser.
func NewUnresolvedInstance(name string, nets []string, params map[string]string, definitionName string) *Instance {
	return &Instance{Name_: name, Nets: nets, Params: params, DefinitionName: definitionName}
}

// CellName implements Cell, returning the reference designator.
func (i *Instance) CellName() string {
	return i.Name_
}

// IsResolved reports whether the linker has bound this instance to a
// concrete Definition.
func (i *Instance) IsResolved() bool {
	return i.Definition != nil
}

// IsPrimitive reports whether this instance's resolved definition is a
// built-in device, as opposed to a subcircuit macro. Returns false if
// unresolved.
func (i *Instance) IsPrimitive() bool {
	_, ok := i.Definition.(*Primitive)
	return ok
}

// ResolvedNets pairs each connected net name with the port it attaches to on
// the resolved definition, in declaration order. Requires IsResolved.
func (i *Instance) ResolvedNets() []util.Pair[Port, string] {
	ports := i.Definition.Ports()
	n := len(ports)

	if len(i.Nets) < n {
		n = len(i.Nets)
	}

	pairs := make([]util.Pair[Port, string], n)
	for idx := 0; idx < n; idx++ {
		pairs[idx] = util.NewPair(ports[idx], i.Nets[idx])
	}

	return pairs
}

// Write implements Cell.
func (i *Instance) Write(w io.Writer, indent int) {
	writeIndent(w, indent)

	def := i.DefinitionName
	if i.Definition != nil {
		def = i.Definition.CellName()
	}

	fmt.Fprintf(w, "instance %s -> %s (%s) [%s]\n", i.Name_, def, strings.Join(i.Nets, ","), formatParams(i.Params))
}

// formatParams renders a param map in a stable, sorted-by-key order so that
// Write output is reproducible across runs (spec §6, §8).
func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}

	return strings.Join(parts, " ")
}
