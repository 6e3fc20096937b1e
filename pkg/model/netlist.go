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
)

// Netlist is the final, linked result of the pipeline: the primitives
// actually used, every macro ordered so a container precedes what it
// references, and the top-level instances not nested within any macro
// (spec §3, §4.5).
type Netlist struct {
	Name string
	// Primitives holds every distinct primitive kind referenced anywhere in
	// the design, in first-use order.
	Primitives []*Primitive
	// Macros is ordered so that for every dependency edge A -> B (macro A
	// contains an instance resolved to macro B), A precedes B - a macro
	// always appears before the macros its own children reference (the
	// linker's topological sort, spec §4.5, §8 "topological order").
	Macros []*Macro
	// TopInstances are the instances declared outside of any `.subckt`
	// body.
	TopInstances []*Instance
}

// NewNetlist constructs a linked netlist.
func NewNetlist(name string, primitives []*Primitive, macros []*Macro, top []*Instance) *Netlist {
	return &Netlist{name, primitives, macros, top}
}

// Top constructs the virtual top-level macro: an unnamed, portless macro
// whose children are this netlist's top-level instances. This gives the
// graph projector a single Definition to walk regardless of whether it is
// asked to start from a named macro or from the design root (spec §4.6).
func (n *Netlist) Top() *Macro {
	return NewMacro("", nil, n.TopInstances)
}

// Macro looks up a macro definition by name, or returns (nil, false).
func (n *Netlist) Macro(name string) (*Macro, bool) {
	for _, m := range n.Macros {
		if m.Name_ == name {
			return m, true
		}
	}

	return nil, false
}

// Write renders the whole netlist as an indented tree, grouped into
// Primitives / Macros / Top-Level Instances sections.
func (n *Netlist) Write(w io.Writer) {
	fmt.Fprintln(w, "Primitives:")

	for _, p := range n.Primitives {
		p.Write(w, 1)
	}

	fmt.Fprintln(w, "Macros:")

	for _, m := range n.Macros {
		m.Write(w, 1)
	}

	fmt.Fprintln(w, "Top-Level Instances:")

	for _, inst := range n.TopInstances {
		inst.Write(w, 1)
	}
}
