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

// Macro is a named, reusable subcircuit definition: a port list plus the
// instances declared within its body (spec §3). Two macros are never merged
// even if structurally identical - identity is by name, established at link
// time by the macro table (spec §4.5).
type Macro struct {
	Name_    string
	ports    []Port
	Children []*Instance
}

// NewMacro constructs a macro definition.
func NewMacro(name string, ports []Port, children []*Instance) *Macro {
	return &Macro{name, ports, children}
}

// CellName implements Cell.
func (m *Macro) CellName() string {
	return m.Name_
}

// Ports implements Definition.
func (m *Macro) Ports() []Port {
	return m.ports
}

// Write implements Cell, printing this macro's ports followed by its
// children at one deeper indentation level.
func (m *Macro) Write(w io.Writer, indent int) {
	writeIndent(w, indent)
	fmt.Fprintf(w, "macro %s%s\n", m.Name_, formatPorts(m.ports))

	for _, child := range m.Children {
		child.Write(w, indent+1)
	}
}

func formatPorts(ports []Port) string {
	s := "("

	for i, p := range ports {
		if i > 0 {
			s += ", "
		}

		s += p.Name
	}

	return s + ")"
}
