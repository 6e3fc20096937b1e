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

// PrimitiveKind enumerates the fixed, built-in device kinds a format strategy
// can produce. Unlike Macro, a Primitive carries no definition of its own -
// its identity is entirely determined by its kind, so two primitives of the
// same kind are indistinguishable (spec §9, "singleton primitives").
type PrimitiveKind uint8

// The six built-in device kinds (spec §3). Note there is deliberately no
// generic "mosfet" kind: the variant (NMOS or PMOS) is only known once a
// model name has been resolved, either against these static kinds directly
// (when the model name literally reads "nmos"/"pmos") or via a .model/
// library lookup (spec §4.5).
const (
	Resistor PrimitiveKind = iota
	Capacitor
	Inductor
	NMOS
	PMOS
	Diode
)

var primitiveNames = [...]string{"resistor", "capacitor", "inductor", "nmos", "pmos", "diode"}

var primitivePorts = [...][]Port{
	{{Name: "a"}, {Name: "b"}}, // resistor
	{{Name: "a"}, {Name: "b"}}, // capacitor
	{{Name: "a"}, {Name: "b"}}, // inductor
	{{Name: "d"}, {Name: "g"}, {Name: "s"}, {Name: "b"}}, // nmos
	{{Name: "d"}, {Name: "g"}, {Name: "s"}, {Name: "b"}}, // pmos
	{{Name: "a"}, {Name: "k"}},                           // diode
}

// String returns the canonical lowercase name of this kind, e.g. "resistor".
func (k PrimitiveKind) String() string {
	if int(k) >= len(primitiveNames) {
		return fmt.Sprintf("primitivekind(%d)", k)
	}

	return primitiveNames[k]
}

// IsPassive reports whether this kind is resolved eagerly from its instance
// prefix alone (R, C, L), as opposed to requiring a model-name lookup (M, D).
func (k PrimitiveKind) IsPassive() bool {
	return k == Resistor || k == Capacitor || k == Inductor
}

// PrimitiveKindByName looks up a static primitive kind by its exact canonical
// lowercase name, e.g. "nmos". The linker's registry does not call it: it
// keeps its own name-to-primitive map and maps `.model` base types through
// its own alias table.
func PrimitiveKindByName(name string) (PrimitiveKind, bool) {
	for i, n := range primitiveNames {
		if n == name {
			return PrimitiveKind(i), true
		}
	}

	return 0, false
}

// Primitive is a built-in device of a fixed kind. Primitives are interned
// value types: NewPrimitive always returns the same logical value for a
// given kind, and equality is by kind alone (see Equals/Hash).
type Primitive struct {
	Kind PrimitiveKind
}

var primitivePool = func() [len(primitiveNames)]*Primitive {
	var pool [len(primitiveNames)]*Primitive
	for i := range pool {
		pool[i] = &Primitive{Kind: PrimitiveKind(i)}
	}

	return pool
}()

// NewPrimitive returns the interned Primitive for a given kind.
func NewPrimitive(kind PrimitiveKind) *Primitive {
	return primitivePool[kind]
}

// CellName implements Cell, returning the canonical kind name.
func (p *Primitive) CellName() string {
	return p.Kind.String()
}

// Ports implements Definition.
func (p *Primitive) Ports() []Port {
	return primitivePorts[p.Kind]
}

// Write implements Cell.
func (p *Primitive) Write(w io.Writer, indent int) {
	writeIndent(w, indent)
	fmt.Fprintf(w, "primitive %s\n", p.Kind)
}

// Equals supports use of *Primitive as a util.Hasher key, per the teacher's
// HashSet/HashMap contract.
func (p *Primitive) Equals(other *Primitive) bool {
	return p.Kind == other.Kind
}

// Hash supports use of *Primitive as a util.Hasher key.
func (p *Primitive) Hash() uint64 {
	return uint64(p.Kind)
}
