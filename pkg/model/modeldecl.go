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

// Model is a `.model <name> <base-type> [params]` declaration: a named alias
// which maps onto one of the built-in primitive kinds, carrying any
// additional device parameters (spec §3, §4.5). A Model is never itself
// resolved against - it is the linker's model resolver that consumes Models
// to decide what a Primitive instance referencing that name should become.
type Model struct {
	Name_    string
	BaseType string
	Params   map[string]string
}

// NewModel constructs a `.model` declaration.
func NewModel(name, baseType string, params map[string]string) *Model {
	return &Model{name, baseType, params}
}

// CellName implements Cell.
func (m *Model) CellName() string {
	return m.Name_
}

// Write implements Cell.
func (m *Model) Write(w io.Writer, indent int) {
	writeIndent(w, indent)
	fmt.Fprintf(w, "model %s %s [%s]\n", m.Name_, m.BaseType, formatParams(m.Params))
}
