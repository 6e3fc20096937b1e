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

// Package model defines the language-neutral data model of a linked netlist:
// ports, cells (primitives, macros, models, instances), parse regions and
// directives, and the final Netlist itself (spec §3).
package model

// Port is a named, order-significant terminal on a cell.
type Port struct {
	Name string
}
