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
package linker

import (
	"strings"

	"github.com/netlistio/ingest/pkg/model"
)

// baseTypeAliases maps a `.model` declaration's base-type token onto the
// static primitive kind it denotes (spec §4.5, "library content model
// resolver"). Every alias is lowercase; lookups normalise first.
var baseTypeAliases = map[string]model.PrimitiveKind{
	"nmos": model.NMOS, "nmos3": model.NMOS, "nmos4": model.NMOS,
	"pmos": model.PMOS, "pmos3": model.PMOS, "pmos4": model.PMOS,
	"res": model.Resistor, "resistor": model.Resistor,
	"cap": model.Capacitor, "capacitor": model.Capacitor,
	"ind": model.Inductor, "inductor": model.Inductor,
	"diode": model.Diode, "d": model.Diode,
}

func baseTypeKind(baseType string) (model.PrimitiveKind, bool) {
	kind, ok := baseTypeAliases[strings.ToLower(baseType)]
	return kind, ok
}
