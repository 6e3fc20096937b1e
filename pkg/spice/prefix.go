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
	"unicode"

	"github.com/netlistio/ingest/pkg/model"
)

// passivePrefixKind maps the leading instance-name character of a passive
// primitive to its kind (spec §4.4 step 1). Only R, C and L have their
// canonical model implied entirely by the prefix; M (mosfet) and D (diode)
// always require a model-name lookup, since a MOSFET's variant (NMOS or
// PMOS) cannot be known from the prefix alone (spec §8 scenario 2).
var passivePrefixKind = map[byte]model.PrimitiveKind{
	'R': model.Resistor,
	'C': model.Capacitor,
	'L': model.Inductor,
}

// knownPrefixes are every recognised instance-name prefix, passive or not.
// A name whose leading character is not in this set is not an instance at
// all (spec §4.4 step 1).
var knownPrefixes = map[byte]bool{
	'R': true, 'C': true, 'L': true, 'M': true, 'D': true, 'X': true,
}

// classifyPrefix uppercases the leading character of an instance name and
// reports whether it is recognised.
func classifyPrefix(name string) (byte, bool) {
	if name == "" {
		return 0, false
	}

	c := byte(unicode.ToUpper(rune(name[0])))

	return c, knownPrefixes[c]
}
