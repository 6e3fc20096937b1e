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

// Package linker resolves a compiler's aggregate ParseResult into a linked
// Netlist (spec §4.5): it builds the macro/model registry, resolves every
// instance's textual definition name, and topologically sorts macros by
// inter-macro dependency.
package linker

import (
	"strings"

	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/util"
)

// Registry merges static primitives, parsed macros and parsed `.model`
// declarations into a single name resolver, with a positive/negative
// resolution cache keyed by lowercase name (spec §4.5).
//
// The source's "model resolver" strategy that lazily parses a library
// content blob on demand has no direct counterpart here: the compiler
// already routes every enqueued library section through the same chunk
// parser as ordinary source (spec §4.2 step 2), so by the time linking
// starts every `.model`/`.subckt` the design can see is already a
// structured Model/Macro cell, library or not. Resolution against those
// cells plays exactly the role the lazy resolver would have (see
// DESIGN.md).
type Registry struct {
	primitives map[string]*model.Primitive
	macros     *util.HashMap[util.BytesKey, *model.Macro]
	models     *util.HashMap[util.BytesKey, *model.Model]

	cache map[string]util.Option[model.Definition]
}

// NewRegistry constructs a registry pre-populated with the six static
// primitive kinds, keyed by their canonical lowercase name. Macros and
// models are stored in a util.HashMap keyed by lowercase name bytes, the
// same collection the teacher uses for its symbol tables (go-corset
// pkg/schema/assignment/computation.go's util.NewHashMap[util.BytesKey, ...]).
func NewRegistry() *Registry {
	r := &Registry{
		primitives: make(map[string]*model.Primitive, 6),
		macros:     util.NewHashMap[util.BytesKey, *model.Macro](8),
		models:     util.NewHashMap[util.BytesKey, *model.Model](8),
		cache:      make(map[string]util.Option[model.Definition]),
	}

	for kind := model.Resistor; kind <= model.Diode; kind++ {
		p := model.NewPrimitive(kind)
		r.primitives[p.CellName()] = p
	}

	return r
}

func nameKey(name string) util.BytesKey {
	return util.NewBytesKey([]byte(strings.ToLower(name)))
}

// RegisterMacro adds a parsed macro to the registry's macro map, keyed by
// its lowercase name. It reports duplicate=true (and leaves the existing
// entry untouched) when a macro of the same name is already registered -
// "first definition wins" (spec §4.5 step 1, §8 scenario 5).
func (r *Registry) RegisterMacro(m *model.Macro) (duplicate bool) {
	key := nameKey(m.CellName())

	if r.macros.ContainsKey(key) {
		return true
	}

	r.macros.Insert(key, m)

	return false
}

// RegisterModel adds a parsed `.model` declaration, keyed by its lowercase
// name. As with macros, the first declaration of a given name wins.
func (r *Registry) RegisterModel(decl *model.Model) {
	key := nameKey(decl.CellName())

	if !r.models.ContainsKey(key) {
		r.models.Insert(key, decl)
	}
}

// Resolve looks up name against the resolution order of spec §4.5: static
// primitives, then static macros, then registered `.model` declarations
// (mapped onto their underlying primitive kind). The first hit is cached
// under name's lowercase form; a miss caches none, so resolve(n) called
// twice always returns identical references (spec §8, "registry
// idempotence").
func (r *Registry) Resolve(name string) util.Option[model.Definition] {
	key := strings.ToLower(name)

	if cached, ok := r.cache[key]; ok {
		return cached
	}

	result := r.resolveUncached(key)
	r.cache[key] = result

	return result
}

func (r *Registry) resolveUncached(key string) util.Option[model.Definition] {
	if p, ok := r.primitives[key]; ok {
		return util.Some[model.Definition](p)
	}

	if m, ok := r.macros.Get(util.NewBytesKey([]byte(key))); ok {
		return util.Some[model.Definition](m)
	}

	if decl, ok := r.models.Get(util.NewBytesKey([]byte(key))); ok {
		if kind, ok := baseTypeKind(decl.BaseType); ok {
			return util.Some[model.Definition](model.NewPrimitive(kind))
		}
	}

	return util.None[model.Definition]()
}
