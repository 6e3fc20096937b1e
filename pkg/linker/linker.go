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
	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/util"
)

// Link resolves a compiler's aggregate ParseResult into a linked Netlist,
// implementing the six-step algorithm of spec §4.5. Link errors are
// non-fatal and returned alongside a best-effort Netlist (spec §7 policy).
func Link(result *model.ParseResult) (*model.Netlist, []*model.LinkError) {
	registry := NewRegistry()

	var (
		linkErrors   []*model.LinkError
		macros       []*model.Macro
		topInstances []*model.Instance
	)

	for _, cell := range result.Cells {
		switch c := cell.(type) {
		case *model.Macro:
			if c.CellName() == "" {
				linkErrors = append(linkErrors, &model.LinkError{Kind: model.UnnamedCell, Message: "macro"})
				continue
			}

			if registry.RegisterMacro(c) {
				linkErrors = append(linkErrors, &model.LinkError{Kind: model.DuplicateDefinition, Message: c.CellName()})
				continue
			}

			macros = append(macros, c)
		case *model.Model:
			registry.RegisterModel(c)
		case *model.Instance:
			if c.CellName() == "" {
				linkErrors = append(linkErrors, &model.LinkError{Kind: model.UnnamedCell, Message: "instance"})
			}

			topInstances = append(topInstances, c)
		}
	}

	resolveInstances(registry, topInstances, &linkErrors)

	for _, m := range macros {
		resolveInstances(registry, m.Children, &linkErrors)
	}

	ordered, cycleErr := topoSortMacros(macros)
	if cycleErr != nil {
		linkErrors = append(linkErrors, cycleErr)
	}

	netlist := model.NewNetlist("", collectPrimitives(topInstances, macros), ordered, topInstances)

	return netlist, linkErrors
}

// resolveInstances binds every unresolved instance's DefinitionName against
// the registry, attaching the Definition on success (spec §4.5 step 3); the
// net-to-port pairing is computed on demand by Instance.ResolvedNets.
// Instances the chunk parser already resolved eagerly (R/C/L) are left
// untouched.
func resolveInstances(registry *Registry, instances []*model.Instance, errs *[]*model.LinkError) {
	for _, inst := range instances {
		if inst.IsResolved() {
			continue
		}

		resolved := registry.Resolve(inst.DefinitionName)
		if resolved.IsEmpty() {
			*errs = append(*errs, &model.LinkError{Kind: model.UndefinedModel, Message: inst.CellName()})
			continue
		}

		inst.Definition = resolved.Unwrap()
	}
}

// collectPrimitives gathers the unique set of resolved primitives actually
// referenced by any instance, top-level or nested (spec §4.5 step 5), in
// first-use order.
func collectPrimitives(topInstances []*model.Instance, macros []*model.Macro) []*model.Primitive {
	seen := util.NewHashSet[*model.Primitive](6)

	var primitives []*model.Primitive

	add := func(inst *model.Instance) {
		if !inst.IsResolved() {
			return
		}

		p, ok := inst.Definition.(*model.Primitive)
		if !ok {
			return
		}

		if !seen.Insert(p) {
			primitives = append(primitives, p)
		}
	}

	for _, inst := range topInstances {
		add(inst)
	}

	for _, m := range macros {
		for _, inst := range m.Children {
			add(inst)
		}
	}

	return primitives
}
