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

// Package graph projects a linked Macro into a bipartite net/instance graph
// and reports fan-out statistics (spec §4.6).
package graph

import (
	"sort"

	"github.com/netlistio/ingest/pkg/model"
)

// CircuitGraph is a bipartite graph: one node per net, one node per
// instance, with an edge whenever an instance connects to a net. Connections
// are kept in per-net insertion order for deterministic statistics and
// export.
type CircuitGraph struct {
	nets              map[string][]string
	instanceModelName map[string]string
	netOrder          []string
}

// FromMacro walks a macro's direct children (typically the virtual top
// returned by Netlist.Top) and builds the graph of their net connections.
// Nested macro children are not descended into - the projector operates over
// a single level of instantiation, matching the source's from_macro entry
// point.
func FromMacro(macro *model.Macro) *CircuitGraph {
	g := &CircuitGraph{
		nets:              make(map[string][]string),
		instanceModelName: make(map[string]string),
	}

	for _, inst := range macro.Children {
		g.processInstance(inst)
	}

	return g
}

func (g *CircuitGraph) processInstance(inst *model.Instance) {
	g.instanceModelName[inst.CellName()] = modelName(inst)

	if inst.IsResolved() {
		for _, pair := range inst.ResolvedNets() {
			g.addConnection(pair.Right, connectionID(inst.CellName(), pair.Left.Name))
		}

		return
	}

	for _, net := range inst.Nets {
		g.addConnection(net, connectionID(inst.CellName(), ""))
	}
}

func modelName(inst *model.Instance) string {
	if inst.IsResolved() {
		return inst.Definition.CellName()
	}

	return inst.DefinitionName
}

// connectionID formats a net's connection identifier (spec §4.6):
// "{instance_name}.{port_name}" when the port is resolved, otherwise just
// the instance name.
func connectionID(instanceName, portName string) string {
	if portName == "" {
		return instanceName
	}

	return instanceName + "." + portName
}

func (g *CircuitGraph) addConnection(netName, connection string) {
	if _, seen := g.nets[netName]; !seen {
		g.netOrder = append(g.netOrder, netName)
	}

	g.nets[netName] = append(g.nets[netName], connection)
}

// NetCount returns the total number of distinct nets in the graph.
func (g *CircuitGraph) NetCount() int {
	return len(g.netOrder)
}

// Connections returns the connection identifiers attached to a net, in the
// order they were added. Returns nil for an unknown net.
func (g *CircuitGraph) Connections(netName string) []string {
	return g.nets[netName]
}

// Nets returns every net name in the graph, in first-use order.
func (g *CircuitGraph) Nets() []string {
	return g.netOrder
}

// fanout is a net's degree: the number of instance connections attached to
// it.
func (g *CircuitGraph) fanout() map[string]int {
	degrees := make(map[string]int, len(g.netOrder))
	for _, net := range g.netOrder {
		degrees[net] = len(g.nets[net])
	}

	return degrees
}

// AverageFanout returns the mean degree over all net nodes, the spec §4.6
// "average net fan-out". Returns 0 for an empty graph.
func (g *CircuitGraph) AverageFanout() float64 {
	if len(g.netOrder) == 0 {
		return 0
	}

	total := 0
	for _, conns := range g.nets {
		total += len(conns)
	}

	return float64(total) / float64(len(g.netOrder))
}

// MaxFanoutNet returns the net with the highest degree and its degree. Ties
// are broken by first appearance. Returns ("", 0) for an empty graph.
func (g *CircuitGraph) MaxFanoutNet() (string, int) {
	var (
		best      string
		bestCount int
	)

	for _, net := range g.netOrder {
		count := len(g.nets[net])
		if count > bestCount {
			best, bestCount = net, count
		}
	}

	return best, bestCount
}

// Stats summarizes NetCount, AverageFanout and MaxFanoutNet in one call.
type Stats struct {
	NetCount      int
	AverageFanout float64
	MaxFanoutNet  string
	MaxFanout     int
}

// Stats computes this graph's connectivity statistics (spec §4.6).
func (g *CircuitGraph) Stats() Stats {
	maxNet, maxCount := g.MaxFanoutNet()

	return Stats{
		NetCount:      g.NetCount(),
		AverageFanout: g.AverageFanout(),
		MaxFanoutNet:  maxNet,
		MaxFanout:     maxCount,
	}
}

// sortedNetNames returns the graph's net names in lexical order, used by
// ExportJSON so exported output is deterministic regardless of the
// concurrent parse order that produced the underlying netlist.
func (g *CircuitGraph) sortedNetNames() []string {
	names := make([]string, len(g.netOrder))
	copy(names, g.netOrder)
	sort.Strings(names)

	return names
}
