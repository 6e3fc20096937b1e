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
package graph

import (
	"github.com/segmentio/encoding/json"
)

// exportedNet is one net's connectivity record in an ExportJSON document.
type exportedNet struct {
	Name        string   `json:"name"`
	Connections []string `json:"connections"`
	Fanout      int      `json:"fanout"`
}

// exportedGraph is the full ExportJSON document: summary statistics plus a
// per-net connection listing, handed to an external visualization back-end
// (spec §6) in place of the source's Graphviz/matplotlib rendering, which is
// out of scope.
type exportedGraph struct {
	NetCount      int           `json:"net_count"`
	AverageFanout float64       `json:"average_fanout"`
	MaxFanoutNet  string        `json:"max_fanout_net"`
	MaxFanout     int           `json:"max_fanout"`
	Nets          []exportedNet `json:"nets"`
}

// ExportJSON serializes this graph's connectivity statistics and per-net
// connection lists to JSON, net-sorted for deterministic output.
func (g *CircuitGraph) ExportJSON() ([]byte, error) {
	stats := g.Stats()

	names := g.sortedNetNames()
	nets := make([]exportedNet, len(names))

	for i, name := range names {
		conns := g.Connections(name)
		nets[i] = exportedNet{Name: name, Connections: conns, Fanout: len(conns)}
	}

	doc := exportedGraph{
		NetCount:      stats.NetCount,
		AverageFanout: stats.AverageFanout,
		MaxFanoutNet:  stats.MaxFanoutNet,
		MaxFanout:     stats.MaxFanout,
		Nets:          nets,
	}

	return json.Marshal(doc)
}
