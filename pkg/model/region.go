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

	"github.com/netlistio/ingest/pkg/util"
)

// RegionType tells the chunk parser how to interpret the cells it produces
// from a region's logical lines (spec §4.1, §4.3 "region emission rule").
type RegionType uint8

const (
	// Global regions contribute their cells directly to the top-level cell
	// list. Title-line skipping applies only when the region additionally
	// starts at byte 0 (spec §4.3).
	Global RegionType = iota
	// Macro regions are produced by the scanner for a `.subckt`...`.ends`
	// span: the first logical line is the subcircuit header, and every
	// instance that follows becomes a child of that macro.
	Macro
)

// EndOfFile is the ParseRegion.End sentinel meaning "to the end of the
// file", mirroring the Python end_byte == -1 convention (spec §3).
const EndOfFile = -1

// ParseRegion identifies a byte range of a single file that the compiler
// has queued for scanning and parsing. Regions are deduplicated by the
// orchestrator using Key(), so a file included twice from different
// contexts is only ever compiled once (spec §4.2).
type ParseRegion struct {
	Filepath string
	Start    int
	End      int // EndOfFile means "to end of file"
	Type     RegionType
	// Name holds the macro name (for a Macro region) or library section
	// name (for a resolved library section), used purely for diagnostics.
	Name util.Option[string]
}

// NewWholeFileRegion constructs a region covering an entire file, as seeded
// for the root file and for every resolved `.include`/sectionless `.lib`
// target. NeedsScan is always true for such a region.
func NewWholeFileRegion(filepath string) ParseRegion {
	return ParseRegion{Filepath: filepath, Start: 0, End: EndOfFile, Type: Global}
}

// NewByteSliceRegion constructs a region over an explicit byte range, such
// as a resolved library section or one of the scanner's own Global/Macro
// sub-regions of an already-scanned file.
func NewByteSliceRegion(filepath string, start, end int, regionType RegionType, name util.Option[string]) ParseRegion {
	return ParseRegion{Filepath: filepath, Start: start, End: end, Type: regionType, Name: name}
}

// NeedsScan reports whether this region is an entire, as-yet-unscanned
// file, and must first be run through the scanner to discover its
// Global/Macro sub-regions before the chunk parser can process it (spec
// §4.2 "Case A: Whole File" vs "Case B: Byte Slice").
func (r ParseRegion) NeedsScan() bool {
	return r.Start == 0 && r.End == EndOfFile
}

// Key returns the visited-set dedup key for this region, "filepath:start-end"
// (spec §4.2, "visited_regions").
func (r ParseRegion) Key() string {
	return fmt.Sprintf("%s:%d-%d", r.Filepath, r.Start, r.End)
}
