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

// Package compiler implements the orchestrator (spec §4.2): it walks
// include and library-section directives from a root file, maintaining a
// FIFO work queue of ParseRegions deduplicated by (filepath, start, end),
// dispatching each region to a bounded worker pool for parsing.
package compiler

import (
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/netlistio/ingest/pkg/mmap"
	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/scanner"
	"github.com/netlistio/ingest/pkg/source"
	"github.com/netlistio/ingest/pkg/spice"
	"github.com/netlistio/ingest/pkg/util"
)

// spiceStrategy adapts pkg/spice's format heuristics to the scanner's
// Strategy interface once, shared by every region the compiler scans.
var spiceStrategy = scanner.NewStrategy(spice.MatchesMacroStart, spice.MatchesMacroEnd)

// Compiler drains a FIFO work queue of regions across however many files a
// root netlist transitively references, aggregating every region's parsed
// cells, errors and directives (spec §4.2).
type Compiler struct {
	rootDir    string
	numWorkers int

	queue   []model.ParseRegion
	visited map[string]bool

	filesMu sync.Mutex
	files   map[string]*mmap.File

	inFlight  atomic.Int64
	completed atomic.Int64
}

// New constructs a Compiler. numWorkers bounds the concurrency of the
// per-wave worker pool (spec §5); values below 1 are treated as 1.
func New(rootFilepath string, numWorkers int) *Compiler {
	if numWorkers < 1 {
		numWorkers = 1
	}

	return &Compiler{
		rootDir:    filepath.Dir(rootFilepath),
		numWorkers: numWorkers,
		visited:    make(map[string]bool),
		files:      make(map[string]*mmap.File),
	}
}

// InFlight returns the number of region-parse jobs currently executing,
// for an optional caller-side progress readout.
func (c *Compiler) InFlight() int64 { return c.inFlight.Load() }

// Completed returns the number of region-parse jobs finished so far.
func (c *Compiler) Completed() int64 { return c.completed.Load() }

// Compile drains the work queue seeded with rootFilepath's whole-file
// region, returning the aggregate of every region's cells and errors. A
// non-nil error means the root file itself could not be opened - the one
// fatal I/O condition in the pipeline (spec §7); every other failure is
// recorded as a warning or a structured error on the result.
func (c *Compiler) Compile(rootFilepath string) (*model.ParseResult, error) {
	defer c.closeFiles()

	if _, err := c.open(rootFilepath); err != nil {
		return nil, errors.Wrapf(err, "failed to open root file %#v", rootFilepath)
	}

	c.enqueue(model.NewWholeFileRegion(rootFilepath))

	stats := util.NewPerfStats()
	aggregate := &model.ParseResult{}

	for len(c.queue) > 0 {
		batch := c.queue
		c.queue = nil

		for _, outcome := range c.processBatch(batch) {
			aggregate.Cells = append(aggregate.Cells, outcome.Cells...)
			aggregate.Errors = append(aggregate.Errors, outcome.Errors...)

			for _, inc := range outcome.Includes {
				c.handleInclude(inc, outcome.Region.Filepath)
			}

			for _, lib := range outcome.Libraries {
				c.handleLibrary(lib, outcome.Region.Filepath)
			}
		}
	}

	stats.Log("compiling netlist regions")

	return aggregate, nil
}

// processBatch parses every region in a wave concurrently, bounded by
// numWorkers, and blocks until all of them complete - there is no ordering
// guarantee across regions in the same wave (spec §5).
func (c *Compiler) processBatch(batch []model.ParseRegion) []model.ParseResult {
	results := make([]model.ParseResult, len(batch))
	sem := make(chan struct{}, c.numWorkers)

	var wg sync.WaitGroup

	for i, region := range batch {
		wg.Add(1)
		sem <- struct{}{}
		c.inFlight.Inc()

		go func(i int, region model.ParseRegion) {
			defer wg.Done()
			defer func() { <-sem }()
			defer c.inFlight.Dec()
			defer c.completed.Inc()

			results[i] = c.parseRegion(region)
		}(i, region)
	}

	wg.Wait()

	return results
}

// parseRegion parses a single region: a whole-file region is first run
// through the scanner to split it into Global/Macro sub-regions, each of
// which is then chunk-parsed; a byte-slice region (a library section) is
// chunk-parsed directly, as a flat list of declarations (spec §4.2 step 2).
func (c *Compiler) parseRegion(region model.ParseRegion) model.ParseResult {
	file, err := c.open(region.Filepath)
	if err != nil {
		return model.ParseResult{
			Region: region,
			Errors: []*model.ParseError{{Filepath: region.Filepath, Message: err.Error()}},
		}
	}

	srcFile := source.NewFile(region.Filepath, file.Data)

	if !region.NeedsScan() {
		return parseChunk(region, srcFile, file.Slice(region.Start, region.End), false)
	}

	subregions := scanner.Scan(region.Filepath, file.Slice(0, -1), spiceStrategy)
	aggregate := model.ParseResult{Region: region}

	for _, sub := range subregions {
		skipTitle := sub.Type == model.Global && sub.Start == 0
		part := parseChunk(sub, srcFile, file.Slice(sub.Start, sub.End), skipTitle)

		aggregate.Cells = append(aggregate.Cells, part.Cells...)
		aggregate.Errors = append(aggregate.Errors, part.Errors...)
		aggregate.Includes = append(aggregate.Includes, part.Includes...)
		aggregate.Libraries = append(aggregate.Libraries, part.Libraries...)
	}

	return aggregate
}

// handleInclude resolves an `.include`/Cadence-bracket directive's path
// (spec §6) and enqueues the target's whole-file region, or warns and drops
// it when unresolved.
func (c *Compiler) handleInclude(inc model.IncludeDirective, referrerFilepath string) {
	path := resolvePath(inc.Path, filepath.Dir(referrerFilepath), c.rootDir)
	if path == "" {
		if inc.Strict {
			log.Warnf("%s: could not resolve include %#v", referrerFilepath, inc.Path)
		}

		return
	}

	if _, err := c.open(path); err != nil {
		log.Warnf("%s: could not open include %#v: %v", referrerFilepath, path, err)
		return
	}

	c.enqueue(model.NewWholeFileRegion(path))
}

// handleLibrary resolves a `.lib` directive's path. A sectionless `.lib`
// behaves exactly like an include (spec §4.4); otherwise the named section
// is located within the target file and enqueued as its own byte-slice
// region.
func (c *Compiler) handleLibrary(lib model.LibraryDirective, referrerFilepath string) {
	path := resolvePath(lib.Path, filepath.Dir(referrerFilepath), c.rootDir)
	if path == "" {
		log.Warnf("%s: could not resolve library %#v", referrerFilepath, lib.Path)
		return
	}

	file, err := c.open(path)
	if err != nil {
		log.Warnf("%s: could not open library %#v: %v", referrerFilepath, path, err)
		return
	}

	if lib.Section == "" {
		c.enqueue(model.NewWholeFileRegion(path))
		return
	}

	start, end, found := findLibrarySection(file.Slice(0, -1), lib.Section)
	if !found {
		log.Warnf("%s: library section %#v not found in %#v", referrerFilepath, lib.Section, path)
		return
	}

	c.enqueue(model.NewByteSliceRegion(path, start, end, model.Global, util.Some(lib.Section)))
}

// enqueue appends region to the work queue unless its key has already been
// visited, implementing the dedup set of spec §4.2.
func (c *Compiler) enqueue(region model.ParseRegion) {
	key := region.Key()
	if c.visited[key] {
		return
	}

	c.visited[key] = true
	c.queue = append(c.queue, region)
}

// open returns the cached memory mapping for path, opening and caching it
// on first use. A file referenced by several regions (e.g. two library
// sections of the same file) is only ever mapped once.
func (c *Compiler) open(path string) (*mmap.File, error) {
	c.filesMu.Lock()
	defer c.filesMu.Unlock()

	if f, ok := c.files[path]; ok {
		return f, nil
	}

	f, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	c.files[path] = f

	return f, nil
}

func (c *Compiler) closeFiles() {
	c.filesMu.Lock()
	defer c.filesMu.Unlock()

	for _, f := range c.files {
		_ = f.Close()
	}
}
