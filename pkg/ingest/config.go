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

// Package ingest is the public entry point of the netlist ingestion
// pipeline: it ties the compiler and linker together behind a single Read
// call (spec §6), mirroring go-corset's CompilationConfig-and-entry-point
// shape in pkg/corset/compiler.go.
package ingest

import "runtime"

// Config controls a single Read call. The zero value is valid: NumWorkers
// defaults to the host's available parallelism.
type Config struct {
	// NumWorkers bounds the compiler's worker pool (spec §5). Zero means use
	// runtime.GOMAXPROCS(0).
	NumWorkers int
}

func (c Config) numWorkers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}

	return runtime.GOMAXPROCS(0)
}
