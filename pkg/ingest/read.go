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
package ingest

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/netlistio/ingest/pkg/compiler"
	"github.com/netlistio/ingest/pkg/linker"
	"github.com/netlistio/ingest/pkg/model"
	"github.com/netlistio/ingest/pkg/util"
)

// Result is a linked netlist together with the non-fatal errors discovered
// while producing it (spec §7 "best-effort" policy): a caller that only
// wants a single error can use Errors(), which combines every LinkError via
// multierr; Netlist and LinkErrors remain available for callers that want
// the structured detail.
type Result struct {
	Netlist     *model.Netlist
	ParseErrors []*model.ParseError
	LinkErrors  []*model.LinkError
}

// Errors combines every ParseError and LinkError into a single error via
// go.uber.org/multierr, or nil if none were reported. The individual
// *model.ParseError/*model.LinkError values remain inspectable with
// errors.As over the combined chain.
func (r *Result) Errors() error {
	if len(r.ParseErrors) == 0 && len(r.LinkErrors) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.ParseErrors)+len(r.LinkErrors))
	for _, e := range r.ParseErrors {
		errs = append(errs, e)
	}

	for _, e := range r.LinkErrors {
		errs = append(errs, e)
	}

	return multierr.Combine(errs...)
}

// Read compiles rootFilepath and every file it transitively includes or
// pulls in via a library section, then links the result into a Netlist
// (spec §6). The returned error is non-nil only for a fatal failure (the
// root file itself could not be opened); everything else is reported
// through Result.LinkErrors / Result.Errors.
func Read(rootFilepath string, cfg Config) (*Result, error) {
	stats := util.NewPerfStats()
	defer stats.Log("ingest.Read")

	parsed, err := compiler.New(rootFilepath, cfg.numWorkers()).Compile(rootFilepath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile %#v", rootFilepath)
	}

	netlist, linkErrors := linker.Link(parsed)

	return &Result{Netlist: netlist, ParseErrors: parsed.Errors, LinkErrors: linkErrors}, nil
}
