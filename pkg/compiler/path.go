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
package compiler

import (
	"os"
	"path/filepath"
)

// resolvePath implements the path resolution order of spec §6: an absolute
// path that exists, a path relative to the referring file's directory, or
// a path relative to the root file's directory, in that order. The first
// candidate that exists on disk wins; an empty string means none did.
func resolvePath(raw string, referrerDir string, rootDir string) string {
	if filepath.IsAbs(raw) {
		if exists(raw) {
			return raw
		}

		return ""
	}

	if cand := filepath.Join(referrerDir, raw); exists(cand) {
		return cand
	}

	if cand := filepath.Join(rootDir, raw); exists(cand) {
		return cand
	}

	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
