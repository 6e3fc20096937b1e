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

// Package mmap provides read-only memory mapping of netlist source files. It
// is deliberately minimal: a File's Data is never written after Open, so one
// mapping may be read from several goroutines at once, and it is released
// deterministically on Close (see spec §5).
package mmap

import (
	"errors"
	"io"
	"runtime/debug"
	"syscall"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File is a read-only memory mapping of a file's entire contents.
type File struct {
	fd   int
	Data []byte
}

// Open memory-maps the file at path for reading. The caller must call Close
// once done to release the mapping and underlying file descriptor.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		_ = unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to stat file %#v", path)
	}

	if stat.Size == 0 {
		// mmap() rejects a zero-length mapping; represent an empty file as an
		// empty slice without ever calling into the syscall.
		_ = unix.Close(fd)
		return &File{fd: -1, Data: []byte{}}, nil
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, pkgErrors.Wrapf(err, "failed to memory map file %#v", path)
	}

	return &File{fd: fd, Data: data}, nil
}

// ReadAt reads through the memory map at a given offset, recovering from any
// page fault triggered by a backing I/O error rather than crashing the
// worker.
func (f *File) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, syscall.EINVAL
	}

	if off > int64(len(f.Data)) {
		return 0, io.EOF
	}

	old := debug.SetPanicOnFault(true)

	defer func() {
		debug.SetPanicOnFault(old)

		if recover() != nil {
			err = errors.New("page fault occurred while reading from memory map")
		}
	}()

	n = copy(p, f.Data[off:])
	if n < len(p) {
		err = io.EOF
	}

	return
}

// Slice returns the byte range [start,end) of the mapping. end == -1 means
// "to end of file", matching the ParseRegion sentinel (spec §3).
func (f *File) Slice(start, end int) []byte {
	if end < 0 {
		end = len(f.Data)
	}

	if start < 0 {
		start = 0
	}

	if end > len(f.Data) {
		end = len(f.Data)
	}

	if start >= end {
		return nil
	}

	return f.Data[start:end]
}

// Close unmaps the file and releases its descriptor.
func (f *File) Close() error {
	if f.fd < 0 {
		return nil
	}

	if len(f.Data) > 0 {
		if err := unix.Munmap(f.Data); err != nil {
			return pkgErrors.Wrap(err, "failed to unmap file")
		}
	}

	return unix.Close(f.fd)
}
