// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package diskblob memory-maps a typelib image from disk: open, mmap
// read-only, decode the leading Header, hand back an immutable byte
// region.
package diskblob

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"

	typelib "github.com/gi-typelib/girepository"
	"github.com/gi-typelib/girepository/typelog"
)

// Options configures Map.
type Options struct {
	// HeaderOffset is where the 26-byte Header begins within the mapped
	// file, by default 0.
	HeaderOffset uint32

	// A custom logger; defaults to typelog.Default().
	Logger *typelog.Helper
}

// Region is a memory-mapped typelib image plus the decoded Typelib view
// over it. Close unmaps the underlying file; every InfoHandle derived from
// Typelib() must not outlive that call.
type Region struct {
	f       *os.File
	data    mmap.MMap
	typelib *typelib.Typelib
	logger  *typelog.Helper
}

// Map opens name and memory-maps it read-only, then decodes a Header at
// opts.HeaderOffset (or 0 if opts is nil).
func Map(name string, opts *Options) (*Region, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger := typelog.Default()
	var headerOffset uint32
	if opts != nil {
		headerOffset = opts.HeaderOffset
		if opts.Logger != nil {
			logger = opts.Logger
		}
	}

	hdr, err := typelib.DecodeHeader(data, headerOffset)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}

	logger.Debugf("mapped %s: %d bytes, header at 0x%x", name, len(data), headerOffset)

	return &Region{
		f:       f,
		data:    data,
		typelib: typelib.NewTypelib(data, hdr),
		logger:  logger,
	}, nil
}

// Typelib returns the decoded view over the mapped bytes.
func (r *Region) Typelib() *typelib.Typelib { return r.typelib }

// Close unmaps the file and releases the descriptor.
func (r *Region) Close() error {
	if err := r.data.Unmap(); err != nil {
		return err
	}
	return r.f.Close()
}
