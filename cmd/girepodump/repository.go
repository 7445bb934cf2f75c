// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	typelib "github.com/gi-typelib/girepository"
)

// directoryRepository is this dumper's own minimal, self-contained
// girepository.Repository: a flat entry table plus an inline string pool,
// both trailing the Header at fixed, declared offsets. Resolving
// cross-typelib references (a full namespace registry) is explicitly not
// attempted — every Resolve call is served from the same Typelib that
// produced the entry index, which is all a one-file demo needs.
type directoryRepository struct {
	t         *typelib.Typelib
	dirOffset uint32
	dirCount  uint16
	entrySize uint32
}

// directoryEntrySize is this dumper's own directory record: a typelib.Kind
// byte (used by Resolve as the handle's kind, and by dump listings) plus a
// uint32 offset.
const directoryEntrySize = 5

// newDirectoryRepository reads the entry count at dirOffset and treats
// each following directoryEntrySize-byte record as one directory slot.
// Entry index 0 is reserved, matching every "0 = none" entry ref in the
// core (Object.Parent, the class and interface struct refs).
func newDirectoryRepository(t *typelib.Typelib, dirOffset uint32) (*directoryRepository, error) {
	count, err := t.ReadUint16(dirOffset)
	if err != nil {
		return nil, fmt.Errorf("girepodump: read directory count: %w", err)
	}
	return &directoryRepository{t: t, dirOffset: dirOffset + 2, dirCount: count, entrySize: directoryEntrySize}, nil
}

func (r *directoryRepository) entryOffset(idx uint16) (uint32, error) {
	if idx == 0 || int(idx) > int(r.dirCount) {
		return 0, typelib.ErrUnresolved
	}
	slot := r.dirOffset + uint32(idx-1)*r.entrySize
	return r.t.ReadUint32(slot + 1)
}

func (r *directoryRepository) entryKind(idx uint16) (typelib.Kind, error) {
	if idx == 0 || int(idx) > int(r.dirCount) {
		return typelib.KindInvalid, typelib.ErrUnresolved
	}
	slot := r.dirOffset + uint32(idx-1)*r.entrySize
	b, err := r.t.ReadUint8(slot)
	if err != nil {
		return typelib.KindInvalid, err
	}
	return typelib.Kind(b), nil
}

// StringAt reads a NUL-terminated string directly out of the typelib's
// byte region at offset: this format keeps its string pool inline rather
// than in a side table.
func (r *directoryRepository) StringAt(t *typelib.Typelib, offset uint32) (string, error) {
	data := t.Data()
	if uint64(offset) >= uint64(len(data)) {
		return "", typelib.ErrOutsideBoundary
	}
	end := offset
	for end < uint32(len(data)) && data[end] != 0 {
		end++
	}
	if end >= uint32(len(data)) {
		return "", typelib.ErrOutsideBoundary
	}
	return string(data[offset:end]), nil
}

// Resolve converts entryIndex into an InfoHandle via this repository's own
// directory table.
func (r *directoryRepository) Resolve(t *typelib.Typelib, entryIndex uint16) (typelib.InfoHandle, error) {
	off, err := r.entryOffset(entryIndex)
	if err != nil {
		return typelib.InfoHandle{}, err
	}
	kind, err := r.entryKind(entryIndex)
	if err != nil {
		return typelib.InfoHandle{}, err
	}
	return typelib.NewTopLevelInfo(r, t, kind, off), nil
}

// LookupSymbol is not implemented by this demo repository: a real
// implementation would dlopen the shared library the typelib describes and
// dlsym the requested name. Dumping a typelib never needs a live GType, so
// this always reports "not found" rather than faking a resolution.
func (r *directoryRepository) LookupSymbol(t *typelib.Typelib, name string) (typelib.GTypeInitFunc, bool) {
	return nil, false
}
