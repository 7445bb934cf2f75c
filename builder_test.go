// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"bytes"
	"encoding/binary"
)

// blobBuilder assembles a synthetic typelib image byte-by-byte, the same
// spirit as hivekit's hive/builder: since no real on-disk fixture ships
// with this module, tests construct the exact bytes they want to exercise
// rather than mocking the decoder.
type blobBuilder struct {
	buf    []byte
	header Header
}

func newBlobBuilder() *blobBuilder {
	return &blobBuilder{
		buf: make([]byte, HeaderSize),
		header: Header{
			EnumBlobSize:      enumBlobSize,
			ValueBlobSize:     valueBlobSize,
			StructBlobSize:    structBlobSize,
			UnionBlobSize:     unionBlobSize,
			ObjectBlobSize:    objectBlobSize,
			InterfaceBlobSize: interfaceBlobSize,
			FieldBlobSize:     fieldBlobSize,
			PropertyBlobSize:  propertyBlobSize,
			SignalBlobSize:    signalBlobSize,
			VFuncBlobSize:     vfuncBlobSize,
			ConstantBlobSize:  constantBlobSize,
			FunctionBlobSize:  functionBlobSize,
			CallbackBlobSize:  callbackBlobSize,
		},
	}
}

func (b *blobBuilder) offset() uint32 { return uint32(len(b.buf)) }

func (b *blobBuilder) putU8(v uint8)   { b.buf = append(b.buf, v) }
func (b *blobBuilder) putU16(v uint16) { b.buf = append(b.buf, byte(v), byte(v>>8)) }
func (b *blobBuilder) putU32(v uint32) {
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
func (b *blobBuilder) putI16(v int16) { b.putU16(uint16(v)) }
func (b *blobBuilder) putI32(v int32) { b.putU32(uint32(v)) }
func (b *blobBuilder) pad(n int) {
	for i := 0; i < n; i++ {
		b.putU8(0)
	}
}

// addString appends a NUL-terminated string and returns its offset. offset
// 0 is reserved as "no name" throughout the format, so the empty string at
// the very start of the blob (inside the Header, never addressed) is never
// returned by this method.
func (b *blobBuilder) addString(s string) uint32 {
	if s == "" {
		return 0
	}
	off := b.offset()
	b.buf = append(b.buf, []byte(s)...)
	b.buf = append(b.buf, 0)
	return off
}

// putCommon writes a CommonBlob: blob_type in the low 6 bits, deprecated in
// bit 6.
func (b *blobBuilder) putCommon(bt BlobType, deprecated bool) {
	v := uint8(bt) & 0x3f
	if deprecated {
		v |= 0x40
	}
	b.putU8(v)
	b.pad(3)
}

// putSimpleType writes a 4-byte SimpleTypeBlob with both reserved words
// zero, so resolveTypeShape treats it as authoritative.
func (b *blobBuilder) putSimpleType(tag TypeTag, pointer bool) {
	b.putU8(0)
	b.putU16(0)
	flag := uint8(tag) << 1
	if pointer {
		flag |= 0x01
	}
	b.putU8(flag)
}

// reserveU32 reserves 4 bytes for a SimpleTypeBlob/offset cell to be
// patched later via patchU32, for records (like Field) whose type slot must
// point at a boxed blob written afterward.
func (b *blobBuilder) reserveU32() uint32 {
	off := b.offset()
	b.putU32(0)
	return off
}

func (b *blobBuilder) patchU32(at, v uint32) {
	binary.LittleEndian.PutUint32(b.buf[at:at+4], v)
}

// putBoxedTypeHeader writes the first 2 bytes of the 4-byte header shared by
// every boxed type blob: tag in the low 5 bits and pointer in bit 5 of the
// first byte, then flagsByte1. The caller writes the remaining 2 bytes
// afterward (array-type word, interface entry, or n_domains).
func (b *blobBuilder) putBoxedTypeHeader(tag TypeTag, pointer bool, flagsByte1 uint8) {
	v := uint8(tag) & 0x1f
	if pointer {
		v |= 0x20
	}
	b.putU8(v)
	b.putU8(flagsByte1)
}

// writeInterfaceTypeAt writes an out-of-line InterfaceTypeBlob at the
// current offset, then patches the 4-byte type slot at slotOffset (written
// earlier via reserveU32) to point at it. Any nonzero offset value makes
// resolveTypeShape treat the slot as boxed rather than a SimpleType cell —
// no extra flag bits are needed.
func (b *blobBuilder) writeInterfaceTypeAt(slotOffset uint32, pointer bool, entry uint16) {
	dest := b.offset()
	b.putBoxedTypeHeader(TypeTagInterface, pointer, 0)
	b.putU16(entry & 0x3fff)
	b.pad(2)
	b.patchU32(slotOffset, dest)
}

func (b *blobBuilder) finish() []byte {
	var hdrBuf bytes.Buffer
	_ = binary.Write(&hdrBuf, binary.LittleEndian, b.header)
	copy(b.buf[:HeaderSize], hdrBuf.Bytes())
	return b.buf
}

// dirEntry is one slot of fakeRepository's directory.
type dirEntry struct {
	kind   Kind
	offset uint32
}

// fakeRepository is a test-only Repository: StringAt reads inline from the
// blob (this module's own string-pool convention, see cmd/girepodump);
// Resolve looks entries up in a plain slice built by the test.
type fakeRepository struct {
	t       *Typelib
	entries []dirEntry // 1-based; entries[0] is entry index 1
}

func (r *fakeRepository) StringAt(t *Typelib, offset uint32) (string, error) {
	if offset == 0 {
		return "", nil
	}
	data := t.Data()
	if uint64(offset) >= uint64(len(data)) {
		return "", ErrOutsideBoundary
	}
	end := offset
	for end < uint32(len(data)) && data[end] != 0 {
		end++
	}
	if end >= uint32(len(data)) {
		return "", ErrOutsideBoundary
	}
	return string(data[offset:end]), nil
}

func (r *fakeRepository) Resolve(t *Typelib, entryIndex uint16) (InfoHandle, error) {
	if entryIndex == 0 || int(entryIndex) > len(r.entries) {
		return InfoHandle{}, ErrUnresolved
	}
	e := r.entries[entryIndex-1]
	return NewTopLevelInfo(r, t, e.kind, e.offset), nil
}

func (r *fakeRepository) LookupSymbol(t *Typelib, name string) (GTypeInitFunc, bool) {
	switch name {
	case "missing_symbol":
		return nil, false
	default:
		return func() GType { return GType(0xC0FFEE) }, true
	}
}

func (r *fakeRepository) register(kind Kind, offset uint32) uint16 {
	r.entries = append(r.entries, dirEntry{kind: kind, offset: offset})
	return uint16(len(r.entries))
}

func newFakeRepository(t *Typelib) *fakeRepository {
	return &fakeRepository{t: t}
}
