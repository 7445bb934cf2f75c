// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"bytes"
	"encoding/binary"
)

// HeaderSize is the on-disk size, in bytes, of the Header record: 13
// little-endian uint16 fields, (26 bytes total).
const HeaderSize = 26

// Header holds the per-blob-kind sizes that drive every offset computation
// in this package. The core never hard-codes these; it always reads them
// from the Header decoded alongside a Typelib's data.
type Header struct {
	EnumBlobSize      uint16
	ValueBlobSize     uint16
	StructBlobSize    uint16
	UnionBlobSize     uint16
	ObjectBlobSize    uint16
	InterfaceBlobSize uint16
	FieldBlobSize     uint16
	PropertyBlobSize  uint16
	SignalBlobSize    uint16
	VFuncBlobSize     uint16
	ConstantBlobSize  uint16
	FunctionBlobSize  uint16
	CallbackBlobSize  uint16
}

// DecodeHeader decodes a Header from the first HeaderSize bytes at offset.
func DecodeHeader(data []byte, offset uint32) (Header, error) {
	var h Header
	if uint64(offset)+uint64(HeaderSize) > uint64(len(data)) {
		return h, ErrOutsideBoundary
	}
	buf := bytes.NewReader(data[offset : offset+HeaderSize])
	if err := binary.Read(buf, binary.LittleEndian, &h); err != nil {
		return h, err
	}
	return h, nil
}

// Typelib is an immutable byte region plus its decoded Header. It is the
// package's only view of the underlying bytes; Typelib itself never
// mutates them.
type Typelib struct {
	data   []byte
	header Header
}

// NewTypelib wraps an in-memory byte slice and a decoded Header into a
// Typelib. The caller (an external loader, e.g. package diskblob) owns the
// lifetime of data; every InfoHandle derived from this Typelib must not
// outlive it.
func NewTypelib(data []byte, header Header) *Typelib {
	return &Typelib{data: data, header: header}
}

// Data returns the full byte region backing this typelib.
func (t *Typelib) Data() []byte { return t.data }

// Header returns the decoded per-blob-kind sizes.
func (t *Typelib) Header() *Header { return &t.header }

// Size returns the number of bytes in the byte region.
func (t *Typelib) Size() uint32 { return uint32(len(t.data)) }

// bounds reports whether offset to offset+size lies within the blob.
func (t *Typelib) bounds(offset, size uint32) bool {
	end := offset + size
	if end < offset { // overflow
		return false
	}
	return end <= t.Size()
}

// ReadUint8 reads a single byte at offset.
func (t *Typelib) ReadUint8(offset uint32) (uint8, error) {
	if !t.bounds(offset, 1) {
		return 0, ErrOutsideBoundary
	}
	return t.data[offset], nil
}

// ReadUint16 reads a little-endian uint16 at offset.
func (t *Typelib) ReadUint16(offset uint32) (uint16, error) {
	if !t.bounds(offset, 2) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint16(t.data[offset:]), nil
}

// ReadUint32 reads a little-endian uint32 at offset.
func (t *Typelib) ReadUint32(offset uint32) (uint32, error) {
	if !t.bounds(offset, 4) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint32(t.data[offset:]), nil
}

// ReadInt16 reads a little-endian, signed int16 at offset.
func (t *Typelib) ReadInt16(offset uint32) (int16, error) {
	v, err := t.ReadUint16(offset)
	return int16(v), err
}

// ReadInt32 reads a little-endian, signed int32 at offset.
func (t *Typelib) ReadInt32(offset uint32) (int32, error) {
	v, err := t.ReadUint32(offset)
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64 at offset.
func (t *Typelib) ReadUint64(offset uint32) (uint64, error) {
	if !t.bounds(offset, 8) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint64(t.data[offset:]), nil
}

// ReadBytes returns the size bytes starting at offset, without copying.
func (t *Typelib) ReadBytes(offset, size uint32) ([]byte, error) {
	if !t.bounds(offset, size) {
		return nil, ErrOutsideBoundary
	}
	return t.data[offset : offset+size], nil
}

// structUnpack decodes a fixed-layout struct of flat scalar fields (no
// bitfields) at offset: bounds-check, then binary.Read into iface.
func (t *Typelib) structUnpack(iface any, offset, size uint32) error {
	if !t.bounds(offset, size) {
		return ErrOutsideBoundary
	}
	buf := bytes.NewReader(t.data[offset : offset+size])
	return binary.Read(buf, binary.LittleEndian, iface)
}

// pad2 rounds n up to the nearest even number: Object and Interface pad
// their leading reference-entry arrays to an even count.
func pad2(n uint16) uint16 {
	return n + (n % 2)
}
