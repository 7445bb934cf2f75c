// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// FieldFlags are the bits packed into FieldBlob's flags byte.
type FieldFlags uint8

// Recognized FieldFlags bits.
const (
	FieldReadable FieldFlags = 1 << iota
	FieldWritable
	fieldHasEmbeddedType // internal only; exposed via Field.HasEmbeddedType
)

const fieldBlobSize = 16

func (t *Typelib) fieldFlagsAt(offset uint32) (uint8, error) {
	return t.ReadUint8(offset + 4)
}

func (t *Typelib) fieldHasEmbeddedType(offset uint32) (bool, error) {
	flags, err := t.fieldFlagsAt(offset)
	if err != nil {
		return false, err
	}
	return flags&uint8(fieldHasEmbeddedType) != 0, nil
}

// GetFieldFlags returns the Readable/Writable bits for this Field.
func (h InfoHandle) GetFieldFlags() FieldFlags {
	if h.kind != KindField {
		return 0
	}
	flags, err := h.typelib.fieldFlagsAt(h.offset)
	if err != nil {
		return 0
	}
	return FieldFlags(flags) & (FieldReadable | FieldWritable)
}

// GetFieldSize returns the size of this Field in bits.
func (h InfoHandle) GetFieldSize() int {
	if h.kind != KindField {
		return 0
	}
	bits, err := h.typelib.ReadUint16(h.offset + 6)
	if err != nil {
		return 0
	}
	return int(bits)
}

// GetFieldOffset returns this Field's byte offset within its containing C
// struct/union.
func (h InfoHandle) GetFieldOffset() int {
	if h.kind != KindField {
		return 0
	}
	off, err := h.typelib.ReadUint32(h.offset + 8)
	if err != nil {
		return 0
	}
	return int(off)
}

// HasEmbeddedType reports whether this Field's Type is an embedded Callback
// blob rather than an inline SimpleType cell.
func (h InfoHandle) HasEmbeddedType() bool {
	if h.kind != KindField {
		return false
	}
	embedded, err := h.typelib.fieldHasEmbeddedType(h.offset)
	if err != nil {
		return false
	}
	return embedded
}

// GetFieldType returns the Type handle for this Field, honoring the
// embedded-callback exception: when HasEmbeddedType is set, the returned
// handle's type_is_embedded is true and its offset points at the Callback
// blob following this Field record.
func (h InfoHandle) GetFieldType() (InfoHandle, bool) {
	if h.kind != KindField {
		return InfoHandle{}, false
	}
	embedded := h.HasEmbeddedType()
	slot := h.offset + 12
	if embedded {
		slot = h.offset + uint32(h.typelib.header.FieldBlobSize)
	}
	t := newTypeInfo(h, slot)
	t.typeIsEmbedded = embedded
	return t, true
}
