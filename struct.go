// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// StructFlags are the bits packed into StructBlob's flags byte.
type StructFlags uint8

// Recognized StructFlags bits.
const (
	StructForeign StructFlags = 1 << iota
	StructIsGTypeStruct
)

const structBlobSize = 20

// GetSize returns the C sizeof() of this Struct.
func (h InfoHandle) GetSize() int {
	switch h.kind {
	case KindStruct:
		v, err := h.typelib.ReadUint32(h.offset + 8)
		if err != nil {
			return 0
		}
		return int(v)
	case KindUnion:
		v, err := h.typelib.ReadUint32(h.offset + 8)
		if err != nil {
			return 0
		}
		return int(v)
	default:
		return 0
	}
}

// GetAlignment returns the required alignment of this Struct or Union.
func (h InfoHandle) GetAlignment() int {
	switch h.kind {
	case KindStruct, KindUnion:
		v, err := h.typelib.ReadUint16(h.offset + 12)
		if err != nil {
			return 0
		}
		return int(v)
	default:
		return 0
	}
}

func (h InfoHandle) structFlags() StructFlags {
	if h.kind != KindStruct {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 14)
	if err != nil {
		return 0
	}
	return StructFlags(b)
}

// IsForeign reports whether this Struct's layout is opaque to introspection
// (it names no fields the navigator can walk).
func (h InfoHandle) IsForeign() bool {
	return h.structFlags()&StructForeign != 0
}

// IsGTypeStruct reports whether this Struct is the class/interface struct
// of some RegisteredType, rather than an ordinary record.
func (h InfoHandle) IsGTypeStruct() bool {
	return h.structFlags()&StructIsGTypeStruct != 0
}

func (h InfoHandle) structCounts() (nFields, nMethods int) {
	if h.kind != KindStruct {
		return 0, 0
	}
	nf, err := h.typelib.ReadUint16(h.offset + 16)
	if err != nil {
		return 0, 0
	}
	nm, err := h.typelib.ReadUint16(h.offset + 18)
	if err != nil {
		return 0, 0
	}
	return int(nf), int(nm)
}
