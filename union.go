// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

const unionBlobSize = 28
const unionDiscriminatorOffsetFieldOffset = 20
const unionDiscriminatorTypeFieldOffset = 24

// UnionFlags are the bits packed into UnionBlob's flags byte.
type UnionFlags uint8

// Recognized UnionFlags bits.
const (
	UnionDiscriminated UnionFlags = 1 << iota
)

func (h InfoHandle) unionFlags() UnionFlags {
	if h.kind != KindUnion {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 14)
	if err != nil {
		return 0
	}
	return UnionFlags(b)
}

// IsDiscriminated reports whether this Union carries a tag field
// identifying which member is active.
func (h InfoHandle) IsDiscriminated() bool {
	return h.unionFlags()&UnionDiscriminated != 0
}

func (h InfoHandle) unionCounts() (nFields, nMethods int) {
	if h.kind != KindUnion {
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

// GetDiscriminatorOffset returns the byte offset of the tag field within the
// C union, meaningful only when IsDiscriminated.
func (h InfoHandle) GetDiscriminatorOffset() int {
	if h.kind != KindUnion {
		return 0
	}
	v, err := h.typelib.ReadUint32(h.offset + unionDiscriminatorOffsetFieldOffset)
	if err != nil {
		return 0
	}
	return int(v)
}

// GetDiscriminatorType returns the Type of this Union's tag field.
func (h InfoHandle) GetDiscriminatorType() (InfoHandle, bool) {
	if h.kind != KindUnion {
		return InfoHandle{}, false
	}
	return newTypeInfo(h, h.offset+unionDiscriminatorTypeFieldOffset), true
}

// GetDiscriminator resolves the Constant naming the n'th member's tag
// value, valid only when IsDiscriminated.
func (h InfoHandle) GetDiscriminator(n int) (InfoHandle, bool) {
	if h.kind != KindUnion || !h.IsDiscriminated() || n < 0 {
		return InfoHandle{}, false
	}
	nFields, nMethods := h.unionCounts()
	if n >= nFields {
		return InfoHandle{}, false
	}
	off := h.typelib.unionDiscriminatorOffset(h.offset, nFields, nMethods, n)
	return newChildInfo(h, KindConstant, off), true
}
