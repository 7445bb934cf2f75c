// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// enumBlobSize is EnumBlob's decode size: CommonBlob(4) + Name(4) +
// GTypeName(4) + GTypeInit(4) + NValues(2) + StorageType(1) + reserved(1).
const enumBlobSize = 20

// GetNValues returns the number of named values this Enum declares.
func (h InfoHandle) GetNValues() int {
	if h.kind != KindEnum {
		return 0
	}
	n, err := h.typelib.ReadUint16(h.offset + 16)
	if err != nil {
		return 0
	}
	return int(n)
}

// GetEnumValue returns the n'th Value (0-based, in on-disk/insertion order) of
// this Enum, at B + enum_blob_size + n*value_blob_size.
func (h InfoHandle) GetEnumValue(n int) (InfoHandle, bool) {
	if h.kind != KindEnum || n < 0 || n >= h.GetNValues() {
		return InfoHandle{}, false
	}
	hdr := h.typelib.header
	off := h.offset + uint32(hdr.EnumBlobSize) + uint32(n)*uint32(hdr.ValueBlobSize)
	return newChildInfo(h, KindValue, off), true
}

// GetStorageType returns the integer TypeTag used to store this Enum's
// values in C. The signedness recorded here may not match what the C
// compiler actually chose; this accessor must not attempt to normalize it.
func (h InfoHandle) GetStorageType() TypeTag {
	if h.kind != KindEnum {
		return TypeTagVoid
	}
	b, err := h.typelib.ReadUint8(h.offset + 18)
	if err != nil {
		return TypeTagVoid
	}
	return TypeTag(b)
}
