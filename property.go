// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// PropertyFlags are the bits packed into PropertyBlob's flags byte.
type PropertyFlags uint8

// Recognized PropertyFlags bits.
const (
	PropertyReadable PropertyFlags = 1 << iota
	PropertyWritable
	PropertyConstruct
	PropertyConstructOnly
)

const propertyBlobSize = 12

// GetPropertyFlags returns this Property's Readable/Writable/Construct/
// ConstructOnly bits.
func (h InfoHandle) GetPropertyFlags() PropertyFlags {
	if h.kind != KindProperty {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 4)
	if err != nil {
		return 0
	}
	return PropertyFlags(b) & (PropertyReadable | PropertyWritable | PropertyConstruct | PropertyConstructOnly)
}

// GetPropertyType returns the Type handle for this Property's value.
func (h InfoHandle) GetPropertyType() (InfoHandle, bool) {
	if h.kind != KindProperty {
		return InfoHandle{}, false
	}
	return newTypeInfo(h, h.offset+8), true
}
