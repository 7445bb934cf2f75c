// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

const objectBlobSize = 36

type objectCounts struct {
	nInterfaces, nFields, nProperties, nMethods, nSignals, nVFuncs, nConstants int
}

func (h InfoHandle) objectCounts() objectCounts {
	var c objectCounts
	if h.kind != KindObject {
		return c
	}
	read := func(off uint32) int {
		v, err := h.typelib.ReadUint16(h.offset + off)
		if err != nil {
			return 0
		}
		return int(v)
	}
	c.nInterfaces = read(22)
	c.nFields = read(24)
	c.nProperties = read(26)
	c.nMethods = read(28)
	c.nSignals = read(30)
	c.nVFuncs = read(32)
	c.nConstants = read(34)
	return c
}

// GetAbstract reports whether instances of this Object can't be created
// directly.
func (h InfoHandle) GetAbstract() bool {
	if h.kind != KindObject {
		return false
	}
	b, err := h.typelib.ReadUint8(h.offset + 20)
	if err != nil {
		return false
	}
	return b&0x01 != 0
}

// GetParent resolves this Object's parent class, or ok=false at the root
// of the hierarchy.
func (h InfoHandle) GetParent() (InfoHandle, bool) {
	if h.kind != KindObject {
		return InfoHandle{}, false
	}
	entry, err := h.typelib.ReadUint16(h.offset + 16)
	if err != nil || entry == 0 {
		return InfoHandle{}, false
	}
	resolved, err := h.resolveEntry(entry)
	if err != nil {
		return InfoHandle{}, false
	}
	return resolved, true
}

// GetClassStruct resolves the C struct describing this Object's class/
// vtable layout.
func (h InfoHandle) GetClassStruct() (InfoHandle, bool) {
	if h.kind != KindObject {
		return InfoHandle{}, false
	}
	entry, err := h.typelib.ReadUint16(h.offset + 18)
	if err != nil || entry == 0 {
		return InfoHandle{}, false
	}
	resolved, err := h.resolveEntry(entry)
	if err != nil {
		return InfoHandle{}, false
	}
	return resolved, true
}

// GetNInterfaces returns the number of interfaces this Object implements
// directly.
func (h InfoHandle) GetNInterfaces() int {
	return h.objectCounts().nInterfaces
}

// GetInterfaceAt resolves the n'th interface this Object implements. Named
// distinctly from Type.GetInterface, which resolves the single interface an
// Interface-tagged Type cross-references.
func (h InfoHandle) GetInterfaceAt(n int) (InfoHandle, bool) {
	if h.kind != KindObject || n < 0 {
		return InfoHandle{}, false
	}
	c := h.objectCounts()
	if n >= c.nInterfaces {
		return InfoHandle{}, false
	}
	entryOff := h.offset + uint32(h.typelib.header.ObjectBlobSize) + uint32(n)*2
	entry, err := h.typelib.ReadUint16(entryOff)
	if err != nil {
		return InfoHandle{}, false
	}
	resolved, err := h.resolveEntry(entry)
	if err != nil {
		return InfoHandle{}, false
	}
	return resolved, true
}

func (h InfoHandle) objectSectionsBase() uint32 {
	c := h.objectCounts()
	return h.typelib.objectSectionsBase(h.offset, uint16(c.nInterfaces))
}
