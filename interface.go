// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

const interfaceBlobSize = 32

type interfaceCounts struct {
	nPrerequisites, nProperties, nMethods, nSignals, nVFuncs, nConstants int
}

func (h InfoHandle) interfaceCounts() interfaceCounts {
	var c interfaceCounts
	if h.kind != KindInterface {
		return c
	}
	read := func(off uint32) int {
		v, err := h.typelib.ReadUint16(h.offset + off)
		if err != nil {
			return 0
		}
		return int(v)
	}
	c.nPrerequisites = read(18)
	c.nProperties = read(20)
	c.nMethods = read(22)
	c.nSignals = read(24)
	c.nVFuncs = read(26)
	c.nConstants = read(28)
	return c
}

// GetIfaceStruct resolves the C struct describing this Interface's vtable
// layout.
func (h InfoHandle) GetIfaceStruct() (InfoHandle, bool) {
	if h.kind != KindInterface {
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

// GetNPrerequisites returns the number of types this Interface requires its
// implementors to also be or implement.
func (h InfoHandle) GetNPrerequisites() int {
	return h.interfaceCounts().nPrerequisites
}

// GetPrerequisite resolves the n'th prerequisite type.
func (h InfoHandle) GetPrerequisite(n int) (InfoHandle, bool) {
	if h.kind != KindInterface || n < 0 {
		return InfoHandle{}, false
	}
	c := h.interfaceCounts()
	if n >= c.nPrerequisites {
		return InfoHandle{}, false
	}
	entryOff := h.offset + uint32(h.typelib.header.InterfaceBlobSize) + uint32(n)*2
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

func (h InfoHandle) interfaceSectionsBase() uint32 {
	c := h.interfaceCounts()
	return h.typelib.interfaceSectionsBase(h.offset, uint16(c.nPrerequisites))
}
