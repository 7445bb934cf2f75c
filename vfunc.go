// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// VFuncFlags are the bits packed into VFuncBlob's flags byte.
type VFuncFlags uint8

// Recognized VFuncFlags bits.
const (
	VFuncMustChainUp VFuncFlags = 1 << iota
	VFuncMustBeImplemented
	VFuncMustNotBeImplemented
	vfuncHasClassClosure // internal: bit3, not part of the public flag set
)

const vfuncBlobSize = 16

// noInvoker is the sentinel on-disk invoker value meaning "no invoker",
// the maximum of the 10-bit invoker field.
const noInvoker = 1023

// GetVFuncFlags returns this VFunc's MustChainUp/MustBeImplemented/
// MustNotBeImplemented bits.
func (h InfoHandle) GetVFuncFlags() VFuncFlags {
	if h.kind != KindVFunc {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 4)
	if err != nil {
		return 0
	}
	return VFuncFlags(b) & (VFuncMustChainUp | VFuncMustBeImplemented | VFuncMustNotBeImplemented)
}

// GetVFuncOffset returns this VFunc's slot offset in the class/interface
// C struct.
func (h InfoHandle) GetVFuncOffset() int {
	if h.kind != KindVFunc {
		return 0
	}
	off, err := h.typelib.ReadUint32(h.offset + 8)
	if err != nil {
		return 0
	}
	return int(off)
}

// GetSignal resolves the Signal this VFunc is the class closure for, via
// its sibling container, when the on-disk class_closure bit is set.
func (h InfoHandle) GetSignal() (InfoHandle, bool) {
	if h.kind != KindVFunc {
		return InfoHandle{}, false
	}
	b, err := h.typelib.ReadUint8(h.offset + 4)
	if err != nil || b&uint8(vfuncHasClassClosure) == 0 {
		return InfoHandle{}, false
	}
	idx, err := h.typelib.ReadUint16(h.offset + 6)
	if err != nil {
		return InfoHandle{}, false
	}
	container, ok := h.Container()
	if !ok {
		return InfoHandle{}, false
	}
	return container.GetSignalAt(int(idx))
}

// GetInvoker resolves the concrete method that implements this VFunc slot,
// routed through the sibling container's GetMethod. ok is false when the
// on-disk invoker field is the sentinel 1023 ("none").
func (h InfoHandle) GetInvoker() (InfoHandle, bool) {
	if h.kind != KindVFunc {
		return InfoHandle{}, false
	}
	raw, err := h.typelib.ReadUint16(h.offset + 12)
	if err != nil {
		return InfoHandle{}, false
	}
	idx := raw & 0x3ff
	if idx == noInvoker {
		return InfoHandle{}, false
	}
	container, ok := h.Container()
	if !ok {
		return InfoHandle{}, false
	}
	return container.GetMethod(int(idx))
}
