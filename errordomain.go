// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

const errorDomainBlobSize = 16

// GetQuark returns the name of the GQuark-returning function that
// identifies this ErrorDomain at runtime.
func (h InfoHandle) GetQuark() string {
	if h.kind != KindErrorDomain {
		return ""
	}
	off, err := h.typelib.ReadUint32(h.offset + 8)
	if err != nil {
		return ""
	}
	s, err := h.stringAt(off)
	if err != nil {
		return ""
	}
	return s
}

// GetCodes resolves the Enum listing this ErrorDomain's error codes.
func (h InfoHandle) GetCodes() (InfoHandle, bool) {
	if h.kind != KindErrorDomain {
		return InfoHandle{}, false
	}
	entry, err := h.typelib.ReadUint16(h.offset + 12)
	if err != nil {
		return InfoHandle{}, false
	}
	resolved, err := h.resolveEntry(entry)
	if err != nil {
		return InfoHandle{}, false
	}
	return resolved, true
}
