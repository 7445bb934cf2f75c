// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// FunctionFlags are the bits packed into FunctionBlob/CallbackBlob's flags
// byte.
type FunctionFlags uint8

// Recognized FunctionFlags bits.
const (
	FunctionIsConstructor FunctionFlags = 1 << iota
	FunctionIsStatic
)

const functionBlobSize = 16
const callbackBlobSize = functionBlobSize

// GetFunctionFlags returns this Function's IsConstructor/IsStatic bits. Not
// meaningful for a Callback.
func (h InfoHandle) GetFunctionFlags() FunctionFlags {
	if h.kind != KindFunction {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 12)
	if err != nil {
		return 0
	}
	return FunctionFlags(b) & (FunctionIsConstructor | FunctionIsStatic)
}

// IsConstructor reports whether this Function constructs a new instance.
func (h InfoHandle) IsConstructor() bool {
	return h.GetFunctionFlags()&FunctionIsConstructor != 0
}

// IsStatic reports whether this Function takes no instance argument.
func (h InfoHandle) IsStatic() bool {
	return h.GetFunctionFlags()&FunctionIsStatic != 0
}

// Symbol returns the exported C symbol name backing this Function or
// Callback, the same string lookup_symbol resolves against (the
// SymbolMissing path is surfaced by RegisteredType.GType, not by this
// accessor — Symbol itself never fails, returning "" on a malformed slot).
func (h InfoHandle) Symbol() string {
	if h.kind != KindFunction && h.kind != KindCallback {
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
