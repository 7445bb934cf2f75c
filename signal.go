// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// SignalFlags are the bits packed into SignalBlob's flags byte.
type SignalFlags uint8

// Recognized SignalFlags bits.
const (
	SignalRunFirst SignalFlags = 1 << iota
	SignalRunLast
	SignalRunCleanup
	SignalNoRecurse
	SignalDetailed
	SignalAction
	SignalNoHooks
	SignalTrueStopsEmit
)

const signalBlobSize = 8

// GetSignalFlags returns this Signal's RunFirst/RunLast/RunCleanup/NoRecurse/
// Detailed/Action/NoHooks bits. TrueStopsEmit is reported separately by
// the TrueStopsEmit accessor.
func (h InfoHandle) GetSignalFlags() SignalFlags {
	if h.kind != KindSignal {
		return 0
	}
	b, err := h.typelib.ReadUint8(h.offset + 4)
	if err != nil {
		return 0
	}
	return SignalFlags(b) &^ SignalTrueStopsEmit
}

// TrueStopsEmit reports whether a TRUE return from this Signal's handler
// stops emission to the remaining handlers.
func (h InfoHandle) TrueStopsEmit() bool {
	if h.kind != KindSignal {
		return false
	}
	b, err := h.typelib.ReadUint8(h.offset + 4)
	if err != nil {
		return false
	}
	return b&uint8(SignalTrueStopsEmit) != 0
}

// GetClassClosure resolves the VFunc this Signal's class closure invokes,
// addressed by index into the sibling container (an Object or Interface),
// through the container back-reference mechanism. ok is false when this
// Signal has no class closure.
func (h InfoHandle) GetClassClosure() (InfoHandle, bool) {
	if h.kind != KindSignal {
		return InfoHandle{}, false
	}
	flags2, err := h.typelib.ReadUint8(h.offset + 5)
	if err != nil || flags2&0x01 == 0 {
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
	return container.GetVFunc(int(idx))
}
