// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSignalFlagsAndNoClassClosure covers the split-accessor layout:
// TrueStopsEmit is carried in the same flags byte as the other bits but
// reported through a separate accessor, and a Signal with no class closure
// bit set resolves to ok=false rather than a stale VFunc index.
func TestSignalFlagsAndNoClassClosure(t *testing.T) {
	b := newBlobBuilder()
	nameOff := b.addString("notify")
	base := b.offset()
	b.putU32(nameOff)
	b.putU8(uint8(SignalRunLast | SignalDetailed | SignalTrueStopsEmit))
	b.putU8(0) // no class closure
	b.putU16(0)
	data := b.finish()

	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(newFakeRepository(tl), tl, KindSignal, base)

	require.Equal(t, "notify", h.Name())
	require.Equal(t, SignalRunLast|SignalDetailed, h.GetSignalFlags())
	require.True(t, h.TrueStopsEmit())

	_, ok := h.GetClassClosure()
	require.False(t, ok)
}

func TestSignalWrongKindIsZeroValue(t *testing.T) {
	b := newBlobBuilder()
	base := buildSimpleEnum(b)
	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(nil, tl, KindEnum, base)

	require.Zero(t, h.GetSignalFlags())
	require.False(t, h.TrueStopsEmit())
	_, ok := h.GetClassClosure()
	require.False(t, ok)
}
