// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildConstant writes a top-level ConstantBlob whose type is the given
// SimpleType tag, with its value written out-of-line right after the blob
// and patched in via the reserved ValueOffset word.
func buildConstant(b *blobBuilder, name string, tag TypeTag, pointer bool, size uint32, writeValue func(*blobBuilder)) uint32 {
	nameOff := b.addString(name)
	base := b.offset()
	b.putCommon(BlobTypeConstant, false)
	b.putU32(nameOff)
	b.putSimpleType(tag, pointer)
	b.putU32(size)
	valSlot := b.reserveU32()
	valPos := b.offset()
	writeValue(b)
	b.patchU32(valSlot, valPos)
	return base
}

func TestConstantBasicScalars(t *testing.T) {
	b := newBlobBuilder()

	i32 := buildConstant(b, "MAX_WIDGETS", TypeTagInt32, false, 4, func(b *blobBuilder) { b.putI32(-7) })
	u32 := buildConstant(b, "FLAG_MASK", TypeTagUInt32, false, 4, func(b *blobBuilder) { b.putU32(0xdeadbeef) })
	boolean := buildConstant(b, "DEBUG", TypeTagBoolean, false, 1, func(b *blobBuilder) { b.putU8(1) })
	f32 := buildConstant(b, "PI_F", TypeTagFloat, false, 4, func(b *blobBuilder) {
		b.putU32(math.Float32bits(3.5))
	})
	f64 := buildConstant(b, "PI", TypeTagDouble, false, 8, func(b *blobBuilder) {
		bits := math.Float64bits(3.14159)
		b.putU32(uint32(bits))
		b.putU32(uint32(bits >> 32))
	})

	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)

	h := NewTopLevelInfo(nil, tl, KindConstant, i32)
	cv, size, err := h.GetConstantValue()
	require.NoError(t, err)
	require.Equal(t, 4, size)
	require.Equal(t, int64(-7), cv.Int)

	h = NewTopLevelInfo(nil, tl, KindConstant, u32)
	cv, _, err = h.GetConstantValue()
	require.NoError(t, err)
	require.Equal(t, uint64(0xdeadbeef), cv.Uint)

	h = NewTopLevelInfo(nil, tl, KindConstant, boolean)
	cv, _, err = h.GetConstantValue()
	require.NoError(t, err)
	require.True(t, cv.Bool)

	h = NewTopLevelInfo(nil, tl, KindConstant, f32)
	cv, _, err = h.GetConstantValue()
	require.NoError(t, err)
	require.InDelta(t, 3.5, cv.Float32, 0.0001)

	h = NewTopLevelInfo(nil, tl, KindConstant, f64)
	cv, _, err = h.GetConstantValue()
	require.NoError(t, err)
	require.InDelta(t, 3.14159, cv.Float64, 0.00001)
}

// TestConstantNonBasicFlagged proves a pointer-valued (non-basic) Constant
// is flagged via ErrNonBasicConstant rather than guessed at.
func TestConstantNonBasicFlagged(t *testing.T) {
	b := newBlobBuilder()
	base := buildConstant(b, "DEFAULT_ICON", TypeTagUTF8, true, 4, func(b *blobBuilder) {
		b.putU32(0) // stand-in: a pointer value, never dereferenced by this package
	})
	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(nil, tl, KindConstant, base)

	_, size, err := h.GetConstantValue()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonBasicConstant))
	require.Equal(t, 4, size)
}

// TestConstantWrongKindIsZeroValue proves GetConstantValue never surfaces
// errWrongKind to the caller.
func TestConstantWrongKindIsZeroValue(t *testing.T) {
	b := newBlobBuilder()
	base := buildSimpleEnum(b)
	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(nil, tl, KindEnum, base)

	cv, size, err := h.GetConstantValue()
	require.NoError(t, err)
	require.Zero(t, size)
	require.Equal(t, ConstantValue{}, cv)
}
