// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildSimpleEnum lays out an Enum named "Color" with three values, storage
// type Int32, registered under GtkColor/gtk_color_get_type.
func buildSimpleEnum(b *blobBuilder) uint32 {
	nameOff := b.addString("Color")
	gtypeNameOff := b.addString("GtkColor")
	gtypeInitOff := b.addString("gtk_color_get_type")

	values := []struct {
		name string
		val  int32
	}{
		{"red", 0},
		{"green", 1},
		{"blue", 2},
	}
	// Resolve every value's name before the fixed-stride value array
	// begins: addString appends inline into the buffer, and GetEnumValue
	// addresses values by base + enum_blob_size + n*value_blob_size, which
	// assumes no bytes land between consecutive value records.
	valueNameOffs := make([]uint32, len(values))
	for i, v := range values {
		valueNameOffs[i] = b.addString(v.name)
	}

	base := b.offset()
	b.putCommon(BlobTypeEnum, false)
	b.putU32(nameOff)
	b.putU32(gtypeNameOff)
	b.putU32(gtypeInitOff)
	b.putU16(uint16(len(values)))
	b.putU8(uint8(TypeTagInt32))
	b.putU8(0)

	for i, v := range values {
		b.putCommon(BlobTypeInvalid, false)
		b.putU32(valueNameOffs[i])
		b.putI32(v.val)
	}
	return base
}

func TestEnumWalk(t *testing.T) {
	b := newBlobBuilder()
	base := buildSimpleEnum(b)
	data := b.finish()

	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	repo := newFakeRepository(tl)
	idx := repo.register(KindEnum, base)

	h, err := repo.Resolve(tl, idx)
	require.NoError(t, err)
	require.Equal(t, KindEnum, h.Kind())
	require.Equal(t, "Color", h.Name())
	require.Equal(t, 3, h.GetNValues())
	require.Equal(t, TypeTag(TypeTagInt32), h.GetStorageType())

	rt, ok := h.AsRegisteredType()
	require.True(t, ok)
	require.Equal(t, "GtkColor", rt.TypeName())
	require.Equal(t, "gtk_color_get_type", rt.TypeInit())

	gt, err := rt.GType()
	require.NoError(t, err)
	require.Equal(t, GType(0xC0FFEE), gt)

	wantNames := []string{"red", "green", "blue"}
	wantVals := []int64{0, 1, 2}
	for i, want := range wantNames {
		v, ok := h.GetEnumValue(i)
		require.True(t, ok)
		require.Equal(t, want, v.Name())
		got, err := v.GetValue()
		require.NoError(t, err)
		require.Equal(t, wantVals[i], got)
	}

	_, ok = h.GetEnumValue(3)
	require.False(t, ok)
}

func TestEnumGTypeNoneAndIntern(t *testing.T) {
	b := newBlobBuilder()
	nameOff := b.addString("Anon")
	internOff := b.addString("intern")
	base := b.offset()
	b.putCommon(BlobTypeEnum, false)
	b.putU32(nameOff)
	b.putU32(0) // no gtype name
	b.putU32(internOff)
	b.putU16(0)
	b.putU8(uint8(TypeTagUInt32))
	b.putU8(0)
	data := b.finish()

	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	repo := newFakeRepository(tl)
	idx := repo.register(KindEnum, base)
	h, err := repo.Resolve(tl, idx)
	require.NoError(t, err)

	rt, ok := h.AsRegisteredType()
	require.True(t, ok)
	require.Equal(t, "", rt.TypeName())
	gt, err := rt.GType()
	require.NoError(t, err)
	require.Equal(t, InternGType, gt)
}

// TestEnumValueOffsetUsesHeaderDeclaredSize pins GetEnumValue to the
// header's declared EnumBlobSize/ValueBlobSize rather than this decoder's
// own fixed constants: a typelib whose header declares extra trailing
// reserved bytes on Enum or Value must still resolve values at the
// header's offsets, not the hard-coded ones.
func TestEnumValueOffsetUsesHeaderDeclaredSize(t *testing.T) {
	b := newBlobBuilder()
	const enumTrailer = 8
	const valueTrailer = 4
	b.header.EnumBlobSize += enumTrailer
	b.header.ValueBlobSize += valueTrailer

	nameOff := b.addString("Color")
	redName := b.addString("red")
	greenName := b.addString("green")

	base := b.offset()
	b.putCommon(BlobTypeEnum, false)
	b.putU32(nameOff)
	b.putU32(0) // no gtype name
	b.putU32(0) // no gtype init
	b.putU16(2) // two values
	b.putU8(uint8(TypeTagInt32))
	b.putU8(0)
	b.pad(enumTrailer) // forward-compatible reserved trailer

	b.putCommon(BlobTypeInvalid, false)
	b.putU32(redName)
	b.putI32(7)
	b.pad(valueTrailer) // forward-compatible reserved trailer

	b.putCommon(BlobTypeInvalid, false)
	b.putU32(greenName)
	b.putI32(9)
	b.pad(valueTrailer) // forward-compatible reserved trailer

	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(newFakeRepository(tl), tl, KindEnum, base)

	require.Equal(t, 2, h.GetNValues())

	v0, ok := h.GetEnumValue(0)
	require.True(t, ok)
	require.Equal(t, "red", v0.Name())
	got0, err := v0.GetValue()
	require.NoError(t, err)
	require.Equal(t, int64(7), got0)

	v1, ok := h.GetEnumValue(1)
	require.True(t, ok)
	require.Equal(t, "green", v1.Name())
	got1, err := v1.GetValue()
	require.NoError(t, err)
	require.Equal(t, int64(9), got1)
}

func TestWrongKindAccessorsReturnZeroValue(t *testing.T) {
	b := newBlobBuilder()
	base := buildSimpleEnum(b)
	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	h := NewTopLevelInfo(nil, tl, KindEnum, base)

	// GetValue is a Value-only accessor; called on an Enum handle it must
	// return the zero value rather than surface an error to the caller.
	v, err := h.GetValue()
	require.NoError(t, err)
	require.Zero(t, v)
}
