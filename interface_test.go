// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInterfacePrerequisitesAndMembers builds an Interface with one
// prerequisite (an odd count, again forcing pad2 rounding) and a property
// plus a method in its member sections, proving the shared container
// accessors dispatch correctly for Interface (which, unlike Object, has no
// Fields section).
func TestInterfacePrerequisitesAndMembers(t *testing.T) {
	b := newBlobBuilder()
	repo := newFakeRepository(nil)

	p0 := buildMinimalInterface(b, "GObject")
	e0 := repo.register(KindObject, p0)

	nameOff := b.addString("GtkOrientable")
	gtypeNameOff := b.addString("GtkOrientable")
	gtypeInitOff := b.addString("gtk_orientable_get_type")
	// Resolved before base: the Property and Method sections are addressed
	// by formula relative to base, so no string bytes may land between them.
	propName := b.addString("orientation")
	mName := b.addString("get_orientation")
	mSym := b.addString("gtk_orientable_get_orientation")

	base := b.offset()
	b.putCommon(BlobTypeInterface, false)
	b.putU32(nameOff)
	b.putU32(gtypeNameOff)
	b.putU32(gtypeInitOff)
	b.putU16(0) // IfaceStruct
	b.putU16(1) // NPrerequisites
	b.putU16(1) // NProperties
	b.putU16(1) // NMethods
	b.putU16(0) // NSignals
	b.putU16(0) // NVFuncs
	b.putU16(0) // NConstants
	b.putU16(0) // reserved
	b.putU16(e0)
	b.pad(2) // pad2(1) == 2 slots

	// Property 0.
	b.putU32(propName)
	b.putU8(uint8(PropertyReadable | PropertyWritable))
	b.pad(3)
	b.putSimpleType(TypeTagInt32, false)

	// Method 0.
	b.putCommon(BlobTypeFunction, false)
	b.putU32(mName)
	b.putU32(mSym)
	b.putU8(0)
	b.pad(3)

	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	repo.t = tl
	h := NewTopLevelInfo(repo, tl, KindInterface, base)

	require.Equal(t, 1, h.GetNPrerequisites())
	prereq, ok := h.GetPrerequisite(0)
	require.True(t, ok)
	require.Equal(t, "GObject", prereq.Name())
	_, ok = h.GetPrerequisite(1)
	require.False(t, ok)

	require.Equal(t, 0, h.GetNFields())
	_, ok = h.GetField(0)
	require.False(t, ok)

	require.Equal(t, 1, h.GetNProperties())
	prop, ok := h.GetProperty(0)
	require.True(t, ok)
	require.Equal(t, "orientation", prop.Name())
	require.Equal(t, PropertyReadable|PropertyWritable, prop.GetPropertyFlags())

	require.Equal(t, 1, h.GetNMethods())
	m, ok := h.GetMethod(0)
	require.True(t, ok)
	require.Equal(t, "get_orientation", m.Name())

	found, ok := h.FindMethod("get_orientation")
	require.True(t, ok)
	require.Equal(t, m.Offset(), found.Offset())

	rt, ok := h.AsRegisteredType()
	require.True(t, ok)
	require.Equal(t, "GtkOrientable", rt.TypeName())
	require.Equal(t, "gtk_orientable_get_type", rt.TypeInit())
}

// TestInterfacePrerequisiteOffsetUsesHeaderDeclaredSize pins
// GetPrerequisite to the header's declared InterfaceBlobSize rather than
// this decoder's own fixed constant: a typelib whose header declares a
// forward-compatible reserved trailer on Interface must still resolve the
// prerequisite-ref array immediately after it, not at the hard-coded
// offset.
func TestInterfacePrerequisiteOffsetUsesHeaderDeclaredSize(t *testing.T) {
	b := newBlobBuilder()
	const interfaceTrailer = 8
	b.header.InterfaceBlobSize += interfaceTrailer
	repo := newFakeRepository(nil)

	p0 := buildMinimalInterface(b, "GObject")
	e0 := repo.register(KindObject, p0)

	nameOff := b.addString("GtkOrientable")
	base := b.offset()
	b.putCommon(BlobTypeInterface, false)
	b.putU32(nameOff)
	b.putU32(0) // GTypeName
	b.putU32(0) // GTypeInit
	b.putU16(0) // IfaceStruct
	b.putU16(1) // NPrerequisites
	b.putU16(0) // NProperties
	b.putU16(0) // NMethods
	b.putU16(0) // NSignals
	b.putU16(0) // NVFuncs
	b.putU16(0) // NConstants
	b.putU16(0) // reserved
	b.pad(interfaceTrailer) // forward-compatible reserved trailer
	b.putU16(e0)
	b.pad(2) // pad2(1) == 2 slots

	data := b.finish()
	hdr, err := DecodeHeader(data, 0)
	require.NoError(t, err)
	tl := NewTypelib(data, hdr)
	repo.t = tl
	h := NewTopLevelInfo(repo, tl, KindInterface, base)

	require.Equal(t, 1, h.GetNPrerequisites())
	prereq, ok := h.GetPrerequisite(0)
	require.True(t, ok)
	require.Equal(t, "GObject", prereq.Name())
}
