// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build gofuzz

package typelib

// Fuzz is a go-fuzz entry point, kept in the same package as the decoder it
// drives rather than a separate fuzz package. It treats data as a raw
// typelib image: decode the Header, then probe every declared Kind at a
// handful of data-derived offsets through the full accessor surface.
// Nothing here requires a Repository — every accessor degrades to a zero
// value or WrongKind rather than panicking when repository is nil, so this
// harness exercises exactly the bounds-checking and discriminator logic
// the core owns.
func Fuzz(data []byte) int {
	hdr, err := DecodeHeader(data, 0)
	if err != nil {
		return 0
	}
	t := NewTypelib(data, hdr)

	kinds := []Kind{
		KindType, KindErrorDomain, KindEnum, KindValue, KindField,
		KindStruct, KindUnion, KindObject, KindInterface, KindProperty,
		KindSignal, KindVFunc, KindConstant, KindFunction, KindCallback,
	}

	interesting := 0
	for _, off := range candidateOffsets(data) {
		for _, k := range kinds {
			h := newInfo(nil, nil, t, k, off)
			probeHandle(h)
			interesting++
		}
	}
	if interesting == 0 {
		return 0
	}
	return 1
}

// candidateOffsets turns the fuzzer's raw bytes into a bounded set of
// offsets to probe, so a single input exercises many records without
// O(len(data)^2) work.
func candidateOffsets(data []byte) []uint32 {
	offs := []uint32{0, HeaderSize}
	for i := 0; i+4 <= len(data) && len(offs) < 64; i += 4 {
		offs = append(offs, uint32(i))
	}
	return offs
}

// probeHandle calls every read-only accessor that doesn't require a
// Repository, swallowing bounds/malformed errors: the point is to prove
// nothing panics, not to assert a particular decoded value.
func probeHandle(h InfoHandle) {
	_ = h.Name()
	_ = h.GetSize()
	_ = h.GetAlignment()
	_ = h.IsForeign()
	_ = h.IsGTypeStruct()
	_ = h.IsDiscriminated()
	_ = h.GetNFields()
	_ = h.GetNMethods()
	_ = h.GetNProperties()
	_ = h.GetNSignals()
	_ = h.GetNVFuncs()
	_ = h.GetNConstants()
	_ = h.GetNValues()
	_ = h.GetStorageType()
	_ = h.IsPointer()
	_ = h.GetTag()
	_ = h.GetArrayLength()
	_ = h.GetArrayFixedSize()
	_ = h.IsZeroTerminated()
	_ = h.GetArrayType()
	_ = h.GetNErrorDomains()
	_ = h.GetFieldFlags()
	_ = h.GetFieldSize()
	_ = h.GetFieldOffset()
	_ = h.HasEmbeddedType()
	_ = h.GetPropertyFlags()
	_ = h.GetSignalFlags()
	_ = h.TrueStopsEmit()
	_ = h.GetVFuncFlags()
	_ = h.GetVFuncOffset()
	_ = h.Symbol()
	_ = h.IsConstructor()
	_ = h.IsStatic()
	_ = h.GetAbstract()
	_ = h.GetNInterfaces()
	_ = h.GetNPrerequisites()
	if _, err := h.GetValue(); err != nil {
		_ = err
	}
	if _, _, err := h.GetConstantValue(); err != nil {
		_ = err
	}
}
