// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// This file holds the offset arithmetic for Struct and Union child records
// and the section bases of Object and Interface. The per-section strides on
// top of those bases are added in container.go; Enum values and the
// Object/Interface reference arrays are addressed in their own files.

// structFieldOffset computes the offset of field n (0-based) within a
// Struct at base: each field grows the section by field_blob_size, plus
// callback_blob_size when that field has an embedded type.
func (t *Typelib) structFieldOffset(base uint32, n int) (uint32, error) {
	h := t.header
	offset := base + uint32(h.StructBlobSize)
	for i := 0; i < n; i++ {
		embedded, err := t.fieldHasEmbeddedType(offset)
		if err != nil {
			return 0, err
		}
		offset += uint32(h.FieldBlobSize)
		if embedded {
			offset += uint32(h.CallbackBlobSize)
		}
	}
	return offset, nil
}

// structFieldsEnd returns the offset immediately after a Struct's nFields
// fields, i.e. structFieldOffset(base, nFields) — the base of its method
// section.
func (t *Typelib) structFieldsEnd(base uint32, nFields int) (uint32, error) {
	return t.structFieldOffset(base, nFields)
}

// structMethodOffset computes Struct.method[k]: the method section starts
// right after the (variable-length) field section.
func (t *Typelib) structMethodOffset(base uint32, nFields, k int) (uint32, error) {
	end, err := t.structFieldsEnd(base, nFields)
	if err != nil {
		return 0, err
	}
	return end + uint32(k)*uint32(t.header.FunctionBlobSize), nil
}

// unionFieldOffset computes Union.field[n]: unlike Struct, Union fields
// never carry embedded callbacks, so the section is uniformly sized.
func (t *Typelib) unionFieldOffset(base uint32, n int) uint32 {
	return base + uint32(t.header.UnionBlobSize) + uint32(n)*uint32(t.header.FieldBlobSize)
}

// unionMethodOffset computes Union.method[k].
func (t *Typelib) unionMethodOffset(base uint32, nFields, k int) uint32 {
	return t.unionFieldOffset(base, nFields) + uint32(k)*uint32(t.header.FunctionBlobSize)
}

// unionDiscriminatorOffset computes Union.discriminator[k], valid only when
// the union is discriminated.
func (t *Typelib) unionDiscriminatorOffset(base uint32, nFields, nFunctions, k int) uint32 {
	return t.unionMethodOffset(base, nFields, nFunctions) + uint32(k)*uint32(t.header.ConstantBlobSize)
}

// objectSectionsBase returns the offset where an Object's Fields section
// begins: right after the (pad2-rounded) interface-ref array.
func (t *Typelib) objectSectionsBase(base uint32, nInterfaces uint16) uint32 {
	return base + uint32(t.header.ObjectBlobSize) + uint32(pad2(nInterfaces))*2
}

// interfaceSectionsBase is the Interface analogue of objectSectionsBase.
func (t *Typelib) interfaceSectionsBase(base uint32, nPrerequisites uint16) uint32 {
	return base + uint32(t.header.InterfaceBlobSize) + uint32(pad2(nPrerequisites))*2
}
