// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// BlobType is the on-disk discriminator tag shared by every container and
// leaf blob, packed into the low 6 bits of CommonBlob's first byte. It is
// the authoritative answer to "what kind of record starts here", used in
// particular by the embedded-callback exception.
type BlobType uint8

// Recognized BlobType values.
const (
	BlobTypeInvalid BlobType = iota
	BlobTypeFunction
	BlobTypeCallback
	BlobTypeStruct
	BlobTypeBoxed
	BlobTypeEnum
	BlobTypeFlags
	BlobTypeObject
	BlobTypeInterface
	BlobTypeConstant
	BlobTypeErrorDomain
	BlobTypeUnion
)

func (b BlobType) String() string {
	switch b {
	case BlobTypeFunction:
		return "Function"
	case BlobTypeCallback:
		return "Callback"
	case BlobTypeStruct:
		return "Struct"
	case BlobTypeBoxed:
		return "Boxed"
	case BlobTypeEnum:
		return "Enum"
	case BlobTypeFlags:
		return "Flags"
	case BlobTypeObject:
		return "Object"
	case BlobTypeInterface:
		return "Interface"
	case BlobTypeConstant:
		return "Constant"
	case BlobTypeErrorDomain:
		return "ErrorDomain"
	case BlobTypeUnion:
		return "Union"
	default:
		return "Invalid"
	}
}

const commonBlobSize = 4

// blobTypeAt reads the BlobType tag from the CommonBlob at offset, without
// decoding the rest of the record.
func (t *Typelib) blobTypeAt(offset uint32) (BlobType, error) {
	b, err := t.ReadUint8(offset)
	if err != nil {
		return BlobTypeInvalid, err
	}
	return BlobType(b & 0x3f), nil
}

// deprecatedAt reads the CommonBlob deprecated bit at offset.
func (t *Typelib) deprecatedAt(offset uint32) (bool, error) {
	b, err := t.ReadUint8(offset)
	if err != nil {
		return false, err
	}
	return b&0x40 != 0, nil
}

// commonBlobKinds are the kinds whose record begins with a CommonBlob
// (blob_type + deprecated bit), including Value. Leaf records with no
// polymorphic blob_type (Field, Property, Signal, VFunc) carry no
// deprecated bit of their own.
func (k Kind) hasCommonBlob() bool {
	switch k {
	case KindEnum, KindStruct, KindUnion, KindObject, KindInterface,
		KindConstant, KindFunction, KindCallback, KindErrorDomain, KindValue:
		return true
	default:
		return false
	}
}

// IsDeprecated reports whether this entity is marked deprecated in the
// typelib, or false for a kind with no CommonBlob.
func (h InfoHandle) IsDeprecated() bool {
	if !h.kind.hasCommonBlob() {
		return false
	}
	dep, err := h.typelib.deprecatedAt(h.offset)
	if err != nil {
		return false
	}
	return dep
}
