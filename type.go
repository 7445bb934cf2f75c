// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// TypeTag enumerates the primitive and composite kinds a Type can describe,
// packed into bits 1-5 of a SimpleTypeBlob's 4th byte (above the pointer
// bit) or the low 5 bits of a boxed type blob's common header.
type TypeTag uint8

// Recognized TypeTag values. Short/UShort/Int/UInt/Long/ULong/TimeT are
// platform aliases of the fixed-width tags below and are not modeled as
// distinct tags; a decoder targeting one of those C types picks the
// fixed-width tag of matching size.
const (
	TypeTagVoid TypeTag = iota
	TypeTagBoolean
	TypeTagInt8
	TypeTagUInt8
	TypeTagInt16
	TypeTagUInt16
	TypeTagInt32
	TypeTagUInt32
	TypeTagInt64
	TypeTagUInt64
	TypeTagFloat
	TypeTagDouble
	TypeTagGType
	TypeTagUTF8
	TypeTagFilename
	TypeTagArray
	TypeTagInterface
	TypeTagGList
	TypeTagGSList
	TypeTagGHash
	TypeTagError
	TypeTagUnichar
)

func (tag TypeTag) String() string {
	names := [...]string{
		"Void", "Boolean", "Int8", "UInt8", "Int16", "UInt16", "Int32",
		"UInt32", "Int64", "UInt64", "Float", "Double", "GType", "Utf8",
		"Filename", "Array", "Interface", "GList", "GSList", "GHash",
		"Error", "Unichar",
	}
	if int(tag) < len(names) {
		return names[tag]
	}
	return "Unknown"
}

// IsBasic reports whether tag names a fixed-width scalar with no further
// structure (everything except Array/Interface/GList/GSList/GHash/Error).
func (tag TypeTag) IsBasic() bool {
	switch tag {
	case TypeTagArray, TypeTagInterface, TypeTagGList, TypeTagGSList,
		TypeTagGHash, TypeTagError:
		return false
	default:
		return true
	}
}

// ArrayType enumerates the concrete container an Array type slot describes.
type ArrayType uint16

// Recognized ArrayType values.
const (
	ArrayTypeC ArrayType = iota
	ArrayTypeArray
	ArrayTypePtrArray
	ArrayTypeByteArray
)

const (
	simpleTypeBlobSize    = 4
	paramOrArrayBlobSize  = 8 // sizeof(ParamTypeBlob): common header + one reserved/dimension word.
	interfaceTypeBlobSize = 8
	errorTypeBlobHdrSize  = 8
)

// typeShape is the internal decode result of the type-slot discriminator:
// at most one of simple/array/iface/errType is populated, selected by kind
// (shapeParam reuses simple for its pointer bit and tag; shapeEmbedded
// populates none).
type typeShape struct {
	kind    typeShapeKind
	base    uint32 // offset of the authoritative 4-byte (or boxed) cell
	simple  simpleTypeFlags
	array   arrayTypeFields
	iface   interfaceTypeFields
	errType errorTypeFields
}

type typeShapeKind int

const (
	shapeSimple typeShapeKind = iota
	shapeArray
	shapeParam
	shapeInterface
	shapeError
	shapeEmbedded
)

type simpleTypeFlags struct {
	reserved  uint8
	reserved2 uint16
	pointer   bool
	tag       TypeTag
}

type arrayTypeFields struct {
	pointer        bool
	hasLength      bool
	hasSize        bool
	zeroTerminated bool
	arrayType      ArrayType
	length         int16
	fixedSize      int16
}

type interfaceTypeFields struct {
	pointer bool
	entry   uint16
}

type errorTypeFields struct {
	pointer  bool
	nDomains uint16
}

// decodeSimpleTypeFlags reads the 4-byte SimpleTypeBlob shape at offset
// without following any pointer, .
func (t *Typelib) decodeSimpleTypeFlags(offset uint32) (simpleTypeFlags, error) {
	var f simpleTypeFlags
	b0, err := t.ReadUint8(offset)
	if err != nil {
		return f, err
	}
	b12, err := t.ReadUint16(offset + 1)
	if err != nil {
		return f, err
	}
	b3, err := t.ReadUint8(offset + 3)
	if err != nil {
		return f, err
	}
	f.reserved = b0
	f.reserved2 = b12
	f.pointer = b3&0x01 != 0
	f.tag = TypeTag((b3 >> 1) & 0x1f)
	return f, nil
}

// resolveTypeShape applies the type-slot discrimination rule: read the
// 4-byte cell at slotOffset; if both reserved fields are zero (and the type
// isn't embedded), it is authoritative; otherwise reinterpret the same 4
// bytes as a little-endian offset and decode the boxed blob it points at.
func (t *Typelib) resolveTypeShape(slotOffset uint32, embedded bool) (typeShape, error) {
	if embedded {
		bt, err := t.blobTypeAt(slotOffset)
		if err != nil {
			return typeShape{}, err
		}
		if bt != BlobTypeCallback {
			return typeShape{}, malformed(KindType, slotOffset,
				"embedded type slot names a blob_type other than Callback")
		}
		return typeShape{kind: shapeEmbedded, base: slotOffset}, nil
	}

	simple, err := t.decodeSimpleTypeFlags(slotOffset)
	if err != nil {
		return typeShape{}, err
	}
	if simple.reserved == 0 && simple.reserved2 == 0 {
		return typeShape{kind: shapeSimple, base: slotOffset, simple: simple}, nil
	}

	dest, err := t.ReadUint32(slotOffset)
	if err != nil {
		return typeShape{}, err
	}

	hdr0, err := t.ReadUint8(dest)
	if err != nil {
		return typeShape{}, err
	}
	hdr1, err := t.ReadUint8(dest + 1)
	if err != nil {
		return typeShape{}, err
	}
	tag := TypeTag(hdr0 & 0x1f)
	pointer := hdr0&0x20 != 0

	switch tag {
	case TypeTagArray:
		arrayTypeRaw, err := t.ReadUint16(dest + 2)
		if err != nil {
			return typeShape{}, err
		}
		length, err := t.ReadInt16(dest + 4)
		if err != nil {
			return typeShape{}, err
		}
		fixedSize, err := t.ReadInt16(dest + 6)
		if err != nil {
			return typeShape{}, err
		}
		return typeShape{
			kind: shapeArray,
			base: dest,
			array: arrayTypeFields{
				pointer:        pointer,
				hasLength:      hdr1&0x01 != 0,
				hasSize:        hdr1&0x02 != 0,
				zeroTerminated: hdr1&0x04 != 0,
				arrayType:      ArrayType(arrayTypeRaw),
				length:         length,
				fixedSize:      fixedSize,
			},
		}, nil

	case TypeTagGList, TypeTagGSList, TypeTagGHash:
		return typeShape{kind: shapeParam, base: dest, simple: simpleTypeFlags{pointer: pointer, tag: tag}}, nil

	case TypeTagInterface:
		entry, err := t.ReadUint16(dest + 2)
		if err != nil {
			return typeShape{}, err
		}
		return typeShape{
			kind:  shapeInterface,
			base:  dest,
			iface: interfaceTypeFields{pointer: pointer, entry: entry & 0x3fff},
		}, nil

	case TypeTagError:
		nDomains, err := t.ReadUint16(dest + 2)
		if err != nil {
			return typeShape{}, err
		}
		return typeShape{
			kind:    shapeError,
			base:    dest,
			errType: errorTypeFields{pointer: pointer, nDomains: nDomains},
		}, nil

	default:
		return typeShape{}, malformed(KindType, dest, "unknown boxed type tag")
	}
}

// IsPointer reports whether the value described by this Type is passed by
// reference.
func (h InfoHandle) IsPointer() bool {
	shape, err := h.typeShape()
	if err != nil {
		return false
	}
	switch shape.kind {
	case shapeSimple:
		return shape.simple.pointer
	case shapeArray:
		return shape.array.pointer
	case shapeParam:
		return shape.simple.pointer
	case shapeInterface:
		return shape.iface.pointer
	case shapeError:
		return shape.errType.pointer
	case shapeEmbedded:
		return true
	default:
		return false
	}
}

// GetTag returns the TypeTag this Type describes. An embedded type (the
// embedded-callback exception) always reports Interface.
func (h InfoHandle) GetTag() TypeTag {
	shape, err := h.typeShape()
	if err != nil {
		return TypeTagVoid
	}
	switch shape.kind {
	case shapeSimple:
		return shape.simple.tag
	case shapeArray:
		return TypeTagArray
	case shapeParam:
		return shape.simple.tag
	case shapeInterface:
		return TypeTagInterface
	case shapeError:
		return TypeTagError
	case shapeEmbedded:
		return TypeTagInterface
	default:
		return TypeTagVoid
	}
}

// GetParamType returns the n'th parameter type of a GList/GSList/GHash/Array
// type, or the zero handle with ok=false when n is out of range or this
// Type has no parameter types.
func (h InfoHandle) GetParamType(n int) (InfoHandle, bool) {
	shape, err := h.typeShape()
	if err != nil || n < 0 {
		return InfoHandle{}, false
	}
	switch shape.kind {
	case shapeParam:
		maxN := 0
		if shape.simple.tag == TypeTagGHash {
			maxN = 1
		}
		if n > maxN {
			return InfoHandle{}, false
		}
		off := shape.base + paramOrArrayBlobSize + uint32(n)*simpleTypeBlobSize
		return newTypeInfo(h, off), true
	case shapeArray:
		if n != 0 {
			return InfoHandle{}, false
		}
		return newTypeInfo(h, shape.base+paramOrArrayBlobSize), true
	default:
		return InfoHandle{}, false
	}
}

// GetInterface resolves the cross-referenced Interface/Object/Enum/Struct
// named by an Interface-tagged Type, or ok=false when this Type isn't
// Interface-tagged. For an embedded type (the embedded-callback exception)
// it returns the embedded Callback blob itself as a KindCallback handle.
func (h InfoHandle) GetInterface() (InfoHandle, bool) {
	shape, err := h.typeShape()
	if err != nil {
		return InfoHandle{}, false
	}
	switch shape.kind {
	case shapeInterface:
		resolved, err := h.resolveEntry(shape.iface.entry)
		if err != nil {
			return InfoHandle{}, false
		}
		return resolved, true
	case shapeEmbedded:
		return newChildInfo(h, KindCallback, shape.base), true
	default:
		return InfoHandle{}, false
	}
}

// GetArrayLength returns the element count of a fixed-length Array type, or
// -1 when this Type is not an Array or has no declared length.
func (h InfoHandle) GetArrayLength() int {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeArray || !shape.array.hasLength {
		return -1
	}
	return int(shape.array.length)
}

// GetArrayFixedSize returns the fixed element count of an Array type sized
// in bytes at compile time, or -1 when not applicable.
func (h InfoHandle) GetArrayFixedSize() int {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeArray || !shape.array.hasSize {
		return -1
	}
	return int(shape.array.fixedSize)
}

// IsZeroTerminated reports whether an Array type is NUL/NULL-terminated
// rather than length-prefixed.
func (h InfoHandle) IsZeroTerminated() bool {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeArray {
		return false
	}
	return shape.array.zeroTerminated
}

// GetArrayType reports which concrete container an Array type describes.
func (h InfoHandle) GetArrayType() ArrayType {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeArray {
		return ArrayTypeC
	}
	return shape.array.arrayType
}

// GetNErrorDomains returns the number of domains an Error type can raise.
func (h InfoHandle) GetNErrorDomains() int {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeError {
		return 0
	}
	return int(shape.errType.nDomains)
}

// GetErrorDomain resolves the n'th ErrorDomain of an Error type.
func (h InfoHandle) GetErrorDomain(n int) (InfoHandle, bool) {
	shape, err := h.typeShape()
	if err != nil || shape.kind != shapeError {
		return InfoHandle{}, false
	}
	if n < 0 || n >= int(shape.errType.nDomains) {
		return InfoHandle{}, false
	}
	entry, err := h.typelib.ReadUint16(shape.base + errorTypeBlobHdrSize + uint32(n)*2)
	if err != nil {
		return InfoHandle{}, false
	}
	resolved, err := h.resolveEntry(entry)
	if err != nil {
		return InfoHandle{}, false
	}
	return resolved, true
}

// typeShape decodes this handle's type shape, honoring type_is_embedded.
func (h InfoHandle) typeShape() (typeShape, error) {
	if h.kind != KindType {
		return typeShape{}, errWrongKind
	}
	return h.typelib.resolveTypeShape(h.offset, h.typeIsEmbedded)
}
