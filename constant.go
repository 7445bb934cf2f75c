// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"fmt"
	"math"
)

const constantBlobSize = 20

// ConstantValue is the materialized leaf value of a Constant, tagged by the
// TypeTag of its declared type. Exactly one of the typed fields is
// meaningful, selected by Tag — mirroring the C union GArgument the format
// is drawn from, without exposing unsafe.Pointer to callers.
type ConstantValue struct {
	Tag     TypeTag
	Bool    bool
	Int     int64
	Uint    uint64
	Float32 float32
	Float64 float64
	Bytes   []byte // populated when the value is a pointer/non-basic type
}

// ErrNonBasicConstant is returned by GetConstantValue when a Constant's type
// is not a basic scalar: pointer-valued, a boxed type (Interface, Array,
// ...), or a tag with no scalar decoding here (e.g. Utf8, GType).
// Non-basic constant values are unsupported and must be flagged rather
// than silently mis-decoded.
var ErrNonBasicConstant = fmt.Errorf("%w: non-basic constant value", ErrMalformedBlob)

// GetConstantType returns the Type handle describing this Constant's value.
func (h InfoHandle) GetConstantType() (InfoHandle, bool) {
	if h.kind != KindConstant {
		return InfoHandle{}, false
	}
	return newTypeInfo(h, h.offset+8), true
}

// GetConstantValue materializes this Constant's value:
//  1. read the embedded SimpleType slot;
//  2. if it is pointer-valued, copy size bytes into Bytes and return
//     ErrNonBasicConstant (non-basic values are not decoded);
//  3. else dispatch on tag and read the native scalar from data[offset].
//
// The second return is the number of bytes the value occupies on disk,
// valid even when err is ErrNonBasicConstant.
func (h InfoHandle) GetConstantValue() (ConstantValue, int, error) {
	if h.kind != KindConstant {
		return ConstantValue{}, 0, nil
	}
	size, err := h.typelib.ReadUint32(h.offset + 12)
	if err != nil {
		return ConstantValue{}, 0, err
	}
	valueOffset, err := h.typelib.ReadUint32(h.offset + 16)
	if err != nil {
		return ConstantValue{}, 0, err
	}

	typ, _ := h.GetConstantType()
	shape, err := typ.typeShape()
	if err != nil {
		return ConstantValue{}, int(size), err
	}

	if shape.kind != shapeSimple || shape.simple.pointer {
		data, err := h.typelib.ReadBytes(valueOffset, size)
		if err != nil {
			return ConstantValue{}, int(size), err
		}
		cv := ConstantValue{Tag: typ.GetTag(), Bytes: append([]byte(nil), data...)}
		return cv, int(size), ErrNonBasicConstant
	}

	cv := ConstantValue{Tag: shape.simple.tag}
	t := h.typelib
	switch shape.simple.tag {
	case TypeTagBoolean:
		v, err := t.ReadUint8(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Bool = v != 0
	case TypeTagInt8:
		v, err := t.ReadUint8(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Int = int64(int8(v))
	case TypeTagUInt8:
		v, err := t.ReadUint8(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Uint = uint64(v)
	case TypeTagInt16:
		v, err := t.ReadInt16(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Int = int64(v)
	case TypeTagUInt16:
		v, err := t.ReadUint16(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Uint = uint64(v)
	case TypeTagInt32:
		v, err := t.ReadInt32(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Int = int64(v)
	case TypeTagUInt32:
		v, err := t.ReadUint32(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Uint = uint64(v)
	case TypeTagInt64:
		v, err := t.ReadUint64(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Int = int64(v)
	case TypeTagUInt64:
		v, err := t.ReadUint64(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Uint = v
	case TypeTagFloat:
		v, err := t.ReadUint32(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Float32 = math.Float32frombits(v)
	case TypeTagDouble:
		v, err := t.ReadUint64(valueOffset)
		if err != nil {
			return cv, int(size), err
		}
		cv.Float64 = math.Float64frombits(v)
	default:
		return cv, int(size), ErrNonBasicConstant
	}
	return cv, int(size), nil
}
