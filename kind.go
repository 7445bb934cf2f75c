// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// Kind identifies which decoder an InfoHandle dispatches to. It is the Go
// encoding of InfoHandle.kind's enumeration.
type Kind int

// Recognized InfoHandle kinds.
const (
	KindInvalid Kind = iota
	KindType
	KindErrorDomain
	KindEnum
	KindValue
	KindField
	KindStruct
	KindUnion
	KindObject
	KindInterface
	KindProperty
	KindSignal
	KindVFunc
	KindConstant
	KindFunction
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "Type"
	case KindErrorDomain:
		return "ErrorDomain"
	case KindEnum:
		return "Enum"
	case KindValue:
		return "Value"
	case KindField:
		return "Field"
	case KindStruct:
		return "Struct"
	case KindUnion:
		return "Union"
	case KindObject:
		return "Object"
	case KindInterface:
		return "Interface"
	case KindProperty:
		return "Property"
	case KindSignal:
		return "Signal"
	case KindVFunc:
		return "VFunc"
	case KindConstant:
		return "Constant"
	case KindFunction:
		return "Function"
	case KindCallback:
		return "Callback"
	default:
		return "Invalid"
	}
}
