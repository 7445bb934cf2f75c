// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// RegisteredType is the capability shared by the GType-registered kinds —
// Enum, Object, Interface — that carry a gtype_name/gtype_init pair in
// their blob. It is applied by composition (registeredTypeOffsets per
// kind) rather than by an embedded base struct, modeling the
// Base -> RegisteredType relationship as a capability, not inheritance.
type RegisteredType struct {
	h             InfoHandle
	gtypeNameOff  uint32
	gtypeInitOff  uint32
}

// registeredTypeOffsets reports the record-relative byte offsets of the
// gtype_name/gtype_init fields for kinds that have them, per the layout notes
// §3.F. ok is false for kinds with no RegisteredType capability (Struct,
// Union, Field, ...).
func (h InfoHandle) registeredTypeOffsets() (nameOff, initOff uint32, ok bool) {
	switch h.kind {
	case KindEnum:
		return 8, 12, true
	case KindObject:
		return 8, 12, true
	case KindInterface:
		return 8, 12, true
	default:
		return 0, 0, false
	}
}

// AsRegisteredType exposes the RegisteredType capability of h, or ok=false
// when h's kind has none.
func (h InfoHandle) AsRegisteredType() (RegisteredType, bool) {
	nameOff, initOff, ok := h.registeredTypeOffsets()
	if !ok {
		return RegisteredType{}, false
	}
	return RegisteredType{h: h, gtypeNameOff: nameOff, gtypeInitOff: initOff}, true
}

// TypeName returns the GType name registered for this type (e.g.
// "GtkWidget"), or "" if this type isn't registered with the type system.
func (r RegisteredType) TypeName() string {
	off, err := r.h.typelib.ReadUint32(r.h.offset + r.gtypeNameOff)
	if err != nil {
		return ""
	}
	name, err := r.h.stringAt(off)
	if err != nil {
		return ""
	}
	return name
}

// TypeInit returns the name of the function that registers this type with
// the type system, "intern" for fundamental types, or "" when unregistered.
func (r RegisteredType) TypeInit() string {
	off, err := r.h.typelib.ReadUint32(r.h.offset + r.gtypeInitOff)
	if err != nil {
		return ""
	}
	init, err := r.h.stringAt(off)
	if err != nil {
		return ""
	}
	return init
}

// GType resolves and calls the type-init function named by TypeInit:
//   - init == "" -> InvalidGType, nil
//   - init == "intern" -> InternGType, nil
//   - otherwise -> looks up and calls init via the repository; returns
//     ErrSymbolMissing if the symbol can't be found.
func (r RegisteredType) GType() (GType, error) {
	init := r.TypeInit()
	switch init {
	case "":
		return InvalidGType, nil
	case "intern":
		return InternGType, nil
	}
	if r.h.repository == nil {
		return InvalidGType, ErrSymbolMissing
	}
	fn, ok := r.h.repository.LookupSymbol(r.h.typelib, init)
	if !ok {
		return InvalidGType, ErrSymbolMissing
	}
	return fn(), nil
}
