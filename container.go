// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// This file gathers the accessors shared by every container kind (Struct,
// Union, Object, Interface) behind one dispatching implementation per
// accessor: find_method/find_vfunc and the get_n_X/get_X(n) pairs behave
// uniformly across all four kinds. Fields and type-registration only apply
// to a subset; those return zero/false for kinds that don't carry them.

// GetNFields returns the number of fields a Struct, Union or Object
// declares. Interface has none.
func (h InfoHandle) GetNFields() int {
	switch h.kind {
	case KindStruct:
		n, _ := h.structCounts()
		return n
	case KindUnion:
		n, _ := h.unionCounts()
		return n
	case KindObject:
		return h.objectCounts().nFields
	default:
		return 0
	}
}

// GetField resolves the n'th field of a Struct, Union or Object.
func (h InfoHandle) GetField(n int) (InfoHandle, bool) {
	if n < 0 || n >= h.GetNFields() {
		return InfoHandle{}, false
	}
	switch h.kind {
	case KindStruct:
		off, err := h.typelib.structFieldOffset(h.offset, n)
		if err != nil {
			return InfoHandle{}, false
		}
		return newChildInfo(h, KindField, off), true
	case KindUnion:
		return newChildInfo(h, KindField, h.typelib.unionFieldOffset(h.offset, n)), true
	case KindObject:
		return newChildInfo(h, KindField, h.objectSectionsBase()+uint32(n)*uint32(h.typelib.header.FieldBlobSize)), true
	default:
		return InfoHandle{}, false
	}
}

// GetNMethods returns the number of methods a Struct, Union, Object or
// Interface declares.
func (h InfoHandle) GetNMethods() int {
	switch h.kind {
	case KindStruct:
		_, n := h.structCounts()
		return n
	case KindUnion:
		_, n := h.unionCounts()
		return n
	case KindObject:
		return h.objectCounts().nMethods
	case KindInterface:
		return h.interfaceCounts().nMethods
	default:
		return 0
	}
}

func (h InfoHandle) methodsBase() (uint32, bool) {
	t := h.typelib
	switch h.kind {
	case KindStruct:
		nFields, _ := h.structCounts()
		base, err := t.structFieldsEnd(h.offset, nFields)
		if err != nil {
			return 0, false
		}
		return base, true
	case KindUnion:
		nFields, _ := h.unionCounts()
		return t.unionFieldOffset(h.offset, nFields), true
	case KindObject:
		c := h.objectCounts()
		base := h.objectSectionsBase() + uint32(c.nFields)*uint32(t.header.FieldBlobSize)
		base += uint32(c.nProperties) * uint32(t.header.PropertyBlobSize)
		return base, true
	case KindInterface:
		c := h.interfaceCounts()
		base := h.interfaceSectionsBase()
		base += uint32(c.nProperties) * uint32(t.header.PropertyBlobSize)
		return base, true
	default:
		return 0, false
	}
}

// GetMethod resolves the k'th method of a Struct, Union, Object or
// Interface.
func (h InfoHandle) GetMethod(k int) (InfoHandle, bool) {
	if k < 0 || k >= h.GetNMethods() {
		return InfoHandle{}, false
	}
	base, ok := h.methodsBase()
	if !ok {
		return InfoHandle{}, false
	}
	off := base + uint32(k)*uint32(h.typelib.header.FunctionBlobSize)
	return newChildInfo(h, KindFunction, off), true
}

// FindMethod scans this container's methods for one with the given name.
// This is a plain linear scan; a lazily built name index would not change
// this signature or its observable behavior, only its cost.
func (h InfoHandle) FindMethod(name string) (InfoHandle, bool) {
	n := h.GetNMethods()
	for i := 0; i < n; i++ {
		m, ok := h.GetMethod(i)
		if ok && m.Name() == name {
			return m, true
		}
	}
	return InfoHandle{}, false
}

func (h InfoHandle) propertiesSectionBase() (uint32, bool) {
	switch h.kind {
	case KindObject:
		return h.objectSectionsBase() + uint32(h.objectCounts().nFields)*uint32(h.typelib.header.FieldBlobSize), true
	case KindInterface:
		return h.interfaceSectionsBase(), true
	default:
		return 0, false
	}
}

// GetNProperties returns the number of properties an Object or Interface
// declares.
func (h InfoHandle) GetNProperties() int {
	switch h.kind {
	case KindObject:
		return h.objectCounts().nProperties
	case KindInterface:
		return h.interfaceCounts().nProperties
	default:
		return 0
	}
}

// GetProperty resolves the n'th property of an Object or Interface.
func (h InfoHandle) GetProperty(n int) (InfoHandle, bool) {
	if n < 0 || n >= h.GetNProperties() {
		return InfoHandle{}, false
	}
	base, ok := h.propertiesSectionBase()
	if !ok {
		return InfoHandle{}, false
	}
	off := base + uint32(n)*uint32(h.typelib.header.PropertyBlobSize)
	return newChildInfo(h, KindProperty, off), true
}

func (h InfoHandle) signalsBase() (uint32, bool) {
	base, ok := h.methodsBase()
	if !ok {
		return 0, false
	}
	return base + uint32(h.GetNMethods())*uint32(h.typelib.header.FunctionBlobSize), true
}

// GetNSignals returns the number of signals an Object or Interface
// declares.
func (h InfoHandle) GetNSignals() int {
	switch h.kind {
	case KindObject:
		return h.objectCounts().nSignals
	case KindInterface:
		return h.interfaceCounts().nSignals
	default:
		return 0
	}
}

// GetSignalAt resolves the n'th signal of an Object or Interface.
func (h InfoHandle) GetSignalAt(n int) (InfoHandle, bool) {
	if n < 0 || n >= h.GetNSignals() {
		return InfoHandle{}, false
	}
	base, ok := h.signalsBase()
	if !ok {
		return InfoHandle{}, false
	}
	off := base + uint32(n)*uint32(h.typelib.header.SignalBlobSize)
	return newChildInfo(h, KindSignal, off), true
}

func (h InfoHandle) vfuncsBase() (uint32, bool) {
	base, ok := h.signalsBase()
	if !ok {
		return 0, false
	}
	return base + uint32(h.GetNSignals())*uint32(h.typelib.header.SignalBlobSize), true
}

// GetNVFuncs returns the number of virtual functions an Object or
// Interface declares.
func (h InfoHandle) GetNVFuncs() int {
	switch h.kind {
	case KindObject:
		return h.objectCounts().nVFuncs
	case KindInterface:
		return h.interfaceCounts().nVFuncs
	default:
		return 0
	}
}

// GetVFunc resolves the n'th virtual function of an Object or Interface.
func (h InfoHandle) GetVFunc(n int) (InfoHandle, bool) {
	if n < 0 || n >= h.GetNVFuncs() {
		return InfoHandle{}, false
	}
	base, ok := h.vfuncsBase()
	if !ok {
		return InfoHandle{}, false
	}
	off := base + uint32(n)*uint32(h.typelib.header.VFuncBlobSize)
	return newChildInfo(h, KindVFunc, off), true
}

// FindVFunc scans this container's virtual functions for one with the
// given name.
func (h InfoHandle) FindVFunc(name string) (InfoHandle, bool) {
	n := h.GetNVFuncs()
	for i := 0; i < n; i++ {
		v, ok := h.GetVFunc(i)
		if ok && v.Name() == name {
			return v, true
		}
	}
	return InfoHandle{}, false
}

func (h InfoHandle) constantsBase() (uint32, bool) {
	base, ok := h.vfuncsBase()
	if !ok {
		return 0, false
	}
	return base + uint32(h.GetNVFuncs())*uint32(h.typelib.header.VFuncBlobSize), true
}

// GetNConstants returns the number of constants an Object or Interface
// declares.
func (h InfoHandle) GetNConstants() int {
	switch h.kind {
	case KindObject:
		return h.objectCounts().nConstants
	case KindInterface:
		return h.interfaceCounts().nConstants
	default:
		return 0
	}
}

// GetConstant resolves the n'th constant of an Object or Interface.
func (h InfoHandle) GetConstant(n int) (InfoHandle, bool) {
	if n < 0 || n >= h.GetNConstants() {
		return InfoHandle{}, false
	}
	base, ok := h.constantsBase()
	if !ok {
		return InfoHandle{}, false
	}
	off := base + uint32(n)*uint32(h.typelib.header.ConstantBlobSize)
	return newChildInfo(h, KindConstant, off), true
}

// GetTypeName returns the RegisteredType capability's TypeName, or "" for a
// kind with no such capability.
func (h InfoHandle) GetTypeName() string {
	r, ok := h.AsRegisteredType()
	if !ok {
		return ""
	}
	return r.TypeName()
}

// GetTypeInit returns the RegisteredType capability's TypeInit, or "" for a
// kind with no such capability.
func (h InfoHandle) GetTypeInit() string {
	r, ok := h.AsRegisteredType()
	if !ok {
		return ""
	}
	return r.TypeInit()
}

// GType resolves the RegisteredType capability's runtime GType, or
// InvalidGType for a kind with no such capability.
func (h InfoHandle) GType() (GType, error) {
	r, ok := h.AsRegisteredType()
	if !ok {
		return InvalidGType, nil
	}
	return r.GType()
}
