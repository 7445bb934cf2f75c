// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// Repository is the external collaborator set this package consumes:
// string-table lookup, directory-entry resolution (possibly crossing into
// another typelib), and an optional dynamic symbol lookup used only by
// RegisteredType.GType. The higher-level namespace registry that
// implements this is explicitly out of scope for this module; the core
// only ever calls through the interface.
type Repository interface {
	// StringAt returns the NUL-terminated string stored at offset in t's
	// string table.
	StringAt(t *Typelib, offset uint32) (string, error)

	// Resolve converts a blob-local directory index into an InfoHandle,
	// possibly minted against a different Typelib owned by the same
	// repository. Returns ErrUnresolved if the entry no longer exists.
	Resolve(t *Typelib, entryIndex uint16) (InfoHandle, error)

	// LookupSymbol resolves a type-init function by name against the
	// dynamic library backing t. The second return is false when no such
	// symbol exists.
	LookupSymbol(t *Typelib, name string) (GTypeInitFunc, bool)
}

// GType is this package's stand-in for GLib's runtime GType value: an
// opaque handle to a registered type, known only once a type-init function
// has actually run.
type GType uint64

// InvalidGType is returned when a RegisteredType has no type-init symbol
// ("null init returns None").
const InvalidGType GType = 0

// InternGType is returned for the handful of fundamental types whose
// type_init string is the literal "intern" rather than a real symbol name.
const InternGType GType = ^GType(0)

// GTypeInitFunc is the resolved, callable form of a type-init symbol.
type GTypeInitFunc func() GType

// InfoHandle is the uniform, opaque descriptor returned by every accessor
// in this package. It borrows its Typelib and, through Container, its
// ancestor chain; it owns none of that memory.
type InfoHandle struct {
	repository     Repository
	typelib        *Typelib
	kind           Kind
	offset         uint32
	container      *InfoHandle
	typeIsEmbedded bool
}

// newInfo constructs a fresh handle of the given kind. container may be nil
// for top-level entities reached only via Repository.Resolve.
func newInfo(repo Repository, container *InfoHandle, t *Typelib, kind Kind, offset uint32) InfoHandle {
	return InfoHandle{
		repository: repo,
		typelib:    t,
		kind:       kind,
		offset:     offset,
		container:  container,
	}
}

// NewTopLevelInfo constructs an InfoHandle with no container, for use by a
// Repository implementation's Resolve and by whatever entry point a caller
// uses to reach a namespace's directly-listed entities (a full namespace
// registry, out of scope for this package, is expected to call this).
func NewTopLevelInfo(repo Repository, t *Typelib, kind Kind, offset uint32) InfoHandle {
	return newInfo(repo, nil, t, kind, offset)
}

// newChildInfo mints a handle whose container is parent itself, the shape
// every container-child accessor in this package uses (Struct.Field,
// Object.Method, and so on).
func newChildInfo(parent InfoHandle, kind Kind, offset uint32) InfoHandle {
	c := parent
	return InfoHandle{
		repository: parent.repository,
		typelib:    parent.typelib,
		kind:       kind,
		offset:     offset,
		container:  &c,
	}
}

// newTypeInfo specializes newChildInfo for a type slot: type_is_embedded
// starts false and is set true only for the embedded-callback exception, by
// GetFieldType (field.go).
func newTypeInfo(parent InfoHandle, offset uint32) InfoHandle {
	h := newChildInfo(parent, KindType, offset)
	return h
}

// Kind reports which decoder this handle dispatches to.
func (h InfoHandle) Kind() Kind { return h.kind }

// Offset reports the byte offset this handle addresses within its Typelib.
func (h InfoHandle) Offset() uint32 { return h.offset }

// Typelib returns the byte region this handle is a view into.
func (h InfoHandle) Typelib() *Typelib { return h.typelib }

// Container returns the parent InfoHandle used for sibling back-references
// (Signal.ClassClosure, VFunc.Signal, VFunc.Invoker), or the zero value
// with ok=false when this handle has no container (top-level entities).
func (h InfoHandle) Container() (InfoHandle, bool) {
	if h.container == nil {
		return InfoHandle{}, false
	}
	return *h.container, true
}

// IsValid reports whether this handle has a backing typelib; the zero
// InfoHandle is invalid and every accessor on it behaves as a no-op/zero
// value (standing in for a "null handle" sentinel under the same
// never-surface-an-error propagation policy as WrongKind).
func (h InfoHandle) IsValid() bool { return h.typelib != nil }

// resolveEntry forwards to the repository's cross-reference resolver.
func (h InfoHandle) resolveEntry(entryIndex uint16) (InfoHandle, error) {
	if h.repository == nil {
		return InfoHandle{}, ErrUnresolved
	}
	return h.repository.Resolve(h.typelib, entryIndex)
}

// stringAt forwards to the repository's string table.
func (h InfoHandle) stringAt(offset uint32) (string, error) {
	if offset == 0 {
		return "", nil
	}
	if h.repository == nil {
		return "", ErrUnresolved
	}
	return h.repository.StringAt(h.typelib, offset)
}

// Name reads the blob's leading NameOffset field and resolves it through
// the string table. Valid for every named kind; returns "" for the few
// kinds with no name field (Value's name is optional and follows the same
// path).
func (h InfoHandle) Name() string {
	off, ok := h.nameFieldOffset()
	if !ok {
		return ""
	}
	nameOff, err := h.typelib.ReadUint32(h.offset + off)
	if err != nil {
		return ""
	}
	name, err := h.stringAt(nameOff)
	if err != nil {
		return ""
	}
	return name
}

// nameFieldOffset reports the byte offset, relative to h.offset, of the
// 4-byte NameOffset field for h's kind. The second return is false for
// kinds with no name field (Type).
func (h InfoHandle) nameFieldOffset() (uint32, bool) {
	switch h.kind {
	case KindValue:
		return 4, true
	case KindField:
		return 0, true
	case KindProperty:
		return 0, true
	case KindSignal:
		return 0, true
	case KindVFunc:
		return 0, true
	case KindConstant:
		return 4, true
	case KindFunction, KindCallback:
		return 4, true
	case KindErrorDomain:
		return 4, true
	case KindEnum:
		return 4, true
	case KindStruct:
		return 4, true
	case KindUnion:
		return 4, true
	case KindObject:
		return 4, true
	case KindInterface:
		return 4, true
	default:
		return 0, false
	}
}
