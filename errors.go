// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

import (
	"errors"
	"fmt"
)

// Errors returned by the navigator. These are plain sentinel values;
// callers compare with errors.Is.
var (
	// ErrOutsideBoundary is returned when a computed offset, alone or with
	// its record size added, would read past the end of the typelib data.
	ErrOutsideBoundary = errors.New("typelib: offset outside blob boundary")

	// ErrMalformedBlob is returned when offset arithmetic would leave the
	// blob, or a discriminator reads an unknown tag in a position where
	// only a closed set is legal.
	ErrMalformedBlob = errors.New("typelib: malformed blob")

	// ErrUnresolved is returned when a cross-reference points at a
	// directory entry that no longer exists.
	ErrUnresolved = errors.New("typelib: cross-reference entry unresolved")

	// ErrSymbolMissing is returned when a type-init symbol name is set but
	// the dynamic loader cannot find it.
	ErrSymbolMissing = errors.New("typelib: type-init symbol not found")

	// errWrongKind never escapes to a caller: every public accessor maps it
	// to a zero/sentinel return instead. It exists so internal helpers can
	// name the condition precisely in tests.
	errWrongKind = errors.New("typelib: accessor called on wrong kind")
)

// MalformedBlobError carries the offset and kind that triggered a
// MalformedBlob condition, for diagnostics.
type MalformedBlobError struct {
	Offset uint32
	Kind   Kind
	Reason string
}

func (e *MalformedBlobError) Error() string {
	return fmt.Sprintf("typelib: malformed %s blob at offset 0x%x: %s", e.Kind, e.Offset, e.Reason)
}

func (e *MalformedBlobError) Unwrap() error { return ErrMalformedBlob }

func malformed(kind Kind, offset uint32, reason string) error {
	return &MalformedBlobError{Offset: offset, Kind: kind, Reason: reason}
}
