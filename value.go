// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package typelib

// valueBlobSize is the ValueBlob decode size: CommonBlob(4) + Name(4) +
// Value(4), (12 bytes total).
const valueBlobSize = 12

// GetValue returns the signed 32-bit constant this Enum value holds,
// promoted to int64 (this package's stand-in for "platform long" — Go has
// no platform-width integer type, and the stored tag must never be
// renormalized, only carried through). Called on any kind other than Value
// it returns (0, nil): a WrongKind condition never escapes as an error.
func (h InfoHandle) GetValue() (int64, error) {
	if h.kind != KindValue {
		return 0, nil
	}
	v, err := h.typelib.ReadInt32(h.offset + 8)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
