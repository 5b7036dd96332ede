// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "errors"

// Header is the tag and length component of a TLV-encoded value.
type Header struct {
	// Tag identifies the type of the encoded value.
	Tag Tag
	// Length is the number of contents octets of the encoded value.
	Length Length
}

// DerLen returns the number of octets occupied by the header itself.
func (h Header) DerLen() (Length, error) {
	n, err := h.Length.DerLen()
	if err != nil {
		return 0, err
	}
	return n.Add(1)
}

// DerEncode writes the identifier and length octets to e.
func (h Header) DerEncode(e *Encoder) error {
	if err := h.Tag.DerEncode(e); err != nil {
		return err
	}
	return h.Length.DerEncode(e)
}

// DerDecode reads the identifier and length octets of a value from d. A
// length field that exceeds the supported long forms is reported as an error
// of kind [KindLength] for the already decoded tag.
func (h *Header) DerDecode(d *Decoder) error {
	if err := h.Tag.DerDecode(d); err != nil {
		return err
	}
	if err := h.Length.DerDecode(d); err != nil {
		var derr *Error
		if errors.As(err, &derr) && derr.Kind == KindOverlength {
			return d.error(errLength(h.Tag))
		}
		return err
	}
	return nil
}
