// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Any represents a value of any supported ASN.1 type. It holds the tag of
// the value together with its raw contents octets, which remain undecoded. An
// [Any] can be converted into a concrete type via its conversion methods.
//
// Any is the basis for decoding CHOICE types: decode an [Any] first, then
// dispatch on its tag.
type Any struct {
	tag   Tag
	value []byte
}

// NewAny creates an [Any] from a tag and raw contents octets. The contents
// are not validated until the value is converted to a concrete type.
func NewAny(tag Tag, value []byte) (Any, error) {
	if len(value) > MaxLength.Int() {
		return Any{}, errLength(tag)
	}
	return Any{tag: tag, value: value}, nil
}

// Tag returns the tag of the value.
func (a Any) Tag() Tag {
	return a.tag
}

// Bytes returns the raw contents octets of the value.
func (a Any) Bytes() []byte {
	return a.value
}

// Len returns the number of contents octets of the value.
func (a Any) Len() Length {
	return Length(len(a.value))
}

// Boolean converts a to an ASN.1 BOOLEAN.
func (a Any) Boolean() (Boolean, error) {
	var v Boolean
	err := v.fromAny(a)
	return v, err
}

// Integer converts a to an ASN.1 INTEGER.
func (a Any) Integer() (Integer, error) {
	var v Integer
	err := v.fromAny(a)
	return v, err
}

// BitString converts a to an ASN.1 BIT STRING.
func (a Any) BitString() (BitString, error) {
	var v BitString
	err := v.fromAny(a)
	return v, err
}

// OctetString converts a to an ASN.1 OCTET STRING.
func (a Any) OctetString() (OctetString, error) {
	var v OctetString
	err := v.fromAny(a)
	return v, err
}

// Null verifies that a contains an ASN.1 NULL value.
func (a Any) Null() error {
	var v Null
	return v.fromAny(a)
}

// OID converts a to an ASN.1 OBJECT IDENTIFIER.
func (a Any) OID() (OID, error) {
	var v OID
	err := v.fromAny(a)
	return v, err
}

// ContextSpecific converts a to an EXPLICIT context-specific value.
func (a Any) ContextSpecific() (ContextSpecific, error) {
	var v ContextSpecific
	err := v.fromAny(a)
	return v, err
}

// UTF8String converts a to an ASN.1 UTF8String.
func (a Any) UTF8String() (UTF8String, error) {
	var v UTF8String
	err := v.fromAny(a)
	return v, err
}

// Sequence interprets a as an ASN.1 SEQUENCE and calls f with a [Decoder]
// over its contents octets. f must decode the complete contents: if the
// nested decoder is not finished when f returns, Sequence reports an error
// of kind [KindLength].
func (a Any) Sequence(f func(*Decoder) error) error {
	var s Sequence
	if err := s.fromAny(a); err != nil {
		return err
	}
	nested := s.Decoder()
	if err := f(nested); err != nil {
		return err
	}
	if !nested.Finished() {
		return errLength(TagSequence)
	}
	return nil
}

// DerMatch reports true for every tag: an [Any] accepts every supported
// value.
func (a Any) DerMatch(Tag) bool {
	return true
}

// DerDecode reads a complete TLV-encoded value from d, retaining its
// contents octets undecoded.
func (a *Any) DerDecode(d *Decoder) error {
	var h Header
	if err := h.DerDecode(d); err != nil {
		return err
	}
	value, err := d.read(h.Length.Int())
	if err != nil {
		// The declared length exceeds the actual input.
		return d.error(errLength(h.Tag))
	}
	a.tag = h.Tag
	a.value = value
	return nil
}

// DerLen returns the size of the complete TLV encoding of a.
func (a Any) DerLen() (Length, error) {
	return a.Len().ForTLV()
}

// DerEncode writes the header and the retained contents octets of a to e.
func (a Any) DerEncode(e *Encoder) error {
	if err := e.Encode(Header{Tag: a.tag, Length: a.Len()}); err != nil {
		return err
	}
	return e.write(a.value)
}
