// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"unicode/utf8"

	"codello.dev/der/oid"
)

//region [UNIVERSAL 1] BOOLEAN

// Boolean is the ASN.1 BOOLEAN type. Its contents consist of a single octet
// which per Rec. ITU-T X.690, Section 11.1 must be 0x00 (false) or 0xFF
// (true) in DER. Any other octet is rejected as noncanonical.
type Boolean bool

func (v *Boolean) fromAny(a Any) error {
	if err := a.tag.Assert(TagBoolean); err != nil {
		return err
	}
	switch {
	case len(a.value) != 1:
		return errLength(TagBoolean)
	case a.value[0] == 0x00:
		*v = false
	case a.value[0] == 0xff:
		*v = true
	default:
		return errNoncanonical(TagBoolean)
	}
	return nil
}

func (v *Boolean) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v Boolean) DerLen() (Length, error) {
	return Length(1).ForTLV()
}

func (v Boolean) DerEncode(e *Encoder) error {
	if err := e.Encode(Header{Tag: TagBoolean, Length: 1}); err != nil {
		return err
	}
	if v {
		return e.byte(0xff)
	}
	return e.byte(0x00)
}

//endregion

//region [UNIVERSAL 2] INTEGER

// Integer is the ASN.1 INTEGER type, limited to values that fit into an
// int64. The contents octets are the two's complement representation of the
// value using the minimum number of octets. Encodings with a redundant
// leading 0x00 or 0xFF octet are rejected as noncanonical. For integers
// beyond 64 bits see [UIntBytes].
type Integer int64

func (v *Integer) fromAny(a Any) error {
	if err := a.tag.Assert(TagInteger); err != nil {
		return err
	}
	b := a.value
	if len(b) == 0 || len(b) > 8 {
		return errLength(TagInteger)
	}
	if len(b) >= 2 && (b[0] == 0x00 && b[1] < 0x80 || b[0] == 0xff && b[1] >= 0x80) {
		return errNoncanonical(TagInteger)
	}
	n := int64(int8(b[0]))
	for _, c := range b[1:] {
		n = n<<8 | int64(c)
	}
	*v = Integer(n)
	return nil
}

func (v *Integer) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

// contentsLen returns the number of octets of the minimal two's complement
// representation of v.
func (v Integer) contentsLen() Length {
	n := Length(1)
	for x := int64(v); x > 0x7f || x < -0x80; x >>= 8 {
		n++
	}
	return n
}

func (v Integer) DerLen() (Length, error) {
	return v.contentsLen().ForTLV()
}

func (v Integer) DerEncode(e *Encoder) error {
	n := v.contentsLen()
	if err := e.Encode(Header{Tag: TagInteger, Length: n}); err != nil {
		return err
	}
	for i := n.Int() - 1; i >= 0; i-- {
		if err := e.byte(byte(int64(v) >> (8 * i))); err != nil {
			return err
		}
	}
	return nil
}

// UIntBytes is an unsigned ASN.1 INTEGER of arbitrary size, stored as the
// big-endian octets of its magnitude without leading zeros. It provides
// direct access to the bytes of large integer values such as cryptographic
// keys and signatures.
//
// DER encodes INTEGER values in two's complement, so a magnitude whose most
// significant bit is set carries a single 0x00 prefix octet on the wire.
// UIntBytes adds and removes this octet transparently.
type UIntBytes []byte

// NewUIntBytes creates a [UIntBytes] from the big-endian octets of an
// unsigned integer. Leading zero octets are stripped.
func NewUIntBytes(b []byte) UIntBytes {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return UIntBytes(b)
}

func (v *UIntBytes) fromAny(a Any) error {
	if err := a.tag.Assert(TagInteger); err != nil {
		return err
	}
	b := a.value
	switch {
	case len(b) == 0:
		return errLength(TagInteger)
	case b[0]&0x80 != 0:
		// A set sign bit would make the value negative.
		return errValue(TagInteger)
	case b[0] == 0 && len(b) > 1 && b[1] < 0x80:
		return errNoncanonical(TagInteger)
	case b[0] == 0:
		b = b[1:]
	}
	*v = UIntBytes(b)
	return nil
}

func (v *UIntBytes) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

// contentsLen returns the number of contents octets of v including the
// leading zero octet required when the most significant bit of the
// magnitude is set.
func (v UIntBytes) contentsLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	if len(v) == 0 || v[0]&0x80 != 0 {
		return n.Add(1)
	}
	return n, nil
}

func (v UIntBytes) DerLen() (Length, error) {
	n, err := v.contentsLen()
	if err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v UIntBytes) DerEncode(e *Encoder) error {
	n, err := v.contentsLen()
	if err != nil {
		return e.fail(err)
	}
	if err := e.Encode(Header{Tag: TagInteger, Length: n}); err != nil {
		return err
	}
	if n.Int() > len(v) {
		if err := e.byte(0x00); err != nil {
			return err
		}
	}
	return e.write(v)
}

//endregion

//region [UNIVERSAL 3] BIT STRING

// BitString is the ASN.1 BIT STRING type, constrained to bit strings whose
// length is a multiple of 8. The first contents octet of an encoded BIT
// STRING holds the number of unused bits in the final octet; this package
// requires it to be zero. BitString holds the remaining contents octets.
type BitString []byte

func (v *BitString) fromAny(a Any) error {
	if err := a.tag.Assert(TagBitString); err != nil {
		return err
	}
	// The first contents octet encodes the number of unused bits.
	if len(a.value) == 0 || a.value[0] != 0 {
		return errLength(TagBitString)
	}
	*v = BitString(a.value[1:])
	return nil
}

func (v *BitString) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v BitString) DerLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	if n, err = n.Add(1); err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v BitString) DerEncode(e *Encoder) error {
	n, err := NewLength(len(v) + 1)
	if err != nil {
		return e.fail(err)
	}
	if err := e.Encode(Header{Tag: TagBitString, Length: n}); err != nil {
		return err
	}
	if err := e.byte(0x00); err != nil {
		return err
	}
	return e.write(v)
}

//endregion

//region [UNIVERSAL 4] OCTET STRING

// OctetString is the ASN.1 OCTET STRING type: an opaque sequence of octets.
type OctetString []byte

func (v *OctetString) fromAny(a Any) error {
	if err := a.tag.Assert(TagOctetString); err != nil {
		return err
	}
	*v = OctetString(a.value)
	return nil
}

func (v *OctetString) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v OctetString) DerLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v OctetString) DerEncode(e *Encoder) error {
	n, err := NewLength(len(v))
	if err != nil {
		return e.fail(err)
	}
	if err := e.Encode(Header{Tag: TagOctetString, Length: n}); err != nil {
		return err
	}
	return e.write(v)
}

//endregion

//region [UNIVERSAL 5] NULL

// Null is the ASN.1 NULL type. Its encoding has no contents octets.
type Null struct{}

func (v *Null) fromAny(a Any) error {
	if err := a.tag.Assert(TagNull); err != nil {
		return err
	}
	if len(a.value) != 0 {
		return errLength(TagNull)
	}
	return nil
}

func (v *Null) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v Null) DerLen() (Length, error) {
	return Length(0).ForTLV()
}

func (v Null) DerEncode(e *Encoder) error {
	return e.Encode(Header{Tag: TagNull, Length: 0})
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// OID binds [oid.ObjectIdentifier] to its DER representation. Malformed
// identifiers are reported with [KindOID], wrapping the underlying error
// from the [codello.dev/der/oid] package.
type OID struct {
	oid.ObjectIdentifier
}

func (v *OID) fromAny(a Any) error {
	if err := a.tag.Assert(TagOID); err != nil {
		return err
	}
	id, err := oid.FromBytes(a.value)
	if err != nil {
		return errOID(err)
	}
	v.ObjectIdentifier = id
	return nil
}

func (v *OID) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v OID) DerLen() (Length, error) {
	return Length(v.ObjectIdentifier.Len()).ForTLV()
}

func (v OID) DerEncode(e *Encoder) error {
	n := Length(v.ObjectIdentifier.Len())
	if err := e.Encode(Header{Tag: TagOID, Length: n}); err != nil {
		return err
	}
	return e.write(v.ObjectIdentifier.Bytes())
}

//endregion

//region [UNIVERSAL 12] UTF8String

// UTF8String is the ASN.1 UTF8String type. Contents that are not valid
// UTF-8 are rejected with [KindValue].
type UTF8String string

func (v *UTF8String) fromAny(a Any) error {
	if err := a.tag.Assert(TagUTF8String); err != nil {
		return err
	}
	if !utf8.Valid(a.value) {
		return errValue(TagUTF8String)
	}
	*v = UTF8String(a.value)
	return nil
}

func (v *UTF8String) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v UTF8String) DerLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v UTF8String) DerEncode(e *Encoder) error {
	if !utf8.ValidString(string(v)) {
		return e.fail(errValue(TagUTF8String))
	}
	return encodeString(e, TagUTF8String, string(v))
}

//endregion

//region [UNIVERSAL 19] PrintableString

// PrintableString is the ASN.1 PrintableString type. Its alphabet is
// defined in Rec. ITU-T X.680, Section 41.4: latin letters, digits, space
// and the punctuation characters ' ( ) + , - . / : = ?.
type PrintableString string

func isPrintable(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func (v *PrintableString) fromAny(a Any) error {
	if err := a.tag.Assert(TagPrintableString); err != nil {
		return err
	}
	for _, b := range a.value {
		if !isPrintable(b) {
			return errValue(TagPrintableString)
		}
	}
	*v = PrintableString(a.value)
	return nil
}

func (v *PrintableString) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v PrintableString) DerLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v PrintableString) DerEncode(e *Encoder) error {
	for i := 0; i < len(v); i++ {
		if !isPrintable(v[i]) {
			return e.fail(errValue(TagPrintableString))
		}
	}
	return encodeString(e, TagPrintableString, string(v))
}

//endregion

//region [UNIVERSAL 22] IA5String

// IA5String is the ASN.1 IA5String type, limited to the 7-bit ASCII
// alphabet.
type IA5String string

func (v *IA5String) fromAny(a Any) error {
	if err := a.tag.Assert(TagIA5String); err != nil {
		return err
	}
	for _, b := range a.value {
		if b > 0x7f {
			return errValue(TagIA5String)
		}
	}
	*v = IA5String(a.value)
	return nil
}

func (v *IA5String) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v IA5String) DerLen() (Length, error) {
	n, err := NewLength(len(v))
	if err != nil {
		return 0, err
	}
	return n.ForTLV()
}

func (v IA5String) DerEncode(e *Encoder) error {
	for i := 0; i < len(v); i++ {
		if v[i] > 0x7f {
			return e.fail(errValue(TagIA5String))
		}
	}
	return encodeString(e, TagIA5String, string(v))
}

//endregion

// encodeString writes the header and contents of a string value with the
// given tag.
func encodeString(e *Encoder, tag Tag, s string) error {
	n, err := NewLength(len(s))
	if err != nil {
		return e.fail(err)
	}
	if err := e.Encode(Header{Tag: tag, Length: n}); err != nil {
		return err
	}
	return e.write([]byte(s))
}
