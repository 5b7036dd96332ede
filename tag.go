// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"strconv"
	"strings"
)

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. It is encoded in bits 8 and 7 of the identifier octet.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can
// be encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// TagNumber is the number part of an ASN.1 tag. This package only supports
// the low-tag-number form of Rec. ITU-T X.690, Section 8.1.2.2, so tag
// numbers are limited to [MaxTagNumber].
type TagNumber uint8

// MaxTagNumber is the largest tag number that can be encoded in the
// low-tag-number form.
const MaxTagNumber TagNumber = 30

// NewTagNumber creates a [TagNumber] from n. It returns an error of kind
// [KindOverflow] if n exceeds [MaxTagNumber].
func NewTagNumber(n uint8) (TagNumber, error) {
	if TagNumber(n) > MaxTagNumber {
		return 0, errOverflow()
	}
	return TagNumber(n), nil
}

// String returns n in decimal notation.
func (n TagNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Tag is the identifier octet of a TLV-encoded value. It identifies the type
// of the subsequent value and is structured as follows (Rec. ITU-T X.690,
// Section 8.1.2):
//
//	| Class | P/C | Tag Number |
//
// Bits 8 and 7 hold the [Class], bit 6 distinguishes primitive (0) from
// constructed (1) encodings and bits 5 to 1 hold the [TagNumber].
//
// Only a fixed set of universal tags is supported, see the Tag* constants.
// Non-universal tags always carry the constructed bit; create them with
// [ApplicationTag], [ContextSpecificTag] and [PrivateTag].
type Tag byte

// constructed is the indicator bit for constructed form encoding.
const constructed Tag = 0b100000

// Tags in the [ClassUniversal] namespace supported by this package. The
// assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         Tag = 0x01
	TagInteger         Tag = 0x02
	TagBitString       Tag = 0x03
	TagOctetString     Tag = 0x04
	TagNull            Tag = 0x05
	TagOID             Tag = 0x06
	TagUTF8String      Tag = 0x0c
	TagPrintableString Tag = 0x13
	TagIA5String       Tag = 0x16
	TagUTCTime         Tag = 0x17
	TagGeneralizedTime Tag = 0x18
	TagSequence        Tag = 0x10 | constructed
	TagSet             Tag = 0x11 | constructed
)

// ApplicationTag returns the constructed APPLICATION class tag with the
// given number.
func ApplicationTag(n TagNumber) Tag {
	return Tag(ClassApplication)<<6 | constructed | Tag(n&0x1f)
}

// ContextSpecificTag returns the constructed context-specific tag with the
// given number, e.g. [0] for n == 0.
func ContextSpecificTag(n TagNumber) Tag {
	return Tag(ClassContextSpecific)<<6 | constructed | Tag(n&0x1f)
}

// PrivateTag returns the constructed PRIVATE class tag with the given
// number.
func PrivateTag(n TagNumber) Tag {
	return Tag(ClassPrivate)<<6 | constructed | Tag(n&0x1f)
}

// ParseTag validates the identifier octet b and returns it as a [Tag].
// Octets that do not correspond to a tag supported by this package are
// rejected with an error of kind [KindUnknownTag].
func ParseTag(b byte) (Tag, error) {
	switch t := Tag(b); t {
	case TagBoolean, TagInteger, TagBitString, TagOctetString, TagNull,
		TagOID, TagUTF8String, TagPrintableString, TagIA5String,
		TagUTCTime, TagGeneralizedTime, TagSequence, TagSet:
		return t, nil
	default:
		// Non-universal tags must use the constructed form and the
		// low-tag-number format (number 31 indicates the multi-byte
		// form, which is unsupported).
		if t.Class() != ClassUniversal && t&constructed != 0 && b&0x1f != 0x1f {
			return t, nil
		}
		return 0, errUnknownTag(b)
	}
}

// Class returns the [Class] of t.
func (t Tag) Class() Class {
	return Class(t >> 6)
}

// Number returns the [TagNumber] of t.
func (t Tag) Number() TagNumber {
	return TagNumber(t & 0x1f)
}

// IsContextSpecific reports whether t is a context-specific tag.
func (t Tag) IsContextSpecific() bool {
	return t.Class() == ClassContextSpecific
}

// Assert returns nil if t equals expected and an error of kind
// [KindUnexpectedTag] otherwise.
func (t Tag) Assert(expected Tag) error {
	if t != expected {
		return errUnexpectedTag(expected, t)
	}
	return nil
}

// DerLen returns the encoded size of a tag, which is always a single octet.
func (t Tag) DerLen() (Length, error) {
	return 1, nil
}

// DerEncode writes the identifier octet of t to e.
func (t Tag) DerEncode(e *Encoder) error {
	return e.byte(byte(t))
}

// DerDecode reads and validates an identifier octet from d.
func (t *Tag) DerDecode(d *Decoder) error {
	b, err := d.readByte()
	if err != nil {
		return err
	}
	tag, err := ParseTag(b)
	if err != nil {
		return d.error(err)
	}
	*t = tag
	return nil
}

// String returns a representation of t similar to the one used in ASN.1
// notation. Universal tags use their type name, non-universal tags enclose
// the tag number in square brackets prefixed with the class used.
func (t Tag) String() string {
	switch t {
	case TagBoolean:
		return "BOOLEAN"
	case TagInteger:
		return "INTEGER"
	case TagBitString:
		return "BIT STRING"
	case TagOctetString:
		return "OCTET STRING"
	case TagNull:
		return "NULL"
	case TagOID:
		return "OBJECT IDENTIFIER"
	case TagUTF8String:
		return "UTF8String"
	case TagPrintableString:
		return "PrintableString"
	case TagIA5String:
		return "IA5String"
	case TagUTCTime:
		return "UTCTime"
	case TagGeneralizedTime:
		return "GeneralizedTime"
	case TagSequence:
		return "SEQUENCE"
	case TagSet:
		return "SET"
	}
	switch t.Class() {
	case ClassContextSpecific:
		return "[" + t.Number().String() + "]"
	default:
		return "[" + strings.ToUpper(t.Class().String()) + " " + t.Number().String() + "]"
	}
}
