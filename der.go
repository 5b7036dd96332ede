// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the Distinguished Encoding Rules (DER) of ASN.1 as
// defined in [Rec. ITU-T X.690]. DER is a restricted variant of BER in which
// every abstract value has exactly one valid encoding. This package enforces
// canonicity in both directions: the decoder rejects any encoding that is not
// in canonical form and the encoder can only produce canonical output.
//
// # Decoding and Encoding
//
// Values are decoded with a [Decoder], a cursor over a byte slice that only
// ever moves forward. Types that can be decoded implement [Decodable]; types
// that can be encoded implement [Encodable]. Encoding is a two-step process:
// the total encoded length of a value is computed via [Encodable.DerLen]
// before [Encodable.DerEncode] writes exactly that many bytes through an
// [Encoder] into a caller-supplied buffer. [Marshal] and [Unmarshal] combine
// these steps for single values:
//
//	var n der.Integer
//	if err := der.Unmarshal(data, &n); err != nil { ... }
//	data, err := der.Marshal(n)
//
// Decoding never panics on malformed input. Every violation of the encoding
// rules is reported as an [*Error] describing what was malformed, see
// [ErrorKind].
//
// # ASN.1 Types
//
// The standard ASN.1 types are represented by Go types with corresponding
// names ([Boolean], [Integer], [BitString], [OctetString], [Null],
// [UTF8String], [PrintableString], [IA5String], [UTCTime], [GeneralizedTime],
// [Sequence]). Object identifiers are provided by the [codello.dev/der/oid]
// package and bound to DER via the [OID] type. The [Any] type holds a value
// of any supported type in undecoded form; it is the basis for implementing
// ASN.1 CHOICE types, see [Choice].
//
// Structured types are built from these primitives. A SEQUENCE mapping to a
// Go struct implements [Message] for encoding and typically decodes via
// [Decoder.Sequence]. Homogeneous collections use [SequenceElements] for
// SEQUENCE OF and [SetOf] for SET OF, the latter enforcing the
// lexicographic element order DER requires.
//
// # Limitations
//
// This package intentionally supports only a commonly used subset of ASN.1:
// tag numbers are limited to 30 (the low-tag-number form), lengths are
// limited to [MaxLength] and indefinite lengths, being a BER-only construct,
// are rejected.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

// Decodable is implemented by types that can decode themselves from DER.
// DerDecode reads exactly one value from d, leaving the cursor on the first
// byte after the value's encoding.
type Decodable interface {
	DerDecode(d *Decoder) error
}

// Encodable is implemented by types that can encode themselves as DER.
//
// DerLen returns the total number of bytes DerEncode will write, including
// the tag and length header. DerEncode must write exactly that many bytes;
// the [Encoder] verifies this invariant for constructed types.
type Encodable interface {
	DerLen() (Length, error)
	DerEncode(e *Encoder) error
}

// Choice is implemented by types representing an ASN.1 CHOICE, i.e. types
// that can decode from a set of multiple acceptable tags. DerMatch reports
// whether the type can decode a value with the given tag. Callers dispatch
// on the tag of an undecoded [Any] value before committing to a decode.
type Choice interface {
	Decodable
	DerMatch(tag Tag) bool
}

// Marshal encodes val into a newly allocated byte slice.
func Marshal(val Encodable) ([]byte, error) {
	n, err := val.DerLen()
	if err != nil {
		return nil, err
	}
	e := NewEncoder(make([]byte, n.Int()))
	if err := e.Encode(val); err != nil {
		return nil, err
	}
	return e.Finish()
}

// Unmarshal decodes a single DER value from data into val. The value must
// span all of data: if any bytes remain after decoding, Unmarshal returns an
// [*Error] of kind [KindTrailingData].
func Unmarshal(data []byte, val Decodable) error {
	d := NewDecoder(data)
	if err := d.Decode(val); err != nil {
		return err
	}
	return d.Finish()
}
