// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"fmt"
	"strconv"
)

// ErrorKind identifies the category of an [*Error].
//
//go:generate stringer -type=ErrorKind -trimprefix=Kind
type ErrorKind uint8

const (
	// KindLength indicates an incorrect length for a given value.
	KindLength ErrorKind = iota + 1
	// KindNoncanonical indicates an encoding that is valid BER but not
	// valid DER.
	KindNoncanonical
	// KindOID indicates a malformed object identifier. The underlying
	// error from the [codello.dev/der/oid] package is wrapped.
	KindOID
	// KindOverflow indicates an arithmetic overflow, usually a [Length]
	// exceeding [MaxLength].
	KindOverflow
	// KindOverlength indicates a message longer than this package's
	// internal limits support.
	KindOverlength
	// KindTrailingData indicates undecoded bytes at the end of a message.
	KindTrailingData
	// KindTruncated indicates an unexpected end of a message or nested
	// value.
	KindTruncated
	// KindUnexpectedTag indicates a value with a well-formed but
	// unexpected tag.
	KindUnexpectedTag
	// KindUnknownTag indicates an identifier octet that does not encode a
	// tag supported by this package.
	KindUnknownTag
	// KindValue indicates malformed contents octets for a value.
	KindValue
)

// Error describes a violation of the DER encoding rules or a misuse of the
// API. Kind identifies the category of the error; depending on the kind some
// of the remaining fields carry additional context.
type Error struct {
	Kind ErrorKind

	// Tag is the tag of the value being processed when the error
	// occurred, if known.
	Tag Tag
	// Expected is the tag the decoder was expecting. It is nil if
	// multiple tags were acceptable. Only set for [KindUnexpectedTag].
	Expected *Tag
	// Actual is the tag encountered in the message. Only set for
	// [KindUnexpectedTag].
	Actual Tag
	// Byte is the raw identifier octet. Only set for [KindUnknownTag].
	Byte byte
	// Decoded and Remaining describe how far decoding got before leftover
	// bytes were detected. Only set for [KindTrailingData].
	Decoded, Remaining Length

	// Offset is the position within the message at which the error
	// occurred, or -1 if unknown.
	Offset int

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindLength:
		msg = "der: incorrect length for " + e.Tag.String()
	case KindNoncanonical:
		msg = "der: value is not canonically encoded"
	case KindOID:
		msg = "der: malformed OID"
	case KindOverflow:
		msg = "der: length overflow"
	case KindOverlength:
		msg = "der: message is too long"
	case KindTrailingData:
		msg = fmt.Sprintf("der: trailing data at end of message: decoded %d bytes, %d bytes remaining", e.Decoded, e.Remaining)
	case KindTruncated:
		msg = "der: message is truncated"
	case KindUnexpectedTag:
		msg = "der: unexpected tag: "
		if e.Expected != nil {
			msg += "expected " + e.Expected.String() + ", "
		}
		msg += "got " + e.Actual.String()
	case KindUnknownTag:
		msg = "der: unknown tag: 0x" + strconv.FormatUint(uint64(e.Byte), 16)
	case KindValue:
		msg = "der: malformed value for " + e.Tag.String()
	default:
		msg = "der: invalid encoding"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Offset >= 0 {
		msg += " at byte " + strconv.Itoa(e.Offset)
	}
	return msg
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// The err* functions construct [*Error] values for the individual error
// kinds. The offset is filled in by the [Decoder] or [Encoder] reporting the
// error.

func errLength(tag Tag) *Error {
	return &Error{Kind: KindLength, Tag: tag, Offset: -1}
}

func errNoncanonical(tag Tag) *Error {
	return &Error{Kind: KindNoncanonical, Tag: tag, Offset: -1}
}

func errOID(cause error) *Error {
	return &Error{Kind: KindOID, Tag: TagOID, Err: cause, Offset: -1}
}

func errOverflow() *Error {
	return &Error{Kind: KindOverflow, Offset: -1}
}

func errOverlength() *Error {
	return &Error{Kind: KindOverlength, Offset: -1}
}

func errTruncated() *Error {
	return &Error{Kind: KindTruncated, Offset: -1}
}

func errUnexpectedTag(expected, actual Tag) *Error {
	return &Error{Kind: KindUnexpectedTag, Expected: &expected, Actual: actual, Offset: -1}
}

// errUnexpectedTagAny reports an unexpected tag in a position where multiple
// tags would have been acceptable.
func errUnexpectedTagAny(actual Tag) *Error {
	return &Error{Kind: KindUnexpectedTag, Actual: actual, Offset: -1}
}

func errUnknownTag(b byte) *Error {
	return &Error{Kind: KindUnknownTag, Byte: b, Offset: -1}
}

func errValue(tag Tag) *Error {
	return &Error{Kind: KindValue, Tag: tag, Offset: -1}
}
