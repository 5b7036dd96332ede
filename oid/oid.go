// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oid implements object identifiers (OIDs) as defined in
// [Rec. ITU-T X.660]. An OID is a hierarchical sequence of unsigned integer
// values called arcs. The textual representation separates arcs with dots:
//
//	1.2.840.113549
//
// The [ObjectIdentifier] type stores the BER/DER serialization of an OID
// (sans tag and length) in a fixed-size inline buffer. It is a comparable
// value type that does not allocate. Values are validated on construction:
// every [ObjectIdentifier] obtained from [Parse], [FromArcs] or [FromBytes]
// holds a well-formed encoding.
//
// In order to be considered valid an OID must have at least 3 arcs, the
// first arc must be in the range 0..=2 and the second arc in the range
// 0..=39. Arcs are limited to 4 encoded bytes each and the entire encoding
// must fit into [MaxLen] bytes.
//
// [Rec. ITU-T X.660]: https://www.itu.int/rec/T-REC-X.660
package oid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"codello.dev/der/internal/base128"
)

// MaxLen is the maximum length of the BER/DER encoding of an
// [ObjectIdentifier] in bytes.
const MaxLen = 23

// Limits for the first two arcs of an OID. Rec. ITU-T X.660 assigns the
// root of the OID tree three nodes (ITU-T, ISO, joint-iso-itu-t) and limits
// the arcs beneath ITU-T and ISO to 40 each. Both arcs are packed into the
// first byte of the encoding.
const (
	maxFirstArc  = 2
	maxSecondArc = 39
)

// Errors returned when constructing an [ObjectIdentifier].
var (
	ErrTooShort    = errors.New("oid: OID must have at least 3 arcs")
	ErrTooLong     = errors.New("oid: encoded OID exceeds maximum length")
	ErrRootArcs    = errors.New("oid: first arc must be in 0..=2 and second arc in 0..=39")
	ErrArcOverflow = errors.New("oid: arc overflowed")
	ErrTruncated   = errors.New("oid: truncated OID")
)

// ObjectIdentifier is an object identifier. It contains the BER/DER
// serialization of the OID without the tag and length header.
//
// The zero value is not a valid OID. Use [Parse], [FromArcs] or [FromBytes]
// to obtain valid values. ObjectIdentifier values are comparable with ==.
type ObjectIdentifier struct {
	der [MaxLen]byte
	n   uint8
}

// Parse parses an OID from its dot-delimited string form, e.g.
// "1.2.840.113549.1.1.1". The string must consist of at least 3 decimal
// arcs separated by single dots. Empty arcs (including a leading or
// trailing dot) and any character outside of digits and dots are rejected.
func Parse(s string) (ObjectIdentifier, error) {
	var id ObjectIdentifier
	offset := 1
	arcs := 0
	for i, part := range strings.Split(s, ".") {
		arc, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return ObjectIdentifier{}, fmt.Errorf("oid: invalid arc %q: %w", part, errors.Unwrap(err))
		}
		switch i {
		case 0:
			if arc > maxFirstArc {
				return ObjectIdentifier{}, ErrRootArcs
			}
			id.der[0] = byte(arc * (maxSecondArc + 1))
		case 1:
			if arc > maxSecondArc {
				return ObjectIdentifier{}, ErrRootArcs
			}
			id.der[0] += byte(arc)
		default:
			n, err := base128.Put(id.der[offset:], uint32(arc))
			if err != nil {
				return ObjectIdentifier{}, wrapArcErr(err)
			}
			offset += n
		}
		arcs++
	}
	if arcs < 3 {
		return ObjectIdentifier{}, ErrTooShort
	}
	id.n = uint8(offset)
	return id, nil
}

// MustParse works like [Parse] but panics if s is not a valid OID. It
// simplifies the declaration of package-level OID constants.
func MustParse(s string) ObjectIdentifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromArcs creates an [ObjectIdentifier] from a sequence of arc values.
func FromArcs(arcs ...uint32) (ObjectIdentifier, error) {
	if len(arcs) < 3 {
		return ObjectIdentifier{}, ErrTooShort
	}
	if arcs[0] > maxFirstArc || arcs[1] > maxSecondArc {
		return ObjectIdentifier{}, ErrRootArcs
	}
	var id ObjectIdentifier
	id.der[0] = byte(arcs[0]*(maxSecondArc+1) + arcs[1])
	offset := 1
	for _, arc := range arcs[2:] {
		n, err := base128.Put(id.der[offset:], arc)
		if err != nil {
			return ObjectIdentifier{}, wrapArcErr(err)
		}
		offset += n
	}
	id.n = uint8(offset)
	return id, nil
}

// FromBytes creates an [ObjectIdentifier] from its BER/DER encoding, i.e.
// the contents octets of an encoded OID without the tag and length header.
func FromBytes(b []byte) (ObjectIdentifier, error) {
	if len(b) < 2 {
		return ObjectIdentifier{}, ErrTooShort
	}
	if len(b) > MaxLen {
		return ObjectIdentifier{}, ErrTooLong
	}
	if b[0] >= (maxFirstArc+1)*(maxSecondArc+1) {
		return ObjectIdentifier{}, ErrRootArcs
	}
	for offset := 1; offset < len(b); {
		_, n, err := base128.Decode(b[offset:])
		if err != nil {
			return ObjectIdentifier{}, wrapArcErr(err)
		}
		offset += n
	}
	var id ObjectIdentifier
	copy(id.der[:], b)
	id.n = uint8(len(b))
	return id, nil
}

func wrapArcErr(err error) error {
	switch {
	case errors.Is(err, base128.ErrOverflow):
		return ErrArcOverflow
	case errors.Is(err, base128.ErrTruncated):
		return ErrTruncated
	default:
		// base128.Put ran out of buffer space.
		return ErrTooLong
	}
}

// Bytes returns the BER/DER serialization of id, without the tag and length
// header. The returned slice must not be modified.
func (id ObjectIdentifier) Bytes() []byte {
	return id.der[:id.n]
}

// Len returns the length of the BER/DER serialization of id in bytes.
func (id ObjectIdentifier) Len() int {
	return int(id.n)
}

// IsZero reports whether id is the zero value, which is not a valid OID.
func (id ObjectIdentifier) IsZero() bool {
	return id.n == 0
}

// Equal reports whether id and other identify the same object.
func (id ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return id == other
}

// Arc returns the arc at the given index, if it exists.
func (id ObjectIdentifier) Arc(index int) (uint32, bool) {
	arcs := id.Arcs()
	for i := 0; arcs.Next(); i++ {
		if i == index {
			return arcs.Arc(), true
		}
	}
	return 0, false
}

// Arcs returns an iterator over the arcs of id, including the first two.
// Iteration follows the pattern of [bufio.Scanner]:
//
//	arcs := id.Arcs()
//	for arcs.Next() {
//		use(arcs.Arc())
//	}
//	if err := arcs.Err(); err != nil { ... }
//
// For values constructed via [Parse], [FromArcs] or [FromBytes] the
// iteration cannot fail.
func (id ObjectIdentifier) Arcs() *Arcs {
	return &Arcs{id: id, index: -2}
}

// String returns the dot-delimited string form of id.
func (id ObjectIdentifier) String() string {
	var sb strings.Builder
	arcs := id.Arcs()
	for i := 0; arcs.Next(); i++ {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(arcs.Arc()), 10))
	}
	return sb.String()
}

// Arcs iterates over the arcs of an [ObjectIdentifier]. See
// [ObjectIdentifier.Arcs].
type Arcs struct {
	id ObjectIdentifier
	// index is the offset of the next arc within the encoding. The values
	// -2 and -1 indicate the first and second arc which are both packed
	// into the byte at offset 0.
	index int
	arc   uint32
	err   error
}

// Next advances the iterator to the next arc. It returns false when the
// iteration is finished or an error occurred.
func (a *Arcs) Next() bool {
	if a.err != nil {
		return false
	}
	switch {
	case a.index == -2:
		a.arc = uint32(a.id.der[0]) / (maxSecondArc + 1)
		a.index = -1
	case a.index == -1:
		a.arc = uint32(a.id.der[0]) % (maxSecondArc + 1)
		a.index = 1
	case a.index < a.id.Len():
		v, n, err := base128.Decode(a.id.der[a.index:a.id.n])
		if err != nil {
			a.err = wrapArcErr(err)
			return false
		}
		a.arc = v
		a.index += n
	default:
		return false
	}
	return true
}

// Arc returns the arc the iterator currently points to.
func (a *Arcs) Arc() uint32 {
	return a.arc
}

// Err returns the first error encountered during iteration, if any.
func (a *Arcs) Err() error {
	return a.err
}
