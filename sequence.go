// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

//region [UNIVERSAL 16] SEQUENCE

// Sequence is the ASN.1 SEQUENCE and SEQUENCE OF type. A decoded Sequence
// holds its contents octets undecoded; use [Sequence.Decoder] or
// [SequenceElements] to decode the individual fields or elements.
type Sequence struct {
	bytes []byte
}

// NewSequence creates a [Sequence] whose contents octets are b. The bytes
// are not validated; they are expected to be a concatenation of DER-encoded
// values.
func NewSequence(b []byte) (Sequence, error) {
	if _, err := NewLength(len(b)); err != nil {
		return Sequence{}, err
	}
	return Sequence{bytes: b}, nil
}

// Bytes returns the contents octets of v.
func (v Sequence) Bytes() []byte {
	return v.bytes
}

// Decoder returns a new [Decoder] reading the contents octets of v.
func (v Sequence) Decoder() *Decoder {
	return NewDecoder(v.bytes)
}

func (v *Sequence) fromAny(a Any) error {
	if err := a.tag.Assert(TagSequence); err != nil {
		return err
	}
	v.bytes = a.value
	return nil
}

func (v *Sequence) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v Sequence) DerLen() (Length, error) {
	return Length(len(v.bytes)).ForTLV()
}

func (v Sequence) DerEncode(e *Encoder) error {
	if err := e.Encode(Header{Tag: TagSequence, Length: Length(len(v.bytes))}); err != nil {
		return err
	}
	return e.write(v.bytes)
}

//endregion

// An Iter decodes consecutive values of a homogeneous type from a byte
// slice. Its usage follows the pattern of [bufio.Scanner]:
//
//	for it.Next() {
//		elem := it.Value()
//		// ...
//	}
//	if err := it.Err(); err != nil {
//		// ...
//	}
//
// The first decoding error stops the iterator.
type Iter[T any, PT interface {
	*T
	Decodable
}] struct {
	d     *Decoder
	value T
	err   error
}

// SequenceElements returns an iterator over the elements of v, decoding each
// as a T.
func SequenceElements[T any, PT interface {
	*T
	Decodable
}](v Sequence) *Iter[T, PT] {
	return &Iter[T, PT]{d: v.Decoder()}
}

// Next decodes the next element. It returns false when the input is
// exhausted or an element fails to decode.
func (it *Iter[T, PT]) Next() bool {
	if it.err != nil || it.d.Finished() {
		return false
	}
	var value T
	if err := it.d.Decode(PT(&value)); err != nil {
		it.err = err
		return false
	}
	it.value = value
	return true
}

// Value returns the element decoded by the last successful call to
// [Iter.Next].
func (it *Iter[T, PT]) Value() T {
	return it.value
}

// Err returns the first error encountered by the iterator, if any.
func (it *Iter[T, PT]) Err() error {
	return it.err
}
