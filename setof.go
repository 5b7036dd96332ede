// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "bytes"

//region [UNIVERSAL 17] SET OF

// SetOf is the ASN.1 SET OF type with elements of type T. DER requires the
// encodings of the elements to appear in ascending lexicographic order;
// constructing or decoding a SetOf validates the order eagerly, so every
// SetOf value holds a valid, sorted set. The elements themselves remain
// undecoded; use [SetOf.Elements] to iterate over them.
type SetOf[T any, PT interface {
	*T
	Decodable
}] struct {
	bytes []byte
	count int
}

// NewSetOf creates a [SetOf] whose contents octets are b. The bytes are
// validated: each element must decode as a T and the element encodings must
// be in strictly ascending lexicographic order. Out-of-order or duplicate
// elements are reported as an error of kind [KindNoncanonical].
func NewSetOf[T any, PT interface {
	*T
	Decodable
}](b []byte) (SetOf[T, PT], error) {
	if _, err := NewLength(len(b)); err != nil {
		return SetOf[T, PT]{}, err
	}
	d := NewDecoder(b)
	count := 0
	var prev []byte
	for !d.Finished() {
		start := d.pos
		var elem T
		if err := d.Decode(PT(&elem)); err != nil {
			return SetOf[T, PT]{}, err
		}
		chunk := b[start:d.pos]
		if prev != nil && bytes.Compare(prev, chunk) >= 0 {
			return SetOf[T, PT]{}, errNoncanonical(TagSet)
		}
		prev = chunk
		count++
	}
	return SetOf[T, PT]{bytes: b, count: count}, nil
}

// Len returns the number of elements in v.
func (v SetOf[T, PT]) Len() int {
	return v.count
}

// Bytes returns the contents octets of v.
func (v SetOf[T, PT]) Bytes() []byte {
	return v.bytes
}

// Elements returns an iterator over the elements of v. The iterator starts
// at the first element; multiple iterators can be used independently.
func (v SetOf[T, PT]) Elements() *Iter[T, PT] {
	return &Iter[T, PT]{d: NewDecoder(v.bytes)}
}

func (v *SetOf[T, PT]) fromAny(a Any) error {
	if err := a.tag.Assert(TagSet); err != nil {
		return err
	}
	set, err := NewSetOf[T, PT](a.value)
	if err != nil {
		return err
	}
	*v = set
	return nil
}

func (v *SetOf[T, PT]) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v SetOf[T, PT]) DerLen() (Length, error) {
	return Length(len(v.bytes)).ForTLV()
}

func (v SetOf[T, PT]) DerEncode(e *Encoder) error {
	if err := e.Encode(Header{Tag: TagSet, Length: Length(len(v.bytes))}); err != nil {
		return err
	}
	return e.write(v.bytes)
}

//endregion
