// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// ContextSpecific is an EXPLICIT context-specific field with an arbitrary
// inner value. The inner value is kept as an [Any]; use its conversion
// methods to interpret it.
type ContextSpecific struct {
	// Number is the tag number of the context-specific tag, i.e. the N in
	// [N].
	Number TagNumber

	// Value is the wrapped inner value.
	Value Any
}

// DerMatch reports whether tag is a context-specific tag.
func (v ContextSpecific) DerMatch(tag Tag) bool {
	return tag.IsContextSpecific()
}

func (v *ContextSpecific) fromAny(a Any) error {
	if !a.tag.IsContextSpecific() {
		return errUnexpectedTagAny(a.tag)
	}
	nested := NewDecoder(a.value)
	inner, err := nested.Any()
	if err != nil {
		return err
	}
	if err := nested.Finish(); err != nil {
		return err
	}
	v.Number = a.tag.Number()
	v.Value = inner
	return nil
}

func (v *ContextSpecific) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v ContextSpecific) DerLen() (Length, error) {
	inner, err := v.Value.DerLen()
	if err != nil {
		return 0, err
	}
	return inner.ForTLV()
}

func (v ContextSpecific) DerEncode(e *Encoder) error {
	inner, err := v.Value.DerLen()
	if err != nil {
		return e.fail(err)
	}
	header := Header{Tag: ContextSpecificTag(v.Number), Length: inner}
	if err := e.Encode(header); err != nil {
		return err
	}
	return e.Encode(v.Value)
}

// Contextual is an EXPLICIT context-specific field wrapping a value of a
// known type T. In contrast to [ContextSpecific] the inner value is fully
// decoded.
//
// T must be a value type whose pointer implements [Decodable] for decoding
// to work; this is the case for all types in this package.
type Contextual[T Encodable] struct {
	// Number is the tag number of the context-specific tag, i.e. the N in
	// [N].
	Number TagNumber

	// Value is the wrapped inner value.
	Value T
}

// DerMatch reports whether tag is the context-specific tag [v.Number].
func (v Contextual[T]) DerMatch(tag Tag) bool {
	return tag == ContextSpecificTag(v.Number)
}

func (v *Contextual[T]) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	expected := ContextSpecificTag(v.Number)
	if a.tag != expected {
		return d.fail(errUnexpectedTag(expected, a.tag))
	}
	val, ok := interface{}(&v.Value).(Decodable)
	if !ok {
		return d.fail(errValue(a.tag))
	}
	nested := NewDecoder(a.value)
	if err := nested.Decode(val); err != nil {
		return err
	}
	return nested.Finish()
}

func (v Contextual[T]) DerLen() (Length, error) {
	inner, err := v.Value.DerLen()
	if err != nil {
		return 0, err
	}
	return inner.ForTLV()
}

func (v Contextual[T]) DerEncode(e *Encoder) error {
	inner, err := v.Value.DerLen()
	if err != nil {
		return e.fail(err)
	}
	header := Header{Tag: ContextSpecificTag(v.Number), Length: inner}
	if err := e.Encode(header); err != nil {
		return err
	}
	return e.Encode(v.Value)
}
