// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Encoder encodes DER values into a caller-supplied byte slice. The encoder
// maintains a cursor into the slice that only ever moves forward.
//
// The first error permanently fails the encoder: every subsequent operation
// returns the error that occurred first and [Encoder.Finish] refuses to
// return the partially written buffer.
type Encoder struct {
	bytes []byte
	pos   int
	err   error
}

// NewEncoder creates an [Encoder] writing into buf. The buffer must be large
// enough to hold the complete encoding; writes beyond its end fail with
// [KindOverlength]. Use [Encodable.DerLen] to size the buffer exactly.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{bytes: buf}
}

// Encode encodes a single value into the buffer.
func (e *Encoder) Encode(val Encodable) error {
	if e.err != nil {
		return e.err
	}
	if err := val.DerEncode(e); err != nil {
		return e.fail(err)
	}
	return nil
}

// Sequence encodes the given values as an ASN.1 SEQUENCE. The contents
// length is computed from the fields' DerLen methods before any bytes are
// written. After encoding, Sequence verifies that the fields together
// produced exactly as many bytes as they declared and reports an error of
// kind [KindLength] otherwise.
func (e *Encoder) Sequence(fields ...Encodable) error {
	if e.err != nil {
		return e.err
	}
	inner, err := contentsLen(fields)
	if err != nil {
		return e.fail(err)
	}
	if err := e.Encode(Header{Tag: TagSequence, Length: inner}); err != nil {
		return err
	}
	window, err := e.reserve(inner.Int())
	if err != nil {
		return err
	}
	nested := NewEncoder(window)
	for _, field := range fields {
		if err := nested.Encode(field); err != nil {
			return e.fail(err)
		}
	}
	out, err := nested.Finish()
	if err != nil {
		return e.fail(err)
	}
	if len(out) != inner.Int() {
		return e.fail(errLength(TagSequence))
	}
	return nil
}

// Finish completes encoding and returns the prefix of the buffer that was
// written to.
func (e *Encoder) Finish() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.bytes[:e.pos], nil
}

// byte writes a single byte to the buffer.
func (e *Encoder) byte(b byte) error {
	buf, err := e.reserve(1)
	if err != nil {
		return err
	}
	buf[0] = b
	return nil
}

// write copies b to the buffer.
func (e *Encoder) write(b []byte) error {
	buf, err := e.reserve(len(b))
	if err != nil {
		return err
	}
	copy(buf, b)
	return nil
}

// reserve advances the cursor by n bytes and returns the skipped window of
// the buffer for the caller to fill.
func (e *Encoder) reserve(n int) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	if n > len(e.bytes)-e.pos {
		return nil, e.fail(errOverlength())
	}
	buf := e.bytes[e.pos : e.pos+n]
	e.pos += n
	return buf, nil
}

// fail records err as the encoder's permanent error state. If the encoder
// already failed, the earlier error wins.
func (e *Encoder) fail(err error) error {
	if derr, ok := err.(*Error); ok && derr.Offset < 0 {
		derr.Offset = e.pos
	}
	if e.err == nil {
		e.err = err
	}
	return err
}

// contentsLen sums the encoded lengths of fields.
func contentsLen(fields []Encodable) (Length, error) {
	var sum Length
	for _, field := range fields {
		n, err := field.DerLen()
		if err != nil {
			return 0, err
		}
		if sum, err = sum.Add(n); err != nil {
			return 0, err
		}
	}
	return sum, nil
}
