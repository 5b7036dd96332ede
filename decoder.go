// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Decoder decodes DER values from a byte slice. The decoder maintains a
// cursor into the slice that only ever moves forward; decoded values
// reference the original input instead of copying it.
//
// The first error permanently fails the decoder: every subsequent operation
// returns the error that occurred first. Errors are annotated with the
// cursor position at which they occurred.
type Decoder struct {
	bytes []byte
	pos   int
	err   error
}

// NewDecoder creates a [Decoder] reading from b. The decoder does not copy
// b; the caller must not modify b until decoding is complete.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{bytes: b}
}

// Decode decodes a single value from d into val.
func (d *Decoder) Decode(val Decodable) error {
	if d.err != nil {
		return d.err
	}
	if err := val.DerDecode(d); err != nil {
		return d.fail(err)
	}
	return nil
}

// Any decodes a single value of any supported type from d, leaving its
// contents octets undecoded.
func (d *Decoder) Any() (Any, error) {
	var a Any
	err := d.Decode(&a)
	return a, err
}

// Header decodes the identifier and length octets of the next value,
// leaving its contents octets unconsumed.
func (d *Decoder) Header() (Header, error) {
	var h Header
	err := d.Decode(&h)
	return h, err
}

// Sequence decodes a SEQUENCE from d and calls f with a nested [Decoder]
// over its contents octets. f must decode the complete contents: if the
// nested decoder is not finished when f returns, Sequence reports an error
// of kind [KindLength].
func (d *Decoder) Sequence(f func(*Decoder) error) error {
	if d.err != nil {
		return d.err
	}
	var s Sequence
	if err := s.DerDecode(d); err != nil {
		return d.fail(err)
	}
	nested := s.Decoder()
	if err := f(nested); err != nil {
		return d.fail(err)
	}
	if !nested.Finished() {
		return d.fail(errLength(TagSequence))
	}
	return nil
}

// Optional decodes an OPTIONAL value at the end of a message. If no input
// remains, Optional leaves val unmodified and reports ok == false. Otherwise
// the value is decoded regularly.
func (d *Decoder) Optional(val Decodable) (ok bool, err error) {
	if d.err != nil {
		return false, d.err
	}
	if d.Finished() {
		return false, nil
	}
	if err := d.Decode(val); err != nil {
		return false, err
	}
	return true, nil
}

// Finished reports whether the input has been fully consumed.
func (d *Decoder) Finished() bool {
	return d.pos >= len(d.bytes)
}

// Remaining returns the number of undecoded bytes.
func (d *Decoder) Remaining() int {
	return len(d.bytes) - d.pos
}

// Finish verifies that decoding consumed the complete input. If undecoded
// bytes remain, Finish returns an error of kind [KindTrailingData].
func (d *Decoder) Finish() error {
	if d.err != nil {
		return d.err
	}
	if !d.Finished() {
		return d.fail(&Error{
			Kind:      KindTrailingData,
			Decoded:   Length(d.pos),
			Remaining: Length(d.Remaining()),
			Offset:    d.pos,
		})
	}
	return nil
}

// readByte consumes a single byte from the input.
func (d *Decoder) readByte() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.Finished() {
		return 0, d.error(errTruncated())
	}
	b := d.bytes[d.pos]
	d.pos++
	return b, nil
}

// read consumes the next n bytes from the input. The returned slice shares
// its backing array with the input.
func (d *Decoder) read(n int) ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	if n > d.Remaining() {
		return nil, d.error(errTruncated())
	}
	b := d.bytes[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// error annotates err with the current cursor position without failing the
// decoder. Value decoders use it so that outer decoders can still translate
// the error into a more specific one.
func (d *Decoder) error(err error) error {
	if derr, ok := err.(*Error); ok && derr.Offset < 0 {
		derr.Offset = d.pos
	}
	return err
}

// fail records err as the decoder's permanent error state. If the decoder
// already failed, the earlier error wins.
func (d *Decoder) fail(err error) error {
	if derr, ok := err.(*Error); ok && derr.Offset < 0 {
		derr.Offset = d.pos
	}
	if d.err == nil {
		d.err = err
	}
	return err
}
