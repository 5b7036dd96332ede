// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "strconv"

// Length is the number of contents octets of an encoded value. Lengths are
// presently constrained to the range 0..=[MaxLength], i.e. the definite
// short form and long forms of up to 2 bytes.
type Length uint32

// MaxLength is the maximum [Length] supported by this package.
const MaxLength Length = 65535

// NewLength creates a [Length] from an int. It returns an error of kind
// [KindOverflow] if n is negative or exceeds [MaxLength].
func NewLength(n int) (Length, error) {
	if n < 0 || n > int(MaxLength) {
		return 0, errOverflow()
	}
	return Length(n), nil
}

// Add returns l + other, or an error of kind [KindOverflow] if the sum
// exceeds [MaxLength].
func (l Length) Add(other Length) (Length, error) {
	sum := l + other
	if sum > MaxLength || sum < l {
		return 0, errOverflow()
	}
	return sum, nil
}

// Int returns l as an int.
func (l Length) Int() int {
	return int(l)
}

// ForTLV interprets l as the length of the contents octets of a value and
// returns the size of the complete TLV encoding: one tag octet, the length
// octets and the contents.
func (l Length) ForTLV() (Length, error) {
	n, err := l.DerLen()
	if err != nil {
		return 0, err
	}
	n, err = n.Add(l)
	if err != nil {
		return 0, err
	}
	return n.Add(1)
}

// String returns l in decimal notation.
func (l Length) String() string {
	return strconv.FormatUint(uint64(l), 10)
}

// DerLen returns the number of octets needed to encode l itself.
func (l Length) DerLen() (Length, error) {
	switch {
	case l <= 0x7f:
		return 1, nil
	case l <= 0xff:
		return 2, nil
	case l <= MaxLength:
		return 3, nil
	default:
		return 0, errOverflow()
	}
}

// DerEncode writes the canonical encoding of l to e. Per Rec. ITU-T X.690,
// Section 10.1 the definite form with the minimum number of octets is used.
func (l Length) DerEncode(e *Encoder) error {
	switch {
	case l <= 0x7f:
		return e.byte(byte(l))
	case l <= 0xff:
		if err := e.byte(0x81); err != nil {
			return err
		}
		return e.byte(byte(l))
	case l <= MaxLength:
		if err := e.byte(0x82); err != nil {
			return err
		}
		if err := e.byte(byte(l >> 8)); err != nil {
			return err
		}
		return e.byte(byte(l))
	default:
		return e.fail(errOverflow())
	}
}

// DerDecode reads the length octets of a value from d. Indefinite lengths
// (initial octet 0x80) are not permitted in DER and are rejected with
// [KindOverlength], as are long forms of more than 2 octets. Long forms that
// could have been encoded shorter are rejected with [KindNoncanonical].
func (l *Length) DerDecode(d *Decoder) error {
	b, err := d.readByte()
	if err != nil {
		return err
	}
	switch {
	case b < 0x80:
		*l = Length(b)
	case b == 0x81:
		if b, err = d.readByte(); err != nil {
			return err
		}
		if b < 0x80 {
			return d.error(errNoncanonical(0))
		}
		*l = Length(b)
	case b == 0x82:
		hi, err := d.readByte()
		if err != nil {
			return err
		}
		lo, err := d.readByte()
		if err != nil {
			return err
		}
		v := Length(hi)<<8 | Length(lo)
		if v <= 0xff {
			return d.error(errNoncanonical(0))
		}
		*l = v
	default:
		return d.error(errOverlength())
	}
	return nil
}
