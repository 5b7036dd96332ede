// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base128 implements the base-128 integer encoding used for the arcs
// of BER/DER object identifiers. Each encoded byte contributes 7 bits of the
// value, most significant group first. The eighth bit marks continuation: it
// is set on every byte except the last one. See Rec. ITU-T X.690, Section
// 8.19.2.
//
// Values are limited to at most 4 encoded bytes, i.e. 28 bits.
package base128

import (
	"errors"
	"io"
	"math/bits"
)

// Max is the largest value that fits into 4 encoded bytes.
const Max = 1<<28 - 1

var (
	// ErrOverflow is returned when a value does not fit into 4 encoded
	// bytes.
	ErrOverflow = errors.New("base128: value overflows 4 bytes")
	// ErrTruncated is returned when the input ends before the final byte of
	// a value.
	ErrTruncated = errors.New("base128: truncated value")
)

// Decode parses a single base-128 value from the beginning of b. It returns
// the value and the number of bytes consumed. If b ends with the
// continuation bit still set, Decode returns [ErrTruncated]. Values occupying
// more than 4 bytes return [ErrOverflow].
func Decode(b []byte) (v uint32, n int, err error) {
	for _, c := range b {
		n++
		if n == 4 && c&0x80 != 0 {
			return 0, n, ErrOverflow
		}
		v = v<<7 | uint32(c&0x7f)
		if c&0x80 == 0 {
			return v, n, nil
		}
	}
	return 0, len(b), ErrTruncated
}

// Len returns the number of bytes needed to encode v.
func Len(v uint32) int {
	if v == 0 {
		return 1
	}
	return (bits.Len32(v) + 6) / 7
}

// Put encodes v into dst and returns the number of bytes written. Values
// larger than [Max] return [ErrOverflow]. If dst is too small to hold the
// encoded value, Put returns [io.ErrShortBuffer].
func Put(dst []byte, v uint32) (int, error) {
	if v > Max {
		return 0, ErrOverflow
	}
	l := Len(v)
	if len(dst) < l {
		return 0, io.ErrShortBuffer
	}
	for i := 0; i < l; i++ {
		b := byte(v>>((l-1-i)*7)) & 0x7f
		if i < l-1 {
			b |= 0x80
		}
		dst[i] = b
	}
	return l, nil
}
