// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_multipleValues(t *testing.T) {
	e := NewEncoder(make([]byte, 6))
	require.NoError(t, e.Encode(Boolean(true)))
	require.NoError(t, e.Encode(Integer(42)))
	out, err := e.Finish()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0xFF, 0x02, 0x01, 0x2A}, out)
}

func TestEncoder_bufferTooSmall(t *testing.T) {
	e := NewEncoder(make([]byte, 2))
	err := e.Encode(Boolean(true))
	wantKind(t, err, KindOverlength)
	_, err = e.Finish()
	wantKind(t, err, KindOverlength)
}

func TestEncoder_poisoning(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	first := e.Encode(UTF8String("\xff\xfe"))
	wantKind(t, first, KindValue)

	assert.Same(t, first, e.Encode(Boolean(true)))
	_, err := e.Finish()
	assert.Same(t, first, err)
}

func TestEncoder_Sequence(t *testing.T) {
	var buf [8]byte
	e := NewEncoder(buf[:])
	require.NoError(t, e.Sequence(Integer(1), Boolean(true)))
	out, err := e.Finish()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}, out)
}

// shortField declares a larger encoding than it produces.
type shortField struct{}

func (shortField) DerLen() (Length, error) { return 4, nil }

func (shortField) DerEncode(e *Encoder) error { return e.byte(0x00) }

func TestEncoder_Sequence_lengthMismatch(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	err := e.Sequence(shortField{})
	derr := wantKind(t, err, KindLength)
	assert.Equal(t, TagSequence, derr.Tag)
}

func TestEncoder_Sequence_nested(t *testing.T) {
	inner, err := NewSequence([]byte{0x02, 0x01, 0x05})
	require.NoError(t, err)
	var buf [16]byte
	e := NewEncoder(buf[:])
	require.NoError(t, e.Sequence(inner, Null{}))
	out, err := e.Finish()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x07, 0x30, 0x03, 0x02, 0x01, 0x05, 0x05, 0x00}, out)
}
