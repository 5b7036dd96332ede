// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_multipleValues(t *testing.T) {
	d := NewDecoder([]byte{
		0x01, 0x01, 0xFF, // BOOLEAN true
		0x02, 0x01, 0x2A, // INTEGER 42
	})
	var b Boolean
	require.NoError(t, d.Decode(&b))
	assert.Equal(t, Boolean(true), b)
	assert.Equal(t, 3, d.Remaining())

	var n Integer
	require.NoError(t, d.Decode(&n))
	assert.Equal(t, Integer(42), n)
	require.NoError(t, d.Finish())
	assert.True(t, d.Finished())
}

func TestDecoder_poisoning(t *testing.T) {
	d := NewDecoder([]byte{
		0x01, 0x01, 0x01, // malformed BOOLEAN
		0x02, 0x01, 0x2A, // INTEGER 42
	})
	var b Boolean
	first := d.Decode(&b)
	wantKind(t, first, KindNoncanonical)

	// Every subsequent operation reports the first error.
	var n Integer
	assert.Same(t, first, d.Decode(&n))
	_, err := d.Any()
	assert.Same(t, first, err)
	assert.Same(t, first, d.Finish())
	_, err = d.Optional(&n)
	assert.Same(t, first, err)
}

func TestDecoder_errorOffset(t *testing.T) {
	tests := map[string]struct {
		data   []byte
		kind   ErrorKind
		offset int
	}{
		"BadTag":          {[]byte{0x02, 0x01, 0x2A, 0x0D, 0x00}, KindUnknownTag, 4},
		"TruncatedHeader": {[]byte{0x02, 0x01, 0x2A, 0x02}, KindTruncated, 4},
		"ShortContents":   {[]byte{0x02, 0x01, 0x2A, 0x02, 0x05, 0x00}, KindLength, 5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewDecoder(tt.data)
			var n Integer
			require.NoError(t, d.Decode(&n))
			err := d.Decode(&n)
			derr := wantKind(t, err, tt.kind)
			assert.Equal(t, tt.offset, derr.Offset)
		})
	}
}

func TestDecoder_Sequence(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	d := NewDecoder(data)
	var n Integer
	var b Boolean
	err := d.Sequence(func(d *Decoder) error {
		if err := d.Decode(&n); err != nil {
			return err
		}
		return d.Decode(&b)
	})
	require.NoError(t, err)
	require.NoError(t, d.Finish())
	assert.Equal(t, Integer(1), n)
	assert.Equal(t, Boolean(true), b)
}

func TestDecoder_Sequence_incomplete(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	d := NewDecoder(data)
	var n Integer
	err := d.Sequence(func(d *Decoder) error {
		return d.Decode(&n)
	})
	derr := wantKind(t, err, KindLength)
	assert.Equal(t, TagSequence, derr.Tag)
}

func TestDecoder_Header(t *testing.T) {
	d := NewDecoder([]byte{0x04, 0x03, 0x01, 0x02, 0x03})
	h, err := d.Header()
	require.NoError(t, err)
	assert.Equal(t, Header{TagOctetString, 3}, h)
	assert.Equal(t, 3, d.Remaining(), "Header() must not consume the contents")
}

func TestDecoder_prefixesFail(t *testing.T) {
	// Every strict prefix of a valid message must fail to decode.
	msg := []byte{
		0x30, 0x10,
		0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B,
		0x03, 0x03, 0x00, 0xAB, 0xCD,
	}
	var s Sequence
	require.NoError(t, Unmarshal(msg, &s))

	for i := 0; i < len(msg); i++ {
		var s Sequence
		assert.Error(t, Unmarshal(msg[:i], &s), "prefix of %d bytes must not decode", i)
	}
}

func TestDecoder_Optional(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		d := NewDecoder([]byte{0x02, 0x01, 0x07})
		var n Integer
		ok, err := d.Optional(&n)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Integer(7), n)
	})
	t.Run("Absent", func(t *testing.T) {
		d := NewDecoder(nil)
		n := Integer(-1)
		ok, err := d.Optional(&n)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, Integer(-1), n, "Optional() must not modify the value when absent")
	})
	t.Run("Malformed", func(t *testing.T) {
		d := NewDecoder([]byte{0x02, 0x00})
		var n Integer
		_, err := d.Optional(&n)
		wantKind(t, err, KindLength)
	})
}
