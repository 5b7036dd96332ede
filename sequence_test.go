// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_codec(t *testing.T) {
	contents := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	s, err := NewSequence(contents)
	require.NoError(t, err)

	want := append([]byte{0x30, 0x06}, contents...)
	got, err := Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var decoded Sequence
	require.NoError(t, Unmarshal(want, &decoded))
	assert.Equal(t, contents, decoded.Bytes())
}

func TestSequence_wrongTag(t *testing.T) {
	var s Sequence
	err := Unmarshal([]byte{0x31, 0x00}, &s)
	derr := wantKind(t, err, KindUnexpectedTag)
	require.NotNil(t, derr.Expected)
	assert.Equal(t, TagSequence, *derr.Expected)
}

func TestSequenceElements(t *testing.T) {
	var s Sequence
	data := []byte{0x30, 0x09, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02, 0x02, 0x01, 0x03}
	require.NoError(t, Unmarshal(data, &s))

	var got []Integer
	it := SequenceElements[Integer](s)
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []Integer{1, 2, 3}, got)
}

func TestSequenceElements_malformed(t *testing.T) {
	// The second element is truncated.
	s, err := NewSequence([]byte{0x02, 0x01, 0x01, 0x02, 0x05, 0x02})
	require.NoError(t, err)

	it := SequenceElements[Integer](s)
	assert.True(t, it.Next())
	assert.Equal(t, Integer(1), it.Value())
	assert.False(t, it.Next())
	wantKind(t, it.Err(), KindLength)
	assert.False(t, it.Next(), "a failed iterator must not restart")
}

func TestAny_Sequence(t *testing.T) {
	d := NewDecoder([]byte{0x30, 0x03, 0x02, 0x01, 0x09})
	a, err := d.Any()
	require.NoError(t, err)

	var n Integer
	require.NoError(t, a.Sequence(func(d *Decoder) error {
		return d.Decode(&n)
	}))
	assert.Equal(t, Integer(9), n)

	err = a.Sequence(func(d *Decoder) error { return nil })
	wantKind(t, err, KindLength)
}
