// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/der/oid"
)

// algorithmIdentifier mirrors the AlgorithmIdentifier structure from
// RFC 5280, Section 4.1.1.2 with a NULL parameter.
type algorithmIdentifier struct {
	Algorithm OID
}

func (ai algorithmIdentifier) Fields() ([]Encodable, error) {
	return []Encodable{ai.Algorithm, Null{}}, nil
}

func (ai *algorithmIdentifier) DerDecode(d *Decoder) error {
	return d.Sequence(func(d *Decoder) error {
		if err := d.Decode(&ai.Algorithm); err != nil {
			return err
		}
		var null Null
		return d.Decode(&null)
	})
}

// sha256WithRSA is the encoding of the sha256WithRSAEncryption
// AlgorithmIdentifier.
var sha256WithRSA = []byte{
	0x30, 0x0D,
	0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B,
	0x05, 0x00,
}

func TestMarshalMessage(t *testing.T) {
	ai := algorithmIdentifier{Algorithm: OID{oid.MustParse("1.2.840.113549.1.1.11")}}
	got, err := MarshalMessage(ai)
	require.NoError(t, err)
	assert.Equal(t, sha256WithRSA, got)
}

func TestMessageLen(t *testing.T) {
	ai := algorithmIdentifier{Algorithm: OID{oid.MustParse("1.2.840.113549.1.1.11")}}
	n, err := MessageLen(ai)
	require.NoError(t, err)
	assert.Equal(t, Length(len(sha256WithRSA)), n)
}

func TestMessage_roundTrip(t *testing.T) {
	want := algorithmIdentifier{Algorithm: OID{oid.MustParse("1.2.840.113549.1.1.11")}}
	var got algorithmIdentifier
	require.NoError(t, Unmarshal(sha256WithRSA, &got))
	assert.Equal(t, want, got)
}

func TestAsEncodable_nested(t *testing.T) {
	ai := algorithmIdentifier{Algorithm: OID{oid.MustParse("1.2.840.113549.1.1.11")}}
	e := NewEncoder(make([]byte, 32))
	require.NoError(t, e.Sequence(AsEncodable(ai)))
	out, err := e.Finish()
	require.NoError(t, err)

	want := append([]byte{0x30, 0x0F}, sha256WithRSA...)
	assert.Equal(t, want, out)
}

// failingMessage reports an error while collecting its fields.
type failingMessage struct{}

func (failingMessage) Fields() ([]Encodable, error) {
	return nil, errOverflow()
}

func TestEncodeMessage_fieldsError(t *testing.T) {
	e := NewEncoder(make([]byte, 8))
	wantKind(t, EncodeMessage(e, failingMessage{}), KindOverflow)

	// The encoder is poisoned by the failed message.
	_, err := e.Finish()
	wantKind(t, err, KindOverflow)
}
