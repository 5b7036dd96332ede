// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader_codec(t *testing.T) {
	tests := map[string]struct {
		header Header
		want   []byte
	}{
		"Null":          {Header{TagNull, 0}, []byte{0x05, 0x00}},
		"UTF8String":    {Header{TagUTF8String, 5}, []byte{0x0C, 0x05}},
		"Sequence":      {Header{TagSequence, 60}, []byte{0x30, 0x3C}},
		"LongSequence":  {Header{TagSequence, 746}, []byte{0x30, 0x82, 0x02, 0xEA}},
		"ContextTagged": {Header{ContextSpecificTag(1), 200}, []byte{0xA1, 0x81, 0xC8}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			roundTrip[Header, *Header](t, tt.header, tt.want)
		})
	}
}

func TestHeader_decodeErrors(t *testing.T) {
	tests := map[string]struct {
		data []byte
		kind ErrorKind
	}{
		"Empty":          {nil, KindTruncated},
		"UnknownTag":     {[]byte{0x00, 0x00}, KindUnknownTag},
		"MissingLength":  {[]byte{0x30}, KindTruncated},
		"LengthTooLong":  {[]byte{0x30, 0x83, 0x01, 0x00, 0x00}, KindLength},
		"Indefinite":     {[]byte{0x30, 0x80}, KindLength},
		"TruncatedForm":  {[]byte{0x30, 0x82, 0x02}, KindTruncated},
		"NonminimalForm": {[]byte{0x30, 0x81, 0x05}, KindNoncanonical},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var h Header
			err := NewDecoder(tt.data).Decode(&h)
			derr := wantKind(t, err, tt.kind)
			if tt.kind == KindLength {
				// Unsupported length forms are attributed to the
				// already decoded tag.
				assert.Equal(t, TagSequence, derr.Tag)
			}
		})
	}
}
