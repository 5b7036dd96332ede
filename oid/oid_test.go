// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    []byte
		wantErr error
	}{
		"RSA":           {in: "1.2.840.113549", want: []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d}},
		"RSAEncryption": {in: "1.2.840.113549.1.1.1", want: []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}},
		"AllZero":       {in: "0.0.0", want: []byte{0x00, 0x00}},
		"JointISOITUT":  {in: "2.16.840", want: []byte{0x60, 0x86, 0x48}},
		"Empty":         {in: "", wantErr: assert.AnError},
		"LeadingDot":    {in: ".1.2.3", wantErr: assert.AnError},
		"TrailingDot":   {in: "1.2.840.", wantErr: assert.AnError},
		"DoubleDot":     {in: "1..2", wantErr: assert.AnError},
		"NonDigit":      {in: "1.2.x", wantErr: assert.AnError},
		"Negative":      {in: "1.2.-3", wantErr: assert.AnError},
		"TooFewArcs":    {in: "1.2", wantErr: ErrTooShort},
		"FirstArcHigh":  {in: "3.2.840", wantErr: ErrRootArcs},
		"SecondArcHigh": {in: "1.40.840", wantErr: ErrRootArcs},
		"HugeArc":       {in: "1.2.4294967296", wantErr: assert.AnError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := Parse(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.wantErr != assert.AnError {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Bytes())
			assert.Equal(t, tt.in, id.String())
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("1.2.840.113549") })
	assert.Panics(t, func() { MustParse("oops") })
}

func TestFromArcs(t *testing.T) {
	tests := map[string]struct {
		arcs    []uint32
		want    string
		wantErr error
	}{
		"RSA":           {arcs: []uint32{1, 2, 840, 113549}, want: "1.2.840.113549"},
		"TooFewArcs":    {arcs: []uint32{1, 2}, wantErr: ErrTooShort},
		"FirstArcHigh":  {arcs: []uint32{3, 2, 840}, wantErr: ErrRootArcs},
		"SecondArcHigh": {arcs: []uint32{2, 40, 840}, wantErr: ErrRootArcs},
		"ArcOverflow":   {arcs: []uint32{1, 2, 1 << 28}, wantErr: ErrArcOverflow},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := FromArcs(tt.arcs...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestFromArcs_tooLong(t *testing.T) {
	arcs := make([]uint32, 2, 27)
	for i := 0; i < 25; i++ {
		// Each of these arcs occupies a single byte.
		arcs = append(arcs, 127)
	}
	_, err := FromArcs(arcs...)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestFromBytes(t *testing.T) {
	tests := map[string]struct {
		in      []byte
		want    string
		wantErr error
	}{
		"RSA":          {in: []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d}, want: "1.2.840.113549"},
		"Empty":        {in: nil, wantErr: ErrTooShort},
		"RootOnly":     {in: []byte{0x2a}, wantErr: ErrTooShort},
		"RootTooLarge": {in: []byte{0x78, 0x01}, wantErr: ErrRootArcs},
		"Truncated":    {in: []byte{0x2a, 0x86, 0x48, 0x86, 0xf7}, wantErr: ErrTruncated},
		"ArcOverflow":  {in: []byte{0x2a, 0xff, 0xff, 0xff, 0xff, 0x7f}, wantErr: ErrArcOverflow},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := FromBytes(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
			assert.Equal(t, tt.in, id.Bytes())
		})
	}
}

func TestObjectIdentifier_Arcs(t *testing.T) {
	id := MustParse("1.2.840.113549.1.1.1")
	var got []uint32
	arcs := id.Arcs()
	for arcs.Next() {
		got = append(got, arcs.Arc())
	}
	require.NoError(t, arcs.Err())
	assert.Equal(t, []uint32{1, 2, 840, 113549, 1, 1, 1}, got)
}

func TestObjectIdentifier_Arc(t *testing.T) {
	id := MustParse("1.2.840.113549")
	for i, want := range []uint32{1, 2, 840, 113549} {
		arc, ok := id.Arc(i)
		require.True(t, ok)
		assert.Equal(t, want, arc)
	}
	_, ok := id.Arc(4)
	assert.False(t, ok)
}

func TestObjectIdentifier_Equal(t *testing.T) {
	a := MustParse("1.2.840.113549")
	b := MustParse("1.2.840.113549")
	c := MustParse("1.2.840.113550")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a == b)
}
