// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "time"

//region [UNIVERSAL 23] UTCTime

// utcTimeLen is the length of a DER-encoded UTCTime: YYMMDDHHMMSSZ.
const utcTimeLen = 13

// UTCTime is the ASN.1 UTCTime type. Per RFC 5280, Section 4.1.2.5.1 values
// must include seconds and must be expressed in Greenwich Mean Time (Zulu),
// i.e. the form YYMMDDHHMMSSZ. The two-digit year spans 1950 through 2049:
// values from 50 to 99 denote 19xx, values from 00 to 49 denote 20xx.
type UTCTime time.Time

// Time returns v as a [time.Time] value.
func (v UTCTime) Time() time.Time {
	return time.Time(v)
}

func (v *UTCTime) fromAny(a Any) error {
	if err := a.tag.Assert(TagUTCTime); err != nil {
		return err
	}
	b := a.value
	if len(b) != utcTimeLen || b[utcTimeLen-1] != 'Z' {
		return errValue(TagUTCTime)
	}
	t, err := parseTimestamp(TagUTCTime, 0, b[:utcTimeLen-1])
	if err != nil {
		return err
	}
	// The two-digit year: 50..=99 map to 19xx, 00..=49 to 20xx.
	if t.Year() >= 50 {
		t = t.AddDate(1900, 0, 0)
	} else {
		t = t.AddDate(2000, 0, 0)
	}
	*v = UTCTime(t)
	return nil
}

func (v *UTCTime) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v UTCTime) DerLen() (Length, error) {
	return Length(utcTimeLen).ForTLV()
}

func (v UTCTime) DerEncode(e *Encoder) error {
	t := time.Time(v).UTC()
	if t.Year() < 1950 || t.Year() >= 2050 {
		return e.fail(errValue(TagUTCTime))
	}
	if err := e.Encode(Header{Tag: TagUTCTime, Length: utcTimeLen}); err != nil {
		return err
	}
	return writeTimestamp(e, t, false)
}

//endregion

//region [UNIVERSAL 24] GeneralizedTime

// generalizedTimeLen is the length of a DER-encoded GeneralizedTime:
// YYYYMMDDHHMMSSZ.
const generalizedTimeLen = 15

// GeneralizedTime is the ASN.1 GeneralizedTime type. Per RFC 5280, Section
// 4.1.2.5.2 values must include seconds, must not include fractional
// seconds and must be expressed in Greenwich Mean Time (Zulu), i.e. the
// form YYYYMMDDHHMMSSZ.
type GeneralizedTime time.Time

// Time returns v as a [time.Time] value.
func (v GeneralizedTime) Time() time.Time {
	return time.Time(v)
}

func (v *GeneralizedTime) fromAny(a Any) error {
	if err := a.tag.Assert(TagGeneralizedTime); err != nil {
		return err
	}
	b := a.value
	if len(b) != generalizedTimeLen || b[generalizedTimeLen-1] != 'Z' {
		return errValue(TagGeneralizedTime)
	}
	century, err := decodeDecimal(TagGeneralizedTime, b[0], b[1])
	if err != nil {
		return err
	}
	t, err := parseTimestamp(TagGeneralizedTime, century*100, b[2:generalizedTimeLen-1])
	if err != nil {
		return err
	}
	*v = GeneralizedTime(t)
	return nil
}

func (v *GeneralizedTime) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v GeneralizedTime) DerLen() (Length, error) {
	return Length(generalizedTimeLen).ForTLV()
}

func (v GeneralizedTime) DerEncode(e *Encoder) error {
	t := time.Time(v).UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return e.fail(errValue(TagGeneralizedTime))
	}
	if err := e.Encode(Header{Tag: TagGeneralizedTime, Length: generalizedTimeLen}); err != nil {
		return err
	}
	return writeTimestamp(e, t, true)
}

//endregion

//region TIME CHOICE

// Time is the CHOICE between the UTCTime and GeneralizedTime types used for
// timestamps in X.509 and related protocols. Decoding accepts either
// alternative. Encoding picks the canonical one: dates in 1950 through 2049
// encode as UTCTime, everything later as GeneralizedTime.
type Time time.Time

// Time returns v as a [time.Time] value.
func (v Time) Time() time.Time {
	return time.Time(v)
}

// isUTCTime reports whether v encodes as the UTCTime alternative.
func (v Time) isUTCTime() bool {
	year := time.Time(v).UTC().Year()
	return year >= 1950 && year < 2050
}

// DerMatch reports whether tag is one of the two time alternatives.
func (v Time) DerMatch(tag Tag) bool {
	return tag == TagUTCTime || tag == TagGeneralizedTime
}

func (v *Time) fromAny(a Any) error {
	switch a.tag {
	case TagUTCTime:
		var t UTCTime
		if err := t.fromAny(a); err != nil {
			return err
		}
		*v = Time(t)
	case TagGeneralizedTime:
		var t GeneralizedTime
		if err := t.fromAny(a); err != nil {
			return err
		}
		*v = Time(t)
	default:
		return errUnexpectedTagAny(a.tag)
	}
	return nil
}

func (v *Time) DerDecode(d *Decoder) error {
	a, err := d.Any()
	if err != nil {
		return err
	}
	return v.fromAny(a)
}

func (v Time) DerLen() (Length, error) {
	if v.isUTCTime() {
		return UTCTime(v).DerLen()
	}
	return GeneralizedTime(v).DerLen()
}

func (v Time) DerEncode(e *Encoder) error {
	if v.isUTCTime() {
		return UTCTime(v).DerEncode(e)
	}
	return GeneralizedTime(v).DerEncode(e)
}

//endregion

// decodeDecimal parses a two-digit decimal number.
func decodeDecimal(tag Tag, hi, lo byte) (int, error) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, errValue(tag)
	}
	return int(hi-'0')*10 + int(lo-'0'), nil
}

// parseTimestamp parses the 12-byte YYMMDDHHMMSS portion common to both time
// types. The century (e.g. 1900) is added to the two-digit year. The
// resulting date is validated by round-tripping it through [time.Date],
// which normalizes out-of-range components.
func parseTimestamp(tag Tag, century int, b []byte) (time.Time, error) {
	var parts [6]int
	for i := range parts {
		p, err := decodeDecimal(tag, b[2*i], b[2*i+1])
		if err != nil {
			return time.Time{}, err
		}
		parts[i] = p
	}
	year := century + parts[0]
	t := time.Date(year, time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, time.UTC)
	// time.Date normalizes out-of-range components; a normalized result
	// means the input was not a real timestamp.
	ok := t.Year() == year && t.Month() == time.Month(parts[1]) && t.Day() == parts[2] &&
		t.Hour() == parts[3] && t.Minute() == parts[4] && t.Second() == parts[5]
	if !ok {
		return time.Time{}, errValue(tag)
	}
	return t, nil
}

// writeTimestamp writes the contents octets of a time value: the digits of
// the timestamp followed by the Zulu suffix. The year is written with four
// digits for GeneralizedTime and two for UTCTime.
func writeTimestamp(e *Encoder, t time.Time, fullYear bool) error {
	year := t.Year()
	if fullYear {
		if err := encodeDecimal(e, year/100); err != nil {
			return err
		}
	}
	for _, part := range [...]int{year % 100, int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()} {
		if err := encodeDecimal(e, part); err != nil {
			return err
		}
	}
	return e.byte('Z')
}

// encodeDecimal writes a two-digit decimal number.
func encodeDecimal(e *Encoder, n int) error {
	if err := e.byte('0' + byte(n/10)); err != nil {
		return err
	}
	return e.byte('0' + byte(n%10))
}
