// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// A Message is a composite value that encodes as a SEQUENCE of its fields.
// Implementing Message is the idiomatic way to encode protocol structures:
// return the fields in their declared order and use [MarshalMessage] or
// [EncodeMessage] to produce the encoding.
type Message interface {
	// Fields returns the fields of the message in the order in which they
	// are encoded.
	Fields() ([]Encodable, error)
}

// MessageLen returns the length of the TLV encoding of msg.
func MessageLen(msg Message) (Length, error) {
	fields, err := msg.Fields()
	if err != nil {
		return 0, err
	}
	contents, err := contentsLen(fields)
	if err != nil {
		return 0, err
	}
	return contents.ForTLV()
}

// EncodeMessage encodes msg to e as a SEQUENCE of its fields.
func EncodeMessage(e *Encoder, msg Message) error {
	fields, err := msg.Fields()
	if err != nil {
		return e.fail(err)
	}
	return e.Sequence(fields...)
}

// MarshalMessage returns the DER encoding of msg.
func MarshalMessage(msg Message) ([]byte, error) {
	return Marshal(AsEncodable(msg))
}

// AsEncodable adapts msg into an [Encodable] so that a [Message] can be used
// wherever an Encodable is expected, e.g. as a field of another message.
func AsEncodable(msg Message) Encodable {
	return messageEncoder{msg}
}

type messageEncoder struct {
	msg Message
}

func (m messageEncoder) DerLen() (Length, error) {
	return MessageLen(m.msg)
}

func (m messageEncoder) DerEncode(e *Encoder) error {
	return EncodeMessage(e, m.msg)
}
