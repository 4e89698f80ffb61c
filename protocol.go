// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcodec

// An Emitter receives a description of the shape of a value.  Each format
// provides an Emitter that renders the description in its own syntax.
//
// Methods that take a body function describe a container. The body is called
// at most once, with the Emitter to use for the contents of the container,
// and must describe the elements in order. An Emitter may skip the body of a
// container declared to have no elements. An error reported by the body is
// returned by the enclosing method.
type Emitter interface {
	EmitNil() error
	EmitBool(bool) error
	EmitInt64(int64) error
	EmitUint64(uint64) error
	EmitFloat64(float64) error
	EmitString(string) error

	// EmitSeq describes a sequence of n elements. The body must call
	// EmitSeqElt once per element, with indexes 0..n-1 in order.
	EmitSeq(n int, body func(Emitter) error) error
	EmitSeqElt(i int, body func(Emitter) error) error

	// EmitMap describes a map of n entries. For each entry the body must call
	// EmitMapKey and then EmitMapValue with the same index.
	EmitMap(n int, body func(Emitter) error) error
	EmitMapKey(i int, body func(Emitter) error) error
	EmitMapValue(i int, body func(Emitter) error) error

	// EmitStruct describes a record of n named fields. The body must call
	// EmitStructField once per field.
	EmitStruct(name string, n int, body func(Emitter) error) error
	EmitStructField(name string, i int, body func(Emitter) error) error

	// EmitEnumVariant describes the variant with the given name and ordinal
	// of an enumeration, carrying argc arguments. The body must call
	// EmitEnumVariantArg once per argument.
	EmitEnumVariant(name string, id, argc int, body func(Emitter) error) error
	EmitEnumVariantArg(i int, body func(Emitter) error) error

	// EmitOption describes an optional value. The body must call exactly one
	// of EmitOptionNone or EmitOptionSome.
	EmitOption(body func(Emitter) error) error
	EmitOptionNone() error
	EmitOptionSome(body func(Emitter) error) error
}

// A Consumer supplies the contents of an encoded value to a decoder that
// knows what shape to expect.  Each format provides a Consumer that reads
// from its own representation.
//
// Body functions are called with the Consumer to use for the contents of a
// container.  A value that needs to report a result from a body should
// capture a variable in the body closure.
type Consumer interface {
	ReadNil() error
	ReadBool() (bool, error)
	ReadInt64() (int64, error)
	ReadUint64() (uint64, error)
	ReadFloat64() (float64, error)
	ReadString() (string, error)

	// ReadSeq reads a sequence. The body is passed the number of elements,
	// and must call ReadSeqElt for each of them in order.
	ReadSeq(body func(c Consumer, n int) error) error
	ReadSeqElt(i int, body func(Consumer) error) error

	// ReadMap reads a map. The body is passed the number of entries, and must
	// call ReadMapKey and ReadMapValue for each of them in order.
	ReadMap(body func(c Consumer, n int) error) error
	ReadMapKey(i int, body func(Consumer) error) error
	ReadMapValue(i int, body func(Consumer) error) error

	// ReadStruct reads a record. The body must call ReadStructField for each
	// field it wants to populate.
	ReadStruct(name string, n int, body func(Consumer) error) error
	ReadStructField(name string, i int, body func(Consumer) error) error

	// ReadEnumVariant reads an enumeration whose variants are named by names.
	// The body is passed the offset in names of the variant found, and must
	// call ReadEnumVariantArg for each argument of that variant.
	ReadEnumVariant(names []string, body func(c Consumer, index int) error) error
	ReadEnumVariantArg(i int, body func(Consumer) error) error

	// ReadOption reads an optional value. The body is passed true if a value
	// is present, in which case it must read the value.
	ReadOption(body func(c Consumer, ok bool) error) error

	// Error constructs an application error carrying msg, for use by
	// decoders that find well-formed input they cannot accept.
	Error(msg string) error
}

// Encodable is implemented by values that can describe themselves to an
// Emitter.
type Encodable interface {
	Encode(Emitter) error
}

// Decodable is implemented by values that can populate themselves from a
// Consumer.  Implementations generally have pointer receivers.
type Decodable interface {
	Decode(Consumer) error
}

// EncodeFunc adapts a function to the Encodable interface.
type EncodeFunc func(Emitter) error

// Encode satisfies the Encodable interface by calling f(e).
func (f EncodeFunc) Encode(e Emitter) error { return f(e) }

// DecodeFunc adapts a function to the Decodable interface.
type DecodeFunc func(Consumer) error

// Decode satisfies the Decodable interface by calling f(c).
func (f DecodeFunc) Decode(c Consumer) error { return f(c) }
