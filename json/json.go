// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"bytes"
	"io"
	"iter"
	"strings"

	"github.com/creachadair/jcodec"
)

// Parse parses a complete JSON value from r.
func Parse(r io.Reader) (Value, error) { return NewBuilder(NewParser(r)).Build() }

// ParseString parses a complete JSON value from s.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// Events returns an iterator over the parse events of the JSON value in r.
func Events(r io.Reader) iter.Seq[Event] { return NewParser(r).Events() }

// Encode returns the compact JSON encoding of v.
func Encode(v jcodec.Encodable) (string, error) {
	var sb strings.Builder
	if err := v.Encode(NewEncoder(&sb)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodePretty returns the pretty JSON encoding of v, indented by the given
// number of spaces per level.
func EncodePretty(v jcodec.Encodable, indent int) (string, error) {
	var sb strings.Builder
	enc := NewPrettyEncoder(&sb)
	if err := enc.SetIndent(indent); err != nil {
		return "", err
	} else if err := v.Encode(enc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Marshal returns the compact JSON encoding of v.
func Marshal(v jcodec.Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Encode(NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent returns the pretty JSON encoding of v, indented by the given
// number of spaces per level.
func MarshalIndent(v jcodec.Encodable, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewPrettyEncoder(&buf)
	if err := enc.SetIndent(indent); err != nil {
		return nil, err
	} else if err := v.Encode(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses text as JSON and decodes the result into d.
func Decode(text string, d jcodec.Decodable) error {
	v, err := ParseString(text)
	if err != nil {
		return err
	}
	return DecodeValue(v, d)
}

// DecodeValue decodes v into d.
func DecodeValue(v Value, d jcodec.Decodable) error { return d.Decode(NewDecoder(v)) }

// DecodeAs parses text as JSON and decodes the result into a new value of
// type T, whose pointer type must implement jcodec.Decodable.
func DecodeAs[T any, PT interface {
	*T
	jcodec.Decodable
}](text string) (T, error) {
	var out T
	err := Decode(text, PT(&out))
	return out, err
}
