// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of malformed input.
type ErrorCode byte

// Constants defining the valid ErrorCode values.
const (
	InvalidSyntax ErrorCode = iota + 1
	InvalidNumber
	EOFWhileParsingObject
	EOFWhileParsingArray
	EOFWhileParsingValue
	EOFWhileParsingString
	KeyMustBeAString
	ExpectedColon
	TrailingCharacters
	TrailingComma
	InvalidEscape
	InvalidUnicodeCodePoint
	LoneLeadingSurrogateInHexEscape
	UnexpectedEndOfHexEscape
	UnrecognizedHex
	NotFourDigit
	ControlCharacterInString
	NotUTF8
)

var codeStr = [...]string{
	0:                               "unknown error",
	InvalidSyntax:                   "invalid syntax",
	InvalidNumber:                   "invalid number",
	EOFWhileParsingObject:           "EOF while parsing object",
	EOFWhileParsingArray:            "EOF while parsing array",
	EOFWhileParsingValue:            "EOF while parsing value",
	EOFWhileParsingString:           "EOF while parsing string",
	KeyMustBeAString:                "key must be a string",
	ExpectedColon:                   `expected ":"`,
	TrailingCharacters:              "trailing characters",
	TrailingComma:                   "trailing comma",
	InvalidEscape:                   "invalid escape",
	InvalidUnicodeCodePoint:         "invalid Unicode code point",
	LoneLeadingSurrogateInHexEscape: "lone leading surrogate in hex escape",
	UnexpectedEndOfHexEscape:        "unexpected end of hex escape",
	UnrecognizedHex:                 `invalid \u escape (unrecognized hex)`,
	NotFourDigit:                    `invalid \u escape (not four digits)`,
	ControlCharacterInString:        "unescaped control character in string",
	NotUTF8:                         "contents not UTF-8",
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[0]
	}
	return codeStr[c]
}

// SyntaxError is the concrete type of errors reported for malformed input.
type SyntaxError struct {
	Code ErrorCode
	LineCol
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.LineCol, s.Code)
}

// ReadError reports a failure of the underlying reader during parsing.
type ReadError struct {
	Err error
}

func (r *ReadError) Error() string { return "read: " + r.Err.Error() }

// Unwrap supports error wrapping.
func (r *ReadError) Unwrap() error { return r.Err }

// WriteError reports a failure of the underlying writer during encoding.
type WriteError struct {
	Err error
}

func (w *WriteError) Error() string { return "write: " + w.Err.Error() }

// Unwrap supports error wrapping.
func (w *WriteError) Unwrap() error { return w.Err }

// ErrBadMapKey is reported when a map key is not a string or number.
var ErrBadMapKey = errors.New("json: map key must be a string or number")

// ErrUnexpectedEnd is reported by a Decoder asked for more values than its
// input contains.
var ErrUnexpectedEnd = errors.New("json: unexpected end of input value")

// TypeError reports that a decoder found a value of the wrong type.
type TypeError struct {
	Want string // the expected type, e.g., "Number"
	Got  string // the JSON encoding of the value found
}

func (t *TypeError) Error() string {
	return fmt.Sprintf("json: expected %s, got %s", t.Want, t.Got)
}

// MissingFieldError reports that a required object field is not present.
type MissingFieldError struct {
	Field string
}

func (m *MissingFieldError) Error() string {
	return fmt.Sprintf("json: missing field %q", m.Field)
}

// UnknownVariantError reports an enumeration variant name not among the
// names offered by the decoder.
type UnknownVariantError struct {
	Variant string
}

func (u *UnknownVariantError) Error() string {
	return fmt.Sprintf("json: unknown variant %q", u.Variant)
}

// ApplicationError is an error reported by a decoder via Consumer.Error.
type ApplicationError struct {
	Message string
}

func (a *ApplicationError) Error() string { return "json: " + a.Message }
