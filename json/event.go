// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import "fmt"

// EventKind is the type of a parser event.
type EventKind byte

// Constants defining the valid EventKind values.
const (
	ArrayStart   EventKind = iota + 1 // start of array "["
	ArrayEnd                          // end of array "]"
	ObjectStart                       // start of object "{"
	ObjectEnd                         // end of object "}"
	NullValue                         // constant null
	BoolValue                         // constant true or false
	Int64Value                        // negative integer
	Uint64Value                       // non-negative integer
	Float64Value                      // number with fraction or exponent
	StringValue                       // string
	ErrorEvent                        // parse failure (terminal)
)

var eventStr = [...]string{
	0:            "invalid event",
	ArrayStart:   "ArrayStart",
	ArrayEnd:     "ArrayEnd",
	ObjectStart:  "ObjectStart",
	ObjectEnd:    "ObjectEnd",
	NullValue:    "NullValue",
	BoolValue:    "BoolValue",
	Int64Value:   "Int64Value",
	Uint64Value:  "Uint64Value",
	Float64Value: "Float64Value",
	StringValue:  "StringValue",
	ErrorEvent:   "Error",
}

func (k EventKind) String() string {
	if int(k) >= len(eventStr) {
		return eventStr[0]
	}
	return eventStr[k]
}

// IsScalar reports whether k is the kind of an event that carries a complete
// value.
func (k EventKind) IsScalar() bool { return k >= NullValue && k <= StringValue }

// An Event is a single step of a streaming parse.  Scalar events carry their
// value in Value; an ErrorEvent carries a *SyntaxError or *ReadError in Err.
type Event struct {
	Kind  EventKind
	Value Value
	Err   error
}

func (e Event) String() string {
	switch {
	case e.Kind == ErrorEvent:
		return fmt.Sprintf("Error(%v)", e.Err)
	case e.Kind.IsScalar():
		return fmt.Sprintf("%s(%s)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
