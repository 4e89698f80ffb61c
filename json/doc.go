// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package json implements the JSON format for the jcodec protocol.
//
// # Values
//
// A [Value] is an in-memory JSON document, built from the concrete types
// [Null], [Bool], [Int64], [Uint64], [Float64], [String], [Array], and
// [Object]. Use [Parse] or [ParseString] to read a value from text, and
// [Encode] or [EncodePretty] to render one.
//
// Integers are kept exact: a non-negative integer is a Uint64, a negative
// integer is an Int64, and only numbers with a fraction or exponent are
// Float64.  Object members are always visited in order of their keys.
//
// # Streaming
//
// A [Parser] reads a document incrementally as a sequence of [Event] values.
// After each event, the parser's [Stack] describes where in the document the
// event occurred, as a path of object keys and array offsets:
//
//	p := json.NewParser(strings.NewReader(`{"a": [1, 2]}`))
//	for ev := range p.Events() {
//	   fmt.Println(ev, p.Stack())
//	}
//
// prints
//
//	ObjectStart $
//	ArrayStart $.a
//	Uint64Value(1) $.a[0]
//	Uint64Value(2) $.a[1]
//	ArrayEnd $.a
//	ObjectEnd $
//
// A [Builder] assembles the events of a parser into a Value, and [Select]
// builds only the parts of a document whose path matches an expression.
//
// # Encoding and Decoding
//
// An [Encoder] is a [jcodec.Emitter] that writes JSON text, and a [Decoder]
// is a [jcodec.Consumer] that reads from a Value.  Every Value is itself a
// [jcodec.Encodable].
//
// Malformed input is reported as a [*SyntaxError] giving the line and column
// of the problem. Both are 1-based, and a newline is counted as the first
// column of the line it begins.
package json
