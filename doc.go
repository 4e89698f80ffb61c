// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jcodec defines a format-agnostic protocol for encoding and decoding
// structured values without reflection.
//
// # Protocol
//
// A value that can describe its own shape implements [Encodable] by calling
// methods of an [Emitter]. A value that can rebuild itself implements
// [Decodable] by calling methods of a [Consumer]. Each format supplies one
// Emitter and one Consumer, and any Encodable or Decodable value works with
// every format:
//
//	type Point struct{ X, Y int64 }
//
//	func (p Point) Encode(e jcodec.Emitter) error {
//	   return e.EmitStruct("Point", 2, func(e jcodec.Emitter) error {
//	      if err := e.EmitStructField("x", 0, func(e jcodec.Emitter) error {
//	         return e.EmitInt64(p.X)
//	      }); err != nil {
//	         return err
//	      }
//	      return e.EmitStructField("y", 1, func(e jcodec.Emitter) error {
//	         return e.EmitInt64(p.Y)
//	      })
//	   })
//	}
//
// Nested structure is described by passing a body function to the container
// methods. The body receives the capability back and describes the contents
// of the container, in order. Results of a Consumer body are returned through
// variables captured by the closure:
//
//	func (p *Point) Decode(c jcodec.Consumer) error {
//	   return c.ReadStruct("Point", 2, func(c jcodec.Consumer) error {
//	      if err := c.ReadStructField("x", 0, func(c jcodec.Consumer) (err error) {
//	         p.X, err = c.ReadInt64()
//	         return
//	      }); err != nil {
//	         return err
//	      }
//	      return c.ReadStructField("y", 1, func(c jcodec.Consumer) (err error) {
//	         p.Y, err = c.ReadInt64()
//	         return
//	      })
//	   })
//	}
//
// # Formats
//
// The reference format is JSON, in package [github.com/creachadair/jcodec/json],
// which also provides a streaming parser and an in-memory value tree.
// Packages [github.com/creachadair/jcodec/yaml] and
// [github.com/creachadair/jcodec/cbor] carry the same values in YAML and CBOR.
package jcodec
