// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cbor renders values described by the jcodec protocol as CBOR
// (RFC 8949), and reads CBOR data items back as JSON values.
//
// Output uses core deterministic encoding: map keys are sorted and numbers
// use their shortest form, so the same value always has the same bytes.
package cbor

import (
	"fmt"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/json"
	gocbor "github.com/fxamacker/cbor/v2"
)

var (
	encMode gocbor.EncMode
	decMode gocbor.DecMode
)

func init() {
	var err error
	encMode, err = gocbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	// Maps decode with interface keys so that integer-keyed maps can be
	// converted; json.FromNative renders the keys as strings.
	decMode, err = gocbor.DecOptions{
		IntDec: gocbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v as a single CBOR data item.
func Marshal(v jcodec.Encodable) ([]byte, error) {
	jv, err := json.ToValue(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(json.ToNative(jv))
}

// Unmarshal decodes the CBOR data item in data into d.
func Unmarshal(data []byte, d jcodec.Decodable) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	return json.DecodeValue(v, d)
}

// Parse decodes the CBOR data item in data as a JSON value.  It reports an
// error if data contains anything after the item, or if the item has no JSON
// equivalent, such as a byte string or a tagged value.
func Parse(data []byte) (json.Value, error) {
	var x any
	if err := decMode.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	v, err := json.FromNative(x)
	if err != nil {
		return nil, fmt.Errorf("cbor: %w", err)
	}
	return v, nil
}

// Diagnose returns the diagnostic notation (RFC 8949 §8) for the CBOR data
// item in data.
func Diagnose(data []byte) (string, error) { return gocbor.Diagnose(data) }
