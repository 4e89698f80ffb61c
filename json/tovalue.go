// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"errors"
	"math"
	"strconv"

	"github.com/creachadair/jcodec"
)

// ToValue returns the Value that v would be encoded as.  The conventions of
// the Encoder apply: a number that is not finite becomes null, map keys
// become strings, and enumeration variants become strings or objects.
func ToValue(v jcodec.Encodable) (Value, error) {
	e := new(valueEmitter)
	if err := v.Encode(e); err != nil {
		return nil, err
	}
	return e.value(), nil
}

// A valueEmitter is a jcodec.Emitter that records a value in memory.  Each
// container allocates a new emitter for its contents, and each element of a
// container is emitted into its own emitter.
type valueEmitter struct {
	v     Value  // the most recently emitted value
	inKey bool   // emitting a map key
	arr   Array  // elements of a sequence or variant
	obj   Object // members of a map or struct
	key   string // key of the pending map entry
}

var _ jcodec.Emitter = (*valueEmitter)(nil)

func (e *valueEmitter) value() Value {
	if e.v == nil {
		return Null{}
	}
	return e.v
}

func (e *valueEmitter) set(v Value) error { e.v = v; return nil }

func (e *valueEmitter) setMember(key string, v Value) error {
	if e.obj == nil {
		return errors.New("json: member emitted outside of a map or struct")
	}
	e.obj[key] = v
	return nil
}

// setNumber records a number, or its text if it is a map key.
func (e *valueEmitter) setNumber(v Value, text string) error {
	if e.inKey {
		return e.set(String(text))
	}
	return e.set(v)
}

// emitElement runs body on a fresh emitter and returns its value.
func emitElement(body func(jcodec.Emitter) error) (Value, error) {
	sub := new(valueEmitter)
	if err := body(sub); err != nil {
		return nil, err
	}
	return sub.value(), nil
}

func (e *valueEmitter) EmitNil() error {
	if e.inKey {
		return ErrBadMapKey
	}
	return e.set(Null{})
}

func (e *valueEmitter) EmitBool(v bool) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return e.set(Bool(v))
}

func (e *valueEmitter) EmitInt64(v int64) error {
	return e.setNumber(Int64(v), strconv.FormatInt(v, 10))
}

func (e *valueEmitter) EmitUint64(v uint64) error {
	return e.setNumber(Uint64(v), strconv.FormatUint(v, 10))
}

func (e *valueEmitter) EmitFloat64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return e.setNumber(Null{}, "null")
	}
	return e.setNumber(Float64(v), formatFloat(v))
}

func (e *valueEmitter) EmitString(s string) error { return e.set(String(s)) }

func (e *valueEmitter) EmitSeq(n int, body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	sub := &valueEmitter{arr: make(Array, 0, n)}
	if n != 0 {
		if err := body(sub); err != nil {
			return err
		}
	}
	return e.set(sub.arr)
}

func (e *valueEmitter) EmitSeqElt(i int, body func(jcodec.Emitter) error) error {
	v, err := emitElement(body)
	if err != nil {
		return err
	}
	e.arr = append(e.arr, v)
	return nil
}

func (e *valueEmitter) EmitMap(n int, body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	sub := &valueEmitter{obj: make(Object, n)}
	if n != 0 {
		if err := body(sub); err != nil {
			return err
		}
	}
	return e.set(sub.obj)
}

func (e *valueEmitter) EmitMapKey(i int, body func(jcodec.Emitter) error) error {
	sub := &valueEmitter{inKey: true}
	if err := body(sub); err != nil {
		return err
	}
	key, ok := sub.v.(String)
	if !ok {
		return ErrBadMapKey
	}
	e.key = string(key)
	return nil
}

func (e *valueEmitter) EmitMapValue(i int, body func(jcodec.Emitter) error) error {
	v, err := emitElement(body)
	if err != nil {
		return err
	}
	return e.setMember(e.key, v)
}

func (e *valueEmitter) EmitStruct(name string, n int, body func(jcodec.Emitter) error) error {
	return e.EmitMap(n, body)
}

func (e *valueEmitter) EmitStructField(name string, i int, body func(jcodec.Emitter) error) error {
	v, err := emitElement(body)
	if err != nil {
		return err
	}
	return e.setMember(name, v)
}

func (e *valueEmitter) EmitEnumVariant(name string, id, argc int, body func(jcodec.Emitter) error) error {
	if argc == 0 {
		return e.set(String(name))
	} else if e.inKey {
		return ErrBadMapKey
	}
	sub := &valueEmitter{arr: make(Array, 0, argc)}
	if err := body(sub); err != nil {
		return err
	}
	return e.set(Object{"variant": String(name), "fields": sub.arr})
}

func (e *valueEmitter) EmitEnumVariantArg(i int, body func(jcodec.Emitter) error) error {
	return e.EmitSeqElt(i, body)
}

func (e *valueEmitter) EmitOption(body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return body(e)
}

func (e *valueEmitter) EmitOptionNone() error { return e.EmitNil() }

func (e *valueEmitter) EmitOptionSome(body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return body(e)
}
