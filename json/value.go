// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/creachadair/jcodec"
)

// A Value is an arbitrary JSON value.  The concrete type of a Value is one of
// Null, Bool, Int64, Uint64, Float64, String, Array, or Object.
//
// Every Value is also a jcodec.Encodable, so a value tree can be rendered by
// any format.
type Value interface {
	jcodec.Encodable

	// Kind reports the type of the value.
	Kind() Kind

	// String returns the compact JSON encoding of the value.
	String() string
}

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	Int64Kind
	Uint64Kind
	Float64Kind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:    "Null",
	BoolKind:    "Boolean",
	Int64Kind:   "Int64",
	Uint64Kind:  "Uint64",
	Float64Kind: "Float64",
	StringKind:  "String",
	ArrayKind:   "Array",
	ObjectKind:  "Object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// Null is the JSON null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// An Int64 is a signed integer value.  The parser produces Int64 only for
// negative integers and for "-0".
type Int64 int64

// A Uint64 is a non-negative integer value.
type Uint64 uint64

// A Float64 is a number with a fraction or exponent.
type Float64 float64

// A String is a string value.
type String string

// An Array is a sequence of values.
type Array []Value

// An Object is a collection of key-value members.  Keys are unique, and
// members are always visited in order of their keys.
type Object map[string]Value

func (Null) Kind() Kind    { return NullKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Int64) Kind() Kind   { return Int64Kind }
func (Uint64) Kind() Kind  { return Uint64Kind }
func (Float64) Kind() Kind { return Float64Kind }
func (String) Kind() Kind  { return StringKind }
func (Array) Kind() Kind   { return ArrayKind }
func (Object) Kind() Kind  { return ObjectKind }

func (Null) Encode(e jcodec.Emitter) error      { return e.EmitNil() }
func (b Bool) Encode(e jcodec.Emitter) error    { return e.EmitBool(bool(b)) }
func (z Int64) Encode(e jcodec.Emitter) error   { return e.EmitInt64(int64(z)) }
func (z Uint64) Encode(e jcodec.Emitter) error  { return e.EmitUint64(uint64(z)) }
func (f Float64) Encode(e jcodec.Emitter) error { return e.EmitFloat64(float64(f)) }
func (s String) Encode(e jcodec.Emitter) error  { return e.EmitString(string(s)) }

// Encode satisfies the jcodec.Encodable interface.  The elements of a are
// encoded as a sequence.
func (a Array) Encode(e jcodec.Emitter) error {
	return e.EmitSeq(len(a), func(e jcodec.Emitter) error {
		for i, elt := range a {
			if err := e.EmitSeqElt(i, encoderOf(elt)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Encode satisfies the jcodec.Encodable interface.  The members of o are
// encoded as a map in key order.
func (o Object) Encode(e jcodec.Emitter) error {
	return e.EmitMap(len(o), func(e jcodec.Emitter) error {
		for i, key := range o.Keys() {
			if err := e.EmitMapKey(i, func(e jcodec.Emitter) error {
				return e.EmitString(key)
			}); err != nil {
				return err
			}
			if err := e.EmitMapValue(i, encoderOf(o[key])); err != nil {
				return err
			}
		}
		return nil
	})
}

// encoderOf returns the Encode method of v, treating nil as null.
func encoderOf(v Value) func(jcodec.Emitter) error {
	if v == nil {
		return Null{}.Encode
	}
	return v.Encode
}

func (v Null) String() string    { return render(v) }
func (v Bool) String() string    { return render(v) }
func (v Int64) String() string   { return render(v) }
func (v Uint64) String() string  { return render(v) }
func (v Float64) String() string { return render(v) }
func (v String) String() string  { return render(v) }
func (v Array) String() string   { return render(v) }
func (v Object) String() string  { return render(v) }

// render returns the compact encoding of v. A value tree cannot produce an
// encoding error, since its keys are strings and its writer is in memory.
func render(v Value) string {
	var sb strings.Builder
	if err := v.Encode(NewEncoder(&sb)); err != nil {
		panic(err)
	}
	return sb.String()
}

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// Find returns the value of the member of o with the given key, or nil if o
// has no such member.
func (o Object) Find(key string) Value { return o[key] }

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// Field returns the value of the given key in v, which must be an Object.
// It reports false if v is not an object or has no such key.
func Field(v Value, key string) (Value, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	mv, ok := obj[key]
	return mv, ok
}

// Index returns the element at offset i in v, which must be an Array.
// It reports false if v is not an array or i is out of range.
func Index(v Value, i int) (Value, bool) {
	arr, ok := v.(Array)
	if !ok || i < 0 || i >= len(arr) {
		return nil, false
	}
	return arr[i], true
}

// Path traverses a sequence of nested object keys starting from v, and
// returns the value reached by the last key. With no keys, Path returns v.
// It reports false if any key is not found.
func Path(v Value, keys ...string) (Value, bool) {
	cur := v
	for _, key := range keys {
		next, ok := Field(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Search performs a depth-first search of the objects in v for a member with
// the given key, and returns the value of the first one found.  Members of
// each object are searched in key order, after checking the object itself.
// Search does not descend into arrays.
func Search(v Value, key string) (Value, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	if mv, ok := obj[key]; ok {
		return mv, true
	}
	for _, k := range obj.Keys() {
		if mv, ok := Search(obj[k], key); ok {
			return mv, true
		}
	}
	return nil, false
}

// IsNull reports whether v is null. A nil Value is treated as null.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok || v == nil
}

// IsNumber reports whether v is an Int64, Uint64, or Float64.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Int64, Uint64, Float64:
		return true
	}
	return false
}

// AsBool reports the value of v if it is a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsInt64 reports the value of v as an int64, if v is an integer that fits.
func AsInt64(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int64:
		return int64(t), true
	case Uint64:
		if t <= math.MaxInt64 {
			return int64(t), true
		}
	}
	return 0, false
}

// AsUint64 reports the value of v as a uint64, if v is a non-negative
// integer.
func AsUint64(v Value) (uint64, bool) {
	switch t := v.(type) {
	case Int64:
		if t >= 0 {
			return uint64(t), true
		}
	case Uint64:
		return uint64(t), true
	}
	return 0, false
}

// AsFloat64 reports the value of v as a float64, if v is any number.
func AsFloat64(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int64:
		return float64(t), true
	case Uint64:
		return float64(t), true
	case Float64:
		return float64(t), true
	}
	return 0, false
}

// AsString reports the value of v if it is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsArray reports the elements of v if it is an Array.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsObject reports the members of v if it is an Object.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}
