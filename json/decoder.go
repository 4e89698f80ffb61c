// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"math"
	"slices"
	"strconv"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/mds/stack"
)

// A Decoder is a jcodec.Consumer that reads from a Value tree.
//
// The decoder keeps a stack of pending values, initially holding the root.
// Each scalar read pops the top of the stack, and reading a container pushes
// its contents so that they are read in order.  The caller's tree is never
// modified.
//
// Object keys are strings, but a decoder asked for a number where a string
// is found will parse the string, so that maps with numeric keys round-trip.
type Decoder struct {
	stk *stack.Stack[Value]
}

var _ jcodec.Consumer = (*Decoder)(nil)

// NewDecoder constructs a Decoder that reads from v.
func NewDecoder(v Value) *Decoder {
	d := &Decoder{stk: stack.New[Value]()}
	d.stk.Add(v)
	return d
}

// ReadValue removes and returns the next complete value from d, without
// interpreting it.
func (d *Decoder) ReadValue() (Value, error) { return d.pop() }

func (d *Decoder) pop() (Value, error) {
	v, ok := d.stk.Pop()
	if !ok {
		return nil, ErrUnexpectedEnd
	} else if v == nil {
		return Null{}, nil
	}
	return v, nil
}

func (d *Decoder) push(v Value) { d.stk.Add(v) }

// truncate discards values from d until at most n remain.
func (d *Decoder) truncate(n int) {
	for d.stk.Len() > n {
		d.stk.Pop()
	}
}

func typeError(want string, v Value) error {
	return &TypeError{Want: want, Got: v.String()}
}

// ReadNil satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadNil() error {
	v, err := d.pop()
	if err != nil {
		return err
	} else if _, ok := v.(Null); !ok {
		return typeError("Null", v)
	}
	return nil
}

// ReadBool satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.pop()
	if err != nil {
		return false, err
	} else if b, ok := v.(Bool); ok {
		return bool(b), nil
	}
	return false, typeError("Boolean", v)
}

// ReadInt64 satisfies part of the jcodec.Consumer interface.  It accepts an
// integer that fits in an int64, or a string containing one.
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.pop()
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case Int64:
		return int64(t), nil
	case Uint64:
		if t <= math.MaxInt64 {
			return int64(t), nil
		}
	case Float64:
		return 0, &TypeError{Want: "Integer", Got: strconv.FormatFloat(float64(t), 'f', -1, 64)}
	case String:
		z, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return 0, &TypeError{Want: "Number", Got: string(t)}
		}
		return z, nil
	}
	return 0, typeError("Number", v)
}

// ReadUint64 satisfies part of the jcodec.Consumer interface.  It accepts a
// non-negative integer, or a string containing one.
func (d *Decoder) ReadUint64() (uint64, error) {
	v, err := d.pop()
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case Int64:
		if t >= 0 {
			return uint64(t), nil
		}
	case Uint64:
		return uint64(t), nil
	case Float64:
		return 0, &TypeError{Want: "Integer", Got: strconv.FormatFloat(float64(t), 'f', -1, 64)}
	case String:
		z, err := strconv.ParseUint(string(t), 10, 64)
		if err != nil {
			return 0, &TypeError{Want: "Number", Got: string(t)}
		}
		return z, nil
	}
	return 0, typeError("Number", v)
}

// ReadFloat64 satisfies part of the jcodec.Consumer interface.  It accepts
// any number, or a string containing one.  A null is read as NaN, since the
// encoder writes NaN as null.
func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.pop()
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case Int64:
		return float64(t), nil
	case Uint64:
		return float64(t), nil
	case Float64:
		return float64(t), nil
	case Null:
		return math.NaN(), nil
	case String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, &TypeError{Want: "Number", Got: string(t)}
		}
		return f, nil
	}
	return 0, typeError("Number", v)
}

// ReadString satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadString() (string, error) {
	v, err := d.pop()
	if err != nil {
		return "", err
	} else if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", typeError("String", v)
}

// ReadSeq satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadSeq(body func(jcodec.Consumer, int) error) error {
	v, err := d.pop()
	if err != nil {
		return err
	}
	arr, ok := v.(Array)
	if !ok {
		return typeError("Array", v)
	}
	for _, elt := range slices.Backward(arr) {
		d.push(elt)
	}
	return body(d, len(arr))
}

// ReadSeqElt satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadSeqElt(i int, body func(jcodec.Consumer) error) error { return body(d) }

// ReadMap satisfies part of the jcodec.Consumer interface.  Entries are
// delivered in order of their keys, and each key is read as a string.
func (d *Decoder) ReadMap(body func(jcodec.Consumer, int) error) error {
	v, err := d.pop()
	if err != nil {
		return err
	}
	obj, ok := v.(Object)
	if !ok {
		return typeError("Object", v)
	}
	for _, key := range slices.Backward(obj.Keys()) {
		d.push(obj[key])
		d.push(String(key))
	}
	return body(d, len(obj))
}

// ReadMapKey satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadMapKey(i int, body func(jcodec.Consumer) error) error { return body(d) }

// ReadMapValue satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadMapValue(i int, body func(jcodec.Consumer) error) error { return body(d) }

// ReadStruct satisfies part of the jcodec.Consumer interface.  The next value
// must be an object, whose members are the fields of the struct.
func (d *Decoder) ReadStruct(name string, n int, body func(jcodec.Consumer) error) error {
	if _, err := d.topObject(); err != nil {
		return err
	} else if err := body(d); err != nil {
		return err
	}
	_, err := d.pop()
	return err
}

func (d *Decoder) topObject() (Object, error) {
	v, ok := d.stk.Peek(0)
	if !ok {
		return nil, ErrUnexpectedEnd
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, typeError("Object", v)
	}
	return obj, nil
}

// ReadStructField satisfies part of the jcodec.Consumer interface.
//
// If the struct has no field with the given name, the body is given a null
// to read instead, so that an optional field may be omitted.  If the body
// fails to read the null, the field is reported missing.
func (d *Decoder) ReadStructField(name string, i int, body func(jcodec.Consumer) error) error {
	obj, err := d.topObject()
	if err != nil {
		return err
	}
	if v, ok := obj[name]; ok {
		d.push(v)
		return body(d)
	}
	depth := d.stk.Len()
	d.push(Null{})
	if err := body(d); err != nil {
		d.truncate(depth)
		return &MissingFieldError{Field: name}
	}
	return nil
}

// ReadEnumVariant satisfies part of the jcodec.Consumer interface.  The next
// value must be a string naming the variant, or an object of the form
//
//	{"variant": "Name", "fields": [arg, ...]}
func (d *Decoder) ReadEnumVariant(names []string, body func(jcodec.Consumer, int) error) error {
	v, err := d.pop()
	if err != nil {
		return err
	}
	var name string
	switch t := v.(type) {
	case String:
		name = string(t)
	case Object:
		nv, ok := t["variant"]
		if !ok {
			return &MissingFieldError{Field: "variant"}
		}
		s, ok := nv.(String)
		if !ok {
			return typeError("String", nv)
		}
		fv, ok := t["fields"]
		if !ok {
			return &MissingFieldError{Field: "fields"}
		}
		args, ok := fv.(Array)
		if !ok {
			return typeError("Array", fv)
		}
		for _, arg := range slices.Backward(args) {
			d.push(arg)
		}
		name = string(s)
	default:
		return typeError("String or Object", v)
	}

	idx := slices.Index(names, name)
	if idx < 0 {
		return &UnknownVariantError{Variant: name}
	}
	return body(d, idx)
}

// ReadEnumVariantArg satisfies part of the jcodec.Consumer interface.
func (d *Decoder) ReadEnumVariantArg(i int, body func(jcodec.Consumer) error) error { return body(d) }

// ReadOption satisfies part of the jcodec.Consumer interface.  A null is an
// absent value, and anything else is present.
func (d *Decoder) ReadOption(body func(jcodec.Consumer, bool) error) error {
	v, err := d.pop()
	if err != nil {
		return err
	}
	if _, ok := v.(Null); ok {
		return body(d, false)
	}
	d.push(v)
	return body(d, true)
}

// Error satisfies part of the jcodec.Consumer interface.
func (d *Decoder) Error(msg string) error { return &ApplicationError{Message: msg} }

// Raw is a jcodec.Decodable that captures an arbitrary value without
// interpreting it.  It can only be decoded by a *Decoder.  Raw also
// implements jcodec.Encodable, so a captured value can be re-encoded.
type Raw struct {
	Value Value
}

// Decode satisfies the jcodec.Decodable interface.
func (r *Raw) Decode(c jcodec.Consumer) error {
	d, ok := c.(*Decoder)
	if !ok {
		return c.Error("raw values require a JSON decoder")
	}
	v, err := d.ReadValue()
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

// Encode satisfies the jcodec.Encodable interface.
func (r Raw) Encode(e jcodec.Emitter) error { return encoderOf(r.Value)(e) }
