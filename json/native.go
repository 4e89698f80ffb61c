// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"fmt"
	"strconv"
)

// ToNative converts v into plain Go data: nil, bool, int64, uint64, float64,
// string, []any, or map[string]any.
func ToNative(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Int64:
		return int64(t)
	case Uint64:
		return uint64(t)
	case Float64:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToNative(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for key, mv := range t {
			out[key] = ToNative(mv)
		}
		return out
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}

// FromNative converts plain Go data into a Value. It accepts the types
// produced by ToNative, as well as other sizes of integer and float, slices
// of any, and maps with string or numeric keys.  Integers are converted as
// the parser would read them: Uint64 if non-negative, otherwise Int64.
func FromNative(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return fromInt(int64(t)), nil
	case int8:
		return fromInt(int64(t)), nil
	case int16:
		return fromInt(int64(t)), nil
	case int32:
		return fromInt(int64(t)), nil
	case int64:
		return fromInt(t), nil
	case uint:
		return Uint64(t), nil
	case uint8:
		return Uint64(t), nil
	case uint16:
		return Uint64(t), nil
	case uint32:
		return Uint64(t), nil
	case uint64:
		return Uint64(t), nil
	case float32:
		return Float64(t), nil
	case float64:
		return Float64(t), nil
	case string:
		return String(t), nil
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			v, err := FromNative(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			v, err := FromNative(elt)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = v
		}
		return out, nil
	case map[any]any:
		out := make(Object, len(t))
		for key, elt := range t {
			ks, err := nativeKey(key)
			if err != nil {
				return nil, err
			}
			v, err := FromNative(elt)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", ks, err)
			}
			out[ks] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("json: unsupported native type %T", x)
}

func fromInt(z int64) Value {
	if z < 0 {
		return Int64(z)
	}
	return Uint64(z)
}

// nativeKey converts a map key to a string in the manner of the Encoder.
func nativeKey(key any) (string, error) {
	switch t := key.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return formatFloat(t), nil
	}
	return "", fmt.Errorf("%w: %T", ErrBadMapKey, key)
}
