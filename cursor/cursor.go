// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements navigation within a JSON value tree.
//
// A Cursor records the path from the root of the tree to its current value
// using the same elements as the parser's position stack, so a position found
// by navigation can be rendered and matched like a position found while
// streaming.
package cursor

import (
	"errors"
	"fmt"

	"github.com/creachadair/jcodec/jpath"
	"github.com/creachadair/jcodec/json"
)

// ErrNotFound is reported when a path names a key or index that is not
// present.
var ErrNotFound = errors.New("not found")

// Error is the concrete type of errors reported by Down.
type Error struct {
	Path string // the position of the last value reached
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("at %s: %v", e.Path, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Get returns the value reached from v by path, which must have type T.
// Path elements are as documented for Cursor.Down.
func Get[T json.Value](v json.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, &Error{Path: c.String(), Err: fmt.Errorf("wrong value type %T", c.Value())}
	}
	return out, nil
}

// A Cursor is a position within a json.Value tree.  The zero value is not
// ready for use; construct one with New.
type Cursor struct {
	root json.Value
	stk  []frame
	err  error
}

// A frame is one level of descent: the element followed and the value found.
type frame struct {
	at json.Element
	v  json.Value
}

// New constructs a Cursor positioned at root.
func New(root json.Value) *Cursor { return &Cursor{root: root} }

// Root returns the value at the root of c.
func (c *Cursor) Root() json.Value { return c.root }

// AtRoot reports whether c is positioned at its root.
func (c *Cursor) AtRoot() bool { return len(c.stk) == 0 }

// Value returns the value at the current position.
func (c *Cursor) Value() json.Value {
	if c.AtRoot() {
		return c.root
	}
	return c.stk[len(c.stk)-1].v
}

// Values returns the values along the path from the root to the current
// position, inclusive of both.
func (c *Cursor) Values() []json.Value {
	out := make([]json.Value, len(c.stk)+1)
	out[0] = c.root
	for i, f := range c.stk {
		out[i+1] = f.v
	}
	return out
}

// Elements returns the path from the root to the current position.  Array
// positions are normalized to non-negative offsets, and object positions
// reached by offset are reported by key.
func (c *Cursor) Elements() []json.Element {
	out := make([]json.Element, len(c.stk))
	for i, f := range c.stk {
		out[i] = f.at
	}
	return out
}

// String renders the current position as a path expression, for example
// $.list[1].x.
func (c *Cursor) String() string { return jpath.Format(c.Elements()) }

// Match reports whether the current position matches e.
func (c *Cursor) Match(e jpath.Expr) bool { return jpath.Match(e, c.Elements()) }

// Err reports the error from the most recent call to Down, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position, if it has one.  It
// returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset moves c to its root and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down follows path from the current position, and returns c to permit
// chaining.  If an element of path cannot be followed, c stops at the last
// value reached and records an *Error, which Err reports.
//
// Each element of path is one of:
//
//   - a string, naming a member of an object;
//   - an int, giving an offset in an array, or in the sorted keys of an
//     object, where negative offsets count backward from the end;
//   - a json.Element, as reported by a parser's position stack.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		var err error
		switch t := elt.(type) {
		case string:
			err = c.downKey(t)
		case int:
			err = c.downIndex(t)
		case json.Element:
			if key, ok := t.Key(); ok {
				err = c.downKey(key)
			} else {
				i, _ := t.Index()
				err = c.downIndex(i)
			}
		default:
			err = fmt.Errorf("invalid path element %T", elt)
		}
		if err != nil {
			c.err = &Error{Path: c.String(), Err: err}
			break
		}
	}
	return c
}

func (c *Cursor) push(at json.Element, v json.Value) { c.stk = append(c.stk, frame{at: at, v: v}) }

func (c *Cursor) downKey(key string) error {
	obj, ok := c.Value().(json.Object)
	if !ok {
		return fmt.Errorf("cannot find key %q in %s", key, kindOf(c.Value()))
	}
	v, ok := obj[key]
	if !ok {
		return fmt.Errorf("key %q %w", key, ErrNotFound)
	}
	c.push(json.AtKey(key), v)
	return nil
}

func (c *Cursor) downIndex(i int) error {
	switch t := c.Value().(type) {
	case json.Array:
		j, ok := fixBound(len(t), i)
		if !ok {
			return fmt.Errorf("array index %d out of bounds (n=%d): %w", i, len(t), ErrNotFound)
		}
		c.push(json.AtIndex(j), t[j])
	case json.Object:
		j, ok := fixBound(len(t), i)
		if !ok {
			return fmt.Errorf("object index %d out of bounds (n=%d): %w", i, len(t), ErrNotFound)
		}
		key := t.Keys()[j]
		c.push(json.AtKey(key), t[key])
	default:
		return fmt.Errorf("cannot index %s with %d", kindOf(c.Value()), i)
	}
	return nil
}

func kindOf(v json.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
