// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/internal/escape"
	"go4.org/mem"
)

// An Encoder is a jcodec.Emitter that writes JSON text to an io.Writer.
//
// A compact encoder writes no insignificant whitespace. A pretty encoder puts
// each element of a non-empty container on its own line, indented by a fixed
// number of spaces per level of nesting.
//
// Map keys are always written as strings: numeric keys are converted to
// their decimal text, and other kinds of key are rejected with ErrBadMapKey.
//
// An enumeration variant with no arguments is written as a string containing
// its name. Otherwise it is written as an object
//
//	{"variant": "Name", "fields": [arg, ...]}
//
// A write failure is reported as a *WriteError, and once a write has failed
// all further output fails with the same error.
type Encoder struct {
	w      io.Writer
	pretty bool
	indent int    // spaces per level (pretty only)
	cur    int    // current indentation (pretty only)
	inKey  bool   // emitting a map key
	buf    []byte // scratch for quoting
	err    error  // sticky write error
}

var _ jcodec.Emitter = (*Encoder)(nil)

// NewEncoder constructs a compact encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// NewPrettyEncoder constructs a pretty encoder that writes to w, indenting by
// two spaces per level.
func NewPrettyEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, pretty: true, indent: 2}
}

// SetIndent sets the number of spaces per level of indentation.  It may be
// called during encoding, in which case the current level is preserved.  It
// reports an error if e is not a pretty encoder.
func (e *Encoder) SetIndent(n int) error {
	if !e.pretty {
		return errors.New("json: cannot set indentation on a compact encoder")
	} else if n < 0 {
		return errors.New("json: negative indentation")
	}
	level := 0
	if e.indent != 0 {
		level = e.cur / e.indent
	}
	e.indent = n
	e.cur = level * n
	return nil
}

func (e *Encoder) write(s string) error {
	if e.err != nil {
		return e.err
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = &WriteError{Err: err}
	}
	return e.err
}

func (e *Encoder) writeQuoted(s string) error {
	e.buf = escape.AppendQuote(e.buf[:0], mem.S(s))
	if e.err != nil {
		return e.err
	}
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = &WriteError{Err: err}
	}
	return e.err
}

const blanks = "                                "

// newline begins a new line at the current indentation.
func (e *Encoder) newline() error {
	if err := e.write("\n"); err != nil {
		return err
	}
	for n := e.cur; n > 0; {
		m := min(n, len(blanks))
		if err := e.write(blanks[:m]); err != nil {
			return err
		}
		n -= m
	}
	return nil
}

// writeScalar writes the text of a number, quoted if it is a map key.
func (e *Encoder) writeScalar(s string) error {
	if e.inKey {
		return e.write(`"` + s + `"`)
	}
	return e.write(s)
}

// separator writes the comma that precedes element i, if any, and in pretty
// mode starts a new line.
func (e *Encoder) separator(i int) error {
	if e.inKey {
		return ErrBadMapKey
	}
	if i != 0 {
		if err := e.write(","); err != nil {
			return err
		}
	}
	if e.pretty {
		return e.newline()
	}
	return nil
}

// container writes a container delimited by open and close, whose contents
// are written by body.
func (e *Encoder) container(open, close string, n int, body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	} else if n == 0 {
		return e.write(open + close)
	}
	if err := e.write(open); err != nil {
		return err
	}
	e.cur += e.indent
	if err := body(e); err != nil {
		return err
	}
	e.cur -= e.indent
	if e.pretty {
		if err := e.newline(); err != nil {
			return err
		}
	}
	return e.write(close)
}

func (e *Encoder) colon() error {
	if e.pretty {
		return e.write(": ")
	}
	return e.write(":")
}

// EmitNil satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitNil() error {
	if e.inKey {
		return ErrBadMapKey
	}
	return e.write("null")
}

// EmitBool satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitBool(v bool) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return e.write(strconv.FormatBool(v))
}

// EmitInt64 satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitInt64(v int64) error { return e.writeScalar(strconv.FormatInt(v, 10)) }

// EmitUint64 satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitUint64(v uint64) error { return e.writeScalar(strconv.FormatUint(v, 10)) }

// EmitFloat64 satisfies part of the jcodec.Emitter interface.  A value that
// is not finite is written as null.
func (e *Encoder) EmitFloat64(v float64) error { return e.writeScalar(formatFloat(v)) }

// EmitString satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitString(s string) error { return e.writeQuoted(s) }

// EmitSeq satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitSeq(n int, body func(jcodec.Emitter) error) error {
	return e.container("[", "]", n, body)
}

// EmitSeqElt satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitSeqElt(i int, body func(jcodec.Emitter) error) error {
	if err := e.separator(i); err != nil {
		return err
	}
	return body(e)
}

// EmitMap satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitMap(n int, body func(jcodec.Emitter) error) error {
	return e.container("{", "}", n, body)
}

// EmitMapKey satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitMapKey(i int, body func(jcodec.Emitter) error) error {
	if err := e.separator(i); err != nil {
		return err
	}
	e.inKey = true
	defer func() { e.inKey = false }()
	return body(e)
}

// EmitMapValue satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitMapValue(i int, body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	} else if err := e.colon(); err != nil {
		return err
	}
	return body(e)
}

// EmitStruct satisfies part of the jcodec.Emitter interface.  A struct is
// written as an object whose keys are the field names.
func (e *Encoder) EmitStruct(name string, n int, body func(jcodec.Emitter) error) error {
	return e.container("{", "}", n, body)
}

// EmitStructField satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitStructField(name string, i int, body func(jcodec.Emitter) error) error {
	if err := e.separator(i); err != nil {
		return err
	} else if err := e.writeQuoted(name); err != nil {
		return err
	} else if err := e.colon(); err != nil {
		return err
	}
	return body(e)
}

// EmitEnumVariant satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitEnumVariant(name string, id, argc int, body func(jcodec.Emitter) error) error {
	if argc == 0 {
		return e.writeQuoted(name)
	} else if e.inKey {
		return ErrBadMapKey
	}

	if e.pretty {
		if err := e.write("{"); err != nil {
			return err
		}
		e.cur += e.indent
		if err := e.newline(); err != nil {
			return err
		} else if err := e.write(`"variant": `); err != nil {
			return err
		} else if err := e.writeQuoted(name); err != nil {
			return err
		} else if err := e.write(","); err != nil {
			return err
		} else if err := e.newline(); err != nil {
			return err
		} else if err := e.write(`"fields": [`); err != nil {
			return err
		}
		e.cur += e.indent
	} else {
		if err := e.write(`{"variant":`); err != nil {
			return err
		} else if err := e.writeQuoted(name); err != nil {
			return err
		} else if err := e.write(`,"fields":[`); err != nil {
			return err
		}
	}

	if err := body(e); err != nil {
		return err
	}

	if !e.pretty {
		return e.write("]}")
	}
	e.cur -= e.indent
	if err := e.newline(); err != nil {
		return err
	} else if err := e.write("]"); err != nil {
		return err
	}
	e.cur -= e.indent
	if err := e.newline(); err != nil {
		return err
	}
	return e.write("}")
}

// EmitEnumVariantArg satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitEnumVariantArg(i int, body func(jcodec.Emitter) error) error {
	if err := e.separator(i); err != nil {
		return err
	}
	return body(e)
}

// EmitOption satisfies part of the jcodec.Emitter interface.  An absent value
// is written as null, and a present value is written as itself.
func (e *Encoder) EmitOption(body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return body(e)
}

// EmitOptionNone satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitOptionNone() error { return e.EmitNil() }

// EmitOptionSome satisfies part of the jcodec.Emitter interface.
func (e *Encoder) EmitOptionSome(body func(jcodec.Emitter) error) error {
	if e.inKey {
		return ErrBadMapKey
	}
	return body(e)
}

// formatFloat renders v as the shortest decimal that converts back to v,
// without an exponent and with at least one fractional digit.  Values that
// are not finite are rendered as null.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
