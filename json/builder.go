// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

// A Builder constructs Value trees from the events of a Parser.
type Builder struct {
	p *Parser
}

// NewBuilder constructs a Builder that consumes events from p.
func NewBuilder(p *Parser) *Builder { return &Builder{p: p} }

// Build consumes the remaining events of the parser and returns the complete
// value they describe. The parser must be positioned at the start of a
// value, and the value must be followed by the end of the input.
//
// If the parser reports an error, Build returns that error.
func (b *Builder) Build() (Value, error) {
	ev, ok := b.p.Next()
	v, err := b.build(ev, ok)
	if err != nil {
		return nil, err
	}
	if ev, ok := b.p.Next(); ok {
		if ev.Kind == ErrorEvent {
			return nil, ev.Err
		}
		return nil, b.syntaxError(InvalidSyntax)
	}
	return v, nil
}

// BuildEvent returns the complete value beginning with ev, which the caller
// has already read from the parser. If ev opens an array or object, the
// events through the matching close are consumed from the parser.
func (b *Builder) BuildEvent(ev Event) (Value, error) { return b.build(ev, true) }

func (b *Builder) build(ev Event, ok bool) (Value, error) {
	if !ok {
		return nil, b.syntaxError(EOFWhileParsingValue)
	}
	switch ev.Kind {
	case ErrorEvent:
		return nil, ev.Err
	case ArrayStart:
		return b.buildArray()
	case ObjectStart:
		return b.buildObject()
	}
	if ev.Kind.IsScalar() && ev.Value != nil {
		return ev.Value, nil
	}
	return nil, b.syntaxError(InvalidSyntax)
}

func (b *Builder) buildArray() (Value, error) {
	arr := Array{}
	for {
		ev, ok := b.p.Next()
		if ok && ev.Kind == ArrayEnd {
			return arr, nil
		}
		v, err := b.build(ev, ok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func (b *Builder) buildObject() (Value, error) {
	obj := make(Object)
	for {
		ev, ok := b.p.Next()
		if !ok {
			return nil, b.syntaxError(EOFWhileParsingObject)
		}
		switch ev.Kind {
		case ObjectEnd:
			return obj, nil
		case ErrorEvent:
			return nil, ev.Err
		}

		// The key must be captured before the value is built, since building
		// the value changes the stack.
		top, ok := b.p.Stack().Top()
		key, isKey := top.Key()
		if !ok || !isKey {
			return nil, b.syntaxError(InvalidSyntax)
		}
		v, err := b.build(ev, true)
		if err != nil {
			return nil, err
		}
		obj[key] = v
	}
}

func (b *Builder) syntaxError(code ErrorCode) error {
	return &SyntaxError{Code: code, LineCol: b.p.Pos()}
}
