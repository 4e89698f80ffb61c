// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"math"
	"strconv"
	"unicode/utf8"

	"go4.org/mem"
)

// A Parser reads a single JSON value from an input stream as a sequence of
// events.  Parsing is incremental: each call to Next consumes only as much
// input as it needs to produce the next event, and the Stack reports the
// position of the most recent event within the document.
//
// After an ErrorEvent, the parser produces no further events.
type Parser struct {
	rd    io.RuneReader
	ch    rune  // current input character, or eofRune
	rerr  error // read failure that ended the input, if any
	pos   LineCol
	stack Stack
	state parseState
	buf   []byte // scratch space for strings and numbers
}

// eofRune marks the end of input in the current character.
const eofRune = -1

// errNotUTF8 marks input that ended in an invalid UTF-8 sequence.
var errNotUTF8 = errors.New("invalid UTF-8")

type parseState byte

const (
	stateStart              parseState = iota
	stateArrayFirst                    // after "[", expecting a value or "]"
	stateArray                         // after ",", expecting a value
	stateAfterArrayElement             // expecting "," or "]"
	stateObjectFirst                   // after "{", expecting a key or "}"
	stateObject                        // after ",", expecting a key
	stateAfterObjectElement            // expecting "," or "}"
	stateAwaitingEOF                   // after the root value
	stateDone                          // no further events
)

var (
	kwNull  = mem.S("ull")
	kwTrue  = mem.S("rue")
	kwFalse = mem.S("alse")
)

// NewParser constructs a Parser that reads input from r.  The parser reads
// r directly if it implements io.RuneReader, otherwise it buffers r.
func NewParser(r io.Reader) *Parser {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	p := &Parser{rd: rr, pos: LineCol{Line: 1}}
	p.bump()
	return p
}

// Stack returns the position stack of p. Its contents describe the location
// of the most recent event, and change as parsing proceeds.
func (p *Parser) Stack() *Stack { return &p.stack }

// Pos returns the line and column of the next unconsumed input character.
// At the end of input, the column is one past the last character.
func (p *Parser) Pos() LineCol { return p.pos }

// Events returns an iterator over the remaining events of p.
func (p *Parser) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := p.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Next returns the next event from the input, and reports whether an event
// was available. It reports false once the complete value has been consumed,
// or after an error event has been delivered.
func (p *Parser) Next() (_ Event, ok bool) {
	switch p.state {
	case stateDone:
		return Event{}, false
	case stateAwaitingEOF:
		p.skipSpace()
		if p.ch == eofRune && p.rerr == nil {
			p.state = stateDone
			return Event{}, false
		}
	}
	return p.parseEvent(), true
}

// parseError wraps an error panicked by the parser internals.
type parseError struct{ error }

func (p *Parser) parseEvent() (ev Event) {
	defer func() {
		if x := recover(); x != nil {
			perr, ok := x.(parseError)
			if !ok {
				panic(x)
			}
			p.state = stateDone
			ev = Event{Kind: ErrorEvent, Err: perr.error}
		}
	}()
	return p.parse()
}

func (p *Parser) parse() Event {
	for {
		p.skipSpace()

		switch p.state {
		case stateStart:
			return p.enter(p.parseValue(), stateAwaitingEOF)

		case stateArrayFirst, stateArray:
			return p.parseArray(p.state == stateArrayFirst)

		case stateAfterArrayElement:
			if p.ch == ',' {
				p.stack.bumpIndex()
				p.state = stateArray
				p.bump()
				continue
			} else if p.ch == ']' {
				p.stack.pop()
				return p.closeContainer(ArrayEnd)
			} else if p.ch == eofRune {
				p.fail(EOFWhileParsingArray)
			}
			p.fail(InvalidSyntax)

		case stateObjectFirst, stateObject:
			return p.parseObject(p.state == stateObjectFirst)

		case stateAfterObjectElement:
			p.stack.pop()
			if p.ch == ',' {
				p.state = stateObject
				p.bump()
				continue
			} else if p.ch == '}' {
				return p.closeContainer(ObjectEnd)
			} else if p.ch == eofRune {
				p.fail(EOFWhileParsingObject)
			}
			p.fail(InvalidSyntax)

		case stateAwaitingEOF:
			p.fail(TrailingCharacters)

		default:
			p.fail(InvalidSyntax)
		}
	}
}

// enter updates the parser state after reading the value event ev. If ev
// opens a container, the parser enters it, otherwise it moves to next.
func (p *Parser) enter(ev Event, next parseState) Event {
	switch ev.Kind {
	case ArrayStart:
		p.state = stateArrayFirst
	case ObjectStart:
		p.state = stateObjectFirst
	default:
		p.state = next
	}
	return ev
}

// closeContainer consumes the closing bracket of a container, and returns
// to the state of the enclosing container.
func (p *Parser) closeContainer(kind EventKind) Event {
	switch {
	case p.stack.IsEmpty():
		p.state = stateAwaitingEOF
	case p.stack.lastIsIndex():
		p.state = stateAfterArrayElement
	default:
		p.state = stateAfterObjectElement
	}
	p.bump()
	return Event{Kind: kind}
}

func (p *Parser) parseArray(first bool) Event {
	if p.ch == ']' {
		if !first {
			p.fail(InvalidSyntax)
		}
		return p.closeContainer(ArrayEnd)
	}
	if first {
		p.stack.pushIndex(0)
	}
	return p.enter(p.parseValue(), stateAfterArrayElement)
}

func (p *Parser) parseObject(first bool) Event {
	if p.ch == '}' {
		if !first {
			p.fail(TrailingComma)
		}
		return p.closeContainer(ObjectEnd)
	} else if p.ch == eofRune {
		p.fail(EOFWhileParsingObject)
	} else if p.ch != '"' {
		p.fail(KeyMustBeAString)
	}
	key := p.parseString()
	p.skipSpace()
	if p.ch == eofRune {
		p.fail(EOFWhileParsingObject)
	} else if p.ch != ':' {
		p.fail(ExpectedColon)
	}
	p.stack.pushKey(key)
	p.bump()
	p.skipSpace()

	return p.enter(p.parseValue(), stateAfterObjectElement)
}

func (p *Parser) parseValue() Event {
	switch ch := p.ch; {
	case ch == eofRune:
		p.fail(EOFWhileParsingValue)
	case ch == 'n':
		p.parseKeyword(kwNull)
		return Event{Kind: NullValue, Value: Null{}}
	case ch == 't':
		p.parseKeyword(kwTrue)
		return Event{Kind: BoolValue, Value: Bool(true)}
	case ch == 'f':
		p.parseKeyword(kwFalse)
		return Event{Kind: BoolValue, Value: Bool(false)}
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	case ch == '"':
		return Event{Kind: StringValue, Value: String(p.parseString())}
	case ch == '[':
		p.bump()
		return Event{Kind: ArrayStart}
	case ch == '{':
		p.bump()
		return Event{Kind: ObjectStart}
	}
	p.fail(InvalidSyntax)
	panic("unreachable")
}

// parseKeyword matches the remainder of a keyword after its first letter,
// and consumes the character following it.
func (p *Parser) parseKeyword(rest mem.RO) {
	for i := range rest.Len() {
		p.bump()
		if p.ch != rune(rest.At(i)) {
			p.fail(InvalidSyntax)
		}
	}
	p.bump()
}

func (p *Parser) parseNumber() Event {
	p.buf = p.buf[:0]
	neg := p.ch == '-'
	if neg {
		p.take()
	}
	u := p.parseUint()

	if p.ch == '.' || p.ch == 'e' || p.ch == 'E' {
		if p.ch == '.' {
			p.take()
			p.takeDigits()
		}
		if p.ch == 'e' || p.ch == 'E' {
			p.take()
			if p.ch == '+' || p.ch == '-' {
				p.take()
			}
			p.takeDigits()
		}

		// The literal is well-formed, so the only possible error is a range
		// error, for which ParseFloat returns ±Inf or zero.
		f, _ := strconv.ParseFloat(string(p.buf), 64)
		return Event{Kind: Float64Value, Value: Float64(f)}
	}
	if !neg {
		return Event{Kind: Uint64Value, Value: Uint64(u)}
	}
	if u > math.MaxInt64+1 {
		p.fail(InvalidNumber)
	}
	return Event{Kind: Int64Value, Value: Int64(int64(^u + 1))}
}

// parseUint reads the integer part of a number, which must not have
// extraneous leading zeroes and must fit in 64 bits.
func (p *Parser) parseUint() uint64 {
	if p.ch == '0' {
		p.take()
		if isDigit(p.ch) {
			p.fail(InvalidNumber)
		}
		return 0
	} else if !isDigit(p.ch) {
		p.fail(InvalidNumber)
	}
	var acc uint64
	for isDigit(p.ch) {
		d := uint64(p.ch - '0')
		if acc > (math.MaxUint64-d)/10 {
			p.fail(InvalidNumber)
		}
		acc = acc*10 + d
		p.take()
	}
	return acc
}

// takeDigits consumes one or more decimal digits.
func (p *Parser) takeDigits() {
	if !isDigit(p.ch) {
		p.fail(InvalidNumber)
	}
	for isDigit(p.ch) {
		p.take()
	}
}

// take adds the current ASCII character to the scratch buffer, and advances.
func (p *Parser) take() {
	p.buf = append(p.buf, byte(p.ch))
	p.bump()
}

// parseString reads a string literal starting at the current double quote,
// and returns its decoded contents. The result is only valid until the next
// use of the scratch buffer.
func (p *Parser) parseString() []byte {
	p.buf = p.buf[:0]
	for {
		p.bump()
		switch ch := p.ch; {
		case ch == eofRune:
			p.fail(EOFWhileParsingString)

		case ch == '"':
			p.bump()
			return p.buf

		case ch == '\\':
			p.parseEscape()

		case ch < ' ' || ch == 0x7f:
			p.fail(ControlCharacterInString)

		default:
			p.buf = utf8.AppendRune(p.buf, ch)
		}
	}
}

// parseEscape decodes the escape sequence following a backslash.
func (p *Parser) parseEscape() {
	p.bump()
	switch p.ch {
	case eofRune:
		p.fail(EOFWhileParsingString)
	case '"', '\\', '/':
		p.buf = append(p.buf, byte(p.ch))
	case 'b':
		p.buf = append(p.buf, '\b')
	case 'f':
		p.buf = append(p.buf, '\f')
	case 'n':
		p.buf = append(p.buf, '\n')
	case 'r':
		p.buf = append(p.buf, '\r')
	case 't':
		p.buf = append(p.buf, '\t')
	case 'u':
		n1 := p.parseHex4()
		switch {
		case isTrailSurrogate(n1):
			p.fail(LoneLeadingSurrogateInHexEscape)

		case isLeadSurrogate(n1):
			// Both characters are consumed before checking.
			p.bump()
			c1 := p.ch
			p.bump()
			if c1 != '\\' || p.ch != 'u' {
				p.fail(UnexpectedEndOfHexEscape)
			}
			n2 := p.parseHex4()
			if !isTrailSurrogate(n2) {
				p.fail(LoneLeadingSurrogateInHexEscape)
			}
			r := (n1-0xd800)<<10 | (n2 - 0xdc00) + 0x10000
			p.buf = utf8.AppendRune(p.buf, r)

		default:
			if !utf8.ValidRune(n1) {
				p.fail(InvalidUnicodeCodePoint)
			}
			p.buf = utf8.AppendRune(p.buf, n1)
		}
	default:
		p.fail(InvalidEscape)
	}
}

// parseHex4 reads the four hexadecimal digits of a \u escape.
func (p *Parser) parseHex4() rune {
	var n rune
	for range 4 {
		p.bump()
		d, ok := hexValue(p.ch)
		if !ok {
			p.fail(InvalidEscape)
		}
		n = n*16 + d
	}
	return n
}

func (p *Parser) skipSpace() {
	for isSpace(p.ch) {
		p.bump()
	}
}

// bump advances to the next input character and updates the position.
// A newline is counted as the first column of the following line.
func (p *Parser) bump() {
	if p.ch == eofRune && p.pos.Column > 0 {
		p.pos.Column++
		return
	}
	r, size, err := p.rd.ReadRune()
	switch {
	case err == io.EOF:
		p.ch = eofRune
	case err != nil:
		p.ch, p.rerr = eofRune, err
	case r == utf8.RuneError && size == 1:
		p.ch, p.rerr = eofRune, errNotUTF8
	default:
		p.ch = r
	}
	if p.ch == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
}

// fail aborts parsing with an error of the given code at the current
// position.  If the input ended because of a read failure, that failure is
// reported instead.
func (p *Parser) fail(code ErrorCode) {
	var err error
	switch {
	case p.rerr == errNotUTF8:
		err = &SyntaxError{Code: NotUTF8, LineCol: p.pos}
	case p.rerr != nil:
		err = &ReadError{Err: p.rerr}
	default:
		err = &SyntaxError{Code: code, LineCol: p.pos}
	}
	panic(parseError{err})
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isLeadSurrogate(r rune) bool  { return r >= 0xd800 && r <= 0xdbff }
func isTrailSurrogate(r rune) bool { return r >= 0xdc00 && r <= 0xdfff }

func hexValue(ch rune) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10, true
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
