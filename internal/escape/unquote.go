// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Errors reported by Unquote.
var (
	ErrIncomplete = errors.New("incomplete escape sequence")
	ErrSurrogate  = errors.New("unpaired surrogate in escape sequence")
	ErrControl    = errors.New("unescaped control character")
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a pair
// of \u escapes encoding a UTF-16 surrogate pair is decoded as a single rune.
// Unquote reports an error for an invalid or incomplete escape sequence, an
// unpaired surrogate, or an unescaped control character.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := indexSpecial(src)
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
		dec = mem.Append(dec, src.SliceTo(i))
		if src.At(i) != '\\' {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrControl)
		}

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := parseEscapedRune(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			return nil, fmt.Errorf("invalid escape %q", "\\"+string(b))
		}
	}
	return dec, nil
}

// parseEscapedRune decodes the hex digits of a \u escape at the front of src,
// including the trailing half of a surrogate pair.
func parseEscapedRune(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, ErrIncomplete
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, src, err
	}
	src = src.SliceFrom(4)
	r := rune(v)
	switch {
	case r >= 0xdc00 && r <= 0xdfff:
		return 0, src, ErrSurrogate
	case r >= 0xd800 && r <= 0xdbff:
		if src.Len() < 2 || src.At(0) != '\\' || src.At(1) != 'u' {
			return 0, src, ErrSurrogate
		} else if src.Len() < 6 {
			return 0, src, ErrIncomplete
		}
		v2, err := parseHex(src.Slice(2, 6))
		if err != nil {
			return 0, src, err
		} else if v2 < 0xdc00 || v2 > 0xdfff {
			return 0, src, ErrSurrogate
		}
		return (r-0xd800)<<10 | rune(v2-0xdc00) + 0x10000, src.SliceFrom(6), nil
	}
	return r, src, nil
}

// indexSpecial returns the offset of the first backslash or control
// character in src, or -1.
func indexSpecial(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); b == '\\' || b < ' ' || b == 0x7f {
			return i
		}
	}
	return -1
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
