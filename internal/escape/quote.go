// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// AppendQuote appends the JSON encoding of src to dst, including the
// enclosing double quotation marks, and returns the extended slice.
//
// Quotation marks, backslashes, control characters, and DEL are escaped.
// All other bytes are copied unchanged.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b >= ' ' && b != '"' && b != '\\' && b != 0x7f {
			continue
		}
		dst = mem.Append(dst, src.Slice(start, i))
		start = i + 1

		switch {
		case b == '"' || b == '\\':
			dst = append(dst, '\\', b)
		case b < ' ' && controlEsc[b] != 0:
			dst = append(dst, '\\', controlEsc[b])
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	dst = mem.Append(dst, src.SliceFrom(start))
	return append(dst, '"')
}

// Quote returns the JSON encoding of src, including the enclosing double
// quotation marks.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()+2), src) }
