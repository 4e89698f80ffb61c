// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import "fmt"

// A LineCol describes the line number and column of a location in source
// text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
