// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import "github.com/creachadair/jcodec/jpath"

// Select reads the remaining events of p, and calls f with each value whose
// position in the document matches e, along with the path of that position.
// Only matching values are built in memory; the rest of the input is
// scanned and discarded.
//
// A value nested inside a matching value is not reported separately.  If f
// reports an error, Select stops and returns that error.
func Select(p *Parser, e jpath.Expr, f func(path string, v Value) error) error {
	b := NewBuilder(p)
	for {
		ev, ok := p.Next()
		if !ok {
			return nil
		}
		switch ev.Kind {
		case ErrorEvent:
			return ev.Err
		case ArrayEnd, ObjectEnd:
			continue
		}

		// The stack gives the position of the value that ev begins.
		if !p.stack.Match(e) {
			continue
		}
		path := p.stack.String()
		v, err := b.BuildEvent(ev)
		if err != nil {
			return err
		}
		if err := f(path, v); err != nil {
			return err
		}
	}
}
