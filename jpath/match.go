// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jpath

import (
	"slices"
	"strconv"
	"strings"
)

// A Segment is one element of a concrete path: an object key or an array
// offset.
type Segment interface {
	// Key reports the object key of the segment, if it is a key.
	Key() (string, bool)

	// Index reports the array offset of the segment, if it is an offset.
	Index() (int, bool)
}

// Match reports whether e matches the complete concrete path.
func Match[S Segment](e Expr, path []S) bool { return matchSteps(e, path) }

func matchSteps[S Segment](steps []Step, path []S) bool {
	if len(steps) == 0 {
		return len(path) == 0
	}
	s := steps[0]
	if s.Op == Recur {
		for i := range path {
			if s.matches(path[i]) && matchSteps(steps[1:], path[i+1:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 || !s.matches(path[0]) {
		return false
	}
	return matchSteps(steps[1:], path[1:])
}

func (s Step) matches(seg Segment) bool {
	switch s.Op {
	case Wildcard:
		return true
	case Member, Recur:
		if s.Name == "*" && !s.Quoted {
			return true
		}
		key, ok := seg.Key()
		return ok && key == s.Name
	case Index:
		i, ok := seg.Index()
		return ok && slices.Contains(s.Indexes, i)
	case Slice:
		i, ok := seg.Index()
		return ok && i >= s.Lo && (s.Hi < 0 || i < s.Hi)
	}
	return false
}

// Format renders a concrete path as an expression that matches exactly that
// path, for example $.store.book[2]['first name'].
func Format[S Segment](path []S) string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, seg := range path {
		if key, ok := seg.Key(); ok {
			if wordRE.FindString(key) == key && key != "" {
				buf.WriteString("." + key)
			} else {
				buf.WriteString("[" + quoteName(key) + "]")
			}
		} else if i, ok := seg.Index(); ok {
			buf.WriteString("[" + strconv.Itoa(i) + "]")
		}
	}
	return buf.String()
}
