// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"strconv"

	"github.com/creachadair/jcodec/jpath"
	"go4.org/mem"
)

// An Element is one step of the path from the root of a document to the
// parser's current position: either an offset in an array or a key in an
// object.
//
// An Element obtained from a live Stack borrows the stack's storage for its
// key, and is valid only until the stack next changes. Use the Key method to
// obtain a copy that outlives the stack.
type Element struct {
	key   mem.RO
	index uint32
	isKey bool
}

// AtIndex returns an Element denoting offset n in an array.
func AtIndex(n int) Element { return Element{index: uint32(n)} }

// AtKey returns an Element denoting member key s of an object.
func AtKey(s string) Element { return Element{key: mem.S(s), isKey: true} }

// IsKey reports whether e is an object key.
func (e Element) IsKey() bool { return e.isKey }

// Key returns a copy of the key of e, and reports whether e is a key.
func (e Element) Key() (string, bool) {
	if !e.isKey {
		return "", false
	}
	return e.key.StringCopy(), true
}

// KeyMem returns a borrowed view of the key of e. The view is empty if e is
// not a key.
func (e Element) KeyMem() mem.RO { return e.key }

// Index returns the array offset of e, and reports whether e is an offset.
func (e Element) Index() (int, bool) {
	if e.isKey {
		return 0, false
	}
	return int(e.index), true
}

// Equal reports whether e and o denote the same path step.
func (e Element) Equal(o Element) bool {
	if e.isKey != o.isKey {
		return false
	} else if e.isKey {
		return e.key.Equal(o.key)
	}
	return e.index == o.index
}

func (e Element) String() string {
	if e.isKey {
		return "Key(" + strconv.Quote(e.key.StringCopy()) + ")"
	}
	return "Index(" + strconv.Itoa(int(e.index)) + ")"
}

// A Stack records the path from the root of a document to the current
// position of a parser. The keys of all the object elements on the stack are
// stored in a single buffer, which shrinks as keys are popped.
type Stack struct {
	elts []stackElt
	keys []byte
}

// stackElt is the stored form of an element. For a key, start and end give
// the location of the key in the buffer.
type stackElt struct {
	start, end int
	index      uint32
	isKey      bool
}

// Len reports the number of elements on s.
func (s *Stack) Len() int { return len(s.elts) }

// IsEmpty reports whether s has no elements, which is the case at the root of
// a document.
func (s *Stack) IsEmpty() bool { return len(s.elts) == 0 }

// Get returns the element at offset i of s, counting from the root. It panics
// if i is out of range.
func (s *Stack) Get(i int) Element {
	e := s.elts[i]
	if e.isKey {
		return Element{key: mem.B(s.keys[e.start:e.end]), isKey: true}
	}
	return Element{index: e.index}
}

// Top returns the innermost element of s, and reports whether s is
// non-empty.
func (s *Stack) Top() (Element, bool) {
	if len(s.elts) == 0 {
		return Element{}, false
	}
	return s.Get(len(s.elts) - 1), true
}

// Elements returns the elements of s from the root outward.
// The keys of the elements borrow the storage of s.
func (s *Stack) Elements() []Element {
	out := make([]Element, len(s.elts))
	for i := range s.elts {
		out[i] = s.Get(i)
	}
	return out
}

// IsEqualTo reports whether the elements of s are exactly path.
func (s *Stack) IsEqualTo(path []Element) bool {
	return len(path) == len(s.elts) && s.StartsWith(path)
}

// StartsWith reports whether path is a prefix of s.
func (s *Stack) StartsWith(path []Element) bool {
	if len(path) > len(s.elts) {
		return false
	}
	for i, e := range path {
		if !s.Get(i).Equal(e) {
			return false
		}
	}
	return true
}

// EndsWith reports whether path is a suffix of s.
func (s *Stack) EndsWith(path []Element) bool {
	off := len(s.elts) - len(path)
	if off < 0 {
		return false
	}
	for i, e := range path {
		if !s.Get(off + i).Equal(e) {
			return false
		}
	}
	return true
}

// Match reports whether the current position of s matches e.
func (s *Stack) Match(e jpath.Expr) bool { return jpath.Match(e, s.Elements()) }

// String renders s as a path expression, for example $.a[1].
func (s *Stack) String() string { return jpath.Format(s.Elements()) }

func (s *Stack) pushIndex(n uint32) {
	s.elts = append(s.elts, stackElt{index: n})
}

func (s *Stack) pushKey(key []byte) {
	start := len(s.keys)
	s.keys = append(s.keys, key...)
	s.elts = append(s.elts, stackElt{start: start, end: len(s.keys), isKey: true})
}

func (s *Stack) pop() {
	n := len(s.elts)
	if n == 0 {
		panic("pop from empty stack")
	}
	if top := s.elts[n-1]; top.isKey {
		s.keys = s.keys[:top.start]
	}
	s.elts = s.elts[:n-1]
}

// lastIsIndex reports whether the innermost element of s is an offset.
func (s *Stack) lastIsIndex() bool {
	n := len(s.elts)
	return n > 0 && !s.elts[n-1].isKey
}

// bumpIndex increments the offset of the innermost element of s, which must
// be an offset.
func (s *Stack) bumpIndex() {
	n := len(s.elts)
	if n == 0 || s.elts[n-1].isKey {
		panic("bump of non-index stack element")
	}
	s.elts[n-1].index++
}
