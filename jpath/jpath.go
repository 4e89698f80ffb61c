// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jpath implements a minimal JSONPath expression parser and a matcher
// for the positions of a streaming parser.
//
// Only the steps that can be decided from a position alone are supported:
// there are no filters, scripts, or negative offsets.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX ...]
 value = [INDEX] ":" [INDEX]

  WORD = RE `\w+`
 QTEXT = RE `([^'\\]|\\.)*`
 INDEX = RE `\d+`

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	st, _, err := parseExpr(s)
	if err != nil {
		return Expr{}, err
	}
	return st, nil
}

// MustParse is as Parse, but panics if s is not a valid expression.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: parse %q: %v", s, err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member, Recur, Wildcard:
			prefix := "."
			if s.Op == Recur {
				prefix = ".."
			}
			switch {
			case s.Bracket:
				fmt.Fprintf(&buf, "[%s]", nameText(s))
			default:
				buf.WriteString(prefix + nameText(s))
			}

		case Index:
			idx := make([]string, len(s.Indexes))
			for i, v := range s.Indexes {
				idx[i] = strconv.Itoa(v)
			}
			fmt.Fprintf(&buf, "[%s]", strings.Join(idx, ","))

		case Slice:
			buf.WriteString("[")
			if s.Lo > 0 {
				buf.WriteString(strconv.Itoa(s.Lo))
			}
			buf.WriteString(":")
			if s.Hi >= 0 {
				buf.WriteString(strconv.Itoa(s.Hi))
			}
			buf.WriteString("]")
		}
	}
	return buf.String()
}

func nameText(s Step) string {
	if s.Op == Wildcard {
		return "*"
	} else if s.Quoted {
		return quoteName(s.Name)
	}
	return s.Name
}

func parseExpr(s string) ([]Step, string, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, s, errors.New("missing root marker")
	}
	return parseSteps(t)
}

func parseSteps(s string) (steps []Step, rest string, _ error) {
	for s != "" {
		step, rest, err := parseStep(s)
		if err != nil {
			return nil, s, err
		}
		steps = append(steps, step)
		s = rest
	}
	return steps, s, nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		kind, name, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name, Quoted: kind == QName}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		kind, name, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return nameStep(kind, name, false), u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		out, u, err := parseValue(t)
		if err != nil {
			return Step{}, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func nameStep(kind Op, name string, bracket bool) Step {
	if kind == Wildcard {
		return Step{Op: Wildcard, Name: "*", Bracket: bracket}
	}
	return Step{Op: Member, Name: name, Quoted: kind == QName, Bracket: bracket}
}

func parseName(s string) (kind Op, name, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return Wildcard, "*", t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return Name, m[1], s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return QName, unquoteName(m[1]), s[len(m[0]):], nil
	}
	return Invalid, "", s, errors.New("invalid name")
}

func parseValue(s string) (_ Step, rest string, _ error) {
	if m := indexRE.FindStringSubmatch(s); m != nil {
		rest := s[len(m[0]):]
		if u, ok := strings.CutPrefix(rest, ":"); ok && !strings.Contains(m[1], ",") {
			lo, _ := strconv.Atoi(m[1])
			return parseSliceEnd(lo, u)
		}
		var idx []int
		for _, f := range strings.Split(m[1], ",") {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Step{}, s, fmt.Errorf("invalid index %q", f)
			}
			idx = append(idx, v)
		}
		return Step{Op: Index, Indexes: idx}, rest, nil
	}
	if u, ok := strings.CutPrefix(s, ":"); ok {
		return parseSliceEnd(0, u)
	}
	if strings.HasPrefix(s, "-") {
		return Step{}, s, errors.New("negative offsets are not supported")
	}
	if kind, text, rest, err := parseName(s); err == nil {
		return nameStep(kind, text, true), rest, nil
	}
	return Step{}, s, fmt.Errorf("invalid value: %q", s)
}

func parseSliceEnd(lo int, s string) (Step, string, error) {
	out := Step{Op: Slice, Lo: lo, Hi: -1}
	if m := hiRE.FindStringSubmatch(s); m != nil {
		hi, err := strconv.Atoi(m[1])
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid slice bound %q", m[1])
		}
		out.Hi = hi
		s = s[len(m[0]):]
	}
	return out, s, nil
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(\d+(?:,\d+)*)`)
	hiRE    = regexp.MustCompile(`^(\d+)`)
	quoteRE = regexp.MustCompile(`^'((?:[^'\\]|\\.)*)'`)
)

var nameEsc = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteName(s string) string { return "'" + nameEsc.Replace(s) + "'" }

func unquoteName(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // member lookup (.name or ['name'])
	Index              // array offset lookup ([n] or [n,m,...])
	Slice              // array offset range ([lo:hi])
	Wildcard           // any single element (.* or [*])
	Name               // unquoted name
	QName              // quoted name
	Recur              // recursive descent (..name)
)

var opText = map[Op]string{
	Invalid:  "invalid",
	Member:   ".",
	Index:    "index",
	Slice:    "slice",
	Wildcard: "*",
	Name:     "name",
	QName:    "qname",
	Recur:    "..",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op      Op
	Name    string // for Member and Recur; "*" matches any element
	Quoted  bool   // the name was written in quotes
	Bracket bool   // the name was written in brackets
	Indexes []int  // for Index
	Lo, Hi  int    // for Slice, half-open; Hi < 0 means unbounded
}
