// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package yaml renders values described by the jcodec protocol as YAML, and
// reads YAML documents back as JSON values.
//
// Values pass through the JSON data model, so a YAML document is accepted
// only if it has a JSON equivalent: mapping keys must be scalars, and tagged
// scalars other than the core types are read as strings.
package yaml

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jcodec"
	"github.com/creachadair/jcodec/json"
	goyaml "gopkg.in/yaml.v3"
)

// Marshal encodes v as a YAML document.
func Marshal(v jcodec.Encodable) ([]byte, error) {
	jv, err := json.ToValue(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := goyaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToNode(jv)); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the first YAML document in data into d.
func Unmarshal(data []byte, d jcodec.Decodable) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	return json.DecodeValue(v, d)
}

// Parse parses the first YAML document in data as a JSON value.  An empty
// document is null.
func Parse(data []byte) (json.Value, error) {
	var doc goyaml.Node
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return FromNode(&doc)
}

// ToNode converts v into a YAML node tree.  Object keys are written in
// sorted order.
func ToNode(v json.Value) *goyaml.Node {
	switch t := v.(type) {
	case nil, json.Null:
		return scalar("!!null", "null")
	case json.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(t)))
	case json.Int64:
		return scalar("!!int", strconv.FormatInt(int64(t), 10))
	case json.Uint64:
		return scalar("!!int", strconv.FormatUint(uint64(t), 10))
	case json.Float64:
		return scalar("!!float", formatFloat(float64(t)))
	case json.String:
		return scalar("!!str", string(t))
	case json.Array:
		n := &goyaml.Node{Kind: goyaml.SequenceNode, Tag: "!!seq"}
		if len(t) == 0 {
			n.Style = goyaml.FlowStyle
		}
		for _, elt := range t {
			n.Content = append(n.Content, ToNode(elt))
		}
		return n
	case json.Object:
		n := &goyaml.Node{Kind: goyaml.MappingNode, Tag: "!!map"}
		if len(t) == 0 {
			n.Style = goyaml.FlowStyle
		}
		for _, key := range t.Keys() {
			n.Content = append(n.Content, scalar("!!str", key), ToNode(t[key]))
		}
		return n
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}

func scalar(tag, text string) *goyaml.Node {
	return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tag, Value: text}
}

// formatFloat renders v so that it reads back as a float, not an integer.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FromNode converts a YAML node tree into a JSON value.  Aliases are
// replaced by the nodes they refer to.
func FromNode(n *goyaml.Node) (json.Value, error) {
	switch n.Kind {
	case 0:
		return json.Null{}, nil // empty input
	case goyaml.DocumentNode:
		if len(n.Content) == 0 {
			return json.Null{}, nil
		}
		return FromNode(n.Content[0])
	case goyaml.AliasNode:
		return FromNode(n.Alias)
	case goyaml.ScalarNode:
		return fromScalar(n)
	case goyaml.SequenceNode:
		out := make(json.Array, len(n.Content))
		for i, elt := range n.Content {
			v, err := FromNode(elt)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case goyaml.MappingNode:
		out := make(json.Object, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == goyaml.AliasNode {
				key = key.Alias
			}
			if key.Kind != goyaml.ScalarNode {
				return nil, fmt.Errorf("yaml: line %d: %w", key.Line, json.ErrBadMapKey)
			}
			v, err := FromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("yaml: line %d: unexpected node kind %v", n.Line, n.Kind)
}

func fromScalar(n *goyaml.Node) (json.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return json.Null{}, nil
	case "!!bool", "!!int", "!!float":
		var x any
		if err := n.Decode(&x); err != nil {
			return nil, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return json.FromNative(x)
	}
	return json.String(n.Value), nil
}
