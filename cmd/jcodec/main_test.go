// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testInput = `{"name": "jcodec", "tags": ["json", "yaml"], "n": {"x": -1, "0": true}}`

// runCommand runs the program with args and input, and returns its output.
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(input), &stdout, &stderr)
	if stderr.Len() != 0 {
		t.Logf("Stderr from %q:\n%s", args, stderr.String())
	}
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"FmtCompact", testInput, []string{"fmt", "--compact"},
			`{"n":{"0":true,"x":-1},"name":"jcodec","tags":["json","yaml"]}` + "\n"},
		{"FmtIndent", `[1, {"a": null}]`, []string{"fmt", "--indent", "1"},
			"[\n 1,\n {\n  \"a\": null\n }\n]\n"},
		{"FmtDefault", `{"a":[]}`, []string{"fmt"}, "{\n  \"a\": []\n}\n"},
		{"Events", `{"a": [1, "x"]}`, []string{"events"}, `ObjectStart $
ArrayStart $.a
Uint64Value(1) $.a[0]
StringValue("x") $.a[1]
ArrayEnd $.a
ObjectEnd $
`},
		{"Select", testInput, []string{"select", "$..x"}, "$.n.x -1\n"},
		{"SelectAll", testInput, []string{"select", "$.tags[*]"},
			"$.tags[0] \"json\"\n$.tags[1] \"yaml\"\n"},
		{"SelectNone", testInput, []string{"select", "$.nonesuch"}, ""},
		{"GetKey", testInput, []string{"get", "-c", "n"}, `{"0":true,"x":-1}` + "\n"},
		{"GetIndex", testInput, []string{"get", "--", "tags", "-1"}, "\"yaml\"\n"},
		{"GetQuoted", testInput, []string{"get", "n", "'0"}, "true\n"},
		{"GetRoot", `[3]`, []string{"get", "--compact"}, "[3]\n"},
		{"ToYAML", testInput, []string{"convert", "--to", "yaml"}, `n:
  "0": true
  x: -1
name: jcodec
tags:
  - json
  - yaml
`},
		{"FromYAML", "a: [1, 2.5]\nb: ~\n", []string{"convert", "--from", "yaml", "-c"},
			`{"a":[1,2.5],"b":null}` + "\n"},
		{"ToCBORDiag", `{"a": [1, -2]}`, []string{"convert", "--to", "cbor", "--diag"},
			"{\"a\": [1, -2]}\n"},
		{"ToCBOR", `[true]`, []string{"convert", "--to=cbor"}, "\x81\xf5"},
		{"FromCBOR", "\xa1\x61k\xf6", []string{"convert", "--from=cbor", "--compact"},
			`{"k":null}` + "\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCommand(t, tc.input, tc.args...)
			if err != nil {
				t.Fatalf("Run %q: unexpected error: %v", tc.args, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output of %q (-want, +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(testInput), 0600); err != nil {
		t.Fatalf("Write input: %v", err)
	}
	got, err := runCommand(t, "ignored", "get", "--input", path, "--verbose", "name")
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if got != "\"jcodec\"\n" {
		t.Errorf("Output: got %q, want %q", got, "\"jcodec\"\n")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string // substring of the error
	}{
		{"NoCommand", "", nil, "command required"},
		{"UnknownCommand", "", []string{"frob"}, `unknown command "frob"`},
		{"UnknownFlag", "{}", []string{"fmt", "--frob"}, "unknown flag"},
		{"CompactIndent", "{}", []string{"fmt", "-c", "--indent", "3"}, "cannot be combined"},
		{"BadIndent", "{}", []string{"fmt", "--indent", "-1"}, "fmt:"},
		{"FmtSyntax", `{"a": }`, []string{"fmt"}, "at 1:7:"},
		{"FmtArgs", "{}", []string{"fmt", "extra"}, "unexpected arguments"},
		{"EventsSyntax", `[1 2]`, []string{"events"}, "at 1:4:"},
		{"SelectUsage", "{}", []string{"select"}, "usage: select EXPR"},
		{"SelectBadExpr", "{}", []string{"select", "a.b"}, "select:"},
		{"GetMissing", testInput, []string{"get", "nonesuch"}, `key "nonesuch" not found`},
		{"GetBounds", testInput, []string{"get", "tags", "5"}, "out of bounds"},
		{"BadFrom", "{}", []string{"convert", "--from", "toml"}, `unknown input format "toml"`},
		{"BadTo", "{}", []string{"convert", "--to", "toml"}, `unknown output format "toml"`},
		{"BadYAML", "a: [1", []string{"convert", "--from", "yaml"}, "yaml:"},
		{"MissingFile", "", []string{"fmt", "-i", "/nonexistent/input.json"}, "no such file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCommand(t, tc.input, tc.args...)
			if err == nil {
				t.Fatalf("Run %q: got %q, want error", tc.args, got)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Run %q: got error %v, want %q", tc.args, err, tc.want)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	out, err := runCommand(t, "", "help")
	if err != nil {
		t.Fatalf("Help: unexpected error: %v", err)
	}
	for _, cmd := range commands {
		if !strings.Contains(out, cmd.Name) {
			t.Errorf("Help output does not mention %q", cmd.Name)
		}
	}

	out, err = runCommand(t, "", "convert", "--help")
	if err != nil {
		t.Fatalf("Command help: unexpected error: %v", err)
	}
	for _, flag := range []string{"--from", "--to", "--diag", "--input"} {
		if !strings.Contains(out, flag) {
			t.Errorf("Command help does not mention %q", flag)
		}
	}
}
