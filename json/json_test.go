// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json_test

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/creachadair/jcodec/json"
	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

// roundTripInputs are valid documents used by the property tests.
var roundTripInputs = []string{
	`null`, `true`, `false`, `0`, `-0`, `1`, `-1`,
	`-9223372036854775808`, `18446744073709551615`, `9223372036854775808`,
	`0.5`, `-2.5e-3`, `1e300`, `5e-324`, `1.7976931348623157e308`, `123456789.125`,
	`""`, `"\u0000\u001f\u007f"`, `"\ud83d\ude00 and \u00e9"`, `"😀 and é"`, `"a\/b\\c\"d"`,
	`[]`, `{}`, `[[[]]]`, `{"a":{"b":{"c":{}}}}`,
	`[1, "two", 3.0, null, true, {"x": [false]}]`,
	`{"z": 1, "a": 2, "m": [3, {"q": null, "b": []}]}`,
	`{"": "", "\n": "\t", "key with spaces": -7}`,
}

func loadTestInput(t testing.TB) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	return data
}

func allInputs(t *testing.T) []string {
	return append(roundTripInputs, string(loadTestInput(t)))
}

func TestRoundTrip(t *testing.T) {
	for _, input := range allInputs(t) {
		v := mustParse(t, input)

		compact, err := json.Encode(v)
		if err != nil {
			t.Fatalf("Encode %#q: unexpected error: %v", input, err)
		}
		if diff := cmp.Diff(v, mustParse(t, compact)); diff != "" {
			t.Errorf("Compact round trip of %#q (-want, +got):\n%s", input, diff)
		}

		pretty, err := json.EncodePretty(v, 2)
		if err != nil {
			t.Fatalf("EncodePretty %#q: unexpected error: %v", input, err)
		}
		if diff := cmp.Diff(v, mustParse(t, pretty)); diff != "" {
			t.Errorf("Pretty round trip of %#q (-want, +got):\n%s", input, diff)
		}
		checkStandard(t, compact)
		checkStandard(t, pretty)
	}
}

func TestPrettyIdempotent(t *testing.T) {
	for _, input := range allInputs(t) {
		p1, err := json.EncodePretty(mustParse(t, input), 3)
		if err != nil {
			t.Fatalf("EncodePretty %#q: unexpected error: %v", input, err)
		}
		p2, err := json.EncodePretty(mustParse(t, p1), 3)
		if err != nil {
			t.Fatalf("EncodePretty %#q: unexpected error: %v", p1, err)
		}
		if diff := cmp.Diff(p1, p2); diff != "" {
			t.Errorf("Pretty output is not stable (-first, +second):\n%s", diff)
		}
	}
}

// fromNumbers converts the output of a decoder using json.Number into the
// form produced by ToNative.
func fromNumbers(x any) any {
	switch t := x.(type) {
	case gojson.Number:
		s := string(t)
		if strings.ContainsAny(s, ".eE") {
			f, _ := strconv.ParseFloat(s, 64)
			return f
		} else if strings.HasPrefix(s, "-") {
			z, _ := strconv.ParseInt(s, 10, 64)
			return z
		}
		u, _ := strconv.ParseUint(s, 10, 64)
		return u
	case []any:
		for i, elt := range t {
			t[i] = fromNumbers(elt)
		}
	case map[string]any:
		for key, elt := range t {
			t[key] = fromNumbers(elt)
		}
	}
	return x
}

// TestDifferential compares the parser to an independent implementation.
func TestDifferential(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, input := range allInputs(t) {
			dec := gojson.NewDecoder(strings.NewReader(input))
			dec.UseNumber()
			var want any
			if err := dec.Decode(&want); err != nil {
				t.Fatalf("Reference decode %#q: %v", input, err)
			}
			got := json.ToNative(mustParse(t, input))
			if diff := cmp.Diff(fromNumbers(want), got); diff != "" {
				t.Errorf("Parse %#q (-want, +got):\n%s", input, diff)
			}
		}
	})

	// These inputs are invalid under both implementations.
	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{
			``, ` `, `nul`, `nulla`, `tru`, `[1,]`, `{"a":1,}`, `[1 2]`, `{"a" 1}`,
			`{1: 2}`, `01`, `1.`, `.5`, `1e`, `+1`, `-`, `"\x"`, `"abc`, `[`, `{`,
			`]`, `NaN`, `[Infinity]`, "\"a\nb\"", `"\u12"`, `{"a": 1} x`,
		} {
			if gojson.Valid([]byte(input)) {
				t.Errorf("Reference accepts %#q", input)
			}
			if v, err := json.ParseString(input); err == nil {
				t.Errorf("Parse %#q: got %v, want error", input, v)
			}
		}
	})
}

func TestMarshal(t *testing.T) {
	v := mustParse(t, `{"b": [1, 2], "a": "x"}`)

	compact, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: unexpected error: %v", err)
	}
	if got, want := string(compact), `{"a":"x","b":[1,2]}`; got != want {
		t.Errorf("Marshal: got %#q, want %#q", got, want)
	}

	pretty, err := json.MarshalIndent(v, 1)
	if err != nil {
		t.Fatalf("MarshalIndent: unexpected error: %v", err)
	}
	const want = "{\n \"a\": \"x\",\n \"b\": [\n  1,\n  2\n ]\n}"
	if diff := cmp.Diff(want, string(pretty)); diff != "" {
		t.Errorf("MarshalIndent (-want, +got):\n%s", diff)
	}

	// Parse reads from any reader.
	w, err := json.Parse(bytes.NewReader(pretty))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if diff := cmp.Diff(v, w); diff != "" {
		t.Errorf("Parse (-want, +got):\n%s", diff)
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		quoted, plain string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\"b"`, `a"b`},
		{`"\\\b\f\n\r\t"`, "\\\b\f\n\r\t"},
		{`"\u0001"`, "\x01"},
	}
	for _, tc := range tests {
		if got := json.Quote(tc.plain); got != tc.quoted {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.plain, got, tc.quoted)
		}
		got, err := json.Unquote(tc.quoted)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.quoted, err)
		} else if got != tc.plain {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.quoted, got, tc.plain)
		}
	}

	// Escapes the encoder does not produce are also accepted.
	if got, err := json.Unquote(`"\/\u00e9\ud83d\ude00"`); err != nil || got != "/é\U0001f600" {
		t.Errorf("Unquote: got (%q, %v), want %q", got, err, "/é\U0001f600")
	}

	for _, bad := range []string{``, `"`, `abc`, `"abc`, `abc"`, `"\x"`, `"\u12"`, `"\ud83d"`, `"a\"`} {
		if got, err := json.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}
