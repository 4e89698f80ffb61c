// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json_test

import (
	"math"
	"testing"

	"github.com/creachadair/jcodec/json"
	"github.com/google/go-cmp/cmp"
)

const testDoc = `{
  "name": "widget",
  "count": 3,
  "tags": ["a", "b"],
  "meta": {
    "owner": {"id": -7, "name": "bob"},
    "ratio": 0.5
  },
  "list": [{"name": "hidden"}]
}`

func mustParse(t *testing.T, text string) json.Value {
	t.Helper()
	v, err := json.ParseString(text)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", text, err)
	}
	return v
}

func TestNavigation(t *testing.T) {
	v := mustParse(t, testDoc)

	tests := []struct {
		name string
		get  func() (json.Value, bool)
		want json.Value // nil means not found
	}{
		{"Field", func() (json.Value, bool) { return json.Field(v, "count") }, json.Uint64(3)},
		{"FieldMissing", func() (json.Value, bool) { return json.Field(v, "nonesuch") }, nil},
		{"FieldNotObject", func() (json.Value, bool) { return json.Field(json.Uint64(1), "x") }, nil},
		{"Path", func() (json.Value, bool) { return json.Path(v, "meta", "owner", "id") }, json.Int64(-7)},
		{"PathEmpty", func() (json.Value, bool) { return json.Path(json.Bool(true)) }, json.Bool(true)},
		{"PathMissing", func() (json.Value, bool) { return json.Path(v, "meta", "nonesuch") }, nil},
		{"PathThroughScalar", func() (json.Value, bool) { return json.Path(v, "count", "x") }, nil},
		{"Index", func() (json.Value, bool) {
			tags, _ := json.Field(v, "tags")
			return json.Index(tags, 1)
		}, json.String("b")},
		{"IndexRange", func() (json.Value, bool) {
			tags, _ := json.Field(v, "tags")
			return json.Index(tags, 2)
		}, nil},
		{"IndexNegative", func() (json.Value, bool) { return json.Index(json.Array{json.Null{}}, -1) }, nil},

		// Search checks an object before its members, visits members in key
		// order, and does not look inside arrays.
		{"SearchTop", func() (json.Value, bool) { return json.Search(v, "name") }, json.String("widget")},
		{"SearchNested", func() (json.Value, bool) { return json.Search(v, "id") }, json.Int64(-7)},
		{"SearchDeeper", func() (json.Value, bool) { return json.Search(v, "ratio") }, json.Float64(0.5)},
		{"SearchMissing", func() (json.Value, bool) { return json.Search(v, "nonesuch") }, nil},
		{"SearchArray", func() (json.Value, bool) {
			return json.Search(json.Array{json.Object{"x": json.Null{}}}, "x")
		}, nil},
		{"SearchOrder", func() (json.Value, bool) {
			return json.Search(json.Object{
				"b": json.Object{"k": json.Uint64(2)},
				"a": json.Object{"z": json.Object{"k": json.Uint64(1)}},
			}, "k")
		}, json.Uint64(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.get()
			if ok != (tc.want != nil) {
				t.Errorf("Found: got %v, want %v", ok, tc.want != nil)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	type result struct {
		B    bool
		I    int64
		U    uint64
		F    float64
		S    string
		Arr  json.Array
		Obj  json.Object
		Null bool
		Num  bool

		// Which accessors succeeded.
		OK [7]bool
	}
	check := func(v json.Value) result {
		var r result
		r.B, r.OK[0] = json.AsBool(v)
		r.I, r.OK[1] = json.AsInt64(v)
		r.U, r.OK[2] = json.AsUint64(v)
		r.F, r.OK[3] = json.AsFloat64(v)
		r.S, r.OK[4] = json.AsString(v)
		r.Arr, r.OK[5] = json.AsArray(v)
		r.Obj, r.OK[6] = json.AsObject(v)
		r.Null, r.Num = json.IsNull(v), json.IsNumber(v)
		return r
	}

	tests := []struct {
		name  string
		input json.Value
		want  result
	}{
		{"Nil", nil, result{Null: true}},
		{"Null", json.Null{}, result{Null: true}},
		{"Bool", json.Bool(true), result{B: true, OK: [7]bool{0: true}}},
		{"NegInt", json.Int64(-2), result{I: -2, F: -2, Num: true, OK: [7]bool{1: true, 3: true}}},
		{"PosInt", json.Int64(2), result{I: 2, U: 2, F: 2, Num: true, OK: [7]bool{1: true, 2: true, 3: true}}},
		{"SmallUint", json.Uint64(math.MaxInt64), result{
			I: math.MaxInt64, U: math.MaxInt64, F: math.MaxInt64, Num: true,
			OK: [7]bool{1: true, 2: true, 3: true},
		}},
		{"BigUint", json.Uint64(math.MaxUint64), result{
			U: math.MaxUint64, F: math.MaxUint64, Num: true,
			OK: [7]bool{2: true, 3: true},
		}},
		{"Float", json.Float64(1.5), result{F: 1.5, Num: true, OK: [7]bool{3: true}}},
		{"String", json.String("1"), result{S: "1", OK: [7]bool{4: true}}},
		{"Array", json.Array{}, result{Arr: json.Array{}, OK: [7]bool{5: true}}},
		{"Object", json.Object{}, result{Obj: json.Object{}, OK: [7]bool{6: true}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, check(tc.input)); diff != "" {
				t.Errorf("Accessors (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		input json.Value
		kind  json.Kind
		want  string
	}{
		{json.Null{}, json.NullKind, "null"},
		{json.Bool(false), json.BoolKind, "false"},
		{json.Int64(-1), json.Int64Kind, "-1"},
		{json.Uint64(1), json.Uint64Kind, "1"},
		{json.Float64(3), json.Float64Kind, "3.0"},
		{json.String("a\"b"), json.StringKind, `"a\"b"`},
		{json.Array{json.Null{}, nil}, json.ArrayKind, "[null,null]"},
		{json.Object{"z": json.Uint64(1), "a": json.Array{}}, json.ObjectKind, `{"a":[],"z":1}`},
	}
	for _, tc := range tests {
		if got := tc.input.String(); got != tc.want {
			t.Errorf("String: got %#q, want %#q", got, tc.want)
		}
		if got := tc.input.Kind(); got != tc.kind {
			t.Errorf("Kind %v: got %v, want %v", tc.input, got, tc.kind)
		}
	}
	if got := json.BoolKind.String(); got != "Boolean" {
		t.Errorf("BoolKind: got %q, want Boolean", got)
	}
}

func TestObject(t *testing.T) {
	obj := json.Object{"c": json.Uint64(3), "a": json.Uint64(1), "b": json.Uint64(2)}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if got := obj.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if got := obj.Find("b"); got != json.Uint64(2) {
		t.Errorf("Find(b): got %v, want 2", got)
	}
	if got := obj.Find("nonesuch"); got != nil {
		t.Errorf("Find(nonesuch): got %v, want nil", got)
	}

	// Object equality does not depend on the order of the input.
	v1 := mustParse(t, `{"a": 1, "b": [true, {"x": null, "y": 2}]}`)
	v2 := mustParse(t, `{"b": [true, {"y": 2, "x": null}], "a": 1}`)
	if diff := cmp.Diff(v1, v2); diff != "" {
		t.Errorf("Objects differ (-v1, +v2):\n%s", diff)
	}
	if v1.String() != v2.String() {
		t.Errorf("Encodings differ: %s vs. %s", v1, v2)
	}
}
