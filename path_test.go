// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdec_test

import (
	"testing"

	"github.com/creachadair/jdec"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v := jdec.MustDecode(testJSON)

	tests := []struct {
		name string
		path []any
		want jdec.Value
	}{
		{"NilInput", nil, v},
		{"NoMatch", []any{"nonesuch"}, jdec.InvalidLocation{}},
		{"WrongType", []any{11}, jdec.InvalidLocation{}},
		{"BadElement", []any{"list", 1.5}, jdec.InvalidLocation{}},

		{"ArrayPos", []any{"list", 1, "x"}, jdec.Int(2)},
		{"ArrayNeg", []any{"list", -2, "x"}, jdec.Int(1)},
		{"ArrayRange", []any{"o", 25}, jdec.InvalidLocation{}},
		{"ObjPath", []any{"xyz", "d"}, jdec.Bool(true)},
		{"PastLeaf", []any{"xyz", "d", "e"}, jdec.InvalidLocation{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := jdec.Path(v, tc.path...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			} else {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestPath_nil(t *testing.T) {
	for _, path := range [][]any{nil, {"a"}, {0, "b"}} {
		if got := jdec.Path(nil, path...); got != (jdec.InvalidLocation{}) {
			t.Errorf("Path(nil, %v): got %#v, want InvalidLocation", path, got)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"list.0.x", []any{"list", 0, "x"}},
		{"o.-1", []any{"o", -1}},
	}
	for _, tc := range tests {
		got := jdec.ParsePath(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParsePath(%q): (-want, +got)\n%s", tc.input, diff)
		}
	}

	v := jdec.MustDecode(testJSON)
	if got, err := jdec.AsString(jdec.Path(v, jdec.ParsePath("o.-1")...)); err != nil || got != "yourself" {
		t.Errorf("Path o.-1: got %q, %v; want yourself, nil", got, err)
	}
}
