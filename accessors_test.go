// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdec_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jdec"
	"github.com/google/go-cmp/cmp"
)

func TestSafeMiss(t *testing.T) {
	v := jdec.MustDecode(`{"a": {"b": 1}}`)

	got, err := jdec.AsInt(v.At("a").At("b"))
	if err != nil {
		t.Errorf("AsInt(a.b): unexpected error: %v", err)
	} else if got != 1 {
		t.Errorf("AsInt(a.b): got %d, want 1", got)
	}

	miss, err := jdec.AsInt(v.At("a").At("z"))
	if !errors.Is(err, jdec.ErrTypeMismatch) {
		t.Errorf("AsInt(a.z): got %v, %v; want %v", miss, err, jdec.ErrTypeMismatch)
	}
	var terr *jdec.TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("AsInt(a.z): error has type %T, want *TypeError", err)
	}
	if terr.Want != "int" || terr.Got != "invalid location" {
		t.Errorf("TypeError: got %+v, want int/invalid location", terr)
	}
}

func TestNarrowing(t *testing.T) {
	v := jdec.MustDecode(`{
  "s": "text", "i": 3, "f": 3.0, "b": true, "n": null,
  "o": {"x": 1}, "a": [1, "two"]
}`)

	check := func(name string, err error, wantErr string) {
		t.Helper()
		if wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
			}
			return
		}
		if err == nil {
			t.Errorf("%s: got nil error, want %q", name, wantErr)
		} else if got := err.Error(); got != wantErr {
			t.Errorf("%s: got error %q, want %q", name, got, wantErr)
		} else if !errors.Is(err, jdec.ErrTypeMismatch) {
			t.Errorf("%s: error %v is not %v", name, err, jdec.ErrTypeMismatch)
		}
	}

	s, err := jdec.AsString(v.At("s"))
	check("AsString(s)", err, "")
	if s != "text" {
		t.Errorf("AsString(s): got %q, want text", s)
	}
	_, err = jdec.AsString(v.At("b"))
	check("AsString(b)", err, "type mismatch: got bool, want string")

	i, err := jdec.AsInt(v.At("i"))
	check("AsInt(i)", err, "")
	if i != 3 {
		t.Errorf("AsInt(i): got %d, want 3", i)
	}
	_, err = jdec.AsInt(v.At("f"))
	check("AsInt(f)", err, "type mismatch: got float, want int")

	f, err := jdec.AsFloat(v.At("f"))
	check("AsFloat(f)", err, "")
	if f != 3.0 {
		t.Errorf("AsFloat(f): got %g, want 3", f)
	}
	_, err = jdec.AsFloat(v.At("i"))
	check("AsFloat(i)", err, "type mismatch: got int, want float")

	for _, key := range []string{"i", "f"} {
		num, err := jdec.AsNumber(v.At(key))
		check("AsNumber("+key+")", err, "")
		if num != v.At(key) {
			t.Errorf("AsNumber(%s): got %v, want %v", key, num, v.At(key))
		}
	}
	_, err = jdec.AsNumber(v.At("s"))
	check("AsNumber(s)", err, "type mismatch: got string, want number")

	b, err := jdec.AsBool(v.At("b"))
	check("AsBool(b)", err, "")
	if !b {
		t.Error("AsBool(b): got false, want true")
	}
	_, err = jdec.AsBool(v.At("n"))
	check("AsBool(n)", err, "type mismatch: got null, want bool")

	check("AsNull(n)", jdec.AsNull(v.At("n")), "")
	check("AsNull(o)", jdec.AsNull(v.At("o")), "type mismatch: got object, want null")

	o, err := jdec.AsObject(v.At("o"))
	check("AsObject(o)", err, "")
	if diff := cmp.Diff(map[string]jdec.Value{"x": jdec.Int(1)}, o); diff != "" {
		t.Errorf("AsObject(o): (-want, +got)\n%s", diff)
	}
	_, err = jdec.AsObject(v.At("a"))
	check("AsObject(a)", err, "type mismatch: got array, want object")

	a, err := jdec.AsArray(v.At("a"))
	check("AsArray(a)", err, "")
	if diff := cmp.Diff([]jdec.Value{jdec.Int(1), jdec.String("two")}, a); diff != "" {
		t.Errorf("AsArray(a): (-want, +got)\n%s", diff)
	}
	_, err = jdec.AsArray(v.At("missing"))
	check("AsArray(missing)", err, "type mismatch: got invalid location, want array")

	_, err = jdec.As[jdec.Object](nil)
	check("As[Object](nil)", err, "type mismatch: got nil, want object")
}

func TestAccessorErrorsAreLocal(t *testing.T) {
	v := jdec.MustDecode(`{"a": true, "b": "ok"}`)
	if _, err := jdec.AsInt(v.At("a")); err == nil {
		t.Error("AsInt(a): got nil error, want mismatch")
	}
	// A failed conversion does not affect the rest of the tree.
	if s, err := jdec.AsString(v.At("b")); err != nil || s != "ok" {
		t.Errorf("AsString(b): got %q, %v; want ok, nil", s, err)
	}
}
