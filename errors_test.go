// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jdec"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		kind jdec.ErrorKind
		want string
		err  error
	}{
		{jdec.MalformedStructure, "malformed structure", jdec.ErrMalformed},
		{jdec.NumeralParseFailure, "invalid numeral", jdec.ErrNumeral},
		{jdec.TypeMismatch, "type mismatch", jdec.ErrTypeMismatch},
		{jdec.IOFailure, "read failed", jdec.ErrIO},
		{jdec.ErrorKind(0), "ErrorKind(0)", nil},
		{jdec.ErrorKind(99), "ErrorKind(99)", nil},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String(%d): got %q, want %q", tc.kind, got, tc.want)
		}
		if tc.err == nil {
			continue
		}
		err := &jdec.DecodeError{Kind: tc.kind, Message: "test"}
		if !errors.Is(err, tc.err) {
			t.Errorf("Is(%v, %v): got false, want true", err, tc.err)
		}
	}
}

func TestDecodeError(t *testing.T) {
	err := &jdec.DecodeError{Kind: jdec.MalformedStructure, Message: "bad"}
	if got, want := err.Error(), "malformed structure: bad"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if errors.Is(err, jdec.ErrNumeral) {
		t.Errorf("Is(%v, %v): got true, want false", err, jdec.ErrNumeral)
	}

	err.Span = jdec.Span{Pos: 5, End: 6}
	if got, want := err.Error(), "at offset 5: bad"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}
