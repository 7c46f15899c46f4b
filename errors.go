// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this package.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	MalformedStructure  ErrorKind = iota + 1 // unbalanced or misplaced structure
	NumeralParseFailure                      // a numeric literal did not parse
	TypeMismatch                             // a narrowing conversion failed
	IOFailure                                // reading the input failed
)

var kindErr = [...]error{
	MalformedStructure:  ErrMalformed,
	NumeralParseFailure: ErrNumeral,
	TypeMismatch:        ErrTypeMismatch,
	IOFailure:           ErrIO,
}

// Sentinel errors for each ErrorKind. Errors reported by this package match
// the sentinel for their kind under errors.Is.
var (
	ErrMalformed    = errors.New("malformed structure")
	ErrNumeral      = errors.New("invalid numeral")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrIO           = errors.New("read failed")
)

func (k ErrorKind) String() string {
	if int(k) < len(kindErr) && kindErr[k] != nil {
		return kindErr[k].Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(k))
}

// DecodeError is the concrete type of errors reported while decoding.
type DecodeError struct {
	Kind    ErrorKind
	Span    Span   // location of the offending token, if known
	Message string // human-readable description

	err error
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	if e.Span.End == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("at offset %d: %s", e.Span.Pos, e.Message)
}

// Unwrap supports error wrapping.
func (e *DecodeError) Unwrap() error { return e.err }

// Is reports whether target is the sentinel for the kind of e.
func (e *DecodeError) Is(target error) bool {
	return int(e.Kind) < len(kindErr) && target != nil && target == kindErr[e.Kind]
}

// TypeError is the concrete type of errors reported by a narrowing
// conversion whose target does not match the tag of the value.
type TypeError struct {
	Want string // the expected variant
	Got  string // the actual variant
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: got %s, want %s", ErrTypeMismatch, e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }

// syntaxError aborts the parse with a MalformedStructure error at tok.
// It is recovered by the parser entry points.
func syntaxError(tok Token, msg string, args ...any) {
	panic(&DecodeError{
		Kind:    MalformedStructure,
		Span:    tok.Span,
		Message: fmt.Sprintf(msg, args...),
	})
}

// checkLeaf aborts the parse if classifying tok reported err.
func checkLeaf(tok Token, err error) {
	if err == nil {
		return
	}
	var derr *DecodeError
	if !errors.As(err, &derr) {
		derr = &DecodeError{Kind: MalformedStructure, Message: err.Error(), err: err}
	}
	derr.Span = tok.Span
	panic(derr)
}

func recoverDecodeError(errp *error) {
	if x := recover(); x != nil {
		if err, ok := x.(*DecodeError); ok {
			*errp = err
			return
		}
		panic(x)
	}
}
