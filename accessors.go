// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"reflect"
	"strings"
)

// As reports v as a value of type T if its concrete type is exactly T (or,
// for the Number interface, either Int or Float). Otherwise As reports a
// *TypeError naming the expected variant. No conversion between variants is
// performed.
func As[T Value](v Value) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &TypeError{Want: nameOf[T](), Got: variantName(v)}
}

// nameOf returns the variant name of type T, for diagnostics.
func nameOf[T Value]() string {
	var zero T
	if any(zero) == nil {
		// T is an interface type, e.g., Number.
		return strings.ToLower(reflect.TypeFor[T]().Name())
	}
	return variantName(zero)
}

// AsString reports the text of v if it is a String.
func AsString(v Value) (string, error) {
	s, err := As[String](v)
	return string(s), err
}

// AsInt reports the value of v if it is an Int.
func AsInt(v Value) (int64, error) {
	z, err := As[Int](v)
	return int64(z), err
}

// AsFloat reports the value of v if it is a Float. An Int is not converted.
func AsFloat(v Value) (float64, error) {
	f, err := As[Float](v)
	return float64(f), err
}

// AsNumber reports v if it is an Int or a Float.
func AsNumber(v Value) (Number, error) { return As[Number](v) }

// AsBool reports the value of v if it is a Bool.
func AsBool(v Value) (bool, error) {
	b, err := As[Bool](v)
	return bool(b), err
}

// AsObject reports the members of v if it is an Object.
func AsObject(v Value) (map[string]Value, error) {
	o, err := As[Object](v)
	return o, err
}

// AsArray reports the elements of v if it is an Array.
func AsArray(v Value) ([]Value, error) {
	a, err := As[Array](v)
	return a, err
}

// AsNull reports nil if v is Null, otherwise a *TypeError.
func AsNull(v Value) error {
	_, err := As[Null](v)
	return err
}
