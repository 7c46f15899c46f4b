// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ValueKind identifies the variant of a Value.
type ValueKind byte

// Constants defining the valid ValueKind values.
const (
	InvalidKind ValueKind = iota // the InvalidLocation sentinel
	StringKind                   // String
	NumberKind                   // Int or Float
	BoolKind                     // Bool
	NullKind                     // Null
	ObjectKind                   // Object
	ArrayKind                    // Array
)

var valueKindStr = [...]string{
	InvalidKind: "invalid location",
	StringKind:  "string",
	NumberKind:  "number",
	BoolKind:    "bool",
	NullKind:    "null",
	ObjectKind:  "object",
	ArrayKind:   "array",
}

func (k ValueKind) String() string {
	if int(k) >= len(valueKindStr) {
		return valueKindStr[InvalidKind]
	}
	return valueKindStr[k]
}

// A Value is a decoded JSON value. The concrete type of a Value is one of
// String, Int, Float, Bool, Null, Object, Array, or InvalidLocation; no other
// types implement the interface.
type Value interface {
	// Kind reports the variant of the value.
	Kind() ValueKind

	// At returns the member of an Object with the given key. If the value is
	// not an Object, or has no such member, At returns InvalidLocation.
	At(key string) Value

	// Index returns the element of an Array at offset i. Negative offsets
	// count backward from the end. If the value is not an Array or i is out
	// of range, Index returns InvalidLocation.
	Index(i int) Value

	// JSON renders the value as compact JSON text, with object keys in
	// lexicographic order. Only quotation marks are escaped, so the text of a
	// decoded value decodes to an equal value. A string constructed with a
	// trailing backslash or with control characters may not render as valid
	// JSON.
	JSON() string

	isValue()
}

// A Number is a numeric Value, either an Int or a Float.
type Number interface {
	Value
	isNumber()
}

// A String is a string value.
type String string

// An Int is an integer value, a number written without a fraction or
// exponent.
type Int int64

// A Float is a floating-point value, a number written with a fraction or an
// exponent.
type Float float64

// A Bool is a Boolean constant, true or false.
type Bool bool

// Null represents the null constant.
type Null struct{}

// An Object is a collection of key-value members.
type Object map[string]Value

// An Array is a sequence of values.
type Array []Value

// InvalidLocation is the result of a lookup that did not find a value.  It is
// never produced by decoding.
type InvalidLocation struct{}

func (String) Kind() ValueKind          { return StringKind }
func (Int) Kind() ValueKind             { return NumberKind }
func (Float) Kind() ValueKind           { return NumberKind }
func (Bool) Kind() ValueKind            { return BoolKind }
func (Null) Kind() ValueKind            { return NullKind }
func (Object) Kind() ValueKind          { return ObjectKind }
func (Array) Kind() ValueKind           { return ArrayKind }
func (InvalidLocation) Kind() ValueKind { return InvalidKind }

func (String) At(string) Value          { return InvalidLocation{} }
func (Int) At(string) Value             { return InvalidLocation{} }
func (Float) At(string) Value           { return InvalidLocation{} }
func (Bool) At(string) Value            { return InvalidLocation{} }
func (Null) At(string) Value            { return InvalidLocation{} }
func (Array) At(string) Value           { return InvalidLocation{} }
func (InvalidLocation) At(string) Value { return InvalidLocation{} }

// At returns the member of o with the given key, or InvalidLocation.
func (o Object) At(key string) Value {
	if v, ok := o[key]; ok {
		return v
	}
	return InvalidLocation{}
}

func (String) Index(int) Value          { return InvalidLocation{} }
func (Int) Index(int) Value             { return InvalidLocation{} }
func (Float) Index(int) Value           { return InvalidLocation{} }
func (Bool) Index(int) Value            { return InvalidLocation{} }
func (Null) Index(int) Value            { return InvalidLocation{} }
func (Object) Index(int) Value          { return InvalidLocation{} }
func (InvalidLocation) Index(int) Value { return InvalidLocation{} }

// Index returns the element of a at offset i, or InvalidLocation.
func (a Array) Index(i int) Value {
	if j, ok := fixArrayBound(len(a), i); ok {
		return a[j]
	}
	return InvalidLocation{}
}

func (s String) JSON() string { return Quote(string(s)) }
func (z Int) JSON() string    { return strconv.FormatInt(int64(z), 10) }
func (b Bool) JSON() string   { return strconv.FormatBool(bool(b)) }
func (Null) JSON() string     { return "null" }

// JSON renders f so that it decodes as a Float.  JSON has no representation
// for infinities and NaN, so these are rendered as null.
func (f Float) JSON() string {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "null"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Quote(key))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// JSON renders the sentinel as null. Callers that need to distinguish a
// missing value should check Kind first.
func (InvalidLocation) JSON() string { return "null" }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (String) isValue()          {}
func (Int) isValue()             {}
func (Float) isValue()           {}
func (Bool) isValue()            {}
func (Null) isValue()            {}
func (Object) isValue()          {}
func (Array) isValue()           {}
func (InvalidLocation) isValue() {}

func (Int) isNumber()   {}
func (Float) isNumber() {}

// variantName returns the name of the concrete variant of v, for use in
// diagnostics. Unlike Kind, it distinguishes integers from floats.
func variantName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return v.Kind().String()
	}
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
