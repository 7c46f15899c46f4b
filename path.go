// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"strconv"
	"strings"
)

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays). If the path is valid, the element
// reached is returned. Otherwise Path returns InvalidLocation.
//
// Negative array offsets count backward from the end of the array (-1 is
// last, -2 second last, etc.). A path element of any other type does not
// match anything. A nil v is treated as InvalidLocation.
func Path(v Value, path ...any) Value {
	if v == nil {
		return InvalidLocation{}
	}
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			cur = cur.At(t)
		case int:
			cur = cur.Index(t)
		default:
			return InvalidLocation{}
		}
		if cur.Kind() == InvalidKind {
			break
		}
	}
	return cur
}

// ParsePath splits a dotted path expression such as "items.0.name" into
// elements suitable for Path. Elements that parse as decimal integers are
// reported as int, others as string. An empty expression is an empty path.
// Since Path does not look up an int element in an object, a key consisting
// of digits cannot be reached through a parsed path.
func ParsePath(expr string) []any {
	if expr == "" {
		return nil
	}
	parts := strings.Split(expr, ".")
	out := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			out[i] = n
		} else {
			out[i] = p
		}
	}
	return out
}
