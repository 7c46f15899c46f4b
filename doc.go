// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jdec implements a small JSON decoder that builds in-memory trees.
//
// # Lexing
//
// The Lex function splits the complete input text into tokens. Structural
// tokens are the delimiters { } [ ] and :, and everything else is an atom: a
// quoted string (with its quotation marks) or a bare literal such as a number,
// true, false, or null. Commas separate atoms but are not reported.
//
//	for _, tok := range jdec.Lex(`{"a": [1, 2]}`) {
//	   log.Printf("Token: %v", tok)
//	}
//
// # Decoding
//
// Decode parses the input into a Value, whose concrete type is one of String,
// Int, Float, Bool, Null, Object, or Array. The root of the document must be
// an object or an array. In case of error, decoding stops and an error of
// concrete type *jdec.DecodeError is returned; no partial tree is reported.
//
//	v, err := jdec.Decode(input)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// Atoms are classified by their first character: a quotation mark marks a
// string, n, t, and f mark null, true, and false, and anything else is a
// number. A number containing a decimal point or an exponent marker is a
// Float; otherwise it is an Int.
//
// DecodeLazy parses only the structure of the input, and returns a Lazy tree
// whose leaves are Deferred atoms. Materialize converts a Lazy tree into the
// same Value that Decode would have produced.
//
// # Accessors
//
// The At and Index methods of a Value look up object members and array
// elements. A failed lookup does not report an error; instead it yields the
// InvalidLocation sentinel, and further lookups on the sentinel yield the
// sentinel again. The failure is reported when the caller converts the result
// to a concrete type:
//
//	name, err := jdec.AsString(v.At("user").At("name"))
//	if errors.Is(err, jdec.ErrTypeMismatch) {
//	   log.Print("No user name")
//	}
//
// The As function and its helpers (AsString, AsInt, AsFloat, and so on)
// succeed only if the tag of the value exactly matches the requested type.
package jdec
