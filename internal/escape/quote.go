// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaped quotation marks in JSON string bodies.
package escape

import "go4.org/mem"

// UnescapeQuotes returns a copy of src in which each escaped quotation mark
// (\") is replaced by a plain quotation mark. All other bytes, including
// other escape sequences, are copied verbatim.
func UnescapeQuotes(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.Index(src, mem.S(`\"`))
		if i < 0 {
			break
		}
		dec = mem.Append(dec, src.SliceTo(i))
		dec = append(dec, '"')
		src = src.SliceFrom(i + 2)
	}
	return mem.Append(dec, src)
}

// EscapeQuotes is the inverse of UnescapeQuotes: it returns a copy of src in
// which each quotation mark is preceded by a backslash.
func EscapeQuotes(src mem.RO) []byte {
	enc := make([]byte, 0, src.Len()+2)
	for {
		i := mem.IndexByte(src, '"')
		if i < 0 {
			return mem.Append(enc, src)
		}
		enc = mem.Append(enc, src.SliceTo(i))
		enc = append(enc, '\\', '"')
		src = src.SliceFrom(i + 1)
	}
}
