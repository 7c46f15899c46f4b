// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"unicode"

	"go4.org/mem"
)

// Lex splits text into a sequence of tokens. Lex does not fail; malformed
// input produces a token sequence the parser will reject.
//
// The input is split at each double quotation mark, and the fragments
// alternate between "outside" and "inside" a string. A quotation mark
// preceded by an escaping backslash does not split. Inside fragments become a
// single atom with the quotation marks restored. Outside fragments are
// scanned for the delimiters { } [ ] and :, each of which is its own token.
// Commas separate atoms but are not reported, and whitespace is discarded
// without separating atoms. Anything else accumulates into an atom.
func Lex(text string) []Token {
	var lx lexer
	src := mem.S(text)

	outside := true
	start, from := 0, 0 // start of current fragment, start of quote search
	for {
		i := mem.IndexByte(src.SliceFrom(from), '"')
		if i < 0 {
			break
		}
		q := from + i
		frag := src.Slice(start, q)
		if endsWithEscape(frag) {
			// This quote is part of the fragment; keep looking.
			from = q + 1
			continue
		}
		if outside {
			lx.scanOutside(frag, start)
		} else {
			lx.emitString(frag, start, q+1)
		}
		outside = !outside
		start, from = q+1, q+1
	}

	// The remainder of the input has no (unescaped) quotation marks.  If we are
	// still inside a string, the string is unterminated; report it anyway and
	// let the parser complain about the structure.
	if rest := src.SliceFrom(start); outside {
		lx.scanOutside(rest, start)
	} else {
		lx.emitString(rest, start, src.Len())
	}
	return lx.toks
}

type lexer struct {
	toks []Token
	atom []byte // current atom text
	pos  int    // offset of first byte of atom, or -1
	end  int    // offset after last byte of atom
}

// emitString reports an inside fragment as a quoted atom. The fragment begins
// at offset start, just after its opening quote, and end is the offset after
// its closing quote.
func (lx *lexer) emitString(frag mem.RO, start, end int) {
	buf := make([]byte, 0, frag.Len()+2)
	buf = append(buf, '"')
	buf = mem.Append(buf, frag)
	buf = append(buf, '"')
	lx.toks = append(lx.toks, Token{
		Kind: Atom,
		Text: string(buf),
		Span: Span{Pos: start - 1, End: end},
	})
}

// scanOutside tokenizes an outside fragment beginning at offset base.
func (lx *lexer) scanOutside(frag mem.RO, base int) {
	lx.pos = -1
	for off := 0; off < frag.Len(); {
		r, n := mem.DecodeRune(frag.SliceFrom(off))
		if n == 0 {
			n = 1
		}
		at := base + off
		switch {
		case unicode.IsSpace(r):
			// discard
		case r == ',':
			lx.flush()
		case isDelim(r):
			lx.flush()
			lx.toks = append(lx.toks, Token{
				Kind: delimKind(r),
				Text: string(r),
				Span: Span{Pos: at, End: at + n},
			})
		default:
			if lx.pos < 0 {
				lx.pos = at
			}
			lx.atom = mem.Append(lx.atom, frag.Slice(off, off+n))
			lx.end = at + n
		}
		off += n
	}
	lx.flush()
}

// flush reports the pending atom, if there is one.
func (lx *lexer) flush() {
	if lx.pos < 0 {
		return
	}
	lx.toks = append(lx.toks, Token{
		Kind: Atom,
		Text: string(lx.atom),
		Span: Span{Pos: lx.pos, End: lx.end},
	})
	lx.atom = lx.atom[:0]
	lx.pos = -1
}

// endsWithEscape reports whether frag ends with an odd number of backslashes,
// meaning the quotation mark that follows it is escaped.
func endsWithEscape(frag mem.RO) bool {
	n := 0
	for i := frag.Len() - 1; i >= 0 && frag.At(i) == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func isDelim(r rune) bool { return delimKind(r) != Invalid }

func delimKind(r rune) Kind {
	switch r {
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LSquare
	case ']':
		return RSquare
	case ':':
		return Colon
	}
	return Invalid
}
