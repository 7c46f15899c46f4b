// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import "fmt"

// Kind is the type of a lexical token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Atom                // string, number, or constant literal
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Atom:    "atom",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A Token is a single lexical unit of the input. Structural tokens carry
// their one-character text; atomic tokens carry the literal text, including
// the enclosing quotation marks of a string.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Quoted reports whether t is an atom that begins with a quotation mark.
func (t Token) Quoted() bool { return t.Kind == Atom && len(t.Text) != 0 && t.Text[0] == '"' }

func (t Token) String() string {
	if t.Kind == Atom {
		return fmt.Sprintf("atom %s", t.Text)
	}
	return t.Kind.String()
}
