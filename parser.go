// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the default limit on the nesting depth of objects and
// arrays accepted by a Decoder.
const DefaultMaxDepth = 1000

// A Decoder decodes JSON text into Value or Lazy trees. The zero value is not
// ready for use; call NewDecoder. A Decoder holds only its settings, and may
// be used concurrently once configured.
type Decoder struct {
	maxDepth int
}

// NewDecoder constructs a Decoder with default settings.
func NewDecoder() *Decoder { return &Decoder{maxDepth: DefaultMaxDepth} }

var defaultDecoder = NewDecoder()

// SetMaxDepth sets the maximum nesting depth of objects and arrays the
// decoder will accept. The root of the document is at depth 1. If n <= 0,
// nesting depth is not limited.
func (d *Decoder) SetMaxDepth(n int) { d.maxDepth = n }

// Decode decodes text into a Value using default settings. The root of the
// document must be an object or an array. In case of error, the concrete type
// of the error is *DecodeError.
func Decode(text string) (Value, error) { return defaultDecoder.Decode(text) }

// DecodeLazy decodes the structure of text into a Lazy tree using default
// settings. Leaf values are not classified; see Materialize.
func DecodeLazy(text string) (Lazy, error) { return defaultDecoder.DecodeLazy(text) }

// DecodeReader reads all of r and decodes it with default settings.  An
// error reading r is reported as an IOFailure that wraps the original error.
func DecodeReader(r io.Reader) (Value, error) { return defaultDecoder.DecodeReader(r) }

// MustDecode decodes text using default settings, and panics if decoding
// fails. It is intended for use in tests and initializers.
func MustDecode(text string) Value {
	v, err := Decode(text)
	if err != nil {
		panic(fmt.Sprintf("jdec: decode failed: %v", err))
	}
	return v
}

// Decode decodes text into a Value using the settings of d.
func (d *Decoder) Decode(text string) (Value, error) {
	return parseDocument(&builder[Value]{
		toks:     Lex(text),
		maxDepth: d.maxDepth,
		leaf: func(tok Token) Value {
			v, err := classify(tok.Text)
			checkLeaf(tok, err)
			return v
		},
		object: func(m map[string]Value) Value { return Object(m) },
		array:  func(vs []Value) Value { return Array(vs) },
	})
}

// DecodeLazy decodes the structure of text into a Lazy tree using the
// settings of d.
func (d *Decoder) DecodeLazy(text string) (Lazy, error) {
	return parseDocument(&builder[Lazy]{
		toks:     Lex(text),
		maxDepth: d.maxDepth,
		leaf:     func(tok Token) Lazy { return Deferred(tok.Text) },
		object:   func(m map[string]Lazy) Lazy { return LazyObject(m) },
		array:    func(vs []Lazy) Lazy { return LazyArray(vs) },
	})
}

// DecodeReader reads all of r and decodes it using the settings of d.
func (d *Decoder) DecodeReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Kind: IOFailure, Message: err.Error(), err: err}
	}
	return d.Decode(string(data))
}

// A builder constructs a tree of V from a token sequence. The same walk over
// the tokens serves both Value and Lazy trees; only the construction of
// leaves and containers differs.
type builder[V any] struct {
	toks     []Token
	maxDepth int

	leaf   func(Token) V
	object func(map[string]V) V
	array  func([]V) V
}

func parseDocument[V any](b *builder[V]) (_ V, err error) {
	defer recoverDecodeError(&err)

	if len(b.toks) == 0 {
		panic(&DecodeError{Kind: MalformedStructure, Message: "empty input"})
	}
	var n int
	var v V
	switch tok := b.toks[0]; tok.Kind {
	case LBrace:
		n, v = b.parseObject(0, 1)
	case LSquare:
		n, v = b.parseArray(0, 1)
	default:
		syntaxError(tok, "expected %v or %v, got %v", LBrace, LSquare, tok)
	}
	if next := n + 1; next < len(b.toks) {
		syntaxError(b.toks[next], "unexpected %v after end of input", b.toks[next])
	}
	return v, nil
}

// parseObject consumes an object whose open brace is at pos. It returns the
// offset from pos to the matching close brace, and the object.
func (b *builder[V]) parseObject(pos, depth int) (int, V) {
	b.checkDepth(pos, depth)

	members := make(map[string]V)
	var key string
	var keyTok Token
	var hasKey bool
	for i := pos + 1; ; i++ {
		switch tok := b.token(i, pos, RBrace); tok.Kind {
		case LBrace, LSquare:
			if !hasKey {
				syntaxError(tok, "expected string key, got %v", tok)
			}
			n, v := b.parseNested(i, depth)
			members[key] = v
			hasKey = false
			i += n
		case RBrace:
			if hasKey {
				syntaxError(keyTok, "missing value for key %q", key)
			}
			return i - pos, b.object(members)
		case Colon:
			// no action
		case Atom:
			if hasKey {
				members[key] = b.leaf(tok)
				hasKey = false
			} else {
				key, keyTok, hasKey = b.key(tok), tok, true
			}
		default:
			syntaxError(tok, "unexpected %v in object", tok)
		}
	}
}

// parseArray consumes an array whose open bracket is at pos. It returns the
// offset from pos to the matching close bracket, and the array.
func (b *builder[V]) parseArray(pos, depth int) (int, V) {
	b.checkDepth(pos, depth)

	var elts []V
	for i := pos + 1; ; i++ {
		switch tok := b.token(i, pos, RSquare); tok.Kind {
		case LBrace, LSquare:
			n, v := b.parseNested(i, depth)
			elts = append(elts, v)
			i += n
		case RSquare:
			if elts == nil {
				elts = []V{}
			}
			return i - pos, b.array(elts)
		case Atom:
			elts = append(elts, b.leaf(tok))
		default:
			syntaxError(tok, "unexpected %v in array", tok)
		}
	}
}

// parseNested consumes the object or array opened at pos, which is nested
// inside a container at the given depth.
func (b *builder[V]) parseNested(pos, depth int) (int, V) {
	if b.toks[pos].Kind == LBrace {
		return b.parseObject(pos, depth+1)
	}
	return b.parseArray(pos, depth+1)
}

// token returns the token at offset i, or reports a syntax error if the
// input ends before the container opened at pos is closed by want.
func (b *builder[V]) token(i, pos int, want Kind) Token {
	if i >= len(b.toks) {
		syntaxError(b.toks[pos], "unexpected end of input, missing %v", want)
	}
	return b.toks[i]
}

func (b *builder[V]) checkDepth(pos, depth int) {
	if b.maxDepth > 0 && depth > b.maxDepth {
		syntaxError(b.toks[pos], "nesting depth exceeds %d", b.maxDepth)
	}
}

// key returns the unquoted text of an object key.
func (b *builder[V]) key(tok Token) string {
	if !tok.Quoted() {
		syntaxError(tok, "expected string key, got %v", tok)
	}
	key, err := Unquote(tok.Text)
	if err != nil {
		syntaxError(tok, "invalid key: %v", err)
	}
	return key
}

// classify converts the text of an atom into a Value, based on its first
// character. A quoted atom is a String; an atom beginning with n, t, or f is
// null, true, or false. Anything else is a number: a Float if it contains a
// decimal point or an exponent marker, otherwise an Int.
//
// Within a string, only escaped quotation marks are decoded. Other escape
// sequences are kept verbatim.
func classify(text string) (Value, error) {
	if text == "" {
		return nil, &DecodeError{Kind: MalformedStructure, Message: "empty atom"}
	}
	switch text[0] {
	case '"':
		s, err := Unquote(text)
		if err != nil {
			return nil, &DecodeError{
				Kind:    MalformedStructure,
				Message: fmt.Sprintf("invalid string: %v", err),
				err:     err,
			}
		}
		return String(s), nil
	case 'n':
		return Null{}, nil
	case 't':
		return Bool(true), nil
	case 'f':
		return Bool(false), nil
	}

	if strings.ContainsAny(text, ".eE") {
		// ParseFloat also accepts Go syntax such as hex mantissas and digit
		// separators, which are not JSON numerals.
		if strings.Trim(text, "0123456789+-.eE") != "" {
			return nil, numeralError(text, strconv.ErrSyntax)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, numeralError(text, err)
		}
		return Float(f), nil
	}
	z, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, numeralError(text, err)
	}
	return Int(z), nil
}

func numeralError(text string, err error) error {
	return &DecodeError{
		Kind:    NumeralParseFailure,
		Message: fmt.Sprintf("invalid numeral %q", text),
		err:     err,
	}
}
