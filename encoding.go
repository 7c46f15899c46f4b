// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdec

import (
	"errors"
	"strings"

	"github.com/creachadair/jdec/internal/escape"

	"go4.org/mem"
)

// Unquote removes the quotation marks from a quoted atom and replaces each
// escaped quotation mark (\") with a plain one. Other escape sequences are
// preserved verbatim.
func Unquote(src string) (string, error) {
	body, err := stripQuotes(src)
	if err != nil {
		return "", err
	}
	return string(escape.UnescapeQuotes(mem.S(body))), nil
}

// Quote is the inverse of Unquote. It escapes the quotation marks in src and
// adds enclosing quotation marks. No other characters are escaped, so if src
// ends with an unescaped backslash the result is not a well-formed string.
func Quote(src string) string {
	var sb strings.Builder
	sb.Grow(len(src) + 2)
	sb.WriteByte('"')
	sb.Write(escape.EscapeQuotes(mem.S(src)))
	sb.WriteByte('"')
	return sb.String()
}

func stripQuotes(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return src[1 : len(src)-1], nil
}
