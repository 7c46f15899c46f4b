// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jdec"
	"github.com/tailscale/hujson"
)

// Reformat re-lays out the JSON text of v in the standard HuJSON style, so
// that decoding it exercises the handling of whitespace between tokens.
func Reformat(t testing.TB, v jdec.Value) string {
	t.Helper()
	hv, err := hujson.Parse([]byte(v.JSON()))
	if err != nil {
		t.Fatalf("Parse %s: %v", v.JSON(), err)
	}
	hv.Format()
	hv.Standardize()
	return string(hv.Pack())
}

// Tokens returns the text of each token in toks, for comparison.
func Tokens(toks []jdec.Token) []string {
	var out []string
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out
}

// Document returns a JSON array of n records of mixed types, for use as
// benchmark input.
func Document(n int) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  {"id": %d, "name": "record \"%d\"", "score": %d.%d, "active": %v, `+
			`"tags": ["a", "b", "c"], "parent": null, "meta": {"depth": [%d, [%d, {"e": 1e%d}]]}}`,
			i, i, i, i%10, i%2 == 0, i, i+1, i%20)
	}
	sb.WriteString("\n]\n")
	return sb.String()
}
