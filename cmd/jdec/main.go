// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jdec decodes a JSON document and prints it, or a part of it, as
// canonical JSON.
//
// Usage:
//
//	jdec [flags] [file]
//
// If no file is named, jdec reads from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jdec"
	"github.com/creachadair/jdec/internal/config"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

type cli struct {
	File     string `arg:"" optional:"" type:"path" help:"Input file (default stdin)."`
	Config   string `short:"c" type:"path" help:"Path to a YAML settings file."`
	MaxDepth *int   `name:"max-depth" help:"Maximum nesting depth (<= 0 for unlimited)."`
	Lazy     bool   `short:"l" help:"Decode structure first, and classify only the selected value."`
	Path     string `short:"p" help:"Dotted path of the value to print, e.g. items.0.name. A numeric element selects an array offset, or the key with that text in an object."`
	Indent   bool   `short:"i" help:"Pretty-print the output."`
	Tokens   bool   `short:"t" help:"Print the token stream instead of decoding."`
	LogLevel string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "jdec: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var flags cli
	parser, err := kong.New(&flags,
		kong.Name("jdec"),
		kong.Description("Decode a JSON document and print it as canonical JSON."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, flags.LogLevel)

	cfg := config.New()
	if flags.Config != "" {
		cfg, err = config.Load(flags.Config)
		if err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "loaded config", "path", flags.Config)
	}
	flags.apply(cfg)

	input, err := readInput(flags.File, stdin)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "read input", "bytes", len(input))

	if flags.Tokens {
		return printTokens(stdout, jdec.Lex(input))
	}

	start := time.Now()
	v, err := decode(cfg, input, jdec.ParsePath(flags.Path))
	if err != nil {
		level.Error(logger).Log("msg", "decode failed", "err", err)
		return err
	}
	level.Info(logger).Log("msg", "decoded", "kind", v.Kind(), "lazy", cfg.Lazy, "elapsed", time.Since(start))
	if v.Kind() == jdec.InvalidKind {
		return errors.Errorf("path %q not found", flags.Path)
	}
	return writeValue(stdout, v, cfg.Indent)
}

// newLogger returns a logfmt logger that writes to w, filtered to lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowWarn()
	}
	return level.NewFilter(logger, opt)
}

// apply overrides settings in cfg with flags that were set.
func (c *cli) apply(cfg *config.Config) {
	if c.MaxDepth != nil {
		cfg.MaxDepth = *c.MaxDepth
	}
	cfg.Lazy = cfg.Lazy || c.Lazy
	cfg.Indent = cfg.Indent || c.Indent
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		return string(data), errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(data), nil
}

// decode decodes input and returns the value at path. An int path element
// applied to an object selects the key with the same text. In lazy mode only
// the selected subtree is materialized.
func decode(cfg *config.Config, input string, path []any) (jdec.Value, error) {
	dec := cfg.Decoder()
	if !cfg.Lazy {
		v, err := dec.Decode(input)
		if err != nil {
			return nil, err
		}
		for _, elt := range path {
			if n, ok := elt.(int); ok {
				if _, isObj := v.(jdec.Object); isObj {
					elt = strconv.Itoa(n)
				}
			}
			v = jdec.Path(v, elt)
		}
		return v, nil
	}
	lz, err := dec.DecodeLazy(input)
	if err != nil {
		return nil, err
	}
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			lz = lz.At(t)
		case int:
			if _, isObj := lz.(jdec.LazyObject); isObj {
				lz = lz.At(strconv.Itoa(t))
			} else {
				lz = lz.Index(t)
			}
		}
	}
	return jdec.Materialize(lz)
}

func writeValue(w io.Writer, v jdec.Value, indent bool) error {
	out := []byte(v.JSON())
	if indent {
		hv, err := hujson.Parse(out)
		if err != nil {
			return errors.Wrap(err, "format output")
		}
		hv.Format()
		hv.Standardize()
		out = bytes.TrimSpace(hv.Pack())
	}
	_, err := fmt.Fprintf(w, "%s\n", out)
	return err
}

func printTokens(w io.Writer, toks []jdec.Token) error {
	var sb strings.Builder
	for _, tok := range toks {
		fmt.Fprintf(&sb, "%d-%d\t%v\n", tok.Span.Pos, tok.Span.End, tok)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
