// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config defines the settings file for the jdec command-line tool.
package config

import (
	"io"
	"os"

	"github.com/creachadair/jdec"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the jdec tool.
type Config struct {
	MaxDepth int  `yaml:"max_depth"` // <= 0 means unlimited
	Lazy     bool `yaml:"lazy"`
	Indent   bool `yaml:"indent"`
}

// New returns a Config with default values.
func New() *Config { return &Config{MaxDepth: jdec.DefaultMaxDepth} }

// Load reads a YAML settings file from path. Settings absent from the file
// keep their default values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	defer f.Close()

	cfg := New()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// Decoder returns a jdec.Decoder with the settings of c.
func (c *Config) Decoder() *jdec.Decoder {
	d := jdec.NewDecoder()
	d.SetMaxDepth(c.MaxDepth)
	return d
}
