// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jdec"
	"github.com/creachadair/jdec/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jdec.yml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestNew(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, jdec.DefaultMaxDepth, cfg.MaxDepth)
	assert.False(t, cfg.Lazy)
	assert.False(t, cfg.Indent)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `
max_depth: 3
indent: true
`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.False(t, cfg.Lazy)
	assert.True(t, cfg.Indent)
}

func TestLoad_empty(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nonesuch.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, err = config.Load(writeFile(t, "max_depth: lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = config.Load(writeFile(t, "max_dpeth: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_dpeth")
}

func TestDecoder(t *testing.T) {
	cfg := config.New()
	cfg.MaxDepth = 2
	dec := cfg.Decoder()

	v, err := dec.Decode(`{"a": ["A"]}`)
	require.NoError(t, err)
	assert.Equal(t, jdec.Value(jdec.Object{"a": jdec.Array{jdec.String("A")}}), v)

	_, err = dec.Decode(`[[[]]]`)
	assert.ErrorIs(t, err, jdec.ErrMalformed)
}
