// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/examples/demo"
	"cogentcore.org/inspector/inspector"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func asciiSettings(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := inspector.DefaultSettings()
	s.Theme = "ascii"
	require.NoError(t, s.Save(fn))
	return fn
}

func TestNewAndShow(t *testing.T) {
	settings := asciiSettings(t)
	fn := filepath.Join(t.TempDir(), "project.yaml")

	out, err := run(t, "--settings", settings, "new", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	_, err = run(t, "--settings", settings, "new", fn)
	assert.ErrorContains(t, err, "already exists")
	_, err = run(t, "--settings", settings, "new", "--force", fn)
	assert.NoError(t, err)

	p, err := demo.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, demo.Default().Name, p.Name)

	out, err = run(t, "--settings", settings, "show", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "inspector v0.1.0 by Ada")
	assert.Contains(t, out, "Bump version")
	assert.NotContains(t, out, "\x1b[")
}

func TestShowMissing(t *testing.T) {
	_, err := run(t, "--settings", asciiSettings(t), "show", filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	_, err = run(t, "show")
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config", "settings.toml")

	out, err := run(t, "--settings", fn, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, fn)
	assert.Contains(t, out, "100ms")

	_, err = run(t, "--settings", fn, "settings", "init")
	require.NoError(t, err)
	s, err := inspector.OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, inspector.DefaultSettings(), s)

	_, err = run(t, "--settings", fn, "settings", "init")
	assert.ErrorContains(t, err, "already exists")
}
