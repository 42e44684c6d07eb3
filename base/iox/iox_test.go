// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name  string
	Count int
	Tags  []string
}

func TestFormatFor(t *testing.T) {
	assert.Same(t, TOML, FormatFor("a.toml"))
	assert.Same(t, TOML, FormatFor("a"))
	assert.Same(t, YAML, FormatFor("a.YML"))
	assert.Same(t, YAML, FormatFor("dir/a.yaml"))
	assert.Same(t, JSON, FormatFor("a.json"))
}

func TestSaveOpenFile(t *testing.T) {
	dir := t.TempDir()
	want := &testSettings{Name: "gopher", Count: 3, Tags: []string{"a", "b"}}
	for _, name := range []string{"s.toml", "s.yaml", "s.json"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, SaveFile(want, fn), name)
		got := &testSettings{}
		require.NoError(t, OpenFile(got, fn), name)
		assert.Equal(t, want, got, name)
	}
	assert.Error(t, OpenFile(&testSettings{}, filepath.Join(dir, "missing.toml")))
}

func TestReadWriteBytes(t *testing.T) {
	b, err := WriteBytes(&testSettings{Name: "x"}, YAML.Encoder)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: x")
	got := &testSettings{}
	require.NoError(t, ReadBytes(got, b, YAML.Decoder))
	assert.Equal(t, "x", got.Name)
}
