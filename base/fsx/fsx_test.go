// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.toml")
	ok, err := FileExists(fn)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(fn, []byte("x = 1"), 0o644))
	ok, err = FileExists(fn)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.toml")
	other := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(fn, []byte("x = 1"), 0o644))

	changed := make(chan []string, 4)
	w, err := NewWatcher(func(files []string) { changed <- files }, fn)
	require.NoError(t, err)
	w.Delay = 20 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(other, []byte("y = 1"), 0o644))
	require.NoError(t, os.WriteFile(fn, []byte("x = 2"), 0o644))
	require.NoError(t, os.WriteFile(fn, []byte("x = 3"), 0o644))

	abs, err := filepath.Abs(fn)
	require.NoError(t, err)
	select {
	case files := <-changed:
		assert.Equal(t, []string{abs}, files)
	case <-time.After(5 * time.Second):
		t.Fatal("no change seen")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
