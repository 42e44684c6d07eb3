// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var b bytes.Buffer
	l := slog.New(NewHandler(&b, termenv.Ascii))
	l.Debug("hidden")
	l.Info("composed", "nodes", 3)
	l.With("root", "demo").WithGroup("rebuild").Warn("skipped", "err", errors.New("busy"))
	assert.Equal(t, "INFO composed nodes=3\nWARN skipped root=demo rebuild.err=busy\n", b.String())
}

func TestHandlerColor(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug

	var b bytes.Buffer
	slog.New(NewHandler(&b, termenv.ANSI)).Error("failed")
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "ERROR")
}
