// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"cogentcore.org/inspector/base/fsx"
	"cogentcore.org/inspector/base/logx"
	"cogentcore.org/inspector/inspector"
)

// defaultSettingsFile is where the settings are read from by default.
const defaultSettingsFile = "~/.config/inspector/settings.toml"

// options are the global options shared by all commands.
type options struct {
	vv, v, q bool

	settingsFile string

	// settingsPath is settingsFile with the home directory expanded.
	settingsPath string

	settings *inspector.Settings
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "inspector",
		Short: "Inspect and edit project files",
		Long: `Inspector composes a tree of grouped, conditionally visible controls
from the declarations on a Go type, and shows it for a project file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
			logx.SetDefaultLogger()
			return o.loadSettings()
		},
	}
	f := cmd.PersistentFlags()
	f.BoolVar(&o.vv, "vv", false, "show debug messages")
	f.BoolVarP(&o.v, "verbose", "v", false, "show info messages")
	f.BoolVarP(&o.q, "quiet", "q", false, "only show errors")
	f.StringVar(&o.settingsFile, "settings", defaultSettingsFile, "the settings file (TOML, YAML, or JSON)")

	cmd.AddCommand(newShowCmd(o), newTUICmd(o), newNewCmd(), newSettingsCmd(o))
	return cmd
}

// loadSettings loads the settings file if it exists,
// and otherwise uses the default settings.
func (o *options) loadSettings() error {
	path, err := homedir.Expand(o.settingsFile)
	if err != nil {
		return fmt.Errorf("settings file %q: %w", o.settingsFile, err)
	}
	o.settingsPath = path
	ok, err := fsx.FileExists(path)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("using default settings", "missing", path)
		o.settings = inspector.DefaultSettings()
		return nil
	}
	s, err := inspector.OpenSettings(path)
	if err != nil {
		return err
	}
	slog.Info("loaded settings", "file", path)
	o.settings = s
	return nil
}
