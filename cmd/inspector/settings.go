// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cogentcore.org/inspector/base/fsx"
	"cogentcore.org/inspector/base/iox"
	"cogentcore.org/inspector/inspector"
)

func newSettingsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or initialize the settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := iox.WriteBytes(o.settings, iox.FormatFor(o.settingsPath).Encoder)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "#", o.settingsPath)
			_, err = out.Write(b)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := fsx.FileExists(o.settingsPath)
			if err != nil {
				return err
			}
			if ok && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite it", o.settingsPath)
			}
			if err := os.MkdirAll(filepath.Dir(o.settingsPath), 0o755); err != nil {
				return err
			}
			if err := inspector.DefaultSettings().Save(o.settingsPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", o.settingsPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
