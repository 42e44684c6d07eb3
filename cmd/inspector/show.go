// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cogentcore.org/inspector/base/fsx"
	"cogentcore.org/inspector/examples/demo"
	"cogentcore.org/inspector/inspector"
	"cogentcore.org/inspector/surface"
)

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the inspector view of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := demo.Open(args[0])
			if err != nil {
				return err
			}
			in := inspector.New(o.settings)
			mount := surface.NewMount("mount")
			if _, err := in.Inspect(mount, p); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, surface.Render(mount, surface.NewStyle(out, o.settings.Profile())))
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Write a new example project file",
		Long: `Write a new example project file. The format is determined by the
extension of the file: .toml, .yaml, or .json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := fsx.FileExists(args[0])
			if err != nil {
				return err
			}
			if ok && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite it", args[0])
			}
			if err := demo.Default().Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
