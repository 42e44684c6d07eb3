// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/fsx"
	"cogentcore.org/inspector/base/iox"
	"cogentcore.org/inspector/examples/demo"
	"cogentcore.org/inspector/inspector"
	"cogentcore.org/inspector/surface"
	"cogentcore.org/inspector/tui"
)

func newTUICmd(o *options) *cobra.Command {
	var watch, save bool
	cmd := &cobra.Command{
		Use:   "tui FILE",
		Short: "Edit a project file in an interactive terminal view",
		Long: `Edit a project file in an interactive terminal view.

With --watch, the view is rebuilt whenever the file changes on disk.
With --save, the edited project is written back to the file on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			p, err := demo.Open(file)
			if err != nil {
				return err
			}
			in := inspector.New(o.settings)
			mount := surface.NewMount("mount")
			root, err := in.Inspect(mount, p)
			if err != nil {
				return err
			}
			m := tui.New(in, mount, root, surface.NewStyle(cmd.OutOrStdout(), o.settings.Profile()))
			prog := tui.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

			if watch {
				w, err := fsx.NewWatcher(func(files []string) {
					slog.Info("reloading", "file", file)
					prog.Send(tui.ReloadMsg{Load: func() error { return iox.OpenFile(p, file) }})
				}, file)
				if err != nil {
					return err
				}
				if err := w.Start(); err != nil {
					return err
				}
				defer func() { errors.Log(w.Stop()) }()
			}

			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("running terminal view: %w", err)
			}
			if !save {
				return nil
			}
			if fm, ok := final.(tui.Model); ok {
				if err := in.Apply(fm.Root()); err != nil {
					return err
				}
			}
			return p.Save(file)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild the view when the file changes")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the project on exit")
	return cmd
}
