// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"log/slog"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/tree"
)

// Apply commits all staged edits of the tree to its backing object.
func (in *Inspector) Apply(root *Root) error {
	return root.Model.Commit()
}

// Rebuild replaces the given tree with a new one composed over the same
// backing object, attached at the same place in the same mount point.
// It commits any staged edits first, and destroys the old tree, which
// cancels all of its resolvers. It returns the new root. A rebuild
// requested while another rebuild is in progress is ignored, and
// returns the given root. If the new tree can not be composed, the old
// tree is kept attached and returned with the error.
func (in *Inspector) Rebuild(old *Root) (*Root, error) {
	if in.rebuilding {
		slog.Debug("ignoring reentrant rebuild", "root", old.Name)
		return old, nil
	}
	if old.IsDestroyed() {
		return nil, fmt.Errorf("inspector: can not rebuild a destroyed tree")
	}
	in.rebuilding = true
	defer func() { in.rebuilding = false }()

	if err := old.Model.Commit(); err != nil {
		return old, fmt.Errorf("inspector: committing before rebuild: %w", err)
	}
	root, err := in.Compose(old.Model.Snapshot())
	if err != nil {
		return old, fmt.Errorf("inspector: rebuild: %w", err)
	}
	mount := old.Mount
	index := -1
	if mount != nil {
		index = old.Visual.IndexInParent()
	}
	old.Destroy()
	if mount != nil {
		in.attach(root, mount, index)
	}
	slog.Debug("rebuilt inspector", "root", root.Name, "nodes", countNodes(root))
	if in.OnRebuild != nil {
		errors.Log(callRebuild(in.OnRebuild, old, root))
	}
	return root, nil
}

func callRebuild(f func(old, root *Root), old, root *Root) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("inspector: OnRebuild: %v", r)
		}
	}()
	f(old, root)
	return nil
}

func countNodes(root *Root) int {
	n := 0
	root.WalkDown(func(tree.Node) bool {
		n++
		return tree.Continue
	})
	return n
}
