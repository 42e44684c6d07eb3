// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"image/color"

	"cogentcore.org/inspector/model"
	"cogentcore.org/inspector/resolve"
)

// visibility combines the show-if and hide-if conditions of one element.
type visibility struct {
	shown, notHidden bool
	set              func(visible bool)
}

func (v *visibility) show(b bool) {
	v.shown = b
	v.set(v.shown && v.notHidden)
}

func (v *visibility) hide(b bool) {
	v.notHidden = b
	v.set(v.shown && v.notHidden)
}

// bindResolvers registers the resolvers for the given source names on
// the given node, binding each name on the given model. An empty name
// is skipped. Binding a name that the model does not have is an error.
func (in *Inspector) bindResolvers(n *NodeBase, m model.Model, showIf, hideIf, labelFunc, tint string) error {
	source := func(name string) (model.Source, error) {
		src, err := m.Source(name)
		if err != nil {
			return nil, fmt.Errorf("binding source: %w", err)
		}
		return src, nil
	}
	e := n.Visual
	vis := &visibility{shown: true, notHidden: true, set: func(b bool) { e.Visible = b }}
	if showIf != "" {
		src, err := source(showIf)
		if err != nil {
			return err
		}
		n.resolvers().Register(resolve.Visible(showIf, src, false, vis.show))
	}
	if hideIf != "" {
		src, err := source(hideIf)
		if err != nil {
			return err
		}
		n.resolvers().Register(resolve.Visible(hideIf, src, true, vis.hide))
	}
	if labelFunc != "" {
		src, err := source(labelFunc)
		if err != nil {
			return err
		}
		n.resolvers().Register(resolve.Label(labelFunc, src, func(s string) { e.Label = s }))
	}
	if tint != "" {
		src, err := source(tint)
		if err != nil {
			return err
		}
		n.resolvers().Register(resolve.Tint(tint, src, func(c color.Color) { e.Tint = c }))
	}
	return nil
}

// bindMemberResolvers registers the resolvers declared on the member of
// the given node, binding the sources on the model that owns the member.
func (in *Inspector) bindMemberResolvers(n *NodeBase) error {
	d := n.Decls
	if !d.HasResolvers() {
		return nil
	}
	err := in.bindResolvers(n, n.Model, d.ShowIf, d.HideIf, d.LabelFunc, d.TintFunc)
	if err != nil {
		return fmt.Errorf("inspector: %s: %w", n.Member.AsMember().Path, err)
	}
	return nil
}
