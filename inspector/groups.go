// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/model"
	"cogentcore.org/inspector/surface"
	"cogentcore.org/inspector/tree"
)

// ErrKindConflict is returned when two declarations of the same group
// give different explicit kinds.
var ErrKindConflict = errors.New("conflicting group kinds")

// groupTable is the name-keyed lookup table of one group resolution pass.
type groupTable struct {
	names []string
	decls map[string]*meta.GroupDecl
}

// merge adds the given declaration to the table. A declaration with no
// explicit kind adopts the kind of the group, and the first non-empty
// order, tab, label, and source names win.
func (gt *groupTable) merge(d *meta.GroupDecl) error {
	cur, ok := gt.decls[d.Name]
	if !ok {
		cp := *d
		gt.decls[d.Name] = &cp
		gt.names = append(gt.names, d.Name)
		return nil
	}
	if d.KindSet {
		if cur.KindSet && cur.Kind != d.Kind {
			return fmt.Errorf("%w: group %q is both %v and %v", ErrKindConflict, d.Name, cur.Kind, d.Kind)
		}
		cur.Kind, cur.KindSet = d.Kind, true
	}
	if cur.Order == 0 {
		cur.Order = d.Order
	}
	first(&cur.Tab, d.Tab)
	first(&cur.Label, d.Label)
	first(&cur.ShowIf, d.ShowIf)
	first(&cur.HideIf, d.HideIf)
	first(&cur.LabelFunc, d.LabelFunc)
	return nil
}

func first(dst *string, s string) {
	if *dst == "" {
		*dst = s
	}
}

// ResolveGroups nests the given sibling nodes, which all belong to the
// same model, into the groups they declare and adds the result to the
// given owner. Every declaration of every sibling registers a group, so
// that a chain of nested names resolves even if no sibling is attached
// to an intermediate group. Each sibling is attached to its resolved
// group, or to the ungrouped bucket, which is only made if needed.
// A group whose parent name is not registered is added to the owner.
func (in *Inspector) ResolveGroups(siblings []Node, owner Node) error {
	if len(siblings) == 0 {
		return nil
	}
	m := siblings[0].AsNode().Model
	root := owner.AsNode().Root

	gt := &groupTable{decls: map[string]*meta.GroupDecl{}}
	needUngrouped := false
	for _, s := range siblings {
		sb := s.AsNode()
		if sb.Resolved == nil {
			needUngrouped = true
			continue
		}
		for _, d := range sb.Groups() {
			if err := gt.merge(d); err != nil {
				return err
			}
		}
	}

	groups := make(map[string]*Group, len(gt.names))
	for _, name := range gt.names {
		g, err := in.newGroup(gt.decls[name], root, m, false)
		if err != nil {
			return err
		}
		groups[name] = g
	}

	var top []Node
	for _, name := range gt.names {
		g := groups[name]
		parent, ok := groups[g.Resolved.ParentName]
		if g.Resolved.ParentName == "" || !ok {
			top = append(top, g)
			continue
		}
		addToGroup(parent, g, placementTab(g.Resolved))
	}

	var bucket *Group
	if needUngrouped {
		td := m.TypeDecls()
		d := &meta.GroupDecl{Kind: td.Kind, KindSet: true, Order: td.UngroupedOrder, Label: td.Label}
		g, err := in.newGroup(d, root, m, true)
		if err != nil {
			return err
		}
		bucket = g
	}

	for _, s := range siblings {
		sb := s.AsNode()
		if sb.Resolved == nil {
			bucket.AddChild(s)
			continue
		}
		addToGroup(groups[sb.Resolved.Name], s, sb.Resolved.Tab)
	}

	ob := owner.AsTree()
	for _, g := range top {
		ob.AddChild(g)
	}
	if bucket != nil {
		ob.AddChild(bucket)
	}
	return nil
}

// placementTab returns the tab of the parent group that the group with
// the given merged declaration is drawn in. The tab of a tabbed group
// names the tab of its own members, so a tabbed group has none.
func placementTab(d *meta.GroupDecl) string {
	if d.Kind == meta.KindTabs {
		return ""
	}
	return d.Tab
}

// addToGroup adds the given child to the given group, in the given
// tab if the group is tabbed.
func addToGroup(g *Group, child Node, tab string) {
	if g.Kind() == meta.KindTabs {
		child.AsNode().Tab = tab
	}
	g.AddChild(child)
}

// newGroup returns a new group node for the given merged declaration,
// with its visual container and resolvers.
func (in *Inspector) newGroup(d *meta.GroupDecl, root *Root, m model.Model, ungrouped bool) (*Group, error) {
	if !d.Kind.IsValid() {
		return nil, fmt.Errorf("inspector: group %q: %w %d", d.Name, meta.ErrUnknownKind, int32(d.Kind))
	}
	g := &Group{Ungrouped: ungrouped}
	tree.InitNode(g)
	name := d.LastName()
	if ungrouped {
		name = "ungrouped"
	}
	g.SetName(name)
	g.Root = root
	g.Model = m
	g.Resolved = d
	g.DrawOrder = d.Order
	g.Visual = surface.New(nil, surface.RoleContainer, d.Title())
	g.Visual.Kind = d.Kind
	g.Visual.SetName(name)
	g.ContentElement = surface.New(g.Visual, surface.RoleContent, "")
	g.ContentElement.SetName("content")
	err := in.bindResolvers(&g.NodeBase, m, d.ShowIf, d.HideIf, d.LabelFunc, "")
	if err != nil {
		return nil, fmt.Errorf("inspector: group %q: %w", d.Name, err)
	}
	return g, nil
}
