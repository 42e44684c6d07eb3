// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspector composes a visual tree for a Go value from the
// declarations on its type and members, nests the members into declared
// groups, keeps resolvers for visibility, labels, and tints live, and
// rebuilds the tree in place when the value changes.
package inspector

import (
	"cmp"
	"log/slog"
	"slices"

	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/model"
	"cogentcore.org/inspector/resolve"
	"cogentcore.org/inspector/surface"
	"cogentcore.org/inspector/tree"
)

// Inspector composes and rebuilds inspector trees. Composition and
// rebuilding are synchronous and must happen on one goroutine, together
// with the ticks of the [Inspector.Scheduler].
type Inspector struct {

	// Settings are the user settings.
	Settings *Settings

	// Context is the introspection context shared by all models.
	Context *model.Context

	// Factory makes the elements for members that are drawn as a whole.
	Factory LeafFactory

	// Scheduler runs the resolvers of all composed trees.
	Scheduler *resolve.Scheduler

	// OnRebuild is called after a tree is rebuilt, with the old root,
	// which is destroyed, and the new one.
	OnRebuild func(old, root *Root)

	rebuilding bool
}

// New returns a new [Inspector] with the given settings, using the
// default settings if they are nil. It uses a new default [Factory]
// whose renderer types are registered on the introspection context.
func New(settings *Settings) *Inspector {
	if settings == nil {
		settings = DefaultSettings()
	}
	f := NewFactory()
	ctx := model.NewContext()
	ctx.SentenceCase = settings.SentenceCase
	ctx.RegisterRenderer(f.Types()...)
	return &Inspector{Settings: settings, Context: ctx, Factory: f, Scheduler: resolve.NewScheduler()}
}

// Model returns a new model over the given pointer to a struct.
func (in *Inspector) Model(target any) (*model.Struct, error) {
	return model.New(in.Context, target)
}

// Inspect composes a tree for the given pointer to a struct and
// attaches it at the end of the given mount point.
func (in *Inspector) Inspect(mount *surface.Element, target any) (*Root, error) {
	m, err := in.Model(target)
	if err != nil {
		return nil, err
	}
	return in.Mount(mount, m)
}

// Mount composes a tree for the given model and attaches it
// at the end of the given mount point.
func (in *Inspector) Mount(mount *surface.Element, m model.Model) (*Root, error) {
	root, err := in.Compose(m)
	if err != nil {
		return nil, err
	}
	in.attach(root, mount, -1)
	return root, nil
}

// Compose composes a new tree for the given model: it makes leaves for
// the fields, methods, and properties, nests them into their groups,
// stably sorts the children at every level by draw order, and builds the
// visual tree. The returned root is not attached to any mount point.
// An invalid group kind or an unbound source name is an error.
func (in *Inspector) Compose(m model.Model) (*Root, error) {
	root := &Root{Inspector: in}
	root.Root = root
	root.Model = m
	tree.NewRoot(root, "root")
	root.Visual = surface.New(nil, surface.RoleContent, "")
	root.Visual.SetName(root.Name)
	if err := in.composeMembers(root, m); err != nil {
		root.Destroy()
		return nil, err
	}
	sortChildren(root)
	attachChildren(root)
	if c, ok := m.(interface{ NumPending() int }); ok && c.NumPending() > 0 {
		slog.Debug("composed with pending writes", "pending", c.NumPending())
	}
	return root, nil
}

// composeMembers makes the leaves for the members of the given model and
// resolves their groups under the given owner.
func (in *Inspector) composeMembers(owner Node, m model.Model) error {
	var siblings []Node
	for _, f := range m.Fields() {
		l, err := in.newLeaf(owner, m, f)
		if err != nil {
			return err
		}
		siblings = append(siblings, l)
	}
	if in.Settings.ShowMethods {
		for _, mt := range m.Methods() {
			ml, err := in.newMethodLeaf(owner, m, mt)
			if err != nil {
				return err
			}
			siblings = append(siblings, ml)
		}
	}
	if in.Settings.ShowProperties {
		for _, p := range m.Properties() {
			l, err := in.newLeaf(owner, m, p)
			if err != nil {
				return err
			}
			siblings = append(siblings, l)
		}
	}
	return in.ResolveGroups(siblings, owner)
}

// initMember sets the member fields of a new node.
func initMember(n Node, owner Node, m model.Model, mem model.Member) {
	nb := n.AsNode()
	mb := mem.AsMember()
	tree.InitNode(n)
	nb.SetName(mb.Name)
	nb.Member = mem
	nb.Model = m
	nb.Root = owner.AsNode().Root
	nb.Decls = mb.Decls
	nb.DrawOrder = mb.Decls.Order
	nb.Resolved = mb.Decls.Resolved()
}

// newLeaf makes a leaf for the given field or property, expanding its
// value into child nodes if the model provides a sub-model for it.
func (in *Inspector) newLeaf(owner Node, m model.Model, mem model.Member) (*Leaf, error) {
	l := &Leaf{}
	initMember(l, owner, m, mem)
	mb := mem.AsMember()
	if sub, ok := m.Sub(mem); ok {
		l.Sub = sub
		l.Visual = surface.New(nil, surface.RoleContainer, mb.Label)
		l.Visual.Kind = meta.KindCollapsible
		l.Visual.Doc = mb.Decls.Doc
		l.Visual.SetName(mb.Path)
		if err := in.composeMembers(l, sub); err != nil {
			return nil, err
		}
	} else {
		e, err := in.Factory.CreateLeaf(mem)
		if err != nil {
			return nil, err
		}
		l.Visual = e
		in.bindChange(&l.NodeBase)
	}
	if err := in.bindMemberResolvers(&l.NodeBase); err != nil {
		return nil, err
	}
	return l, nil
}

// newMethodLeaf makes a leaf for the given method.
func (in *Inspector) newMethodLeaf(owner Node, m model.Model, mt *model.Method) (*MethodLeaf, error) {
	ml := &MethodLeaf{Method: mt}
	initMember(ml, owner, m, mt)
	e, err := in.Factory.CreateActionLeaf(mt)
	if err != nil {
		return nil, err
	}
	ml.Visual = e
	in.bindActivate(&ml.NodeBase)
	if err := in.bindMemberResolvers(&ml.NodeBase); err != nil {
		return nil, err
	}
	return ml, nil
}

// bindChange commits the model after every change of the leaf value,
// or rebuilds the tree if the member is declared to rebuild on change.
func (in *Inspector) bindChange(n *NodeBase) {
	e := n.Visual
	change := e.OnChange
	if change == nil {
		return
	}
	e.OnChange = func(v string) error {
		if err := change(v); err != nil {
			return err
		}
		if n.Decls.Rebuild {
			_, err := in.Rebuild(n.Root)
			return err
		}
		if in.Settings.Deferred {
			return nil
		}
		return n.Model.Commit()
	}
}

// bindActivate rebuilds the tree after a method is invoked,
// if the method is declared to rebuild on invoke.
func (in *Inspector) bindActivate(n *NodeBase) {
	e := n.Visual
	activate := e.OnActivate
	if activate == nil || !n.Decls.Rebuild {
		return
	}
	e.OnActivate = func() error {
		if err := activate(); err != nil {
			return err
		}
		_, err := in.Rebuild(n.Root)
		return err
	}
}

// sortChildren stably sorts the children of the given node and all
// of its descendants by draw order.
func sortChildren(n tree.Node) {
	nb := n.AsTree()
	slices.SortStableFunc(nb.Children, func(a, b tree.Node) int {
		return cmp.Compare(AsNode(a).DrawOrder, AsNode(b).DrawOrder)
	})
	for _, k := range nb.Children {
		sortChildren(k)
	}
}

// attachChildren attaches the visuals of the children of the given node
// in order, and only then the visuals of their own children.
func attachChildren(n tree.Node) {
	kids := n.AsTree().Children
	for _, k := range kids {
		kn := AsNode(k)
		parent := contentOf(n)
		if g, ok := n.(*Group); ok && kn.Tab != "" {
			parent = g.tab(kn.Tab)
		}
		parent.AddChild(kn.Visual)
	}
	for _, k := range kids {
		attachChildren(k)
	}
}

// attach attaches the visual of the given root to the given mount point
// at the given index, or at the end if the index is negative.
func (in *Inspector) attach(root *Root, mount *surface.Element, index int) {
	if index < 0 {
		mount.AddChild(root.Visual)
	} else {
		mount.InsertChild(root.Visual, index)
	}
	root.Mount = mount
}
