// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/model"
	"cogentcore.org/inspector/resolve"
	"cogentcore.org/inspector/surface"
	"cogentcore.org/inspector/tree"
)

// Node is a node in a composed inspector tree. All values that
// implement Node embed [NodeBase].
type Node interface {
	tree.Node

	// AsNode returns the [NodeBase] of this Node.
	AsNode() *NodeBase
}

// NodeBase is the common data of every node in a composed tree.
type NodeBase struct {
	tree.NodeBase

	// Member is the reflected member that the node represents,
	// or nil for structural nodes such as groups and the root.
	Member model.Member

	// Model is the model that Member belongs to, or the model
	// being composed for structural nodes.
	Model model.Model

	// Root is the root of the tree, shared by all nodes.
	Root *Root

	// DrawOrder is the key that siblings are stably sorted by.
	DrawOrder int

	// Decls are the declarations of the member, including its group
	// declarations sorted shortest-name-first. It is nil for structural nodes.
	Decls *meta.MemberDecls

	// Resolved is the group declaration that determines where the node
	// is attached, or nil for the ungrouped bucket. For a [Group],
	// it is the declaration of the group itself.
	Resolved *meta.GroupDecl

	// Tab is the name of the tab of a [meta.KindTabs] parent group
	// that the node is drawn in, or "".
	Tab string

	// Visual is the surface element that draws the node.
	Visual *surface.Element

	// Resolvers are the live resolvers of the node, or nil.
	Resolvers *resolve.Registry
}

// AsNode satisfies the [Node] interface.
func (n *NodeBase) AsNode() *NodeBase { return n }

// HasMember returns whether the node has a backing member.
func (n *NodeBase) HasMember() bool { return n.Member != nil }

// Groups returns the group declarations of the node.
func (n *NodeBase) Groups() []*meta.GroupDecl {
	if n.Decls == nil {
		return nil
	}
	return n.Decls.Groups
}

// resolvers returns the resolver registry, making it if needed.
func (n *NodeBase) resolvers() *resolve.Registry {
	if n.Resolvers == nil {
		name := n.Name
		if n.Member != nil {
			name = n.Member.AsMember().Path
		} else if n.Resolved != nil && n.Resolved.Name != "" {
			name = n.Resolved.Name
		}
		n.Resolvers = resolve.NewRegistry(n.Root.Inspector.Scheduler, name)
		n.Root.registries = append(n.Root.registries, n.Resolvers)
	}
	return n.Resolvers
}

// Destroy cancels the resolvers of the node and destroys it
// and all of its children.
func (n *NodeBase) Destroy() {
	n.Resolvers.Cancel()
	n.NodeBase.Destroy()
}

// AsNode returns the [NodeBase] of the given tree node, or nil.
func AsNode(n tree.Node) *NodeBase {
	if in, ok := n.(Node); ok {
		return in.AsNode()
	}
	return nil
}

// Leaf is a node for a field or property member. If the member value
// is expanded, its own members are composed as the children of the leaf.
type Leaf struct {
	NodeBase

	// Sub is the model of the expanded member value, or nil if the
	// member is drawn as a whole by the leaf factory.
	Sub model.Model
}

// Expanded returns whether the member value is expanded into children.
func (l *Leaf) Expanded() bool { return l.Sub != nil }

// MethodLeaf is a node for an invokable method member.
type MethodLeaf struct {
	NodeBase

	// Method is the method invoked on activation.
	Method *model.Method
}

// Group is a structural node for a declared group.
type Group struct {
	NodeBase

	// Ungrouped is whether this is the implicit bucket holding
	// the members with no group.
	Ungrouped bool

	// ContentElement is the element that ungrouped children are drawn in.
	ContentElement *surface.Element

	// Tabs are the named tab containers of a [meta.KindTabs] group.
	Tabs map[string]*surface.Element
}

// Kind returns the kind of the group.
func (g *Group) Kind() meta.GroupKind { return g.Resolved.Kind }

// tab returns the tab container with the given name, making it if needed.
func (g *Group) tab(name string) *surface.Element {
	if t, ok := g.Tabs[name]; ok {
		return t
	}
	if g.Tabs == nil {
		g.Tabs = map[string]*surface.Element{}
	}
	t := surface.New(g.Visual, surface.RoleTab, name)
	t.SetName(name)
	g.Tabs[name] = t
	return t
}

// Root is the root node of a composed tree.
type Root struct {
	NodeBase

	// Inspector is the inspector that composed the tree.
	Inspector *Inspector

	// Mount is the mount point that the tree is attached to, or nil.
	Mount *surface.Element

	// registries are all resolver registries made for the tree,
	// including those of nodes that never made it into the tree.
	registries []*resolve.Registry
}

// Destroy detaches the visual of the root from its mount point
// and destroys the tree, cancelling all resolvers.
func (r *Root) Destroy() {
	if r.Visual != nil {
		surface.Detach(r.Visual)
		r.Visual.Destroy()
	}
	r.Mount = nil
	for _, reg := range r.registries {
		reg.Cancel()
	}
	r.registries = nil
	r.NodeBase.Destroy()
}

// contentOf returns the element that the visuals of the children
// of the given node are attached to.
func contentOf(n tree.Node) *surface.Element {
	if g, ok := n.(*Group); ok {
		return g.ContentElement
	}
	return AsNode(n).Visual
}
