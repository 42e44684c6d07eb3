// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be initialized by one of [NewRoot], [NodeBase.AddChild],
// [NodeBase.InsertChild], or [InitNode], which set [NodeBase.This]
// and call [Node.Init].
type NodeBase struct {

	// Name is the name of this node, which is typically unique among its
	// siblings. If not otherwise set, it defaults to the kebab-case name of
	// the node type combined with the number of children that have ever
	// been added to the parent.
	Name string

	// This is the value of this Node as its true underlying type, so that
	// methods defined on NodeBase can call the methods of higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `display:"-"`

	// Parent is the parent of this node, set when the node is added
	// as a child. Nodes can only have one parent at a time.
	Parent Node `display:"-"`

	// Children is the list of children of this node. Use the child
	// methods of NodeBase to change it, so that parents stay consistent.
	Children []Node `display:"-"`

	// numLifetimeChildren is the number of children that have ever been
	// added to this node, for automatic naming.
	numLifetimeChildren uint64

	// index is the last known index of this node in its parent,
	// the starting point of the next search in [NodeBase.IndexInParent].
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of the node.
func (n *NodeBase) SetName(name string) {
	n.Name = name
}

// IndexInParent returns the index of the node in its parent,
// or -1 if it has no parent. The search starts at the last
// known index, so repeated calls are fast.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	n.index = IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	return n.index
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child at the given index, or nil if the
// index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Path returns the path to this node from the tree root, using the
// names of the nodes separated by / delimiters. Any / in a name
// is escaped to \\.
func (n *NodeBase) Path() string {
	name := strings.ReplaceAll(n.Name, "/", `\\`)
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + name
	}
	return "/" + name
}

// AddChild adds the given child at the end of the children.
// The child must not have a parent.
func (n *NodeBase) AddChild(kid Node) {
	n.InsertChild(kid, len(n.Children))
}

// InsertChild adds the given child at the given index, clamped
// to the range of the children. The child must not have a parent.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// RemoveChild removes the given child from the children without
// destroying it, clearing its parent. It returns false if the
// child is not found.
func (n *NodeBase) RemoveChild(kid Node) bool {
	if kid == nil {
		return false
	}
	idx := IndexOf(n.Children, kid)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	return true
}

// DeleteChildren destroys all of the children.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid != nil {
			kid.Destroy()
		}
	}
}

// Destroy destroys all of the children, recursively,
// and marks the node as destroyed.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.This == nil
}

const (
	// Continue can be returned from walk functions to keep walking.
	Continue = true

	// Break can be returned from walk functions to stop walking
	// the current branch.
	Break = false
)

// WalkUp calls the given function on the node and then on each of its
// parents in turn, until it returns [Break]. It returns whether the
// walk reached the root.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	for cur := n.This; cur != nil; cur = cur.AsTree().Parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the node and then on all of its
// descendants, depth first and in child order, sequentially in the
// current goroutine. It skips the children of a node for which the
// function returns [Break]. The children of a node are read after the
// function returns for it, so the function may add or destroy them.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := cur.AsTree()
		if cb.This == nil || !fun(cur) || cb.This == nil {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			if k := cb.Children[i]; k != nil {
				stack = append(stack, k)
			}
		}
	}
}

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
