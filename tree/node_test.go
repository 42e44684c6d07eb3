// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/inspector/tree"
)

// nodeEmbed is a higher-level node type used to test embedding.
type nodeEmbed struct {
	NodeBase
	destroyed int
}

func (n *nodeEmbed) Destroy() {
	n.destroyed++
	n.NodeBase.Destroy()
}

func newNode(parent Node, name string) *NodeBase {
	n := &NodeBase{}
	n.SetName(name)
	if parent == nil {
		return NewRoot(n, name)
	}
	parent.AsTree().AddChild(n)
	return n
}

func TestNodeAddChild(t *testing.T) {
	parent := NewRoot(&NodeBase{})
	child := &NodeBase{}
	parent.AddChild(child)
	child.SetName("child1")
	assert.Equal(t, 1, len(parent.Children))
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/node-base/child1", child.Path())
}

func TestNodeAutoName(t *testing.T) {
	parent := NewRoot(&nodeEmbed{})
	c0 := &nodeEmbed{}
	c1 := &NodeBase{}
	parent.AddChild(c0)
	parent.AddChild(c1)
	assert.Equal(t, "node-embed", parent.Name)
	assert.Equal(t, "node-embed-0", c0.Name)
	assert.Equal(t, "node-base-1", c1.Name)
}

func TestNodeInsertChild(t *testing.T) {
	parent := newNode(nil, "par")
	a := newNode(parent, "a")
	c := newNode(parent, "c")
	b := &NodeBase{Name: "b"}
	parent.InsertChild(b, 1)
	assert.Equal(t, []Node{a, b, c}, parent.Children)
	assert.Equal(t, 1, b.IndexInParent())

	z := &NodeBase{Name: "z"}
	parent.InsertChild(z, 100)
	assert.Equal(t, 3, z.IndexInParent())
}

func TestNodeEscapePaths(t *testing.T) {
	parent := newNode(nil, "par1")
	child := newNode(parent, "child1.go")
	child2 := newNode(parent, "child1/child1")
	schild2 := newNode(child2, "subchild1")
	assert.Equal(t, `/par1/child1.go`, child.Path())
	assert.Equal(t, `/par1/child1\\child1`, child2.Path())
	assert.Equal(t, `/par1/child1\\child1/subchild1`, schild2.String())
	assert.Equal(t, "nil", (*NodeBase)(nil).String())
}

func TestNodeDestroy(t *testing.T) {
	parent := newNode(nil, "par1")
	child := &nodeEmbed{}
	child.SetName("child1")
	parent.AddChild(child)
	gc := newNode(child, "grandchild")
	parent.Destroy()
	assert.Len(t, parent.Children, 0)
	assert.Equal(t, 1, child.destroyed)
	assert.True(t, child.IsDestroyed())
	assert.True(t, gc.IsDestroyed())
	assert.True(t, parent.IsDestroyed())
	parent.Destroy()
	assert.Equal(t, 1, child.destroyed)
}

func TestNodeRemoveChild(t *testing.T) {
	parent := newNode(nil, "par1")
	child := newNode(parent, "child1")
	gc := newNode(child, "gc")
	assert.True(t, parent.RemoveChild(child))
	assert.Nil(t, child.Parent)
	assert.False(t, child.IsDestroyed())
	assert.Equal(t, Node(child), gc.Parent)
	assert.False(t, parent.RemoveChild(child))
}

func TestNodeWalk(t *testing.T) {
	root := newNode(nil, "root")
	a := newNode(root, "a")
	newNode(a, "a1")
	newNode(a, "a2")
	b := newNode(root, "b")
	newNode(b, "b1")

	var pre []string
	root.WalkDown(func(n Node) bool {
		pre = append(pre, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b", "b1"}, pre)

	var pruned []string
	root.WalkDown(func(n Node) bool {
		pruned = append(pruned, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b", "b1"}, pruned)

	var added []string
	root.WalkDown(func(n Node) bool {
		added = append(added, n.AsTree().Name)
		if n.AsTree().Name == "b" {
			newNode(n, "b2")
			n.AsTree().Child(0).Destroy()
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b", "b2"}, added)

	var up []string
	root.Child(0).AsTree().Child(1).AsTree().WalkUp(func(n Node) bool {
		up = append(up, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"a2", "a", "root"}, up)

	var stopped []string
	done := root.Child(0).AsTree().Child(1).AsTree().WalkUp(func(n Node) bool {
		stopped = append(stopped, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.False(t, done)
	assert.Equal(t, []string{"a2", "a"}, stopped)
}

func TestIndexOfStart(t *testing.T) {
	root := newNode(nil, "root")
	var kids []Node
	for _, nm := range []string{"a", "b", "c", "d", "e"} {
		kids = append(kids, newNode(root, nm))
	}
	for i, k := range kids {
		assert.Equal(t, i, IndexOf(root.Children, k, 2))
		assert.Equal(t, i, IndexOf(root.Children, k, 10))
		assert.Equal(t, i, IndexOf(root.Children, k, -3))
		assert.Equal(t, i, IndexOf(root.Children, k))
	}
	assert.Equal(t, -1, IndexOf(nil, root))
	assert.Equal(t, -1, IndexOf(root.Children, root, 1))
}
