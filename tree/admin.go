// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"

	"github.com/iancoleman/strcase"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node by setting [NodeBase.This] and
// calling [Node.Init]. It does nothing if the node is already initialized.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// NewRoot initializes and returns the given node as the root of a new tree
// with the given name. If the name is unspecified, it defaults to the
// kebab-case name of the type.
func NewRoot[T Node](n T, name ...string) T {
	InitNode(n)
	if len(name) > 0 {
		n.AsTree().SetName(name[0])
	} else {
		n.AsTree().SetName(TypeIDName(n))
	}
	return n
}

// TypeIDName returns the kebab-case name of the underlying type of the node.
func TypeIDName(n Node) string {
	typ := reflect.TypeOf(n)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return strcase.ToKebab(typ.Name())
}

// SetParent sets the parent of the given node, which must not have one,
// naming it after its type if it has no name, and calls [Node.OnAdd].
// It does not add the node to the children of the parent; see
// [NodeBase.AddChild] for that.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		pn.numLifetimeChildren++
		if n.Name == "" {
			n.Name = TypeIDName(child) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10) // must subtract 1 so we start at 0
		}
	}
	child.OnAdd()
}
