// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface provides the host visual surface that composed
// inspector trees are attached to: a tree of [Element] nodes that
// can be activated, edited, and rendered as text.
package surface

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/tree"
)

// Role is the role of an [Element] on the surface.
type Role int32

const (
	// RoleMount is a mount point that inspector roots are attached to.
	RoleMount Role = iota

	// RoleContainer is a group container, laid out by its [meta.GroupKind].
	RoleContainer

	// RoleContent is the content node of a container, holding its children.
	RoleContent

	// RoleTab is a named tab of a tabbed container.
	RoleTab

	// RoleEditor is an editable value.
	RoleEditor

	// RoleDisplay is a read-only value.
	RoleDisplay

	// RoleButton is a button that invokes an action.
	RoleButton
)

var roleNames = [...]string{"mount", "container", "content", "tab", "editor", "display", "button"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", r)
	}
	return roleNames[r]
}

// ErrReadOnly is returned when changing the value of a read-only element.
var ErrReadOnly = errors.New("element is read-only")

// Element is one visual node on the surface.
type Element struct {
	tree.NodeBase

	// Role is the role of the element.
	Role Role

	// Kind is the layout kind of a container.
	Kind meta.GroupKind

	// Label is the label text.
	Label string

	// Text is the current value text of an editor or display,
	// updated from [Element.Value] on [Element.Refresh].
	Text string

	// Doc is the tooltip documentation.
	Doc string

	// Visible is whether the element and its children are drawn.
	Visible bool

	// Tint is an optional color for the label, or nil.
	Tint color.Color

	// Open is whether a collapsible container shows its content.
	Open bool

	// Active is the index of the selected tab of a tabbed container.
	Active int

	// ReadOnly is whether the value can not be changed.
	ReadOnly bool

	// Value returns the current value text, if set.
	Value func() (string, error) `display:"-"`

	// OnActivate is called when the element is activated, such as a
	// button being pressed.
	OnActivate func() error `display:"-"`

	// OnChange is called with a new value for an editor.
	OnChange func(v string) error `display:"-"`
}

// Init sets the defaults of the element.
func (e *Element) Init() {
	e.Visible = true
	e.Open = true
}

// New returns a new element with the given role and label, added
// to the given parent if it is non-nil.
func New(parent *Element, role Role, label string) *Element {
	e := &Element{Role: role, Label: label}
	if parent == nil {
		return tree.NewRoot(e)
	}
	parent.AddChild(e)
	return e
}

// NewMount returns a new mount point with the given name.
func NewMount(name string) *Element {
	return tree.NewRoot(&Element{Role: RoleMount}, name)
}

// AsElement returns the element for the given node, or nil.
func AsElement(n tree.Node) *Element {
	e, _ := n.(*Element)
	return e
}

// Activate activates the element. A collapsible container with no
// activation function toggles its open state.
func (e *Element) Activate() error {
	if e.OnActivate != nil {
		return e.OnActivate()
	}
	if e.Role == RoleContainer && e.Kind == meta.KindCollapsible {
		e.Open = !e.Open
	}
	return nil
}

// Change sets a new value on an editor.
func (e *Element) Change(v string) error {
	if e.ReadOnly || e.OnChange == nil {
		return fmt.Errorf("surface: %s: %w", e.Label, ErrReadOnly)
	}
	if err := e.OnChange(v); err != nil {
		return err
	}
	e.refresh()
	return nil
}

// Tabs returns the tab elements of a tabbed container.
func (e *Element) Tabs() []*Element {
	var tabs []*Element
	for _, k := range e.Children {
		if ke := AsElement(k); ke != nil && ke.Role == RoleTab {
			tabs = append(tabs, ke)
		}
	}
	return tabs
}

// ActiveTab returns the selected tab of a tabbed container, or nil.
func (e *Element) ActiveTab() *Element {
	tabs := e.Tabs()
	if e.Active < 0 || e.Active >= len(tabs) {
		return nil
	}
	return tabs[e.Active]
}

// SelectTab selects the tab with the given name, returning false
// if there is no such tab.
func (e *Element) SelectTab(name string) bool {
	for i, t := range e.Tabs() {
		if t.Name == name {
			e.Active = i
			return true
		}
	}
	return false
}

func (e *Element) refresh() {
	if e.Value == nil {
		return
	}
	s, err := e.Value()
	if err != nil {
		e.Text = "<" + err.Error() + ">"
		return
	}
	e.Text = s
}

// Refresh updates the value text of the element and all of its children.
func (e *Element) Refresh() {
	e.WalkDown(func(n tree.Node) bool {
		if ke := AsElement(n); ke != nil {
			ke.refresh()
		}
		return tree.Continue
	})
}

// Detach removes the element from its parent without destroying it,
// returning the index it had in the parent, or -1 if it had no parent.
func Detach(e *Element) int {
	if e.Parent == nil {
		return -1
	}
	idx := e.IndexInParent()
	e.Parent.AsTree().RemoveChild(e)
	return idx
}

// Shown returns whether the element and all of its parents are visible,
// and every collapsible parent is open.
func (e *Element) Shown() bool {
	shown := true
	e.WalkUp(func(n tree.Node) bool {
		ke := AsElement(n)
		if ke == nil {
			return tree.Continue
		}
		if !ke.Visible || (ke != e && ke.Role == RoleContainer && ke.Kind == meta.KindCollapsible && !ke.Open) {
			shown = false
			return tree.Break
		}
		return tree.Continue
	})
	return shown
}

// Focusables returns the shown elements under the given one that can be
// activated or edited, in draw order: buttons, editors, collapsible
// containers, and tabbed containers.
func Focusables(root *Element) []*Element {
	var res []*Element
	root.WalkDown(func(n tree.Node) bool {
		e := AsElement(n)
		if e == nil {
			return tree.Continue
		}
		if !e.Visible {
			return tree.Break
		}
		switch {
		case e.Role == RoleButton, e.Role == RoleEditor && !e.ReadOnly:
			res = append(res, e)
		case e.Role == RoleContainer && (e.Kind == meta.KindCollapsible || e.Kind == meta.KindTabs):
			res = append(res, e)
			if e.Kind == meta.KindCollapsible && !e.Open {
				return tree.Break
			}
		case e.Role == RoleTab:
			if p := AsElement(e.Parent); p != nil && p.ActiveTab() != e {
				return tree.Break
			}
		}
		return tree.Continue
	})
	return res
}
