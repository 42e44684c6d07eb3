// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/meta"
)

func plain() *Style {
	return NewStyle(io.Discard, termenv.Ascii)
}

func TestElementDefaults(t *testing.T) {
	m := NewMount("mount")
	assert.Equal(t, "mount", m.Name)
	assert.True(t, m.Visible)
	assert.Equal(t, RoleMount, m.Role)
	e := New(m, RoleEditor, "Name")
	assert.True(t, e.Visible)
	assert.Same(t, m, e.Parent)
	assert.Equal(t, "editor", e.Role.String())
	assert.Equal(t, "Role(42)", Role(42).String())
}

func TestChange(t *testing.T) {
	m := NewMount("mount")
	value := "a"
	e := New(m, RoleEditor, "Name")
	e.Value = func() (string, error) { return value, nil }
	e.OnChange = func(v string) error {
		if v == "" {
			return errors.New("empty")
		}
		value = v
		return nil
	}
	m.Refresh()
	assert.Equal(t, "a", e.Text)
	require.NoError(t, e.Change("b"))
	assert.Equal(t, "b", e.Text)
	assert.Error(t, e.Change(""))

	e.ReadOnly = true
	assert.ErrorIs(t, e.Change("c"), ErrReadOnly)
	d := New(m, RoleDisplay, "Total")
	assert.ErrorIs(t, d.Change("c"), ErrReadOnly)
}

func TestActivate(t *testing.T) {
	m := NewMount("mount")
	pressed := 0
	b := New(m, RoleButton, "Go")
	b.OnActivate = func() error { pressed++; return nil }
	require.NoError(t, b.Activate())
	assert.Equal(t, 1, pressed)

	c := New(m, RoleContainer, "More")
	c.Kind = meta.KindCollapsible
	require.NoError(t, c.Activate())
	assert.False(t, c.Open)
	require.NoError(t, c.Activate())
	assert.True(t, c.Open)
}

func TestDetach(t *testing.T) {
	m := NewMount("mount")
	a := New(m, RoleEditor, "A")
	b := New(m, RoleEditor, "B")
	assert.Equal(t, 1, Detach(b))
	assert.Nil(t, b.Parent)
	assert.False(t, b.IsDestroyed())
	assert.Equal(t, 1, m.NumChildren())
	assert.Same(t, a, AsElement(m.Child(0)))
	assert.Equal(t, -1, Detach(b))
}

func TestRender(t *testing.T) {
	st := plain()
	m := NewMount("mount")
	box := New(m, RoleContainer, "Main")
	box.Kind = meta.KindBox
	name := New(box, RoleEditor, "Name")
	name.Text = "gopher"
	total := New(box, RoleDisplay, "Total")
	total.Text = "3"
	New(m, RoleButton, "Reset")

	out := Render(m, st)
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "Name gopher")
	assert.Contains(t, out, "Total 3")
	assert.Contains(t, out, "[ Reset ]")
	assert.Contains(t, out, "╭")
	assert.Less(t, strings.Index(out, "Name"), strings.Index(out, "Total"))

	total.Visible = false
	assert.NotContains(t, Render(m, st), "Total")
	box.Visible = false
	assert.NotContains(t, Render(m, st), "Name")
}

func TestRenderTint(t *testing.T) {
	st := NewStyle(io.Discard, termenv.TrueColor)
	m := NewMount("mount")
	e := New(m, RoleEditor, "Warn")
	e.Tint = color.RGBA{R: 255, A: 255}
	assert.Contains(t, Render(m, st), "38;2;255;0;0")
}

func TestRenderCollapsibleTabs(t *testing.T) {
	st := plain()
	m := NewMount("mount")
	c := New(m, RoleContainer, "Advanced")
	c.Kind = meta.KindCollapsible
	New(c, RoleEditor, "Depth").Text = "4"
	assert.Contains(t, Render(m, st), "▾ Advanced")
	assert.Contains(t, Render(m, st), "  Depth 4")
	c.Open = false
	assert.Contains(t, Render(m, st), "▸ Advanced")
	assert.NotContains(t, Render(m, st), "Depth")

	tabs := New(m, RoleContainer, "Settings")
	tabs.Kind = meta.KindTabs
	gen := New(tabs, RoleTab, "General")
	gen.SetName("General")
	New(gen, RoleEditor, "Title").Text = "x"
	adv := New(tabs, RoleTab, "Expert")
	adv.SetName("Expert")
	New(adv, RoleEditor, "Seed").Text = "7"

	out := Render(m, st)
	assert.Contains(t, out, "[General]")
	assert.Contains(t, out, "Title x")
	assert.NotContains(t, out, "Seed")
	assert.True(t, tabs.SelectTab("Expert"))
	assert.False(t, tabs.SelectTab("Nope"))
	out = Render(m, st)
	assert.Contains(t, out, "[Expert]")
	assert.Contains(t, out, "Seed 7")
	assert.NotContains(t, out, "Title")
}

func TestFocusables(t *testing.T) {
	m := NewMount("mount")
	a := New(m, RoleEditor, "A")
	New(m, RoleDisplay, "B")
	ro := New(m, RoleEditor, "C")
	ro.ReadOnly = true
	c := New(m, RoleContainer, "More")
	c.Kind = meta.KindCollapsible
	inner := New(c, RoleButton, "Run")
	hidden := New(m, RoleButton, "Hidden")
	hidden.Visible = false

	assert.Equal(t, []*Element{a, c, inner}, Focusables(m))
	assert.True(t, inner.Shown())
	c.Open = false
	assert.Equal(t, []*Element{a, c}, Focusables(m))
	assert.False(t, inner.Shown())
	assert.True(t, c.Shown())
	assert.False(t, hidden.Shown())
}
