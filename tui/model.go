// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui is a terminal host for inspector trees, built on bubbletea.
// It drives the resolver ticks from its own frame loop, so composition,
// resolvers, and rebuilds all run on the bubbletea goroutine.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cogentcore.org/inspector/inspector"
	"cogentcore.org/inspector/surface"
)

// tickMsg drives one resolver tick.
type tickMsg time.Time

// ReloadMsg asks the host to run Load, which typically reloads the
// backing object from outside, and then rebuild the tree.
type ReloadMsg struct {
	Load func() error
}

// document is the state shared by all copies of a [Model].
type document struct {
	root *inspector.Root
}

// Model is the bubbletea model of the terminal host.
type Model struct {
	in    *inspector.Inspector
	mount *surface.Element
	doc   *document
	style *surface.Style

	keys  keyMap
	help  help.Model
	input textinput.Model

	focus   int
	editing *surface.Element
	status  string
	width   int
}

// New returns a new [Model] showing the given tree, which must be
// attached to the given mount point, rendered with the given style.
func New(in *inspector.Inspector, mount *surface.Element, root *inspector.Root, st *surface.Style) Model {
	doc := &document{root: root}
	prev := in.OnRebuild
	in.OnRebuild = func(old, root *inspector.Root) {
		doc.root = root
		if prev != nil {
			prev(old, root)
		}
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 40
	return Model{in: in, mount: mount, doc: doc, style: st, keys: defaultKeyMap(), help: help.New(), input: ti}
}

// Root returns the current tree.
func (m Model) Root() *inspector.Root { return m.doc.root }

// Focused returns the focused element, or nil.
func (m Model) Focused() *surface.Element {
	fs := surface.Focusables(m.mount)
	if len(fs) == 0 {
		return nil
	}
	return fs[min(max(m.focus, 0), len(fs)-1)]
}

// Editing returns whether a value is being edited.
func (m Model) Editing() bool { return m.editing != nil }

// Status returns the status line.
func (m Model) Status() string { return m.status }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.in.Settings.Interval(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.in.Scheduler.Tick()
		m.mount.Refresh()
		return m, m.tick()

	case ReloadMsg:
		if msg.Load != nil {
			if err := msg.Load(); err != nil {
				m.status = "reload: " + err.Error()
				return m, nil
			}
		}
		m.rebuild()
		return m, nil

	case tea.KeyMsg:
		if m.editing != nil {
			return m.updateEditing(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = nil
		m.input.Blur()
		m.status = ""
		return m, nil
	case msg.Type == tea.KeyEnter:
		e := m.editing
		m.editing = nil
		m.input.Blur()
		if err := e.Change(m.input.Value()); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.mount.Refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(surface.Focusables(m.mount))
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus < n-1 {
			m.focus++
		}
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	case key.Matches(msg, m.keys.Apply):
		if err := m.in.Apply(m.doc.root); err != nil {
			m.status = err.Error()
		} else {
			m.status = "applied"
		}
		m.mount.Refresh()
	case key.Matches(msg, m.keys.Rebuild):
		m.rebuild()
	}
	return m, nil
}

func (m *Model) cycleTab(delta int) {
	e := m.Focused()
	if e == nil || e.Role != surface.RoleContainer {
		return
	}
	if tabs := e.Tabs(); len(tabs) > 0 {
		e.Active = (e.Active + delta + len(tabs)) % len(tabs)
	}
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	e := m.Focused()
	if e == nil {
		return m, nil
	}
	switch {
	case e.Role == surface.RoleEditor:
		m.editing = e
		m.input.SetValue(e.Text)
		m.input.CursorEnd()
		m.status = "editing " + e.Label
		return m, m.input.Focus()
	case e.Role == surface.RoleContainer && len(e.Tabs()) > 0 && e.OnActivate == nil:
		m.cycleTab(1)
		return m, nil
	}
	if err := e.Activate(); err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
	}
	m.mount.Refresh()
	return m, nil
}

func (m *Model) rebuild() {
	if _, err := m.in.Rebuild(m.doc.root); err != nil {
		m.status = "rebuild: " + err.Error()
		slog.Error("rebuilding inspector", "err", err)
		return
	}
	m.status = ""
	m.mount.Refresh()
}

func (m Model) View() string {
	m.style.Focused = nil
	if m.editing == nil {
		m.style.Focused = m.Focused()
	}
	var b strings.Builder
	b.WriteString(surface.Render(m.mount, m.style))
	b.WriteString("\n\n")
	if m.editing != nil {
		b.WriteString(m.editing.Label + " " + m.input.View() + "\n")
	}
	if m.status != "" {
		b.WriteString(m.style.ReadOnly.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// NewProgram returns a new bubbletea program running the given model
// in the alternate screen.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}
