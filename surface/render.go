// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cogentcore.org/inspector/meta"
)

// Style has the lipgloss styles used to render elements.
type Style struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	ReadOnly lipgloss.Style
	Button   lipgloss.Style
	Title    lipgloss.Style
	Box      lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Focus    lipgloss.Style

	// Indent is the indentation of nested content.
	Indent int

	// Focused is the element drawn with the focus style, if any.
	Focused *Element

	r *lipgloss.Renderer
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// NewStyle returns the default [Style] for output to the given writer
// with the given color profile.
func NewStyle(w io.Writer, profile termenv.Profile) *Style {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	muted := ac("240", "245")
	accent := ac("27", "62")
	return &Style{
		r:        r,
		Label:    r.NewStyle().Bold(true),
		Value:    r.NewStyle(),
		ReadOnly: r.NewStyle().Foreground(muted),
		Button:   r.NewStyle().Foreground(accent),
		Title:    r.NewStyle().Bold(true).Underline(true),
		Box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		Tab:      r.NewStyle().Foreground(muted),
		TabOn:    r.NewStyle().Bold(true).Foreground(accent),
		Focus:    r.NewStyle().Reverse(true),
		Indent:   2,
	}
}

func (st *Style) tinted(s lipgloss.Style, c color.Color) lipgloss.Style {
	if c == nil {
		return s
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return s.Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)))
}

// Render returns the text rendering of the given element and all of
// its visible children.
func Render(e *Element, st *Style) string {
	return st.render(e)
}

func (st *Style) render(e *Element) string {
	if e == nil || !e.Visible {
		return ""
	}
	switch e.Role {
	case RoleMount, RoleContent, RoleTab:
		return st.body(e, meta.KindVertical)
	case RoleContainer:
		return st.container(e)
	case RoleButton:
		return st.focus(e, st.tinted(st.Button, e.Tint).Render("[ "+e.Label+" ]"))
	}
	line := st.tinted(st.Label, e.Tint).Render(e.Label)
	if e.Role == RoleDisplay || e.ReadOnly {
		line += " " + st.ReadOnly.Render(e.Text)
	} else {
		line += " " + st.Value.Render(e.Text)
	}
	line = st.focus(e, line)
	if kids := st.body(e, meta.KindVertical); kids != "" {
		return line + "\n" + st.indent(kids)
	}
	return line
}

func (st *Style) focus(e *Element, s string) string {
	if st.Focused == e {
		return st.Focus.Render(s)
	}
	return s
}

// body renders the children of the given element laid out by the given kind.
func (st *Style) body(e *Element, kind meta.GroupKind) string {
	var parts []string
	for _, k := range e.Children {
		ke := AsElement(k)
		if ke == nil || ke.Role == RoleTab {
			continue
		}
		if s := st.render(ke); s != "" {
			parts = append(parts, s)
		}
	}
	if kind == meta.KindHorizontal {
		for i := range parts[:max(len(parts)-1, 0)] {
			parts[i] += " "
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return strings.Join(parts, "\n")
}

func (st *Style) indent(s string) string {
	pad := strings.Repeat(" ", st.Indent)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func (st *Style) container(e *Element) string {
	label := st.tinted(st.Label, e.Tint)
	switch e.Kind {
	case meta.KindHorizontal:
		return st.body(e, meta.KindHorizontal)
	case meta.KindCollapsible:
		if !e.Open {
			return st.focus(e, label.Render("▸ "+e.Label))
		}
		head := st.focus(e, label.Render("▾ "+e.Label))
		if b := st.body(e, meta.KindVertical); b != "" {
			return head + "\n" + st.indent(b)
		}
		return head
	case meta.KindBox:
		b := st.body(e, meta.KindVertical)
		if e.Label != "" {
			b = strings.TrimSuffix(label.Render(e.Label)+"\n"+b, "\n")
		}
		return st.Box.Render(b)
	case meta.KindTitled:
		head := st.tinted(st.Title, e.Tint).Render(e.Label)
		if b := st.body(e, meta.KindVertical); b != "" {
			return head + "\n" + b
		}
		return head
	case meta.KindTabs:
		return st.tabs(e)
	}
	return st.body(e, meta.KindVertical)
}

func (st *Style) tabs(e *Element) string {
	var bar []string
	for i, t := range e.Tabs() {
		if i == e.Active {
			bar = append(bar, st.TabOn.Render("["+t.Label+"]"))
		} else {
			bar = append(bar, st.Tab.Render(" "+t.Label+" "))
		}
	}
	var lines []string
	if len(bar) > 0 {
		lines = append(lines, st.focus(e, strings.Join(bar, " ")))
	}
	if b := st.body(e, meta.KindVertical); b != "" {
		lines = append(lines, b)
	}
	if at := e.ActiveTab(); at != nil {
		if b := st.render(at); b != "" {
			lines = append(lines, b)
		}
	}
	return strings.Join(lines, "\n")
}
