// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// PathSeparator separates the levels of a nested group name.
const PathSeparator = "/"

// GroupDecl is one grouping directive on a member, decoded from a
// `group` struct tag. Declarations are of the form
//
//	Name/Path key0=value0 key1='value 1'
//
// and multiple declarations on one member are separated by semicolons.
// The supported keys are kind, order, tab, label, showif, hideif, and labelfunc.
type GroupDecl struct {

	// Name is the full path name of the group, such as "Main/Sub".
	Name string

	// ParentName is the portion of Name before the last [PathSeparator],
	// or "" for a top-level group.
	ParentName string

	// Order is the draw order of the group among its siblings.
	Order int

	// Kind is the kind of container the group is drawn as.
	Kind GroupKind

	// KindSet is whether Kind was given explicitly. Declarations without
	// an explicit kind adopt the kind of other declarations of the same group.
	KindSet bool

	// Tab is the name of the tab within a [KindTabs] parent group that
	// the declaring member (or this group) belongs to.
	Tab string

	// Label is the static title of the group. It defaults to the last
	// element of Name.
	Label string

	// ShowIf is the name of a boolean source; the group is only
	// visible while it is true.
	ShowIf string

	// HideIf is the name of a boolean source; the group is hidden
	// while it is true.
	HideIf string

	// LabelFunc is the name of a string source that replaces the label.
	LabelFunc string
}

// LastName returns the last element of the group path name.
func (g *GroupDecl) LastName() string {
	if i := strings.LastIndex(g.Name, PathSeparator); i >= 0 {
		return g.Name[i+1:]
	}
	return g.Name
}

// Title returns the static label of the group, defaulting to [GroupDecl.LastName].
func (g *GroupDecl) Title() string {
	if g.Label != "" {
		return g.Label
	}
	return g.LastName()
}

// HasResolvers returns whether the declaration binds any live sources.
func (g *GroupDecl) HasResolvers() bool {
	return g.ShowIf != "" || g.HideIf != "" || g.LabelFunc != ""
}

// String returns the declaration in its tag form.
func (g *GroupDecl) String() string {
	var b strings.Builder
	b.WriteString(g.Name)
	if g.KindSet {
		b.WriteString(" kind=" + g.Kind.String())
	}
	if g.Order != 0 {
		b.WriteString(" order=" + strconv.Itoa(g.Order))
	}
	if g.Tab != "" {
		b.WriteString(" tab=" + strconv.Quote(g.Tab))
	}
	return b.String()
}

// ParentNameOf returns the portion of the given group path name
// before the last [PathSeparator], or "" if there is none.
func ParentNameOf(name string) string {
	if i := strings.LastIndex(name, PathSeparator); i >= 0 {
		return name[:i]
	}
	return ""
}

// ParseGroups parses the value of a `group` struct tag into declarations,
// sorted shortest-name-first so that the most specific one is last.
func ParseGroups(tag string) ([]*GroupDecl, error) {
	var res []*GroupDecl
	for part := range strings.SplitSeq(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		g, err := ParseGroup(part)
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	SortGroups(res)
	return res, nil
}

// ParseGroup parses one group declaration.
func ParseGroup(decl string) (*GroupDecl, error) {
	args, err := shellwords.Parse(decl)
	if err != nil {
		return nil, fmt.Errorf("meta.ParseGroup: error parsing %q: %w", decl, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("meta.ParseGroup: empty group declaration")
	}
	name := strings.Trim(args[0], PathSeparator)
	if name == "" || strings.Contains(name, "=") {
		return nil, fmt.Errorf("meta.ParseGroup: %q does not start with a group name", decl)
	}
	g := &GroupDecl{Name: name, ParentName: ParentNameOf(name)}
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("meta.ParseGroup: argument %q in group %q is not of the form key=value", arg, name)
		}
		switch strings.ToLower(key) {
		case "kind":
			if err := g.Kind.SetString(value); err != nil {
				return nil, fmt.Errorf("group %q: %w", name, err)
			}
			g.KindSet = true
		case "order":
			g.Order, err = ParseOrder(value)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", name, err)
			}
		case "tab":
			g.Tab = value
		case "label":
			g.Label = value
		case "showif":
			g.ShowIf = value
		case "hideif":
			g.HideIf = value
		case "labelfunc":
			g.LabelFunc = value
		default:
			return nil, fmt.Errorf("meta.ParseGroup: unknown key %q in group %q", key, name)
		}
	}
	return g, nil
}

// SortGroups sorts the given declarations shortest-name-first, keeping
// the declared order among names of equal length.
func SortGroups(gs []*GroupDecl) {
	slices.SortStableFunc(gs, func(a, b *GroupDecl) int {
		return len(a.Name) - len(b.Name)
	})
}
