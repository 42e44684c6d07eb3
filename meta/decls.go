// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meta decodes the declarative metadata attached to inspected
// types and their members: grouping, draw order, visibility conditions,
// labels, and buttons.
package meta

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKind is returned for a group kind name that is not one of
	// the [GroupKind] values, or for a group whose kind can not be constructed.
	ErrUnknownKind = errors.New("unknown group kind")

	// ErrReservedOrder is returned when a user supplied order equals [NoOrder].
	ErrReservedOrder = errors.New("order value is reserved")
)

const (
	// NoOrder is the reserved order value meaning "not set".
	// It can not be supplied by users.
	NoOrder = math.MinInt32

	// UngroupedOrder is the default order of the bucket holding
	// members with no group, which sorts it after all user groups.
	UngroupedOrder = math.MaxInt32
)

// ParseOrder parses a user supplied draw order.
func ParseOrder(s string) (int, error) {
	o, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid order %q: %w", s, err)
	}
	if o == NoOrder {
		return 0, fmt.Errorf("%w: %d", ErrReservedOrder, o)
	}
	return o, nil
}

// MemberDecls are the declarations found on one member.
type MemberDecls struct {

	// Groups are the group declarations, sorted shortest-name-first.
	Groups []*GroupDecl

	// Order is the draw order from the `order` tag, or 0.
	Order int

	// HasOrder is whether an `order` tag was given.
	HasOrder bool

	// Hidden is whether the member is never displayed (`display:"-"`).
	Hidden bool

	// NoInline is whether the member value must not be expanded into
	// child nodes even if it could be (`display:"no-inline"`).
	NoInline bool

	// ReadOnly is whether the member can not be edited (`edit:"-"`).
	ReadOnly bool

	// Rebuild is whether a change to the member value (or invoking the
	// method) rebuilds the whole inspector (`rebuild:"+"`).
	Rebuild bool

	// Label is the static label (`label:"..."`).
	Label string

	// Doc is the tooltip documentation (`doc:"..."`).
	Doc string

	// ShowIf, HideIf, LabelFunc, and TintFunc name live sources that
	// control visibility, label, and tint color.
	ShowIf, HideIf, LabelFunc, TintFunc string

	// Button is the button text of an invokable method (`button:"..."`).
	Button string
}

// Resolved returns the group declaration that determines where the member
// is attached: the last, most specific one. It returns nil if there are none.
func (d *MemberDecls) Resolved() *GroupDecl {
	if d == nil || len(d.Groups) == 0 {
		return nil
	}
	return d.Groups[len(d.Groups)-1]
}

// HasResolvers returns whether the member binds any live sources.
func (d *MemberDecls) HasResolvers() bool {
	return d.ShowIf != "" || d.HideIf != "" || d.LabelFunc != "" || d.TintFunc != ""
}

// ParseTag decodes the declarations in the given struct tag.
func ParseTag(tag reflect.StructTag) (*MemberDecls, error) {
	d := &MemberDecls{}
	if g, ok := tag.Lookup("group"); ok {
		gs, err := ParseGroups(g)
		if err != nil {
			return nil, err
		}
		d.Groups = gs
	}
	if o, ok := tag.Lookup("order"); ok {
		ord, err := ParseOrder(o)
		if err != nil {
			return nil, err
		}
		d.Order, d.HasOrder = ord, true
	}
	switch tag.Get("display") {
	case "-":
		d.Hidden = true
	case "no-inline":
		d.NoInline = true
	}
	d.ReadOnly = tag.Get("edit") == "-"
	d.Rebuild = tag.Get("rebuild") == "+"
	d.Label = tag.Get("label")
	d.Doc = tag.Get("doc")
	d.ShowIf = tag.Get("showif")
	d.HideIf = tag.Get("hideif")
	d.LabelFunc = tag.Get("labelfunc")
	d.TintFunc = tag.Get("tint")
	d.Button = tag.Get("button")
	return d, nil
}

// TypeDecls are the type-level declarations of an inspected type.
type TypeDecls struct {

	// Kind is the kind of the bucket holding members with no group (`kind:"..."`).
	Kind GroupKind

	// UngroupedOrder is the order of the ungrouped bucket (`ungrouped:"..."`),
	// defaulting to [UngroupedOrder].
	UngroupedOrder int

	// Label is the title of the inspected type (`label:"..."`).
	Label string
}

// ParseTypeTag decodes type-level declarations.
func ParseTypeTag(tag reflect.StructTag) (*TypeDecls, error) {
	td := &TypeDecls{Kind: KindVertical, UngroupedOrder: UngroupedOrder}
	if k, ok := tag.Lookup("kind"); ok {
		if err := td.Kind.SetString(k); err != nil {
			return nil, err
		}
	}
	if o, ok := tag.Lookup("ungrouped"); ok {
		ord, err := ParseOrder(o)
		if err != nil {
			return nil, err
		}
		td.UngroupedOrder = ord
	}
	td.Label = tag.Get("label")
	return td, nil
}

// Declarations holds declarations for a type that can not be expressed
// as struct field tags. Each value is in struct tag syntax, so that, for
// example, a method can be declared with
//
//	Methods: map[string]reflect.StructTag{"Reset": `button:"Reset all" rebuild:"+"`}
type Declarations struct {

	// Type holds the type-level declarations.
	Type reflect.StructTag

	// Methods declares invokable methods by name. Only declared methods
	// are shown, as buttons.
	Methods map[string]reflect.StructTag

	// Properties declares computed properties by name. A property Name is
	// read with a method Name() and written with an optional SetName(v).
	Properties map[string]reflect.StructTag
}
