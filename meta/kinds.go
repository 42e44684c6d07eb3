// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"fmt"
	"strings"
)

// GroupKind is the kind of visual container a group is drawn as.
type GroupKind int32

const (
	// KindVertical stacks its children vertically with no decoration.
	KindVertical GroupKind = iota

	// KindHorizontal lays out its children in a single row.
	KindHorizontal

	// KindCollapsible has a header that can be toggled
	// to show or hide its children.
	KindCollapsible

	// KindBox draws a border around its children.
	KindBox

	// KindTabs has a set of named tab containers,
	// only one of which is shown at a time.
	KindTabs

	// KindTitled draws a title line above its children.
	KindTitled
)

var groupKindNames = []string{"vertical", "horizontal", "collapsible", "box", "tabs", "titled"}

// GroupKindValues returns all valid values of [GroupKind].
func GroupKindValues() []GroupKind {
	return []GroupKind{KindVertical, KindHorizontal, KindCollapsible, KindBox, KindTabs, KindTitled}
}

// IsValid returns whether the value is a valid option for type [GroupKind].
func (k GroupKind) IsValid() bool {
	return k >= 0 && int(k) < len(groupKindNames)
}

// String returns the string representation of this [GroupKind] value.
func (k GroupKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("GroupKind(%d)", int32(k))
	}
	return groupKindNames[k]
}

// SetString sets the [GroupKind] value from its string representation,
// and returns an error wrapping [ErrUnknownKind] if the string is invalid.
func (k *GroupKind) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range groupKindNames {
		if nm == s {
			*k = GroupKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k GroupKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *GroupKind) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
