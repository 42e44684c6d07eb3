// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"encoding"
	"fmt"
	"image/color"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/model"
	"cogentcore.org/inspector/surface"
)

// LeafFactory makes the visual elements for members that are drawn as a whole.
type LeafFactory interface {

	// CreateLeaf returns a new element for the given field or property member.
	CreateLeaf(m model.Member) (*surface.Element, error)

	// CreateActionLeaf returns a new element for the given method member,
	// whose activation invokes the method.
	CreateActionLeaf(m *model.Method) (*surface.Element, error)
}

// Renderer formats and parses the values of one type for editing as text.
type Renderer struct {

	// Format returns the text of the given value.
	Format func(v any) string

	// Parse returns the value for the given text.
	Parse func(s string) (any, error)
}

// Factory is the default [LeafFactory]. It makes editors for values that
// can be edited as text, displays for all other values, and buttons for
// methods. Types with a registered [Renderer] are never expanded.
type Factory struct {
	renderers map[reflect.Type]*Renderer
}

// NewFactory returns a new [Factory] with the renderers for
// [time.Time], [time.Duration], and [color.RGBA] registered.
func NewFactory() *Factory {
	f := &Factory{renderers: map[reflect.Type]*Renderer{}}
	f.Register(reflect.TypeFor[time.Time](), &Renderer{
		Format: func(v any) string { return v.(time.Time).Format(time.RFC3339) },
		Parse: func(s string) (any, error) {
			return time.Parse(time.RFC3339, strings.TrimSpace(s))
		},
	})
	f.Register(reflect.TypeFor[time.Duration](), &Renderer{
		Format: func(v any) string { return v.(time.Duration).String() },
		Parse: func(s string) (any, error) {
			return time.ParseDuration(strings.TrimSpace(s))
		},
	})
	f.Register(reflect.TypeFor[color.RGBA](), &Renderer{
		Format: func(v any) string { return FormatHex(v.(color.RGBA)) },
		Parse:  func(s string) (any, error) { return ParseHex(s) },
	})
	return f
}

// Register registers the given renderer for the given exact type.
func (f *Factory) Register(t reflect.Type, r *Renderer) {
	f.renderers[t] = r
}

// Types returns the types that have a registered renderer.
func (f *Factory) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(f.renderers))
	for t := range f.renderers {
		types = append(types, t)
	}
	return types
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// editable returns whether values of the given type can be parsed from text.
func (f *Factory) editable(t reflect.Type) bool {
	if _, ok := f.renderers[t]; ok {
		return true
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String, reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func (f *Factory) format(t reflect.Type, v any) string {
	if r, ok := f.renderers[t]; ok && v != nil {
		return r.Format(v)
	}
	rv := reflect.ValueOf(v)
	switch {
	case v == nil:
		return "nil"
	case reflectx.IsSequence(t):
		nv := reflectx.NonPointerValue(rv)
		if !nv.IsValid() || (nv.Kind() != reflect.Array && nv.IsNil()) {
			return fmt.Sprintf("%v (empty)", t)
		}
		return fmt.Sprintf("%v (%d)", t, nv.Len())
	case t.Kind() == reflect.Interface || model.IsHostReference(t),
		t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		if reflectx.IsNil(rv) {
			return "nil"
		}
		return fmt.Sprintf("%T", v)
	}
	return reflectx.ToString(v)
}

func (f *Factory) parse(t reflect.Type, s string) (any, error) {
	if r, ok := f.renderers[t]; ok {
		return r.Parse(s)
	}
	return reflectx.FromString(s, t)
}

// CreateLeaf returns an editor for settable members whose type can be
// edited as text, and a display for all other members.
func (f *Factory) CreateLeaf(m model.Member) (*surface.Element, error) {
	mb := m.AsMember()
	var get func() (any, error)
	var set func(v any) error
	var canSet bool
	switch mm := m.(type) {
	case *model.Field:
		get, set, canSet = mm.Get, mm.Set, mm.CanSet()
	case *model.Property:
		get, set, canSet = mm.Get, mm.Set, mm.CanSet()
	default:
		return nil, fmt.Errorf("inspector: can not make a leaf for %T %s", m, mb.Path)
	}
	role := surface.RoleDisplay
	if canSet && f.editable(mb.Type) {
		role = surface.RoleEditor
	}
	e := surface.New(nil, role, mb.Label)
	e.SetName(mb.Path)
	e.Doc = mb.Decls.Doc
	e.ReadOnly = role == surface.RoleDisplay
	e.Value = func() (string, error) {
		v, err := get()
		if err != nil {
			return "", err
		}
		return f.format(mb.Type, v), nil
	}
	if role == surface.RoleEditor {
		e.OnChange = func(s string) error {
			v, err := f.parse(mb.Type, s)
			if err != nil {
				return fmt.Errorf("%s: %w", mb.Label, err)
			}
			return set(v)
		}
	}
	e.Refresh()
	return e, nil
}

// CreateActionLeaf returns a button that invokes the method.
func (f *Factory) CreateActionLeaf(m *model.Method) (*surface.Element, error) {
	e := surface.New(nil, surface.RoleButton, m.Label)
	e.SetName(m.Path)
	e.Doc = m.Decls.Doc
	e.OnActivate = func() error {
		res, err := m.Invoke()
		if err != nil {
			return err
		}
		slog.Debug("invoked method", "method", m.Path, "results", res)
		return nil
	}
	return e, nil
}

// FormatHex returns the given color in #RRGGBB form, or #RRGGBBAA
// form if it is not opaque.
func FormatHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHex parses a color in #RGB, #RRGGBB, or #RRGGBBAA form.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "FF"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	u, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}, nil
}
