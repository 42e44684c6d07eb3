// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/meta"
)

// Declarer is implemented by types that declare methods, properties, or
// type-level settings that can not be expressed as struct field tags.
// It is called once per type, on a new zero value, when the type is
// first added to a [Context].
type Declarer interface {
	Declarations() meta.Declarations
}

// ObjectRef is implemented by types whose values are references to
// objects owned elsewhere. Such members are edited as a reference
// and never expanded inline.
type ObjectRef interface {
	ObjectRef()
}

// Context is the introspection context shared by all of the models of an
// inspector. It caches the reflected [TypeInfo] of each type the first time
// it is needed, and holds the registry of types that have a bespoke leaf
// renderer. It is safe for concurrent use.
type Context struct {

	// SentenceCase is whether member names are turned into
	// "Sentence case" labels. It defaults to true.
	SentenceCase bool

	mu        sync.RWMutex
	types     map[reflect.Type]*TypeInfo
	renderers map[reflect.Type]bool
}

// NewContext returns a new empty [Context].
func NewContext() *Context {
	return &Context{
		SentenceCase: true,
		types:        map[reflect.Type]*TypeInfo{},
		renderers:    map[reflect.Type]bool{},
	}
}

// RegisterRenderer records that the given exact types have a bespoke
// leaf renderer, so members of those types are never expanded.
func (c *Context) RegisterRenderer(types ...reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range types {
		c.renderers[t] = true
	}
}

// HasRenderer returns whether the given exact type has a bespoke leaf renderer.
func (c *Context) HasRenderer(t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderers[t]
}

// Label returns the display label for the given Go member name.
func (c *Context) Label(name string) string {
	if !c.SentenceCase || name == "" {
		return name
	}
	s := strcase.ToDelimited(name, ' ')
	r, sz := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[sz:]
}

// TypeInfo is the cached reflected information about a struct type.
type TypeInfo struct {

	// Type is the non-pointer struct type.
	Type reflect.Type

	// Decls are the type-level declarations.
	Decls *meta.TypeDecls

	// Fields are the displayable fields in struct order, with
	// anonymous embedded struct fields flattened in place.
	Fields []*FieldInfo

	// Methods are the declared invokable methods in method order.
	Methods []*MethodInfo

	// Properties are the declared properties in getter method order.
	Properties []*PropertyInfo
}

// NumMembers returns the total number of displayable members.
func (ti *TypeInfo) NumMembers() int {
	return len(ti.Fields) + len(ti.Methods) + len(ti.Properties)
}

// FieldInfo is the reflected information about one field.
type FieldInfo struct {
	Name  string
	Label string
	Type  reflect.Type
	Index []int
	Decls *meta.MemberDecls
}

// MethodInfo is the reflected information about one declared method.
type MethodInfo struct {
	Name  string
	Label string
	Type  reflect.Type

	// Index is the index of the method in the method set of the pointer type.
	Index int
	Decls *meta.MemberDecls
}

// PropertyInfo is the reflected information about one declared property.
type PropertyInfo struct {
	Name  string
	Label string
	Type  reflect.Type

	// Getter and Setter are indexes into the method set of the pointer type.
	// Setter is -1 for a read-only property.
	Getter, Setter int

	// GetterErr and SetterErr are whether the methods also return an error.
	GetterErr, SetterErr bool
	Decls                *meta.MemberDecls
}

// TypeInfo returns the [TypeInfo] for the given type, building and
// caching it on first use. Pointer types are dereferenced. It returns an
// error if the type is not a struct or if any declaration is invalid.
func (c *Context) TypeInfo(t reflect.Type) (*TypeInfo, error) {
	t = reflectx.NonPointerType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model: type %v is not a struct", t)
	}
	c.mu.RLock()
	ti, ok := c.types[t]
	c.mu.RUnlock()
	if ok {
		return ti, nil
	}
	ti, err := c.newTypeInfo(t)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if cur, ok := c.types[t]; ok { // lost a race
		ti = cur
	} else {
		c.types[t] = ti
	}
	c.mu.Unlock()
	return ti, nil
}

var errorType = reflect.TypeFor[error]()

func (c *Context) newTypeInfo(t reflect.Type) (*TypeInfo, error) {
	var decls meta.Declarations
	if d, ok := reflect.New(t).Interface().(Declarer); ok {
		decls = d.Declarations()
	}
	td, err := meta.ParseTypeTag(decls.Type)
	if err != nil {
		return nil, fmt.Errorf("model: type %v: %w", t, err)
	}
	ti := &TypeInfo{Type: t, Decls: td}

	for _, f := range reflectx.FlatFields(t) {
		if !reflectx.IsDisplayableKind(f.Type.Kind()) {
			continue
		}
		md, err := meta.ParseTag(f.Tag)
		if err != nil {
			return nil, fmt.Errorf("model: field %v.%s: %w", t, f.Name, err)
		}
		if md.Hidden {
			continue
		}
		ti.Fields = append(ti.Fields, &FieldInfo{Name: f.Name, Label: c.memberLabel(f.Name, md), Type: f.Type, Index: f.Index, Decls: md})
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if tag, ok := decls.Methods[m.Name]; ok {
			if m.Type.NumIn() != 1 {
				return nil, fmt.Errorf("model: declared method %v.%s must take no arguments", t, m.Name)
			}
			md, err := meta.ParseTag(tag)
			if err != nil {
				return nil, fmt.Errorf("model: method %v.%s: %w", t, m.Name, err)
			}
			if md.Hidden {
				continue
			}
			lbl := md.Button
			if lbl == "" {
				lbl = c.memberLabel(m.Name, md)
			}
			ti.Methods = append(ti.Methods, &MethodInfo{Name: m.Name, Label: lbl, Type: m.Type, Index: i, Decls: md})
		}
		if tag, ok := decls.Properties[m.Name]; ok {
			pi, err := c.newPropertyInfo(pt, m, tag)
			if err != nil {
				return nil, err
			}
			if pi != nil {
				ti.Properties = append(ti.Properties, pi)
			}
		}
	}
	for nm := range decls.Methods {
		if _, ok := pt.MethodByName(nm); !ok {
			return nil, fmt.Errorf("model: declared method %v.%s does not exist", t, nm)
		}
	}
	for nm := range decls.Properties {
		if _, ok := pt.MethodByName(nm); !ok {
			return nil, fmt.Errorf("model: declared property %v.%s has no getter method", t, nm)
		}
	}
	return ti, nil
}

func (c *Context) newPropertyInfo(pt reflect.Type, getter reflect.Method, tag reflect.StructTag) (*PropertyInfo, error) {
	gt := getter.Type
	nout := gt.NumOut()
	if gt.NumIn() != 1 || nout == 0 || nout > 2 || (nout == 2 && gt.Out(1) != errorType) {
		return nil, fmt.Errorf("model: property getter %v.%s must take no arguments and return a value and optional error", pt.Elem(), getter.Name)
	}
	md, err := meta.ParseTag(tag)
	if err != nil {
		return nil, fmt.Errorf("model: property %v.%s: %w", pt.Elem(), getter.Name, err)
	}
	if md.Hidden {
		return nil, nil
	}
	pi := &PropertyInfo{Name: getter.Name, Label: c.memberLabel(getter.Name, md), Type: gt.Out(0),
		Getter: getter.Index, Setter: -1, GetterErr: nout == 2, Decls: md}
	if setter, ok := pt.MethodByName("Set" + getter.Name); ok {
		st := setter.Type
		if st.NumIn() == 2 && st.In(1) == pi.Type && (st.NumOut() == 0 || (st.NumOut() == 1 && st.Out(0) == errorType)) {
			pi.Setter = setter.Index
			pi.SetterErr = st.NumOut() == 1
		}
	}
	if pi.Setter < 0 {
		md.ReadOnly = true
	}
	return pi, nil
}

func (c *Context) memberLabel(name string, md *meta.MemberDecls) string {
	if md.Label != "" {
		return md.Label
	}
	return strings.TrimSpace(c.Label(name))
}
