// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the reflected model of an inspected Go value:
// its fields, declared methods, and declared properties as typed members,
// with staged writes that are only applied to the backing object on commit.
package model

import (
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/tree"
)

// Model is the introspection interface consumed by the inspector.
type Model interface {

	// Fields returns the field members in struct order.
	Fields() []*Field

	// Methods returns the declared invokable method members.
	Methods() []*Method

	// Properties returns the declared property members.
	Properties() []*Property

	// TypeDecls returns the type-level declarations.
	TypeDecls() *meta.TypeDecls

	// Sub returns a nested model over the value of the given field or
	// property member, and false if the member must be drawn as a whole
	// instead of being expanded.
	Sub(m Member) (Model, bool)

	// Source binds the named field, property, or method of the
	// model value as a live data source.
	Source(name string) (Source, error)

	// Renders returns whether the given exact type has a bespoke leaf renderer.
	Renders(t reflect.Type) bool

	// Commit applies all staged writes to the backing object.
	Commit() error

	// Snapshot returns a new model over the same backing object,
	// with no staged writes.
	Snapshot() Model
}

// Source is a live data source. It is evaluated on demand.
type Source func() (any, error)

// binding is the state shared by a root [Struct] and all of its sub-models.
type binding struct {

	// target is the pointer to the backing object.
	target reflect.Value

	// pending are the staged writes, in the order they were made.
	pending []*write
}

// ptrKey identifies a struct reached through a pointer.
type ptrKey struct {
	addr uintptr
	typ  reflect.Type
}

// keyOf returns the key of the given pointer value.
func keyOf(v reflect.Value) ptrKey {
	return ptrKey{addr: v.Pointer(), typ: v.Type().Elem()}
}

// Struct is the [Model] of a struct value.
type Struct struct {
	ctx  *Context
	info *TypeInfo
	bind *binding

	// path is the dotted member path of this value from the root, or "".
	path string

	// expanding are the structs reached through pointers on the
	// expansion path from the root to this value, including the root.
	expanding []ptrKey

	// value returns the current value of the struct, including staged writes.
	value func() (reflect.Value, error)

	// live returns the addressable struct in the backing object,
	// and false if writes can not be applied to it.
	live func() (reflect.Value, bool)

	fields     []*Field
	methods    []*Method
	properties []*Property
}

// New returns a new [Model] over the given pointer to a struct,
// using the given introspection context.
func New(ctx *Context, target any) (*Struct, error) {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() {
		return nil, fmt.Errorf("model.New: target must be a non-nil pointer to a struct, not %T", target)
	}
	tv = reflectx.OnePointerValue(tv)
	if tv.IsNil() {
		return nil, fmt.Errorf("model.New: target %T points to nil", target)
	}
	info, err := ctx.TypeInfo(tv.Type())
	if err != nil {
		return nil, err
	}
	bind := &binding{target: tv}
	s := &Struct{ctx: ctx, info: info, bind: bind, expanding: []ptrKey{keyOf(tv)},
		value: func() (reflect.Value, error) { return bind.target.Elem(), nil },
		live:  func() (reflect.Value, bool) { return bind.target.Elem(), true },
	}
	s.makeMembers()
	return s, nil
}

// Context returns the introspection context of the model.
func (s *Struct) Context() *Context { return s.ctx }

// Info returns the reflected type information of the model.
func (s *Struct) Info() *TypeInfo { return s.info }

// Path returns the dotted member path of this model from the root model.
func (s *Struct) Path() string { return s.path }

// Target returns the backing object of the root model.
func (s *Struct) Target() any { return s.bind.target.Interface() }

// Value returns the current struct value, including staged writes.
func (s *Struct) Value() (reflect.Value, error) { return s.value() }

func (s *Struct) Fields() []*Field            { return s.fields }
func (s *Struct) Methods() []*Method          { return s.methods }
func (s *Struct) Properties() []*Property     { return s.properties }
func (s *Struct) TypeDecls() *meta.TypeDecls  { return s.info.Decls }
func (s *Struct) Renders(t reflect.Type) bool { return s.ctx.HasRenderer(t) }

// Snapshot returns a new model over the backing object of the root model.
func (s *Struct) Snapshot() Model {
	ns, err := New(s.ctx, s.bind.target.Interface())
	if err != nil { // the type info is already cached, so this can not fail
		panic(err)
	}
	return ns
}

func (s *Struct) memberPath(name string) string {
	if s.path == "" {
		return name
	}
	return s.path + "." + name
}

func (s *Struct) makeMembers() {
	for _, fi := range s.info.Fields {
		s.fields = append(s.fields, &Field{MemberBase: s.newBase(fi.Name, fi.Label, fi.Type, fi.Decls), info: fi})
	}
	for _, mi := range s.info.Methods {
		s.methods = append(s.methods, &Method{MemberBase: s.newBase(mi.Name, mi.Label, mi.Type, mi.Decls), info: mi})
	}
	for _, pi := range s.info.Properties {
		s.properties = append(s.properties, &Property{MemberBase: s.newBase(pi.Name, pi.Label, pi.Type, pi.Decls), info: pi})
	}
}

func (s *Struct) newBase(name, label string, typ reflect.Type, decls *meta.MemberDecls) MemberBase {
	return MemberBase{Name: name, Path: s.memberPath(name), Label: label, Type: typ, Decls: decls, owner: s}
}

var (
	objectRefType = reflect.TypeFor[ObjectRef]()
	nodeType      = reflect.TypeFor[tree.Node]()
)

// IsHostReference returns whether values of the given type are references
// to objects owned elsewhere: [ObjectRef] implementors and tree nodes.
func IsHostReference(t reflect.Type) bool {
	if t.Implements(objectRefType) || t.Implements(nodeType) {
		return true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		pt := reflect.PointerTo(t)
		return pt.Implements(objectRefType) || pt.Implements(nodeType)
	}
	return false
}

// IsOpaque returns whether the given member must be drawn as a whole
// because of its declaration or type alone: an explicit no-inline
// declaration, a polymorphic interface, a sequence, or a host reference.
func IsOpaque(m Member) bool {
	mb := m.AsMember()
	if _, ok := m.(*Method); ok {
		return true
	}
	if mb.Decls.NoInline {
		return true
	}
	t := mb.Type
	return t.Kind() == reflect.Interface || reflectx.IsSequence(t) || IsHostReference(t)
}

// Sub returns a nested model over the value of the given field or property,
// if and only if the member is not opaque, its type is a struct (or a
// non-nil pointer to one), there is no bespoke renderer for its exact type,
// and the struct has at least one displayable member. A pointer to a
// struct that is already being expanded above the member is opaque,
// so that cyclic values are drawn as references.
func (s *Struct) Sub(m Member) (Model, bool) {
	if IsOpaque(m) {
		return nil, false
	}
	mb := m.AsMember()
	t := mb.Type
	if s.ctx.HasRenderer(t) {
		return nil, false
	}
	nt := reflectx.NonPointerType(t)
	if nt.Kind() != reflect.Struct {
		return nil, false
	}
	info, err := s.ctx.TypeInfo(nt)
	if err != nil || info.NumMembers() == 0 {
		return nil, false
	}
	var getter func() (reflect.Value, error)
	var live func() (reflect.Value, bool)
	switch mm := m.(type) {
	case *Field:
		getter = mm.value
		live = func() (reflect.Value, bool) {
			lv, ok := mm.owner.live()
			if !ok {
				return reflect.Value{}, false
			}
			v := reflectx.NonPointerValue(lv.FieldByIndex(mm.info.Index))
			return v, v.IsValid() && v.CanSet()
		}
	case *Property:
		getter = mm.value
		live = func() (reflect.Value, bool) {
			if t.Kind() != reflect.Pointer { // a copy returned by the getter
				return reflect.Value{}, false
			}
			v, err := mm.value()
			if err != nil {
				return reflect.Value{}, false
			}
			v = reflectx.NonPointerValue(v)
			return v, v.IsValid() && v.CanSet()
		}
	default:
		return nil, false
	}
	cur, err := getter()
	if err != nil || !reflectx.NonPointerValue(cur).IsValid() { // nil pointer
		return nil, false
	}
	expanding := s.expanding
	if cur.Kind() == reflect.Pointer {
		r := keyOf(reflectx.OnePointerValue(cur))
		if slices.Contains(s.expanding, r) {
			return nil, false
		}
		expanding = append(slices.Clip(s.expanding), r)
	}
	sub := &Struct{ctx: s.ctx, info: info, bind: s.bind, path: mb.Path, live: live, expanding: expanding,
		value: func() (reflect.Value, error) {
			v, err := getter()
			if err != nil {
				return v, err
			}
			v = reflectx.NonPointerValue(v)
			if !v.IsValid() {
				return v, fmt.Errorf("model: %s is nil", mb.Path)
			}
			return v, nil
		},
	}
	sub.makeMembers()
	return sub, true
}
