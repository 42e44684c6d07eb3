// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/meta"
)

// ErrReadOnly is returned when writing to a member that can not be written.
var ErrReadOnly = errors.New("member is read-only")

// Member is one reflected member of a model: a [*Field], [*Method],
// or [*Property]. Use a type switch to access the typed operations.
type Member interface {

	// AsMember returns the common [MemberBase] of the member.
	AsMember() *MemberBase

	isMember()
}

// MemberBase has the information common to all members.
type MemberBase struct {

	// Name is the Go name of the member.
	Name string

	// Path is the dotted path of the member from the root model, such as "Inner.X".
	Path string

	// Label is the display label of the member.
	Label string

	// Type is the value type of the member, or the method type for methods.
	Type reflect.Type

	// Decls are the declarations on the member.
	Decls *meta.MemberDecls

	owner *Struct
}

func (mb *MemberBase) AsMember() *MemberBase { return mb }
func (mb *MemberBase) isMember()             {}

// Owner returns the model that the member belongs to.
func (mb *MemberBase) Owner() *Struct { return mb.owner }

// Field is a struct field member.
type Field struct {
	MemberBase
	info *FieldInfo
}

// value returns the current field value, including staged writes.
func (f *Field) value() (reflect.Value, error) {
	if w := f.owner.bind.staged(f.Path); w != nil {
		return w.value, nil
	}
	sv, err := f.owner.value()
	if err != nil {
		return reflect.Value{}, err
	}
	return sv.FieldByIndex(f.info.Index), nil
}

// Get returns the current value of the field, including staged writes.
func (f *Field) Get() (any, error) {
	v, err := f.value()
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// CanSet returns whether the field can be written.
func (f *Field) CanSet() bool {
	if f.Decls.ReadOnly {
		return false
	}
	_, ok := f.owner.live()
	return ok
}

// Set stages the given value to be written to the field on [Model.Commit].
func (f *Field) Set(value any) error {
	if !f.CanSet() {
		return fmt.Errorf("model: field %s: %w", f.Path, ErrReadOnly)
	}
	v, err := convert(value, f.Type)
	if err != nil {
		return fmt.Errorf("model: field %s: %w", f.Path, err)
	}
	return f.owner.bind.stage(f.Path, v, func(v reflect.Value) error {
		lv, ok := f.owner.live()
		if !ok {
			return fmt.Errorf("model: field %s: %w", f.Path, ErrReadOnly)
		}
		lv.FieldByIndex(f.info.Index).Set(v)
		return nil
	})
}

// Property is a declared property member, read by a getter method
// and written by an optional setter method.
type Property struct {
	MemberBase
	info *PropertyInfo
}

// receiver returns the pointer receiver for calling methods on the owner value.
func receiver(s *Struct) (reflect.Value, error) {
	v, err := s.value()
	if err != nil {
		return v, err
	}
	return reflectx.OnePointerValue(v), nil
}

// value returns the current property value, including staged writes.
func (p *Property) value() (reflect.Value, error) {
	if w := p.owner.bind.staged(p.Path); w != nil {
		return w.value, nil
	}
	rv, err := receiver(p.owner)
	if err != nil {
		return reflect.Value{}, err
	}
	out, err := call(rv.Method(p.info.Getter), p.info.GetterErr)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("model: property %s: %w", p.Path, err)
	}
	return out[0], nil
}

// Get returns the current value of the property, including staged writes.
func (p *Property) Get() (any, error) {
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// CanSet returns whether the property has a setter and is not read-only.
func (p *Property) CanSet() bool {
	if p.info.Setter < 0 || p.Decls.ReadOnly {
		return false
	}
	_, ok := p.owner.live()
	return ok
}

// Set stages the given value to be written with the setter on [Model.Commit].
func (p *Property) Set(value any) error {
	if !p.CanSet() {
		return fmt.Errorf("model: property %s: %w", p.Path, ErrReadOnly)
	}
	v, err := convert(value, p.Type)
	if err != nil {
		return fmt.Errorf("model: property %s: %w", p.Path, err)
	}
	return p.owner.bind.stage(p.Path, v, func(v reflect.Value) error {
		lv, ok := p.owner.live()
		if !ok {
			return fmt.Errorf("model: property %s: %w", p.Path, ErrReadOnly)
		}
		_, err := call(reflectx.OnePointerValue(lv).Method(p.info.Setter), p.info.SetterErr, v)
		return err
	})
}

// Method is a declared invokable method member.
type Method struct {
	MemberBase
	info *MethodInfo
}

// Invoke commits all staged writes and then calls the method on the
// backing object, returning its results. A non-nil trailing error
// result is returned as the error.
func (m *Method) Invoke() ([]any, error) {
	if err := m.owner.bind.commit(); err != nil {
		return nil, err
	}
	lv, ok := m.owner.live()
	var rv reflect.Value
	if ok {
		rv = reflectx.OnePointerValue(lv)
	} else {
		var err error
		rv, err = receiver(m.owner)
		if err != nil {
			return nil, err
		}
	}
	mt := m.info.Type
	hasErr := mt.NumOut() > 0 && mt.Out(mt.NumOut()-1) == errorType
	out, err := call(rv.Method(m.info.Index), hasErr)
	if err != nil {
		return nil, fmt.Errorf("model: method %s: %w", m.Path, err)
	}
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}

// call calls the given function value with the given arguments.
// If hasErr, the last result is an error that is removed from the
// results and returned.
func call(fn reflect.Value, hasErr bool, args ...reflect.Value) (res []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	res = fn.Call(args)
	if hasErr && len(res) > 0 {
		last := res[len(res)-1]
		res = res[:len(res)-1]
		if !last.IsNil() {
			return res, last.Interface().(error)
		}
	}
	return res, nil
}

// convert converts the given value to the given type.
func convert(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(typ), nil
	}
	v := reflect.ValueOf(value)
	vt := v.Type()
	if vt.AssignableTo(typ) {
		return v, nil
	}
	// integer to string conversion makes a rune, which is never what is meant
	numToString := typ.Kind() == reflect.String && vt.Kind() != reflect.String && vt.Kind() != reflect.Slice
	if vt.ConvertibleTo(typ) && !numToString {
		return v.Convert(typ), nil
	}
	return reflect.Value{}, fmt.Errorf("can not use %T as %v", value, typ)
}
