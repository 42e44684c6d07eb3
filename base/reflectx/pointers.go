// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of consistently named helpers for
// navigating pointer types and struct fields within the reflect system.
package reflectx

import (
	"reflect"
)

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
// It returns an invalid value if it encounters a nil pointer.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// OnePointerValue returns a value that is exactly one pointer away
// from a non-pointer value. Non-addressable values are copied into
// a new pointer.
func OnePointerValue(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Pointer {
		if v.CanAddr() {
			return v.Addr()
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return pv
	}
	for v.Elem().Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// Underlying returns the actual underlying version of the given value,
// going through any pointers and interfaces.
func Underlying(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		v = v.Elem()
		if !v.IsValid() {
			return v
		}
	}
	return v
}

// AnyIsNil checks if an interface value is nil. The interface itself
// could be nil, or the value pointed to by the interface could be nil.
func AnyIsNil(v any) bool {
	if v == nil {
		return true
	}
	return IsNil(reflect.ValueOf(v))
}

// IsNil returns whether the given value is a nil value of a
// nillable kind, or an invalid value.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
