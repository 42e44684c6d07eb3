// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"slices"
)

// FlatField is one field found by [FlatFields], with the index path
// needed to reach it from the outermost struct type.
type FlatField struct {
	reflect.StructField

	// Index is the full index path from the outermost struct,
	// suitable for [reflect.Value.FieldByIndex].
	Index []int
}

// FlatFields returns all of the exported fields of the given struct type,
// including those on anonymous embedded structs, which are flattened into
// the list in place. The embedded struct fields themselves are not included.
// Pointer types are dereferenced; a non-struct type returns nil.
func FlatFields(typ reflect.Type) []FlatField {
	typ = NonPointerType(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}
	var fields []FlatField
	flatFields(typ, nil, &fields)
	return fields
}

func flatFields(typ reflect.Type, index []int, fields *[]FlatField) {
	for i := range typ.NumField() {
		f := typ.Field(i)
		idx := append(slices.Clone(index), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			flatFields(f.Type, idx, fields)
			continue
		}
		if !f.IsExported() {
			continue
		}
		*fields = append(*fields, FlatField{StructField: f, Index: idx})
	}
}

// IsSequence returns whether the given type is a homogeneous
// sequence (array, slice, or map), going through pointers.
func IsSequence(typ reflect.Type) bool {
	switch NonPointerType(typ).Kind() {
	case reflect.Array, reflect.Slice, reflect.Map:
		return true
	}
	return false
}

// IsDisplayableKind returns whether values of the given kind can be
// shown at all: functions, channels, and unsafe pointers can not.
func IsDisplayableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return false
	}
	return true
}
