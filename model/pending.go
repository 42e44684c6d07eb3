// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/jinzhu/copier"

	"cogentcore.org/inspector/base/errors"
)

// write is one staged write.
type write struct {
	path  string
	value reflect.Value
	apply func(v reflect.Value) error
}

// staged returns the latest staged write for the given path, or nil.
func (b *binding) staged(path string) *write {
	for i := len(b.pending) - 1; i >= 0; i-- {
		if b.pending[i].path == path {
			return b.pending[i]
		}
	}
	return nil
}

// stage records a write of the given value to the given path,
// replacing any earlier write to the same path. Aggregate values
// are deep copied so that later changes to them by the caller
// are not seen until they are set again.
func (b *binding) stage(path string, v reflect.Value, apply func(v reflect.Value) error) error {
	cv, err := deepCopy(v)
	if err != nil {
		return fmt.Errorf("model: staging %s: %w", path, err)
	}
	b.pending = slices.DeleteFunc(b.pending, func(w *write) bool { return w.path == path })
	b.pending = append(b.pending, &write{path: path, value: cv, apply: apply})
	return nil
}

// commit applies all staged writes in order, clearing them.
// All writes are attempted, and any errors are joined.
func (b *binding) commit() error {
	pending := b.pending
	b.pending = nil
	var errs []error
	for _, w := range pending {
		if err := w.apply(w.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func deepCopy(v reflect.Value) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Struct:
		dst := reflect.New(v.Type()).Elem()
		dst.Set(v) // keeps unexported fields, which copier skips
		for i := range v.NumField() {
			f := dst.Field(i)
			if !f.CanSet() {
				continue
			}
			cf, err := deepCopy(v.Field(i))
			if err != nil {
				return v, err
			}
			f.Set(cf)
		}
		return dst, nil
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return v, nil
		}
		dst := reflect.New(v.Type())
		if err := copier.CopyWithOption(dst.Interface(), v.Interface(), copier.Option{DeepCopy: true}); err != nil {
			return v, err
		}
		return dst.Elem(), nil
	}
	return v, nil
}

// NumPending returns the number of staged writes not yet committed.
func (s *Struct) NumPending() int {
	return len(s.bind.pending)
}

// Commit applies all staged writes to the backing object.
func (s *Struct) Commit() error {
	return s.bind.commit()
}

// Discard drops all staged writes.
func (s *Struct) Discard() {
	s.bind.pending = nil
}
