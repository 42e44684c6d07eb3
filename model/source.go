// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrNoSource is returned when a source name does not match any
// field, property, or suitable method of a model.
var ErrNoSource = errors.New("no such source")

// Source binds the named member of the model value as a live data source.
// Names are looked up as a field first (including non-displayed fields),
// then as a declared property, then as any method that takes no arguments
// and returns one value and an optional error. The binding is decided once;
// evaluating the source reads the current value, including staged writes.
func (s *Struct) Source(name string) (Source, error) {
	if name == "" {
		return nil, fmt.Errorf("model: %w: empty name", ErrNoSource)
	}
	for _, f := range s.fields {
		if f.Name == name {
			return f.Get, nil
		}
	}
	for _, p := range s.properties {
		if p.Name == name {
			return p.Get, nil
		}
	}
	st := s.info.Type
	if sf, ok := st.FieldByName(name); ok && sf.IsExported() {
		idx := sf.Index
		return func() (any, error) {
			v, err := s.value()
			if err != nil {
				return nil, err
			}
			return v.FieldByIndex(idx).Interface(), nil
		}, nil
	}
	m, ok := reflect.PointerTo(st).MethodByName(name)
	if !ok {
		if sug := s.suggest(name); sug != "" {
			return nil, fmt.Errorf("model: %w %q on %v; did you mean %q?", ErrNoSource, name, st, sug)
		}
		return nil, fmt.Errorf("model: %w %q on %v", ErrNoSource, name, st)
	}
	mt := m.Type
	nout := mt.NumOut()
	if mt.NumIn() != 1 || nout == 0 || nout > 2 || (nout == 2 && mt.Out(1) != errorType) {
		return nil, fmt.Errorf("model: %w: method %v.%s must take no arguments and return a value and optional error", ErrNoSource, st, name)
	}
	idx, hasErr := m.Index, nout == 2
	return func() (any, error) {
		rv, err := receiver(s)
		if err != nil {
			return nil, err
		}
		out, err := call(rv.Method(idx), hasErr)
		if err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}, nil
}

// suggest returns the name of the field or method of the model type that
// is most similar to the given name, or "" if none is similar enough.
func (s *Struct) suggest(name string) string {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	best, score := "", 0.8
	try := func(nm string) {
		if sim := strutil.Similarity(name, nm, jw); sim > score {
			best, score = nm, sim
		}
	}
	st := s.info.Type
	for i := range st.NumField() {
		if f := st.Field(i); f.IsExported() {
			try(f.Name)
		}
	}
	pt := reflect.PointerTo(st)
	for i := range pt.NumMethod() {
		try(pt.Method(i).Name)
	}
	return best
}
