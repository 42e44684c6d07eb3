// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"fmt"
	"image/color"
)

// Resolver is a live binding between a data source and a visual effect.
type Resolver struct {

	// Name is the name of the source, used for logging.
	Name string

	// Source produces the current value on demand.
	Source func() (any, error)

	// Apply applies the effect for the given value. It returns an
	// error if the value is not usable for the effect.
	Apply func(v any) error
}

// Evaluate evaluates the source and applies the effect once.
// A panic in the source or the effect is returned as an error.
func (r *Resolver) Evaluate() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("resolver %s: panic: %v", r.Name, p)
		}
	}()
	v, err := r.Source()
	if err != nil {
		return fmt.Errorf("resolver %s: %w", r.Name, err)
	}
	if err := r.Apply(v); err != nil {
		return fmt.Errorf("resolver %s: %w", r.Name, err)
	}
	return nil
}

// Visible returns a resolver that sets visibility from a bool source.
// If hide is true, the visibility is the negation of the source value,
// as for a hide-if condition.
func Visible(name string, src func() (any, error), hide bool, set func(visible bool)) *Resolver {
	return &Resolver{Name: name, Source: src, Apply: func(v any) error {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("visibility source must be a bool, not %T", v)
		}
		set(b != hide)
		return nil
	}}
}

// Label returns a resolver that sets label text from a source.
// String and [fmt.Stringer] values are used directly; other values
// are formatted with [fmt.Sprint].
func Label(name string, src func() (any, error), set func(label string)) *Resolver {
	return &Resolver{Name: name, Source: src, Apply: func(v any) error {
		switch v := v.(type) {
		case string:
			set(v)
		case fmt.Stringer:
			set(v.String())
		default:
			set(fmt.Sprint(v))
		}
		return nil
	}}
}

// Tint returns a resolver that sets a tint color from a [color.Color] source.
// A nil color clears the tint.
func Tint(name string, src func() (any, error), set func(c color.Color)) *Resolver {
	return &Resolver{Name: name, Source: src, Apply: func(v any) error {
		if v == nil {
			set(nil)
			return nil
		}
		c, ok := v.(color.Color)
		if !ok {
			return fmt.Errorf("tint source must be a color, not %T", v)
		}
		set(color.RGBAModel.Convert(c))
		return nil
	}}
}
