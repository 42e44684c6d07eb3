// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Convenience functions for converting any values to given types.
// They use the "ok" bool mechanism to report failure, and deal with
// most common-sense cases, such as string <-> number. nil values
// return !ok. These are appropriate for end-user editing of values.

// ToBool robustly converts anything to a bool.
func ToBool(v any) (bool, bool) {
	if AnyIsNil(v) {
		return false, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return rv.Int() != 0, true
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		return rv.Uint() != 0, true
	case vk == reflect.Bool:
		return rv.Bool(), true
	case vk >= reflect.Float32 && vk <= reflect.Float64:
		return rv.Float() != 0, true
	case vk == reflect.String:
		r, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return false, false
		}
		return r, true
	}
	return false, false
}

// ToInt robustly converts anything to an int64.
func ToInt(v any) (int64, bool) {
	if AnyIsNil(v) {
		return 0, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return rv.Int(), true
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		return int64(rv.Uint()), true
	case vk == reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case vk >= reflect.Float32 && vk <= reflect.Float64:
		return int64(rv.Float()), true
	case vk == reflect.String:
		r, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 0, 64)
		if err != nil {
			return 0, false
		}
		return r, true
	}
	return 0, false
}

// ToFloat robustly converts anything to a float64.
func ToFloat(v any) (float64, bool) {
	if AnyIsNil(v) {
		return 0, false
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return float64(rv.Int()), true
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		return float64(rv.Uint()), true
	case vk == reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case vk >= reflect.Float32 && vk <= reflect.Float64:
		return rv.Float(), true
	case vk == reflect.String:
		r, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}
		return r, true
	}
	return 0, false
}

// ToString robustly converts anything to a string. [encoding.TextMarshaler]
// and [fmt.Stringer] implementations are used first, and it falls back on
// [fmt.Sprint], so there is no bool return value.
func ToString(v any) string {
	if AnyIsNil(v) {
		return "nil"
	}
	if tm, ok := v.(encoding.TextMarshaler); ok {
		if b, err := tm.MarshalText(); err == nil {
			return string(b)
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	vk := rv.Kind()
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case vk == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case vk >= reflect.Float32 && vk <= reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'G', -1, 64)
	case vk == reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}

// FromString returns a new value of the given type parsed from the given
// string. [encoding.TextUnmarshaler] implementations are used first, and
// then the basic kinds are converted with [ToBool], [ToInt], and [ToFloat].
func FromString(s string, typ reflect.Type) (any, error) {
	pv := reflect.New(typ)
	if tu, ok := pv.Interface().(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return pv.Elem().Interface(), nil
	}
	v := pv.Elem()
	vk := typ.Kind()
	ok := true
	switch {
	case vk >= reflect.Int && vk <= reflect.Int64:
		var i int64
		i, ok = ToInt(s)
		if ok {
			v.SetInt(i)
			ok = v.Int() == i
		}
	case vk >= reflect.Uint && vk <= reflect.Uint64:
		var i int64
		i, ok = ToInt(s)
		if ok && i >= 0 {
			v.SetUint(uint64(i))
			ok = v.Uint() == uint64(i)
		} else {
			ok = false
		}
	case vk == reflect.Bool:
		var b bool
		b, ok = ToBool(s)
		v.SetBool(b)
	case vk >= reflect.Float32 && vk <= reflect.Float64:
		var f float64
		f, ok = ToFloat(s)
		v.SetFloat(f)
	case vk == reflect.String:
		v.SetString(s)
	default:
		return nil, fmt.Errorf("can not set a %v from a string", typ)
	}
	if !ok {
		return nil, fmt.Errorf("invalid %v value %q", typ, s)
	}
	return v.Interface(), nil
}
