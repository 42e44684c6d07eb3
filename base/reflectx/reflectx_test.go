// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(v)).Equal(rv))
	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))

	n := (*int)(nil)
	assert.False(t, NonPointerValue(reflect.ValueOf(n)).IsValid())
}

func TestOnePointerValue(t *testing.T) {
	v := 1
	pv := OnePointerValue(reflect.ValueOf(v))
	assert.Equal(t, reflect.TypeFor[*int](), pv.Type())
	assert.Equal(t, 1, pv.Elem().Interface())

	p := &v
	pp := &p
	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(pp)).Type())
	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(p).Elem()).Type())
}

func TestUnderlying(t *testing.T) {
	v := 3
	var a any = &v
	assert.Equal(t, 3, Underlying(reflect.ValueOf(&a)).Interface())
	assert.False(t, Underlying(reflect.ValueOf((*int)(nil))).IsValid())
}

func TestAnyIsNil(t *testing.T) {
	assert.True(t, AnyIsNil(nil))
	assert.True(t, AnyIsNil((*int)(nil)))
	assert.True(t, AnyIsNil([]int(nil)))
	assert.False(t, AnyIsNil(0))
	assert.False(t, AnyIsNil(&struct{}{}))
}

type inner struct {
	A int
	b int
}

type outer struct {
	inner
	C string
	D inner
	e bool
}

func TestFlatFields(t *testing.T) {
	fs := FlatFields(reflect.TypeFor[*outer]())
	var names []string
	for _, f := range fs {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"A", "C", "D"}, names)
	assert.Equal(t, []int{0, 0}, fs[0].Index)
	assert.Equal(t, []int{2}, fs[2].Index)

	o := outer{}
	o.A = 7
	assert.Equal(t, 7, reflect.ValueOf(o).FieldByIndex(fs[0].Index).Interface())
	assert.Nil(t, FlatFields(reflect.TypeFor[int]()))
}

func TestIsSequence(t *testing.T) {
	assert.True(t, IsSequence(reflect.TypeFor[[]int]()))
	assert.True(t, IsSequence(reflect.TypeFor[*[3]int]()))
	assert.True(t, IsSequence(reflect.TypeFor[map[string]int]()))
	assert.False(t, IsSequence(reflect.TypeFor[outer]()))
	assert.False(t, IsDisplayableKind(reflect.Func))
	assert.True(t, IsDisplayableKind(reflect.Struct))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "nil", ToString(nil))
	assert.Equal(t, "3", ToString(3))
	assert.Equal(t, "2.5", ToString(2.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "1m30s", ToString(90*time.Second))
	assert.Equal(t, "2026-10-19T00:00:00Z", ToString(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	x := 4
	assert.Equal(t, "4", ToString(&x))
}

func TestFromString(t *testing.T) {
	v, err := FromString(" 12 ", reflect.TypeFor[int8]())
	require.NoError(t, err)
	assert.Equal(t, int8(12), v)
	_, err = FromString("300", reflect.TypeFor[int8]())
	assert.Error(t, err)
	_, err = FromString("-1", reflect.TypeFor[uint]())
	assert.Error(t, err)
	v, err = FromString("0x10", reflect.TypeFor[uint16]())
	require.NoError(t, err)
	assert.Equal(t, uint16(16), v)
	v, err = FromString("true", reflect.TypeFor[bool]())
	require.NoError(t, err)
	assert.Equal(t, true, v)
	v, err = FromString("1.5", reflect.TypeFor[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), v)
	v, err = FromString("hi", reflect.TypeFor[string]())
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
	v, err = FromString("2026-10-19T00:00:00Z", reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.Equal(t, 2026, v.(time.Time).Year())
	_, err = FromString("x", reflect.TypeFor[float64]())
	assert.Error(t, err)
	_, err = FromString("x", reflect.TypeFor[[]int]())
	assert.Error(t, err)
}
