// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/tree"
)

type point struct {
	X, Y int
}

type ref struct {
	Name string
}

func (r *ref) ObjectRef() {}

type sample struct {
	Name     string `group:"Main"`
	Count    int    `order:"2"`
	Pos      point
	Tags     []string
	Any      any
	Hidden   int `display:"-"`
	When     time.Time
	Ptr      *point
	NilPtr   *point
	Flat     point `display:"no-inline"`
	Ref      *ref
	Node     *tree.NodeBase
	Advanced bool
	fn       func()
	secret   int
}

func (s *sample) Declarations() meta.Declarations {
	return meta.Declarations{
		Type:       `kind:"box"`,
		Methods:    map[string]reflect.StructTag{"Reset": `button:"Reset all" rebuild:"+"`},
		Properties: map[string]reflect.StructTag{"Total": `group:"Main"`, "Double": ``},
	}
}

func (s *sample) Reset()           { s.Count = 0 }
func (s *sample) Total() int       { return s.Count + s.Pos.X }
func (s *sample) Double() int      { return s.Count * 2 }
func (s *sample) SetDouble(v int)  { s.Count = v / 2 }
func (s *sample) IsAdvanced() bool { return s.Advanced }
func (s *sample) Fail() (int, error) {
	return 0, errors.New("failed")
}

func newSample(t *testing.T, s *sample) *Struct {
	m, err := New(NewContext(), s)
	require.NoError(t, err)
	return m
}

func memberNames[T Member](ms []T) []string {
	var res []string
	for _, m := range ms {
		res = append(res, m.AsMember().Name)
	}
	return res
}

func TestTypeInfo(t *testing.T) {
	m := newSample(t, &sample{})
	assert.Equal(t, []string{"Name", "Count", "Pos", "Tags", "Any", "When", "Ptr", "NilPtr", "Flat", "Ref", "Node", "Advanced"}, memberNames(m.Fields()))
	assert.Equal(t, []string{"Reset"}, memberNames(m.Methods()))
	assert.Equal(t, []string{"Double", "Total"}, memberNames(m.Properties()))
	assert.Equal(t, meta.KindBox, m.TypeDecls().Kind)

	assert.Equal(t, "Reset all", m.Methods()[0].Label)
	assert.True(t, m.Methods()[0].Decls.Rebuild)
	assert.Equal(t, "Nil ptr", m.Fields()[7].Label)
	assert.Equal(t, "Pos.X", mustSub(t, m, m.Fields()[2]).Fields()[0].Path)

	assert.True(t, m.Properties()[0].CanSet())
	assert.False(t, m.Properties()[1].CanSet())
	assert.True(t, m.Properties()[1].Decls.ReadOnly)

	ti, err := m.Context().TypeInfo(reflect.TypeFor[*sample]())
	require.NoError(t, err)
	assert.Same(t, m.Info(), ti)
}

func TestLabel(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, "Likes go", ctx.Label("LikesGo"))
	assert.Equal(t, "Max value", ctx.Label("MaxValue"))
	ctx.SentenceCase = false
	assert.Equal(t, "MaxValue", ctx.Label("MaxValue"))
}

type badMethod struct{ A int }

func (b *badMethod) Declarations() meta.Declarations {
	return meta.Declarations{Methods: map[string]reflect.StructTag{"Missing": ``}}
}

type badArgs struct{ A int }

func (b *badArgs) Take(x int) {}
func (b *badArgs) Declarations() meta.Declarations {
	return meta.Declarations{Methods: map[string]reflect.StructTag{"Take": ``}}
}

type badOrder struct {
	A int `order:"-2147483648"`
}

type badKind struct {
	A int `group:"G kind=accordion"`
}

func TestTypeInfoErrors(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.TypeInfo(reflect.TypeFor[badMethod]())
	assert.Error(t, err)
	_, err = ctx.TypeInfo(reflect.TypeFor[badArgs]())
	assert.Error(t, err)
	_, err = ctx.TypeInfo(reflect.TypeFor[badOrder]())
	assert.ErrorIs(t, err, meta.ErrReservedOrder)
	_, err = ctx.TypeInfo(reflect.TypeFor[badKind]())
	assert.ErrorIs(t, err, meta.ErrUnknownKind)
	_, err = ctx.TypeInfo(reflect.TypeFor[int]())
	assert.Error(t, err)

	_, err = New(ctx, sample{})
	assert.Error(t, err)
	_, err = New(ctx, (*sample)(nil))
	assert.Error(t, err)
}

func mustSub(t *testing.T, m Model, mem Member) Model {
	sub, ok := m.Sub(mem)
	require.True(t, ok, "expected %s to expand", mem.AsMember().Name)
	return sub
}

func field(m Model, name string) *Field {
	for _, f := range m.Fields() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func TestSubExpansion(t *testing.T) {
	s := &sample{Ptr: &point{X: 1}, Ref: &ref{}, Node: &tree.NodeBase{}}
	m := newSample(t, s)
	expand := map[string]bool{}
	for _, f := range m.Fields() {
		_, ok := m.Sub(f)
		expand[f.Name] = ok
	}
	assert.Equal(t, map[string]bool{
		"Name": false, "Count": false, "Pos": true, "Tags": false, "Any": false,
		"When": false, "Ptr": true, "NilPtr": false, "Flat": false, "Ref": false,
		"Node": false, "Advanced": false,
	}, expand)

	_, ok := m.Sub(m.Methods()[0])
	assert.False(t, ok)

	m.Context().RegisterRenderer(reflect.TypeFor[point]())
	_, ok = m.Sub(field(m, "Pos"))
	assert.False(t, ok)
	assert.True(t, m.Renders(reflect.TypeFor[point]()))
	_, ok = m.Sub(field(m, "Ptr"))
	assert.True(t, ok, "renderer registration is for the exact type only")
}

type link struct {
	Name string
	Next *link
}

func TestSubCycle(t *testing.T) {
	a := &link{Name: "a"}
	a.Next = a
	m, err := New(NewContext(), a)
	require.NoError(t, err)
	_, ok := m.Sub(field(m, "Next"))
	assert.False(t, ok, "a pointer back to the root is not expanded")

	b := &link{Name: "b", Next: a}
	a.Next = b
	m, err = New(NewContext(), a)
	require.NoError(t, err)
	sb, ok := m.Sub(field(m, "Next"))
	require.True(t, ok)
	_, ok = sb.Sub(field(sb, "Next"))
	assert.False(t, ok)

	// the same struct reached along separate paths is expanded on each
	type pair struct{ Left, Right *link }
	c := &link{Name: "c"}
	m, err = New(NewContext(), &pair{Left: c, Right: c})
	require.NoError(t, err)
	_, ok = m.Sub(field(m, "Left"))
	assert.True(t, ok)
	_, ok = m.Sub(field(m, "Right"))
	assert.True(t, ok)
}

func TestStagedWrites(t *testing.T) {
	s := &sample{}
	m := newSample(t, s)
	count := field(m, "Count")
	require.NoError(t, count.Set(5))
	assert.Equal(t, 5, errorsIgnore(count.Get()))
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 1, m.NumPending())

	require.NoError(t, count.Set(int64(6)))
	assert.Equal(t, 1, m.NumPending())
	require.NoError(t, m.Commit())
	assert.Equal(t, 6, s.Count)
	assert.Equal(t, 0, m.NumPending())

	assert.Error(t, count.Set("x"))
	assert.Error(t, field(m, "Name").Set(65))
	require.NoError(t, field(m, "Name").Set("go"))
	m.Discard()
	require.NoError(t, m.Commit())
	assert.Equal(t, "", s.Name)
}

func TestStagedDeepCopy(t *testing.T) {
	s := &sample{}
	m := newSample(t, s)
	tags := []string{"a", "b"}
	require.NoError(t, field(m, "Tags").Set(tags))
	tags[0] = "z"
	assert.Equal(t, []string{"a", "b"}, errorsIgnore(field(m, "Tags").Get()))
	require.NoError(t, m.Commit())
	assert.Equal(t, []string{"a", "b"}, s.Tags)

	when := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	require.NoError(t, field(m, "When").Set(when))
	require.NoError(t, m.Commit())
	assert.True(t, when.Equal(s.When))
}

func TestNestedWrites(t *testing.T) {
	s := &sample{Ptr: &point{}}
	m := newSample(t, s)
	pos := mustSub(t, m, field(m, "Pos"))
	require.NoError(t, field(pos, "X").Set(3))
	assert.Equal(t, 3, errorsIgnore(field(pos, "X").Get()))
	assert.Equal(t, 0, s.Pos.X)

	ptr := mustSub(t, m, field(m, "Ptr"))
	require.NoError(t, field(ptr, "Y").Set(4))

	require.NoError(t, m.Commit())
	assert.Equal(t, 3, s.Pos.X)
	assert.Equal(t, 4, s.Ptr.Y)
}

func TestProperties(t *testing.T) {
	s := &sample{Count: 2}
	m := newSample(t, s)
	double, total := m.Properties()[0], m.Properties()[1]
	assert.Equal(t, 4, errorsIgnore(double.Get()))
	require.NoError(t, double.Set(10))
	assert.Equal(t, 10, errorsIgnore(double.Get()))
	assert.Equal(t, 2, s.Count)
	require.NoError(t, m.Commit())
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 5, errorsIgnore(total.Get()))
	assert.ErrorIs(t, total.Set(1), ErrReadOnly)
}

func TestInvoke(t *testing.T) {
	s := &sample{}
	m := newSample(t, s)
	require.NoError(t, field(m, "Count").Set(7))
	require.NoError(t, field(m, "Name").Set("x"))
	_, err := m.Methods()[0].Invoke()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, "x", s.Name)
	assert.Equal(t, 0, m.NumPending())
}

func TestSource(t *testing.T) {
	s := &sample{Count: 3, Hidden: 9}
	m := newSample(t, s)
	for name, want := range map[string]any{"Count": 3, "Total": 3, "IsAdvanced": false, "Hidden": 9} {
		src, err := m.Source(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, errorsIgnore(src()), name)
	}
	adv, err := m.Source("IsAdvanced")
	require.NoError(t, err)
	s.Advanced = true
	assert.Equal(t, true, errorsIgnore(adv()))

	fail, err := m.Source("Fail")
	require.NoError(t, err)
	_, err = fail()
	assert.Error(t, err)

	_, err = m.Source("Nope")
	assert.ErrorIs(t, err, ErrNoSource)
	_, err = m.Source("Reset")
	assert.ErrorIs(t, err, ErrNoSource)
	_, err = m.Source("")
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = m.Source("IsAdvancd")
	assert.ErrorIs(t, err, ErrNoSource)
	assert.Contains(t, err.Error(), `did you mean "IsAdvanced"?`)
}

func TestSnapshot(t *testing.T) {
	s := &sample{}
	m := newSample(t, s)
	require.NoError(t, field(m, "Count").Set(1))
	snap := m.Snapshot().(*Struct)
	assert.Equal(t, 0, snap.NumPending())
	assert.Same(t, s, snap.Target())
	assert.Equal(t, 0, errorsIgnore(field(snap, "Count").Get()))
}

func TestIsHostReference(t *testing.T) {
	assert.True(t, IsHostReference(reflect.TypeFor[*ref]()))
	assert.True(t, IsHostReference(reflect.TypeFor[ref]()))
	assert.True(t, IsHostReference(reflect.TypeFor[*tree.NodeBase]()))
	assert.False(t, IsHostReference(reflect.TypeFor[point]()))
}

func errorsIgnore(v any, err error) any {
	return v
}
