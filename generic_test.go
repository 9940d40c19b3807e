// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/dynarr"
)

// object is an array-like value backed by a map, the way a plain object
// with numeric keys and a length field would be.
type object struct {
	props  map[int]string
	length int
}

func newObject(vs ...string) *object {
	o := &object{props: make(map[int]string)}
	for i, v := range vs {
		o.props[i] = v
	}
	o.length = len(vs)
	return o
}

func (o *object) Len() int { return o.length }

func (o *object) Get(i int) (string, bool) {
	v, ok := o.props[i]
	return v, ok
}

func (o *object) Set(i int, v string) error {
	o.props[i] = v
	return nil
}

func (o *object) Delete(i int) bool {
	_, ok := o.props[i]
	delete(o.props, i)
	return ok
}

func (o *object) SetLen(n int) error {
	for i := range o.props {
		if i >= n {
			delete(o.props, i)
		}
	}
	o.length = n
	return nil
}

func TestGenericPushPop(t *testing.T) {
	o := newObject("a")
	n, err := dynarr.Push[string](o, "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "c", o.props[2])

	v, ok, err := dynarr.Pop[string](o)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, o.length)

	empty := newObject()
	_, ok, err = dynarr.Pop[string](empty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenericShiftUnshift(t *testing.T) {
	o := newObject("angel", "clown", "mandarin")
	delete(o.props, 1)

	v, ok, err := dynarr.Shift[string](o)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "angel", v)
	assert.Equal(t, 2, o.length)
	assert.Equal(t, map[int]string{1: "mandarin"}, o.props)

	n, err := dynarr.Unshift[string](o, "drum", "lion")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, map[int]string{0: "drum", 1: "lion", 3: "mandarin"}, o.props)
}

func TestGenericReverse(t *testing.T) {
	o := newObject("one", "two", "three", "four")
	delete(o.props, 0)
	require.NoError(t, dynarr.Reverse[string](o))
	assert.Equal(t, map[int]string{0: "four", 1: "three", 2: "two"}, o.props)
}

func TestGenericMatchesArrayMethods(t *testing.T) {
	a := dynarr.Of(1, 2, 3)
	a.Set(5, 6)
	b := a.Clone()

	n1, err := dynarr.Unshift[int](a, 9, 8)
	require.NoError(t, err)
	n2 := b.Unshift(9, 8)
	assert.Equal(t, n2, n1)
	assert.Equal(t, b.String(), a.String())

	require.NoError(t, dynarr.Reverse[int](a))
	b.Reverse()
	assert.Equal(t, b.String(), a.String())

	v1, ok1, err := dynarr.Shift[int](a)
	require.NoError(t, err)
	v2, ok2 := b.Shift()
	assert.Equal(t, v2, v1)
	assert.Equal(t, ok2, ok1)
	assert.Equal(t, b.String(), a.String())
}

func TestGenericPushOverflow(t *testing.T) {
	a, err := dynarr.Make[int](dynarr.MaxLength)
	require.NoError(t, err)
	_, err = dynarr.Push[int](a, 1)
	assert.True(t, errors.Is(err, dynarr.ErrLengthOverflow))
	_, err = dynarr.Unshift[int](a, 1)
	assert.ErrorIs(t, err, dynarr.ErrLengthOverflow)
}
