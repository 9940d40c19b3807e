// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import "slices"

// Mutator methods. Each one moves the array from one consistent
// (elements, length) pair to the next in a single step.

// Push appends vs in order and returns the new length.
// It panics with ErrLengthOverflow if the length would exceed MaxLength.
func (a *Array[T]) Push(vs ...T) int {
	n := grownLength(a.length, len(vs))
	for k, v := range vs {
		a.s.set(a.length+uint32(k), v)
	}
	a.length = n
	return int(n)
}

// Pop removes the last index and returns its value. The boolean is false
// when a is empty or the last index is a hole; the length shrinks by one
// in the latter case.
func (a *Array[T]) Pop() (T, bool) {
	if a.length == 0 {
		var zero T
		return zero, false
	}
	a.length--
	v, ok := a.s.get(a.length)
	if ok {
		a.s.del(a.length)
	}
	return v, ok
}

// Shift removes index 0, moves every remaining element down by one and
// returns the removed value. The boolean is false when a is empty or index
// 0 is a hole.
func (a *Array[T]) Shift() (T, bool) {
	if a.length == 0 {
		var zero T
		return zero, false
	}
	v, ok := a.s.get(0)
	a.s.splice(0, 1, nil)
	a.length--
	return v, ok
}

// Unshift moves every element up by len(vs), stores vs at the front in the
// given order and returns the new length.
// It panics with ErrLengthOverflow if the length would exceed MaxLength.
func (a *Array[T]) Unshift(vs ...T) int {
	n := grownLength(a.length, len(vs))
	if len(vs) > 0 {
		a.s.splice(0, 0, vs)
	}
	a.length = n
	return int(n)
}

// Reverse reverses the order of a in place and returns a.
// A hole at index i ends up at index Len()-1-i.
func (a *Array[T]) Reverse() *Array[T] {
	if a.s.sparse == nil && len(a.s.dense) == int(a.length) {
		slices.Reverse(a.s.dense)
		a.s.trim()
		return a
	}
	es := a.s.entries(nil)
	slices.Reverse(es)
	last := a.length - 1
	for k := range es {
		es[k].i = last - es[k].i
	}
	a.s.load(es)
	return a
}

// Splice removes deleteCount elements starting at start, inserts vs at
// that position and returns the removed elements as a new array.
//
// A negative start counts from the end. start is clamped into [0, Len()]
// and deleteCount into [0, Len()-start]. The length changes by
// len(vs) minus the number of removed indices.
// It panics with ErrLengthOverflow if the length would exceed MaxLength.
func (a *Array[T]) Splice(start, deleteCount int, vs ...T) *Array[T] {
	from := relative(start, a.length)
	del := uint32(min(max(deleteCount, 0), int(a.length-from)))
	return a.splice(from, del, vs)
}

// SpliceFrom removes every element from start to the end and returns
// them as a new array. A negative start counts from the end.
func (a *Array[T]) SpliceFrom(start int) *Array[T] {
	from := relative(start, a.length)
	return a.splice(from, a.length-from, nil)
}

func (a *Array[T]) splice(from, del uint32, vs []T) *Array[T] {
	n := grownLength(a.length-del, len(vs))
	removed := &Array[T]{length: del}
	if del == 0 && len(vs) == 0 {
		return removed
	}
	removed.s.load(a.s.splice(from, del, vs))
	a.length = n
	return removed
}

// relative resolves a possibly negative index against length and clamps
// it into [0, length].
func relative(i int, length uint32) uint32 {
	if i < 0 {
		return uint32(max(int64(length)+int64(i), 0))
	}
	return uint32(min(uint64(i), uint64(length)))
}
