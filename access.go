// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

// Accessor methods. None of them modifies its receiver or arguments; every
// result is a new array holding a one level deep copy: element values are
// copied, so replacing a slot in either array never affects the other, but
// pointers, maps and slices stored as elements are shared.

// Part is an argument to Concat: either an *Array whose indices are
// spread into the result, or a single value wrapped by Elem. A nil
// *Array contributes nothing.
type Part[T any] interface {
	appendTo(dst *Array[T])
}

// Elem wraps v as a single Concat argument.
func Elem[T any](v T) Part[T] { return elem[T]{v: v} }

type elem[T any] struct{ v T }

func (e elem[T]) appendTo(dst *Array[T]) {
	n := grownLength(dst.length, 1)
	dst.s.set(dst.length, e.v)
	dst.length = n
}

// appendTo spreads a into dst. A nil a is an empty part.
func (a *Array[T]) appendTo(dst *Array[T]) {
	if a == nil {
		return
	}
	base := dst.length
	n := grownLength(base, int(a.length))
	a.s.scan(0, a.length, func(i uint32, v T) bool {
		dst.s.set(base+i, v)
		return true
	})
	dst.length = n
}

// Concat returns a new array holding the indices of a followed, for each
// part in order, by the indices of that array or by the wrapped value.
// Holes, including trailing ones, are carried over as holes.
// It panics with ErrLengthOverflow if the result would exceed MaxLength.
func (a *Array[T]) Concat(parts ...Part[T]) *Array[T] {
	out := a.Clone()
	for _, p := range parts {
		p.appendTo(out)
	}
	return out
}

// Slice returns a new array holding indices [begin, end) of a.
// Negative indices count from the end; both are clamped into [0, Len()].
// The result is empty when begin >= end after clamping.
func (a *Array[T]) Slice(begin, end int) *Array[T] {
	return a.slice(relative(begin, a.length), relative(end, a.length))
}

// SliceFrom returns a new array holding indices [begin, Len()) of a.
func (a *Array[T]) SliceFrom(begin int) *Array[T] {
	return a.slice(relative(begin, a.length), a.length)
}

func (a *Array[T]) slice(lo, hi uint32) *Array[T] {
	out := New[T]()
	if lo >= hi {
		return out
	}
	var es []entry[T]
	a.s.scan(lo, hi, func(i uint32, v T) bool {
		es = append(es, entry[T]{i: i - lo, v: v})
		return true
	})
	out.s.load(es)
	out.length = hi - lo
	return out
}
