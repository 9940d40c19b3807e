// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Array is an ordered, integer-indexed, resizable container whose length
// is both derived from and able to drive its element set.
//
// An index in [0, Len()) may be a hole: it has no stored value and reads
// report absent, which is distinct from any stored value including a
// stored nil. The zero value is an empty array ready for use.
//
// Array is not safe for concurrent use; see [Synced].
type Array[T any] struct {
	s      store[T]
	length uint32
}

// New returns an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Of returns an array holding vs at indices [0, len(vs)).
func Of[T any](vs ...T) *Array[T] {
	if uint64(len(vs)) > MaxLength {
		panic(ErrLengthOverflow)
	}
	a := &Array[T]{length: uint32(len(vs))}
	a.s.loadValues(vs)
	return a
}

// Make returns an array of length n in which every index is a hole.
func Make[T any](n int) (*Array[T], error) {
	if !validLength(n) {
		return nil, invalidLength(n)
	}
	return &Array[T]{length: uint32(n)}, nil
}

// Len returns the length of a.
func (a *Array[T]) Len() int { return int(a.length) }

// Count returns the number of populated indices, which is at most Len.
func (a *Array[T]) Count() int { return a.s.count() }

// SetLen sets the length of a. Shrinking deletes every element at an index
// >= n; growing only adds holes.
func (a *Array[T]) SetLen(n int) error {
	if !validLength(n) {
		return invalidLength(n)
	}
	if uint32(n) < a.length {
		a.s.truncate(uint32(n))
	}
	a.length = uint32(n)
	return nil
}

// Get returns the element at i. The boolean is false when i is negative,
// out of range, or a hole.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || uint64(i) >= uint64(a.length) {
		var zero T
		return zero, false
	}
	return a.s.get(uint32(i))
}

// Has reports whether i holds a stored value.
func (a *Array[T]) Has(i int) bool {
	_, ok := a.Get(i)
	return ok
}

// Set stores v at i. Writing at or beyond Len extends the length to i+1;
// the indices in between become holes.
func (a *Array[T]) Set(i int, v T) error {
	if !validIndex(i) {
		return invalidIndex(i)
	}
	a.s.set(uint32(i), v)
	if uint32(i) >= a.length {
		a.length = uint32(i) + 1
	}
	return nil
}

// Delete turns i into a hole without changing the length.
// It reports whether a value was removed.
func (a *Array[T]) Delete(i int) bool {
	if i < 0 || uint64(i) >= uint64(a.length) {
		return false
	}
	return a.s.del(uint32(i))
}

// GetAt is Get for any integer key type.
func GetAt[T any, I constraints.Integer](a ArrayLike[T], i I) (T, bool) {
	if i < 0 || uint64(i) >= MaxLength {
		var zero T
		return zero, false
	}
	return a.Get(int(i))
}

// SetAt is Set for any integer key type.
func SetAt[T any, I constraints.Integer](a ArrayLike[T], i I, v T) error {
	if i < 0 || uint64(i) >= MaxLength {
		return invalidIndex(i)
	}
	return a.Set(int(i), v)
}

// Clone returns a shallow copy of a.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{s: a.s.clone(), length: a.length}
}

// Values returns the stored values in index order, skipping holes.
func (a *Array[T]) Values() []T {
	es := a.s.entries(nil)
	vs := make([]T, len(es))
	for k, e := range es {
		vs[k] = e.v
	}
	return vs
}

// All returns an iterator over the populated indices and their values in
// ascending index order. Holes are skipped.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.s.scan(0, a.length, func(i uint32, v T) bool {
			return yield(int(i), v)
		})
	}
}

// Slots returns every index in [0, Len()) as a value and presence flag.
// It allocates Len() elements and is meant for small arrays.
func (a *Array[T]) Slots() ([]T, []bool) {
	vs := make([]T, a.length)
	ok := make([]bool, a.length)
	a.s.scan(0, a.length, func(i uint32, v T) bool {
		vs[i], ok[i] = v, true
		return true
	})
	return vs, ok
}
