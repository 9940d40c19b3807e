// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

// ArrayLike is anything with a length and indexed element access.
// *Array implements it; so can a caller's own array-shaped type.
//
// The free functions below walk indices one at a time through this
// interface. They only behave meaningfully when Len reflects the last of
// a run of zero-based indices.
type ArrayLike[T any] interface {
	Len() int
	Get(i int) (T, bool)
	Set(i int, v T) error
	Delete(i int) bool
	SetLen(n int) error
}

var _ ArrayLike[int] = (*Array[int])(nil)

// Push appends vs to o and returns the new length.
func Push[T any](o ArrayLike[T], vs ...T) (int, error) {
	n := o.Len()
	if uint64(n)+uint64(len(vs)) > MaxLength {
		return n, ErrLengthOverflow
	}
	for _, v := range vs {
		if err := o.Set(n, v); err != nil {
			return n, err
		}
		n++
	}
	return n, o.SetLen(n)
}

// Pop removes the last index of o and returns its value.
// The boolean is false when o is empty or the last index is a hole.
func Pop[T any](o ArrayLike[T]) (T, bool, error) {
	n := o.Len()
	if n == 0 {
		var zero T
		return zero, false, o.SetLen(0)
	}
	v, ok := o.Get(n - 1)
	o.Delete(n - 1)
	return v, ok, o.SetLen(n - 1)
}

// Shift removes index 0 of o, moves the rest down by one and returns the
// removed value. The boolean is false when o is empty or index 0 is a hole.
func Shift[T any](o ArrayLike[T]) (T, bool, error) {
	n := o.Len()
	if n == 0 {
		var zero T
		return zero, false, o.SetLen(0)
	}
	first, ok := o.Get(0)
	for k := 1; k < n; k++ {
		if err := move(o, k, k-1); err != nil {
			return first, ok, err
		}
	}
	o.Delete(n - 1)
	return first, ok, o.SetLen(n - 1)
}

// Unshift moves the indices of o up by len(vs), stores vs at the front and
// returns the new length.
func Unshift[T any](o ArrayLike[T], vs ...T) (int, error) {
	n := o.Len()
	if len(vs) == 0 {
		return n, o.SetLen(n)
	}
	if uint64(n)+uint64(len(vs)) > MaxLength {
		return n, ErrLengthOverflow
	}
	for k := n; k > 0; k-- {
		if err := move(o, k-1, k-1+len(vs)); err != nil {
			return n, err
		}
	}
	for j, v := range vs {
		if err := o.Set(j, v); err != nil {
			return n, err
		}
	}
	n += len(vs)
	return n, o.SetLen(n)
}

// Reverse reverses o in place.
func Reverse[T any](o ArrayLike[T]) error {
	n := o.Len()
	for lo, hi := 0, n-1; lo < hi; lo, hi = lo+1, hi-1 {
		lv, lok := o.Get(lo)
		hv, hok := o.Get(hi)
		if err := place(o, lo, hv, hok); err != nil {
			return err
		}
		if err := place(o, hi, lv, lok); err != nil {
			return err
		}
	}
	return nil
}

// move copies index from to index to, or deletes to when from is a hole.
func move[T any](o ArrayLike[T], from, to int) error {
	v, ok := o.Get(from)
	return place(o, to, v, ok)
}

func place[T any](o ArrayLike[T], i int, v T, ok bool) error {
	if !ok {
		o.Delete(i)
		return nil
	}
	return o.Set(i, v)
}
