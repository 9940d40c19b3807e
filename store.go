// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"maps"
	"slices"
)

// denseSlack is how far past the dense tail a write may land before the
// store switches to the sparse representation.
const denseSlack = 64

// slot is one dense cell. ok distinguishes a stored value from a hole.
type slot[T any] struct {
	v  T
	ok bool
}

// entry is a populated index together with its value.
type entry[T any] struct {
	i uint32
	v T
}

// store holds the populated elements of an array.
//
// In dense mode (sparse == nil) dense covers [0, highest populated index]
// and its last slot is always populated. In sparse mode the map holds
// every populated index and dense is nil.
type store[T any] struct {
	dense  []slot[T]
	sparse map[uint32]T
	n      int
}

func (s *store[T]) count() int { return s.n }

func (s *store[T]) get(i uint32) (T, bool) {
	if s.sparse != nil {
		v, ok := s.sparse[i]
		return v, ok
	}
	if uint64(i) < uint64(len(s.dense)) {
		c := s.dense[i]
		return c.v, c.ok
	}
	var zero T
	return zero, false
}

func (s *store[T]) set(i uint32, v T) {
	if s.sparse == nil && uint64(i) > uint64(2*len(s.dense)+denseSlack) {
		s.toSparse()
	}
	if s.sparse != nil {
		if _, ok := s.sparse[i]; !ok {
			s.n++
		}
		s.sparse[i] = v
		return
	}
	if int(i) >= len(s.dense) {
		s.dense = slices.Grow(s.dense, int(i)+1-len(s.dense))
		s.dense = s.dense[:int(i)+1]
	}
	if !s.dense[i].ok {
		s.n++
	}
	s.dense[i] = slot[T]{v: v, ok: true}
}

func (s *store[T]) del(i uint32) bool {
	if s.sparse != nil {
		if _, ok := s.sparse[i]; !ok {
			return false
		}
		delete(s.sparse, i)
		s.n--
		return true
	}
	if uint64(i) >= uint64(len(s.dense)) || !s.dense[i].ok {
		return false
	}
	s.dense[i] = slot[T]{}
	s.n--
	s.trim()
	return true
}

// truncate drops every element at index >= n.
func (s *store[T]) truncate(n uint32) {
	if s.sparse != nil {
		for i := range s.sparse {
			if i >= n {
				delete(s.sparse, i)
				s.n--
			}
		}
		return
	}
	if uint64(n) >= uint64(len(s.dense)) {
		return
	}
	for _, c := range s.dense[n:] {
		if c.ok {
			s.n--
		}
	}
	clear(s.dense[n:])
	s.dense = s.dense[:n]
	s.trim()
}

// trim drops trailing holes from the dense slice.
func (s *store[T]) trim() {
	k := len(s.dense)
	for k > 0 && !s.dense[k-1].ok {
		k--
	}
	clear(s.dense[k:])
	s.dense = s.dense[:k]
}

func (s *store[T]) toSparse() {
	m := make(map[uint32]T, s.n)
	for i, c := range s.dense {
		if c.ok {
			m[uint32(i)] = c.v
		}
	}
	s.dense = nil
	s.sparse = m
}

// entries appends the populated elements in ascending index order to dst.
func (s *store[T]) entries(dst []entry[T]) []entry[T] {
	if s.sparse != nil {
		for _, i := range slices.Sorted(maps.Keys(s.sparse)) {
			dst = append(dst, entry[T]{i: i, v: s.sparse[i]})
		}
		return dst
	}
	for i, c := range s.dense {
		if c.ok {
			dst = append(dst, entry[T]{i: uint32(i), v: c.v})
		}
	}
	return dst
}

// scan calls fn for each populated index in [lo, hi) in ascending order
// until fn returns false.
func (s *store[T]) scan(lo, hi uint32, fn func(i uint32, v T) bool) {
	if lo >= hi {
		return
	}
	if s.sparse != nil {
		keys := make([]uint32, 0, min(len(s.sparse), int(hi-lo)))
		for i := range s.sparse {
			if i >= lo && i < hi {
				keys = append(keys, i)
			}
		}
		slices.Sort(keys)
		for _, i := range keys {
			if !fn(i, s.sparse[i]) {
				return
			}
		}
		return
	}
	end := min(uint64(hi), uint64(len(s.dense)))
	for i := uint64(lo); i < end; i++ {
		if c := s.dense[i]; c.ok {
			if !fn(uint32(i), c.v) {
				return
			}
		}
	}
}

// load replaces the contents with es, which must be in ascending index
// order, choosing the representation from the resulting density.
func (s *store[T]) load(es []entry[T]) {
	s.dense, s.sparse, s.n = nil, nil, len(es)
	if len(es) == 0 {
		return
	}
	span := uint64(es[len(es)-1].i) + 1
	if span <= denseSlack || uint64(len(es))*4 >= span {
		s.dense = make([]slot[T], span)
		for _, e := range es {
			s.dense[e.i] = slot[T]{v: e.v, ok: true}
		}
		return
	}
	s.sparse = make(map[uint32]T, len(es))
	for _, e := range es {
		s.sparse[e.i] = e.v
	}
}

// loadValues replaces the contents with vs stored at [0, len(vs)).
func (s *store[T]) loadValues(vs []T) {
	s.sparse = nil
	s.n = len(vs)
	s.dense = make([]slot[T], len(vs))
	for i, v := range vs {
		s.dense[i] = slot[T]{v: v, ok: true}
	}
}

// splice removes del indices starting at start, inserts ins at start and
// moves everything after the removed range by len(ins)-del.
// The removed elements are returned relative to start.
func (s *store[T]) splice(start, del uint32, ins []T) []entry[T] {
	if s.sparse == nil && uint64(start) <= uint64(len(s.dense)) {
		return s.spliceDense(start, del, ins)
	}
	var removed, out []entry[T]
	end := uint64(start) + uint64(del)
	shift := int64(len(ins)) - int64(del)
	for _, e := range s.entries(nil) {
		switch {
		case e.i < start:
			out = append(out, e)
		case uint64(e.i) < end:
			removed = append(removed, entry[T]{i: e.i - start, v: e.v})
		default:
			if len(ins) > 0 {
				for j, v := range ins {
					out = append(out, entry[T]{i: start + uint32(j), v: v})
				}
				ins = nil
			}
			out = append(out, entry[T]{i: uint32(int64(e.i) + shift), v: e.v})
		}
	}
	for j, v := range ins {
		out = append(out, entry[T]{i: start + uint32(j), v: v})
	}
	s.load(out)
	return removed
}

func (s *store[T]) spliceDense(start, del uint32, ins []T) []entry[T] {
	hi := int(min(uint64(start)+uint64(del), uint64(len(s.dense))))
	var removed []entry[T]
	for i := int(start); i < hi; i++ {
		if c := s.dense[i]; c.ok {
			removed = append(removed, entry[T]{i: uint32(i) - start, v: c.v})
		}
	}
	cells := make([]slot[T], len(ins))
	for j, v := range ins {
		cells[j] = slot[T]{v: v, ok: true}
	}
	s.dense = slices.Replace(s.dense, int(start), hi, cells...)
	s.n += len(ins) - len(removed)
	s.trim()
	return removed
}

func (s *store[T]) clone() store[T] {
	return store[T]{
		dense:  slices.Clone(s.dense),
		sparse: maps.Clone(s.sparse),
		n:      s.n,
	}
}
