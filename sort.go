// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"slices"
	"strings"
)

// Sort orders the elements of a in place and returns a.
//
// With a nil c the elements are ordered by [ByString]. The sort is stable:
// elements that compare equal keep their relative order. Holes are moved
// to the end without being passed to c, so the populated values end up at
// [0, Count()) and the length is unchanged.
func (a *Array[T]) Sort(c Compare[T]) *Array[T] {
	vs := a.Values()
	if c == nil {
		sortByString(vs)
	} else {
		slices.SortStableFunc(vs, c)
	}
	a.s.loadValues(vs)
	return a
}

// sortByString formats every element once instead of on each comparison.
func sortByString[T any](vs []T) {
	type keyed struct {
		key string
		v   T
	}
	ks := make([]keyed, len(vs))
	for i, v := range vs {
		ks[i] = keyed{key: Format(v), v: v}
	}
	slices.SortStableFunc(ks, func(x, y keyed) int {
		return strings.Compare(x.key, y.key)
	})
	for i, k := range ks {
		vs[i] = k.v
	}
}
