// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// Compare orders two elements: negative when a sorts before b, positive
// when b sorts before a, zero when they are equivalent.
//
// A Compare must return the same sign every time it sees the same pair.
// Sorting with one that does not leaves the elements in an unspecified
// order; it never corrupts the array.
type Compare[T any] func(a, b T) int

// ByString orders elements by their Format string, comparing strings by
// Unicode code point ("80" sorts before "9"). It is the strategy Sort
// uses when given a nil Compare.
func ByString[T any]() Compare[T] {
	return func(a, b T) int {
		return strings.Compare(Format(a), Format(b))
	}
}

// Numeric orders numbers ascending. NaN sorts before every other value.
func Numeric[N constraints.Integer | constraints.Float]() Compare[N] {
	return cmp.Compare[N]
}

// Reversed returns the opposite order of c.
func Reversed[T any](c Compare[T]) Compare[T] {
	return func(a, b T) int { return c(b, a) }
}
