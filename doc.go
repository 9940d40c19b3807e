// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dynarr provides a sparse, length-tracking dynamic array.
//
// [Array] is an ordered, integer-indexed, resizable container. Its length
// is tied to its indices in both directions: writing past the end extends
// the length, and shrinking the length deletes every element beyond it.
// Indices below the length that were never written, or were deleted, are
// holes. A hole reads as absent, which is not the same as a stored zero
// value or a stored nil.
//
//	a := dynarr.New[string]()
//	a.Set(0, "Hello")
//	a.Set(99, "world")
//	a.Len()     // 100
//	a.Get(50)   // "", false
//
// # Length
//
// Lengths are integers in [0, [MaxLength]], element indices are in
// [0, MaxLength). [Array.SetLen] and [Make] reject anything else with
// [ErrInvalidLength]; [ToLength] does the same for dynamically typed
// numbers. Growing past MaxLength through a mutator panics with
// [ErrLengthOverflow].
//
// # Indexing
//
//   - [Array.Get], [Array.Has]: read; out-of-range and negative indices are absent
//   - [Array.Set]: write, extending the length when needed
//   - [Array.Delete]: turn an index into a hole
//   - [GetAt], [SetAt]: the same for any integer key type
//
// # Mutators
//
// Mutators work in place:
//
//   - [Array.Push], [Array.Pop]: add to or remove from the end
//   - [Array.Shift], [Array.Unshift]: remove from or add to the front, re-indexing the rest
//   - [Array.Reverse]: reverse in place, holes included
//   - [Array.Sort]: stable sort with a [Compare]; holes move to the end
//   - [Array.Splice], [Array.SpliceFrom]: remove a run and insert values in its place
//
// # Accessors
//
// Accessors return new arrays or strings and never modify their inputs:
//
//   - [Array.Concat]: join arrays and single values ([Elem])
//   - [Array.Slice], [Array.SliceFrom]: copy a range
//   - [Array.Join], [Array.String]: render elements through [Format]
//
// Negative positions given to Slice and Splice count from the end, and
// every position is clamped into [0, Len()]. Nothing is ever rejected.
//
// All copies are one level deep: replacing a slot in one array never
// affects another, but a pointer stored in both refers to the same value.
//
// # Ordering
//
// [Compare] is a three-way comparator. [ByString] is the default strategy
// and orders elements by their string form, so 10 sorts before 9.
// [Numeric] compares numbers, [Reversed] flips any comparator.
//
// # Array-like values
//
// [ArrayLike] captures length plus indexed access. [Push], [Pop],
// [Shift], [Unshift] and [Reverse] run on any implementation by walking
// indices, so user types shaped like arrays can share the algorithms.
//
// # Concurrency
//
// An Array assumes exclusive access during every operation. [Synced]
// wraps one in a read-write mutex for use from several goroutines.
package dynarr
