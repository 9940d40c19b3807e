// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// DefaultSeparator is the separator used by String.
const DefaultSeparator = ","

// nested is implemented by every *Array instantiation so nested arrays
// render through their own elements and cycles can be cut.
type nested interface {
	joinTo(b *bytes.Buffer, sep string, seen visited)
	encodeJSON(b *bytes.Buffer, seen visited) error
}

// arrayValue is implemented by Array values stored as elements.
type arrayValue interface {
	ref() nested
}

func (a Array[T]) ref() nested { return &a }

// visited holds the arrays being rendered further up the current call.
type visited map[storageKey]struct{}

// storageKey identifies an array by its backing storage and length, so a
// value copy that shares storage with an enclosing array is recognised.
type storageKey struct {
	p any
	n uint32
}

func (a *Array[T]) key() storageKey {
	switch {
	case a.s.sparse != nil:
		return storageKey{p: reflect.ValueOf(a.s.sparse).UnsafePointer(), n: a.length}
	case len(a.s.dense) > 0:
		return storageKey{p: &a.s.dense[0], n: a.length}
	}
	return storageKey{p: a, n: a.length}
}

// enter records k in seen. It reports false when k is already there.
func (seen visited) enter(k storageKey) bool {
	if _, ok := seen[k]; ok {
		return false
	}
	seen[k] = struct{}{}
	return true
}

// Join concatenates the string form of every index, separated by sep.
// Holes and nil values render as the empty string; nested arrays render
// as String would render them, and an array already being joined further
// up the same call renders as the empty string.
func (a *Array[T]) Join(sep string) string {
	b := acquireBuffer()
	defer releaseBuffer(b)
	a.joinTo(b, sep, nil)
	return b.String()
}

// String returns Join(DefaultSeparator).
func (a *Array[T]) String() string {
	return a.Join(DefaultSeparator)
}

func (a *Array[T]) joinTo(b *bytes.Buffer, sep string, seen visited) {
	if seen == nil {
		seen = make(visited)
	}
	k := a.key()
	if !seen.enter(k) {
		return
	}
	defer delete(seen, k)

	var next uint32
	a.s.scan(0, a.length, func(i uint32, v T) bool {
		for ; next < i; next++ {
			if next > 0 {
				b.WriteString(sep)
			}
		}
		if i > 0 {
			b.WriteString(sep)
		}
		writeElem(b, any(v), seen)
		next = i + 1
		return true
	})
	for ; next < a.length; next++ {
		if next > 0 {
			b.WriteString(sep)
		}
	}
}

// Format returns the string form of v used by Join and ByString.
//
//   - nil, including typed nil pointers, maps, slices and funcs: ""
//   - strings as is, booleans as "true" or "false"
//   - integers in decimal
//   - floats in shortest round-trip form, with "NaN", "Infinity" and
//     "-Infinity"; integral values print without exponent below 1e21
//   - *Array and Array values as their String
//   - fmt.Stringer and error through their method
//   - anything else through fmt.Sprint
func Format(v any) string {
	b := acquireBuffer()
	defer releaseBuffer(b)
	writeElem(b, v, nil)
	return b.String()
}

func writeElem(b *bytes.Buffer, v any, seen visited) {
	switch x := v.(type) {
	case nil:
	case string:
		b.WriteString(x)
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int8:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case float32:
		b.WriteString(formatFloat(float64(x), 32))
	case float64:
		b.WriteString(formatFloat(x, 64))
	case nested:
		if isNil(v) {
			return
		}
		x.joinTo(b, DefaultSeparator, seen)
	case arrayValue:
		x.ref().joinTo(b, DefaultSeparator, seen)
	case fmt.Stringer:
		if isNil(v) {
			return
		}
		b.WriteString(x.String())
	case error:
		if isNil(v) {
			return
		}
		b.WriteString(x.Error())
	default:
		if isNil(v) {
			return
		}
		fmt.Fprint(b, v)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return expReplacer.Replace(strconv.FormatFloat(f, 'g', -1, bits))
}

// expReplacer drops the leading zero Go puts in two-digit exponents.
var expReplacer = strings.NewReplacer("e-0", "e-", "e+0", "e+")

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
