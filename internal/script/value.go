// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"math"

	"code.hybscloud.com/dynarr"
)

// Element converts a decoded YAML value into an array element.
// Sequences become *dynarr.Array[any], recursively.
func Element(v any) any {
	if seq, ok := v.([]any); ok {
		return FromSequence(seq)
	}
	return v
}

// FromSequence builds an array from a decoded YAML sequence.
func FromSequence(seq []any) *dynarr.Array[any] {
	vs := make([]any, len(seq))
	for i, v := range seq {
		vs[i] = Element(v)
	}
	return dynarr.Of(vs...)
}

// Part converts a concat argument: sequences are spread, anything else is
// a single value.
func Part(v any) dynarr.Part[any] {
	if seq, ok := v.([]any); ok {
		return FromSequence(seq)
	}
	return dynarr.Elem(v)
}

// Number reports v as a float64 when it is numeric.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// CompareNumbers orders numeric elements ascending. A pair with a
// non-numeric side compares as equal.
func CompareNumbers(a, b any) int {
	x, ok1 := Number(a)
	y, ok2 := Number(b)
	if !ok1 || !ok2 {
		return 0
	}
	return dynarr.Numeric[float64]()(x, y)
}

// intArg reads argument i of args as an integer. Values beyond
// ±MaxLength saturate, which keeps them out of range on the same side.
func intArg(args []any, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	f, ok := Number(args[i])
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("argument %d: %v is not an integer", i, args[i])
	}
	const limit = float64(dynarr.MaxLength)
	return int(max(min(f, limit), -limit)), nil
}
