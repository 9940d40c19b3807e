// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"errors"
	"fmt"
	"math"
)

// MaxLength is the largest length an array can have (2^32 - 1).
// Valid element indices are therefore [0, MaxLength).
const MaxLength = math.MaxUint32

var (
	// ErrInvalidLength reports a length that is negative, not an integer,
	// or not below 2^32.
	ErrInvalidLength = errors.New("dynarr: invalid array length")

	// ErrInvalidIndex reports an element key outside [0, MaxLength).
	ErrInvalidIndex = errors.New("dynarr: invalid array index")

	// ErrLengthOverflow reports a growth past MaxLength.
	// Mutators that grow an array panic with this value; the generic
	// array-like algorithms return it.
	ErrLengthOverflow = errors.New("dynarr: array length overflow")
)

func invalidLength(n any) error {
	return fmt.Errorf("%w: %v", ErrInvalidLength, n)
}

func invalidIndex(i any) error {
	return fmt.Errorf("%w: %v", ErrInvalidIndex, i)
}

// ToLength converts a dynamically typed numeric length into an int.
// It fails with ErrInvalidLength for NaN, infinities, negative values,
// non-integers and values above MaxLength.
func ToLength(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > MaxLength || f != math.Trunc(f) {
		return 0, invalidLength(f)
	}
	return int(f), nil
}

// validIndex reports whether i can address an element.
func validIndex(i int) bool {
	return i >= 0 && uint64(i) < MaxLength
}

// validLength reports whether n is an acceptable length.
func validLength(n int) bool {
	return n >= 0 && uint64(n) <= MaxLength
}

// grownLength returns length+k, panicking with ErrLengthOverflow when the
// result would exceed MaxLength.
func grownLength(length uint32, k int) uint32 {
	n := uint64(length) + uint64(k)
	if n > MaxLength {
		panic(ErrLengthOverflow)
	}
	return uint32(n)
}
