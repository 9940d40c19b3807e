// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dynarr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// MarshalJSON encodes a as a JSON array of Len() items; holes encode as
// null. An array that contains itself, directly or through other arrays,
// fails with a *json.UnsupportedValueError.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	b := acquireBuffer()
	defer releaseBuffer(b)
	if err := a.encodeJSON(b, nil); err != nil {
		return nil, err
	}
	return append([]byte(nil), b.Bytes()...), nil
}

func (a *Array[T]) encodeJSON(b *bytes.Buffer, seen visited) error {
	if seen == nil {
		seen = make(visited)
	}
	k := a.key()
	if !seen.enter(k) {
		return &json.UnsupportedValueError{
			Value: reflect.ValueOf(a),
			Str:   fmt.Sprintf("encountered a cycle via %T", a),
		}
	}
	defer delete(seen, k)

	b.WriteByte('[')
	var next uint32
	var err error
	a.s.scan(0, a.length, func(i uint32, v T) bool {
		for ; next < i; next++ {
			if next > 0 {
				b.WriteByte(',')
			}
			b.WriteString("null")
		}
		if i > 0 {
			b.WriteByte(',')
		}
		if err = encodeElem(b, any(v), seen); err != nil {
			return false
		}
		next = i + 1
		return true
	})
	if err != nil {
		return err
	}
	for ; next < a.length; next++ {
		if next > 0 {
			b.WriteByte(',')
		}
		b.WriteString("null")
	}
	b.WriteByte(']')
	return nil
}

// encodeElem writes v. Nested arrays are encoded in place so seen follows
// them; everything else goes through encoding/json.
func encodeElem(b *bytes.Buffer, v any, seen visited) error {
	switch x := v.(type) {
	case nested:
		if !isNil(v) {
			return x.encodeJSON(b, seen)
		}
	case arrayValue:
		return x.ref().encodeJSON(b, seen)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(raw)
	return nil
}

// UnmarshalJSON replaces the contents of a with the items of a JSON array.
// Every item becomes a stored value; a null item stores whatever null
// decodes to for T, so holes do not survive a round trip.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	if uint64(len(vs)) > MaxLength {
		return invalidLength(len(vs))
	}
	a.s.loadValues(vs)
	a.length = uint32(len(vs))
	return nil
}
