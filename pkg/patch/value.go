// Package patch provides an optional value for partial-update payloads that
// distinguishes an omitted JSON key from an explicit null.
package patch

import (
	"bytes"
	"encoding/json"
)

// Value holds a partial-update field.
//
//	key omitted   -> Set=false
//	key: null     -> Set=true, Null=true
//	key: <value>  -> Set=true, Null=false, V=<value>
type Value[T any] struct {
	Set  bool
	Null bool
	V    T
}

// Of returns a Value carrying v.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, V: v}
}

// Present reports whether a non-null value was supplied.
func (v Value[T]) Present() bool {
	return v.Set && !v.Null
}

// UnmarshalJSON implements json.Unmarshaler. encoding/json only calls it when
// the key is present, so Set stays false for omitted keys.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Null = true
		var zero T
		v.V = zero
		return nil
	}
	v.Null = false
	return json.Unmarshal(data, &v.V)
}

// MarshalJSON implements json.Marshaler.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Set || v.Null {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}
