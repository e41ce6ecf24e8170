package model

import (
	"bytes"
	"encoding/json"
)

// Optional holds a relation that the backend may or may not have embedded in
// a response.  A missing JSON key and an explicit null both decode to the
// absent state; anything else decodes to a present value.  The zero value is
// absent, so struct fields can be tagged `omitzero` to drop absent relations
// when re-encoding.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional wrapping v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.  The value is the
// zero T when absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether the relation was populated.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsZero lets encoding/json's omitzero option skip absent values.
func (o Optional[T]) IsZero() bool { return !o.present }

// OrElse returns the wrapped value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// boxed exposes the wrapped value to reflection based consumers (the contract
// validator).  Absent values are reported as nil.
func (o Optional[T]) boxed() any {
	if !o.present {
		return nil
	}
	return o.value
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{value: v, present: true}
	return nil
}
