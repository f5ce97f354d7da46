package shared

import "encoding/json"

// Optional is a tri-state JSON field for partial-update requests. It
// distinguishes a field that was absent from the request body, a field
// explicitly set to null, and a field set to a value:
//
//	absent       -> Present() == false, patch leaves the field unchanged
//	explicit null -> Present() == true, Null() == true
//	value        -> Present() == true, Null() == false
//
// A bare pointer cannot express this: nil collapses "absent" and "null"
// into one state.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding the given value. Mostly useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// UnmarshalJSON implements json.Unmarshaler. encoding/json only invokes it
// for keys present in the document, which is what makes the absent state
// observable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// Present reports whether the field appeared in the request body at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// Null reports whether the field was explicitly set to null.
func (o Optional[T]) Null() bool {
	return o.null
}

// Get returns the value and whether it is usable (present and not null).
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present && !o.null
}

// Ptr returns a pointer to the value, or nil when the field is absent or
// null. Store patch types take this form.
func (o Optional[T]) Ptr() *T {
	if !o.present || o.null {
		return nil
	}
	v := o.value
	return &v
}
