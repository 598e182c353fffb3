package types

import "encoding/json"

// Optional is a JSON field that remembers whether it appeared in the
// request body at all. Partial updates need three states a plain pointer
// cannot express:
//
//	field omitted        -> Set=false            (keep stored value)
//	field present, null  -> Set=true, Value=nil  (clear nullable field)
//	field present, value -> Set=true, Value=&v
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what makes Set reliable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Present reports whether the field was supplied with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && o.Value != nil
}

// Null reports whether the field was supplied as an explicit null.
func (o Optional[T]) Null() bool {
	return o.Set && o.Value == nil
}
