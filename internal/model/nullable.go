package model

import (
	"bytes"
	"encoding/json"
)

// NullableString tells "field absent" apart from "field set to null" in a
// JSON request body. Set is true whenever the key was present.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. It is also called for an explicit
// null, which leaves Value nil with Set true.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}
