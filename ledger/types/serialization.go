package types

import "encoding/json"

// ToBytes serializes the given state object for storage.
func ToBytes(a interface{}) ([]byte, error) {
	return json.Marshal(a)
}

// FromBytes deserializes a stored state object (passed by reference).
func FromBytes(in []byte, a interface{}) error {
	return json.Unmarshal(in, a)
}
