package common

import (
	"encoding/hex"
	"encoding/json"
)

const AddressLength = 20

// Bytes is an alias of []byte
type Bytes []byte

// Address represents a 20 byte account identifier
type Address [AddressLength]byte

// BytesToAddress converts the given byte slice to an Address, truncating
// from the left if the slice is too long
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress converts the given hex string to an Address
func HexToAddress(s string) Address {
	return BytesToAddress(FromHex(s))
}

// SetBytes sets the address to the value of b
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Bytes returns the raw bytes of the address
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the hex string representation of the address
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

// IsEmpty indicates whether the address is the all-zero sentinel
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Hex())
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = HexToAddress(s)
	return nil
}

// FromHex returns the bytes represented by the hex string s, with an
// optional "0x" prefix
func FromHex(s string) []byte {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// CopyBytes returns a copy of the provided byte slice
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}
