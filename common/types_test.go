package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressHexRoundTrip(t *testing.T) {
	assert := assert.New(t)

	hex := "0x2E833968E5bB786Ae419c4d13189fB081Cc43bab"
	addr := HexToAddress(hex)
	assert.False(addr.IsEmpty())
	assert.Equal(HexToAddress(hex), HexToAddress(addr.Hex()))

	assert.True(Address{}.IsEmpty())
}

func TestAddressJSON(t *testing.T) {
	assert := assert.New(t)

	addr := HexToAddress("0x2E833968E5bB786Ae419c4d13189fB081Cc43bab")
	data, err := json.Marshal(addr)
	assert.Nil(err)

	var decoded Address
	assert.Nil(json.Unmarshal(data, &decoded))
	assert.Equal(addr, decoded)
}

func TestAddressSetBytesTruncates(t *testing.T) {
	assert := assert.New(t)

	// Longer inputs keep the rightmost 20 bytes.
	long := make([]byte, 25)
	for i := range long {
		long[i] = byte(i)
	}
	var addr Address
	addr.SetBytes(long)
	assert.Equal(long[5:], addr[:])

	// Shorter inputs are left-padded.
	var short Address
	short.SetBytes([]byte{0xab})
	assert.Equal(byte(0xab), short[19])
	assert.Equal(byte(0), short[0])
}
