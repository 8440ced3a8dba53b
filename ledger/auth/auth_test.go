package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioshare/helioshare/common"
)

func TestStaticOwner(t *testing.T) {
	assert := assert.New(t)
	admin := common.HexToAddress("0xad")

	owner := NewStaticOwner(admin)
	assert.True(owner.IsOwner(admin))
	assert.False(owner.IsOwner(common.HexToAddress("0xa1")))
	assert.False(owner.IsOwner(common.Address{}))

	// An empty owner recognizes no one, not the zero address.
	noOwner := NewStaticOwner(common.Address{})
	assert.False(noOwner.IsOwner(common.Address{}))
	assert.False(noOwner.IsOwner(admin))
}

func TestSwitchGate(t *testing.T) {
	assert := assert.New(t)

	gate := NewSwitchGate(false)
	assert.False(gate.IsPaused())

	gate.Pause()
	assert.True(gate.IsPaused())

	gate.Resume()
	assert.False(gate.IsPaused())

	assert.True(NewSwitchGate(true).IsPaused())
}
