package auth

import (
	"sync"

	"github.com/helioshare/helioshare/common"
)

// StaticOwner is the single-admin authorizer: one account, fixed at startup,
// holds the global admin capability.
type StaticOwner struct {
	owner common.Address
}

// NewStaticOwner creates an authorizer recognizing the given account as the
// admin. An empty owner address means no account is admin.
func NewStaticOwner(owner common.Address) *StaticOwner {
	return &StaticOwner{owner: owner}
}

// IsOwner reports whether the account is the configured admin.
func (o *StaticOwner) IsOwner(account common.Address) bool {
	return !o.owner.IsEmpty() && account == o.owner
}

// SwitchGate is an in-process pause gate toggled by the operator.
type SwitchGate struct {
	mu     sync.RWMutex
	paused bool
}

// NewSwitchGate creates a gate with the given initial state.
func NewSwitchGate(paused bool) *SwitchGate {
	return &SwitchGate{paused: paused}
}

// Pause blocks all subsequent mutating operations.
func (g *SwitchGate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = true
}

// Resume re-enables mutating operations.
func (g *SwitchGate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = false
}

// IsPaused reports the gate state.
func (g *SwitchGate) IsPaused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paused
}
