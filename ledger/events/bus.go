package events

import (
	"sync"

	logutil "github.com/helioshare/helioshare/common/util"
	"github.com/helioshare/helioshare/ledger/types"
)

var logger = logutil.GetLoggerForModule("events")

// Bus delivers committed ledger event records to subscribers, synchronously
// and in emission order. Events of aborted operations never reach the bus.
type Bus struct {
	mu          sync.RWMutex
	subscribers []func(types.Event)
}

// NewBus creates an event bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all future events. There is no way to
// unsubscribe; subscriptions are expected to live as long as the node.
func (b *Bus) Subscribe(handler func(types.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, handler)
}

// Publish delivers the events to every subscriber in order.
func (b *Bus) Publish(evs []types.Event) {
	b.mu.RLock()
	subscribers := b.subscribers
	b.mu.RUnlock()

	for _, ev := range evs {
		logger.Debugf("Event %v: %+v", ev.EventName(), ev)
		for _, handler := range subscribers {
			handler(ev)
		}
	}
}
