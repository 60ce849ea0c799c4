package events

import (
	"sync"
	"sync/atomic"
)

const defaultSubscriberBuffer = 64

// Hub broadcasts envelopes to live subscribers. A subscriber whose buffer is
// full misses the envelope rather than stalling the engine.
type Hub struct {
	mu      sync.RWMutex
	nextID  uint64
	subs    map[uint64]chan Envelope
	dropped atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan Envelope)}
}

// Subscribe registers a subscriber. The returned cancel func closes the channel.
func (h *Hub) Subscribe(buffer int) (<-chan Envelope, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	ch := make(chan Envelope, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Emit(env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- env:
		default:
			h.dropped.Add(1)
		}
	}
}

// Subscribers returns the number of live subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber was slow.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }
